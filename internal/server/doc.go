// Package server runs the application's HTTP transport.
//
// It owns the server lifecycle: startup, OS signal handling, and graceful
// shutdown with an upper bound on how long in-flight requests may linger.
package server
