// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and the observability pipeline:
// per-request trace identity, timing, client identity extraction, access
// logging, Prometheus request metrics, and structured error normalization.
// Handlers report failures by returning an error; the pipeline converts the
// failure into the uniform JSON error envelope before the response leaves
// this package.
package http
