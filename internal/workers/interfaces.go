// Package workers manages the application's background workers.
// It defines the Worker interface and a Workers aggregate that starts and
// stops a set of workers in a unified way.
package workers

// Worker is implemented by every background worker.
//
// Run starts the worker; implementations either block for the duration of
// their work or spawn goroutines internally. Stop requests termination and
// blocks until the worker has fully exited; it must be safe to call when the
// worker is not running.
type Worker interface {
	Run()
	Stop()
}
