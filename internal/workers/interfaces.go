// Package workers manages the client's background workers.
// It defines the Worker interface, a Workers aggregate that starts and
// stops all registered workers together, and the concrete workers the
// client runs (currently the remote sync-status poller).
package workers

// Worker is implemented by any background worker.
//
// Run starts the worker's execution; implementations either block for the
// duration of their work or spawn goroutines internally. Stop signals the
// worker to exit and blocks until it has done so.
type Worker interface {
	Run()
	Stop()
}
