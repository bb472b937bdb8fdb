// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start launches the worker's loop and returns immediately. The loop ends
// when ctx is done or Stop is called. Stop blocks until the loop has
// returned and is safe to call more than once.
//
// Example implementation:
//
//	type MyWorker struct{ done chan struct{} }
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    go func() { <-ctx.Done(); close(w.done) }()
//	}
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Sweeper drops expired entries and reports how many were removed.
type Sweeper interface {
	Sweep() int
}
