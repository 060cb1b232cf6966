// Package workers hosts the application's background workers.
// It defines the Worker interface and a Workers aggregate that starts
// every configured worker in a unified way.
package workers

import "context"

// Worker is the interface implemented by every background worker.
//
// Run starts the worker's loop and returns immediately; the loop stops
// when ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
