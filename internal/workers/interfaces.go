// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import (
	"context"

	"github.com/MKhiriev/go-travel-booking/models"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: implementations spawn their own goroutines and stop
// them when ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    go w.loop(ctx)
//	}
type Worker interface {
	Run(ctx context.Context)
}

// EventQueue accepts booking events for asynchronous delivery.
// Enqueue never blocks; it reports false when the event was dropped.
type EventQueue interface {
	Enqueue(event models.BookingEvent) bool
}
