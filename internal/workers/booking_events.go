// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-travel-booking/internal/adapter"
	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/models"
)

const (
	defaultQueueSize = 256

	// publishTimeout bounds a single broker write.
	publishTimeout = 5 * time.Second
)

// BookingEventsWorker delivers booking events to the broker in the
// background so that booking requests never wait on Kafka.
type BookingEventsWorker struct {
	queue     chan models.BookingEvent
	publisher adapter.EventPublisher
	logger    *logger.Logger

	// mu guards stopped against sends racing the final drain.
	mu      sync.RWMutex
	stopped bool

	done chan struct{}
}

// NewBookingEventsWorker creates a worker with a queue of queueSize events.
// A non-positive queueSize falls back to 256.
func NewBookingEventsWorker(publisher adapter.EventPublisher, queueSize int, log *logger.Logger) *BookingEventsWorker {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	return &BookingEventsWorker{
		queue:     make(chan models.BookingEvent, queueSize),
		publisher: publisher,
		logger:    log,
		done:      make(chan struct{}),
	}
}

// Enqueue implements EventQueue.
// Events offered after the worker has stopped are rejected.
func (w *BookingEventsWorker) Enqueue(event models.BookingEvent) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.stopped {
		w.logger.Warn().
			Str("event_id", event.EventID).
			Int64("booking_id", event.BookingID).
			Msg("booking events worker has stopped, event dropped")
		return false
	}

	select {
	case w.queue <- event:
		return true
	default:
		w.logger.Warn().
			Str("event_id", event.EventID).
			Int64("booking_id", event.BookingID).
			Msg("booking events queue is full, event dropped")
		return false
	}
}

// Run starts the delivery loop. When ctx is cancelled the loop publishes
// whatever is still queued, closes the publisher and signals Done.
func (w *BookingEventsWorker) Run(ctx context.Context) {
	go w.loop(ctx)
}

// Done is closed once the worker has fully stopped.
func (w *BookingEventsWorker) Done() <-chan struct{} {
	return w.done
}

func (w *BookingEventsWorker) loop(ctx context.Context) {
	defer close(w.done)

	for {
		select {
		case <-ctx.Done():
			w.mu.Lock()
			w.stopped = true
			w.mu.Unlock()

			w.drain()
			if err := w.publisher.Close(); err != nil {
				w.logger.Err(err).Msg("error closing booking events publisher")
			}
			return
		case event := <-w.queue:
			w.publish(event)
		}
	}
}

func (w *BookingEventsWorker) drain() {
	for {
		select {
		case event := <-w.queue:
			w.publish(event)
		default:
			return
		}
	}
}

func (w *BookingEventsWorker) publish(event models.BookingEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := w.publisher.Publish(ctx, event); err != nil {
		w.logger.Err(err).
			Str("event_id", event.EventID).
			Int64("booking_id", event.BookingID).
			Msg("failed to publish booking event")
	}
}
