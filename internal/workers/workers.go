package workers

import (
	"context"

	"github.com/MKhiriev/go-travel-booking/internal/adapter"
	"github.com/MKhiriev/go-travel-booking/internal/config"
	"github.com/MKhiriev/go-travel-booking/internal/logger"
)

type Workers struct {
	workers []Worker

	// BookingEvents is nil when no Kafka brokers are configured.
	BookingEvents *BookingEventsWorker
}

// NewWorkers assembles the background workers enabled by cfg.
// publisher may be nil, in which case booking events are disabled.
func NewWorkers(cfg config.Workers, publisher adapter.EventPublisher, log *logger.Logger) *Workers {
	w := &Workers{}

	if publisher != nil {
		w.BookingEvents = NewBookingEventsWorker(publisher, cfg.QueueSize, log)
		w.workers = append(w.workers, w.BookingEvents)
	} else {
		log.Info().Msg("no kafka brokers configured, booking events are disabled")
	}

	return w
}

// EventQueue returns the queue booking events should be handed to, or nil
// when events are disabled.
func (w *Workers) EventQueue() EventQueue {
	if w.BookingEvents == nil {
		return nil
	}
	return w.BookingEvents
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Wait blocks until every started worker has stopped. It must only be called
// after Run, once the run context has been cancelled.
func (w *Workers) Wait() {
	if w.BookingEvents != nil {
		<-w.BookingEvents.Done()
	}
}
