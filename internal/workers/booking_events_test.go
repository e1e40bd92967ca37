package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/internal/mock"
	"github.com/MKhiriev/go-travel-booking/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func event(id int64) models.BookingEvent {
	return models.BookingEvent{
		EventID:   "evt",
		Type:      models.BookingEventCreated,
		BookingID: id,
		UserID:    1,
		Booking:   models.BookingTypeHotel,
		Details:   "Hotel Grand Plaza Hotel in New York from 2024-06-01 to 2024-06-03",
	}
}

func waitDone(t *testing.T, w *BookingEventsWorker) {
	t.Helper()
	select {
	case <-w.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
}

// ── Enqueue ─────────────────────────────────────────────────────────────────

func TestBookingEventsWorker_Enqueue_DropsWhenFull(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := NewBookingEventsWorker(mock.NewMockEventPublisher(ctrl), 1, logger.Nop())

	assert.True(t, w.Enqueue(event(1)))
	assert.False(t, w.Enqueue(event(2)), "second event must be dropped without blocking")
}

func TestBookingEventsWorker_DefaultQueueSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := NewBookingEventsWorker(mock.NewMockEventPublisher(ctrl), 0, logger.Nop())

	assert.Equal(t, defaultQueueSize, cap(w.queue))
}

// ── Run ─────────────────────────────────────────────────────────────────────

func TestBookingEventsWorker_PublishesEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mock.NewMockEventPublisher(ctrl)

	published := make(chan models.BookingEvent, 2)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.BookingEvent) error {
			published <- e
			return nil
		}).Times(2)
	publisher.EXPECT().Close().Return(nil)

	w := NewBookingEventsWorker(publisher, 4, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	w.Run(ctx)

	require.True(t, w.Enqueue(event(1)))
	require.True(t, w.Enqueue(event(2)))

	for _, want := range []int64{1, 2} {
		select {
		case got := <-published:
			assert.Equal(t, want, got.BookingID)
		case <-time.After(2 * time.Second):
			t.Fatalf("event %d was not published", want)
		}
	}

	cancel()
	waitDone(t, w)
}

func TestBookingEventsWorker_PublishErrorDoesNotStopLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mock.NewMockEventPublisher(ctrl)

	second := make(chan struct{})
	gomock.InOrder(
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down")),
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, models.BookingEvent) error {
				close(second)
				return nil
			}),
	)
	publisher.EXPECT().Close().Return(nil)

	w := NewBookingEventsWorker(publisher, 4, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	w.Run(ctx)

	w.Enqueue(event(1))
	w.Enqueue(event(2))

	select {
	case <-second:
	case <-time.After(2 * time.Second):
		t.Fatal("second event was not published")
	}

	cancel()
	waitDone(t, w)
}

func TestBookingEventsWorker_DrainsQueueOnShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mock.NewMockEventPublisher(ctrl)

	gomock.InOrder(
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(3),
		publisher.EXPECT().Close().Return(errors.New("close failed")),
	)

	w := NewBookingEventsWorker(publisher, 4, logger.Nop())
	w.Enqueue(event(1))
	w.Enqueue(event(2))
	w.Enqueue(event(3))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w.Run(ctx)

	waitDone(t, w)
}

func TestBookingEventsWorker_EnqueueAfterStopIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mock.NewMockEventPublisher(ctrl)
	publisher.EXPECT().Close().Return(nil)

	w := NewBookingEventsWorker(publisher, 4, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	w.Run(ctx)
	cancel()
	waitDone(t, w)

	assert.False(t, w.Enqueue(event(42)), "worker is gone, nothing would ever publish the event")
	assert.Empty(t, w.queue)
}
