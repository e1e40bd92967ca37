package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/internal/store"
	"github.com/MKhiriev/go-travel-booking/internal/utils"
	"github.com/MKhiriev/go-travel-booking/internal/workers"
	"github.com/MKhiriev/go-travel-booking/models"
)

type bookingService struct {
	bookingRepository store.BookingRepository

	// events is nil when booking events are disabled.
	events workers.EventQueue
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewBookingService constructs a BookingService. events may be nil.
func NewBookingService(bookingRepository store.BookingRepository, events workers.EventQueue, logger *logger.Logger) BookingService {
	return &bookingService{
		bookingRepository: bookingRepository,
		events:            events,
		ids:               utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

// CreateBooking persists the booking and hands a booking.created event to
// the event queue. A dropped event does not fail the booking.
func (b *bookingService) CreateBooking(ctx context.Context, userID int64, bookingType models.BookingType, details string) (models.Booking, error) {
	booking, err := b.bookingRepository.CreateBooking(ctx, models.Booking{
		UserID:  userID,
		Type:    bookingType,
		Details: details,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("booking creation failed")
		return models.Booking{}, fmt.Errorf("booking creation failed: %w", err)
	}

	if b.events != nil {
		b.events.Enqueue(models.BookingEvent{
			EventID:    b.ids.Generate(),
			Type:       models.BookingEventCreated,
			BookingID:  booking.BookingID,
			UserID:     booking.UserID,
			Booking:    booking.Type,
			Details:    booking.Details,
			OccurredAt: time.Now().UTC(),
		})
	}

	return booking, nil
}

func (b *bookingService) ListBookings(ctx context.Context, userID int64) ([]models.Booking, error) {
	bookings, err := b.bookingRepository.ListBookingsByUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("listing bookings failed")
		return nil, fmt.Errorf("listing bookings failed: %w", err)
	}
	return bookings, nil
}
