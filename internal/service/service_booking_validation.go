package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-travel-booking/internal/validators"
	"github.com/MKhiriev/go-travel-booking/models"
)

// BookingValidationService rejects bookings with a blank type or details or
// a non-positive owner before they reach the wrapped service.
type BookingValidationService struct {
	inner     BookingService
	validator validators.Validator
}

func NewBookingValidationService() BookingServiceWrapper {
	return &BookingValidationService{
		validator: validators.NewBookingValidator(),
	}
}

func (v *BookingValidationService) CreateBooking(ctx context.Context, userID int64, bookingType models.BookingType, details string) (models.Booking, error) {
	booking := models.Booking{UserID: userID, Type: bookingType, Details: details}
	if err := v.validator.Validate(ctx, booking); err != nil {
		return models.Booking{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateBooking(ctx, userID, bookingType, details)
}

func (v *BookingValidationService) ListBookings(ctx context.Context, userID int64) ([]models.Booking, error) {
	if err := v.validator.Validate(ctx, models.Booking{UserID: userID}, validators.FieldUserID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ListBookings(ctx, userID)
}

func (v *BookingValidationService) Wrap(service BookingService) BookingService {
	v.inner = service
	return v
}
