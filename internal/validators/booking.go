// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-travel-booking/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUserID targets the owner of a booking.
	FieldUserID = "user_id"

	// FieldType targets the booking kind (Flight, Hotel, Cab or free-form).
	FieldType = "type"

	// FieldDetails targets the free-text rendering of a booking.
	FieldDetails = "details"
)

// BookingValidator implements Validator for bookings.
//
// Booking type is deliberately not restricted to the Flight/Hotel/Cab set:
// the generic bookings endpoint stores whatever non-blank type it receives.
type BookingValidator struct {
}

// NewBookingValidator constructs a BookingValidator.
func NewBookingValidator() Validator {
	return &BookingValidator{}
}

// Validate accepts models.Booking as a value or pointer and returns
// ErrUnsupportedType for anything else.
func (v *BookingValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Booking:
		return v.validateBooking(ctx, value, fields...)
	case *models.Booking:
		return v.validateBooking(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateBooking checks UserID, Type and Details by default.
func (v *BookingValidator) validateBooking(_ context.Context, booking models.Booking, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldType, FieldDetails}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if booking.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldType:
			if isBlank(string(booking.Type)) {
				return ErrEmptyType
			}
		case FieldDetails:
			if isBlank(booking.Details) {
				return ErrEmptyDetails
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
