package models

import "time"

// BookingType names the kind of reservation a booking describes.
type BookingType string

const (
	BookingTypeFlight BookingType = "Flight"
	BookingTypeHotel  BookingType = "Hotel"
	BookingTypeCab    BookingType = "Cab"
)

// Booking is an immutable reservation record owned by exactly one user.
type Booking struct {
	// BookingID is the identifier assigned by the database.
	BookingID int64 `json:"id"`

	// Type is the kind of reservation (Flight, Hotel, Cab or a free-form value
	// supplied through the generic bookings endpoint).
	Type BookingType `json:"type"`

	// Details is the free-text rendering of the reservation.
	Details string `json:"details"`

	// UserID references the owner of the booking.
	UserID int64 `json:"userId"`

	// CreatedAt is set by the database on insert.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Booking model.
func (b Booking) TableName() string {
	return "bookings"
}

// BookingRequest is the body of POST /api/bookings.
type BookingRequest struct {
	Type    BookingType `json:"type"`
	Details string      `json:"details"`
}

// BookingEventType enumerates the events emitted for bookings.
type BookingEventType string

const (
	BookingEventCreated BookingEventType = "booking.created"
)

// BookingEvent is published to the message broker after a booking has been
// persisted.
type BookingEvent struct {
	EventID    string           `json:"eventId"`
	Type       BookingEventType `json:"type"`
	BookingID  int64            `json:"bookingId"`
	UserID     int64            `json:"userId"`
	Booking    BookingType      `json:"bookingType"`
	Details    string           `json:"details"`
	OccurredAt time.Time        `json:"occurredAt"`
}
