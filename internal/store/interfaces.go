package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-travel-booking/models"
)

// UserRepository persists user identities and profiles.
type UserRepository interface {
	// CreateUser inserts user and returns it with its assigned id.
	// A taken email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the exact email or
	// ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// UpdateProfile overwrites name, address and phone of the user.
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error)
}

// BookingRepository persists booking records.
type BookingRepository interface {
	CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error)
	ListBookingsByUser(ctx context.Context, userID int64) ([]models.Booking, error)
}

// AccessTokenCache keeps upstream provider access tokens between requests.
// A miss is reported as ("", false, nil).
type AccessTokenCache interface {
	GetAccessToken(ctx context.Context, key string) (string, bool, error)
	SetAccessToken(ctx context.Context, key, token string, ttl time.Duration) error
	DeleteAccessToken(ctx context.Context, key string) error
}
