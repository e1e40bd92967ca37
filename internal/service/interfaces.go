package service

import (
	"context"

	"github.com/MKhiriev/go-travel-booking/models"
)

// TokenService issues and verifies identity tokens. The subject of every
// token is the user's email.
type TokenService interface {
	Issue(ctx context.Context, subject string) (models.Token, error)

	// Verify returns the token subject or ErrInvalidToken. It never panics on
	// malformed input.
	Verify(ctx context.Context, token string) (string, error)

	// IsValidFor reports whether token verifies to exactly subject.
	IsValidFor(ctx context.Context, token, subject string) bool
}

// AuthGateway turns an Authorization header into the caller's email.
type AuthGateway interface {
	// ResolveIdentity returns ("", false) for a missing header, a wrong
	// scheme and any token that fails verification alike.
	ResolveIdentity(ctx context.Context, header string) (string, bool)
}

type AuthService interface {
	Register(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)
}

type UserService interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, userID int64, bookingType models.BookingType, details string) (models.Booking, error)
	ListBookings(ctx context.Context, userID int64) ([]models.Booking, error)
}

// SearchService answers travel searches. Upstream failures never surface:
// every call yields offers, falling back to built-in data.
type SearchService interface {
	SearchFlights(ctx context.Context, query models.FlightQuery) []models.FlightOffer
	SearchHotels(ctx context.Context, query models.HotelQuery) []models.HotelOffer
	SearchCabs(ctx context.Context, query models.CabQuery) []models.CabOffer
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.VersionResponse
}

// BookingServiceWrapper defines middleware composition for BookingService.
// Implementations wrap an existing BookingService to add behavior such as
// validation.
type BookingServiceWrapper interface {
	Wrap(BookingService) BookingService
}
