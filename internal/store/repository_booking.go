package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/models"
)

// bookingRepository is the PostgreSQL-backed implementation of
// [BookingRepository] over the "bookings" table.
type bookingRepository struct {
	*DB
	logger *logger.Logger
}

func NewBookingRepository(db *DB, logger *logger.Logger) BookingRepository {
	logger.Debug().Msg("creating booking repository")
	return &bookingRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateBooking inserts booking and returns it with BookingID and CreatedAt
// filled in. A missing owner is reported as [ErrNoUserWasFound].
func (b *bookingRepository) CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	log := logger.FromContext(ctx)

	var saved models.Booking
	row := b.DB.QueryRowContext(ctx, createBooking, booking.UserID, booking.Type, booking.Details)
	if err := row.Scan(&saved.BookingID, &saved.UserID, &saved.Type, &saved.Details, &saved.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "bookingRepository.CreateBooking").
			Int64("user_id", booking.UserID).
			Msg("error inserting booking")
		return models.Booking{}, b.errorClassificator.Classify(err)
	}

	return saved, nil
}

// ListBookingsByUser returns every booking owned by userID ordered by id.
// A user without bookings gets an empty, non-nil slice.
func (b *bookingRepository) ListBookingsByUser(ctx context.Context, userID int64) ([]models.Booking, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBookingsQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "bookingRepository.ListBookingsByUser").
			Int64("user_id", userID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := b.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "bookingRepository.ListBookingsByUser").
			Int64("user_id", userID).
			Msg("failed to execute query for listing bookings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bookings := make([]models.Booking, 0, 16)
	for rows.Next() {
		var booking models.Booking
		if err := rows.Scan(&booking.BookingID, &booking.UserID, &booking.Type, &booking.Details, &booking.CreatedAt); err != nil {
			log.Err(err).
				Str("func", "bookingRepository.ListBookingsByUser").
				Int64("user_id", userID).
				Int("row", len(bookings)).
				Msg("failed to scan booking")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "bookingRepository.ListBookingsByUser").
			Int64("user_id", userID).
			Msg("error iterating bookings")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return bookings, nil
}
