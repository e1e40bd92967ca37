package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup and profile updates against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the UserID
// assigned by the database.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Email, user.PasswordHash, user.Name, user.Address, user.Phone)

	var created models.User
	if err := row.Scan(&created.UserID, &created.Email, &created.PasswordHash, &created.Name, &created.Address, &created.Phone); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, r.db.errorClassificator.Classify(err)
	}

	return created, nil
}

// FindUserByEmail retrieves the user whose email matches exactly.
// An empty result set is reported as [ErrNoUserWasFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	if err := row.Scan(&found.UserID, &found.Email, &found.PasswordHash, &found.Name, &found.Address, &found.Phone); err != nil {
		classified := r.db.errorClassificator.Classify(err)
		if !errors.Is(classified, ErrNoUserWasFound) {
			log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user by email")
		}
		return models.User{}, classified
	}

	return found, nil
}

// UpdateProfile overwrites the profile fields of userID and returns the
// stored record.
func (r *userRepository) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProfileQuery(userID, update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("failed to create query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&updated.UserID, &updated.Email, &updated.PasswordHash, &updated.Name, &updated.Address, &updated.Phone); err != nil {
		log.Err(err).
			Str("func", "*userRepository.UpdateProfile").
			Int64("user_id", userID).
			Msg("error updating profile")
		return models.User{}, r.db.errorClassificator.Classify(err)
	}

	return updated, nil
}
