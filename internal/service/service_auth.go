package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/internal/store"
	"github.com/MKhiriev/go-travel-booking/internal/utils"
	"github.com/MKhiriev/go-travel-booking/internal/validators"
	"github.com/MKhiriev/go-travel-booking/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration and credential verification using a
// UserRepository for persistence, a PasswordHasher for password digests and
// a TokenService for issuing session tokens.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher turns plaintext passwords into bcrypt digests. Its HMAC key must
	// match the one used at registration time.
	hasher *utils.PasswordHasher

	tokens    TokenService
	validator validators.Validator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher *utils.PasswordHasher, tokens TokenService, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		validator:      validators.NewCredentialsValidator(),
		logger:         logger,
	}
}

// Register creates a new account and immediately issues a token for it.
//
// Returns:
//   - ErrInvalidDataProvided if email or password is empty.
//   - a wrapped store.ErrEmailAlreadyExists if the email is taken.
//   - a wrapped ErrTokenCreationFailed if signing fails.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Error().Err(err).Str("email", credentials.Email).Msg("invalid registration data provided")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	passwordHash, err := a.hasher.Hash(credentials.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.AuthResponse{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        credentials.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("user creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.issue(ctx, user.Email)
}

// Login authenticates an existing user and issues a token.
//
// Returns:
//   - ErrInvalidDataProvided if email or password is empty.
//   - a wrapped store.ErrNoUserWasFound if no account has that email.
//   - ErrInvalidCredentials if the password does not match.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Error().Err(err).Str("email", credentials.Email).Msg("invalid login data provided")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("user search by email failed")
		return models.AuthResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Compare(user.PasswordHash, credentials.Password) {
		log.Warn().Int64("id", user.UserID).Msg("wrong password")
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	return a.issue(ctx, user.Email)
}

func (a *authService) issue(ctx context.Context, email string) (models.AuthResponse, error) {
	token, err := a.tokens.Issue(ctx, email)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("token issuing failed")
		return models.AuthResponse{}, err
	}

	return models.AuthResponse{Token: token.String(), Email: email}, nil
}
