package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/internal/store"
	"github.com/MKhiriev/go-travel-booking/models"
)

type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{userRepository: userRepository, logger: logger}
}

// FindByEmail is used by the auth middleware to turn a verified token
// subject into a stored user.
func (u *userService) FindByEmail(ctx context.Context, email string) (models.User, error) {
	user, err := u.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}
	return user, nil
}

// UpdateProfile overwrites all three profile fields.
func (u *userService) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error) {
	user, err := u.userRepository.UpdateProfile(ctx, userID, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}
	return user, nil
}
