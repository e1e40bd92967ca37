package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/internal/mock"
	"github.com/MKhiriev/go-travel-booking/internal/store"
	"github.com/MKhiriev/go-travel-booking/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserService_FindByEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, logger.Nop())

	want := models.User{UserID: 1, Email: "alice@example.com"}
	repo.EXPECT().FindUserByEmail(gomock.Any(), "alice@example.com").Return(want, nil)

	got, err := svc.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUserService_FindByEmail_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, logger.Nop())

	repo.EXPECT().FindUserByEmail(gomock.Any(), "ghost@example.com").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.FindByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, logger.Nop())

	update := models.ProfileUpdate{Name: "Alice", Phone: "555-0100"}
	want := models.User{UserID: 1, Email: "alice@example.com", Name: "Alice", Phone: "555-0100"}
	repo.EXPECT().UpdateProfile(gomock.Any(), int64(1), update).Return(want, nil)

	got, err := svc.UpdateProfile(context.Background(), 1, update)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Empty(t, got.Address)
}

func TestUserService_UpdateProfile_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, logger.Nop())

	repo.EXPECT().UpdateProfile(gomock.Any(), int64(9), gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.UpdateProfile(context.Background(), 9, models.ProfileUpdate{})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}
