package service

import (
	"github.com/MKhiriev/go-travel-booking/internal/adapter"
	"github.com/MKhiriev/go-travel-booking/internal/config"
	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/internal/store"
	"github.com/MKhiriev/go-travel-booking/internal/utils"
	"github.com/MKhiriev/go-travel-booking/internal/workers"
	"github.com/MKhiriev/go-travel-booking/models"
)

type Services struct {
	TokenService   TokenService
	AuthGateway    AuthGateway
	AuthService    AuthService
	UserService    UserService
	BookingService BookingService
	SearchService  SearchService
	AppInfoService AppInfoService
}

// NewServices wires every service. key is the signing key derived once at
// startup; events may be nil when booking events are disabled.
func NewServices(
	storages *store.Storages,
	provider adapter.TravelProvider,
	events workers.EventQueue,
	key utils.SigningKey,
	buildInfo models.AppBuildInfo,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	tokenService := NewTokenService(key, cfg.App, logger)
	hasher := utils.NewPasswordHasher(cfg.App.PasswordHashKey, 0)

	bookingService := NewBookingValidationService().Wrap(
		NewBookingService(storages.BookingRepository, events, logger),
	)

	return &Services{
		TokenService:   tokenService,
		AuthGateway:    NewAuthGateway(tokenService),
		AuthService:    NewAuthService(storages.UserRepository, hasher, tokenService, logger),
		UserService:    NewUserService(storages.UserRepository, logger),
		BookingService: bookingService,
		SearchService:  NewSearchService(provider, storages.AccessTokenCache, logger),
		AppInfoService: appInfoService,
	}, nil
}
