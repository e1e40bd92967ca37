package http

import (
	"github.com/MKhiriev/go-travel-booking/internal/config"
	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/internal/service"
	"github.com/MKhiriev/go-travel-booking/internal/utils"
)

type Handler struct {
	services *service.Services

	allowedOrigins []string
	ids            *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		allowedOrigins: cfg.AllowedOrigins,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}
