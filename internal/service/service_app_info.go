package service

import (
	"context"

	"github.com/MKhiriev/go-travel-booking/internal/config"
	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/models"
)

type appInfoService struct {
	info models.VersionResponse

	logger *logger.Logger
}

// NewAppInfoService prefers the linker-provided build version and falls back
// to cfg.Version. It fails with ErrVersionIsNotSpecified when neither is set.
func NewAppInfoService(buildInfo models.AppBuildInfo, cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	info := buildInfo.VersionResponse(cfg.Version)
	if info.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().Str("version", info.Version).Str("commit", info.Commit).Msg("app info resolved")
	return &appInfoService{info: info, logger: logger}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.info.Version
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.VersionResponse {
	return s.info
}
