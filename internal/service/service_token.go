// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-travel-booking/internal/config"
	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/internal/utils"
	"github.com/MKhiriev/go-travel-booking/models"
)

// tokenService signs tokens with a SigningKey fixed at construction.
// All fields are read-only after construction, so the service is safe for
// concurrent use.
type tokenService struct {
	key           utils.SigningKey
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewTokenService constructs a TokenService. key is derived once at startup
// by utils.NewSigningKey and injected here; the service never replaces it.
func NewTokenService(key utils.SigningKey, cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		key:           key,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Issue creates a token for subject with iat set to now and exp set to
// now + the configured token duration.
func (t *tokenService) Issue(ctx context.Context, subject string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(t.tokenIssuer, subject, t.tokenDuration, t.key)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

// Verify checks signature, algorithm, issuer, expiry and subject presence.
// Every failure is collapsed into ErrInvalidToken.
func (t *tokenService) Verify(ctx context.Context, token string) (string, error) {
	parsed, err := utils.ValidateAndParseJWTToken(token, t.key, t.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token verification failed")
		return "", ErrInvalidToken
	}
	return parsed.Subject, nil
}

func (t *tokenService) IsValidFor(ctx context.Context, token, subject string) bool {
	got, err := t.Verify(ctx, token)
	return err == nil && got == subject
}
