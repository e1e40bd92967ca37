package service

import (
	"context"

	"github.com/MKhiriev/go-travel-booking/internal/utils"
)

type authGateway struct {
	tokens TokenService
}

func NewAuthGateway(tokens TokenService) AuthGateway {
	return &authGateway{tokens: tokens}
}

// ResolveIdentity requires the exact "Bearer " prefix. Headers with any other
// shape are rejected without parsing.
func (a *authGateway) ResolveIdentity(ctx context.Context, header string) (string, bool) {
	raw, ok := utils.ParseBearerToken(header)
	if !ok {
		return "", false
	}

	email, err := a.tokens.Verify(ctx, raw)
	if err != nil {
		return "", false
	}
	return email, true
}
