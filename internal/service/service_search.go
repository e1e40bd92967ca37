// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-travel-booking/internal/adapter"
	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/internal/store"
	"github.com/MKhiriev/go-travel-booking/models"
)

// accessTokenExpirySkew is subtracted from the upstream expires_in before
// caching so that a cached token is never used right at its expiry.
const accessTokenExpirySkew = 30 * time.Second

// searchService proxies flight and hotel searches to the upstream provider
// and degrades to built-in offers on any failure. It holds no per-call
// state and is safe for concurrent use.
type searchService struct {
	provider adapter.TravelProvider

	// cache is nil when Redis is not configured.
	cache store.AccessTokenCache

	logger *logger.Logger
}

// NewSearchService constructs a SearchService. cache may be nil.
func NewSearchService(provider adapter.TravelProvider, cache store.AccessTokenCache, logger *logger.Logger) SearchService {
	return &searchService{
		provider: provider,
		cache:    cache,
		logger:   logger,
	}
}

func (s *searchService) SearchFlights(ctx context.Context, query models.FlightQuery) []models.FlightOffer {
	log := logger.FromContext(ctx)

	token, ok := s.accessToken(ctx)
	if !ok {
		return mockFlights(query)
	}

	offers, err := s.provider.SearchFlights(ctx, token.value, query)
	if err != nil {
		s.forgetRejectedToken(ctx, token, err)
		log.Warn().Err(err).Msg("upstream flight search failed, using fallback offers")
		return mockFlights(query)
	}
	if len(offers) == 0 {
		log.Warn().Msg("upstream flight search returned no usable offers, using fallback offers")
		return mockFlights(query)
	}

	return offers
}

func (s *searchService) SearchHotels(ctx context.Context, query models.HotelQuery) []models.HotelOffer {
	log := logger.FromContext(ctx)

	token, ok := s.accessToken(ctx)
	if !ok {
		return mockHotels(query)
	}

	offers, err := s.provider.SearchHotels(ctx, token.value, query)
	if err != nil {
		s.forgetRejectedToken(ctx, token, err)
		log.Warn().Err(err).Msg("upstream hotel search failed, using fallback offers")
		return mockHotels(query)
	}
	if len(offers) == 0 {
		log.Warn().Msg("upstream hotel search returned no usable offers, using fallback offers")
		return mockHotels(query)
	}

	return offers
}

// SearchCabs always answers from the built-in set; there is no cab
// upstream.
func (s *searchService) SearchCabs(ctx context.Context, query models.CabQuery) []models.CabOffer {
	return mockCabs(query)
}

// upstreamToken is an access token together with the cache key it is
// stored under.
type upstreamToken struct {
	value  string
	key    string
	cached bool
}

// accessToken returns an upstream access token, from the cache when
// possible. Any failure is logged and reported as ok == false.
func (s *searchService) accessToken(ctx context.Context) (upstreamToken, bool) {
	log := logger.FromContext(ctx)

	if !s.provider.HasCredentials() {
		return upstreamToken{}, false
	}

	key := s.provider.CredentialsID()
	if s.cache != nil {
		token, found, err := s.cache.GetAccessToken(ctx, key)
		switch {
		case err != nil:
			log.Warn().Err(err).Msg("access token cache lookup failed")
		case found:
			return upstreamToken{value: token, key: key, cached: true}, true
		}
	}

	token, err := s.provider.AccessToken(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("upstream access token exchange failed, using fallback offers")
		return upstreamToken{}, false
	}

	if s.cache != nil {
		ttl := token.ExpiresIn - accessTokenExpirySkew
		if err = s.cache.SetAccessToken(ctx, key, token.Value, ttl); err != nil {
			log.Warn().Err(err).Msg("access token cache update failed")
		}
	}

	return upstreamToken{value: token.Value, key: key}, true
}

// forgetRejectedToken evicts a cached token the upstream answered 401 to,
// so the next search exchanges credentials again instead of reusing it
// until the TTL runs out. The current call is not retried.
func (s *searchService) forgetRejectedToken(ctx context.Context, token upstreamToken, err error) {
	if !token.cached || s.cache == nil || !errors.Is(err, adapter.ErrUnauthorized) {
		return
	}

	log := logger.FromContext(ctx)
	if err = s.cache.DeleteAccessToken(ctx, token.key); err != nil {
		log.Warn().Err(err).Msg("access token cache eviction failed")
		return
	}
	log.Info().Msg("upstream rejected cached access token, evicted")
}
