package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-travel-booking/internal/config"
	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/internal/utils"
	"github.com/MKhiriev/go-travel-booking/models"
)

const (
	tokenPath        = "/v1/security/oauth2/token"
	flightOffersPath = "/v2/shopping/flight-offers"
	hotelsByCityPath = "/v1/reference-data/locations/hotels/by-city"

	// maxFlightOffers is the page size requested from the flight search.
	maxFlightOffers = 10

	// upstreamCurrency is reported for every upstream offer.
	upstreamCurrency = "USD"

	// defaultHotelPricePerNight is used for upstream hotels because the
	// hotel listing carries no prices.
	defaultHotelPricePerNight = 120.0
)

// AccessToken is the result of the client-credentials exchange.
type AccessToken struct {
	Value     string
	ExpiresIn time.Duration
}

type httpTravelProvider struct {
	client *utils.HTTPClient

	apiKey    string
	apiSecret string

	logger *logger.Logger
}

// NewHTTPTravelProvider constructs the resty-backed [TravelProvider].
// It normalises and validates cfg.ProviderBaseURL and bounds every request
// by cfg.RequestTimeout.
func NewHTTPTravelProvider(cfg config.Adapter, logger *logger.Logger) (TravelProvider, error) {
	baseURL, err := normalizeBaseURL(cfg.ProviderBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid provider base url: %w", err)
	}

	provider := &httpTravelProvider{
		client:    utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		apiKey:    strings.TrimSpace(cfg.ProviderAPIKey),
		apiSecret: strings.TrimSpace(cfg.ProviderAPISecret),
		logger:    logger,
	}

	if !provider.HasCredentials() {
		logger.Warn().Msg("provider credentials are not configured, flight and hotel search will use fallback data")
	}

	return provider, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpTravelProvider) HasCredentials() bool {
	return h.apiKey != "" && h.apiSecret != ""
}

func (h *httpTravelProvider) CredentialsID() string {
	sum := sha256.Sum256([]byte(h.apiKey))
	return hex.EncodeToString(sum[:8])
}

// AccessToken implements [TravelProvider]. It POSTs the form-encoded
// client credentials to the token endpoint.
func (h *httpTravelProvider) AccessToken(ctx context.Context) (AccessToken, error) {
	if !h.HasCredentials() {
		return AccessToken{}, ErrNoCredentials
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type":    "client_credentials",
			"client_id":     h.apiKey,
			"client_secret": h.apiSecret,
		}).
		Post(tokenPath)
	if err != nil {
		return AccessToken{}, fmt.Errorf("access token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return AccessToken{}, err
	}

	var payload accessTokenResponse
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return AccessToken{}, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	if payload.AccessToken == "" {
		return AccessToken{}, ErrEmptyAccessToken
	}

	return AccessToken{
		Value:     payload.AccessToken,
		ExpiresIn: time.Duration(payload.ExpiresIn) * time.Second,
	}, nil
}

// SearchFlights implements [TravelProvider].
func (h *httpTravelProvider) SearchFlights(ctx context.Context, accessToken string, query models.FlightQuery) ([]models.FlightOffer, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetQueryParams(map[string]string{
			"originLocationCode":      query.Origin,
			"destinationLocationCode": query.Destination,
			"departureDate":           query.DepartureDate,
			"adults":                  strconv.Itoa(query.Adults),
			"max":                     strconv.Itoa(maxFlightOffers),
		}).
		Get(flightOffersPath)
	if err != nil {
		return nil, fmt.Errorf("flight search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var payload flightOffersResponse
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	if payload.Data == nil {
		return nil, ErrMissingData
	}

	return normalizeFlights(*payload.Data), nil
}

// SearchHotels implements [TravelProvider].
func (h *httpTravelProvider) SearchHotels(ctx context.Context, accessToken string, query models.HotelQuery) ([]models.HotelOffer, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetQueryParam("cityCode", query.City).
		Get(hotelsByCityPath)
	if err != nil {
		return nil, fmt.Errorf("hotel search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var payload hotelsResponse
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	if payload.Data == nil {
		return nil, ErrMissingData
	}

	return normalizeHotels(*payload.Data, query), nil
}
