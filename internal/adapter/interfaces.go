// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound integrations of the travel-booking
// server: the upstream travel-data provider and the booking event broker.
//
// [TravelProvider] talks to an Amadeus-style REST API over resty. Every call
// is a single attempt bounded by the configured timeout; failures are
// returned as errors wrapping the sentinels of errors.go so that the service
// layer can decide to fall back to built-in data.
//
// [EventPublisher] writes booking events to Kafka.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-travel-booking/models"
)

// TravelProvider defines the operations offered by the upstream travel-data
// provider.
type TravelProvider interface {
	// HasCredentials reports whether both the API key and secret are set.
	// Without them AccessToken always fails with ErrNoCredentials.
	HasCredentials() bool

	// CredentialsID returns a stable, non-secret identifier of the configured
	// credentials. It is used as the access-token cache key.
	CredentialsID() string

	// AccessToken performs the client-credentials exchange.
	AccessToken(ctx context.Context) (AccessToken, error)

	// SearchFlights queries flight offers with the given bearer access token
	// and returns them normalized. A response without a data field fails
	// with ErrMissingData; entries without an id are skipped.
	SearchFlights(ctx context.Context, accessToken string, query models.FlightQuery) ([]models.FlightOffer, error)

	// SearchHotels lists hotels of query.City with the given bearer access
	// token and returns them normalized. A response without a data field
	// fails with ErrMissingData; entries without a hotelId are skipped.
	SearchHotels(ctx context.Context, accessToken string, query models.HotelQuery) ([]models.HotelOffer, error)
}

// EventPublisher delivers booking events to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, event models.BookingEvent) error
	Close() error
}
