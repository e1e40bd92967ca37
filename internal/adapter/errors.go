package adapter

import "errors"

var (
	// ErrNoCredentials is returned when the provider API key or secret is
	// empty.
	ErrNoCredentials = errors.New("provider credentials are not configured")

	// ErrEmptyAccessToken is returned when the token exchange succeeds but
	// yields no access_token.
	ErrEmptyAccessToken = errors.New("provider returned an empty access token")

	// ErrUpstreamStatus is returned for any non-2xx provider response.
	ErrUpstreamStatus = errors.New("provider responded with an error status")

	// ErrUnauthorized additionally marks 401 responses.
	ErrUnauthorized = errors.New("provider rejected the credentials")

	// ErrMissingData is returned when a search response has no data field.
	ErrMissingData = errors.New("provider response has no data")

	// ErrDecodingResponse is returned when a provider body is not valid JSON
	// of the expected shape.
	ErrDecodingResponse = errors.New("error decoding provider response")

	// ErrPublishingEvent is returned when a booking event cannot be written
	// to the broker.
	ErrPublishingEvent = errors.New("error publishing booking event")
)
