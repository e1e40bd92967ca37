package config

import "time"

const (
	defaultHTTPAddress        = "localhost:8080"
	defaultServerTimeout      = 30 * time.Second
	defaultTokenIssuer        = "go-travel-booking"
	defaultTokenDuration      = 24 * time.Hour
	defaultLogLevel           = "debug"
	defaultAppVersion         = "1.0.0"
	defaultProviderBaseURL    = "https://test.api.amadeus.com"
	defaultProviderTimeout    = 10 * time.Second
	defaultBookingEventsTopic = "booking-events"
	defaultQueueSize          = 100
)

// defaultAllowedOrigins are the development servers of the web front-end.
var defaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			LogLevel:      defaultLogLevel,
			Version:       defaultAppVersion,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultServerTimeout,
			AllowedOrigins: append([]string(nil), defaultAllowedOrigins...),
		},
		Adapter: Adapter{
			ProviderBaseURL: defaultProviderBaseURL,
			RequestTimeout:  defaultProviderTimeout,
		},
		Workers: Workers{
			BookingEventsTopic: defaultBookingEventsTopic,
			QueueSize:          defaultQueueSize,
		},
	}
}
