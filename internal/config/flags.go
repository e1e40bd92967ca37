package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// stringList is a comma separated flag value.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*s = append(*s, part)
		}
	}
	return nil
}

// parseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-password-hash-key password hash key
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h", "30m")
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-log-level log level (debug, info, warn, error)
//	-allowed-origins comma separated CORS origins
//	-provider-url upstream provider base URL
//	-provider-key upstream provider API key
//	-provider-secret upstream provider API secret
//	-provider-timeout upstream provider request timeout
//	-redis-address redis host:port for the access-token cache
//	-kafka-brokers comma separated kafka brokers
//	-booking-events-topic kafka topic for booking events
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var passwordHashKey string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var logLevel string
	var allowedOrigins stringList
	var providerURL, providerKey, providerSecret string
	var providerTimeout time.Duration
	var redisAddress string
	var kafkaBrokers stringList
	var bookingEventsTopic string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&passwordHashKey, "password-hash-key", "", "Password hash key")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.Var(&allowedOrigins, "allowed-origins", "Comma separated CORS origins")
	fs.StringVar(&providerURL, "provider-url", "", "Upstream provider base URL")
	fs.StringVar(&providerKey, "provider-key", "", "Upstream provider API key")
	fs.StringVar(&providerSecret, "provider-secret", "", "Upstream provider API secret")
	fs.DurationVar(&providerTimeout, "provider-timeout", 0, "Upstream provider timeout (e.g., 10s)")
	fs.StringVar(&redisAddress, "redis-address", "", "Redis address host:port")
	fs.Var(&kafkaBrokers, "kafka-brokers", "Comma separated Kafka brokers")
	fs.StringVar(&bookingEventsTopic, "booking-events-topic", "", "Kafka topic for booking events")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			PasswordHashKey: passwordHashKey,
			TokenSignKey:    tokenSignKey,
			TokenIssuer:     tokenIssuer,
			TokenDuration:   tokenDuration,
			LogLevel:        logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Cache: Cache{
				RedisAddress: redisAddress,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			AllowedOrigins: allowedOrigins,
		},
		Adapter: Adapter{
			ProviderBaseURL:   providerURL,
			ProviderAPIKey:    providerKey,
			ProviderAPISecret: providerSecret,
			RequestTimeout:    providerTimeout,
		},
		Workers: Workers{
			KafkaBrokers:       kafkaBrokers,
			BookingEventsTopic: bookingEventsTopic,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
