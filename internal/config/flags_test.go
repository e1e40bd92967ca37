package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		host        string
		port        int
	}{
		{name: "localhost", input: "localhost:8080", host: "localhost", port: 8080},
		{name: "ipv4", input: "127.0.0.1:9000", host: "127.0.0.1", port: 9000},
		{name: "all interfaces", input: ":8080", host: "", port: 8080},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "port not a number", input: "localhost:http", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "hostname not allowed", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.host, addr.Host)
			assert.Equal(t, tt.port, addr.Port)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "127.0.0.1:8081",
		"-d", "postgres://flags/db",
		"-config", "/etc/travel.json",
		"-password-hash-key", "phk",
		"-token-sign-key", "tsk",
		"-token-issuer", "flags-issuer",
		"-token-duration", "2h",
		"-request-timeout", "15s",
		"-log-level", "warn",
		"-allowed-origins", "http://a.example, http://b.example",
		"-provider-url", "https://provider.example",
		"-provider-key", "key",
		"-provider-secret", "secret",
		"-provider-timeout", "7s",
		"-redis-address", "localhost:6379",
		"-kafka-brokers", "k1:9092",
		"-booking-events-topic", "bookings",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://flags/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/travel.json", cfg.JSONFilePath)
	assert.Equal(t, "phk", cfg.App.PasswordHashKey)
	assert.Equal(t, "tsk", cfg.App.TokenSignKey)
	assert.Equal(t, "flags-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "https://provider.example", cfg.Adapter.ProviderBaseURL)
	assert.Equal(t, "key", cfg.Adapter.ProviderAPIKey)
	assert.Equal(t, "secret", cfg.Adapter.ProviderAPISecret)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "localhost:6379", cfg.Storage.Cache.RedisAddress)
	assert.Equal(t, []string{"k1:9092"}, cfg.Workers.KafkaBrokers)
	assert.Equal(t, "bookings", cfg.Workers.BookingEventsTopic)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Server.AllowedOrigins)
	assert.Zero(t, cfg.App.TokenDuration)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "nope"})
	assert.Error(t, err)
}
