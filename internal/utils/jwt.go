package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/models"
	"github.com/golang-jwt/jwt/v5"
)

// MinSigningKeyLength is the minimum key size in bytes accepted for HS512.
const MinSigningKeyLength = 64

// base64KeyPrefix marks a configured secret as standard base64.
const base64KeyPrefix = "base64:"

var signingMethod = jwt.SigningMethodHS512

// SigningKey is the process-wide HMAC key used to sign and verify tokens.
// It is derived once by NewSigningKey and never changes afterwards, so it is
// safe for concurrent use without locking.
type SigningKey struct {
	material  []byte
	ephemeral bool
}

// NewSigningKey derives a SigningKey from the configured secret.
//
// Resolution order:
//   - empty secret: a random key is generated;
//   - "base64:<encoded>": the remainder is decoded, a decoding failure
//     produces a random key;
//   - anything else: the raw bytes of the secret are used;
//   - material shorter than MinSigningKeyLength is replaced by a random key.
//
// Every fallback is logged at WARN level. A generated key is only valid for
// the lifetime of the current process, so tokens cannot be verified by other
// instances.
func NewSigningKey(secret string, log *logger.Logger) (SigningKey, error) {
	if strings.TrimSpace(secret) == "" {
		log.Warn().Msg("token sign key is empty, generating a random key for this process")
		return randomSigningKey()
	}

	material := []byte(secret)
	if encoded, ok := strings.CutPrefix(secret, base64KeyPrefix); ok {
		decoded, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			log.Warn().Err(err).Msg("token sign key is malformed, generating a random key for this process")
			return randomSigningKey()
		}
		material = decoded
	}

	if len(material) < MinSigningKeyLength {
		log.Warn().
			Int("length", len(material)).
			Int("required", MinSigningKeyLength).
			Msg("token sign key is too short, generating a random key for this process")
		return randomSigningKey()
	}

	return SigningKey{material: material}, nil
}

func randomSigningKey() (SigningKey, error) {
	material := make([]byte, MinSigningKeyLength)
	if _, err := rand.Read(material); err != nil {
		return SigningKey{}, fmt.Errorf("error generating random signing key: %w", err)
	}
	return SigningKey{material: material, ephemeral: true}, nil
}

// Ephemeral reports whether the key was generated for this process instead of
// being taken from configuration.
func (k SigningKey) Ephemeral() bool {
	return k.ephemeral
}

// IsZero reports whether the key holds no material.
func (k SigningKey) IsZero() bool {
	return len(k.material) == 0
}

// GenerateJWTToken creates a signed HMAC-SHA512 JWT token with the given parameters.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user email
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-travel-booking", "alice@example.com", time.Hour, key)
func GenerateJWTToken(issuer, subject string, tokenDuration time.Duration, key SigningKey) (models.Token, error) {
	if issuer == "" || subject == "" || tokenDuration == 0 || key.IsZero() {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	tokenString, err := jwt.NewWithClaims(signingMethod, claims).SignedString(key.material)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{RegisteredClaims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - signature verification with key, HS512 only
//   - issuer (iss) check against tokenIssuer
//   - expiration (exp) presence and check
//   - subject (sub) presence
//
// Malformed input never panics; it is reported as an error.
func ValidateAndParseJWTToken(tokenString string, key SigningKey, tokenIssuer string) (models.Token, error) {
	if key.IsZero() {
		return models.Token{}, errors.New("empty signing key")
	}

	claims := &models.Token{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return key.material, nil
	},
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	claims.SignedString = tokenString
	return *claims, nil
}

// ParseBearerToken strips the case-sensitive "Bearer " prefix from an
// Authorization header value. It reports false when the prefix is missing or
// nothing follows it.
func ParseBearerToken(authorizationHeader string) (string, bool) {
	token, ok := strings.CutPrefix(authorizationHeader, "Bearer ")
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
