package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a signed JWT together with the claims it was issued with.
//
// SignedString holds the compact header.payload.signature form that is handed
// to clients; the embedded claims are kept for inspection on the server side.
type Token struct {
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// AuthResponse is returned by the register and login endpoints.
type AuthResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}
