// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised inside the auth middleware. They are only logged;
// the client always receives the same plain-text 401 or 404 body.
var (
	// ErrUnauthenticated is logged when the Authorization header is missing,
	// uses a scheme other than Bearer, or carries a token that fails
	// verification.
	ErrUnauthenticated = errors.New("invalid or missing bearer token")

	// ErrUserNotInContext is logged by protected handlers when the auth
	// middleware did not attach a user to the request context.
	ErrUserNotInContext = errors.New("no authenticated user in request context")
)
