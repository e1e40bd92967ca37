// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// travel-booking server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Several of them are part of the public API contract with the web front-end
// and must not be reworded.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgEmailAlreadyExists is returned by registration when the email is
	// already taken.
	MsgEmailAlreadyExists = "Email already exists"

	// MsgInvalidCredentials is returned by login when the password does not
	// match.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgUserNotFound is returned when the identity carried by a valid token,
	// or the email supplied to login, has no stored user.
	MsgUserNotFound = "User not found"

	// MsgInvalidOrMissingToken is returned by protected routes when the
	// Authorization header is absent, not a bearer token, or fails
	// verification.
	MsgInvalidOrMissingToken = "Invalid or missing token"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgRegistrationFailed is returned when the registration handler
	// encounters an unexpected error that prevents account creation.
	MsgRegistrationFailed = "registration failed"

	// MsgBookingFailed is returned when a booking cannot be persisted.
	MsgBookingFailed = "booking failed"
)
