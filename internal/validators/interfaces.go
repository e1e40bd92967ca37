// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks bookings and credentials before they reach the
// store. Services wrap their inner implementation with a validating layer
// instead of validating inline.
package validators

import "context"

// Validator checks a value. When fields are given only those fields are
// checked; otherwise every rule for the value's type applies.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
