package validators

import (
	"context"

	"github.com/MKhiriev/go-travel-booking/models"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

// CredentialsValidator checks the email/password pair submitted to the
// register and login endpoints.
type CredentialsValidator struct {
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(_ context.Context, credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if isBlank(credentials.Email) {
				return ErrEmptyEmail
			}
		case FieldPassword:
			// whitespace-only passwords are accepted, only emptiness is rejected
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
