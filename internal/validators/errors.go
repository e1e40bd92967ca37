package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID = errors.New("invalid user ID")
	ErrEmptyType     = errors.New("booking type is required")
	ErrEmptyDetails  = errors.New("booking details are required")
	ErrEmptyEmail    = errors.New("email is required")
	ErrEmptyPassword = errors.New("password is required")
)
