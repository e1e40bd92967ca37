package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
