// Package common defines shared constants and sentinel errors used across
// client and server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal           = errors.New("internal error")
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Registration conflicts. Both are backed by unique indexes in storage;
	// the service-level pre-checks only surface them earlier.
	ErrorEmailExists    = errors.New("email already registered")
	ErrorUsernameExists = errors.New("username already taken")

	// Validation / precondition errors.
	ErrorValidation   = errors.New("validation error")
	ErrorInvalidInput = errors.New("invalid input")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
