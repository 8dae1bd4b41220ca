package domain

import "errors"

var (
	// ErrValidation marks input that is missing or malformed. Callers wrap it
	// with the offending field, e.g. fmt.Errorf("%w: amount is required", ErrValidation).
	ErrValidation = errors.New("validation failed")

	ErrDuplicateUser      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotLoggedIn        = errors.New("no active session")
	ErrSessionMismatch    = errors.New("token does not belong to the active session")
	ErrUnknownSetting     = errors.New("unknown setting")

	// ErrCorruptRecord is returned when a persisted value cannot be decoded.
	ErrCorruptRecord = errors.New("corrupt persisted record")
)
