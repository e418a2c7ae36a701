package service

import "errors"

var (
	// ErrDenied carries a single uniform reason for every authorization
	// failure so a caller cannot tell "not yours" apart from any other
	// denial.
	ErrDenied = errors.New("not permitted")

	ErrValidation         = errors.New("validation failed")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
