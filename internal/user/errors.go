package user

import "errors"

var (
	ErrMissingFields      = errors.New("name, email and password are required")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
