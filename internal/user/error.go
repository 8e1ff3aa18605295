package user

import "errors"

var (
	ErrUsernameExists     = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidRole        = errors.New("invalid role")
	ErrMissingFields      = errors.New("username and password are required")
	ErrUserNotFound       = errors.New("user not found")

	// -- Constants (External Systems) --
	PgUniqueViolation = "23505"
)
