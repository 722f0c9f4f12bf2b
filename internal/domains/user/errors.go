package user

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound - lookup by id matched no row.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken - registration/update with an existing username.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials - returned for both unknown username and wrong
	// password so callers cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// GetHTTPStatusCode maps domain errors to HTTP status codes.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUsernameTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
