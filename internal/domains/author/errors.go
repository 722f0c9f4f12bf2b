package author

import (
	"errors"
	"net/http"
)

var (
	// ErrAuthorNotFound - SELECT/UPDATE/DELETE by id matched no row.
	ErrAuthorNotFound = errors.New("author not found")

	// ErrAuthorInUse - deletion rejected because products still
	// reference this author.
	ErrAuthorInUse = errors.New("author is referenced by products")
)

// GetHTTPStatusCode maps domain errors to HTTP status codes.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAuthorInUse):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
