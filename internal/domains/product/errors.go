package product

import (
	"errors"
	"net/http"
)

var (
	// ErrProductNotFound - lookup/update/delete by id matched no row.
	ErrProductNotFound = errors.New("product not found")

	// ErrVersionConflict - the optimistic concurrency check failed: the
	// row changed since the caller read it. The caller must re-fetch and
	// retry; no automatic retry happens here.
	ErrVersionConflict = errors.New("product was modified by another request")

	// ErrInvalidCategory / ErrInvalidAuthor - the referenced entity does
	// not exist at creation/update time.
	ErrInvalidCategory = errors.New("category does not exist")
	ErrInvalidAuthor   = errors.New("author does not exist")
)

// GetHTTPStatusCode maps domain errors to HTTP status codes.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrVersionConflict):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidCategory), errors.Is(err, ErrInvalidAuthor):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
