package category

import (
	"errors"
	"net/http"
)

var (
	// ErrCategoryNotFound - SELECT/UPDATE/DELETE by id matched no row.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryInUse - deletion rejected because products still
	// reference this category.
	ErrCategoryInUse = errors.New("category is referenced by products")
)

// GetHTTPStatusCode maps domain errors to HTTP status codes.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrCategoryInUse):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
