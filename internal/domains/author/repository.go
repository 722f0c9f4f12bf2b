package author

import (
	"context"
)

// Repository - data access contract for authors.
type Repository interface {
	List(ctx context.Context) ([]Author, error)
	GetByID(ctx context.Context, id int64) (*Author, error)
	Create(ctx context.Context, entity *Author) error
	Update(ctx context.Context, entity *Author) error
	// Delete removes the author; returns ErrAuthorInUse while any product
	// still references it.
	Delete(ctx context.Context, id int64) error
}
