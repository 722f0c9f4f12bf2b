package category

import (
	"context"
)

// Repository - data access contract for categories.
type Repository interface {
	List(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id int64) (*Category, error)
	Create(ctx context.Context, entity *Category) error
	Update(ctx context.Context, entity *Category) error
	// Delete removes the category; returns ErrCategoryInUse while any
	// product still references it.
	Delete(ctx context.Context, id int64) error
}
