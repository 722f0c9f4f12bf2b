package product

import (
	"context"
)

// Repository - data access contract for products. All reads resolve the
// category, author and creating/updating user references with left outer
// join semantics: a product with a missing user reference still appears.
type Repository interface {
	// List returns one page of the filtered listing plus the unpaginated
	// total count.
	List(ctx context.Context, filter *Filter) ([]ProductDTO, int, error)

	// Cheapest returns the N lowest-priced products ordered ascending by
	// price, ties broken by id order. Ignores filters and pagination.
	Cheapest(ctx context.Context) ([]ProductDTO, error)

	GetByID(ctx context.Context, id int64) (*ProductDTO, error)
	GetEntityByID(ctx context.Context, id int64) (*Product, error)
	Exists(ctx context.Context, id int64) (bool, error)

	Create(ctx context.Context, entity *Product) error

	// Update applies the mutable fields with an optimistic concurrency
	// check: entity.Version holds the already-incremented version and the
	// row is matched against Version-1. Zero rows affected yields
	// ErrVersionConflict.
	Update(ctx context.Context, entity *Product) error

	Delete(ctx context.Context, id int64) error
}
