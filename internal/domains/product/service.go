package product

import (
	"context"
)

// Service - business logic contract for products.
type Service interface {
	List(ctx context.Context, req ListProductsRequest) ([]ProductDTO, int, error)
	Cheapest(ctx context.Context) ([]ProductDTO, error)
	GetByID(ctx context.Context, id int64) (*ProductDTO, error)

	// Create stamps the product with the acting user as creator; the
	// updater starts absent.
	Create(ctx context.Context, req CreateProductRequest, actingUserID int64) (*ProductDTO, error)

	// Update overwrites the mutable fields and stamps the acting user as
	// updater. A stale version token yields ErrVersionConflict; a vanished
	// row yields ErrProductNotFound.
	Update(ctx context.Context, id int64, req UpdateProductRequest, actingUserID int64) (*ProductDTO, error)

	Delete(ctx context.Context, id int64) error
}
