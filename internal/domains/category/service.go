package category

import (
	"context"
)

// Service - business logic contract for categories.
type Service interface {
	List(ctx context.Context) ([]CategoryDTO, error)
	GetByID(ctx context.Context, id int64) (*CategoryDTO, error)
	Create(ctx context.Context, req CreateCategoryRequest) (*CategoryDTO, error)
	Update(ctx context.Context, id int64, req UpdateCategoryRequest) (*CategoryDTO, error)
	Delete(ctx context.Context, id int64) error
}
