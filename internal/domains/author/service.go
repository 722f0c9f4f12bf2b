package author

import (
	"context"
)

// Service - business logic contract for authors.
type Service interface {
	List(ctx context.Context) ([]AuthorDTO, error)
	GetByID(ctx context.Context, id int64) (*AuthorDTO, error)
	Create(ctx context.Context, req CreateAuthorRequest) (*AuthorDTO, error)
	Update(ctx context.Context, id int64, req UpdateAuthorRequest) (*AuthorDTO, error)
	Delete(ctx context.Context, id int64) error
}
