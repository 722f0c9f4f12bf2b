package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"productstore-backend/internal/domains/product"
)

type productService struct {
	repo product.Repository
}

// NewProductService wires the business rules over the repository.
func NewProductService(repo product.Repository) product.Service {
	return &productService{repo: repo}
}

func (s *productService) List(ctx context.Context, req product.ListProductsRequest) ([]product.ProductDTO, int, error) {
	req.SetDefaults()

	items, total, err := s.repo.List(ctx, req.ToFilter())
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}

	return items, total, nil
}

func (s *productService) Cheapest(ctx context.Context) ([]product.ProductDTO, error) {
	items, err := s.repo.Cheapest(ctx)
	if err != nil {
		return nil, fmt.Errorf("cheapest products: %w", err)
	}
	return items, nil
}

func (s *productService) GetByID(ctx context.Context, id int64) (*product.ProductDTO, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *productService) Create(ctx context.Context, req product.CreateProductRequest, actingUserID int64) (*product.ProductDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	entity := &product.Product{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		AuthorID:    req.AuthorID,
		CreatedBy:   &actingUserID,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, err
	}

	// Re-read through the listing projection to resolve the references.
	return s.repo.GetByID(ctx, entity.ID)
}

func (s *productService) Update(ctx context.Context, id int64, req product.UpdateProductRequest, actingUserID int64) (*product.ProductDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entity, err := s.repo.GetEntityByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entity.Name = req.Name
	entity.Price = req.Price
	entity.Description = req.Description
	entity.CategoryID = req.CategoryID
	entity.AuthorID = req.AuthorID
	entity.UpdatedBy = &actingUserID
	entity.Version = req.Version + 1
	entity.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, entity); err != nil {
		if errors.Is(err, product.ErrVersionConflict) {
			// Zero rows matched: either the token was stale or the row
			// was deleted underneath us. Tell them apart.
			exists, checkErr := s.repo.Exists(ctx, id)
			if checkErr != nil {
				return nil, checkErr
			}
			if !exists {
				return nil, product.ErrProductNotFound
			}
		}
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *productService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
