package service

import (
	"context"
	"fmt"
	"time"

	"productstore-backend/internal/domains/category"
)

type categoryService struct {
	repo category.Repository
}

// NewCategoryService creates the service instance.
func NewCategoryService(repo category.Repository) category.Service {
	return &categoryService{repo: repo}
}

func (s *categoryService) List(ctx context.Context) ([]category.CategoryDTO, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	dtos := make([]category.CategoryDTO, 0, len(categories))
	for i := range categories {
		dtos = append(dtos, categories[i].ToDTO())
	}
	return dtos, nil
}

func (s *categoryService) GetByID(ctx context.Context, id int64) (*category.CategoryDTO, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := c.ToDTO()
	return &dto, nil
}

func (s *categoryService) Create(ctx context.Context, req category.CreateCategoryRequest) (*category.CategoryDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	entity := &category.Category{
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	dto := entity.ToDTO()
	return &dto, nil
}

func (s *categoryService) Update(ctx context.Context, id int64, req category.UpdateCategoryRequest) (*category.CategoryDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entity.Name = req.Name
	entity.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, entity); err != nil {
		return nil, err
	}

	dto := entity.ToDTO()
	return &dto, nil
}

func (s *categoryService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
