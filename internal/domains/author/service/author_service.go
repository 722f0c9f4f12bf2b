package service

import (
	"context"
	"fmt"
	"time"

	"productstore-backend/internal/domains/author"
)

type authorService struct {
	repo author.Repository
}

// NewAuthorService creates the service instance.
func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) List(ctx context.Context) ([]author.AuthorDTO, error) {
	authors, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}

	dtos := make([]author.AuthorDTO, 0, len(authors))
	for i := range authors {
		dtos = append(dtos, authors[i].ToDTO())
	}
	return dtos, nil
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*author.AuthorDTO, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := a.ToDTO()
	return &dto, nil
}

func (s *authorService) Create(ctx context.Context, req author.CreateAuthorRequest) (*author.AuthorDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	entity := &author.Author{
		Name:        req.Name,
		Biography:   req.Biography,
		DateOfBirth: req.DateOfBirth,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}

	dto := entity.ToDTO()
	return &dto, nil
}

func (s *authorService) Update(ctx context.Context, id int64, req author.UpdateAuthorRequest) (*author.AuthorDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entity.Name = req.Name
	entity.Biography = req.Biography
	entity.DateOfBirth = req.DateOfBirth
	entity.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, entity); err != nil {
		return nil, err
	}

	dto := entity.ToDTO()
	return &dto, nil
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
