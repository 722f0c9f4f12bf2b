package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productstore-backend/internal/domains/category"
)

type mockCategoryRepository struct {
	categories map[int64]*category.Category
	deleteErr  error
	deletedID  int64
}

func newMockCategoryRepository() *mockCategoryRepository {
	return &mockCategoryRepository{categories: map[int64]*category.Category{}}
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]category.Category, error) {
	out := []category.Category{}
	for _, c := range m.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id int64) (*category.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, category.ErrCategoryNotFound
	}
	copied := *c
	return &copied, nil
}

func (m *mockCategoryRepository) Create(ctx context.Context, entity *category.Category) error {
	entity.ID = int64(len(m.categories) + 1)
	m.categories[entity.ID] = entity
	return nil
}

func (m *mockCategoryRepository) Update(ctx context.Context, entity *category.Category) error {
	if _, ok := m.categories[entity.ID]; !ok {
		return category.ErrCategoryNotFound
	}
	m.categories[entity.ID] = entity
	return nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id int64) error {
	m.deletedID = id
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.categories, id)
	return nil
}

func TestCreate_SetsTimestamps(t *testing.T) {
	repo := newMockCategoryRepository()
	svc := NewCategoryService(repo)

	dto, err := svc.Create(context.Background(), category.CreateCategoryRequest{Name: "Fiction"})
	require.NoError(t, err)
	assert.Equal(t, "Fiction", dto.Name)
	assert.False(t, dto.CreatedAt.IsZero())
	assert.Equal(t, dto.CreatedAt, dto.UpdatedAt)
}

func TestCreate_RejectsEmptyName(t *testing.T) {
	repo := newMockCategoryRepository()
	svc := NewCategoryService(repo)

	_, err := svc.Create(context.Background(), category.CreateCategoryRequest{})
	assert.Error(t, err)
	assert.Empty(t, repo.categories)
}

func TestCreate_RejectsOverlongName(t *testing.T) {
	repo := newMockCategoryRepository()
	svc := NewCategoryService(repo)

	_, err := svc.Create(context.Background(), category.CreateCategoryRequest{
		Name: strings.Repeat("x", 256),
	})
	assert.Error(t, err)
}

func TestUpdate_MissingCategory(t *testing.T) {
	repo := newMockCategoryRepository()
	svc := NewCategoryService(repo)

	_, err := svc.Update(context.Background(), 99, category.UpdateCategoryRequest{Name: "New"})
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}

func TestUpdate_BumpsUpdatedAt(t *testing.T) {
	repo := newMockCategoryRepository()
	created := time.Now().Add(-time.Hour)
	repo.categories[1] = &category.Category{ID: 1, Name: "Old", CreatedAt: created, UpdatedAt: created}
	svc := NewCategoryService(repo)

	dto, err := svc.Update(context.Background(), 1, category.UpdateCategoryRequest{Name: "New"})
	require.NoError(t, err)
	assert.Equal(t, "New", dto.Name)
	assert.True(t, dto.UpdatedAt.After(created))
	assert.Equal(t, created, dto.CreatedAt)
}

func TestDelete_RestrictedWhileReferenced(t *testing.T) {
	repo := newMockCategoryRepository()
	repo.categories[1] = &category.Category{ID: 1, Name: "Fiction"}
	repo.deleteErr = category.ErrCategoryInUse
	svc := NewCategoryService(repo)

	err := svc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, category.ErrCategoryInUse)
	assert.Contains(t, repo.categories, int64(1))
}

func TestDelete_Unreferenced(t *testing.T) {
	repo := newMockCategoryRepository()
	repo.categories[1] = &category.Category{ID: 1, Name: "Fiction"}
	svc := NewCategoryService(repo)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.NotContains(t, repo.categories, int64(1))
}
