package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productstore-backend/internal/domains/product"
)

// mockRepository records calls and plays back configured results.
type mockRepository struct {
	listFn   func(ctx context.Context, filter *product.Filter) ([]product.ProductDTO, int, error)
	entities map[int64]*product.Product

	updatedEntity *product.Product
	createErr     error
	updateErr     error
	existsResult  bool
	deletedID     int64
}

func newMockRepository() *mockRepository {
	return &mockRepository{entities: map[int64]*product.Product{}}
}

func (m *mockRepository) List(ctx context.Context, filter *product.Filter) ([]product.ProductDTO, int, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockRepository) Cheapest(ctx context.Context) ([]product.ProductDTO, error) {
	return nil, nil
}

func (m *mockRepository) GetByID(ctx context.Context, id int64) (*product.ProductDTO, error) {
	entity, ok := m.entities[id]
	if !ok {
		return nil, product.ErrProductNotFound
	}
	return &product.ProductDTO{
		ID:      entity.ID,
		Name:    entity.Name,
		Price:   entity.Price,
		Version: entity.Version,
	}, nil
}

func (m *mockRepository) GetEntityByID(ctx context.Context, id int64) (*product.Product, error) {
	entity, ok := m.entities[id]
	if !ok {
		return nil, product.ErrProductNotFound
	}
	copied := *entity
	return &copied, nil
}

func (m *mockRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return m.existsResult, nil
}

func (m *mockRepository) Create(ctx context.Context, entity *product.Product) error {
	if m.createErr != nil {
		return m.createErr
	}
	entity.ID = 100
	m.entities[entity.ID] = entity
	return nil
}

func (m *mockRepository) Update(ctx context.Context, entity *product.Product) error {
	m.updatedEntity = entity
	if m.updateErr != nil {
		return m.updateErr
	}
	m.entities[entity.ID] = entity
	return nil
}

func (m *mockRepository) Delete(ctx context.Context, id int64) error {
	m.deletedID = id
	return nil
}

func validCreateRequest() product.CreateProductRequest {
	return product.CreateProductRequest{
		Name:       "The Go Programming Language",
		Price:      decimal.NewFromFloat(39.99),
		CategoryID: 1,
		AuthorID:   2,
	}
}

func validUpdateRequest(version int) product.UpdateProductRequest {
	return product.UpdateProductRequest{
		Name:       "Updated name",
		Price:      decimal.NewFromFloat(19.99),
		CategoryID: 1,
		AuthorID:   2,
		Version:    version,
	}
}

func TestCreate_StampsCreatorAndInitialVersion(t *testing.T) {
	repo := newMockRepository()
	svc := NewProductService(repo)

	dto, err := svc.Create(context.Background(), validCreateRequest(), 42)
	require.NoError(t, err)
	require.NotNil(t, dto)

	entity := repo.entities[100]
	require.NotNil(t, entity)
	require.NotNil(t, entity.CreatedBy)
	assert.Equal(t, int64(42), *entity.CreatedBy)
	assert.Nil(t, entity.UpdatedBy)
	assert.Equal(t, 1, entity.Version)
}

func TestCreate_RejectsInvalidPrice(t *testing.T) {
	repo := newMockRepository()
	svc := NewProductService(repo)

	req := validCreateRequest()
	req.Price = decimal.NewFromFloat(10000.01)

	_, err := svc.Create(context.Background(), req, 42)
	assert.Error(t, err)
	assert.Empty(t, repo.entities)
}

func TestCreate_PropagatesInvalidCategory(t *testing.T) {
	repo := newMockRepository()
	repo.createErr = product.ErrInvalidCategory
	svc := NewProductService(repo)

	_, err := svc.Create(context.Background(), validCreateRequest(), 42)
	assert.ErrorIs(t, err, product.ErrInvalidCategory)
}

func TestUpdate_IncrementsVersionAndStampsUpdater(t *testing.T) {
	repo := newMockRepository()
	repo.entities[5] = &product.Product{ID: 5, Name: "Old", Version: 3}
	svc := NewProductService(repo)

	dto, err := svc.Update(context.Background(), 5, validUpdateRequest(3), 42)
	require.NoError(t, err)
	require.NotNil(t, dto)

	require.NotNil(t, repo.updatedEntity)
	assert.Equal(t, 4, repo.updatedEntity.Version)
	require.NotNil(t, repo.updatedEntity.UpdatedBy)
	assert.Equal(t, int64(42), *repo.updatedEntity.UpdatedBy)
}

func TestUpdate_MissingProduct(t *testing.T) {
	repo := newMockRepository()
	svc := NewProductService(repo)

	_, err := svc.Update(context.Background(), 999, validUpdateRequest(1), 42)
	assert.ErrorIs(t, err, product.ErrProductNotFound)
}

func TestUpdate_StaleVersionOnExistingRow(t *testing.T) {
	repo := newMockRepository()
	repo.entities[5] = &product.Product{ID: 5, Version: 4}
	repo.updateErr = product.ErrVersionConflict
	repo.existsResult = true
	svc := NewProductService(repo)

	_, err := svc.Update(context.Background(), 5, validUpdateRequest(3), 42)
	assert.ErrorIs(t, err, product.ErrVersionConflict)
}

func TestUpdate_RowDeletedUnderneath(t *testing.T) {
	repo := newMockRepository()
	repo.entities[5] = &product.Product{ID: 5, Version: 3}
	repo.updateErr = product.ErrVersionConflict
	repo.existsResult = false
	svc := NewProductService(repo)

	_, err := svc.Update(context.Background(), 5, validUpdateRequest(3), 42)
	assert.ErrorIs(t, err, product.ErrProductNotFound)
}

func TestList_AppliesPaginationDefaults(t *testing.T) {
	repo := newMockRepository()
	var gotFilter *product.Filter
	repo.listFn = func(ctx context.Context, filter *product.Filter) ([]product.ProductDTO, int, error) {
		gotFilter = filter
		return []product.ProductDTO{}, 0, nil
	}
	svc := NewProductService(repo)

	_, _, err := svc.List(context.Background(), product.ListProductsRequest{Page: 0, Limit: -3})
	require.NoError(t, err)

	require.NotNil(t, gotFilter)
	assert.Equal(t, 1, gotFilter.Page)
	assert.Equal(t, 10, gotFilter.Limit)
	assert.Equal(t, 0, gotFilter.Offset())
}

func TestDelete_DelegatesToRepository(t *testing.T) {
	repo := newMockRepository()
	svc := NewProductService(repo)

	require.NoError(t, svc.Delete(context.Background(), 7))
	assert.Equal(t, int64(7), repo.deletedID)
}
