package repository

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productstore-backend/internal/domains/product"
)

func int64Ptr(v int64) *int64 { return &v }

func TestBuildWhereClause_NoFilters(t *testing.T) {
	where, args := buildWhereClause(&product.Filter{Page: 1, Limit: 10})

	assert.Equal(t, "TRUE", where)
	assert.Empty(t, args)
}

func TestBuildWhereClause_CategoryOnly(t *testing.T) {
	where, args := buildWhereClause(&product.Filter{
		CategoryID: int64Ptr(7),
		Page:       1,
		Limit:      10,
	})

	assert.Equal(t, "p.category_id = $1", where)
	assert.Equal(t, []interface{}{int64(7)}, args)
}

func TestBuildWhereClause_AuthorOnly(t *testing.T) {
	where, args := buildWhereClause(&product.Filter{
		AuthorID: int64Ptr(3),
		Page:     1,
		Limit:    10,
	})

	assert.Equal(t, "p.author_id = $1", where)
	assert.Equal(t, []interface{}{int64(3)}, args)
}

func TestBuildWhereClause_SearchSpansNames(t *testing.T) {
	where, args := buildWhereClause(&product.Filter{
		Search: "king",
		Page:   1,
		Limit:  10,
	})

	assert.Equal(t, "(p.name ILIKE $1 OR c.name ILIKE $1 OR a.name ILIKE $1)", where)
	require.Len(t, args, 1)
	assert.Equal(t, "%king%", args[0])
}

func TestBuildWhereClause_AllFilters(t *testing.T) {
	where, args := buildWhereClause(&product.Filter{
		CategoryID: int64Ptr(2),
		AuthorID:   int64Ptr(5),
		Search:     "go",
		Page:       1,
		Limit:      10,
	})

	assert.Equal(t,
		"p.category_id = $1 AND p.author_id = $2 AND (p.name ILIKE $3 OR c.name ILIKE $3 OR a.name ILIKE $3)",
		where)
	assert.Equal(t, []interface{}{int64(2), int64(5), "%go%"}, args)
}

func TestBuildListQuery_PlaceholderNumbering(t *testing.T) {
	query := buildListQuery("p.category_id = $1", 2)

	assert.Contains(t, query, "WHERE p.category_id = $1")
	assert.Contains(t, query, "ORDER BY p.id")
	assert.Contains(t, query, "LIMIT $2 OFFSET $3")
}

func TestListCacheKey_DistinguishesFilters(t *testing.T) {
	base := listCacheKey(&product.Filter{Page: 1, Limit: 10})
	withCategory := listCacheKey(&product.Filter{CategoryID: int64Ptr(1), Page: 1, Limit: 10})
	withSearch := listCacheKey(&product.Filter{Search: "x", Page: 1, Limit: 10})
	nextPage := listCacheKey(&product.Filter{Page: 2, Limit: 10})

	keys := map[string]bool{base: true, withCategory: true, withSearch: true, nextPage: true}
	assert.Len(t, keys, 4)
}

func TestListCacheKey_AbsentFilterDistinctFromZeroID(t *testing.T) {
	unfiltered := listCacheKey(&product.Filter{Page: 1, Limit: 10})
	zeroCategory := listCacheKey(&product.Filter{CategoryID: int64Ptr(0), Page: 1, Limit: 10})
	zeroAuthor := listCacheKey(&product.Filter{AuthorID: int64Ptr(0), Page: 1, Limit: 10})

	assert.NotEqual(t, unfiltered, zeroCategory)
	assert.NotEqual(t, unfiltered, zeroAuthor)
	assert.NotEqual(t, zeroCategory, zeroAuthor)
}

func TestListCacheKey_SearchCannotForgeDelimiters(t *testing.T) {
	// A raw ":p2:l10" in the term must not alias another page's key.
	forged := listCacheKey(&product.Filter{Search: ":p2:l10", Page: 1, Limit: 10})
	page2 := listCacheKey(&product.Filter{Page: 2, Limit: 10})

	assert.NotEqual(t, forged, page2)
	assert.NotContains(t, forged, "::")
}

func TestBuildCheapestQuery_Shape(t *testing.T) {
	query := buildCheapestQuery()

	assert.Contains(t, query, "ORDER BY p.price ASC, p.id ASC")
	assert.Contains(t, query, "LIMIT $1")
	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "LEFT JOIN categories c")
	assert.Equal(t, 5, cheapestProducts)
}

// fakeRow plays back a fixed column tuple through the rowScanner contract.
type fakeRow struct {
	values []interface{}
}

func (r fakeRow) Scan(dest ...any) error {
	if len(dest) != len(r.values) {
		return fmt.Errorf("expected %d columns, got %d", len(r.values), len(dest))
	}
	for i := range dest {
		dv := reflect.ValueOf(dest[i]).Elem()
		if r.values[i] == nil {
			dv.Set(reflect.Zero(dv.Type()))
			continue
		}
		dv.Set(reflect.ValueOf(r.values[i]))
	}
	return nil
}

func listingRowValues() []interface{} {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []interface{}{
		int64(1), "The Go Programming Language", decimal.NewFromFloat(39.99), "desc", 2, now, now,
		int64Ptr(10), strPtr("Programming"),
		int64Ptr(20), strPtr("Donovan"), strPtr("bio"), timePtr(now),
		int64Ptr(30), strPtr("alice"),
		int64Ptr(31), strPtr("bob"),
	}
}

func strPtr(s string) *string { return &s }

func timePtr(v time.Time) *time.Time { return &v }

func TestScanListingRow_AllReferencesPresent(t *testing.T) {
	dto, err := scanListingRow(fakeRow{values: listingRowValues()})
	require.NoError(t, err)

	assert.Equal(t, int64(1), dto.ID)
	assert.Equal(t, 2, dto.Version)
	require.NotNil(t, dto.Category)
	assert.Equal(t, "Programming", dto.Category.Name)
	require.NotNil(t, dto.Author)
	assert.Equal(t, "Donovan", dto.Author.Name)
	require.NotNil(t, dto.CreatedBy)
	assert.Equal(t, "alice", dto.CreatedBy.Username)
	require.NotNil(t, dto.UpdatedBy)
	assert.Equal(t, "bob", dto.UpdatedBy.Username)
}

func TestScanListingRow_DanglingUserReferences(t *testing.T) {
	// Creator and updater joins came back empty; the product must still
	// scan cleanly with absent user summaries.
	values := listingRowValues()
	values[13], values[14] = nil, nil // creator id, username
	values[15], values[16] = nil, nil // updater id, username

	dto, err := scanListingRow(fakeRow{values: values})
	require.NoError(t, err)

	assert.Equal(t, int64(1), dto.ID)
	require.NotNil(t, dto.Category)
	require.NotNil(t, dto.Author)
	assert.Nil(t, dto.CreatedBy)
	assert.Nil(t, dto.UpdatedBy)
}

func TestScanListingRow_NoUpdaterYet(t *testing.T) {
	values := listingRowValues()
	values[15], values[16] = nil, nil

	dto, err := scanListingRow(fakeRow{values: values})
	require.NoError(t, err)

	require.NotNil(t, dto.CreatedBy)
	assert.Equal(t, "alice", dto.CreatedBy.Username)
	assert.Nil(t, dto.UpdatedBy)
}

func TestMapForeignKeyError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantMapped error
	}{
		{
			name:       "category fk",
			err:        &pgconn.PgError{Code: pgFKViolation, ConstraintName: "products_category_id_fkey"},
			wantMapped: product.ErrInvalidCategory,
		},
		{
			name:       "author fk",
			err:        &pgconn.PgError{Code: pgFKViolation, ConstraintName: "products_author_id_fkey"},
			wantMapped: product.ErrInvalidAuthor,
		},
		{
			name:       "unrelated constraint",
			err:        &pgconn.PgError{Code: pgFKViolation, ConstraintName: "orders_product_id_fkey"},
			wantMapped: nil,
		},
		{
			name:       "other pg error",
			err:        &pgconn.PgError{Code: "23505"},
			wantMapped: nil,
		},
		{
			name:       "plain error",
			err:        assert.AnError,
			wantMapped: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMapped, mapForeignKeyError(tt.err))
		})
	}
}
