package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"productstore-backend/internal/domains/product"
	"productstore-backend/internal/shared/utils"
	"productstore-backend/pkg/cache"
	"productstore-backend/pkg/logger"
)

// cheapestProducts is the fixed size of the cheapest listing.
const cheapestProducts = 5

// foreign_key_violation
const pgFKViolation = "23503"

const (
	listCacheTTL     = 1 * time.Minute
	cheapestCacheTTL = 5 * time.Minute
)

// productSelect is the shared listing projection. All relationships are
// resolved with LEFT JOIN so a product with a dangling or absent user
// reference still produces a row.
const productSelect = `
	SELECT
		p.id, p.name, p.price, p.description, p.version, p.created_at, p.updated_at,
		c.id, c.name,
		a.id, a.name, a.biography, a.date_of_birth,
		cu.id, cu.username,
		uu.id, uu.username
	FROM products p
	LEFT JOIN categories c ON p.category_id = c.id
	LEFT JOIN authors a ON p.author_id = a.id
	LEFT JOIN users cu ON p.created_by = cu.id
	LEFT JOIN users uu ON p.updated_by = uu.id
`

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository - raw SQL repository over pgxpool with a Redis
// read cache for the listing queries.
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) product.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

// ============================================
// LIST PRODUCTS
// ============================================

// cachedListing is the cache payload for one listing page.
type cachedListing struct {
	Items []product.ProductDTO `json:"items"`
	Total int                  `json:"total"`
}

func (r *postgresRepository) List(ctx context.Context, filter *product.Filter) ([]product.ProductDTO, int, error) {
	key := listCacheKey(filter)

	var cached cachedListing
	if found, err := r.cache.Get(ctx, key, &cached); err != nil {
		logger.Error("product list cache read failed", err)
	} else if found {
		return cached.Items, cached.Total, nil
	}

	whereClause, args := buildWhereClause(filter)

	total, err := r.getProductCount(ctx, whereClause, args)
	if err != nil {
		return nil, 0, err
	}

	query := buildListQuery(whereClause, len(args)+1)
	args = append(args, filter.Limit, filter.Offset())

	items, err := r.executeListQuery(ctx, query, args)
	if err != nil {
		return nil, 0, err
	}

	if err := r.cache.Set(ctx, key, cachedListing{Items: items, Total: total}, listCacheTTL); err != nil {
		logger.Error("product list cache write failed", err)
	}

	return items, total, nil
}

// buildWhereClause composes the filter predicates in order. Absent filters
// contribute nothing; present ones are ANDed. Search is a case-insensitive
// substring match across product, category and author names.
func buildWhereClause(filter *product.Filter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if filter.CategoryID != nil {
		conditions = append(conditions, fmt.Sprintf("p.category_id = $%d", argIndex))
		args = append(args, *filter.CategoryID)
		argIndex++
	}

	if filter.AuthorID != nil {
		conditions = append(conditions, fmt.Sprintf("p.author_id = $%d", argIndex))
		args = append(args, *filter.AuthorID)
		argIndex++
	}

	if filter.Search != "" {
		nameMatches := []string{
			fmt.Sprintf("p.name ILIKE $%d", argIndex),
			fmt.Sprintf("c.name ILIKE $%d", argIndex),
			fmt.Sprintf("a.name ILIKE $%d", argIndex),
		}
		conditions = append(conditions, "("+utils.JoinWithOr(nameMatches)+")")
		args = append(args, "%"+filter.Search+"%")
	}

	if len(conditions) == 0 {
		return "TRUE", args
	}

	return utils.JoinWithAnd(conditions), args
}

// buildListQuery appends WHERE, deterministic ordering and pagination to the
// shared projection. Ordering by id keeps consecutive pages a partition of
// the filtered set.
func buildListQuery(whereClause string, paramCount int) string {
	return fmt.Sprintf(`%s
	WHERE %s
	ORDER BY p.id
	LIMIT $%d OFFSET $%d
	`, productSelect, whereClause, paramCount, paramCount+1)
}

func (r *postgresRepository) getProductCount(ctx context.Context, whereClause string, args []interface{}) (int, error) {
	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		LEFT JOIN authors a ON p.author_id = a.id
		WHERE %s
	`, whereClause)

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count query failed: %w", err)
	}

	return total, nil
}

func (r *postgresRepository) executeListQuery(ctx context.Context, query string, args []interface{}) ([]product.ProductDTO, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products query failed: %w", err)
	}
	defer rows.Close()

	items := []product.ProductDTO{}
	for rows.Next() {
		dto, err := scanListingRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		items = append(items, dto)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return items, nil
}

// listCacheKey encodes every filter dimension unambiguously: an absent id
// filter becomes "-" so it cannot collide with an explicit id 0, and the
// search term is hex-encoded so it cannot smuggle the ":" delimiter.
func listCacheKey(filter *product.Filter) string {
	categoryKey := "-"
	if filter.CategoryID != nil {
		categoryKey = strconv.FormatInt(*filter.CategoryID, 10)
	}
	authorKey := "-"
	if filter.AuthorID != nil {
		authorKey = strconv.FormatInt(*filter.AuthorID, 10)
	}
	return fmt.Sprintf("products:list:c%s:a%s:q%x:p%d:l%d",
		categoryKey, authorKey, filter.Search, filter.Page, filter.Limit)
}

// rowScanner covers pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanListingRow maps one joined row into the listing DTO. Joined columns
// are scanned through nullable pointers so absent references become nil
// summaries instead of scan failures.
func scanListingRow(row rowScanner) (product.ProductDTO, error) {
	var (
		dto product.ProductDTO

		categoryID   *int64
		categoryName *string

		authorID   *int64
		authorName *string
		authorBio  *string
		authorDOB  *time.Time

		creatorID   *int64
		creatorName *string

		updaterID   *int64
		updaterName *string
	)

	err := row.Scan(
		&dto.ID, &dto.Name, &dto.Price, &dto.Description, &dto.Version,
		&dto.CreatedAt, &dto.UpdatedAt,
		&categoryID, &categoryName,
		&authorID, &authorName, &authorBio, &authorDOB,
		&creatorID, &creatorName,
		&updaterID, &updaterName,
	)
	if err != nil {
		return product.ProductDTO{}, err
	}

	if categoryID != nil {
		dto.Category = &product.CategoryRef{ID: *categoryID}
		if categoryName != nil {
			dto.Category.Name = *categoryName
		}
	}

	if authorID != nil {
		dto.Author = &product.AuthorRef{ID: *authorID}
		if authorName != nil {
			dto.Author.Name = *authorName
		}
		if authorBio != nil {
			dto.Author.Biography = *authorBio
		}
		if authorDOB != nil {
			dto.Author.DateOfBirth = *authorDOB
		}
	}

	if creatorID != nil {
		dto.CreatedBy = &product.UserRef{ID: *creatorID}
		if creatorName != nil {
			dto.CreatedBy.Username = *creatorName
		}
	}

	if updaterID != nil {
		dto.UpdatedBy = &product.UserRef{ID: *updaterID}
		if updaterName != nil {
			dto.UpdatedBy.Username = *updaterName
		}
	}

	return dto, nil
}

// ============================================
// CHEAPEST PRODUCTS
// ============================================

// buildCheapestQuery orders by ascending price with ties broken by
// insertion (id) order; fewer rows than the limit simply yields fewer rows.
func buildCheapestQuery() string {
	return fmt.Sprintf(`%s
	ORDER BY p.price ASC, p.id ASC
	LIMIT $1
	`, productSelect)
}

func (r *postgresRepository) Cheapest(ctx context.Context) ([]product.ProductDTO, error) {
	const key = "products:cheapest"

	var cached []product.ProductDTO
	if found, err := r.cache.Get(ctx, key, &cached); err != nil {
		logger.Error("cheapest products cache read failed", err)
	} else if found {
		return cached, nil
	}

	items, err := r.executeListQuery(ctx, buildCheapestQuery(), []interface{}{cheapestProducts})
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, items, cheapestCacheTTL); err != nil {
		logger.Error("cheapest products cache write failed", err)
	}

	return items, nil
}

// ============================================
// SINGLE PRODUCT READS
// ============================================

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*product.ProductDTO, error) {
	query := productSelect + ` WHERE p.id = $1`

	dto, err := scanListingRow(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, product.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &dto, nil
}

func (r *postgresRepository) GetEntityByID(ctx context.Context, id int64) (*product.Product, error) {
	const query = `
		SELECT id, name, price, description, category_id, author_id,
		       created_by, updated_by, version, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var p product.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Price, &p.Description, &p.CategoryID, &p.AuthorID,
		&p.CreatedBy, &p.UpdatedBy, &p.Version, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, product.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &p, nil
}

func (r *postgresRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check product: %w", err)
	}
	return exists, nil
}

// ============================================
// WRITES
// ============================================

func (r *postgresRepository) Create(ctx context.Context, entity *product.Product) error {
	const query = `
		INSERT INTO products (
			name, price, description, category_id, author_id,
			created_by, updated_by, version, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		entity.Name, entity.Price, entity.Description, entity.CategoryID, entity.AuthorID,
		entity.CreatedBy, entity.UpdatedBy, entity.Version, entity.CreatedAt, entity.UpdatedAt,
	).Scan(&entity.ID)
	if err != nil {
		if mapped := mapForeignKeyError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to insert product: %w", err)
	}

	r.invalidateListings(ctx)
	return nil
}

// Update - optimistic locking: entity.Version holds the next version and
// the row is matched against the version the caller read.
func (r *postgresRepository) Update(ctx context.Context, entity *product.Product) error {
	const query = `
		UPDATE products
		SET name = $1, price = $2, description = $3,
		    category_id = $4, author_id = $5,
		    updated_by = $6, version = $7, updated_at = $8
		WHERE id = $9 AND version = $10
	`

	result, err := r.pool.Exec(ctx, query,
		entity.Name, entity.Price, entity.Description,
		entity.CategoryID, entity.AuthorID,
		entity.UpdatedBy, entity.Version, entity.UpdatedAt,
		entity.ID, entity.Version-1, // WHERE version = old version
	)
	if err != nil {
		if mapped := mapForeignKeyError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to update product: %w", err)
	}

	if result.RowsAffected() == 0 {
		return product.ErrVersionConflict
	}

	r.invalidateListings(ctx)
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if result.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}

	r.invalidateListings(ctx)
	return nil
}

// mapForeignKeyError converts FK violations on the category/author
// references into domain errors; returns nil for everything else.
func mapForeignKeyError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgFKViolation {
		return nil
	}

	switch pgErr.ConstraintName {
	case "products_category_id_fkey":
		return product.ErrInvalidCategory
	case "products_author_id_fkey":
		return product.ErrInvalidAuthor
	}
	return nil
}

func (r *postgresRepository) invalidateListings(ctx context.Context) {
	if err := r.cache.DeletePattern(ctx, "products:*"); err != nil {
		logger.Error("product cache invalidation failed", err)
	}
}
