package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"productstore-backend/internal/domains/category"
	"productstore-backend/pkg/cache"
	"productstore-backend/pkg/database"
	"productstore-backend/pkg/logger"
)

// foreign_key_violation
const pgFKViolation = "23503"

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository - raw SQL repository over pgxpool. Category renames
// show up in cached product listings, so updates invalidate them.
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) category.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

func (r *postgresRepository) List(ctx context.Context) ([]category.Category, error) {
	const query = `
		SELECT id, name, created_at, updated_at
		FROM categories
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories query failed: %w", err)
	}
	defer rows.Close()

	categories := []category.Category{}
	for rows.Next() {
		var c category.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return categories, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*category.Category, error) {
	const query = `
		SELECT id, name, created_at, updated_at
		FROM categories
		WHERE id = $1
	`

	var c category.Category
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, category.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return &c, nil
}

func (r *postgresRepository) Create(ctx context.Context, entity *category.Category) error {
	const query = `
		INSERT INTO categories (name, created_at, updated_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		entity.Name, entity.CreatedAt, entity.UpdatedAt,
	).Scan(&entity.ID)
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}

	return nil
}

func (r *postgresRepository) Update(ctx context.Context, entity *category.Category) error {
	const query = `
		UPDATE categories
		SET name = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := r.pool.Exec(ctx, query, entity.Name, entity.UpdatedAt, entity.ID)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	if result.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}

	// Renames appear in cached product listings.
	if err := r.cache.DeletePattern(ctx, "products:*"); err != nil {
		logger.Error("product cache invalidation failed", err)
	}

	return nil
}

// Delete removes the category inside a transaction: the reference check and
// the delete see the same snapshot, and the ON DELETE RESTRICT constraint
// backs the check up against concurrent product inserts.
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var referenced bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM products WHERE category_id = $1)`, id,
		).Scan(&referenced)
		if err != nil {
			return fmt.Errorf("failed to check category references: %w", err)
		}
		if referenced {
			return category.ErrCategoryInUse
		}

		result, err := tx.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgFKViolation {
				return category.ErrCategoryInUse
			}
			return fmt.Errorf("failed to delete category: %w", err)
		}

		if result.RowsAffected() == 0 {
			return category.ErrCategoryNotFound
		}

		return nil
	})
}
