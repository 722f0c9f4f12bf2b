package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"productstore-backend/internal/domains/author"
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

// NewPostgresRepository - raw SQL repository over pgxpool. Author renames
// show up in cached product listings, so updates invalidate them.
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) author.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

func (r *postgresRepository) List(ctx context.Context) ([]author.Author, error) {
	const query = `
		SELECT id, name, biography, date_of_birth, created_at, updated_at
		FROM authors
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list authors query failed: %w", err)
	}
	defer rows.Close()

	authors := []author.Author{}
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Biography, &a.DateOfBirth, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	const query = `
		SELECT id, name, biography, date_of_birth, created_at, updated_at
		FROM authors
		WHERE id = $1
	`

	var a author.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Name, &a.Biography, &a.DateOfBirth, &a.CreatedAt, &a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, author.ErrAuthorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, entity *author.Author) error {
	const query = `
		INSERT INTO authors (name, biography, date_of_birth, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		entity.Name, entity.Biography, entity.DateOfBirth,
		entity.CreatedAt, entity.UpdatedAt,
	).Scan(&entity.ID)
	if err != nil {
		return fmt.Errorf("failed to insert author: %w", err)
	}

	return nil
}

func (r *postgresRepository) Update(ctx context.Context, entity *author.Author) error {
	const query = `
		UPDATE authors
		SET name = $1, biography = $2, date_of_birth = $3, updated_at = $4
		WHERE id = $5
	`

	result, err := r.pool.Exec(ctx, query,
		entity.Name, entity.Biography, entity.DateOfBirth, entity.UpdatedAt, entity.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update author: %w", err)
	}

	if result.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}

	// Renames appear in cached product listings.
	if err := r.cache.DeletePattern(ctx, "products:*"); err != nil {
		logger.Error("product cache invalidation failed", err)
	}

	return nil
}

// Delete removes the author inside a transaction so the reference check and
// the delete see the same snapshot; ON DELETE RESTRICT backs the check up.
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var referenced bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM products WHERE author_id = $1)`, id,
		).Scan(&referenced)
		if err != nil {
			return fmt.Errorf("failed to check author references: %w", err)
		}
		if referenced {
			return author.ErrAuthorInUse
		}

		result, err := tx.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgFKViolation {
				return author.ErrAuthorInUse
			}
			return fmt.Errorf("failed to delete author: %w", err)
		}

		if result.RowsAffected() == 0 {
			return author.ErrAuthorNotFound
		}

		return nil
	})
}
