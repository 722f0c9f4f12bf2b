package user

import (
	"context"
)

// Repository - data access contract for users.
type Repository interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	// GetByUsername resolves a user by exact username match.
	GetByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, entity *User) error
	Update(ctx context.Context, entity *User) error
	// UpdatePassword persists a new secret hash for the user.
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}
