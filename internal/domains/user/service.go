package user

import (
	"context"
)

// Service - business logic contract for accounts and authentication.
type Service interface {
	// Register creates an account; the password is always hashed before
	// it reaches the repository.
	Register(ctx context.Context, req RegisterRequest) (*UserDTO, error)

	// Login validates credentials and issues tokens. Unknown username and
	// wrong password are indistinguishable to the caller.
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)

	// RefreshToken exchanges a valid refresh token for a new token pair.
	RefreshToken(ctx context.Context, refreshToken string) (*LoginResponse, error)

	// ChangePassword verifies the current password before storing the hash
	// of the new one. A failed check leaves the stored hash untouched.
	ChangePassword(ctx context.Context, userID int64, req ChangePasswordRequest) error

	List(ctx context.Context) ([]UserDTO, error)
	GetByID(ctx context.Context, id int64) (*UserDTO, error)
	Update(ctx context.Context, id int64, req UpdateUserRequest) (*UserDTO, error)
	Delete(ctx context.Context, id int64) error
}
