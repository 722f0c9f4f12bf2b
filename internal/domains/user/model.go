package user

import (
	"time"
)

// User is an account identity. PasswordHash holds the bcrypt hash only,
// never a plaintext password. Products reference users by plain id (no
// foreign key), so deleting a user leaves dangling references that readers
// tolerate.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
