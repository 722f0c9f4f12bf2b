package author

import (
	"time"
)

// Author is a product author. Referenced by zero or more products;
// deletion is rejected while referenced.
type Author struct {
	ID          int64
	Name        string
	Biography   string
	DateOfBirth time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
