package category

import (
	"time"
)

// Category is a product grouping. Referenced by zero or more products;
// deletion is rejected while referenced.
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
