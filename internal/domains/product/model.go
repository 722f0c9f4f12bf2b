package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the persisted entity. CreatedBy/UpdatedBy are plain user ids
// without a foreign key: the referenced user may be deleted later and
// readers must tolerate that. Version backs the optimistic concurrency
// check on updates.
type Product struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Description string
	CategoryID  int64
	AuthorID    int64
	CreatedBy   *int64
	UpdatedBy   *int64
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Filter narrows the product listing. Nil/empty fields impose no
// constraint; the predicates that are present compose with AND.
type Filter struct {
	CategoryID *int64
	AuthorID   *int64
	Search     string
	Page       int // 1-indexed
	Limit      int
}

// Offset computes the rows to skip for the requested page.
func (f *Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}
