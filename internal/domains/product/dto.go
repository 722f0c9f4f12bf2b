package product

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

var (
	priceMin = decimal.NewFromFloat(0.01)
	priceMax = decimal.NewFromFloat(10000.00)
)

// priceRange validates the price bounds [0.01, 10000.00].
func priceRange(value interface{}) error {
	price, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("invalid price")
	}
	if price.LessThan(priceMin) || price.GreaterThan(priceMax) {
		return errors.New("price must be between 0.01 and 10000.00")
	}
	return nil
}

// ========================================
// REQUEST DTOs
// ========================================

// ListProductsRequest - GET /products query parameters
type ListProductsRequest struct {
	CategoryID *int64 `form:"category_id"`
	AuthorID   *int64 `form:"author_id"`
	Search     string `form:"search"`
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
}

// SetDefaults clamps pagination to sane values before the filter is built;
// the query builder itself does not validate.
func (r *ListProductsRequest) SetDefaults() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = 10
	}
}

// ToFilter converts the request into the repository filter.
func (r *ListProductsRequest) ToFilter() *Filter {
	return &Filter{
		CategoryID: r.CategoryID,
		AuthorID:   r.AuthorID,
		Search:     r.Search,
		Page:       r.Page,
		Limit:      r.Limit,
	}
}

// CreateProductRequest - POST /products payload
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Description string          `json:"description"`
	CategoryID  int64           `json:"category_id" binding:"required"`
	AuthorID    int64           `json:"author_id" binding:"required"`
}

func (r CreateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100).Error("name can't be longer than 100 characters"),
		),
		validation.Field(&r.Price, validation.By(priceRange)),
		validation.Field(&r.Description,
			validation.Length(0, 2000).Error("description can't be longer than 2000 characters"),
		),
		validation.Field(&r.CategoryID, validation.Required.Error("category_id is required")),
		validation.Field(&r.AuthorID, validation.Required.Error("author_id is required")),
	)
}

// UpdateProductRequest - PUT /products/:id payload. Version is the token
// the client read; the update fails with a conflict when it is stale.
type UpdateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Description string          `json:"description"`
	CategoryID  int64           `json:"category_id" binding:"required"`
	AuthorID    int64           `json:"author_id" binding:"required"`
	Version     int             `json:"version" binding:"required"`
}

func (r UpdateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100).Error("name can't be longer than 100 characters"),
		),
		validation.Field(&r.Price, validation.By(priceRange)),
		validation.Field(&r.Description,
			validation.Length(0, 2000).Error("description can't be longer than 2000 characters"),
		),
		validation.Field(&r.CategoryID, validation.Required.Error("category_id is required")),
		validation.Field(&r.AuthorID, validation.Required.Error("author_id is required")),
		validation.Field(&r.Version, validation.Min(1).Error("version is required")),
	)
}

// ========================================
// RESPONSE DTOs
// ========================================

// CategoryRef - category summary embedded in a product listing row
type CategoryRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AuthorRef - author summary embedded in a product listing row
type AuthorRef struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Biography   string    `json:"biography"`
	DateOfBirth time.Time `json:"date_of_birth"`
}

// UserRef - user summary embedded in a product listing row
type UserRef struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// ProductDTO is the read-only listing projection. Category and Author are
// resolved references; CreatedBy/UpdatedBy are nil when the product has no
// such reference or the referenced user was deleted. Never persisted.
type ProductDTO struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Version     int             `json:"version"`
	Category    *CategoryRef    `json:"category"`
	Author      *AuthorRef      `json:"author"`
	CreatedBy   *UserRef        `json:"created_by,omitempty"`
	UpdatedBy   *UserRef        `json:"updated_by,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
