package category

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateCategoryRequest - POST /categories payload
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func (r CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
	)
}

// UpdateCategoryRequest - PUT /categories/:id payload
type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func (r UpdateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
	)
}

// CategoryDTO - public representation
type CategoryDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToDTO converts the entity to its public shape.
func (c *Category) ToDTO() CategoryDTO {
	return CategoryDTO{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
