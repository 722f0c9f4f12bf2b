package author

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateAuthorRequest - POST /authors payload
type CreateAuthorRequest struct {
	Name        string    `json:"name" binding:"required"`
	Biography   string    `json:"biography"`
	DateOfBirth time.Time `json:"date_of_birth"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Biography,
			validation.Length(0, 2000).Error("biography can't be longer than 2000 characters"),
		),
	)
}

// UpdateAuthorRequest - PUT /authors/:id payload
type UpdateAuthorRequest struct {
	Name        string    `json:"name" binding:"required"`
	Biography   string    `json:"biography"`
	DateOfBirth time.Time `json:"date_of_birth"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Biography,
			validation.Length(0, 2000).Error("biography can't be longer than 2000 characters"),
		),
	)
}

// AuthorDTO - public representation
type AuthorDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Biography   string    `json:"biography"`
	DateOfBirth time.Time `json:"date_of_birth"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToDTO converts the entity to its public shape.
func (a *Author) ToDTO() AuthorDTO {
	return AuthorDTO{
		ID:          a.ID,
		Name:        a.Name,
		Biography:   a.Biography,
		DateOfBirth: a.DateOfBirth,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
