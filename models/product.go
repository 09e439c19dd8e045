package models

import (
	"time"

	"github.com/google/uuid"
)

// Product represents the structure of a product in the database.
type Product struct {
	ID          uuid.UUID `json:"id,omitempty"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Summary     *string   `json:"summary,omitempty"`     // Use a pointer for nullable TEXT fields
	Description *string   `json:"description,omitempty"` // Use a pointer for nullable TEXT fields
	Price       int64     `json:"price"`
	MonthlyFee  *int64    `json:"monthly_fee,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Category    string    `json:"category"`
	Featured    bool      `json:"featured"`
	SortOrder   int       `json:"sort_order"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
