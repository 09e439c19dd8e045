package models

import (
	"time"

	"github.com/google/uuid"
)

// LegalDocument is an admin-editable legal text (terms, privacy, refund...).
// Slug is the unique lookup/upsert key, same pattern as pages.
type LegalDocument struct {
	ID        uuid.UUID `json:"id,omitempty"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}
