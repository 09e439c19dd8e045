package models

import (
	"time"

	"github.com/google/uuid"
)

// Review represents a customer review. Reviews are created unapproved and only
// appear on the public listing once an admin flips Approved.
type Review struct {
	ID           uuid.UUID `json:"id,omitempty"`
	Author       string    `json:"author"`
	BusinessName *string   `json:"business_name,omitempty"` // Nullable TEXT
	Rating       int       `json:"rating"`
	Content      string    `json:"content"`
	Approved     bool      `json:"approved"`
	CreatedAt    time.Time `json:"created_at"`
}
