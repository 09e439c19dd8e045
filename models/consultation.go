package models

import (
	"time"

	"github.com/google/uuid"
)

// Consultation statuses.
const (
	ConsultationNew       = "new"
	ConsultationContacted = "contacted"
	ConsultationDone      = "done"
)

// Consultation is a lead captured from the consultation-request form.
type Consultation struct {
	ID        uuid.UUID `json:"id,omitempty"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Company   *string   `json:"company,omitempty"` // Nullable TEXT
	Message   *string   `json:"message,omitempty"` // Nullable TEXT
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
