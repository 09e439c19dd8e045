// Package store is the sole authority for persistence. Handlers never touch
// the Supabase client directly; they depend on these interfaces so tests can
// swap in fakes. Absence and storage failure are distinct outcomes: lookups
// return ErrNotFound when no row matches and a wrapped error when the backend
// misbehaves, so the API layer can answer 404 vs 500 without guessing.
package store

import (
	"errors"

	"careon/api-gateway/models"
)

// ErrNotFound signals that no row matched the lookup key. It is a normal
// outcome, not a storage failure.
var ErrNotFound = errors.New("not found")

// PageStore persists page-builder pages keyed by slug.
type PageStore interface {
	GetBySlug(slug string) (models.Page, error)
	ListAll() ([]models.Page, error)
	// Upsert inserts or replaces the page with this slug and refreshes
	// updated_at. It is idempotent per slug: repeating the same call any
	// number of times converges to one row.
	Upsert(slug, title string, blocks []models.Block) (models.Page, error)
	DeleteByID(id string) error
}

// ProductStore serves the product catalog.
type ProductStore interface {
	ListActive() ([]models.Product, error)
	GetBySlug(slug string) (models.Product, error)
}

// ReviewStore persists customer reviews and their moderation state.
type ReviewStore interface {
	ListApproved() ([]models.Review, error)
	ListAll() ([]models.Review, error)
	Create(review models.Review) (models.Review, error)
	SetApproved(id string, approved bool) error
	Delete(id string) error
}

// LegalStore persists admin-editable legal documents keyed by slug.
type LegalStore interface {
	GetBySlug(slug string) (models.LegalDocument, error)
	Upsert(slug, title, content string) (models.LegalDocument, error)
}

// ConsultationStore persists consultation requests from the lead form.
type ConsultationStore interface {
	Create(consultation models.Consultation) (models.Consultation, error)
	ListAll() ([]models.Consultation, error)
	SetStatus(id, status string) error
}
