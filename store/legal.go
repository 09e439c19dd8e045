package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	supa "github.com/supabase-community/supabase-go"

	"careon/api-gateway/models"
)

const legalTable = "legal_documents"

// SupabaseLegalStore implements LegalStore on the legal_documents table. It
// uses the same slug-conflict upsert pattern as pages.
type SupabaseLegalStore struct {
	db  *supa.Client
	log *logrus.Logger
}

// NewSupabaseLegalStore wires a LegalStore onto the given Supabase client.
func NewSupabaseLegalStore(db *supa.Client, log *logrus.Logger) *SupabaseLegalStore {
	return &SupabaseLegalStore{db: db, log: log}
}

// GetBySlug fetches one legal document by its slug, or ErrNotFound.
func (s *SupabaseLegalStore) GetBySlug(slug string) (models.LegalDocument, error) {
	var docs []models.LegalDocument

	body, _, err := s.db.From(legalTable).
		Select("*", "", false).
		Eq("slug", slug).
		Execute()
	if err != nil {
		s.log.WithError(err).WithField("slug", slug).Error("Failed to fetch legal document")
		return models.LegalDocument{}, fmt.Errorf("fetch legal document %q: %w", slug, err)
	}

	if err := json.Unmarshal(body, &docs); err != nil {
		s.log.WithError(err).WithField("slug", slug).Error("Failed to decode legal document row")
		return models.LegalDocument{}, fmt.Errorf("decode legal document %q: %w", slug, err)
	}

	if len(docs) == 0 {
		return models.LegalDocument{}, ErrNotFound
	}
	return docs[0], nil
}

// Upsert inserts or replaces the document stored under slug.
func (s *SupabaseLegalStore) Upsert(slug, title, content string) (models.LegalDocument, error) {
	row := map[string]interface{}{
		"slug":       slug,
		"title":      title,
		"content":    content,
		"updated_at": time.Now(),
	}

	var results []models.LegalDocument

	body, _, err := s.db.From(legalTable).
		Insert(row, true, "slug", "representation", "").
		Execute()
	if err != nil {
		s.log.WithError(err).WithField("slug", slug).Error("Failed to upsert legal document")
		return models.LegalDocument{}, fmt.Errorf("upsert legal document %q: %w", slug, err)
	}

	if err := json.Unmarshal(body, &results); err != nil {
		s.log.WithError(err).WithField("slug", slug).Error("Failed to decode upsert response")
		return models.LegalDocument{}, fmt.Errorf("decode legal upsert response for %q: %w", slug, err)
	}

	if len(results) == 0 {
		return models.LegalDocument{}, fmt.Errorf("upsert legal document %q: empty representation returned", slug)
	}

	s.log.WithField("slug", slug).Info("Legal document saved")
	return results[0], nil
}
