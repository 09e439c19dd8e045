package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"

	"careon/api-gateway/models"
)

const pagesTable = "pages"

// SupabasePageStore implements PageStore on the hosted Supabase pages table:
// columns {id, slug (unique), title, blocks (jsonb), created_at, updated_at}.
type SupabasePageStore struct {
	db  *supa.Client
	log *logrus.Logger
}

// NewSupabasePageStore wires a PageStore onto the given Supabase client.
func NewSupabasePageStore(db *supa.Client, log *logrus.Logger) *SupabasePageStore {
	return &SupabasePageStore{db: db, log: log}
}

// GetBySlug fetches the one page stored under slug, or ErrNotFound.
func (s *SupabasePageStore) GetBySlug(slug string) (models.Page, error) {
	var pages []models.Page

	body, _, err := s.db.From(pagesTable).
		Select("*", "", false).
		Eq("slug", slug).
		Execute()
	if err != nil {
		s.log.WithError(err).WithField("slug", slug).Error("Failed to fetch page")
		return models.Page{}, fmt.Errorf("fetch page %q: %w", slug, err)
	}

	if err := json.Unmarshal(body, &pages); err != nil {
		s.log.WithError(err).WithField("slug", slug).Error("Failed to decode page row")
		return models.Page{}, fmt.Errorf("decode page %q: %w", slug, err)
	}

	if len(pages) == 0 {
		return models.Page{}, ErrNotFound
	}
	return pages[0], nil
}

// ListAll returns every page, most recently edited first.
func (s *SupabasePageStore) ListAll() ([]models.Page, error) {
	var pages []models.Page

	body, _, err := s.db.From(pagesTable).
		Select("*", "", false).
		Order("updated_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		s.log.WithError(err).Error("Failed to list pages")
		return nil, fmt.Errorf("list pages: %w", err)
	}

	if err := json.Unmarshal(body, &pages); err != nil {
		s.log.WithError(err).Error("Failed to decode page rows")
		return nil, fmt.Errorf("decode pages: %w", err)
	}

	if pages == nil {
		// Return an empty list instead of null, which is more idiomatic for lists.
		pages = []models.Page{}
	}
	return pages, nil
}

// Upsert inserts or replaces the page keyed on slug. created_at is left to the
// table default so a replace keeps the original creation time.
func (s *SupabasePageStore) Upsert(slug, title string, blocks []models.Block) (models.Page, error) {
	row := map[string]interface{}{
		"slug":       slug,
		"title":      title,
		"blocks":     blocks,
		"updated_at": time.Now(),
	}

	var results []models.Page

	body, _, err := s.db.From(pagesTable).
		Insert(row, true, "slug", "representation", "").
		Execute()
	if err != nil {
		s.log.WithError(err).WithField("slug", slug).Error("Failed to upsert page")
		return models.Page{}, fmt.Errorf("upsert page %q: %w", slug, err)
	}

	if err := json.Unmarshal(body, &results); err != nil {
		s.log.WithError(err).WithField("slug", slug).Error("Failed to decode upsert response")
		return models.Page{}, fmt.Errorf("decode upsert response for %q: %w", slug, err)
	}

	if len(results) == 0 {
		return models.Page{}, fmt.Errorf("upsert page %q: empty representation returned", slug)
	}

	s.log.WithFields(logrus.Fields{"slug": slug, "blocks": len(blocks)}).Info("Page saved")
	return results[0], nil
}

// DeleteByID removes a single page. Deleting an id that does not exist is not
// an error; the operation is idempotent.
func (s *SupabasePageStore) DeleteByID(id string) error {
	_, _, err := s.db.From(pagesTable).
		Delete("", "").
		Eq("id", id).
		Execute()
	if err != nil {
		s.log.WithError(err).WithField("id", id).Error("Failed to delete page")
		return fmt.Errorf("delete page %s: %w", id, err)
	}

	s.log.WithField("id", id).Info("Page deleted")
	return nil
}
