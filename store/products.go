package store

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"

	"careon/api-gateway/models"
)

const productsTable = "products"

// SupabaseProductStore implements ProductStore on the products table.
type SupabaseProductStore struct {
	db  *supa.Client
	log *logrus.Logger
}

// NewSupabaseProductStore wires a ProductStore onto the given Supabase client.
func NewSupabaseProductStore(db *supa.Client, log *logrus.Logger) *SupabaseProductStore {
	return &SupabaseProductStore{db: db, log: log}
}

// ListActive returns the sellable catalog in display order.
func (s *SupabaseProductStore) ListActive() ([]models.Product, error) {
	var products []models.Product

	body, _, err := s.db.From(productsTable).
		Select("*", "", false).
		Eq("active", "true").
		Order("sort_order", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		s.log.WithError(err).Error("Failed to list products")
		return nil, fmt.Errorf("list products: %w", err)
	}

	if err := json.Unmarshal(body, &products); err != nil {
		s.log.WithError(err).Error("Failed to decode product rows")
		return nil, fmt.Errorf("decode products: %w", err)
	}

	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// GetBySlug fetches one product by its slug, or ErrNotFound.
func (s *SupabaseProductStore) GetBySlug(slug string) (models.Product, error) {
	var products []models.Product

	body, _, err := s.db.From(productsTable).
		Select("*", "", false).
		Eq("slug", slug).
		Execute()
	if err != nil {
		s.log.WithError(err).WithField("slug", slug).Error("Failed to fetch product")
		return models.Product{}, fmt.Errorf("fetch product %q: %w", slug, err)
	}

	if err := json.Unmarshal(body, &products); err != nil {
		s.log.WithError(err).WithField("slug", slug).Error("Failed to decode product row")
		return models.Product{}, fmt.Errorf("decode product %q: %w", slug, err)
	}

	if len(products) == 0 {
		return models.Product{}, ErrNotFound
	}
	return products[0], nil
}
