package store

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"

	"careon/api-gateway/models"
)

const reviewsTable = "reviews"

// SupabaseReviewStore implements ReviewStore on the reviews table.
type SupabaseReviewStore struct {
	db  *supa.Client
	log *logrus.Logger
}

// NewSupabaseReviewStore wires a ReviewStore onto the given Supabase client.
func NewSupabaseReviewStore(db *supa.Client, log *logrus.Logger) *SupabaseReviewStore {
	return &SupabaseReviewStore{db: db, log: log}
}

func (s *SupabaseReviewStore) listWhere(approvedOnly bool) ([]models.Review, error) {
	query := s.db.From(reviewsTable).
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false})
	if approvedOnly {
		query = query.Eq("approved", "true")
	}

	body, _, err := query.Execute()
	if err != nil {
		s.log.WithError(err).Error("Failed to list reviews")
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	var reviews []models.Review
	if err := json.Unmarshal(body, &reviews); err != nil {
		s.log.WithError(err).Error("Failed to decode review rows")
		return nil, fmt.Errorf("decode reviews: %w", err)
	}

	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}

// ListApproved returns published reviews, newest first.
func (s *SupabaseReviewStore) ListApproved() ([]models.Review, error) {
	return s.listWhere(true)
}

// ListAll returns every review including unmoderated ones, newest first.
func (s *SupabaseReviewStore) ListAll() ([]models.Review, error) {
	return s.listWhere(false)
}

// Create inserts a new review. The approved flag is stored as given; public
// submissions arrive with it false.
func (s *SupabaseReviewStore) Create(review models.Review) (models.Review, error) {
	row := map[string]interface{}{
		"author":   review.Author,
		"rating":   review.Rating,
		"content":  review.Content,
		"approved": review.Approved,
	}
	if review.BusinessName != nil {
		row["business_name"] = *review.BusinessName
	}

	var results []models.Review

	body, _, err := s.db.From(reviewsTable).
		Insert(row, false, "", "representation", "").
		Execute()
	if err != nil {
		s.log.WithError(err).Error("Failed to create review")
		return models.Review{}, fmt.Errorf("create review: %w", err)
	}

	if err := json.Unmarshal(body, &results); err != nil {
		s.log.WithError(err).Error("Failed to decode created review")
		return models.Review{}, fmt.Errorf("decode created review: %w", err)
	}

	if len(results) == 0 {
		return models.Review{}, fmt.Errorf("create review: empty representation returned")
	}

	s.log.WithField("id", results[0].ID).Info("Review created")
	return results[0], nil
}

// SetApproved flips the moderation flag on one review.
func (s *SupabaseReviewStore) SetApproved(id string, approved bool) error {
	_, _, err := s.db.From(reviewsTable).
		Update(map[string]interface{}{"approved": approved}, "", "").
		Eq("id", id).
		Execute()
	if err != nil {
		s.log.WithError(err).WithField("id", id).Error("Failed to update review approval")
		return fmt.Errorf("set review %s approved=%t: %w", id, approved, err)
	}

	s.log.WithFields(logrus.Fields{"id": id, "approved": approved}).Info("Review moderation updated")
	return nil
}

// Delete removes one review.
func (s *SupabaseReviewStore) Delete(id string) error {
	_, _, err := s.db.From(reviewsTable).
		Delete("", "").
		Eq("id", id).
		Execute()
	if err != nil {
		s.log.WithError(err).WithField("id", id).Error("Failed to delete review")
		return fmt.Errorf("delete review %s: %w", id, err)
	}

	s.log.WithField("id", id).Info("Review deleted")
	return nil
}
