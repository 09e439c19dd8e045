package store

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"

	"careon/api-gateway/models"
)

const consultationsTable = "consultations"

// SupabaseConsultationStore implements ConsultationStore on the consultations table.
type SupabaseConsultationStore struct {
	db  *supa.Client
	log *logrus.Logger
}

// NewSupabaseConsultationStore wires a ConsultationStore onto the given Supabase client.
func NewSupabaseConsultationStore(db *supa.Client, log *logrus.Logger) *SupabaseConsultationStore {
	return &SupabaseConsultationStore{db: db, log: log}
}

// Create stores a new consultation request with status "new".
func (s *SupabaseConsultationStore) Create(consultation models.Consultation) (models.Consultation, error) {
	row := map[string]interface{}{
		"name":   consultation.Name,
		"phone":  consultation.Phone,
		"status": models.ConsultationNew,
	}
	if consultation.Company != nil {
		row["company"] = *consultation.Company
	}
	if consultation.Message != nil {
		row["message"] = *consultation.Message
	}

	var results []models.Consultation

	body, _, err := s.db.From(consultationsTable).
		Insert(row, false, "", "representation", "").
		Execute()
	if err != nil {
		s.log.WithError(err).Error("Failed to create consultation")
		return models.Consultation{}, fmt.Errorf("create consultation: %w", err)
	}

	if err := json.Unmarshal(body, &results); err != nil {
		s.log.WithError(err).Error("Failed to decode created consultation")
		return models.Consultation{}, fmt.Errorf("decode created consultation: %w", err)
	}

	if len(results) == 0 {
		return models.Consultation{}, fmt.Errorf("create consultation: empty representation returned")
	}

	s.log.WithField("id", results[0].ID).Info("Consultation request created")
	return results[0], nil
}

// ListAll returns every consultation request, newest first.
func (s *SupabaseConsultationStore) ListAll() ([]models.Consultation, error) {
	var consultations []models.Consultation

	body, _, err := s.db.From(consultationsTable).
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		s.log.WithError(err).Error("Failed to list consultations")
		return nil, fmt.Errorf("list consultations: %w", err)
	}

	if err := json.Unmarshal(body, &consultations); err != nil {
		s.log.WithError(err).Error("Failed to decode consultation rows")
		return nil, fmt.Errorf("decode consultations: %w", err)
	}

	if consultations == nil {
		consultations = []models.Consultation{}
	}
	return consultations, nil
}

// SetStatus moves a consultation through new -> contacted -> done.
func (s *SupabaseConsultationStore) SetStatus(id, status string) error {
	_, _, err := s.db.From(consultationsTable).
		Update(map[string]interface{}{"status": status}, "", "").
		Eq("id", id).
		Execute()
	if err != nil {
		s.log.WithError(err).WithField("id", id).Error("Failed to update consultation status")
		return fmt.Errorf("set consultation %s status %q: %w", id, status, err)
	}

	s.log.WithFields(logrus.Fields{"id": id, "status": status}).Info("Consultation status updated")
	return nil
}
