package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"careon/api-gateway/internal/notify"
	"careon/api-gateway/models"
	"careon/api-gateway/utils"
)

// CreateConsultationRequest carries the lead form submission.
type CreateConsultationRequest struct {
	Name    string  `json:"name" validate:"required"`
	Phone   string  `json:"phone" validate:"required"`
	Company *string `json:"company,omitempty"`
	Message *string `json:"message,omitempty"`
}

// UpdateConsultationRequest moves a consultation to a new status.
type UpdateConsultationRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted done"`
}

// CreateConsultation stores a consultation request and, when the SMS gateway
// is configured, queues a notification to the admin phone. SMS delivery is
// best-effort: a full queue or later send failure never fails the request.
func (h *ApplicationHandler) CreateConsultation(c *fiber.Ctx) error {
	req := new(CreateConsultationRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse consultation JSON")
	}
	if err := h.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "name and phone are required",
			"fields":  utils.FormatValidationErrors(err),
		})
	}

	created, err := h.Consultations.Create(models.Consultation{
		Name:    req.Name,
		Phone:   req.Phone,
		Company: req.Company,
		Message: req.Message,
	})
	if err != nil {
		h.Logger.WithError(err).Error("Failed to create consultation")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not save consultation request")
	}

	if h.Notifier != nil && h.SMS.AdminPhone != "" {
		h.Notifier.Submit(notify.Job{
			Phone:   h.SMS.AdminPhone,
			Message: fmt.Sprintf("[CareOn] New consultation request from %s (%s)", created.Name, created.Phone),
		})
	}

	return utils.RespondWithJSON(c, fiber.StatusCreated, created)
}

// ListConsultations is the admin view of all consultation requests.
func (h *ApplicationHandler) ListConsultations(c *fiber.Ctx) error {
	consultations, err := h.Consultations.ListAll()
	if err != nil {
		h.Logger.WithError(err).Error("Failed to list consultations")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not retrieve consultations")
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, consultations)
}

// UpdateConsultation sets the workflow status of one consultation (admin only).
func (h *ApplicationHandler) UpdateConsultation(c *fiber.Ctx) error {
	id := c.Params("id")

	req := new(UpdateConsultationRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse status JSON")
	}
	if err := h.Validate.Struct(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "status must be one of new, contacted, done")
	}

	if err := h.Consultations.SetStatus(id, req.Status); err != nil {
		h.Logger.WithError(err).WithField("id", id).Error("Failed to update consultation")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not update consultation")
	}

	return utils.RespondWithSuccess(c, fiber.StatusOK)
}
