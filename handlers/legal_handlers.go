package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"careon/api-gateway/store"
	"careon/api-gateway/utils"
)

// SaveLegalRequest defines the body for editing a legal document.
type SaveLegalRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// GetLegalDocument serves a legal document (terms, privacy, ...) by slug.
func (h *ApplicationHandler) GetLegalDocument(c *fiber.Ctx) error {
	slug := c.Params("slug")

	doc, err := h.Legal.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.RespondWithError(c, fiber.StatusNotFound, "Document not found")
		}
		h.Logger.WithError(err).WithField("slug", slug).Error("Failed to fetch legal document")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not retrieve document")
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, doc)
}

// SaveLegalDocument upserts a legal document under its slug (admin only).
func (h *ApplicationHandler) SaveLegalDocument(c *fiber.Ctx) error {
	slug := c.Params("slug")

	req := new(SaveLegalRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse document JSON")
	}
	if err := h.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "title and content are required",
			"fields":  utils.FormatValidationErrors(err),
		})
	}

	doc, err := h.Legal.Upsert(slug, req.Title, req.Content)
	if err != nil {
		h.Logger.WithError(err).WithField("slug", slug).Error("Failed to save legal document")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not save document")
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, doc)
}
