package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"careon/api-gateway/models"
	"careon/api-gateway/store"
	"careon/api-gateway/utils"
)

// SavePageRequest defines the expected request body for saving a page.
// All three fields are required; Blocks may be an empty array (an empty page
// is valid) but must be present.
type SavePageRequest struct {
	Slug   string         `json:"slug" validate:"required"`
	Title  string         `json:"title" validate:"required"`
	Blocks []models.Block `json:"blocks" validate:"required"`
}

// ListPages godoc
// @Summary List all pages
// @Description Retrieves every page-builder page, most recently edited first.
// @Tags pages
// @Produce json
// @Success 200 {object} map[string]interface{} "success envelope with data: Page[]"
// @Failure 500 {object} map[string]interface{} "storage failure"
// @Router /pages [get]
func (h *ApplicationHandler) ListPages(c *fiber.Ctx) error {
	pages, err := h.Pages.ListAll()
	if err != nil {
		h.Logger.WithError(err).Error("Failed to list pages")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not retrieve pages")
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, pages)
}

// GetPage godoc
// @Summary Fetch one page by slug
// @Description Returns the page stored under the slug. Absence is 404, a storage failure 500.
// @Tags pages
// @Produce json
// @Param slug path string true "Page slug"
// @Success 200 {object} map[string]interface{} "success envelope with data: Page"
// @Failure 404 {object} map[string]interface{} "no page with this slug"
// @Failure 500 {object} map[string]interface{} "storage failure"
// @Router /pages/{slug} [get]
func (h *ApplicationHandler) GetPage(c *fiber.Ctx) error {
	slug := c.Params("slug")

	page, err := h.Pages.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.RespondWithError(c, fiber.StatusNotFound, "Page not found")
		}
		h.Logger.WithError(err).WithField("slug", slug).Error("Failed to fetch page")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not retrieve page")
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, page)
}

// SavePage godoc
// @Summary Create or update a page
// @Description Upserts the page keyed on slug. The same body saved twice converges to one row.
// @Tags pages
// @Accept json
// @Produce json
// @Param page body SavePageRequest true "Page to save"
// @Success 200 {object} map[string]interface{} "saved"
// @Failure 400 {object} map[string]interface{} "missing field or invalid block"
// @Failure 500 {object} map[string]interface{} "save failed"
// @Router /pages [post]
func (h *ApplicationHandler) SavePage(c *fiber.Ctx) error {
	req := new(SavePageRequest)
	if err := c.BodyParser(req); err != nil {
		h.Logger.WithError(err).Warn("Unparseable save-page payload")
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse page JSON")
	}

	if err := h.Validate.Struct(req); err != nil {
		fieldErrors := utils.FormatValidationErrors(err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "slug, title and blocks are required",
			"fields":  fieldErrors,
		})
	}

	if err := models.ValidateBlocks(req.Blocks); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, err.Error())
	}

	if _, err := h.Pages.Upsert(req.Slug, req.Title, req.Blocks); err != nil {
		h.Logger.WithError(err).WithField("slug", req.Slug).Error("Failed to save page")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not save page")
	}

	return utils.RespondWithSuccess(c, fiber.StatusOK)
}

// DeletePage handles the admin-only removal of a page by its id.
func (h *ApplicationHandler) DeletePage(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.Pages.DeleteByID(id); err != nil {
		h.Logger.WithError(err).WithField("id", id).Error("Failed to delete page")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not delete page")
	}

	return utils.RespondWithSuccess(c, fiber.StatusOK)
}
