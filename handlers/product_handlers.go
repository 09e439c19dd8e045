package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"careon/api-gateway/store"
	"careon/api-gateway/utils"
)

// ListProducts returns the active product catalog in display order.
func (h *ApplicationHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.Products.ListActive()
	if err != nil {
		h.Logger.WithError(err).Error("Failed to list products")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not retrieve products")
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, products)
}

// GetProduct returns one product by slug.
func (h *ApplicationHandler) GetProduct(c *fiber.Ctx) error {
	slug := c.Params("slug")

	product, err := h.Products.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.RespondWithError(c, fiber.StatusNotFound, "Product not found")
		}
		h.Logger.WithError(err).WithField("slug", slug).Error("Failed to fetch product")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not retrieve product")
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, product)
}
