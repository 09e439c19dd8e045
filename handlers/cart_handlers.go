package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"careon/api-gateway/utils"
)

// AddCartItemRequest adds (or, with a negative quantity, removes) units of a
// product in a cart. A missing quantity defaults to 1.
type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  *int64 `json:"quantity,omitempty"`
}

// cartID validates the cart identifier path parameter. Cart IDs are UUIDs
// minted by the client on first use.
func cartID(c *fiber.Ctx) (string, error) {
	id, err := uuid.Parse(c.Params("cartId"))
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// GetCart returns the aggregated cart lines.
func (h *ApplicationHandler) GetCart(c *fiber.Ctx) error {
	id, err := cartID(c)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid cart ID format")
	}

	items, err := h.Cart.Items(c.Context(), id)
	if err != nil {
		h.Logger.WithError(err).WithField("cart_id", id).Error("Failed to read cart")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not retrieve cart")
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, items)
}

// AddCartItem aggregates quantity into the cart and returns the updated lines.
func (h *ApplicationHandler) AddCartItem(c *fiber.Ctx) error {
	id, err := cartID(c)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid cart ID format")
	}

	req := new(AddCartItemRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse cart item JSON")
	}
	if err := h.Validate.Struct(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "'product_id' is required")
	}

	qty := int64(1)
	if req.Quantity != nil {
		qty = *req.Quantity
	}
	if qty == 0 {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "'quantity' must not be zero")
	}

	if _, err := h.Cart.AddItem(c.Context(), id, req.ProductID, qty); err != nil {
		h.Logger.WithError(err).WithField("cart_id", id).Error("Failed to add cart item")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not update cart")
	}

	items, err := h.Cart.Items(c.Context(), id)
	if err != nil {
		h.Logger.WithError(err).WithField("cart_id", id).Error("Failed to re-read cart")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not retrieve cart")
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, items)
}

// RemoveCartItem drops one product line from the cart.
func (h *ApplicationHandler) RemoveCartItem(c *fiber.Ctx) error {
	id, err := cartID(c)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid cart ID format")
	}

	if err := h.Cart.RemoveItem(c.Context(), id, c.Params("productId")); err != nil {
		h.Logger.WithError(err).WithField("cart_id", id).Error("Failed to remove cart item")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not update cart")
	}

	return utils.RespondWithSuccess(c, fiber.StatusOK)
}

// ClearCart empties the whole cart.
func (h *ApplicationHandler) ClearCart(c *fiber.Ctx) error {
	id, err := cartID(c)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid cart ID format")
	}

	if err := h.Cart.Clear(c.Context(), id); err != nil {
		h.Logger.WithError(err).WithField("cart_id", id).Error("Failed to clear cart")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not clear cart")
	}

	return utils.RespondWithSuccess(c, fiber.StatusOK)
}
