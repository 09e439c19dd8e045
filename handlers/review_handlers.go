package handlers

import (
	"github.com/gofiber/fiber/v2"

	"careon/api-gateway/models"
	"careon/api-gateway/utils"
)

// CreateReviewRequest defines the expected request body for submitting a review.
type CreateReviewRequest struct {
	Author       string  `json:"author" validate:"required"`
	BusinessName *string `json:"business_name,omitempty"`
	Rating       int     `json:"rating" validate:"required,min=1,max=5"`
	Content      string  `json:"content" validate:"required"`
}

// ModerateReviewRequest flips a review's approval flag.
type ModerateReviewRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

// ListReviews returns approved reviews only; unmoderated submissions stay
// invisible to the public listing.
func (h *ApplicationHandler) ListReviews(c *fiber.Ctx) error {
	reviews, err := h.Reviews.ListApproved()
	if err != nil {
		h.Logger.WithError(err).Error("Failed to list reviews")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not retrieve reviews")
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, reviews)
}

// CreateReview accepts a public review submission. It is stored unapproved.
func (h *ApplicationHandler) CreateReview(c *fiber.Ctx) error {
	req := new(CreateReviewRequest)
	if err := c.BodyParser(req); err != nil {
		h.Logger.WithError(err).Warn("Unparseable review payload")
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse review JSON")
	}

	if err := h.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "author, content and a rating between 1 and 5 are required",
			"fields":  utils.FormatValidationErrors(err),
		})
	}

	review := models.Review{
		Author:       req.Author,
		BusinessName: req.BusinessName,
		Rating:       req.Rating,
		Content:      req.Content,
		Approved:     false,
	}

	created, err := h.Reviews.Create(review)
	if err != nil {
		h.Logger.WithError(err).Error("Failed to create review")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not save review")
	}

	return utils.RespondWithJSON(c, fiber.StatusCreated, created)
}

// ListAllReviews is the admin view including unmoderated submissions.
func (h *ApplicationHandler) ListAllReviews(c *fiber.Ctx) error {
	reviews, err := h.Reviews.ListAll()
	if err != nil {
		h.Logger.WithError(err).Error("Failed to list all reviews")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not retrieve reviews")
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, reviews)
}

// ModerateReview sets a review's approval flag (admin only).
func (h *ApplicationHandler) ModerateReview(c *fiber.Ctx) error {
	id := c.Params("id")

	req := new(ModerateReviewRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse moderation JSON")
	}
	if err := h.Validate.Struct(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "'approved' is required")
	}

	if err := h.Reviews.SetApproved(id, *req.Approved); err != nil {
		h.Logger.WithError(err).WithField("id", id).Error("Failed to moderate review")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not update review")
	}

	return utils.RespondWithSuccess(c, fiber.StatusOK)
}

// DeleteReview removes a review (admin only).
func (h *ApplicationHandler) DeleteReview(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.Reviews.Delete(id); err != nil {
		h.Logger.WithError(err).WithField("id", id).Error("Failed to delete review")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not delete review")
	}

	return utils.RespondWithSuccess(c, fiber.StatusOK)
}
