package handlers

import (
	"github.com/gofiber/fiber/v2"

	"careon/api-gateway/internal/notify"
	"careon/api-gateway/utils"
)

// SendSMSRequest queues one outbound SMS.
type SendSMSRequest struct {
	Phone   string `json:"phone" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// SendSMS accepts a notification for asynchronous delivery. 202 means queued,
// not delivered; failures after this point are logged by the dispatcher.
func (h *ApplicationHandler) SendSMS(c *fiber.Ctx) error {
	if h.Notifier == nil {
		return utils.RespondWithError(c, fiber.StatusServiceUnavailable, "SMS gateway is not configured")
	}

	req := new(SendSMSRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse SMS JSON")
	}
	if err := h.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "phone and message are required",
			"fields":  utils.FormatValidationErrors(err),
		})
	}

	if !h.Notifier.Submit(notify.Job{Phone: req.Phone, Message: req.Message}) {
		return utils.RespondWithError(c, fiber.StatusServiceUnavailable, "Notification queue is full")
	}

	return utils.RespondWithSuccess(c, fiber.StatusAccepted)
}
