package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// OAuthCallback lands the provider redirect after a social login. The hosted
// auth backend performs the code exchange itself; this handler only forwards
// the outcome to the frontend and records it.
func (h *ApplicationHandler) OAuthCallback(c *fiber.Ctx) error {
	frontend := h.FrontendURL
	if frontend == "" {
		frontend = "/"
	}

	if errCode := c.Query("error"); errCode != "" {
		h.Logger.WithFields(map[string]interface{}{
			"error":       errCode,
			"description": c.Query("error_description"),
		}).Warn("OAuth callback reported an error")
		params := url.Values{"error": {errCode}}
		return c.Redirect(frontend+"/auth/complete?"+params.Encode(), fiber.StatusFound)
	}

	code := c.Query("code")
	if code == "" {
		h.Logger.Warn("OAuth callback arrived without a code")
		return c.Redirect(frontend+"/auth/complete?error=missing_code", fiber.StatusFound)
	}

	h.Logger.Info("OAuth callback accepted")
	params := url.Values{"code": {code}}
	return c.Redirect(frontend+"/auth/complete?"+params.Encode(), fiber.StatusFound)
}
