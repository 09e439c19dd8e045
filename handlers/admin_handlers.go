package handlers

import (
	"crypto/subtle"
	"time"

	"github.com/gofiber/fiber/v2"

	"careon/api-gateway/internal/authtoken"
	"careon/api-gateway/utils"
)

// LoginRequest carries the admin credentials.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AdminLogin issues the admin session cookie on a correct username/password
// pair. Which check failed is never disclosed.
func (h *ApplicationHandler) AdminLogin(c *fiber.Ctx) error {
	req := new(LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse login JSON")
	}
	if err := h.Validate.Struct(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "username and password are required")
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.Admin.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.Admin.Password)) == 1
	if !userOK || !passOK {
		h.Logger.WithField("username", req.Username).Warn("Rejected admin login")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid credentials",
		})
	}

	token := h.Tokens.Issue(h.Admin.Username)
	c.Cookie(&fiber.Cookie{
		Name:     authtoken.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(authtoken.TTL / time.Second),
		HTTPOnly: true,
		Secure:   h.Admin.Production,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	h.Logger.Info("Admin logged in")
	return utils.RespondWithSuccess(c, fiber.StatusOK)
}

// AdminLogout clears the session cookie. The token itself stays valid until
// its 24-hour window closes; there is no server-side revocation list.
func (h *ApplicationHandler) AdminLogout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     authtoken.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.Admin.Production,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return utils.RespondWithSuccess(c, fiber.StatusOK)
}

// AdminCheckAuth reports whether the request carries a valid admin session.
func (h *ApplicationHandler) AdminCheckAuth(c *fiber.Ctx) error {
	token := c.Cookies(authtoken.CookieName)
	if token == "" || !h.Tokens.Verify(token, h.Admin.Username) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"authenticated": false})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"authenticated": true})
}
