package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/avidaldev/authgate/internal/auth"
	"github.com/avidaldev/authgate/internal/logging"
)

// Controller carries the handlers for the authentication API.
type Controller struct {
	auther *auth.Auther
	logger logging.Logger
}

// NewController builds a Controller around the given authenticator.
func NewController(auther *auth.Auther, logger logging.Logger) *Controller {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Controller{auther: auther, logger: logger}
}

// Login handles POST /api/login. Missing fields are a 400; any credential
// mismatch is a 401 with a message that never reveals which field was wrong.
func (ctrl *Controller) Login(c *fiber.Ctx) error {
	var payload LoginRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "email and password are required",
		})
	}

	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "email and password are required",
		})
	}

	token, user, err := ctrl.auther.Login(c.Context(), payload.Email, payload.Password)
	if err != nil {
		if !errors.Is(err, auth.ErrIdentityNotFound) {
			ctrl.logger.Error("login failed", "error", err)
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "invalid credentials",
		})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// CurrentUser handles GET /api/user. RequireToken has already validated the
// token; the response is the projection embedded at issuance, not a fresh
// directory read.
func (ctrl *Controller) CurrentUser(c *fiber.Ctx) error {
	claims := SessionClaims(c)
	if claims == nil {
		return unauthorized(c)
	}
	return c.JSON(claims.Projection())
}

// Probe handles GET /, the liveness check.
func (ctrl *Controller) Probe(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "authentication API running",
	})
}
