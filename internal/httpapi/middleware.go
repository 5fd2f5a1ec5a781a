package httpapi

import (
	"errors"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/avidaldev/authgate/internal/auth"
	"github.com/avidaldev/authgate/internal/logging"
)

// sessionKey is where the middleware stores validated claims on the request.
const sessionKey = "session"

// authScheme is the expected Authorization header prefix.
const authScheme = "Bearer"

var errMissingToken = errors.New("missing or malformed authorization header")

// RequestLogger logs one line per request to out: timestamp, status,
// latency, method and path.
func RequestLogger(out io.Writer) fiber.Handler {
	return fiberlog.New(fiberlog.Config{
		Output: out,
	})
}

// RequireToken guards a route behind a valid bearer token. Every failure
// mode (missing header, missing token segment, bad signature, expired)
// produces the same 401 body; the distinction survives only in the logs.
func RequireToken(validator auth.TokenValidator, logger logging.Logger) fiber.Handler {
	if logger == nil {
		logger = logging.NewNop()
	}

	return func(c *fiber.Ctx) error {
		raw, err := tokenFromHeader(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			logger.Debug("request rejected", "path", c.Path(), "reason", err)
			return unauthorized(c)
		}

		claims, err := validator.Validate(raw)
		if err != nil {
			logger.Debug("token rejected", "path", c.Path(), "reason", err)
			return unauthorized(c)
		}

		c.Locals(sessionKey, claims)
		return c.Next()
	}
}

// SessionClaims returns the claims stored by RequireToken, or nil when the
// route was not guarded.
func SessionClaims(c *fiber.Ctx) *auth.Claims {
	claims, _ := c.Locals(sessionKey).(*auth.Claims)
	return claims
}

// tokenFromHeader extracts the raw token from a scheme-prefixed
// Authorization header value. The scheme must be followed by a space;
// "Bearer<token>" glued together is not a bearer credential.
func tokenFromHeader(header string) (string, error) {
	l := len(authScheme)
	if len(header) > l+1 && strings.EqualFold(header[:l], authScheme) && header[l] == ' ' {
		token := strings.TrimSpace(header[l+1:])
		if token != "" {
			return token, nil
		}
	}
	return "", errMissingToken
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": "invalid or expired token",
	})
}
