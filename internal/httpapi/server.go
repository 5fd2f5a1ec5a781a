// Package httpapi exposes the authentication core over HTTP: the login
// endpoint, the token-guarded user endpoint and a liveness probe.
package httpapi

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/avidaldev/authgate/internal/auth"
	"github.com/avidaldev/authgate/internal/logging"
)

// New assembles the fiber application with all routes registered.
func New(auther *auth.Auther, validator auth.TokenValidator, logger logging.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "authgate",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(RequestLogger(os.Stdout))
	app.Use(cors.New())

	ctrl := NewController(auther, logger)

	app.Get("/", ctrl.Probe)

	api := app.Group("/api")
	api.Post("/login", ctrl.Login)
	api.Get("/user", RequireToken(validator, logger), ctrl.CurrentUser)

	return app
}
