package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler returns a basic liveness check.
func HealthHandler(deps *Dependencies) fiber.Handler {
	startedAt := time.Now()

	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"uptime":  time.Since(startedAt).String(),
			"version": "dev",
		})
	}
}

// ReadyHandler reports which estimation providers are configured. A missing
// credential disables that provider but never makes the service unready: the
// engine degrades to the geometric fallback instead.
func ReadyHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		providerState := func(configured bool) string {
			if configured {
				return "configured"
			}
			return "not configured"
		}

		return c.JSON(fiber.Map{
			"status": "ready",
			"providers": fiber.Map{
				"kakao": providerState(deps.Capabilities.HasKakao()),
				"odsay": providerState(deps.Capabilities.HasODsay()),
			},
		})
	}
}
