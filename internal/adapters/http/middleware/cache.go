package middleware

import "github.com/gofiber/fiber/v2"

// NoCacheHeaders marks API responses as uncacheable. The directory is
// served from the process-local cache; intermediaries must not keep
// their own copies of session-scoped data.
func NoCacheHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Cache-Control", "no-store, no-cache, must-revalidate")
		c.Set("Pragma", "no-cache")
		c.Set("Expires", "0")
		return c.Next()
	}
}
