package middleware

import "github.com/gofiber/fiber/v2"

// NoCache marks responses as non-cacheable. The landing page depends on the
// hour it was rendered at, so shared caches must not replay it.
func NoCache() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, "no-store")
		return c.Next()
	}
}
