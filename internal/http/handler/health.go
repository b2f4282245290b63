package handler

import "github.com/gofiber/fiber/v2"

// LivenessProbe reports that the process is serving requests.
//
// @Summary Liveness probe
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
