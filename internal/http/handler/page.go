package handler

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"modulepage/internal/service"
	"modulepage/internal/view"
)

// ContentTypeHTML is the Content-Type sent with the rendered page.
const ContentTypeHTML = "text/html; charset=UTF-8"

// IndexPage serves the module landing page.
// The document is rendered into a buffer first so a template failure never
// leaves a partial body behind a 200.
//
// @Summary Module landing page
// @Description Renders the HTML page with a greeting for the current hour.
// @Produce html
// @Success 200 {string} string "HTML document"
// @Failure 500 {object} errorPayload
// @Router / [get]
// @Router /index [get]
func IndexPage(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := svc.Build(c.UserContext())
		if err != nil {
			return fmt.Errorf("build page: %w", err)
		}

		var buf bytes.Buffer
		if err := view.RenderPage(&buf, page); err != nil {
			return fmt.Errorf("render page: %w", err)
		}

		c.Set(fiber.HeaderContentType, ContentTypeHTML)
		return c.Status(fiber.StatusOK).Send(buf.Bytes())
	}
}
