package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"modulepage/docs"
)

// RegisterSwagger fixes the advertised host and scheme once and mounts the Swagger UI.
// It must run before the app starts serving; SwaggerInfo is read-only afterwards.
func RegisterSwagger(app *fiber.App, host, scheme string) {
	docs.SwaggerInfo.Host = host
	docs.SwaggerInfo.Schemes = []string{scheme}

	app.Get("/swagger/*", swagger.HandlerDefault)
}
