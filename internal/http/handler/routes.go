package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"modulepage/internal/http/middleware"
	"modulepage/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// The metrics endpoint is only mounted when gatherer is non-nil.
func RegisterRoutes(app *fiber.App, pageSvc service.PageService, gatherer prometheus.Gatherer) {
	index := IndexPage(pageSvc)
	app.Get("/", middleware.NoCache(), index)
	app.Get("/index", middleware.NoCache(), index)

	app.Get("/healthz", LivenessProbe())

	if gatherer != nil {
		app.Get(middleware.MetricsPath, Metrics(gatherer))
	}
}

// Metrics exposes the registry in the Prometheus text format.
//
// @Summary Prometheus metrics
// @Produce plain
// @Success 200 {string} string "metrics"
// @Router /metrics [get]
func Metrics(gatherer prometheus.Gatherer) fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
}
