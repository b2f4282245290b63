package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"modulepage/internal/applog"
	"modulepage/internal/config"
	handlers "modulepage/internal/http/handler"
	"modulepage/internal/http/middleware"
	"modulepage/internal/otel"
	"modulepage/internal/service"
)

// @title Module Page
// @version 1.0
// @description Server-rendered module landing page with a time-of-day greeting.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := cfg.Location()
	log := applog.Stdout(loc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Error("tracing_init_failed", err, nil)
		os.Exit(1)
	}

	pageSvc := service.NewPageService(nil, loc)

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(loc))

	var gatherer prometheus.Gatherer
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
		if err != nil {
			log.Error("metrics_init_failed", err, nil)
			os.Exit(1)
		}
		app.Use(promMiddleware.Handler())
		gatherer = reg
	}

	handlers.RegisterRoutes(app, pageSvc, gatherer)

	if cfg.SwaggerEnabled {
		handlers.RegisterSwagger(app, cfg.AppHost, cfg.AppScheme)
	}

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Info("server_starting", map[string]any{
			"addr":     addr,
			"app_host": cfg.AppHost,
			"timezone": loc.String(),
		})
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server_failed", err, map[string]any{"addr": addr})
			os.Exit(1)
		}
	case <-ctx.Done():
		log.Info("server_stopping", nil)
	}

	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout()); err != nil {
		log.Error("server_shutdown_failed", err, nil)
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		log.Error("tracing_shutdown_failed", err, nil)
	}

	log.Info("server_stopped", nil)
}
