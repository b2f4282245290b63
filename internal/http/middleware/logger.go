package middleware

import (
	"io"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/trace"

	"modulepage/internal/applog"
)

// Logger logs each HTTP request as one JSON object per line on stdout.
func Logger(loc *time.Location) fiber.Handler {
	return LoggerWithWriter(os.Stdout, loc)
}

// LoggerWithWriter is Logger with an explicit destination.
// Fields: ts, request_id, method, path, status, latency (milliseconds) and
// trace_id when the request context carries a span.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	log := applog.New(w, loc)

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// The global error handler runs after middleware returns; report its status.
			status = fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
		}

		fields := map[string]any{
			"request_id": RequestIDFromCtx(c),
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency":    float64(time.Since(start).Microseconds()) / 1000,
		}
		if sc := trace.SpanContextFromContext(c.UserContext()); sc.HasTraceID() {
			fields["trace_id"] = sc.TraceID().String()
		}
		log.At(start, "request", fields)

		return err
	}
}
