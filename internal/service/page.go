package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"modulepage/internal/model"
)

const tracerName = "modulepage/internal/service"

// PageService defines the use cases for the module landing page.
type PageService interface {
	// Build reads the clock and returns the page view model for this request.
	Build(ctx context.Context) (*model.Page, error)
}

// pageService is a concrete implementation of PageService.
// It only holds immutable configuration and is safe for concurrent use.
type pageService struct {
	now func() time.Time
	loc *time.Location
}

// NewPageService constructs a new PageService.
// A nil now defaults to time.Now and a nil loc to time.Local.
func NewPageService(now func() time.Time, loc *time.Location) PageService {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &pageService{now: now, loc: loc}
}

func (s *pageService) Build(ctx context.Context) (*model.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	_, span := otel.Tracer(tracerName).Start(ctx, "page.build")
	defer span.End()

	t := s.now().In(s.loc)
	hour := t.Hour()
	page := &model.Page{
		ModuleName: model.ModuleName,
		Greeting:   Greeting(hour),
		Hour:       hour,
		RenderedAt: t,
	}

	span.SetAttributes(
		attribute.Int("page.hour", page.Hour),
		attribute.String("page.greeting", page.Greeting),
	)
	return page, nil
}
