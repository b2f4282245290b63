// Package view renders HTML documents from model values.
package view

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"

	"modulepage/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// ErrPageNil is returned by RenderPage when no page is given.
var ErrPageNil = errors.New("page is nil")

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// RenderPage writes the full landing page document for p to w.
// Values are escaped by html/template.
func RenderPage(w io.Writer, p *model.Page) error {
	if p == nil {
		return ErrPageNil
	}
	if err := pageTemplate.Execute(w, p); err != nil {
		return fmt.Errorf("execute page template: %w", err)
	}
	return nil
}
