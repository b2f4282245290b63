package model

import "time"

// Page is the view model for the module landing page.
// It is built once per request and never mutated afterwards.
type Page struct {
	ModuleName string
	Greeting   string
	Hour       int
	RenderedAt time.Time
}
