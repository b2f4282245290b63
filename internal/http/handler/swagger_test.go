package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterSwagger(t *testing.T) {
	app := fiber.New()
	RegisterSwagger(app, "pages.example.test", "https")

	// Concurrent readers must all see the host fixed at registration.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
			req.Host = "attacker.example.test"
			resp, err := app.Test(req, -1)
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, http.StatusOK, resp.StatusCode)

			var doc struct {
				Host    string   `json:"host"`
				Schemes []string `json:"schemes"`
			}
			if assert.NoError(t, json.NewDecoder(resp.Body).Decode(&doc)) {
				assert.Equal(t, "pages.example.test", doc.Host)
				assert.Equal(t, []string{"https"}, doc.Schemes)
			}
		}()
	}
	wg.Wait()
}

func TestRegisterSwagger_Index(t *testing.T) {
	app := fiber.New()
	RegisterSwagger(app, "localhost:8080", "http")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
}
