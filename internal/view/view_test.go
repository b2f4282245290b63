package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"modulepage/internal/model"
)

// countElements walks the parsed tree and returns the number of elements named tag
// together with the text of the first one found.
func countElements(n *html.Node, tag string) (int, string) {
	count, text := 0, ""
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			if count == 0 && n.FirstChild != nil {
				text = n.FirstChild.Data
			}
			count++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return count, text
}

func TestRenderPage(t *testing.T) {
	tests := []struct {
		name     string
		hour     int
		greeting string
	}{
		{name: "morning", hour: 9, greeting: "Bom dia!"},
		{name: "afternoon", hour: 15, greeting: "Boa tarde!"},
		{name: "evening", hour: 20, greeting: "Boa noite!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := RenderPage(&buf, &model.Page{
				ModuleName: model.ModuleName,
				Greeting:   tt.greeting,
				Hour:       tt.hour,
			})
			require.NoError(t, err)

			body := buf.String()
			assert.Contains(t, body, "Module 1")
			assert.Contains(t, body, tt.greeting)
			assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
		})
	}
}

func TestRenderPage_WellFormed(t *testing.T) {
	var buf bytes.Buffer
	err := RenderPage(&buf, &model.Page{ModuleName: model.ModuleName, Greeting: "Bom dia!"})
	require.NoError(t, err)

	doc, err := html.Parse(&buf)
	require.NoError(t, err)

	h1s, h1Text := countElements(doc, "h1")
	assert.Equal(t, 1, h1s)
	assert.Equal(t, model.ModuleName, h1Text)

	titles, title := countElements(doc, "title")
	assert.Equal(t, 1, titles)
	assert.Equal(t, model.ModuleName, title)

	paragraphs, _ := countElements(doc, "p")
	assert.Equal(t, 3, paragraphs)
}

func TestRenderPage_EscapesValues(t *testing.T) {
	var buf bytes.Buffer
	err := RenderPage(&buf, &model.Page{ModuleName: "<script>x</script>", Greeting: "Bom dia!"})
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "<script>")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}

func TestRenderPage_NilPage(t *testing.T) {
	var buf bytes.Buffer
	err := RenderPage(&buf, nil)

	assert.ErrorIs(t, err, ErrPageNil)
	assert.Zero(t, buf.Len())
}
