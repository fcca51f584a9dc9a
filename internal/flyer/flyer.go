// Package flyer renders the fixed-size flyer document as a standalone HTML
// page. The studio preview, the client capture, and the server export all go
// through the same builder so the artifact is identical everywhere.
package flyer

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/ozgurkaracam/aytas-flyer/internal/layout"
	"github.com/ozgurkaracam/aytas-flyer/internal/modules/products"
	"github.com/ozgurkaracam/aytas-flyer/pkg/view"
)

const (
	// CanvasSize is the canonical square resolution of the flyer document.
	CanvasSize = 1200
	// HeaderHeight is the market header banner height inside the canvas.
	HeaderHeight = 250
)

//go:embed templates/flyer.html.tmpl
var templatesFS embed.FS

var tmpl = template.Must(template.ParseFS(templatesFS, "templates/flyer.html.tmpl"))

// BuildPage assembles the document view model, recomputing grid metrics for
// the current product count. selected highlights one card, -1 suppresses the
// selection affordance (capture and server export use -1).
func BuildPage(title, validText string, items []products.Product, selected int) view.FlyerPage {
	return view.FlyerPage{
		Title:     title,
		ValidText: validText,
		Cards:     view.CardsFrom(items, selected),
		Metrics:   layout.Compute(len(items), CanvasSize, HeaderHeight),
	}
}

// RenderHTML executes the flyer template into a self-contained HTML string.
func RenderHTML(page view.FlyerPage) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "flyer.html.tmpl", page); err != nil {
		return "", err
	}
	return buf.String(), nil
}
