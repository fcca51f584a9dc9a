package view

import (
	"html/template"
	"strings"

	"github.com/ozgurkaracam/aytas-flyer/internal/layout"
	"github.com/ozgurkaracam/aytas-flyer/internal/modules/products"
)

// ProductCard is one tile in the flyer grid. Field values are rendered
// exactly as stored; formatting is preserved, garbage in renders as-is.
type ProductCard struct {
	Name        string
	Desc        string
	WeightValue string
	WeightUnit  string
	PriceMain   string
	PriceCents  string
	ThemeClass  string
	ColorClass  string
	ImageURL    template.URL
	// Selected marks the card being edited. Suppressed during capture so
	// the exported artifact matches the clean flyer.
	Selected bool
}

// FlyerPage is the full document view model.
type FlyerPage struct {
	Title     string
	ValidText string
	Cards     []ProductCard
	Metrics   layout.Metrics
}

// imageURL vets the src value before it is marked safe for the template.
// html/template's URL sanitizer rejects data: URLs outright, yet inline data
// URLs are the main way card images travel here. The document is also loaded
// from a string with no origin, so only self-contained or absolute URLs can
// ever resolve; anything else falls back to the placeholder.
func imageURL(raw string) template.URL {
	switch {
	case strings.HasPrefix(raw, "data:image/"),
		strings.HasPrefix(raw, "http://"),
		strings.HasPrefix(raw, "https://"):
		return template.URL(raw)
	}
	return template.URL(products.DefaultImage)
}

// CardFrom maps a product row to its tile.
func CardFrom(p products.Product) ProductCard {
	return ProductCard{
		Name:        p.Name,
		Desc:        p.Desc,
		WeightValue: p.WeightValue,
		WeightUnit:  p.WeightUnit,
		PriceMain:   p.PriceMain,
		PriceCents:  p.PriceCents,
		ThemeClass:  string(p.Theme),
		ColorClass:  string(p.Color),
		ImageURL:    imageURL(p.Image),
	}
}

// CardsFrom maps a product list in display order. selected is the index to
// highlight, or -1 to suppress the selection affordance entirely.
func CardsFrom(items []products.Product, selected int) []ProductCard {
	out := make([]ProductCard, 0, len(items))
	for i, p := range items {
		card := CardFrom(p)
		card.Selected = i == selected
		out = append(out, card)
	}
	return out
}
