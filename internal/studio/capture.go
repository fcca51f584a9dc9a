package studio

import (
	"context"
	"os"
	"time"

	"github.com/ozgurkaracam/aytas-flyer/internal/flyer"
	"github.com/ozgurkaracam/aytas-flyer/internal/modules/products"
	"github.com/ozgurkaracam/aytas-flyer/internal/render"
)

// CapturePNG renders the current flyer to a PNG file in the working
// directory and returns its name. The capture always hides the edit
// highlight and shoots at the flyer's native 1200x1200 canvas.
func CapturePNG(ctx context.Context, r render.Renderer, title, validText string, items []products.Product) (string, error) {
	page := flyer.BuildPage(title, validText, items, -1)
	html, err := flyer.RenderHTML(page)
	if err != nil {
		return "", err
	}

	png, err := r.PNG(ctx, html, render.Viewport{Width: flyer.CanvasSize, Height: flyer.CanvasSize}, false)
	if err != nil {
		return "", err
	}

	name := "aytas-flyer-" + time.Now().Format("2006-01-02") + ".png"
	if err := os.WriteFile(name, png, 0o644); err != nil {
		return "", err
	}
	return name, nil
}
