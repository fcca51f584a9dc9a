// Package render produces PDF/PNG bytes from a flyer HTML document through a
// headless Chromium instance.
package render

import "context"

// Viewport is the emulated screen for a render.
type Viewport struct {
	Width  int
	Height int
}

// Renderer turns a self-contained HTML document into export bytes. Either
// both bytes and nil error or neither; no partial output.
type Renderer interface {
	PDF(ctx context.Context, html string, vp Viewport) ([]byte, error)
	PNG(ctx context.Context, html string, vp Viewport, fullPage bool) ([]byte, error)
}
