package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ozgurkaracam/aytas-flyer/internal/flyer"
	"github.com/ozgurkaracam/aytas-flyer/internal/http/middleware"
	"github.com/ozgurkaracam/aytas-flyer/internal/modules/campaigns"
	"github.com/ozgurkaracam/aytas-flyer/internal/render"
	"github.com/ozgurkaracam/aytas-flyer/internal/shared/apperr"
)

// exportViewport is the emulated screen for server-side exports. The flyer
// document itself is a fixed 1200x1200 canvas regardless of viewport.
var exportViewport = render.Viewport{Width: 1920, Height: 1080}

// FlyerHandler serves the rendered flyer as a downloadable PDF or PNG.
type FlyerHandler struct {
	svc      *campaigns.Service
	renderer render.Renderer
}

func NewFlyerHandler(svc *campaigns.Service, renderer render.Renderer) *FlyerHandler {
	return &FlyerHandler{svc: svc, renderer: renderer}
}

// PDF renders the campaign flyer to an A4 PDF. Bytes are only written after
// the whole render succeeded.
func (h *FlyerHandler) PDF(c *gin.Context) {
	html, ok := h.buildHTML(c)
	if !ok {
		return
	}

	pdf, err := h.renderer.PDF(c.Request.Context(), html, exportViewport)
	if err != nil {
		middleware.Fail(c, apperr.InternalErr("Flyer rendering failed.", err))
		return
	}

	c.Header("Content-Disposition", `inline; filename="flyer.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// PNG renders the campaign flyer to a full-page screenshot.
func (h *FlyerHandler) PNG(c *gin.Context) {
	html, ok := h.buildHTML(c)
	if !ok {
		return
	}

	png, err := h.renderer.PNG(c.Request.Context(), html, exportViewport, true)
	if err != nil {
		middleware.Fail(c, apperr.InternalErr("Flyer rendering failed.", err))
		return
	}

	c.Header("Content-Disposition", `inline; filename="flyer.png"`)
	c.Data(http.StatusOK, "image/png", png)
}

func (h *FlyerHandler) buildHTML(c *gin.Context) (string, bool) {
	resolved, err := h.svc.Resolve(c.Request.Context(), c.Param("id"))
	if errors.Is(err, campaigns.ErrNotFound) {
		middleware.Fail(c, apperr.NotFoundErr("Campaign not found."))
		return "", false
	}
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return "", false
	}

	// Exports never show the edit highlight.
	page := flyer.BuildPage(resolved.Title, resolved.ValidText, resolved.ProductList(), -1)
	html, err := flyer.RenderHTML(page)
	if err != nil {
		middleware.Fail(c, apperr.InternalErr("Flyer rendering failed.", err))
		return "", false
	}
	return html, true
}
