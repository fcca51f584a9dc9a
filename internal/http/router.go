// Package http wires the gin engine: middleware chain, JSON API routes, and
// the export endpoints.
package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/ozgurkaracam/aytas-flyer/internal/http/handlers"
	"github.com/ozgurkaracam/aytas-flyer/internal/http/middleware"
	"github.com/ozgurkaracam/aytas-flyer/internal/modules/campaigns"
	"github.com/ozgurkaracam/aytas-flyer/internal/modules/products"
	"github.com/ozgurkaracam/aytas-flyer/internal/render"
	"github.com/ozgurkaracam/aytas-flyer/internal/storage"
)

type RouterDeps struct {
	Logger   *slog.Logger
	Service  *campaigns.Service
	Products products.Repository
	Renderer render.Renderer
	Storage  storage.Storage

	// LocalUploadDir is served at /uploads when the local storage driver is
	// active; empty disables the static mount.
	LocalUploadDir string
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.ErrorHandler(d.Logger))

	ch := handlers.NewCampaignsHandler(d.Service)
	ph := handlers.NewProductsHandler(d.Service, d.Products)
	fh := handlers.NewFlyerHandler(d.Service, d.Renderer)
	ih := handlers.NewImagesHandler(d.Storage)

	api := r.Group("/api")
	{
		api.GET("/campaigns", ch.List)
		api.POST("/campaigns", ch.Create)
		api.GET("/campaigns/:id", ch.Show)
		api.PUT("/campaigns/:id", ch.Update)

		api.GET("/campaigns/:id/flyer.pdf", fh.PDF)
		api.GET("/campaigns/:id/flyer.png", fh.PNG)

		api.POST("/campaigns/:id/products", ph.Attach)
		api.PUT("/products/:id", ph.Update)
		api.DELETE("/products/:id", ph.Delete)

		api.POST("/images", ih.Upload)
		api.DELETE("/images/:key", ih.Delete)
	}

	if d.LocalUploadDir != "" {
		r.Static("/uploads", d.LocalUploadDir)
	}

	return r
}
