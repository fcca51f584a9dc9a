package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ozgurkaracam/aytas-flyer/internal/http/middleware"
	"github.com/ozgurkaracam/aytas-flyer/internal/modules/campaigns"
	"github.com/ozgurkaracam/aytas-flyer/internal/modules/products"
	"github.com/ozgurkaracam/aytas-flyer/internal/shared/apperr"
)

// ProductsHandler is the sync target for the studio's optimistic store:
// create-on-attach, debounced field patches, and deletes.
type ProductsHandler struct {
	svc  *campaigns.Service
	repo products.Repository
}

func NewProductsHandler(svc *campaigns.Service, repo products.Repository) *ProductsHandler {
	return &ProductsHandler{svc: svc, repo: repo}
}

type attachInput struct {
	products.Draft
	ID       string `json:"id"`
	Position int    `json:"position"`
}

// Attach creates a product and links it into the campaign. Display fields
// are free text; the campaign must exist and the id must be unused. Clients
// may supply the id so their local copy stays addressable.
func (h *ProductsHandler) Attach(c *gin.Context) {
	var in attachInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Product data is invalid.", nil))
		return
	}

	p, err := h.svc.AttachProduct(c.Request.Context(), c.Param("id"), in.ID, in.Draft, in.Position)
	if errors.Is(err, campaigns.ErrNotFound) {
		middleware.Fail(c, apperr.NotFoundErr("Campaign not found."))
		return
	}
	if errors.Is(err, products.ErrDuplicateID) {
		middleware.Fail(c, apperr.ConflictErr("Product id is already in use."))
		return
	}
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusCreated, p)
}

// Update patches the named fields on one product. Unknown field names are
// ignored rather than rejected, mirroring the store's one-field-at-a-time
// edit flow.
func (h *ProductsHandler) Update(c *gin.Context) {
	var body map[string]string
	if err := c.ShouldBindJSON(&body); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Product data is invalid.", nil))
		return
	}

	changes := make(map[products.Field]string, len(body))
	for k, v := range body {
		if f := products.Field(k); f.Valid() {
			changes[f] = v
		}
	}
	if len(changes) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	err := h.repo.UpdateFields(c.Request.Context(), c.Param("id"), changes)
	if errors.Is(err, products.ErrNotFound) {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete removes the product row. Campaign items that still reference the id
// are dropped at resolve time, so no cascading cleanup happens here.
func (h *ProductsHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.Status(http.StatusNoContent)
}
