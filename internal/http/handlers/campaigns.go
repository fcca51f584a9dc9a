package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ozgurkaracam/aytas-flyer/internal/http/middleware"
	"github.com/ozgurkaracam/aytas-flyer/internal/http/validation"
	"github.com/ozgurkaracam/aytas-flyer/internal/modules/campaigns"
	"github.com/ozgurkaracam/aytas-flyer/internal/shared/apperr"
)

// CampaignsHandler serves the campaign list/detail JSON API.
type CampaignsHandler struct {
	svc *campaigns.Service
}

func NewCampaignsHandler(svc *campaigns.Service) *CampaignsHandler {
	return &CampaignsHandler{svc: svc}
}

// List returns every campaign, no filtering.
func (h *CampaignsHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, items)
}

// Show returns the campaign with its ordered, existing-only product list.
func (h *CampaignsHandler) Show(c *gin.Context) {
	resolved, err := h.svc.Resolve(c.Request.Context(), c.Param("id"))
	if errors.Is(err, campaigns.ErrNotFound) {
		middleware.Fail(c, apperr.NotFoundErr("Campaign not found."))
		return
	}
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, resolved)
}

type campaignInput struct {
	Title     string `json:"title" binding:"required,max=255"`
	ValidText string `json:"validText" binding:"max=255"`
}

func (h *CampaignsHandler) Create(c *gin.Context) {
	var in campaignInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fields := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Campaign data is invalid.", fields))
		return
	}

	created, err := h.svc.Create(c.Request.Context(), in.Title, in.ValidText)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CampaignsHandler) Update(c *gin.Context) {
	var in campaignInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fields := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Campaign data is invalid.", fields))
		return
	}

	err := h.svc.Update(c.Request.Context(), c.Param("id"), in.Title, in.ValidText)
	if errors.Is(err, campaigns.ErrNotFound) {
		middleware.Fail(c, apperr.NotFoundErr("Campaign not found."))
		return
	}
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.Status(http.StatusNoContent)
}
