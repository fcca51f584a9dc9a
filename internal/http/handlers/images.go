package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ozgurkaracam/aytas-flyer/internal/http/middleware"
	"github.com/ozgurkaracam/aytas-flyer/internal/shared/apperr"
	"github.com/ozgurkaracam/aytas-flyer/internal/storage"
)

// maxImageSize caps product image uploads at 8 MB.
const maxImageSize = 8 << 20

// ImagesHandler uploads product images to the configured storage driver and
// hands back the public URL the card will embed.
type ImagesHandler struct {
	store storage.Storage
}

func NewImagesHandler(store storage.Storage) *ImagesHandler {
	return &ImagesHandler{store: store}
}

func (h *ImagesHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("Image file is required.", nil))
		return
	}
	if fh.Size > maxImageSize {
		middleware.Fail(c, apperr.InvalidErr("Image is too large.", nil))
		return
	}

	f, err := fh.Open()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	defer f.Close()

	res, err := h.store.Put(c.Request.Context(), f, storage.PutInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"key": res.Key, "url": res.URL})
}

func (h *ImagesHandler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("key")); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.Status(http.StatusNoContent)
}
