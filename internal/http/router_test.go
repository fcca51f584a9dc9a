package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozgurkaracam/aytas-flyer/internal/modules/campaigns"
	"github.com/ozgurkaracam/aytas-flyer/internal/modules/products"
	"github.com/ozgurkaracam/aytas-flyer/internal/render"
	"github.com/ozgurkaracam/aytas-flyer/internal/storage"
)

// stubRenderer returns canned bytes or a canned error.
type stubRenderer struct {
	pdf, png []byte
	err      error
}

func (s *stubRenderer) PDF(ctx context.Context, html string, vp render.Viewport) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.pdf, nil
}

func (s *stubRenderer) PNG(ctx context.Context, html string, vp render.Viewport, fullPage bool) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.png, nil
}

type testEnv struct {
	router   *gin.Engine
	demo     campaigns.Campaign
	products *products.MemoryRepo
	renderer *stubRenderer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mp := products.NewMemoryRepo()
	mc := campaigns.NewMemoryRepo()
	demo, err := campaigns.SeedDemo(context.Background(), mc, mp)
	require.NoError(t, err)

	rend := &stubRenderer{pdf: []byte("%PDF-fake"), png: []byte("\x89PNG-fake")}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := NewRouter(RouterDeps{
		Logger:   logger,
		Service:  campaigns.NewService(mc, mp),
		Products: mp,
		Renderer: rend,
		Storage:  storage.NewLocal(t.TempDir(), "/uploads"),
	})
	return &testEnv{router: r, demo: demo, products: mp, renderer: rend}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestListCampaigns(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, http.MethodGet, "/api/campaigns", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var list []campaigns.Campaign
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Aytas Wereld Supermarkt", list[0].Title)
}

func TestShowCampaign(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, http.MethodGet, "/api/campaigns/"+e.demo.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var res campaigns.Resolved
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Len(t, res.Products, campaigns.DemoProductCount)
	for i, it := range res.Products {
		assert.Equal(t, i, it.Position)
	}
}

func TestShowCampaignNotFound(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, http.MethodGet, "/api/campaigns/nope", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Campaign not found.", body["error"])
	assert.NotEmpty(t, body["request_id"])
}

func TestCreateCampaignValidation(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, http.MethodPost, "/api/campaigns", map[string]string{"validText": "no title"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	fields, ok := body["fields"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, fields, "title")
}

func TestCreateAndUpdateCampaign(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, http.MethodPost, "/api/campaigns", map[string]string{"title": "Yeni Hafta"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created campaigns.Campaign
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	w = e.do(t, http.MethodPut, "/api/campaigns/"+created.ID,
		map[string]string{"title": "Yeni Hafta", "validText": "Pazartesi - Cumartesi"})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = e.do(t, http.MethodGet, "/api/campaigns/"+created.ID, nil)
	var res campaigns.Resolved
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "Pazartesi - Cumartesi", res.ValidText)
}

func TestAttachUpdateDeleteProduct(t *testing.T) {
	e := newTestEnv(t)

	attach := map[string]any{
		"id":       "client-1",
		"name":     "Çaykur Rize",
		"theme":    "theme-green",
		"color":    "color-dark",
		"position": campaigns.DemoProductCount,
	}
	w := e.do(t, http.MethodPost, "/api/campaigns/"+e.demo.ID+"/products", attach)
	require.Equal(t, http.StatusCreated, w.Code)

	var p products.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "client-1", p.ID)

	// Patch two fields; unknown keys are ignored.
	w = e.do(t, http.MethodPut, "/api/products/client-1",
		map[string]string{"priceMain": "4", "priceCents": "49", "bogus": "x"})
	require.Equal(t, http.StatusNoContent, w.Code)

	stored, err := e.products.Get(context.Background(), "client-1")
	require.NoError(t, err)
	assert.Equal(t, "4", stored.PriceMain)
	assert.Equal(t, "49", stored.PriceCents)

	w = e.do(t, http.MethodDelete, "/api/products/client-1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// The campaign item now dangles and disappears from the resolved list.
	w = e.do(t, http.MethodGet, "/api/campaigns/"+e.demo.ID, nil)
	var res campaigns.Resolved
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Len(t, res.Products, campaigns.DemoProductCount)
}

func TestAttachProductDuplicateID(t *testing.T) {
	e := newTestEnv(t)

	attach := map[string]any{
		"id":       "client-1",
		"name":     "Eker",
		"position": campaigns.DemoProductCount,
	}
	w := e.do(t, http.MethodPost, "/api/campaigns/"+e.demo.ID+"/products", attach)
	require.Equal(t, http.StatusCreated, w.Code)

	// Same client-assigned id again must not overwrite the row.
	w = e.do(t, http.MethodPost, "/api/campaigns/"+e.demo.ID+"/products", attach)
	require.Equal(t, http.StatusConflict, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Product id is already in use.", body["error"])
}

func TestAttachProductCampaignNotFound(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, http.MethodPost, "/api/campaigns/nope/products", map[string]any{"name": "X"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProductNotFound(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, http.MethodPut, "/api/products/nope", map[string]string{"name": "X"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestFlyerPDF(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, http.MethodGet, "/api/campaigns/"+e.demo.ID+"/flyer.pdf", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "flyer.pdf")
	assert.Equal(t, "%PDF-fake", w.Body.String())
}

func TestFlyerPNG(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, http.MethodGet, "/api/campaigns/"+e.demo.ID+"/flyer.png", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
}

func TestFlyerExportUnknownCampaign(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, http.MethodGet, "/api/campaigns/nope/flyer.pdf", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestFlyerExportRenderFailure(t *testing.T) {
	e := newTestEnv(t)
	e.renderer.err = errors.New("chrome exploded")

	w := e.do(t, http.MethodGet, "/api/campaigns/"+e.demo.ID+"/flyer.pdf", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	// Error body is JSON, never partial PDF bytes.
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Flyer rendering failed.", body["error"])
}

func TestImageUpload(t *testing.T) {
	e := newTestEnv(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "kasar.png")
	require.NoError(t, err)
	_, err = io.Copy(fw, strings.NewReader("fake png bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/images", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["key"])
	assert.True(t, strings.HasPrefix(body["url"], "/uploads/"), "url: %s", body["url"])
	assert.True(t, strings.HasSuffix(body["key"], ".png"))

	w2 := e.do(t, http.MethodDelete, "/api/images/"+body["key"], nil)
	require.Equal(t, http.StatusNoContent, w2.Code)
}

func TestImageUploadMissingFile(t *testing.T) {
	e := newTestEnv(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/images", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
