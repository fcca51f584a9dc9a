// Package api is the studio's HTTP client for the flyer server. It backs the
// editor store's replication; when no server is configured the studio runs
// purely local.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ozgurkaracam/aytas-flyer/internal/modules/campaigns"
	"github.com/ozgurkaracam/aytas-flyer/internal/modules/products"
)

// Client talks to the flyer server's JSON API for one campaign.
type Client struct {
	baseURL    string
	campaignID string
	httpClient *http.Client
}

type ClientOption func(*Client)

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a client bound to one campaign. baseURL may be empty to
// produce an unconfigured client.
func NewClient(baseURL, campaignID string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    baseURL,
		campaignID: campaignID,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether a server base URL is set. An unconfigured client
// must not be used; the studio falls back to local-only mode instead.
func (c *Client) Configured() bool { return c.baseURL != "" }

// FetchCampaign loads the campaign with its resolved product list.
func (c *Client) FetchCampaign(ctx context.Context) (campaigns.Resolved, error) {
	var out campaigns.Resolved
	err := c.do(ctx, http.MethodGet, "/api/campaigns/"+url.PathEscape(c.campaignID), nil, &out)
	return out, err
}

type createProductBody struct {
	products.Draft
	ID       string `json:"id"`
	Position int    `json:"position"`
}

// CreateProduct replicates a locally added product. The local id is sent
// along so later field syncs and deletes address the same remote row.
func (c *Client) CreateProduct(ctx context.Context, p products.Product) error {
	body := createProductBody{Draft: products.DraftOf(p), ID: p.ID, Position: p.Position}
	return c.do(ctx, http.MethodPost, "/api/campaigns/"+url.PathEscape(c.campaignID)+"/products", body, nil)
}

// UpdateProduct replicates accumulated field edits for one product.
func (c *Client) UpdateProduct(ctx context.Context, id string, changes map[products.Field]string) error {
	body := make(map[string]string, len(changes))
	for f, v := range changes {
		body[string(f)] = v
	}
	return c.do(ctx, http.MethodPut, "/api/products/"+url.PathEscape(id), body, nil)
}

// DeleteProduct replicates a local removal.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/products/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, result any) error {
	if !c.Configured() {
		return fmt.Errorf("api client not configured")
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(msg))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
