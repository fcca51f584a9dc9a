package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ozgurkaracam/aytas-flyer/internal/modules/campaigns"
	"github.com/ozgurkaracam/aytas-flyer/internal/modules/products"
)

func TestFetchCampaign(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/campaigns/c1" {
			t.Errorf("unexpected path: %s", r.URL.Path)
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(campaigns.Resolved{
			ID:    "c1",
			Title: "Aytas",
			Products: []campaigns.ResolvedItem{
				{ProductID: "p1", Position: 0, Product: products.Product{ID: "p1", Name: "Çaykur"}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "c1")
	res, err := client.FetchCampaign(context.Background())
	if err != nil {
		t.Fatalf("FetchCampaign failed: %v", err)
	}
	if res.Title != "Aytas" {
		t.Errorf("expected title Aytas, got %s", res.Title)
	}
	if len(res.Products) != 1 || res.Products[0].Product.Name != "Çaykur" {
		t.Errorf("unexpected products: %+v", res.Products)
	}
}

func TestCreateProductSendsLocalID(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/campaigns/c1/products" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(server.URL, "c1")
	err := client.CreateProduct(context.Background(), products.Product{
		ID: "local-7", Name: "Eker", Position: 7,
	})
	if err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}
	if got["id"] != "local-7" {
		t.Errorf("expected id local-7, got %v", got["id"])
	}
	if got["position"] != float64(7) {
		t.Errorf("expected position 7, got %v", got["position"])
	}
}

func TestUpdateProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/products/p1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["name"] != "Eker Süt" {
			t.Errorf("unexpected body: %+v", body)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, "c1")
	err := client.UpdateProduct(context.Background(), "p1", map[products.Field]string{
		products.FieldName: "Eker Süt",
	})
	if err != nil {
		t.Fatalf("UpdateProduct failed: %v", err)
	}
}

func TestDeleteProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/products/p1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, "c1")
	if err := client.DeleteProduct(context.Background(), "p1"); err != nil {
		t.Fatalf("DeleteProduct failed: %v", err)
	}
}

func TestErrorStatusSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Campaign not found."}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "missing")
	if _, err := client.FetchCampaign(context.Background()); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestUnconfiguredClient(t *testing.T) {
	client := NewClient("", "c1")
	if client.Configured() {
		t.Fatal("empty base URL must report unconfigured")
	}
	if err := client.DeleteProduct(context.Background(), "p1"); err == nil {
		t.Fatal("expected error from unconfigured client")
	}
}
