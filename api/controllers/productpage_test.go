package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BVKSH0/baked-bounty-backend/internal/catalog"
	"github.com/BVKSH0/baked-bounty-backend/internal/productpage"
	"github.com/BVKSH0/baked-bounty-backend/pkg/logger"
)

func newDetailHandler(t *testing.T) http.HandlerFunc {
	t.Helper()
	loader, err := productpage.NewLoader(catalog.New())
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}
	return ProductDetail(loader, logger.New(logger.Options{ServiceName: "test"}))
}

func TestProductDetailLoaded(t *testing.T) {
	t.Parallel()

	handler := newDetailHandler(t)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/api/v1/product-page?id=herman-mayonnaise", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	data := decodeData(t, rec)
	if data["state"] != "loaded" {
		t.Errorf("state = %v", data["state"])
	}
	if data["name"] != "Herman Mayonnaise" {
		t.Errorf("name = %v", data["name"])
	}
	if len(data["related"].([]any)) != 4 {
		t.Errorf("related = %d, want 4", len(data["related"].([]any)))
	}
	if len(data["gallery"].([]any)) != 4 {
		t.Errorf("gallery = %d, want 4", len(data["gallery"].([]any)))
	}
}

func TestProductDetailMissingID(t *testing.T) {
	t.Parallel()

	handler := newDetailHandler(t)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/api/v1/product-page", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestProductDetailUnknownID(t *testing.T) {
	t.Parallel()

	handler := newDetailHandler(t)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/api/v1/product-page?id=rainbow-sprinkles", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
