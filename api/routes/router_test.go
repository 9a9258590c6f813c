package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BVKSH0/baked-bounty-backend/internal/cart"
	"github.com/BVKSH0/baked-bounty-backend/internal/catalog"
	"github.com/BVKSH0/baked-bounty-backend/internal/presenter"
	"github.com/BVKSH0/baked-bounty-backend/internal/productpage"
	"github.com/BVKSH0/baked-bounty-backend/internal/slider"
	"github.com/BVKSH0/baked-bounty-backend/pkg/config"
	"github.com/BVKSH0/baked-bounty-backend/pkg/db/models"
	"github.com/BVKSH0/baked-bounty-backend/pkg/logger"
)

type memoryCartRepo struct {
	mu      sync.Mutex
	records map[string]string
}

func newMemoryCartRepo() *memoryCartRepo {
	return &memoryCartRepo{records: map[string]string{}}
}

func (m *memoryCartRepo) FindByVisitor(_ context.Context, visitorID string) (*models.CartRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	payload, ok := m.records[visitorID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &models.CartRecord{VisitorID: visitorID, Payload: payload}, nil
}

func (m *memoryCartRepo) Save(_ context.Context, record *models.CartRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[record.VisitorID] = record.Payload
	return nil
}

func (m *memoryCartRepo) DeleteByVisitor(_ context.Context, visitorID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, visitorID)
	return nil
}

type memoryToastStore struct {
	mu     sync.Mutex
	values map[string]string
}

func (m *memoryToastStore) Set(_ context.Context, key string, value any, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = map[string]string{}
	}
	switch v := value.(type) {
	case []byte:
		m.values[key] = string(v)
	case string:
		m.values[key] = v
	}
	return nil
}

func (m *memoryToastStore) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

func (m *memoryToastStore) Del(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.values, key)
	}
	return nil
}

func (m *memoryToastStore) ToastKey(visitorID string) string {
	return "toast:" + visitorID
}

func testRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{Env: "test"},
		Cart: config.CartConfig{
			SubmitCooldown: time.Second,
			ToastTTL:       3 * time.Second,
		},
		Slider: config.SliderConfig{
			AutoAdvance:    4 * time.Second,
			SwipeThreshold: 50,
		},
	}
	logg := logger.New(logger.Options{ServiceName: "router-test", Level: zerolog.Disabled, Output: io.Discard})
	cat := catalog.New()

	cartService, err := cart.NewService(newMemoryCartRepo(), cat, logg, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	notifier, err := presenter.NewNotifier(&memoryToastStore{}, cfg.Cart.ToastTTL)
	if err != nil {
		t.Fatalf("NewNotifier: %v", err)
	}
	pageLoader, err := productpage.NewLoader(cat)
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}
	reviewsSlider, err := slider.New(cat.Len(), 1280, cfg.Slider.AutoAdvance)
	if err != nil {
		t.Fatalf("slider.New: %v", err)
	}
	t.Cleanup(reviewsSlider.Close)

	return NewRouter(cfg, logg, nil, nil, cat, cartService, notifier, pageLoader, reviewsSlider, nil)
}

func TestRouterHealthLive(t *testing.T) {
	t.Parallel()

	router := testRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if env := rec.Header().Get("X-BakedBounty-Env"); env != "test" {
		t.Fatalf("env header = %q, want %q", env, "test")
	}
}

func TestRouterCatalogList(t *testing.T) {
	t.Parallel()

	router := testRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var envelope struct {
		Data struct {
			Products []json.RawMessage `json:"products"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(envelope.Data.Products) != 12 {
		t.Fatalf("products = %d, want 12", len(envelope.Data.Products))
	}
}

func TestRouterProductPage(t *testing.T) {
	t.Parallel()

	router := testRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/product-page?id=masako-seasoning", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestRouterVisitorScopedCartFetch(t *testing.T) {
	t.Parallel()

	router := testRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if rec.Header().Get("X-Visitor-Id") == "" {
		t.Fatal("expected minted visitor id on response")
	}
}

func TestRouterReviewsSliderView(t *testing.T) {
	t.Parallel()

	router := testRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/storefront/reviews-slider", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	t.Parallel()

	router := testRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
