package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/BVKSH0/baked-bounty-backend/internal/slider"
	"github.com/BVKSH0/baked-bounty-backend/pkg/logger"
)

func newSlider(t *testing.T) *slider.Controller {
	t.Helper()
	ctrl, err := slider.New(6, 1400, 0)
	if err != nil {
		t.Fatalf("slider.New: %v", err)
	}
	t.Cleanup(ctrl.Close)
	return ctrl
}

func TestReviewsSliderView(t *testing.T) {
	t.Parallel()

	handler := ReviewsSliderView(newSlider(t), logger.New(logger.Options{ServiceName: "test"}))

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/api/v1/storefront/reviews-slider", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	data := decodeData(t, rec)
	if data["index"] != float64(0) || data["pages"] != float64(2) {
		t.Errorf("view = %v", data)
	}
}

func TestReviewsSliderCommands(t *testing.T) {
	t.Parallel()

	ctrl := newSlider(t)
	logg := logger.New(logger.Options{ServiceName: "test"})
	handler := ReviewsSliderCommand(ctrl, 4*time.Second, logg)

	send := func(body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodPost, "/api/v1/storefront/reviews-slider/command", strings.NewReader(body)))
		return rec
	}

	rec := send(`{"action":"next"}`)
	if decodeData(t, rec)["index"] != float64(1) {
		t.Errorf("after next: %v", rec.Body.String())
	}

	rec = send(`{"action":"prev"}`)
	if decodeData(t, rec)["index"] != float64(0) {
		t.Errorf("after prev: %v", rec.Body.String())
	}

	rec = send(`{"action":"swipe","delta_x":-120}`)
	if decodeData(t, rec)["index"] != float64(1) {
		t.Errorf("after swipe: %v", rec.Body.String())
	}

	rec = send(`{"action":"resize","width":700}`)
	data := decodeData(t, rec)
	if data["cards_per_view"] != float64(1) || data["index"] != float64(0) {
		t.Errorf("after resize: %v", data)
	}

	rec = send(`{"action":"spin"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown action status = %d, want 400", rec.Code)
	}

	rec = send(`{"action":"resize","width":0}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("zero width status = %d, want 400", rec.Code)
	}
}
