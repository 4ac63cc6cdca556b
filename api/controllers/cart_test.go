package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/lateladelgol/storefront-backend/api/middleware"
	"github.com/lateladelgol/storefront-backend/internal/cart"
	"github.com/lateladelgol/storefront-backend/internal/snapshots"
)

func newCartService(t *testing.T) cart.Service {
	t.Helper()
	svc, err := cart.NewService(cart.ServiceParams{Snapshots: snapshots.NewMemoryStore()})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func withClientID(handler http.HandlerFunc) http.Handler {
	return middleware.ClientID(nil)(handler)
}

func newCartTestRouter(svc cart.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.ClientID(nil))
	r.Patch("/api/v1/cart/items/{lineId}", CartUpdateLine(svc, testLogger()))
	return r
}

func TestCartAddLineReturnsView(t *testing.T) {
	svc := newCartService(t)
	handler := withClientID(CartAddLine(svc, testLogger()))

	body := `{"id":"p1","name":"Camiseta retro","unit_price":10.5,"quantity":2,"size":"M"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body))
	req.Header.Set("X-Client-Id", "c1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Data cart.View `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data.Lines) != 1 || resp.Data.Total != 21.00 {
		t.Fatalf("unexpected view: %+v", resp.Data)
	}
}

func TestCartRequiresClientIDHeader(t *testing.T) {
	svc := newCartService(t)
	handler := withClientID(CartView(svc, testLogger()))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without X-Client-Id, got %d", rec.Code)
	}
}

func TestCartUpdateLineClampsQuantity(t *testing.T) {
	svc := newCartService(t)

	add := withClientID(CartAddLine(svc, testLogger()))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"id":"p1","name":"Camiseta","unit_price":1,"quantity":1}`))
	req.Header.Set("X-Client-Id", "c1")
	add.ServeHTTP(httptest.NewRecorder(), req)

	router := newCartTestRouter(svc)
	req = httptest.NewRequest(http.MethodPatch, "/api/v1/cart/items/p1", strings.NewReader(`{"quantity":500}`))
	req.Header.Set("X-Client-Id", "c1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Data cart.View `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Lines[0].Quantity != 99 {
		t.Fatalf("expected quantity clamped to 99, got %d", resp.Data.Lines[0].Quantity)
	}
}
