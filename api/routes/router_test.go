package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lateladelgol/storefront-backend/internal/cart"
	"github.com/lateladelgol/storefront-backend/internal/contact"
	"github.com/lateladelgol/storefront-backend/internal/orders"
	"github.com/lateladelgol/storefront-backend/internal/snapshots"
	"github.com/lateladelgol/storefront-backend/internal/wishlist"
	"github.com/lateladelgol/storefront-backend/pkg/config"
	"github.com/lateladelgol/storefront-backend/pkg/db/models"
	"github.com/lateladelgol/storefront-backend/pkg/enums"
	"github.com/lateladelgol/storefront-backend/pkg/logger"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error { return nil }

type stubProductService struct{}

func (stubProductService) List(context.Context) ([]models.Product, error) {
	return []models.Product{}, nil
}

type stubOrderService struct{}

func (stubOrderService) Submit(context.Context, orders.Submission) (orders.Result, error) {
	return orders.Result{Provider: enums.MailProviderSMTP}, nil
}

type stubContactService struct{}

func (stubContactService) Submit(context.Context, contact.Submission) (contact.Outcome, error) {
	return contact.Outcome{Sent: true, Provider: enums.MailProviderSMTP}, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test"})
	snaps := snapshots.NewMemoryStore()

	cartService, err := cart.NewService(cart.ServiceParams{Snapshots: snaps})
	if err != nil {
		t.Fatalf("cart service: %v", err)
	}
	wishlistService, err := wishlist.NewService(wishlist.ServiceParams{Snapshots: snaps})
	if err != nil {
		t.Fatalf("wishlist service: %v", err)
	}

	cfg := &config.Config{}
	cfg.App.Env = "test"

	return NewRouter(
		cfg,
		logg,
		stubPinger{},
		stubPinger{},
		stubProductService{},
		cartService,
		wishlistService,
		stubOrderService{},
		stubContactService{},
		nil,
	)
}

func TestRouterHealth(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("live: expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("ready: expected 200, got %d", rec.Code)
	}
}

func TestRouterSubmissionEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(`{"name":"Ada","email":"a@b.com","items":[]}`))
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("orders: expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(`{"message":"Hola"}`))
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("contact: expected 200, got %d", rec.Code)
	}
}

func TestRouterCartFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"id":"p1","name":"Camiseta","unit_price":5,"quantity":1}`))
	req.Header.Set("X-Client-Id", "c1")
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("add: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("X-Client-Id", "c1")
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("view: expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"p1"`) {
		t.Fatalf("expected added line in view: %s", rec.Body.String())
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
