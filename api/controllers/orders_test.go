package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lateladelgol/storefront-backend/internal/orders"
	"github.com/lateladelgol/storefront-backend/pkg/enums"
	pkgerrors "github.com/lateladelgol/storefront-backend/pkg/errors"
	"github.com/lateladelgol/storefront-backend/pkg/logger"
)

type stubOrderService struct {
	result orders.Result
	err    error
	got    *orders.Submission
}

func (s *stubOrderService) Submit(_ context.Context, sub orders.Submission) (orders.Result, error) {
	s.got = &sub
	if s.err != nil {
		return orders.Result{}, s.err
	}
	return s.result, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test"})
}

func TestOrdersSubmitSuccess(t *testing.T) {
	svc := &stubOrderService{result: orders.Result{Provider: enums.MailProviderSendgrid}}
	handler := OrdersSubmit(svc, testLogger())

	body := `{"name":"Ada","email":"ada@example.com","items":[{"name":"Camiseta","quantity":2,"unit_price":10.5}],"total":21}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["ok"] != true || resp["provider"] != "sendgrid" {
		t.Fatalf("unexpected response: %v", resp)
	}
	if svc.got == nil || svc.got.Name != "Ada" {
		t.Fatalf("submission not forwarded: %+v", svc.got)
	}
}

func TestOrdersSubmitValidationError(t *testing.T) {
	svc := &stubOrderService{err: pkgerrors.New(pkgerrors.CodeValidation, "missing fields")}
	handler := OrdersSubmit(svc, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(`{"name":"Ada"}`))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["error"] != "Missing fields" {
		t.Fatalf("unexpected error payload: %v", resp)
	}
}

func TestOrdersSubmitUnparseableBody(t *testing.T) {
	svc := &stubOrderService{}
	handler := OrdersSubmit(svc, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if svc.got != nil {
		t.Fatal("service must not be called for an unparseable body")
	}
}

func TestOrdersSubmitNotConfigured(t *testing.T) {
	svc := &stubOrderService{err: pkgerrors.New(pkgerrors.CodeNotConfigured, "no mail transport configured")}
	handler := OrdersSubmit(svc, testLogger())

	body := `{"name":"Ada","email":"ada@example.com","items":[{"name":"x","quantity":1,"unit_price":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["error"] != "SMTP not configured" {
		t.Fatalf("unexpected error payload: %v", resp)
	}
}

func TestOrdersSubmitDeliveryErrorCarriesDetail(t *testing.T) {
	svc := &stubOrderService{
		err: pkgerrors.New(pkgerrors.CodeDelivery, "delivery failed").WithDetails("402 payment required"),
	}
	handler := OrdersSubmit(svc, testLogger())

	body := `{"name":"Ada","email":"ada@example.com","items":[{"name":"x","quantity":1,"unit_price":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["detail"] != "402 payment required" {
		t.Fatalf("expected detail forwarded, got %v", resp)
	}
}
