package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lateladelgol/storefront-backend/internal/contact"
	"github.com/lateladelgol/storefront-backend/pkg/enums"
)

type stubContactService struct {
	outcome contact.Outcome
	got     *contact.Submission
}

func (s *stubContactService) Submit(_ context.Context, sub contact.Submission) (contact.Outcome, error) {
	s.got = &sub
	return s.outcome, nil
}

func TestContactSubmitSent(t *testing.T) {
	svc := &stubContactService{outcome: contact.Outcome{Sent: true, Provider: enums.MailProviderSMTP}}
	handler := ContactSubmit(svc, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(`{"name":"Ada","message":"Hola"}`))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["ok"] != true || resp["sent"] != true || resp["provider"] != "smtp" {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestContactSubmitSoftFailureStays200(t *testing.T) {
	svc := &stubContactService{outcome: contact.Outcome{Sent: false, Message: "Recibido pero fallo el envío por SMTP."}}
	handler := ContactSubmit(svc, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(`{"message":"Hola"}`))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("soft failures keep a 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["ok"] != true || resp["sent"] != false {
		t.Fatalf("unexpected response: %v", resp)
	}
	if _, hasProvider := resp["provider"]; hasProvider {
		t.Fatal("provider must be omitted when nothing was sent")
	}
	if resp["message"] == "" {
		t.Fatal("expected explanatory message")
	}
}

func TestContactSubmitInvalidPayload(t *testing.T) {
	svc := &stubContactService{}
	handler := ContactSubmit(svc, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader("{{nope"))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["ok"] != false || resp["error"] != "Invalid payload" {
		t.Fatalf("unexpected response: %v", resp)
	}
	if svc.got != nil {
		t.Fatal("service must not be called for an unparseable body")
	}
}
