package mail

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendgridClientRequiresKey(t *testing.T) {
	if _, err := NewSendgridClient("   "); err == nil {
		t.Fatal("expected error for blank api key")
	}
}

func TestSendgridClientSend(t *testing.T) {
	var captured sendgridPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v3/mail/send" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sg-key" {
			t.Fatalf("unexpected authorization header %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decoding payload: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client, err := NewSendgridClient("sg-key", WithSendgridBaseURL(server.URL))
	if err != nil {
		t.Fatalf("unexpected client error: %v", err)
	}

	msg := Message{
		From:    "shop@lateladelgol.com",
		To:      "orders@lateladelgol.com",
		Subject: "Nuevo pedido",
		HTML:    "<p>hola</p>",
	}
	if err := client.Send(context.Background(), msg); err != nil {
		t.Fatalf("unexpected send error: %v", err)
	}

	if len(captured.Personalizations) != 1 || captured.Personalizations[0].To[0].Email != msg.To {
		t.Fatalf("unexpected personalizations: %+v", captured.Personalizations)
	}
	if captured.Content[0].Type != "text/html" {
		t.Fatalf("unexpected content type %q", captured.Content[0].Type)
	}
}

func TestSendgridClientSendFailureCarriesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"message":"bad key"}]}`))
	}))
	defer server.Close()

	client, err := NewSendgridClient("sg-key", WithSendgridBaseURL(server.URL))
	if err != nil {
		t.Fatalf("unexpected client error: %v", err)
	}

	err = client.Send(context.Background(), Message{To: "x@example.com"})
	if err == nil {
		t.Fatal("expected send error")
	}
	var sgErr *SendgridError
	if !errors.As(err, &sgErr) {
		t.Fatalf("expected SendgridError, got %T", err)
	}
	if sgErr.Status != http.StatusUnauthorized || sgErr.Body == "" {
		t.Fatalf("unexpected error detail: %+v", sgErr)
	}
}
