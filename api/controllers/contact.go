package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/lateladelgol/storefront-backend/api/responses"
	"github.com/lateladelgol/storefront-backend/internal/contact"
	"github.com/lateladelgol/storefront-backend/pkg/logger"
)

// ContactSubmit accepts a contact inquiry. The answer is soft by
// contract: a 200 means the inquiry was received, and the sent flag
// tells the caller whether a notification actually went out. Only an
// unparseable body is a client error.
func ContactSubmit(svc contact.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteRaw(w, http.StatusBadRequest, map[string]any{"ok": false, "error": "Invalid payload"})
			return
		}

		var sub contact.Submission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			responses.WriteRaw(w, http.StatusBadRequest, map[string]any{"ok": false, "error": "Invalid payload"})
			return
		}

		outcome, err := svc.Submit(ctx, sub)
		if err != nil {
			if logg != nil {
				logg.Error(ctx, "contact submission failed", err)
			}
			responses.WriteRaw(w, http.StatusBadRequest, map[string]any{"ok": false, "error": "Invalid payload"})
			return
		}

		payload := map[string]any{"ok": true, "sent": outcome.Sent}
		if outcome.Sent {
			payload["provider"] = outcome.Provider.String()
		}
		if outcome.Message != "" {
			payload["message"] = outcome.Message
		}
		responses.WriteRaw(w, http.StatusOK, payload)
	}
}
