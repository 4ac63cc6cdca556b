package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lateladelgol/storefront-backend/api/responses"
	"github.com/lateladelgol/storefront-backend/internal/orders"
	pkgerrors "github.com/lateladelgol/storefront-backend/pkg/errors"
	"github.com/lateladelgol/storefront-backend/pkg/logger"
)

// OrdersSubmit accepts a checkout submission. The endpoint keeps the
// raw wire shapes the shop frontend has always consumed:
//
//	200 {"ok":true,"provider":...}
//	400 {"error":"Missing fields"}
//	500 {"error":...,"detail":...}
func OrdersSubmit(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteRaw(w, http.StatusInternalServerError, map[string]string{"error": "Internal error"})
			return
		}

		var sub orders.Submission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			responses.WriteRaw(w, http.StatusBadRequest, map[string]string{"error": "Missing fields"})
			return
		}

		result, err := svc.Submit(ctx, sub)
		if err != nil {
			writeOrderError(ctx, logg, w, err)
			return
		}

		responses.WriteRaw(w, http.StatusOK, map[string]any{
			"ok":       true,
			"provider": result.Provider.String(),
		})
	}
}

func writeOrderError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if logg != nil {
		logg.Error(ctx, "order submission failed", err)
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		responses.WriteRaw(w, http.StatusInternalServerError, map[string]string{"error": "Internal error"})
		return
	}

	switch typed.Code() {
	case pkgerrors.CodeValidation:
		responses.WriteRaw(w, http.StatusBadRequest, map[string]string{"error": "Missing fields"})
	case pkgerrors.CodeNotConfigured:
		responses.WriteRaw(w, http.StatusInternalServerError, map[string]string{"error": "SMTP not configured"})
	case pkgerrors.CodeDelivery:
		payload := map[string]any{"error": "Delivery failed"}
		if details := typed.Details(); details != nil {
			payload["detail"] = details
		}
		responses.WriteRaw(w, http.StatusInternalServerError, payload)
	default:
		responses.WriteRaw(w, http.StatusInternalServerError, map[string]string{"error": "Internal error"})
	}
}
