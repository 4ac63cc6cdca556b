package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lateladelgol/storefront-backend/api/middleware"
	"github.com/lateladelgol/storefront-backend/api/responses"
	"github.com/lateladelgol/storefront-backend/api/validators"
	"github.com/lateladelgol/storefront-backend/internal/cart"
	pkgerrors "github.com/lateladelgol/storefront-backend/pkg/errors"
	"github.com/lateladelgol/storefront-backend/pkg/logger"
)

const (
	minLineQuantity = 1
	maxLineQuantity = 99
)

type addCartLinePayload struct {
	ID        string  `json:"id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
	Quantity  int     `json:"quantity" validate:"gte=0,lte=99"`
	Size      string  `json:"size" validate:"omitempty,max=16"`
	ImageRef  string  `json:"image_ref" validate:"omitempty,max=512"`
}

type updateCartLinePayload struct {
	Quantity int `json:"quantity" validate:"required"`
}

// CartView returns the client's cart with its recomputed total.
func CartView(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		clientID, ok := requireClientID(ctx, logg, w)
		if !ok {
			return
		}

		view, err := svc.View(ctx, clientID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CartAddLine merges a line into the client's cart.
func CartAddLine(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		clientID, ok := requireClientID(ctx, logg, w)
		if !ok {
			return
		}

		var payload addCartLinePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		view, err := svc.AddLine(ctx, clientID, cart.Line{
			ID:        payload.ID,
			Name:      payload.Name,
			UnitPrice: payload.UnitPrice,
			Quantity:  payload.Quantity,
			Size:      payload.Size,
			ImageRef:  payload.ImageRef,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CartUpdateLine sets the quantity on an existing line, clamped to the
// storefront's allowed range.
func CartUpdateLine(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		clientID, ok := requireClientID(ctx, logg, w)
		if !ok {
			return
		}

		lineID := chi.URLParam(r, "lineId")
		var payload updateCartLinePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		quantity := payload.Quantity
		if quantity < minLineQuantity {
			quantity = minLineQuantity
		}
		if quantity > maxLineQuantity {
			quantity = maxLineQuantity
		}

		view, err := svc.UpdateQuantity(ctx, clientID, lineID, quantity)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CartRemoveLine drops a line from the cart.
func CartRemoveLine(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		clientID, ok := requireClientID(ctx, logg, w)
		if !ok {
			return
		}

		view, err := svc.RemoveLine(ctx, clientID, chi.URLParam(r, "lineId"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CartClear empties the cart.
func CartClear(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		clientID, ok := requireClientID(ctx, logg, w)
		if !ok {
			return
		}

		view, err := svc.Clear(ctx, clientID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

func requireClientID(ctx context.Context, logg *logger.Logger, w http.ResponseWriter) (string, bool) {
	clientID := middleware.ClientIDFromContext(ctx)
	if clientID == "" {
		responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "X-Client-Id header is required"))
		return "", false
	}
	return clientID, true
}
