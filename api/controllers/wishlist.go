package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lateladelgol/storefront-backend/api/responses"
	"github.com/lateladelgol/storefront-backend/api/validators"
	"github.com/lateladelgol/storefront-backend/internal/wishlist"
	"github.com/lateladelgol/storefront-backend/pkg/logger"
)

type toggleWishlistPayload struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Price       float64  `json:"price" validate:"gte=0"`
	Category    string   `json:"category" validate:"omitempty,max=64"`
	ImageRef    string   `json:"image_ref" validate:"omitempty,max=512"`
	Discount    *float64 `json:"discount" validate:"omitempty,gte=0,lte=100"`
	Description string   `json:"description" validate:"omitempty,max=2048"`
}

// WishlistList returns the client's saved products.
func WishlistList(svc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		clientID, ok := requireClientID(ctx, logg, w)
		if !ok {
			return
		}

		entries, err := svc.List(ctx, clientID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, entries)
	}
}

// WishlistToggle flips membership for a product snapshot.
func WishlistToggle(svc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		clientID, ok := requireClientID(ctx, logg, w)
		if !ok {
			return
		}

		var payload toggleWishlistPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		added, entries, err := svc.Toggle(ctx, clientID, wishlist.Entry{
			ID:          payload.ID,
			Name:        payload.Name,
			Price:       payload.Price,
			Category:    payload.Category,
			ImageRef:    payload.ImageRef,
			Discount:    payload.Discount,
			Description: payload.Description,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"added": added, "entries": entries})
	}
}

// WishlistRemove drops a product regardless of prior state.
func WishlistRemove(svc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		clientID, ok := requireClientID(ctx, logg, w)
		if !ok {
			return
		}

		entries, err := svc.Remove(ctx, clientID, chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, entries)
	}
}

// WishlistClear empties the wishlist.
func WishlistClear(svc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		clientID, ok := requireClientID(ctx, logg, w)
		if !ok {
			return
		}

		if err := svc.Clear(ctx, clientID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"cleared": true})
	}
}
