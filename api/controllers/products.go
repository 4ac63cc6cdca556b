package controllers

import (
	"net/http"

	"github.com/lateladelgol/storefront-backend/api/responses"
	"github.com/lateladelgol/storefront-backend/internal/products"
	pkgerrors "github.com/lateladelgol/storefront-backend/pkg/errors"
	"github.com/lateladelgol/storefront-backend/pkg/logger"
)

// ProductsList returns the full catalog.
func ProductsList(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		records, err := svc.List(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, records)
	}
}
