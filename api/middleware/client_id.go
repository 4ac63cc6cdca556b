package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/lateladelgol/storefront-backend/pkg/logger"
)

const clientIDHeader = "X-Client-Id"

type clientIDKey struct{}

// ClientID lifts the storefront client key out of the request header so
// the cart and wishlist handlers can find their store.
func ClientID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if id := strings.TrimSpace(r.Header.Get(clientIDHeader)); id != "" {
				ctx = context.WithValue(ctx, clientIDKey{}, id)
				if logg != nil {
					ctx = logg.WithClientID(ctx, id)
				}
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClientIDFromContext returns the client key, or "" when the header was
// absent.
func ClientIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(clientIDKey{}).(string); ok {
		return id
	}
	return ""
}
