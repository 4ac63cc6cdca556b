package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lateladelgol/storefront-backend/api/controllers"
	"github.com/lateladelgol/storefront-backend/api/middleware"
	"github.com/lateladelgol/storefront-backend/internal/cart"
	"github.com/lateladelgol/storefront-backend/internal/contact"
	"github.com/lateladelgol/storefront-backend/internal/orders"
	"github.com/lateladelgol/storefront-backend/internal/products"
	"github.com/lateladelgol/storefront-backend/internal/wishlist"
	"github.com/lateladelgol/storefront-backend/pkg/config"
	"github.com/lateladelgol/storefront-backend/pkg/db"
	"github.com/lateladelgol/storefront-backend/pkg/logger"
	"github.com/lateladelgol/storefront-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisP redis.Pinger,
	productService products.Service,
	cartService cart.Service,
	wishlistService wishlist.Service,
	orderService orders.Service,
	contactService contact.Service,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", controllers.ProductsList(productService, logg))

		r.Post("/orders", controllers.OrdersSubmit(orderService, logg))
		r.Post("/contact", controllers.ContactSubmit(contactService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.ClientID(logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartView(cartService, logg))
				r.Delete("/", controllers.CartClear(cartService, logg))
				r.Post("/items", controllers.CartAddLine(cartService, logg))
				r.Patch("/items/{lineId}", controllers.CartUpdateLine(cartService, logg))
				r.Delete("/items/{lineId}", controllers.CartRemoveLine(cartService, logg))
			})

			r.Route("/wishlist", func(r chi.Router) {
				r.Get("/", controllers.WishlistList(wishlistService, logg))
				r.Delete("/", controllers.WishlistClear(wishlistService, logg))
				r.Post("/toggle", controllers.WishlistToggle(wishlistService, logg))
				r.Delete("/{productId}", controllers.WishlistRemove(wishlistService, logg))
			})
		})
	})

	return r
}
