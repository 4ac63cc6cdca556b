package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/lateladelgol/storefront-backend/api/routes"
	"github.com/lateladelgol/storefront-backend/internal/cart"
	"github.com/lateladelgol/storefront-backend/internal/contact"
	"github.com/lateladelgol/storefront-backend/internal/orders"
	"github.com/lateladelgol/storefront-backend/internal/products"
	"github.com/lateladelgol/storefront-backend/internal/snapshots"
	"github.com/lateladelgol/storefront-backend/internal/wishlist"
	"github.com/lateladelgol/storefront-backend/pkg/config"
	"github.com/lateladelgol/storefront-backend/pkg/db"
	"github.com/lateladelgol/storefront-backend/pkg/logger"
	"github.com/lateladelgol/storefront-backend/pkg/mail"
	"github.com/lateladelgol/storefront-backend/pkg/metrics"
	"github.com/lateladelgol/storefront-backend/pkg/migrate"
	"github.com/lateladelgol/storefront-backend/pkg/redis"
)

const storefrontName = "LaTelaDelGol"

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	mailMetrics := metrics.NewMailMetrics(registry)

	primary, fallback := buildSenders(cfg, logg)

	snapStore, err := snapshots.NewRedisStore(redisClient)
	if err != nil {
		logg.Error(context.Background(), "failed to build snapshot store", err)
		os.Exit(1)
	}

	cartService, err := cart.NewService(cart.ServiceParams{
		Snapshots: snapStore,
		Logger:    logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	wishlistService, err := wishlist.NewService(wishlist.ServiceParams{
		Snapshots: snapStore,
		Logger:    logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create wishlist service", err)
		os.Exit(1)
	}

	productService, err := products.NewService(products.ServiceParams{
		ProductRepo: products.NewRepository(dbClient.DB()),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create product service", err)
		os.Exit(1)
	}

	orderService, err := orders.NewService(orders.ServiceParams{
		OrderRepo: orders.NewRepository(dbClient.DB()),
		Primary:   primary,
		Fallback:  fallback,
		From:      cfg.Mail.SenderAddress(),
		FromName:  storefrontName,
		Receiver:  cfg.Mail.OrderReceiverAddress(),
		Logger:    logg,
		Metrics:   mailMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create order service", err)
		os.Exit(1)
	}

	contactService, err := contact.NewService(contact.ServiceParams{
		ContactRepo: contact.NewRepository(dbClient.DB()),
		Primary:     primary,
		Fallback:    fallback,
		From:        cfg.Mail.ContactFromAddress(),
		FromName:    storefrontName,
		To:          cfg.Mail.ContactToAddress(),
		Logger:      logg,
		Metrics:     mailMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create contact service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			productService,
			cartService,
			wishlistService,
			orderService,
			contactService,
			registry,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

// buildSenders wires the configured transports. Either may be nil; the
// pipelines treat a nil sender as "not configured".
func buildSenders(cfg *config.Config, logg *logger.Logger) (mail.Sender, mail.Sender) {
	var primary, fallback mail.Sender

	if cfg.Mail.SendgridConfigured() {
		client, err := mail.NewSendgridClient(cfg.Mail.SendgridAPIKey)
		if err != nil {
			logg.Error(context.Background(), "failed to build sendgrid client", err)
			os.Exit(1)
		}
		primary = client
	}

	if cfg.Mail.SMTPConfigured() {
		relay, err := mail.NewSMTPRelay(mail.SMTPRelayParams{
			Host:     cfg.Mail.SMTPHost,
			Port:     cfg.Mail.SMTPPort,
			User:     cfg.Mail.SMTPUser,
			Password: cfg.Mail.SMTPPass,
			// Self-signed relays are a dev convenience only.
			AllowSelfSigned: cfg.Mail.SMTPAllowSelfSigned && !cfg.App.IsProd(),
		})
		if err != nil {
			logg.Error(context.Background(), "failed to build smtp relay", err)
			os.Exit(1)
		}
		fallback = relay
	}

	if primary == nil && fallback == nil {
		logg.Warn(context.Background(), "no mail transport configured; submissions will be recorded but not delivered")
	}

	return primary, fallback
}
