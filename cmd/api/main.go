package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/shopspring/decimal"

	"github.com/JRGCaponde/peixaria-backend/api/routes"
	"github.com/JRGCaponde/peixaria-backend/internal/auth"
	"github.com/JRGCaponde/peixaria-backend/internal/cart"
	"github.com/JRGCaponde/peixaria-backend/internal/catalog"
	checkoutsvc "github.com/JRGCaponde/peixaria-backend/internal/checkout"
	"github.com/JRGCaponde/peixaria-backend/internal/customers"
	"github.com/JRGCaponde/peixaria-backend/internal/employees"
	"github.com/JRGCaponde/peixaria-backend/internal/notifications"
	"github.com/JRGCaponde/peixaria-backend/internal/orders"
	"github.com/JRGCaponde/peixaria-backend/internal/settings"
	"github.com/JRGCaponde/peixaria-backend/internal/store"
	"github.com/JRGCaponde/peixaria-backend/pkg/config"
	"github.com/JRGCaponde/peixaria-backend/pkg/logger"
	"github.com/JRGCaponde/peixaria-backend/pkg/metrics"
	"github.com/JRGCaponde/peixaria-backend/pkg/models"
	"github.com/JRGCaponde/peixaria-backend/pkg/security"
)

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

	adminHash, err := security.HashPassword(cfg.Admin.BootstrapPassword, cfg.Password)
	if err != nil {
		logg.Error(context.Background(), "failed to hash bootstrap admin password", err)
		os.Exit(1)
	}

	st, err := store.New(store.Params{
		AdminName:         cfg.Admin.BootstrapName,
		AdminEmail:        cfg.Admin.BootstrapEmail,
		AdminPasswordHash: adminHash,
		AdminPhone:        cfg.Admin.BootstrapPhone,
		Settings:          shopSettings(cfg.Shop),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap state store", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.ServiceParams{
		Store:          st,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	catalogService, err := catalog.NewService(st)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	cartService, err := cart.NewService(st)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	checkoutService, err := checkoutsvc.NewService(st)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	ordersService, err := orders.NewService(st)
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	customersService, err := customers.NewService(st, cfg.Password)
	if err != nil {
		logg.Error(context.Background(), "failed to create customers service", err)
		os.Exit(1)
	}

	employeesService, err := employees.NewService(st, cfg.Password)
	if err != nil {
		logg.Error(context.Background(), "failed to create employees service", err)
		os.Exit(1)
	}

	settingsService, err := settings.NewService(st)
	if err != nil {
		logg.Error(context.Background(), "failed to create settings service", err)
		os.Exit(1)
	}

	notificationsService, err := notifications.NewService(st)
	if err != nil {
		logg.Error(context.Background(), "failed to create notifications service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
		"shop": cfg.Shop.Name,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, registry, httpMetrics, routes.Services{
			Auth:          authService,
			Catalog:       catalogService,
			Cart:          cartService,
			Checkout:      checkoutService,
			Orders:        ordersService,
			Customers:     customersService,
			Employees:     employeesService,
			Settings:      settingsService,
			Notifications: notificationsService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

// shopSettings starts from the stock Khrismir profile and overlays whatever
// the environment overrides.
func shopSettings(shop config.ShopConfig) models.ShopSettings {
	s := store.DefaultSettings()
	if shop.Name != "" {
		s.Name = shop.Name
	}
	if shop.Address != "" {
		s.Address = shop.Address
	}
	if fee, err := decimal.NewFromString(shop.BaseDeliveryFee); err == nil {
		s.BaseDeliveryFee = fee
	}
	if rate, err := decimal.NewFromString(shop.IVARate); err == nil {
		s.IVARate = rate
	}
	if shop.AccentColor != "" {
		s.AccentColor = shop.AccentColor
	}
	if shop.OpeningTime != "" {
		s.OpeningTime = shop.OpeningTime
	}
	if shop.ClosingTime != "" {
		s.ClosingTime = shop.ClosingTime
	}
	return s
}
