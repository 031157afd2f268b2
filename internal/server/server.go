// Package server boots the shop: config, logging, the store, the service
// graph, and the HTTP listener.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lunarosa/shop/app/repositories"
	"github.com/lunarosa/shop/app/routes"
	"github.com/lunarosa/shop/app/services"
	"github.com/lunarosa/shop/config"
	"github.com/lunarosa/shop/pkg/event"
	"github.com/lunarosa/shop/pkg/kvstore"
	"github.com/lunarosa/shop/pkg/logger"
	"github.com/lunarosa/shop/pkg/metrics"
	"github.com/lunarosa/shop/pkg/middleware"
	"github.com/lunarosa/shop/pkg/reqid"
	"github.com/lunarosa/shop/pkg/router"
)

// Start wires the whole application and serves until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}
	logger.Setup()
	defer logger.Shutdown()

	store, err := kvstore.Connect()
	if err != nil {
		return err
	}

	// Repositories over the one store.
	catalogRepo := repositories.NewCatalogRepository(store)
	cartRepo := repositories.NewCartRepository(store)
	orderRepo := repositories.NewOrderRepository(store)
	settingsRepo := repositories.NewSettingsRepository(store)

	// Services.
	cartService := services.NewCartService(cartRepo, catalogRepo)
	checkoutService := services.NewCheckoutService(cartService, cartRepo, catalogRepo, orderRepo, settingsRepo)
	catalogService := services.NewCatalogService(catalogRepo, settingsRepo)

	// Live order feed: every placed order and low-stock alert is pushed to
	// connected admin sessions.
	hub := newOrderHub()

	r := router.New()
	r.Use(
		reqid.Middleware(),
		middleware.Logger,
		middleware.Recovery,
		metrics.Middleware(),
		middleware.CORS(middleware.DefaultCORSOptions()),
	)
	routes.RegisterAPI(r, routes.Deps{
		Catalog:  catalogService,
		Cart:     cartService,
		Checkout: checkoutService,
		Orders:   orderRepo,
		Settings: settingsRepo,
		OrderHub: hub,
	})

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server: listening",
			"addr", srv.Addr, "env", config.AppEnv(), "store", config.StoreDriver())
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("server: shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	event.Flush()
	return nil
}
