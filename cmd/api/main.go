package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"narie-storefront/internal/cart"
	"narie-storefront/internal/catalog"
	"narie-storefront/internal/checkout"
	"narie-storefront/internal/config"
	"narie-storefront/internal/httpserver"
	"narie-storefront/internal/i18n"
	"narie-storefront/internal/recommend"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	catalogStore := catalog.New()
	cartStore := cart.New()
	submitter := checkout.NewSimulatedSubmitter(cfg.OrderProcessingDelay)
	checkoutMgr := checkout.NewManager(cartStore, submitter)
	setting := i18n.NewSetting()

	deps := httpserver.Deps{
		Catalog:  catalogStore,
		Cart:     cartStore,
		Checkout: checkoutMgr,
		Setting:  setting,
	}

	if cfg.GeminiAPIKey == "" {
		logger.Printf("GEMINI_API_KEY not set; scent recommendations disabled")
	} else {
		client, err := recommend.NewGeminiClient(recommend.GeminiConfig{
			APIKey:  cfg.GeminiAPIKey,
			BaseURL: cfg.GeminiBaseURL,
		})
		if err != nil {
			logger.Fatalf("init gemini client: %v", err)
		}
		deps.Recommender = recommend.New(client)
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, deps, cfg.AllowedOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
