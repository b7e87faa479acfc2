package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"grocery-storefront/internal/catalog"
	"grocery-storefront/internal/config"
	"grocery-storefront/internal/db"
	"grocery-storefront/internal/httpserver"
	"grocery-storefront/internal/i18n"
	"grocery-storefront/internal/migrate"
	snapshotrepo "grocery-storefront/internal/repository/snapshot"
	checkoutsvc "grocery-storefront/internal/service/checkout"
	mailersvc "grocery-storefront/internal/service/mailer"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	sqlDB, err := db.Open(ctx, cfg.SnapshotDBPath)
	if err != nil {
		logger.Fatalf("open snapshot store: %v", err)
	}
	defer sqlDB.Close()

	if err := migrate.Apply(sqlDB); err != nil {
		logger.Fatalf("apply migrations: %v", err)
	}

	cat, err := catalog.Load()
	if err != nil {
		logger.Fatalf("load catalog: %v", err)
	}
	logger.Printf("catalog loaded: %d products in %d categories", len(cat.All()), len(cat.Categories()))

	snapshots := snapshotrepo.NewSQLite(sqlDB)
	checkoutService := checkoutsvc.New(cfg.OrderEmailURL, cfg.SubmitTimeout, logger)
	mailerService := mailersvc.New(logger, cfg.StoreName, cfg.StoreOwnerEmail)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, sqlDB, httpserver.Deps{
		Catalog:      cat,
		Snapshots:    snapshots,
		Checkout:     checkoutService,
		Mailer:       mailerService,
		Translations: i18n.Default(),
	}, cfg.CORSOrigins)
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
