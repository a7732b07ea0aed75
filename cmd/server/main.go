package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carcost/internal/app/server/api"
	"carcost/internal/config"
	"carcost/internal/domain/garage"
	"carcost/internal/domain/vehicle"
	"carcost/internal/infrastructure/storage"
	"carcost/internal/infrastructure/vpic"
	"carcost/internal/utils/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	conf := config.MustLoad()
	log := logger.WithLevel(conf.Env, conf.Logger.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, err := storage.New(ctx, conf, log)
	if err != nil {
		log.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := kv.Close(); err != nil {
			log.Error("failed to close storage", "error", err)
		}
	}()

	store := garage.NewStore(kv, conf.Garage.StorageKey, log)
	catalog := vpic.New(conf.Catalog.BaseURL, conf.Catalog.Timeout, log)

	mux := api.New(api.Deps{
		Garage:   store,
		Vehicles: vehicle.NewService(catalog, log),
		Probe:    api.KeyProbe(kv, conf.Garage.StorageKey),
	}, log)

	srv := &http.Server{
		Addr:              conf.Server.RunAddress,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("starting server", "address", conf.Server.RunAddress, "env", conf.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
