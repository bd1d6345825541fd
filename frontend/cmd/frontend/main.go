package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/itchan-dev/signup/frontend/internal/router"
	"github.com/itchan-dev/signup/frontend/internal/setup"
	"github.com/itchan-dev/signup/shared/config"
	"github.com/itchan-dev/signup/shared/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to YAML config (optional, SIGNUP_* env vars override it)")
	flag.Parse()

	cfg := config.MustLoad(configPath)
	logger.Initialize(cfg.Log.Level, cfg.Log.JSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Error("failed to set up dependencies", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Frontend.Port,
		Handler:      router.SetupRouter(deps),
		ReadTimeout:  cfg.Frontend.ReadTimeout,
		WriteTimeout: cfg.Frontend.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Log.Info("starting frontend", "addr", server.Addr, "api", cfg.API.BaseURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("frontend server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Log.Info("shutting down frontend")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("graceful shutdown failed", "error", err)
	}
}
