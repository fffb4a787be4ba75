package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/previewlabs/storekit-preview/api/bootstrap"
	"github.com/previewlabs/storekit-preview/api/config"
	"github.com/previewlabs/storekit-preview/api/router"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	config.AppConfig = cfg

	if err := bootstrap.Ensure(); err != nil {
		slog.Error("bootstrap failed", "err", err)
		os.Exit(1)
	}

	addr := ":" + cfg.HTTPPort
	slog.Info("store server listening", "addr", addr, "mode", cfg.StoreMode)
	if err := http.ListenAndServe(addr, router.NewRouter()); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
