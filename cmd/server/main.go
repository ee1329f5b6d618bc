package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sandy2008/inventory/internal/api"
	"github.com/sandy2008/inventory/internal/config"
	"github.com/sandy2008/inventory/internal/db"
	"github.com/sandy2008/inventory/internal/service"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to YAML config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	setupLogger(cfg.Env)

	slog.Info("starting inventory server",
		"env", cfg.Env, "storage", cfg.StoragePath, "addr", cfg.HTTPAddr)
	if cfg.EnableDelay {
		slog.Warn("artificial delay enabled, every request will block for 10s")
	}

	database, err := db.Open(cfg.StoragePath)
	if err != nil {
		slog.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		slog.Error("creating schema", "error", err)
		os.Exit(1)
	}

	svc := service.New(database)
	handler := api.LoggingMiddleware(api.NewRouter(svc, cfg))

	server := &http.Server{
		Addr:        cfg.HTTPAddr,
		Handler:     handler,
		ReadTimeout: 10 * time.Second,
		// Must outlast the 10s artificial delay.
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	slog.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutting down server", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// setupLogger configures the default logger: JSON in prod, text otherwise.
func setupLogger(env string) {
	var handler slog.Handler
	switch env {
	case "prod":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))
}
