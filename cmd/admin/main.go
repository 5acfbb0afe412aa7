package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/employee-management/internal/admin"
	"github.com/employee-management/internal/client"
	"github.com/employee-management/internal/config"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	api := client.New(cfg.Admin.APIBaseURL, cfg.Admin.RequestTimeout, logger)

	h, err := admin.NewHandler(api, api.BaseURL(), logger)
	if err != nil {
		logger.Error("failed to init admin ui", slog.Any("error", err))
		os.Exit(1)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Admin.Port,
		Handler:      h.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan struct{})
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("admin ui is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("could not gracefully shutdown the admin ui", slog.Any("error", err))
		}
		close(done)
	}()

	logger.Info("admin ui is starting",
		slog.String("port", cfg.Admin.Port),
		slog.String("api", api.BaseURL()),
	)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("could not listen on port", slog.String("port", cfg.Admin.Port), slog.Any("error", err))
		os.Exit(1)
	}

	<-done
	logger.Info("admin ui stopped")
}
