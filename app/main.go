package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/odatools/catalog-browser/app/api"
	"github.com/odatools/catalog-browser/app/auth"
	"github.com/odatools/catalog-browser/app/browse"
	"github.com/odatools/catalog-browser/app/cfg"
	"github.com/odatools/catalog-browser/app/client"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	if appCfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	slog.Info("Starting catalog browser", "version", appCfg.Version, "host", appCfg.Host)

	httpClient := &http.Client{
		Timeout: time.Duration(appCfg.RequestTimeout) * time.Second,
	}

	creds := auth.NewProvider(appCfg.User, appCfg.Password)
	fetcher := client.NewFetcher(httpClient, creds, appCfg.UserAgent)
	browser := browse.NewBrowser(fetcher, appCfg.Host)

	handler := api.NewHandler(browser, appCfg.Host, appCfg.Version)
	server := api.NewServer(handler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", appCfg.Port)
		slog.Info("Endpoints available",
			"catalogs", fmt.Sprintf("http://localhost:%s/", appCfg.Port),
			"services", fmt.Sprintf("http://localhost:%s/fetchServices?catalog_name=<name>", appCfg.Port),
			"metadata", fmt.Sprintf("http://localhost:%s/fetchMetadata?url=<url>", appCfg.Port),
			"health", fmt.Sprintf("http://localhost:%s/health", appCfg.Port))

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}
}
