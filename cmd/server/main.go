package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"finnhubmcp/internal/config"
	"finnhubmcp/internal/finnhub"
	"finnhubmcp/internal/handlers"
	"finnhubmcp/internal/mcp"
)

func main() {
	apiKeyFlag := flag.String("api-key", "", "Finnhub API key (takes precedence over FINNHUB_API_KEY)")
	flag.Parse()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if *apiKeyFlag != "" {
		cfg.APIKey = *apiKeyFlag
	}
	if cfg.APIKey == "" {
		slog.Error("missing Finnhub API key: pass -api-key or set FINNHUB_API_KEY")
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("mcp_service_starting",
		"port", cfg.Port,
		"call_timeout_ms", cfg.CallTimeoutMS,
		"base_url", cfg.BaseURL,
	)

	client := finnhub.New(cfg.APIKey, logger, finnhub.WithBaseURL(cfg.BaseURL))
	executor := mcp.NewToolExecutor(client, logger)

	invoker, err := mcp.NewToolInvoker(executor)
	if err != nil {
		logger.Error("failed to create tool invoker", "error", err)
		os.Exit(1)
	}

	mcpHandler := handlers.NewMCPInvokeHandler(invoker, logger, cfg.CallTimeout())

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(handlers.CorrelationIDMiddleware)
	r.Use(handlers.LoggingMiddleware(logger))

	// Health check endpoint (for docker healthcheck)
	r.Get("/health", handlers.HealthCheckHandler())

	// MCP endpoint: JSON-RPC over SSE
	r.Post("/mcp", mcpHandler.ServeHTTP)

	srv := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Port),
		Handler:     r,
		ReadTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("mcp_server_listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server_error", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	logger.Info("shutdown_signal_received", "signal", sig.String())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server_shutdown_error", "error", err)
	}

	logger.Info("mcp_service_stopped")
}
