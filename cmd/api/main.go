package main

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/luxesalon/salon-platform/internal/api/router"
	"github.com/luxesalon/salon-platform/internal/booking"
	"github.com/luxesalon/salon-platform/internal/catalog"
	appconfig "github.com/luxesalon/salon-platform/internal/config"
	"github.com/luxesalon/salon-platform/internal/consultant"
	"github.com/luxesalon/salon-platform/internal/observability/metrics"
	"github.com/luxesalon/salon-platform/internal/referrals"
	"github.com/luxesalon/salon-platform/pkg/logging"
)

func main() {
	// Load .env if present; real environment variables win.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting salon-platform API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	// Repositories
	catalogRepo := catalog.NewInMemoryRepository()
	referralsRepo := referrals.NewInMemoryRepository()

	// Metrics
	bookingMetrics := metrics.NewBookingMetrics(nil)
	chatMetrics := metrics.NewChatMetrics(nil)

	// Booking flow
	flowStore := booking.NewStore(cfg.BookingCommitLatency)
	bookingService := booking.NewService(flowStore, catalogRepo, bookingMetrics, logger)

	// Consultant chat gateway
	llm := buildLLMClient(ctx, cfg, logger)
	historyStore := buildHistoryStore(ctx, cfg, logger)
	gateway := consultant.NewGateway(llm, historyStore, logger)
	chatGateway := consultant.NewFallbackGateway(gateway, chatMetrics, logger)

	// Handlers
	catalogHandler := catalog.NewHandler(catalogRepo, logger)
	referralsHandler := referrals.NewHandler(referralsRepo, logger)
	bookingHandler := booking.NewHandler(bookingService, logger)
	chatHandler := consultant.NewHandler(chatGateway, logger)

	// Setup router
	r := router.New(&router.Config{
		Logger:             logger,
		CatalogHandler:     catalogHandler,
		ReferralsHandler:   referralsHandler,
		BookingHandler:     bookingHandler,
		ChatHandler:        chatHandler,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		ChatRateLimitRPS:   cfg.ChatRateLimitRPS,
		ChatRateLimitBurst: cfg.ChatRateLimitBurst,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	if closer, ok := llm.(interface{ Close() error }); ok {
		_ = closer.Close()
	}

	logger.Info("server stopped")
}

// buildLLMClient returns the Gemini client, or a disabled stand-in when no
// API key is configured so chat still answers with the fallback reply.
func buildLLMClient(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) consultant.LLMClient {
	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		logger.Warn("GEMINI_API_KEY not set; consultant replies will fall back")
		return consultant.NewDisabledClient(errors.New("consultant: no gemini api key configured"))
	}
	client, err := consultant.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModelID)
	if err != nil {
		logger.Error("failed to create gemini client", "error", err)
		os.Exit(1)
	}
	return client
}

// buildHistoryStore returns the Redis transcript store when Redis is
// reachable, otherwise the in-memory store.
func buildHistoryStore(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) consultant.HistoryStore {
	if strings.TrimSpace(cfg.RedisAddr) == "" {
		return consultant.NewMemoryHistoryStore()
	}

	options := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		options.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(options)
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis not available, using in-memory chat history", "error", err)
		return consultant.NewMemoryHistoryStore()
	}
	logger.Info("using redis chat history store", "addr", cfg.RedisAddr)
	return consultant.NewRedisHistoryStore(client, cfg.ChatHistoryTTL)
}
