package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/tatvax/edubot/internal/api/router"
	"github.com/tatvax/edubot/internal/audio"
	"github.com/tatvax/edubot/internal/chatbot"
	appconfig "github.com/tatvax/edubot/internal/config"
	"github.com/tatvax/edubot/internal/content"
	"github.com/tatvax/edubot/internal/feedback"
	"github.com/tatvax/edubot/internal/observability/metrics"
	"github.com/tatvax/edubot/internal/translation"
	"github.com/tatvax/edubot/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting edubot API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	chatMetrics := metrics.NewChatMetrics(nil)
	translationMetrics := metrics.NewTranslationMetrics(nil)

	library, err := content.NewStore(cfg.ContentDir, cfg.ContentCacheTTL, logger)
	if err != nil {
		logger.Error("failed to initialize content library", "error", err)
		os.Exit(1)
	}

	pipeline := translation.NewPipeline(translation.Config{
		Providers: translation.DefaultProviders(
			cfg.GoogleTranslateURL,
			cfg.MyMemoryURL,
			cfg.MyMemoryEmail,
			cfg.LibreTranslateURL,
			cfg.TranslateTimeout,
		),
		Logger:     logger,
		Metrics:    translationMetrics,
		BatchDelay: cfg.BatchDelay,
	})

	synth := audio.NewGoogleTTS(cfg.TTSBaseURL, cfg.TTSTimeout)
	player := audio.NewPlayer(cfg.AudioPlayerCmd, logger)
	audioManager, err := audio.NewManager(cfg.TempAudioDir, synth, player, logger, chatMetrics)
	if err != nil {
		logger.Error("failed to initialize audio manager", "error", err)
		os.Exit(1)
	}

	history := newHistoryStore(cfg, logger)

	service, err := chatbot.NewService(chatbot.ServiceConfig{
		Translator: pipeline,
		Library:    library,
		Audio:      audioManager,
		History:    history,
		Logger:     logger,
		Metrics:    chatMetrics,
	})
	if err != nil {
		logger.Error("failed to initialize chatbot service", "error", err)
		os.Exit(1)
	}

	feedbackStore := feedback.NewStore(cfg.FeedbackFile, logger)

	r := router.New(&router.Config{
		Logger:             logger,
		ChatHandler:        chatbot.NewHandler(service, logger, chatMetrics),
		TranslationHandler: translation.NewHandler(pipeline, logger),
		FeedbackHandler:    feedback.NewHandler(feedbackStore, logger),
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		StaticDir:          "static",
		RateLimit:          cfg.RateLimit,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	audioManager.StartJanitor(janitorCtx, 15*time.Minute, cfg.AudioMaxAge)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")
	player.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// newHistoryStore uses Redis when configured so the conversation log
// survives restarts, and an in-process store otherwise.
func newHistoryStore(cfg *appconfig.Config, logger *logging.Logger) chatbot.History {
	if cfg.RedisAddr == "" {
		logger.Info("using in-memory conversation history")
		return chatbot.NewMemoryHistory(cfg.HistoryLimit)
	}

	opts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, falling back to in-memory history", "error", err)
		return chatbot.NewMemoryHistory(cfg.HistoryLimit)
	}

	logger.Info("using redis conversation history", "addr", cfg.RedisAddr)
	return chatbot.NewRedisHistory(client, cfg.HistoryLimit)
}
