package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Oliverknowledge/Signal-Backend/config"
	"github.com/Oliverknowledge/Signal-Backend/internal/cache"
	aiconfig "github.com/Oliverknowledge/Signal-Backend/internal/config"
	"github.com/Oliverknowledge/Signal-Backend/internal/content"
	"github.com/Oliverknowledge/Signal-Backend/internal/repository"
	"github.com/Oliverknowledge/Signal-Backend/internal/service"
	"github.com/Oliverknowledge/Signal-Backend/internal/telemetry"
	"github.com/Oliverknowledge/Signal-Backend/internal/transport/rest"
	"github.com/Oliverknowledge/Signal-Backend/internal/transport/ws"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("LOG_PRETTY") == "true" {
		log = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx := context.Background()
	cfg := config.Load()

	aiCfg := aiconfig.DefaultAIConfig()
	log.Info().
		Str("analysis_model", aiCfg.Models.Analysis).
		Str("bridge_model", aiCfg.Models.Bridge).
		Bool("api_key_set", aiCfg.IsEnabled()).
		Msg("model config loaded")
	if !aiCfg.IsEnabled() {
		log.Warn().Msg("GEMINI_API_KEY not set, using mock analyzer")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal().Err(err).Msg("failed to ping MongoDB")
	}
	log.Info().Msg("connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	redisAddr := cfg.RedisAddr
	if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
		redisAddr = redisAddr[8:]
	}
	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal().Err(err).Msg("failed to ping Redis")
	}
	log.Info().Msg("connected to Redis")

	// Telemetry sink: HTTP backend if configured, otherwise drop events
	var sink telemetry.Sink = telemetry.NopSink{}
	if cfg.TelemetryEndpoint != "" {
		sink = telemetry.NewHTTPSink(cfg.TelemetryEndpoint, cfg.TelemetryAPIKey, cfg.TelemetryProject, 10*time.Second)
		log.Info().Str("endpoint", cfg.TelemetryEndpoint).Msg("telemetry sink configured")
	} else {
		log.Warn().Msg("TELEMETRY_ENDPOINT not set, telemetry disabled")
	}
	dispatcher := telemetry.NewDispatcher(sink, telemetry.DefaultGracePeriod, log)

	// WebSocket observer hub
	wsHub := ws.NewHub(log)

	// Repositories and caches
	feedbackRepo := repository.NewFeedbackRepo(db)
	contentCache := cache.NewContentCache(rdb, 15*time.Minute)
	analysisCache := cache.NewAnalysisCache(rdb, 10*time.Minute)

	// Services
	fetcher := content.NewFetcher(15 * time.Second)
	modelClient := service.NewModelClient(aiCfg)
	authSvc := service.NewAuthService(cfg.ClientKey, cfg.JWTSecret)
	analyzerSvc := service.NewAnalyzerService(fetcher, modelClient, contentCache, analysisCache, dispatcher, log)
	feedbackSvc := service.NewFeedbackService(feedbackRepo, log)

	analyzerSvc.SetBroadcaster(wsHub)

	container := &rest.Container{
		AuthService:     authSvc,
		AnalyzerService: analyzerSvc,
		FeedbackService: feedbackSvc,
		WSHub:           wsHub,
		Log:             log,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen and serve")
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
