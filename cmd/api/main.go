package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"vitashifa/internal/adapters/ai/gemini"
	"vitashifa/internal/adapters/ai/groq"
	"vitashifa/internal/adapters/auth/firebaseauth"
	"vitashifa/internal/adapters/cache/lrucache"
	"vitashifa/internal/adapters/cache/rediscache"
	pg "vitashifa/internal/adapters/storage/postgres"
	"vitashifa/internal/config"
	"vitashifa/internal/platform/logger"
	"vitashifa/internal/ports/ai"
	"vitashifa/internal/ports/auth"
	"vitashifa/internal/ports/cache"
	"vitashifa/internal/router"
)

const lruCacheSize = 1024

func main() {
	// .env is optional, env vars may come from the environment itself.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Logger.Level),
		Format: logger.ParseFormat(cfg.Logger.Format),
		App:    cfg.Logger.App,
	})

	opts := router.Options{}

	if cfg.DatabaseDSN != "" {
		db, err := pg.Open(cfg.DatabaseDSN)
		if err != nil {
			log.Error("postgres connection failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		opts.DB = db
		log.Info("storage: postgres")
	} else {
		log.Warn("storage: in-memory (DB_DSN not set)")
	}

	opts.Cache = buildCache(cfg, log)

	if cfg.Auth.FirebaseAPIKey != "" {
		var verifier auth.Verifier = firebaseauth.NewVerifier(
			firebaseauth.NewClient(firebaseauth.Config{APIKey: cfg.Auth.FirebaseAPIKey}),
		)
		opts.AuthVerifier = verifier
		log.Info("auth: firebase")
	} else {
		log.Warn("auth: dev mode (FIREBASE_API_KEY not set)")
	}

	opts.Chat, opts.Vision = buildModels(cfg, log)

	addr := ":" + cfg.HTTPPort
	srv := &http.Server{
		Addr:         addr,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	log.Info("starting server", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}

func buildCache(cfg *config.Config, log *slog.Logger) cache.Cache {
	if cfg.RedisAddr != "" {
		c, err := rediscache.New(cfg.RedisAddr)
		if err != nil {
			log.Warn("redis unavailable, falling back to lru cache", "error", err)
		} else {
			log.Info("cache: redis", "addr", cfg.RedisAddr)
			return c
		}
	}

	c, err := lrucache.New(lruCacheSize)
	if err != nil {
		log.Warn("lru cache init failed, caching disabled", "error", err)
		return nil
	}
	log.Info("cache: in-process lru")
	return c
}

func buildModels(cfg *config.Config, log *slog.Logger) (ai.ChatModel, ai.VisionModel) {
	var chat ai.ChatModel
	var vision ai.VisionModel

	if cfg.AI.GroqAPIKey != "" {
		chat = groq.New(groq.Config{
			APIKey:  cfg.AI.GroqAPIKey,
			BaseURL: cfg.AI.GroqBaseURL,
			Model:   cfg.AI.ChatModel,
		})
		log.Info("chat model ready", "model", cfg.AI.ChatModel)
	} else {
		log.Warn("chat endpoints disabled (GROQ_API_KEY not set)")
	}

	if cfg.AI.GeminiAPIKey != "" {
		g, err := gemini.New(context.Background(), cfg.AI.GeminiAPIKey, cfg.AI.VisionModel)
		if err != nil {
			log.Warn("gemini init failed, diagnosis disabled", "error", err)
		} else {
			vision = g
			log.Info("vision model ready", "model", cfg.AI.VisionModel)
		}
	} else {
		log.Warn("diagnosis endpoints disabled (GEMINI_API_KEY not set)")
	}

	return chat, vision
}
