package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/mcoot/puzzlebox/internal/api"
	"github.com/mcoot/puzzlebox/internal/factory"
	redisstorage "github.com/mcoot/puzzlebox/internal/storage/redis"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPhrasesPath   = "data/quotes.json"
	sessionSweepInterval = time.Hour
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(os.Getenv("LOG_LEVEL")),
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	cfg := factory.Config{
		PhrasesPath: getEnvOrDefault("PHRASES_PATH", defaultPhrasesPath),
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
	}

	if seed := os.Getenv("RANDOM_SEED"); seed != "" {
		v, err := strconv.ParseUint(seed, 10, 64)
		if err != nil {
			logger.Error("RANDOM_SEED must be an unsigned integer", slog.String("value", seed))
			os.Exit(1)
		}
		cfg.RandomSeed = &v
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	serverConfig := api.DefaultServerConfig()
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			logger.Error("PORT must be a number", slog.String("value", port))
			os.Exit(1)
		}
		serverConfig.Port = p
	}

	// Stop on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := factory.New(ctx, cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:               logger,
		AuthService:          app.AuthService,
		MinefieldController:  app.MinefieldController,
		CryptogramController: app.CryptogramController,
		TicTacToeController:  app.TicTacToeController,
		AllowedOrigins:       splitList(os.Getenv("CORS_ORIGINS")),
	})
	server := api.NewServer(router, serverConfig, logger)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		<-gCtx.Done()
		return server.Shutdown(context.Background())
	})
	g.Go(func() error {
		sweepSessions(gCtx, app, logger)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
	}

	if closer, ok := app.Storage.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Warn("failed to close storage", slog.String("error", err.Error()))
		}
	}
	logger.Info("server stopped")
}

// sweepSessions drops expired sessions until ctx is done
func sweepSessions(ctx context.Context, app *factory.App, logger *slog.Logger) {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := app.AuthService.CleanExpiredSessions(); removed > 0 {
				logger.Info("expired sessions dropped", slog.Int("count", removed))
			}
		}
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// splitList parses a comma separated env value, dropping blanks
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
