package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"ClubRoster/internal/api"
	"ClubRoster/internal/cache"
	"ClubRoster/internal/config"
	"ClubRoster/internal/database"
	"ClubRoster/internal/repository"
	"ClubRoster/internal/seed"
	"ClubRoster/internal/service"
	"ClubRoster/internal/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func newLogger(cfg config.LogConfig) *logrus.Logger {
	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	if strings.EqualFold(cfg.Format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}

// newStatsCache returns the Redis totals cache, or nil (no caching) when no
// address is configured.
func newStatsCache(ctx context.Context, cfg config.RedisConfig, logger *logrus.Logger) (cache.StatsCache, func()) {
	if cfg.Addr == "" {
		logger.Info("redis not configured, player totals are computed on every request")
		return nil, func() {}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		// the cache is optional; reads fall back to the database
		logger.WithError(err).Warn("redis ping failed")
	} else {
		logger.WithField("addr", cfg.Addr).Info("redis connected")
	}
	return cache.NewRedisStatsCache(client, cfg.TTL), func() { _ = client.Close() }
}

func main() {
	// 1. config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// 2. logger
	logger := newLogger(cfg.Log)
	logger.Info("config loaded")

	// 3. database (created if missing) + schema
	db, err := database.Open(cfg.Database, logger)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatalf("migrate schema: %v", err)
	}
	logger.WithField("driver", cfg.Database.Driver).Info("database ready")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. services
	statsCache, closeCache := newStatsCache(ctx, cfg.Redis, logger)
	defer closeCache()
	svcs := service.NewServices(db, statsCache, logger)

	if cfg.Database.Seed {
		if err := seed.Load(ctx, repository.NewPlayerRepository(db), svcs, logger); err != nil {
			logger.Fatalf("seed database: %v", err)
		}
	}

	// 5. gin
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery(), api.RequestLogger(logger))
	if len(cfg.Server.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  cfg.Server.CORSOrigins,
			AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
			ExposeHeaders: []string{"X-Request-ID"},
			MaxAge:        12 * time.Hour,
		}))
	}
	logger.Infof("gin mode: %s", cfg.Server.Mode)

	// 6. routes
	// templates are installed before any route is added
	if err := web.RegisterRoutes(r, svcs, logger); err != nil {
		logger.Fatalf("register html views: %v", err)
	}
	api.RegisterRoutes(r, svcs, db, logger)
	if cfg.Server.Pprof {
		pprof.Register(r)
	}

	// 7. serve until interrupted
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("serve: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("graceful shutdown failed")
	}
}
