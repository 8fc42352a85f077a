// Elix career advisor HTTP server
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/kirubha-07/elix-career-advisor/internal/advisor"
	"github.com/kirubha-07/elix-career-advisor/internal/auth"
	"github.com/kirubha-07/elix-career-advisor/internal/config"
	"github.com/kirubha-07/elix-career-advisor/internal/dataset"
	"github.com/kirubha-07/elix-career-advisor/internal/db"
	"github.com/kirubha-07/elix-career-advisor/internal/httpapi"
	"github.com/kirubha-07/elix-career-advisor/internal/httpapi/handlers"
	"github.com/kirubha-07/elix-career-advisor/internal/logger"
	"github.com/kirubha-07/elix-career-advisor/internal/report"
	"github.com/kirubha-07/elix-career-advisor/internal/session"
	"github.com/kirubha-07/elix-career-advisor/internal/store/rabbitmq"
	"github.com/kirubha-07/elix-career-advisor/internal/store/redisstore"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.L.Info("no .env file found, using environment variables")
	}

	cfg := config.Load()
	logger.SetLevel(cfg.LogLevel)
	slog.SetDefault(logger.L)

	data, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		slog.Error("load dataset", "path", cfg.DatasetPath, "error", err)
		os.Exit(1)
	}

	creds, err := auth.NewCredentials()
	if err != nil {
		slog.Error("hash credentials", "error", err)
		os.Exit(1)
	}
	adv := advisor.NewService(data, session.NewStore(), creds, cfg.JWTSecret, cfg.JWTTTL)

	var cache report.Cache
	if cfg.RedisAddr != "" {
		rds := redisstore.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := rds.Ping(pingCtx)
		cancel()
		if err != nil {
			slog.Warn("redis unavailable, report cache disabled", "addr", cfg.RedisAddr, "error", err)
			_ = rds.Close()
		} else {
			defer rds.Close()
			cache = rds
			slog.Info("report cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.ReportCacheTTL)
		}
	}

	registry := report.DefaultRegistry()
	reports := report.NewService(registry, cache, cfg.ReportCacheTTL, cfg.ReportDir)

	var jobs *report.Jobs
	if cfg.AsyncReportsEnabled() {
		gdb, err := db.Connect(cfg.DBDSN)
		if err != nil {
			slog.Error("connect db", "error", err)
			os.Exit(1)
		}
		if err := report.Migrate(gdb); err != nil {
			slog.Error("migrate report jobs", "error", err)
			os.Exit(1)
		}

		pub, err := rabbitmq.NewPublisher(cfg.RabbitURL, cfg.RabbitQueue)
		if err != nil {
			slog.Error("rabbit publisher", "error", err)
			os.Exit(1)
		}
		defer pub.Close()

		jobs = report.NewJobs(report.NewRepo(gdb), pub, registry, data)
		slog.Info("async reports enabled", "queue", cfg.RabbitQueue)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := httpapi.NewRouter(handlers.NewHandler(cfg, adv, reports, jobs))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("listen", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown", "error", err)
	}
}
