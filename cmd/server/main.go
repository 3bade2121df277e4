package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"breast-cancer-predictor/internal/adapters/primary/http/handlers"
	"breast-cancer-predictor/internal/adapters/primary/http/middleware"
	"breast-cancer-predictor/internal/adapters/primary/http/views"
	"breast-cancer-predictor/internal/adapters/secondary/metrics"
	"breast-cancer-predictor/internal/adapters/secondary/modelfile"
	"breast-cancer-predictor/internal/config"
	"breast-cancer-predictor/internal/core/domain"
	"breast-cancer-predictor/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// ============================================================================
	// Wiring
	// ============================================================================

	// Secondary Adapters
	loader := modelfile.NewLoader()
	recorder := metrics.NewRecorder()

	// Core Services: one prediction service per form variant
	catalog := services.NewCatalog(
		services.NewPredictionService(domain.FullFeatureVariant(cfg.Models.FullPath), loader, recorder),
		services.NewPredictionService(domain.ReducedFeatureVariant(cfg.Models.ReducedPath), loader, recorder),
	)

	// Bundles load exactly once; a missing file degrades that variant only.
	if failed := catalog.LoadAll(context.Background()); len(failed) > 0 {
		log.WithField("variants", len(failed)).Warn("starting with prediction disabled for some variants")
	}

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(catalog)

	tmpl, err := views.Load()
	if err != nil {
		log.Fatalf("parse templates: %v", err)
	}

	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())
	router.SetHTMLTemplate(tmpl)

	h.RegisterPages(router)
	api := router.Group("/api/v1")
	h.RegisterRoutes(api)

	router.GET("/healthz", h.Healthz)
	router.GET("/metrics", gin.WrapH(recorder.Handler()))

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	if cfg.Logger.File != "" {
		log.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   cfg.Logger.File,
			MaxSize:    cfg.Logger.MaxSizeMB,
			MaxBackups: cfg.Logger.MaxBackups,
			MaxAge:     cfg.Logger.MaxAgeDays,
			Compress:   true,
		}))
	}
}
