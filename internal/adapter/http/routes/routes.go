package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"contractor_pro/internal/adapter/http/handlers"
	"contractor_pro/internal/adapter/persistence/kvstore"
	"contractor_pro/internal/adapter/persistence/repository"
	"contractor_pro/internal/config"
	"contractor_pro/internal/infrastructure/retry"
	"contractor_pro/internal/usecase"
	"contractor_pro/internal/usecase/interfaces"
	"contractor_pro/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

// Run builds the data layer from cfg, loads it and serves the API until ctx
// is canceled.
func Run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	kv, closeKV, err := kvstore.Open(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
	}
	defer func() {
		if err := closeKV(); err != nil {
			log.WithError(err).Warnf("failed to close storage")
		}
	}()

	store := repository.NewDataStore(kv, log, repository.WithRetry(&retry.Config{
		MaxAttempts:       cfg.Persist.MaxAttempts,
		InitialBackoff:    cfg.Persist.InitialBackoff,
		MaxBackoff:        cfg.Persist.MaxBackoff,
		BackoffMultiplier: 2,
	}))

	if cfg.Log.Environment == "production" || cfg.Log.Environment == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := NewRouter(store, log)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Probes answer while the collections load; data routes return 503
	// until Initialize completes.
	serveErr := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	if err := store.Initialize(ctx); err != nil {
		log.WithError(err).Warnf("data store initialization interrupted")
	}

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// NewRouter wires handlers and use cases over store.
func NewRouter(store interfaces.IDataStore, log logger.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	clientHandler := handlers.NewClientHandler(usecase.NewClientUseCase(store), log)
	estimateHandler := handlers.NewEstimateHandler(usecase.NewEstimateUseCase(store), log)
	photoHandler := handlers.NewPhotoHandler(usecase.NewPhotoUseCase(store), log)
	dashboardHandler := handlers.NewDashboardHandler(usecase.NewDashboardUseCase(store), log)
	healthHandler := handlers.NewHealthHandler(store)

	v1 := router.Group("/v1")
	addPingRoutes(v1, healthHandler)
	addClientRoutes(v1, clientHandler)
	addEstimateRoutes(v1, estimateHandler)
	addPhotoRoutes(v1, photoHandler)
	addDashboardRoutes(v1, dashboardHandler)

	return router
}

func setMiddlewares(router *gin.Engine, log logger.Logger) {
	httpLog := log.WithComponent("http")
	router.Use(requestLogger(httpLog))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		httpLog.WithFields(map[string]interface{}{"path": c.Request.URL.Path}).
			Errorf("recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func requestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(map[string]interface{}{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Debugf("request")
	}
}
