package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"traffic-analytics-api/config"
	"traffic-analytics-api/dataset"
	"traffic-analytics-api/handlers"
	"traffic-analytics-api/middleware"
	"traffic-analytics-api/services"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Load the dataset once; it is immutable for the process lifetime.
	opts := dataset.DefaultOptions()
	opts.NullThreshold = cfg.Dataset.NullThreshold
	opts.Delimiter = rune(cfg.Dataset.Delimiter[0])

	data, err := dataset.Load(cfg.Dataset.Path, opts)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}
	log.Printf("dataset loaded: %d rows, columns=%s", len(data.Records), strings.Join(data.Schema.Columns, ","))
	if len(data.Schema.Dropped) > 0 {
		log.Printf("dropped sparse columns: %s", strings.Join(data.Schema.Dropped, ","))
	}
	if !data.Schema.HasDetector {
		log.Printf("no detector column found, detector ranking disabled")
	}

	// Services
	cache := services.NewCacheService(cfg.Redis)
	defer cache.Close()
	authService := services.NewAuthService(cfg.JWT)
	userStore := services.NewUserStore()

	// Handlers
	trafficHandler := handlers.NewTrafficHandler(data, cache, cfg.Analytics)
	authHandler := handlers.NewAuthHandler(userStore, authService)

	// Router
	router := gin.Default()
	router.Use(middleware.SetupCORS(cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "UP",
			"message": "Traffic Analytics API is running",
			"rows":    len(data.Records),
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
	}

	api := router.Group("/api/v1")
	if cfg.Server.AuthRequired {
		api.Use(middleware.RequireAuth(authService))
	}
	{
		api.GET("/detectors", trafficHandler.GetDetectors)
		api.GET("/schema", trafficHandler.GetSchema)
		api.GET("/traffic/summary", trafficHandler.GetSummary)
		api.GET("/traffic/rankings", trafficHandler.GetRankings)
		api.GET("/traffic/ci", trafficHandler.GetCI)
		api.GET("/eda/daytypes", trafficHandler.GetDayTypes)
		api.GET("/eda/histogram", trafficHandler.GetHistogram)
		api.GET("/eda/boxplot", trafficHandler.GetBoxplot)
	}

	router.GET("/ws/status", handlers.StatusWebSocket(cache, authService))

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}
}
