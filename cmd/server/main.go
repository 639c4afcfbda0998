package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"estate/internal/calculator"
	"estate/internal/config"
	"estate/internal/handler"
	"estate/internal/logger"
	"estate/internal/notify"
	"estate/internal/repository"
	"estate/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	slog.SetDefault(log)
	log.Info("starting listings service", "version", Version, "build_time", BuildTime, "git_commit", GitCommit)

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	ctx := context.Background()

	// Initialize database connection
	repo, err := repository.NewPostgresRepository(
		cfg.GetPostgreSQLDSN(),
		cfg.PostgreSQL.MaxConnections,
		cfg.PostgreSQL.MaxIdleConnections,
	)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer repo.Close()
	log.Info("connected to PostgreSQL")

	if cfg.PostgreSQL.AutoMigrate {
		if err := repo.Migrate(ctx); err != nil {
			log.Error("failed to apply schema", "error", err)
			os.Exit(1)
		}
		log.Info("database schema applied")
	}

	// Search result cache
	var cache repository.CacheRepository
	if cfg.Redis.Enabled {
		redisCache, err := repository.NewRedisCache(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Error("failed to connect to redis", "addr", cfg.Redis.Addr, "error", err)
			os.Exit(1)
		}
		defer redisCache.Close()
		cache = redisCache
		log.Info("using redis search cache", "addr", cfg.Redis.Addr)
	} else {
		cache = repository.NewMemoryCache()
		log.Info("using in-memory search cache")
	}

	// Inquiry event publisher
	var notifier notify.Notifier = notify.NoopNotifier{}
	if cfg.RabbitMQ.Enabled {
		publisher, err := notify.NewRabbitPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, cfg.RabbitMQ.RoutingKey, log)
		if err != nil {
			log.Warn("rabbitmq unavailable, inquiry events disabled", "error", err)
		} else {
			defer publisher.Close()
			notifier = publisher
			log.Info("publishing inquiry events", "exchange", cfg.RabbitMQ.Exchange, "routing_key", cfg.RabbitMQ.RoutingKey)
		}
	}

	// Calculator policy
	policy := calculator.DefaultPolicy()
	if cfg.Calculator.TaxPolicyFile != "" {
		policy, err = calculator.LoadPolicy(cfg.Calculator.TaxPolicyFile)
		if err != nil {
			log.Error("failed to load tax policy", "path", cfg.Calculator.TaxPolicyFile, "error", err)
			os.Exit(1)
		}
		log.Info("loaded tax policy", "path", cfg.Calculator.TaxPolicyFile)
	}

	// Initialize services
	ranker := service.NewRanker(
		cfg.Ranking.WeightVector,
		cfg.Ranking.WeightPrice,
		cfg.Ranking.WeightRecency,
	)
	listingService := service.NewListingService(repo, cache, ranker, service.ListingOptions{
		DefaultLimit:    cfg.Listing.DefaultLimit,
		MaxLimit:        cfg.Listing.MaxLimit,
		SimilarLimit:    cfg.Listing.SimilarLimit,
		MaxImagesInList: cfg.Listing.MaxImagesInList,
		CacheTTL:        cfg.Listing.CacheTTL,
	}, log)
	inquiryService := service.NewInquiryService(repo, notifier, log)
	documentService, err := service.NewDocumentService()
	if err != nil {
		log.Error("failed to load document templates", "error", err)
		os.Exit(1)
	}

	// Initialize handlers
	handlers := handler.Handlers{
		Property:   handler.NewPropertyHandler(listingService, log),
		Inquiry:    handler.NewInquiryHandler(inquiryService, log),
		Calculator: handler.NewCalculatorHandler(calculator.NewEngine(policy)),
		Document:   handler.NewDocumentHandler(documentService, log),
	}

	limiter := handler.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.RefillRate)
	defer limiter.Stop()

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(handler.RequestLogger(log))

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = splitOrigins(cfg.Server.AllowedOrigins)
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", handler.TraceIDHeader}
	corsConfig.ExposeHeaders = []string{handler.TraceIDHeader, "Retry-After"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status, code := "healthy", http.StatusOK
		if err := repo.Ping(pingCtx); err != nil {
			status, code = "unhealthy", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":     status,
			"service":    "listings",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	handler.RegisterRoutes(router.Group("/api/v1"), handlers, limiter)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("starting server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
	}
	log.Info("server stopped")
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
