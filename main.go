// File: venuebook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"venuebook/config"
	"venuebook/database"
	venueRepo "venuebook/database/repository/venue"
	"venuebook/handlers"
	"venuebook/middleware"
	"venuebook/routes"
	"venuebook/services/checkout"
	"venuebook/services/payment"
	"venuebook/services/venue"
	"venuebook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	mongoClient, err := database.Connect(rootCtx, cfg.DatabaseURL, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	db := mongoClient.Database(cfg.DatabaseName)

	// repositories.
	venues := venueRepo.NewMongoVenueRepo(db)
	if err := venues.EnsureIndexes(rootCtx); err != nil {
		logger.Warn("main: venue indexes not created", zap.Error(err))
	}

	// cache is optional; the catalog still works against MongoDB alone.
	var cache venue.VenueCache
	redisClient, err := utils.NewCacheClient(rootCtx, cfg)
	if err != nil {
		logger.Warn("main: running without venue cache", zap.Error(err))
	} else {
		cache = venue.NewBreakerCache(venue.NewRedisVenueCache(redisClient, cfg.VenueCacheTTL), logger)
	}

	health := utils.NewHealthMonitor(redisClient, mongoClient, time.Minute)
	health.Start(rootCtx)

	// services.
	thresholds := payment.Thresholds{LowMax: cfg.CategoryLowMax, MiddleMax: cfg.CategoryMiddleMax}
	if err := thresholds.Validate(); err != nil {
		logger.Warn("main: using default category thresholds", zap.Error(err),
			zap.Float64("lowMax", cfg.CategoryLowMax), zap.Float64("middleMax", cfg.CategoryMiddleMax))
		thresholds = payment.DefaultThresholds
	}
	venueService := venue.NewVenueService(venues, cache, thresholds, logger)
	links := payment.LinkBuilder{
		Scheme:       cfg.PaymentScheme,
		QRServiceURL: cfg.QRServiceURL,
		QRSize:       cfg.QRSize,
	}
	checkoutService := checkout.NewCheckoutService(venueService, payment.NewReferenceGenerator(), links, cfg.PaymentDisabledVenues, logger)

	venueHandler := handlers.NewVenueHandler(venueService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)

	handlerBundle := &handlers.HandlerBundle{
		ListVenuesHandler:      venueHandler.ListVenuesHandler,
		GetVenueHandler:        venueHandler.GetVenueHandler,
		CreateVenueHandler:     venueHandler.CreateVenueHandler,
		PrepareCheckoutHandler: checkoutHandler.PrepareCheckoutHandler,
		QRCodeHandler:          checkoutHandler.QRCodeHandler,
		Health:                 health,
	}

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Sugar().Fatalf("main: invalid TRUSTED_PROXIES: %v", err)
	}
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	database.Disconnect(ctx, mongoClient, logger)

	logger.Info("main: server stopped gracefully")
}
