package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitbook/catalog"
	"fitbook/config"
	"fitbook/cron"
	"fitbook/database"
	reservationRepo "fitbook/database/repository/reservation"
	"fitbook/handlers"
	"fitbook/middleware"
	"fitbook/routes"
	"fitbook/services/availability"
	"fitbook/services/booking"
	"fitbook/services/intelligence"
	"fitbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Catalogue: file-backed when configured, built-in seed otherwise.
	var cat *catalog.Catalog
	if path := config.AppConfig.CatalogPath; path != "" {
		loaded, err := catalog.Load(path)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to load catalogue from %s: %v", path, err)
		}
		cat = loaded
	} else {
		cat = catalog.Seed()
	}

	// Reservations: Mongo when configured, in-memory otherwise.
	var store reservationRepo.Store
	var mongoClient *mongo.Client
	if config.AppConfig.DatabaseURL != "" {
		database.InitDB()
		mongoClient = database.MongoClient
		store = reservationRepo.NewMongoStore(mongoClient, database.DBName)
	} else {
		logger.Sugar().Warn("main: DATABASE_URL not set, reservations are in-memory")
		store = reservationRepo.NewMemoryStore()
	}

	// Sessions: Redis when configured, in-memory otherwise. The
	// completion sweeper needs Redis for its queue, so it only runs in
	// that mode.
	var sessions booking.SessionStore
	var redisClient *redis.Client
	if config.AppConfig.RedisAddr != "" {
		utils.InitCache()
		redisClient = utils.GetCacheClient()
		sessions = booking.NewRedisSessionStore(redisClient)
		cron.InitCompletionSweeper(store)
	} else {
		logger.Sugar().Warn("main: REDIS_ADDR not set, sessions are in-memory and the sweeper is disabled")
		sessions = booking.NewMemorySessionStore()
	}

	var tips intelligence.TipService = intelligence.StaticTipService{}
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		gemini, err := intelligence.NewGeminiTipService(context.Background(), key)
		if err != nil {
			logger.Sugar().Warnf("main: gemini unavailable, serving fallback tips: %v", err)
		} else {
			tips = gemini
		}
	}

	engine := availability.NewEngine(cat)
	flow := booking.NewFlowService(cat, engine, store, sessions)

	utils.StartHealthMonitor(redisClient, mongoClient)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	handlerBundle := &handlers.HandlerBundle{
		Flow:         flow,
		Catalog:      cat,
		Reservations: store,
		Tips:         tips,
	}
	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
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
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
