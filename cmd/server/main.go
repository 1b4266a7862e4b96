package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/chmanikanta24/cafe-storefront/internal/events"
	"github.com/chmanikanta24/cafe-storefront/internal/handler"
	"github.com/chmanikanta24/cafe-storefront/internal/repository"
	"github.com/chmanikanta24/cafe-storefront/internal/service"
	"github.com/chmanikanta24/cafe-storefront/pkg/config"
	"github.com/chmanikanta24/cafe-storefront/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	if cfg.MongoURI == "" {
		logger.Warn("MONGODB_URI not set. Set it in .env")
	}

	logger.Info("Service configuration",
		zap.String("port", cfg.Port),
		zap.String("database", cfg.MongoDB),
		zap.String("menu_collection", cfg.MenuCollection),
		zap.Bool("events_enabled", cfg.KafkaBrokers != ""))

	ctx := context.Background()
	db, err := repository.NewMongoDatabase(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer db.Client().Disconnect(ctx)

	menuRepo := repository.NewMenuRepository(db, cfg.MenuCollection)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)
	contactRepo := repository.NewContactRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("Failed to ensure user indexes", zap.Error(err))
	}

	var publisher events.Publisher
	if cfg.KafkaBrokers != "" {
		producer := events.NewOrderProducer(cfg.KafkaBrokers, cfg.OrderEventsTopic, logger)
		defer producer.Close()
		publisher = producer
	}

	menuService := service.NewMenuService(menuRepo)
	orderService := service.NewOrderService(orderRepo, publisher, logger)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, logger)
	contactService := service.NewContactService(contactRepo, logger)

	menuHandler := handler.NewMenuHandler(menuService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	authHandler := handler.NewAuthHandler(authService, logger)
	contactHandler := handler.NewContactHandler(contactService, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))

	router.GET("/menu", menuHandler.ListMenu)
	router.POST("/auth/signup", authHandler.Signup)
	router.POST("/auth/login", authHandler.Login)
	router.POST("/contact", contactHandler.Submit)

	protected := router.Group("/")
	protected.Use(middleware.BearerAuth(cfg.JWTSecret))
	{
		protected.GET("/auth/me", authHandler.Me)
		protected.POST("/orders", orderHandler.CreateOrder)
		protected.GET("/orders", orderHandler.ListOrders)
		protected.GET("/contact", contactHandler.List)
		protected.GET("/users", authHandler.ListUsers)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Starting HTTP server", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
	logger.Info("Server stopped")
}
