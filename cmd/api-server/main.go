package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"booster/database"
	"booster/internal/api/handler"
	"booster/internal/api/middleware"
	"booster/internal/api/repository"
	"booster/internal/api/service"
	"booster/internal/config"
	"booster/internal/realtime"
	"booster/internal/worker"
)

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("could not load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.OpenGorm(cfg, logger)
	if err != nil {
		logger.Error("could not connect to database", "error", err)
		os.Exit(1)
	}

	pool, err := database.OpenPgxPool(cfg, logger)
	if err != nil {
		logger.Error("could not open pgx pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Realtime events are best-effort: a missing Redis must not take the API down.
	var notifier realtime.Publisher
	if publisher, err := realtime.NewRedisPublisher(cfg.RedisAddr, cfg.RedisPassword, logger); err != nil {
		logger.Warn("redis unavailable, chat events disabled", "error", err)
	} else {
		notifier = publisher
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	manufacturerRepo := repository.NewManufacturerRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	schedulingRepo := repository.NewSchedulingRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	manufacturerService := service.NewManufacturerService(manufacturerRepo)
	cartService := service.NewCartService(cartRepo, productRepo)
	orderService := service.NewOrderService(orderRepo, cartService)
	schedulingService := service.NewSchedulingService(schedulingRepo)
	dashboardService := service.NewDashboardService(pool, orderRepo)
	chatService := service.NewChatService(roomRepo, messageRepo, repository.NewChatTx(db), notifier, logger)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	manufacturerHandler := handler.NewManufacturerHandler(manufacturerService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService)
	schedulingHandler := handler.NewSchedulingHandler(schedulingService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	chatHandler := handler.NewChatHandler(chatService, cfg.ChatInactiveMinutes)

	if cfg.ChatSweepInterval > 0 {
		sweeper := worker.NewSweeper(chatService, cfg.ChatSweepInterval, cfg.ChatInactiveMinutes, logger)
		sweeper.Start()
		defer sweeper.Shutdown()
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middleware.RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("")

	// Public routes. Chat is public on purpose: customers open rooms with an
	// identifier, not an account.
	authHandler.RegisterRoutes(api)
	productHandler.RegisterRoutes(api)
	categoryHandler.RegisterRoutes(api)
	manufacturerHandler.RegisterRoutes(api)
	chatHandler.RegisterRoutes(api)

	// Authenticated routes
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(authService))

	// Admin routes
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authService), middleware.RequireAdmin())

	userHandler.RegisterRoutes(authed, admin)
	cartHandler.RegisterRoutes(authed)
	orderHandler.RegisterRoutes(authed, admin)
	schedulingHandler.RegisterRoutes(api, authed, admin)
	dashboardHandler.RegisterRoutes(admin)

	productHandler.RegisterAdminRoutes(admin)
	categoryHandler.RegisterAdminRoutes(admin)
	manufacturerHandler.RegisterAdminRoutes(admin)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("api server listening", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
