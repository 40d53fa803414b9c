package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parts-store/config"
	"parts-store/controllers"
	_ "parts-store/docs"
	"parts-store/middleware"
	"parts-store/repositories"
	"parts-store/routes"
	"parts-store/services"
	"parts-store/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := config.NewLogger(cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.RunMigrations {
		if err := config.RunMigrations(cfg.DSN(), logger); err != nil {
			logger.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
	}

	pool, err := config.ConnectDB(ctx, cfg, logger)
	if err != nil {
		logger.Error("Unable to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		pool.Close()
		logger.Info("Database connection closed")
	}()

	var productCache repositories.ProductCache
	if rdb := config.ConnectRedis(ctx, cfg, logger); rdb != nil {
		defer rdb.Close()
		productCache = repositories.NewRedisProductCache(rdb, cfg.ProductCacheTTL)
	}

	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)

	cartRepo := repositories.NewCartRepository(pool)
	productRepo := repositories.NewProductRepository(pool, productCache, logger)
	userRepo := repositories.NewUserRepository(pool)

	cartService := services.NewCartService(cartRepo, productRepo, logger)
	productService := services.NewProductService(productRepo)
	userService := services.NewUserService(userRepo, tokens, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORSMiddleware(cfg.OriginURL))
	routes.SetupRoutes(router, routes.Controllers{
		Users:    controllers.NewUserController(userService),
		Products: controllers.NewProductController(productService),
		Carts:    controllers.NewCartController(cartService),
	}, tokens)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port, "env", cfg.AppEnv)
		logger.Info("Swagger UI available", "url", "http://localhost:"+cfg.Port+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to start server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}
}
