package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/harshittt-21/shopneticc/internal/config"
	"github.com/harshittt-21/shopneticc/internal/database"
	"github.com/harshittt-21/shopneticc/internal/handlers"
	"github.com/harshittt-21/shopneticc/internal/middleware"
	"github.com/harshittt-21/shopneticc/internal/repositories"
	"github.com/harshittt-21/shopneticc/internal/services"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	db, err := database.Connect(ctx, database.Config{
		URI:            cfg.Database.URI,
		Name:           cfg.Database.Name,
		ConnectTimeout: cfg.Database.ConnectTimeout,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	logger.Info().Msg("mongodb connected")

	if err := db.EnsureIndexes(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to create indexes")
	}

	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	cartRepo := repositories.NewCartRepository(db)

	authService := services.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.TTL)
	productService := services.NewProductService(productRepo)
	cartService := services.NewCartService(cartRepo, productRepo)

	authMW := middleware.NewAuthMiddleware(authService)

	router := handlers.Router{
		Auth:     handlers.NewAuthHandler(authService, logger),
		Products: handlers.NewProductHandler(productService, logger),
		Cart:     handlers.NewCartHandler(cartService, logger),
		AuthMW:   authMW,
		Logger:   logger,
	}

	server := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: router.Build(),
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
	}
	if err := db.Close(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("database disconnect failed")
	}
	logger.Info().Msg("server stopped")
}
