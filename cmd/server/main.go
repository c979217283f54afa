package main

import (
	"context"
	"log"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/marketplace-api/internal/config"
	"github.com/yukikurage/marketplace-api/internal/database"
	"github.com/yukikurage/marketplace-api/internal/fixtures"
	"github.com/yukikurage/marketplace-api/internal/handlers"
	"github.com/yukikurage/marketplace-api/internal/logger"
	"github.com/yukikurage/marketplace-api/internal/repository"
	"github.com/yukikurage/marketplace-api/internal/seed"
	"github.com/yukikurage/marketplace-api/internal/server"
	"github.com/yukikurage/marketplace-api/internal/services"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zapLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg, zapLogger, logger.Gorm(zapLogger, cfg.LogLevel))
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer database.Close(db)

	// Run migrations
	if err := database.Migrate(db, zapLogger); err != nil {
		zapLogger.Fatal("running migrations", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Seed from fixtures
	set, err := fixtures.LoadSet(cfg.FixturesDir)
	if err != nil {
		zapLogger.Fatal("loading fixtures", zap.String("dir", filepath.Clean(cfg.FixturesDir)), zap.Error(err))
	}
	if _, err := seed.New(db, zapLogger).Seed(ctx, set); err != nil {
		zapLogger.Fatal("seeding database", zap.Error(err))
	}

	// Initialize repositories, services and handlers
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	offerRepo := repository.NewOfferRepository(db)

	userHandler := handlers.NewUserHandler(services.NewUserService(userRepo), zapLogger, cfg.ValidateCreateFields)
	orderHandler := handlers.NewOrderHandler(services.NewOrderService(orderRepo, userRepo), zapLogger, cfg.ValidateCreateFields)
	offerHandler := handlers.NewOfferHandler(services.NewOfferService(offerRepo, orderRepo, userRepo), zapLogger, cfg.ValidateCreateFields)

	router := server.NewRouter(userHandler, orderHandler, offerHandler, zapLogger)
	srv := server.New(cfg.ServerPort, router, zapLogger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		zapLogger.Info("received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		zapLogger.Error("server stopped with error", zap.Error(err))
		return
	}

	zapLogger.Info("server stopped gracefully")
}
