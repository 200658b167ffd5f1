package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/group-allocator/internal/allocation"
	httptransport "github.com/spec-kit/group-allocator/internal/api/http"
	"github.com/spec-kit/group-allocator/internal/api/http/handlers"
	"github.com/spec-kit/group-allocator/internal/auth"
	"github.com/spec-kit/group-allocator/internal/config"
	"github.com/spec-kit/group-allocator/internal/events"
	"github.com/spec-kit/group-allocator/internal/observability"
	"github.com/spec-kit/group-allocator/internal/persistence"
	"github.com/spec-kit/group-allocator/internal/repository"
	"github.com/spec-kit/group-allocator/internal/service"
	"github.com/spec-kit/group-allocator/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	var (
		publisher service.Publisher
		pinger    handlers.Pinger
	)
	if redis.Configured() {
		publisher = redis
		pinger = redis
	}

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	notificationService := service.NewNotificationService(dispatcher, publisher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService, logger)

	shuffler := allocation.NewShuffler()
	if cfg.Shuffle.Seed != 0 {
		shuffler = allocation.NewSeededShuffler(cfg.Shuffle.Seed)
		logger.Info("using fixed shuffle seed", zap.Uint64("seed", cfg.Shuffle.Seed))
	}

	rosterService := service.NewRosterService(service.RosterDependencies{
		PlayerRepo: repository.NewPlayerRepository(),
		Dispatcher: dispatcher,
		Shuffler:   shuffler,
		Metrics:    metrics,
		Logger:     logger,
	})

	authService := service.NewAuthService(cfg.Auth)
	if !authService.Enabled() {
		logger.Warn("AUTH_ORGANIZER_PASSWORD_HASH not provided; roster changes are unauthenticated")
	}
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), authService.Enabled())

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pinger),
		Auth:           handlers.NewAuthHandler(authService),
		Players:        handlers.NewPlayersHandler(rosterService),
		Groups:         handlers.NewGroupsHandler(rosterService),
		Metrics:        handlers.NewMetricsHandler(metrics),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
