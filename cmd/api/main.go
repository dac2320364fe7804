package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/signaidy/nexus-standalone/internal/api/http"
	"github.com/signaidy/nexus-standalone/internal/api/http/handlers"
	"github.com/signaidy/nexus-standalone/internal/auth"
	"github.com/signaidy/nexus-standalone/internal/config"
	"github.com/signaidy/nexus-standalone/internal/events"
	"github.com/signaidy/nexus-standalone/internal/observability"
	"github.com/signaidy/nexus-standalone/internal/persistence"
	"github.com/signaidy/nexus-standalone/internal/repository"
	"github.com/signaidy/nexus-standalone/internal/service"
	"github.com/signaidy/nexus-standalone/internal/upstream"
	"github.com/signaidy/nexus-standalone/internal/worker"
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

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	reservationRepo := repository.NewReservationRepository(pool)
	providerRepo := repository.NewProviderRepository(pool)
	commentRepo := repository.NewCommentRepository(pool)
	aboutUsRepo := repository.NewAboutUsRepository(pool)

	authService, err := service.NewAuthService(cfg.Auth, userRepo)
	if err != nil {
		logger.Fatal("failed to init auth", zap.Error(err))
	}

	cache := upstream.NewCache(redis.Client, cfg.Upstream.CacheTTL())
	aggregator := upstream.NewClient(cfg.Upstream, cache, logger)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(
		dispatcher, &service.LogMailer{Logger: logger}, userRepo, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	userService := service.NewUserService(userRepo, cfg.Auth.BcryptCost)
	flightService := service.NewFlightService(flightRepo, aggregator, dispatcher)
	reservationService := service.NewReservationService(reservationRepo, aggregator, dispatcher)
	providerService := service.NewProviderService(providerRepo)
	commentService := service.NewCommentService(commentRepo)
	aboutUsService := service.NewAboutUsService(aboutUsRepo)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:        handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:          handlers.NewAuthHandler(authService),
		Users:         handlers.NewUsersHandler(userService),
		Flights:       handlers.NewFlightsHandler(flightService),
		Reservations:  handlers.NewReservationsHandler(reservationService),
		Providers:     handlers.NewProvidersHandler(providerService),
		Comments:      handlers.NewCommentsHandler(commentService),
		AboutUs:       handlers.NewAboutUsHandler(aboutUsService),
		Authenticator: auth.NewAuthenticator(authService.TokenManager(), userRepo),
		Policy:        auth.DefaultPolicy(),
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
