package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/bank-crm/internal/api/http"
	"github.com/spec-kit/bank-crm/internal/api/http/handlers"
	"github.com/spec-kit/bank-crm/internal/auth"
	"github.com/spec-kit/bank-crm/internal/chatbot"
	"github.com/spec-kit/bank-crm/internal/config"
	"github.com/spec-kit/bank-crm/internal/events"
	"github.com/spec-kit/bank-crm/internal/observability"
	"github.com/spec-kit/bank-crm/internal/overlay"
	"github.com/spec-kit/bank-crm/internal/persistence"
	"github.com/spec-kit/bank-crm/internal/records"
	"github.com/spec-kit/bank-crm/internal/service"
	"github.com/spec-kit/bank-crm/internal/session"
	"github.com/spec-kit/bank-crm/internal/views"
	"github.com/spec-kit/bank-crm/internal/worker"
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
		if _, err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	var (
		redis *persistence.Redis
		store session.Store = session.NewMemoryStore(cfg.Session.TTL)
	)
	if cfg.Session.Store == config.SessionStoreRedis {
		redis, err = persistence.NewRedis(ctx, cfg.Redis, logger)
		if err != nil {
			logger.Fatal("failed to connect redis", zap.Error(err))
		}
		defer redis.Close()
		store = session.NewRedisStore(redis.Client, cfg.Session.TTL, logger)
	}

	var sessionOpts []session.Option
	if cfg.Auth.StrictCredentials() {
		logger.Info("strict credential checking enabled")
		sessionOpts = append(sessionOpts, session.WithVerifier(auth.NewBcryptVerifier(cfg.Auth.PasswordHash)))
	}
	sessions := session.NewRegistry(store, sessionOpts...)
	defer sessions.Close() //nolint:errcheck

	dispatcher := events.NewInMemoryDispatcher()
	actionLog := service.NewActionLogService(dispatcher, logger, 0)
	worker.StartActionLogWorker(actionLog)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	chats := chatbot.NewRegistry(chatbot.WithReplyDelay(cfg.Chatbot.ReplyDelay))
	defer chats.Shutdown()
	overlays := overlay.NewRegistry(service.NewOverlayCompletion(dispatcher, logger))

	authService := service.NewAuthService(service.AuthDependencies{
		Sessions:   sessions,
		Tokens:     tokens,
		Chats:      chats,
		Overlays:   overlays,
		Dispatcher: dispatcher,
	}, logger)
	reaperDone := worker.StartSessionReaper(ctx, authService, cfg.Session.SweepInterval, logger)

	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Metrics:        handlers.NewMetricsHandler(metrics),
		Auth:           handlers.NewAuthHandler(authService),
		Dashboard:      handlers.NewDashboardHandler(views.NewBuilder(records.NewProvider(pg.PoolHandle()))),
		Chat:           handlers.NewChatHandler(chats),
		Overlays:       handlers.NewOverlayHandler(overlays),
		Admin:          handlers.NewAdminHandler(actionLog),
		AuthMiddleware: auth.NewAuthMiddleware(tokens, sessions, auth.WithSessionEnded(authService.Release)),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
	cancel()
	<-reaperDone
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
