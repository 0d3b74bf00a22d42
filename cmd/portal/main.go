package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/learnhub-portal/internal/api"
	"github.com/spec-kit/learnhub-portal/internal/auth"
	"github.com/spec-kit/learnhub-portal/internal/config"
	"github.com/spec-kit/learnhub-portal/internal/domain"
	"github.com/spec-kit/learnhub-portal/internal/guard"
	"github.com/spec-kit/learnhub-portal/internal/notify"
	"github.com/spec-kit/learnhub-portal/internal/observability"
	"github.com/spec-kit/learnhub-portal/internal/service"
	"github.com/spec-kit/learnhub-portal/internal/session"
	"github.com/spec-kit/learnhub-portal/internal/session/storage"
	"github.com/spec-kit/learnhub-portal/internal/transport"
	"github.com/spec-kit/learnhub-portal/internal/web"
	"github.com/spec-kit/learnhub-portal/internal/web/handlers"
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

	metrics := observability.NewMetrics()

	credentialStorage, err := storage.New(cfg.Storage)
	if err != nil {
		logger.Fatal("failed to open credential storage", zap.Error(err))
	}
	defer credentialStorage.Close(context.Background()) //nolint:errcheck

	notifier := notify.New()
	if err := notify.RegisterLogging(notifier, logger); err != nil {
		logger.Fatal("failed to register notification logging", zap.Error(err))
	}

	onLogout := func(role domain.Role) {
		notifier.Publish(notify.LevelInfo, "SIGNED_OUT", "signed out of "+string(role)+" session")
	}

	userSessions := session.NewStore(session.Config{
		Role:     domain.RoleUser,
		Storage:  credentialStorage,
		Logger:   logger,
		OnLogout: onLogout,
	})
	defer userSessions.Close()

	adminSessions := session.NewStore(session.Config{
		Role:     domain.RoleAdmin,
		Storage:  credentialStorage,
		Logger:   logger,
		OnLogout: onLogout,
	})
	defer adminSessions.Close()

	selector := auth.NewSelector(cfg.API.AdminPathPrefix)
	classifier := transport.NewClassifier(selector, notifier, metrics)
	authorizer := transport.NewAuthorizer(nil, selector, userSessions, adminSessions, logger)

	apiClient := api.NewClient(cfg.API, &http.Client{Transport: authorizer}, classifier, logger)
	authService := service.NewAuthService(apiClient, userSessions, adminSessions, logger)

	userGuard := guard.NewUserGuard(userSessions, cfg.Routes.SignPath, cfg.Routes.LoginPath)
	adminGuard := guard.NewAdminGuard(adminSessions, cfg.Routes.AdminLoginPath)

	app := fiber.New()
	web.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	web.RegisterRoutes(app, web.RouteConfig{
		Health:     handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, credentialStorage),
		Pages:      handlers.NewPagesHandler(apiClient),
		Auth:       handlers.NewAuthHandler(authService, cfg.Routes.SignPath, cfg.Routes.HomePath),
		Admin:      handlers.NewAdminHandler(authService, apiClient, cfg.Routes.AdminLoginPath),
		UserGuard:  userGuard,
		AdminGuard: adminGuard,
		Routes:     cfg.Routes,
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
