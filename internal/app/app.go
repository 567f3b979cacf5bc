package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/nashirhq/nashir-backend/internal/adapter/drafter"
	"github.com/nashirhq/nashir-backend/internal/adapter/indexer"
	"github.com/nashirhq/nashir-backend/internal/adapter/linkedin"
	"github.com/nashirhq/nashir-backend/internal/adapter/postgres"
	"github.com/nashirhq/nashir-backend/internal/adapter/postgres/credential"
	"github.com/nashirhq/nashir-backend/internal/adapter/postgres/draft"
	"github.com/nashirhq/nashir-backend/internal/adapter/postgres/job"
	"github.com/nashirhq/nashir-backend/internal/adapter/postgres/topic"
	"github.com/nashirhq/nashir-backend/internal/auth"
	"github.com/nashirhq/nashir-backend/internal/config"
	"github.com/nashirhq/nashir-backend/internal/secret"
	"github.com/nashirhq/nashir-backend/internal/service/publish"
	"github.com/nashirhq/nashir-backend/internal/service/schedule"
	"github.com/nashirhq/nashir-backend/internal/service/social"
	"github.com/nashirhq/nashir-backend/internal/service/workflow"
	"github.com/nashirhq/nashir-backend/internal/transport/middleware"
	"github.com/nashirhq/nashir-backend/internal/transport/rest"
	"github.com/nashirhq/nashir-backend/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, adapters, and services, and serves
// HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool, migrations.FS); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	topicRepo := topic.New(pool)
	draftRepo := draft.New(pool)
	jobRepo := job.New(pool)
	credRepo := credential.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTTL)

	cipher, err := secret.NewCipher(cfg.Auth.EncryptionSecret)
	if err != nil {
		return fmt.Errorf("init token cipher: %w", err)
	}

	drafterClient := drafter.NewClient(cfg.Drafter.BaseURL, cfg.Drafter.APIKey, cfg.Drafter.Timeout, logger)

	workflowSvc := workflow.NewService(logger, topicRepo, draftRepo, drafterClient, txManager)

	var publishSvc *publish.Service
	if cfg.Indexer.Enabled && cfg.Indexer.IndexNowKey != "" {
		notifier, err := indexer.NewNotifier(cfg.Indexer.IndexNowKey, cfg.Site.BaseURL, cfg.Indexer.Timeout, logger)
		if err != nil {
			return fmt.Errorf("init indexer: %w", err)
		}
		publishSvc = publish.NewService(logger, topicRepo, draftRepo, notifier, txManager, cfg.Site)
	} else {
		logger.Info("search indexer disabled")
		publishSvc = publish.NewService(logger, topicRepo, draftRepo, nil, txManager, cfg.Site)
	}

	var socialSvc *social.Service
	if cfg.LinkedIn.Enabled() {
		var publisherID uuid.UUID
		if cfg.LinkedIn.PublisherUserID != "" {
			publisherID, err = uuid.Parse(cfg.LinkedIn.PublisherUserID)
			if err != nil {
				return fmt.Errorf("parse linkedin publisher_user_id: %w", err)
			}
		}

		linkedInClient := linkedin.NewClient(
			cfg.LinkedIn.ClientID,
			cfg.LinkedIn.ClientSecret,
			cfg.LinkedIn.RedirectURI,
			cfg.LinkedIn.Timeout,
			logger,
		)
		socialSvc = social.NewService(logger, credRepo, draftRepo, topicRepo, linkedInClient, cipher, jwtManager, publisherID)
	} else {
		logger.Info("linkedin integration disabled")
	}

	// A typed nil must not reach the interface fields, so each optional
	// service is wired through its own branch.
	var scheduleSvc *schedule.Service
	if socialSvc != nil {
		scheduleSvc = schedule.NewService(logger, jobRepo, publishSvc, socialSvc, cfg.Scheduler)
	} else {
		scheduleSvc = schedule.NewService(logger, jobRepo, publishSvc, nil, cfg.Scheduler)
	}

	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	handlers := rest.Handlers{
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
		Topics:   rest.NewTopicHandler(workflowSvc, logger),
		Schedule: rest.NewScheduleHandler(scheduleSvc, logger),
	}
	if socialSvc != nil {
		handlers.Publish = rest.NewPublishHandler(publishSvc, socialSvc, logger)
		handlers.Social = rest.NewSocialHandler(socialSvc, logger)
	} else {
		handlers.Publish = rest.NewPublishHandler(publishSvc, nil, logger)
		handlers.Social = rest.NewSocialHandler(nil, logger)
	}

	router := rest.NewRouter(cfg, logger, jwtManager, limiter, handlers)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
