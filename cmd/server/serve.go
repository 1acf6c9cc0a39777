package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anonto42/medishare/backend/internal/handlers"
	"github.com/anonto42/medishare/backend/internal/repositories/memory"
	"github.com/anonto42/medishare/backend/internal/router"
	"github.com/anonto42/medishare/backend/pkg/cache"
	"github.com/anonto42/medishare/backend/pkg/config"
	"github.com/anonto42/medishare/backend/pkg/firebase"
	"github.com/anonto42/medishare/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCommand(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "serves the medishare api",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), load())
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var repos router.Repositories
	if cfg.Store == config.StoreMemory {
		logrus.Warn("using in-memory store, data is lost on exit")
		repos = router.MemoryRepositories(memory.NewStore())
	} else {
		db, err := config.InitDB(cfg)
		if err != nil {
			logrus.WithError(err).Error("failed to initialize databases")
			return err
		}
		defer db.CloseDB()
		if err := db.Migrate(ctx); err != nil {
			logrus.WithError(err).Error("failed to migrate")
			return err
		}
		repos = router.SQLRepositories(db)
	}

	opts := router.Options{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
	}
	if cfg.FirebaseCredentialsPath != "" {
		verifier, err := firebase.NewVerifier(ctx, cfg)
		if err != nil {
			logrus.WithError(err).Error("failed to initialize firebase")
			return err
		}
		opts.Firebase = verifier
	}
	if cfg.RedisAddr != "" {
		publisher, err := cache.NewPublisher(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			logrus.WithError(err).Warn("redis unavailable, notifications will not be published")
		} else {
			defer publisher.Close()
			opts.Publisher = publisher
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handlers.HTTPErrorHandler
	e.Validator = validators.NewValidator()
	config.SetupMiddleware(e, cfg)
	router.SetupRoutes(e, repos, opts)

	errc := make(chan error, 1)
	go func() {
		logrus.Infof("serving api at http://127.0.0.1:%s", cfg.Port)
		errc <- e.Start(":" + cfg.Port)
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Error("server stopped")
			return err
		}
		return nil
	case <-ctx.Done():
		logrus.Info("signal caught. shutting down...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("graceful shutdown failed")
		return err
	}
	return nil
}
