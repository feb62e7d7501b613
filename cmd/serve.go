package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/stockcart/storefront/internal/api"
	"github.com/stockcart/storefront/internal/core/ports"
	"github.com/stockcart/storefront/internal/core/service"
	"github.com/stockcart/storefront/internal/infrastructure/db/memory"
	"github.com/stockcart/storefront/internal/infrastructure/db/redis"
	"github.com/stockcart/storefront/internal/infrastructure/http/handlers"
	"github.com/stockcart/storefront/internal/pkg/config"
	"github.com/stockcart/storefront/pkg/logger"
)

func newServeCmd(version string) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the storefront HTTP API",
		Example: `  # Start server on the port from $PORT (default 5000)
  storefront serve

  # Start server on a custom port with Redis-backed sessions
  SESSION_STORE=redis storefront serve --port 8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadWith(cmd.Context(), envLookuper())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if port != "" {
				cfg.Port = port
			}

			log := logger.Init(logger.Options{
				Level:   cfg.LogLevel,
				Pretty:  cfg.LogPretty,
				Service: "storefront",
				Version: version,
				Env:     cfg.Env,
			})

			if cfg.SentryDSN != "" {
				if err := sentry.Init(sentry.ClientOptions{
					Dsn:         cfg.SentryDSN,
					Environment: cfg.Env,
					Release:     version,
				}); err != nil {
					return fmt.Errorf("sentry.Init: %w", err)
				}
				// Flush buffered events before the command returns.
				defer sentry.Flush(2 * time.Second)
			}

			return serve(cmd.Context(), cfg, log)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides $PORT)")

	return cmd
}

func serve(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	store := memory.NewStore()
	images := memory.NewImageRepository(store)

	if cfg.SeedCatalog {
		if err := memory.Seed(ctx, images, memory.SampleImages()); err != nil {
			return err
		}
		log.Info().Int("images", store.Stats()[memory.CollectionImages]).Msg("catalog seeded")
	}

	sessions, closeSessions, err := openSessionStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeSessions()

	e := api.NewRouter(api.Deps{
		Auth:         service.NewAuthService(memory.NewUserRepository(store), sessions, cfg.Session.Secret, cfg.Session.TTL, log),
		Catalog:      service.NewCatalogService(images, log),
		Cart:         service.NewCartService(memory.NewCartRepository(store), images, log),
		JWTSecret:    cfg.Session.Secret,
		SessionTTL:   cfg.Session.TTL,
		SecureCookie: !cfg.IsDevelopment(),
		Health:       map[string]handlers.Pinger{"sessions": sessions},
		Logger:       log,
	})

	addr := ":" + cfg.Port
	server := &http.Server{
		Addr:              addr,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Str("env", cfg.Env).Str("sessions", cfg.Session.Store).Msg("storefront listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for context cancellation (Ctrl+C) or server error
	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
			return err
		}
		log.Info().Msg("server stopped")
		return nil
	case err := <-serverErr:
		return err
	}
}

func openSessionStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.SessionStore, func(), error) {
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		client, err := redis.Connect(ctx, redis.Config{
			Addrs:      cfg.Redis.Addrs,
			MasterName: cfg.Redis.MasterName,
			Password:   cfg.Redis.Password,
			DB:         cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Info().Strs("addrs", cfg.Redis.Addrs).Int("db", cfg.Redis.DB).Msg("redis session store connected")
		return redis.NewSessionStore(client), func() { _ = client.Close() }, nil
	default:
		sessions := memory.NewSessionStore()
		janitorCtx, cancel := context.WithCancel(ctx)
		go sessions.Run(janitorCtx, cfg.Session.CheckPeriod)
		return sessions, cancel, nil
	}
}
