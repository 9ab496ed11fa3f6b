// Command server runs the visitor registry HTTP API.
//
//	@title						Visitor Registry API
//	@version					1.0
//	@description				Front-desk accounts and visitor check-ins.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/frontdesk/visitor-registry/internal/api"
	"github.com/frontdesk/visitor-registry/internal/api/handler"
	"github.com/frontdesk/visitor-registry/internal/core/ports"
	"github.com/frontdesk/visitor-registry/internal/core/service"
	"github.com/frontdesk/visitor-registry/internal/infrastructure/db/memory"
	"github.com/frontdesk/visitor-registry/internal/infrastructure/db/mongo"
	"github.com/frontdesk/visitor-registry/internal/infrastructure/db/postgres"
	"github.com/frontdesk/visitor-registry/internal/infrastructure/seed"
	"github.com/frontdesk/visitor-registry/internal/pkg/config"
	"github.com/frontdesk/visitor-registry/internal/pkg/token"
	"github.com/frontdesk/visitor-registry/pkg/logger"
)

// store is the part of every storage backend main depends on.
type store struct {
	users    ports.UserRepository
	visitors ports.VisitorRepository
	ping     func(context.Context) error
	close    func(context.Context) error
}

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "visitor-registry",
		Env:     cfg.Env,
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := st.close(closeCtx); err != nil {
			log.Error().Err(err).Msg("close store")
		}
	}()
	log.Info().Str("driver", cfg.Store.Driver).Msg("store ready")

	tokens := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)
	users := service.NewUserService(st.users, cfg.Auth.Roles, log)
	auth := service.NewAuthService(st.users, tokens, log)
	visitors := service.NewVisitorService(st.visitors, log)

	if cfg.Auth.SeedUsersPath != "" {
		n, err := seed.Users(ctx, cfg.Auth.SeedUsersPath, st.users, users, log)
		if err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		log.Info().Int("created", n).Str("path", cfg.Auth.SeedUsersPath).Msg("seeded users")
	}

	e := api.NewRouter(api.Deps{
		Log:        log,
		Tokens:     tokens,
		Auth:       auth,
		Users:      users,
		Visitors:   visitors,
		AuthConfig: cfg.Auth,
		Checks:     map[string]handler.CheckFunc{cfg.Store.Driver: st.ping},
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func openStore(ctx context.Context, cfg *config.Config) (*store, error) {
	switch cfg.Store.Driver {
	case config.StoreMongo:
		s, err := mongo.Open(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		return &store{users: s.Users, visitors: s.Visitors, ping: s.Ping, close: s.Close}, nil
	case config.StorePostgres:
		s, err := postgres.Open(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, err
		}
		return &store{users: s.Users, visitors: s.Visitors, ping: s.Ping, close: s.Close}, nil
	case config.StoreMemory:
		s := memory.NewStore()
		return &store{users: s.Users, visitors: s.Visitors, ping: s.Ping, close: s.Close}, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
