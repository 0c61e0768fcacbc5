// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal packages.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"passgate/internal/audit"
	"passgate/internal/credstore"
	"passgate/internal/directory"
	internalhttp "passgate/internal/http"
	"passgate/internal/legacy"
	"passgate/internal/password"
	"passgate/internal/password/adapters"
	"passgate/internal/password/generator"
	"passgate/internal/password/handler"
	"passgate/internal/password/metrics"
	"passgate/internal/password/resettoken"
	"passgate/internal/platform/config"
	"passgate/internal/platform/httpserver"
	"passgate/internal/platform/logger"
	platformredis "passgate/internal/platform/redis"
	id "passgate/pkg/domain"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	creds, credsCleanup, err := buildCredStore(ctx, cfg)
	if err != nil {
		log.Error("credential store init failed", "error", err)
		os.Exit(1)
	}
	defer credsCleanup()

	tokens, tokensCleanup, err := buildTokenStore(cfg)
	if err != nil {
		log.Error("reset token store init failed", "error", err)
		os.Exit(1)
	}
	defer tokensCleanup()

	minter := resettoken.NewMinter(cfg.ResetTokenSigningKey, cfg.ResetTokenTTL)
	modern := adapters.NewModernAdapter(creds, tokens, minter)
	selector := adapters.NewSelector(modern, cfg.MinPasswordLength, cfg.RequireNonAlphanumeric)

	engine, err := password.NewEngine(generator.Generate, password.WithEngineLogger(log))
	if err != nil {
		log.Error("engine init failed", "error", err)
		os.Exit(1)
	}

	svc, err := password.NewService(selector, engine,
		password.WithLogger(log),
		password.WithMetrics(metrics.New()),
		password.WithAuditPublisher(audit.NewPublisher(audit.NewInMemoryStore())),
	)
	if err != nil {
		log.Error("service init failed", "error", err)
		os.Exit(1)
	}

	dir := directory.NewMemoryDirectory()
	if cfg.PostgresURL == "" {
		seedDev(ctx, dir, creds, log)
	}

	router := internalhttp.NewRouter(handler.New(svc, dir, log))
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting passgate", "addr", cfg.Addr)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}

func buildCredStore(ctx context.Context, cfg config.Server) (credstore.Store, func(), error) {
	if cfg.PostgresURL == "" {
		return credstore.NewInMemoryStore(), func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		return nil, nil, err
	}
	store := credstore.NewPostgresStore(pool)
	if err := store.Migrate(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return store, pool.Close, nil
}

func buildTokenStore(cfg config.Server) (resettoken.Store, func(), error) {
	client, err := platformredis.New(cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	if client == nil {
		return resettoken.NewInMemoryStore(), func() {}, nil
	}
	return resettoken.NewRedisStore(client), func() { _ = client.Close() }, nil
}

// seedDev registers one modern and one legacy account so the endpoint is
// exercisable out of the box without a database.
func seedDev(ctx context.Context, dir *directory.MemoryDirectory, creds credstore.Store, log *slog.Logger) {
	modernID := id.NewUserID()
	if err := creds.Set(ctx, modernID, "password1!"); err != nil {
		log.Error("seed modern account failed", "error", err)
		return
	}
	dir.Add(directory.Entry{
		Identity: password.Identity{ID: modernID, Username: "dev-modern"},
		Backend:  password.BackendConfig{Kind: password.BackendModern, AccountAwareHashing: true},
	})

	provider := legacy.NewMemoryProvider(legacy.Settings{
		EnablePasswordReset: true,
		MinPasswordLength:   8,
	})
	provider.AddAccount("dev-legacy", "password1!", "", "")
	legacyID := id.NewUserID()
	dir.Add(directory.Entry{
		Identity: password.Identity{ID: legacyID, Username: "dev-legacy"},
		Backend:  password.BackendConfig{Kind: password.BackendLegacy, Legacy: provider},
	})

	log.Info("seeded dev accounts", "modern_user_id", modernID, "legacy_user_id", legacyID)
}
