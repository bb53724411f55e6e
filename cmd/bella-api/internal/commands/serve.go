package commands

import (
	"context"
	"fmt"

	"github.com/bella-carwash/bella-api/internal/api/rest"
	"github.com/bella-carwash/bella-api/internal/infrastructure/metrics"
	"github.com/bella-carwash/bella-api/internal/infrastructure/ratelimit"
	"github.com/bella-carwash/bella-api/internal/pkg/config"
	"github.com/bella-carwash/bella-api/internal/pkg/logger"

	"github.com/spf13/cobra"
)

func newServeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API until SIGINT or SIGTERM",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), *configPath)
		},
	}
}

func runServe(ctx context.Context, configPath string) error {
	rt, err := bootstrap(configPath)
	if err != nil {
		return err
	}

	m := metrics.New()
	services, tokens, err := rt.services(m)
	if err != nil {
		rt.close()
		return err
	}

	limiter, closeLimiter, err := newLimiter(ctx, rt.cfg.RateLimit, rt.log)
	if err != nil {
		rt.close()
		return err
	}
	defer closeLimiter()

	router := rest.NewRouter(rest.Deps{
		Server:   rt.cfg.Server,
		Services: services,
		Tokens:   tokens,
		Limiter:  limiter,
		Metrics:  m,
		Logger:   rt.log,
	})

	// Run closes the database once the listener has drained.
	return rest.NewServer(rt.cfg.Server, router, rt.db, rt.log).Run(ctx)
}

// newLimiter picks the shared Redis store when REDIS_URL is set and the
// in-process store otherwise.
func newLimiter(ctx context.Context, settings config.RateLimitSettings, log logger.Logger) (ratelimit.Store, func(), error) {
	if settings.RedisURL != "" {
		store, err := ratelimit.NewRedisStore(settings.RedisURL, settings.MaxRequests, settings.Window())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create redis rate limit store: %w", err)
		}
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, nil, fmt.Errorf("failed to reach redis: %w", err)
		}
		log.Info("Rate limiting with shared redis store")
		return store, func() { _ = store.Close() }, nil
	}

	store := ratelimit.NewMemoryStore(settings.MaxRequests, settings.Window())
	go store.Run(ctx, settings.Window())
	log.Info("Rate limiting with in-memory store")
	return store, func() {}, nil
}
