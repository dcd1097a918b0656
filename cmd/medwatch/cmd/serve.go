package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/medwatch/internal/api"
	"github.com/donaldgifford/medwatch/internal/api/handlers"
	"github.com/donaldgifford/medwatch/internal/config"
	"github.com/donaldgifford/medwatch/internal/engine"
	"github.com/donaldgifford/medwatch/internal/notify"
	"github.com/donaldgifford/medwatch/internal/source"
	"github.com/donaldgifford/medwatch/internal/store"
	"github.com/donaldgifford/medwatch/internal/telemetry"
	"github.com/donaldgifford/medwatch/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var (
	migrateOnStart bool

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start the API server and the poll scheduler",
		RunE:  runServe,
	}
)

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "run database migrations before starting")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, &cfg.Telemetry, Version)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}

	pg, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pg.Close()

	if migrateOnStart {
		if err := pg.Migrate(ctx); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		log.Info("migrations complete")
	}

	ready := map[string]handlers.Pinger{"database": pg}

	var fps store.FingerprintStore = pg
	if cfg.Fingerprints.Backend == config.BackendRedis {
		rfs, err := openRedisFingerprints(ctx, &cfg.Redis)
		if err != nil {
			return err
		}
		defer rfs.Close() //nolint:errcheck // best effort on shutdown
		fps = rfs
		ready["fingerprints"] = rfs
	}

	collector, err := newCollector(&cfg.Source)
	if err != nil {
		return err
	}

	src := source.NewPagedSource(collector,
		source.WithMaxPages(cfg.Source.MaxPages),
		source.WithGPSpecialties(cfg.Engine.GPSpecialties),
		source.WithLogger(logger.Component(log, "source")),
	)

	opts := []engine.EngineOption{
		engine.WithLogger(logger.Component(log, "engine")),
		engine.WithWorkers(cfg.Engine.Workers),
		engine.WithSimilarityThreshold(cfg.Engine.SimilarityThreshold),
		engine.WithNotificationsEnabled(cfg.Engine.Notify()),
		engine.WithGPSpecialties(cfg.Engine.GPSpecialties),
	}
	if cfg.Engine.AutoBook {
		opts = append(opts, engine.WithBooker(collector))
	}
	eng := engine.NewEngine(pg, fps, src, newNotifier(&cfg.Notifications, log), opts...)

	sched, err := engine.NewScheduler(eng, cfg.Schedule.CycleInterval, cfg.Schedule.CycleTimeout,
		logger.Component(log, "scheduler"))
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}

	e := api.NewServer(log, Version, api.Deps{
		Store:        pg,
		Fingerprints: fps,
		Evaluator:    eng,
		Cycler:       eng,
		Ready:        ready,
	})
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server",
		"addr", addr,
		"version", Version,
		"fingerprints", cfg.Fingerprints.Backend,
		"cycle_interval", cfg.Schedule.CycleInterval,
	)

	serveErr := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	sched.Start()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		log.Error("server error", "error", err)
	}

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	select {
	case <-sched.Stop().Done():
	case <-shutdownCtx.Done():
		log.Warn("cycle did not stop before the shutdown timeout")
	}

	err = errors.Join(
		e.Shutdown(shutdownCtx),
		shutdownTelemetry(shutdownCtx),
	)
	if err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	log.Info("server stopped")
	return nil
}

func openRedisFingerprints(ctx context.Context, cfg *config.RedisConfig) (*store.RedisFingerprintStore, error) {
	client, err := store.NewRedisClient(ctx, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return store.NewRedisFingerprintStore(client,
		store.WithKeyPrefix(cfg.KeyPrefix),
		store.WithTTL(cfg.TTL),
	), nil
}

func newCollector(cfg *config.SourceConfig) (*source.CollectorClient, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("loading source timezone: %w", err)
	}

	opts := []source.CollectorOption{
		source.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		source.WithRateLimiter(source.NewRateLimiter(
			cfg.RateLimit.PerSecond,
			cfg.RateLimit.Burst,
			cfg.RateLimit.DailyLimit,
			source.WithLocation(loc),
		)),
	}

	switch {
	case cfg.OAuth.TokenURL != "":
		opts = append(opts, source.WithTokenProvider(source.NewOAuthTokenProvider(
			cfg.OAuth.TokenURL,
			cfg.OAuth.ClientID,
			cfg.OAuth.ClientSecret,
			source.WithScopes(cfg.OAuth.Scopes...),
			source.WithTokenHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		)))
	case cfg.Token != "":
		opts = append(opts, source.WithTokenProvider(source.StaticToken(cfg.Token)))
	}

	return source.NewCollectorClient(cfg.BaseURL, opts...), nil
}

func newNotifier(cfg *config.NotificationsConfig, log *slog.Logger) notify.Notifier {
	if !cfg.Telegram.Enabled {
		return notify.NewNoOpNotifier(logger.Component(log, "notify"))
	}
	return notify.NewTelegramNotifier(cfg.Telegram.Token, cfg.Telegram.ChatID,
		notify.WithAPIURL(cfg.Telegram.APIURL),
	)
}
