// Package app wires the storefront's dependencies together and runs the
// HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/reservecold/storefront/internal/account"
	accountpg "github.com/reservecold/storefront/internal/account/postgres"
	"github.com/reservecold/storefront/internal/avatar"
	"github.com/reservecold/storefront/internal/avatar/memstorage"
	"github.com/reservecold/storefront/internal/cart"
	"github.com/reservecold/storefront/internal/cart/redisrepo"
	"github.com/reservecold/storefront/internal/catalog"
	"github.com/reservecold/storefront/internal/checkout"
	"github.com/reservecold/storefront/internal/config"
	"github.com/reservecold/storefront/migrations"
	"github.com/reservecold/storefront/pkg/database"
	"github.com/reservecold/storefront/pkg/health"
	pkgkafka "github.com/reservecold/storefront/pkg/kafka"
	"github.com/reservecold/storefront/pkg/middleware"
	"github.com/reservecold/storefront/pkg/tracing"
)

const serviceName = "storefront"

// App holds the long-lived resources of the running application.
type App struct {
	cfg            *config.Config
	logger         *slog.Logger
	pool           *pgxpool.Pool
	redisClient    *redis.Client
	producer       *pkgkafka.Producer
	httpServer     *http.Server
	tracerShutdown func(context.Context) error
}

// NewApp creates the application, connecting to all external dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tracerShutdown, err := tracing.Init(ctx, tracing.Config{
		ServiceName:    serviceName,
		ServiceVersion: "0.1.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTELEndpoint,
		SampleRate:     cfg.OTELSampleRate,
		Enabled:        cfg.OTELEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	pgCfg := database.PostgresConfig{
		Host:            cfg.PostgresHost,
		Port:            cfg.PostgresPort,
		User:            cfg.PostgresUser,
		Password:        cfg.PostgresPass,
		DBName:          cfg.PostgresDB,
		SSLMode:         cfg.PostgresSSL,
		MaxConns:        cfg.DBMaxConns,
		MinConns:        cfg.DBMinConns,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: 30 * time.Minute,
	}
	pool, err := database.NewPostgresPool(ctx, &pgCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	logger.Info("connected to PostgreSQL",
		slog.String("host", cfg.PostgresHost),
		slog.String("database", cfg.PostgresDB),
	)
	database.RegisterPoolMetrics(pool, cfg.PostgresDB)

	if err := database.RunMigrations(ctx, pool, migrations.FS, logger); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	redisClient, err := database.NewRedisClient(ctx, database.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	logger.Info("connected to Redis", slog.String("addr", cfg.RedisAddr))

	producer := pkgkafka.NewProducer(pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers), logger)
	logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))

	// Domain services.
	productCatalog := catalog.New(catalog.Seed())
	catalogService := catalog.NewService(productCatalog, logger)

	cartRepo := redisrepo.New(redisClient, cfg.CartTTL())
	cartProducer := cart.NewProducer(producer, logger)
	cartService := cart.NewService(cartRepo, productCatalog, cartProducer, logger, cfg.CartTTL())

	checkoutProducer := checkout.NewProducer(producer, logger)
	checkoutService := checkout.NewService(cartService, checkoutProducer, logger, cfg.CheckoutDelay())

	jwtManager := account.NewJWTManager(cfg.JWTSecret, cfg.AccessExpiry(), cfg.RefreshExpiry())
	userRepo := accountpg.NewUserRepository(pool)
	refreshRepo := accountpg.NewRefreshTokenRepository(pool)
	resetRepo := accountpg.NewPasswordResetTokenRepository(pool)
	accountProducer := account.NewProducer(producer, logger)
	accountService := account.NewService(userRepo, refreshRepo, resetRepo, jwtManager, accountProducer, logger)

	avatarStorage := memstorage.New(cfg.StaticBaseURL)
	avatarService := avatar.NewService(avatarStorage, accountService, logger)

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("postgres", func(ctx context.Context) error {
		return pool.Ping(ctx)
	})
	healthHandler.Register("redis", func(ctx context.Context) error {
		return redisClient.Ping(ctx).Err()
	})
	healthHandler.Register("kafka", func(ctx context.Context) error {
		return producer.Ping(ctx)
	})

	router := newRouter(routerDeps{
		catalog:    catalog.NewHandler(catalogService, logger),
		cart:       cart.NewHandler(cartService, logger),
		checkout:   checkout.NewHandler(checkoutService, logger),
		account:    account.NewHandler(accountService, jwtManager, logger),
		avatar:     avatar.NewHandler(avatarService, jwtManager, logger),
		health:     healthHandler,
		logger:     logger,
		corsOrigin: firstOrigin(cfg.CORSAllowedOrigins),
	})

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &App{
		cfg:            cfg,
		logger:         logger,
		pool:           pool,
		redisClient:    redisClient,
		producer:       producer,
		httpServer:     httpServer,
		tracerShutdown: tracerShutdown,
	}, nil
}

type routerDeps struct {
	catalog    *catalog.Handler
	cart       *cart.Handler
	checkout   *checkout.Handler
	account    *account.Handler
	avatar     *avatar.Handler
	health     *health.Handler
	logger     *slog.Logger
	corsOrigin string
}

// newRouter builds the chi router with the shared middleware chain and all
// API routes.
func newRouter(deps routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(deps.logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.CORS(deps.corsOrigin))
	r.Use(middleware.RequestLogging(deps.logger))
	r.Use(middleware.PrometheusMetrics(serviceName))
	r.Use(middleware.Tracing(serviceName))
	r.Use(middleware.RequestLogger(deps.logger))

	r.Get("/health/live", deps.health.LivenessHandler())
	r.Get("/health/ready", deps.health.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	deps.catalog.Register(r)
	deps.cart.Register(r)
	deps.checkout.Register(r)
	deps.account.Register(r)
	deps.avatar.Register(r)

	return r
}

func firstOrigin(origins []string) string {
	if len(origins) == 0 {
		return "*"
	}
	return origins[0]
}

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server", slog.String("addr", a.httpServer.Addr))
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown stops all components in dependency order: drain HTTP, flush
// spans, close the Kafka producer, then the data stores.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	var errs []error

	httpCtx, httpCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer httpCancel()
	if err := a.httpServer.Shutdown(httpCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	if a.tracerShutdown != nil {
		tracerCtx, tracerCancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer tracerCancel()
		if err := a.tracerShutdown(tracerCtx); err != nil {
			a.logger.Error("tracer shutdown error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	if err := a.producer.Close(); err != nil {
		a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	if err := a.redisClient.Close(); err != nil {
		a.logger.Error("redis close error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}
	a.pool.Close()

	a.logger.Info("application shutdown complete")
	return errors.Join(errs...)
}
