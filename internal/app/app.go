package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Areeb006/FAJR/internal/admin"
	"github.com/Areeb006/FAJR/internal/api"
	"github.com/Areeb006/FAJR/internal/cart"
	"github.com/Areeb006/FAJR/internal/checkout"
	"github.com/Areeb006/FAJR/internal/config"
	"github.com/Areeb006/FAJR/internal/listing"
	"github.com/Areeb006/FAJR/internal/notify"
	"github.com/Areeb006/FAJR/internal/pricing"
	"github.com/Areeb006/FAJR/internal/storage"
	"github.com/Areeb006/FAJR/internal/storage/file"
	"github.com/Areeb006/FAJR/internal/storage/memory"
	redisstore "github.com/Areeb006/FAJR/internal/storage/redis"
	"github.com/Areeb006/FAJR/internal/storefront"
	"github.com/Areeb006/FAJR/internal/view"
	"github.com/Areeb006/FAJR/pkg/httpclient"
	"github.com/Areeb006/FAJR/pkg/tracing"
)

// App wires together all dependencies of the storefront client.
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	rdb     *redis.Client
	store   storage.Store
	breaker *httpclient.CircuitBreakerClient

	shutdownTracing func(context.Context) error

	API      *api.Client
	Session  *api.Session
	Cart     *cart.Store
	Checkout *checkout.Service
	Pricing  *pricing.Calculator
	Renderer *view.Renderer
	Notifier notify.Notifier

	CartPage *storefront.CartPage
	Catalog  *storefront.Catalog
	Account  *storefront.Account
	Admin    *admin.Dashboard
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger, notifier notify.Notifier) (*App, error) {
	initCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	base, rdb, err := openStore(initCtx, cfg, logger)
	if err != nil {
		return nil, err
	}
	store := storage.Namespaced(base, cfg.StorageProfile)

	session, err := api.NewSession(initCtx, store, cfg.APIURL)
	if err != nil {
		closeRedis(rdb, logger)
		return nil, err
	}

	traceCfg := tracing.DefaultConfig("storefront")
	traceCfg.Environment = cfg.Environment
	traceCfg.Endpoint = cfg.OTLPEndpoint
	traceCfg.SampleRate = cfg.TracingSampleRate
	traceCfg.Enabled = cfg.TracingEnabled
	shutdownTracing, err := tracing.Init(initCtx, traceCfg)
	if err != nil {
		closeRedis(rdb, logger)
		return nil, err
	}

	httpCfg := httpclient.DefaultConfig()
	httpCfg.Timeout = cfg.HTTPTimeout
	httpCfg.MaxRetries = cfg.HTTPMaxRetries
	httpCfg.Jar = session.Jar()

	cbCfg := httpclient.DefaultCircuitBreakerConfig("storefront-api")
	cbCfg.Timeout = cfg.CBTimeout
	cbCfg.MinRequests = cfg.CBMinRequests
	cbCfg.FailureRatio = cfg.CBFailureRatio
	breaker := httpclient.NewCircuitBreakerClient(httpclient.New(httpCfg), cbCfg, logger)

	// Build the dependency graph.
	client := api.New(cfg.APIURL, breaker, session, logger)
	cartStore := cart.NewStore(store, logger)
	checkoutSvc := checkout.NewService(cartStore, store, cfg.CurrencySymbol, logger)
	var tax pricing.TaxStrategy = pricing.NoTax{}
	if cfg.TaxRateBPS > 0 {
		tax = pricing.FlatRate{BasisPoints: cfg.TaxRateBPS}
	}
	calc := pricing.NewCalculator(tax)

	pageCfg := listing.PageConfig{Debounce: cfg.SearchDebounce, Sequencer: listing.NewSequencer()}

	a := &App{
		cfg:      cfg,
		logger:   logger,
		rdb:      rdb,
		store:    store,
		breaker:  breaker,

		shutdownTracing: shutdownTracing,

		API:      client,
		Session:  session,
		Cart:     cartStore,
		Checkout: checkoutSvc,
		Pricing:  calc,
		Renderer: view.NewRenderer(view.DefaultStyles(), cfg.CurrencySymbol),
		Notifier: notifier,
		CartPage: storefront.NewCartPage(cartStore, checkoutSvc, calc, notifier, logger),
		Catalog:  storefront.NewCatalog(client, cartStore, notifier, pageCfg, logger),
		Account:  storefront.NewAccount(client, notifier, logger),
		Admin:    admin.NewDashboard(client, notifier, pageCfg, logger),
	}

	logger.Debug("application initialized",
		slog.String("environment", cfg.Environment),
		slog.String("api_url", cfg.APIURL),
		slog.String("storage_backend", cfg.StorageBackend),
		slog.String("profile", cfg.StorageProfile),
		slog.Bool("tracing", cfg.TracingEnabled),
	)
	return a, nil
}

// Store is the profile-scoped local storage.
func (a *App) Store() storage.Store { return a.store }

// Config returns the configuration the app was built with.
func (a *App) Config() *config.Config { return a.cfg }

// Close stops pending searches, flushes buffered spans and releases the
// storage backend.
func (a *App) Close() error {
	a.Catalog.Close()
	a.Admin.Close()

	var errs []error
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.shutdownTracing(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown tracing: %w", err))
	}
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	return errors.Join(errs...)
}

func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.Store, *redis.Client, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return memory.New(), nil, nil
	case config.BackendFile:
		s, err := file.New(cfg.StoragePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open file storage: %w", err)
		}
		return s, nil, nil
	case config.BackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		s := redisstore.New(rdb, cfg.StorageTTLDuration())
		if err := s.Ping(ctx); err != nil {
			closeRedis(rdb, logger)
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}
		logger.Debug("connected to Redis",
			slog.String("addr", cfg.RedisAddr),
			slog.Int("db", cfg.RedisDB),
		)
		return s, rdb, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

func closeRedis(rdb *redis.Client, logger *slog.Logger) {
	if rdb == nil {
		return
	}
	if err := rdb.Close(); err != nil {
		logger.Error("redis close error", slog.String("error", err.Error()))
	}
}
