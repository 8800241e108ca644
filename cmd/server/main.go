package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shopswift-be/internal/api"
	"shopswift-be/internal/cart"
	"shopswift-be/internal/catalog"
	"shopswift-be/internal/checkout"
	"shopswift-be/internal/compare"
	"shopswift-be/internal/config"
	"shopswift-be/internal/db"
	"shopswift-be/internal/delivery"
	"shopswift-be/internal/home"
	"shopswift-be/internal/logger"
	"shopswift-be/internal/metrics"
	"shopswift-be/internal/middleware"
	"shopswift-be/internal/order"
	"shopswift-be/internal/payment"
	"shopswift-be/internal/search"
	"shopswift-be/internal/session"
	"shopswift-be/internal/storage"
	"shopswift-be/internal/user"
	"shopswift-be/internal/wishlist"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Swappable in tests.
var (
	openDBFunc      = db.NewDatabase
	startServerFunc = func(srv *http.Server) error { return srv.ListenAndServe() }
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	if cfg.LogLevel != "" {
		if err := logger.SetLevel(cfg.LogLevel); err != nil {
			logger.L().Fatal("bad LOG_LEVEL", zap.Error(err))
		}
	}

	if err := run(cfg); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config) error {
	log := logger.L()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	router, err := newServer(ctx, cfg, store)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("storefront API listening",
			zap.String("addr", srv.Addr),
			zap.String("storage", cfg.StorageDriver),
		)
		errCh <- startServerFunc(srv)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStore connects the configured key-value backend. The returned func
// releases it.
func openStore(ctx context.Context, cfg *config.Config) (storage.Store, func(), error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		database, err := openDBFunc(cfg)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewPostgresStore(database), closeDB(database), nil

	case config.DriverRedis:
		client, err := storage.OpenRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewRedisStore(client, cfg.SessionTTL), func() { _ = client.Close() }, nil

	case config.DriverMemory, "":
		return storage.NewMemoryStore(), func() {}, nil
	}

	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

func closeDB(database *sql.DB) func() {
	return func() { _ = database.Close() }
}

// newServer wires the services over store and returns the HTTP handler.
// The rate limiter's sweeper runs until ctx is done.
func newServer(ctx context.Context, cfg *config.Config, store storage.Store) (http.Handler, error) {
	log := logger.L()

	products := catalog.NewGeneratedStore(catalog.NewRand(cfg.CatalogSeed))
	log.Info("catalog generated", zap.Int("products", products.Len()), zap.Int64("seed", cfg.CatalogSeed))

	secret := cfg.SecretKey
	if secret == "" {
		secret = uuid.NewString()
		log.Warn("SECRET_KEY not set, sessions will not survive a restart")
	}
	sessions, err := session.NewManager(secret, cfg.SessionTTL)
	if err != nil {
		return nil, err
	}

	cartSvc := cart.NewService(cart.NewRepository(store), products)
	userRepo := user.NewRepository(store)
	userSvc := user.NewService(userRepo)
	orderSvc := order.NewService(userRepo)
	gateway := payment.NewSimulatedGateway(cfg.PaymentLatency, payment.Outcome(cfg.PaymentOutcome))

	h := &api.Handler{
		Catalog:     products,
		HomeSvc:     home.NewService(home.NewRepository(store), products),
		CartSvc:     cartSvc,
		WishlistSvc: wishlist.NewService(wishlist.NewRepository(store), products, cartSvc),
		CompareSvc:  compare.NewService(compare.NewRepository(store), products),
		SearchSvc:   search.NewService(store, products),
		UserSvc:     userSvc,
		OrderSvc:    orderSvc,
		CheckoutSvc: checkout.NewService(checkout.NewRepository(store), cartSvc, userSvc, orderSvc, gateway),
		DeliverySvc: delivery.NewService(store, cfg.DeliveryLatency),
		Metrics:     metrics.NewRegistry(),
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.Run(ctx)

	return api.NewRouter(h, api.RouterConfig{
		Sessions:   sessions,
		Locks:      storage.NewKeyedMutex(),
		Limiter:    limiter,
		CORSOrigin: cfg.CORSOrigin,
	}), nil
}
