package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	rediscache "github.com/api-sage/swift-payment-portal/src/internal/adapter/cache/redis"
	"github.com/api-sage/swift-payment-portal/src/internal/adapter/http/controller"
	"github.com/api-sage/swift-payment-portal/src/internal/adapter/http/middleware"
	"github.com/api-sage/swift-payment-portal/src/internal/adapter/http/router"
	"github.com/api-sage/swift-payment-portal/src/internal/adapter/identity"
	"github.com/api-sage/swift-payment-portal/src/internal/adapter/repository/memory"
	"github.com/api-sage/swift-payment-portal/src/internal/bootstrap"
	"github.com/api-sage/swift-payment-portal/src/internal/config"
	"github.com/api-sage/swift-payment-portal/src/internal/logger"
	"github.com/api-sage/swift-payment-portal/src/internal/usecase/services"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		logger.Error("http server stopped", err, nil)
		os.Exit(1)
	}
	logger.Info("http server stopped", nil)
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	startupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	storage, err := bootstrap.OpenStorage(startupCtx, cfg, true)
	cancel()
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer storage.Close()

	revocations, closeRevocations, err := revocationList(cfg)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer closeRevocations()

	passwords := identity.NewBcryptVerifier(identity.DefaultCost)
	assertions := identity.NewJWTService(cfg.JWTSecret, revocations)

	authService := services.NewAuthService(storage.Customers, storage.Employees, passwords, assertions, services.TokenTTLs{
		Customer: cfg.CustomerTokenTTL,
		Employee: cfg.EmployeeTokenTTL,
	})
	paymentService := services.NewPaymentService(storage.Payments, storage.Employees, storage.Transactor)
	reportService := services.NewReportService(storage.Payments, storage.Employees)
	bankService := services.NewBankService(memory.NewBankDirectory())

	handler := router.New(
		middleware.BearerAuth(authService),
		controller.NewAuthController(authService),
		controller.NewPaymentController(paymentService),
		controller.NewEmployeeController(paymentService, reportService),
		controller.NewBankController(bankService),
	)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("http server listening", logger.Fields{"addr": cfg.Addr, "backend": cfg.StorageBackend})
	return serve(ctx, srv, cfg.ShutdownTimeout)
}

// serve runs srv until ctx is done or the listener fails, then drains
// in-flight requests for at most shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on %s: %w", srv.Addr, err)
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("http server shutting down", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return group.Wait()
}

func revocationList(cfg config.Config) (identity.RevocationList, func(), error) {
	if cfg.RedisAddr == "" {
		logger.Info("using in-memory token revocation list", nil)
		return identity.NewMemoryRevocationList(), func() {}, nil
	}

	client, err := rediscache.NewRedisConnection(rediscache.ConnectionInfo{
		Addr:        cfg.RedisAddr,
		Password:    cfg.RedisPassword,
		DB:          cfg.RedisDB,
		MaxRetries:  3,
		DialTimeout: 5 * time.Second,
		Timeout:     3 * time.Second,
	})
	if err != nil {
		return nil, nil, err
	}
	logger.Info("using redis token revocation list", logger.Fields{"addr": cfg.RedisAddr})
	return rediscache.NewRevocationList(client, cfg.RedisPrefix), func() { rediscache.Close(client) }, nil
}
