package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/api-sage/swift-payment-portal/src/internal/adapter/repository/memory"
	"github.com/api-sage/swift-payment-portal/src/internal/adapter/repository/postgres"
	"github.com/api-sage/swift-payment-portal/src/internal/config"
	"github.com/api-sage/swift-payment-portal/src/internal/domain"
	"github.com/api-sage/swift-payment-portal/src/internal/logger"
)

// Storage groups the repositories of one backend. DB is nil for the memory
// backend.
type Storage struct {
	Payments   domain.PaymentRepository
	Employees  domain.EmployeeRepository
	Customers  domain.CustomerRepository
	Transactor domain.Transactor
	DB         *sql.DB
}

func (s Storage) Close() {
	if s.DB == nil {
		return
	}
	if err := s.DB.Close(); err != nil {
		logger.Error("close database", err, nil)
	}
}

// OpenStorage connects the configured backend. With migrate set, pending
// Postgres migrations are applied before the repositories are returned.
func OpenStorage(ctx context.Context, cfg config.Config, migrate bool) (Storage, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		logger.Info("using in-memory storage", nil)
		store := memory.NewStore()
		return Storage{
			Payments:   memory.NewPaymentRepository(store),
			Employees:  memory.NewEmployeeRepository(store),
			Customers:  memory.NewCustomerRepository(store),
			Transactor: memory.NewTransactor(store),
		}, nil
	case config.BackendPostgres:
		db, err := postgres.Open(ctx, cfg.DatabaseDSN, postgres.DefaultPoolConfig())
		if err != nil {
			return Storage{}, fmt.Errorf("open postgres: %w", err)
		}
		if migrate {
			if _, err := postgres.RunMigrations(ctx, db, cfg.MigrationsDir); err != nil {
				_ = db.Close()
				return Storage{}, fmt.Errorf("run migrations: %w", err)
			}
		}
		return Storage{
			Payments:   postgres.NewPaymentRepository(db),
			Employees:  postgres.NewEmployeeRepository(db),
			Customers:  postgres.NewCustomerRepository(db),
			Transactor: postgres.NewTransactor(db),
			DB:         db,
		}, nil
	default:
		return Storage{}, fmt.Errorf("unsupported storage backend %q", cfg.StorageBackend)
	}
}
