// Package persistence selects the storage backend for the repositories.
package persistence

import (
	"log/slog"

	"bookstore/config"
	"bookstore/internal/domain/repository"
	mongostore "bookstore/internal/infra/persistence/mongo"
	"bookstore/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Result exposes the repositories of the selected backend to the container.
type Result struct {
	fx.Out

	AccountRepo repository.AccountRepository
	BookRepo    repository.BookRepository
	TxManager   repository.TransactionManager
}

// New opens the backend named by storage.driver and builds its repositories.
func New(params Params) (Result, error) {
	driver := config.StorageDriverPostgres
	if params.Config.Storage != nil && params.Config.Storage.Driver != "" {
		driver = params.Config.Storage.Driver
	}
	params.Logger.Info("Initializing storage", slog.String("driver", driver))

	switch driver {
	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Result{}, err
		}

		return Result{
			AccountRepo: postgres.NewAccountRepository(db),
			BookRepo:    postgres.NewBookRepository(db),
			TxManager:   postgres.NewTransactionManager(db),
		}, nil
	case config.StorageDriverMongo:
		db, err := mongostore.New(mongostore.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Result{}, err
		}

		return Result{
			AccountRepo: mongostore.NewAccountRepository(db),
			BookRepo:    mongostore.NewBookRepository(db),
			TxManager:   mongostore.NewTransactionManager(db),
		}, nil
	default:
		return Result{}, errors.Errorf("unsupported storage driver: %s", driver)
	}
}
