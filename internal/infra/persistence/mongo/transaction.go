package mongo

import (
	"context"

	"bookstore/internal/domain/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

// transactionManager runs units of work against the database directly.
// Every repository write is a single-document update, so atomicity holds per write.
type transactionManager struct {
	factory *repositoryFactory
}

type repositoryFactory struct {
	accounts repository.AccountRepository
	books    repository.BookRepository
}

func (f *repositoryFactory) AccountRepo() repository.AccountRepository {
	return f.accounts
}

func (f *repositoryFactory) BookRepo() repository.BookRepository {
	return f.books
}

// NewTransactionManager is the constructor for the MongoDB transaction manager.
func NewTransactionManager(db *mongo.Database) repository.TransactionManager {
	return &transactionManager{factory: &repositoryFactory{
		accounts: NewAccountRepository(db),
		books:    NewBookRepository(db),
	}}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(tm.factory)
}
