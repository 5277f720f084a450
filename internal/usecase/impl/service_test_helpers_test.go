package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bookstore/internal/domain/repository"
	mockRepo "bookstore/internal/mocks/repository"
	mockSvc "bookstore/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTransaction makes txManager run the unit of work against a mock factory
// that hands out the given repositories.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, accounts repository.AccountRepository, books repository.BookRepository) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	if accounts != nil {
		factory.EXPECT().AccountRepo().Return(accounts).Maybe()
	}
	if books != nil {
		factory.EXPECT().BookRepo().Return(books).Maybe()
	}

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

// newSilentPublisher accepts any event.
func newSilentPublisher(t *testing.T) *mockSvc.MockEventPublisher {
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishAccountEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	return publisher
}
