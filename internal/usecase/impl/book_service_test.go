package impl

import (
	"context"
	"math"
	"testing"

	"bookstore/config"
	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	mockRepo "bookstore/internal/mocks/repository"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookServiceFixtures struct {
	service     usecase.BookUsecase
	txManager   *mockRepo.MockTransactionManager
	bookRepo    *mockRepo.MockBookRepository
	accountRepo *mockRepo.MockAccountRepository
}

func createTestBookService(t *testing.T, pageSize int) bookServiceFixtures {
	fx := bookServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		bookRepo:    mockRepo.NewMockBookRepository(t),
		accountRepo: mockRepo.NewMockAccountRepository(t),
	}
	fx.service = NewBookService(BookServiceParams{
		TxManager: fx.txManager,
		BookRepo:  fx.bookRepo,
		Config:    &config.Config{Catalog: &config.CatalogConfig{PageSize: pageSize}},
		Logger:    newDiscardLogger(),
	})

	return fx
}

func TestBookService_ListBooks_Paging(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		wantOffset int
	}{
		{name: "zero page is first", page: 0, wantOffset: 0},
		{name: "negative page is first", page: -3, wantOffset: 0},
		{name: "first page", page: 1, wantOffset: 0},
		{name: "third page", page: 3, wantOffset: 10},
		{name: "last page before offset overflow", page: math.MaxInt/5 + 1, wantOffset: math.MaxInt / 5 * 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestBookService(t, 5)
			ctx := context.Background()

			fx.bookRepo.EXPECT().
				List(ctx, entity.BookFilter{Title: "dune", Offset: tt.wantOffset, Limit: 5}).
				Return([]*entity.Book{}, nil)

			_, err := fx.service.ListBooks(ctx, &usecase.ListBooksInput{Page: tt.page, Title: "dune"})
			assert.NoError(t, err)
		})
	}
}

func TestBookService_ListBooks_HugePageIsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		pageSize int
		page     int
	}{
		{name: "offset just past int range", pageSize: 5, page: math.MaxInt/5 + 2},
		{name: "max int page", pageSize: 10, page: math.MaxInt},
		{name: "max int64 over five", pageSize: 10, page: math.MaxInt64 / 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestBookService(t, tt.pageSize)

			books, err := fx.service.ListBooks(context.Background(), &usecase.ListBooksInput{Page: tt.page})

			require.NoError(t, err)
			assert.Empty(t, books)
			fx.bookRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
		})
	}
}

func TestBookService_GetBook_NotFound(t *testing.T) {
	fx := createTestBookService(t, 0)
	ctx := context.Background()
	bookID := uuid.New()

	fx.bookRepo.EXPECT().FindByID(ctx, bookID).Return(nil, repository.ErrBookNotFound)

	_, err := fx.service.GetBook(ctx, bookID)

	assert.ErrorIs(t, err, domainerrors.ErrBookNotFound)
}

func TestBookService_CreateBook(t *testing.T) {
	fx := createTestBookService(t, 0)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.bookRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(b *entity.Book) bool {
			return b.OwnerID == ownerID && b.Title == "Dune" && b.ID != uuid.Nil
		})).
		Return(nil)
	fx.bookRepo.EXPECT().
		FindByID(ctx, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*entity.Book, error) {
			return &entity.Book{ID: id, Title: "Dune", OwnerID: ownerID, OwnerEmail: "owner@example.com"}, nil
		})

	book, err := fx.service.CreateBook(ctx, ownerID, &usecase.CreateBookInput{Title: "Dune", Description: "Spice"})

	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", book.OwnerEmail)
}

func TestBookService_UpdateBook(t *testing.T) {
	ownerID, bookID := uuid.New(), uuid.New()

	t.Run("not the owner", func(t *testing.T) {
		fx := createTestBookService(t, 0)
		ctx := context.Background()
		title := "New"

		expectTransaction(t, fx.txManager, nil, fx.bookRepo)
		fx.bookRepo.EXPECT().FindByID(ctx, bookID).Return(&entity.Book{ID: bookID, OwnerID: uuid.New()}, nil)

		_, err := fx.service.UpdateBook(ctx, ownerID, bookID, &usecase.UpdateBookInput{Title: &title})

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("partial update", func(t *testing.T) {
		fx := createTestBookService(t, 0)
		ctx := context.Background()
		price := 12.5

		expectTransaction(t, fx.txManager, nil, fx.bookRepo)
		fx.bookRepo.EXPECT().FindByID(ctx, bookID).Return(&entity.Book{ID: bookID, OwnerID: ownerID, Title: "Old", Price: 1}, nil)
		fx.bookRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(b *entity.Book) bool {
				return b.Title == "Old" && b.Price == 12.5
			})).
			Return(nil)

		book, err := fx.service.UpdateBook(ctx, ownerID, bookID, &usecase.UpdateBookInput{Price: &price})

		require.NoError(t, err)
		assert.InDelta(t, 12.5, book.Price, 0.0001)
	})
}

func TestBookService_DeleteBook(t *testing.T) {
	ownerID, bookID := uuid.New(), uuid.New()

	t.Run("not found", func(t *testing.T) {
		fx := createTestBookService(t, 0)
		ctx := context.Background()

		expectTransaction(t, fx.txManager, fx.accountRepo, fx.bookRepo)
		fx.bookRepo.EXPECT().FindByID(ctx, bookID).Return(nil, repository.ErrBookNotFound)

		assert.ErrorIs(t, fx.service.DeleteBook(ctx, ownerID, bookID), domainerrors.ErrBookNotFound)
	})

	t.Run("removes wishlist references", func(t *testing.T) {
		fx := createTestBookService(t, 0)
		ctx := context.Background()

		expectTransaction(t, fx.txManager, fx.accountRepo, fx.bookRepo)
		fx.bookRepo.EXPECT().FindByID(ctx, bookID).Return(&entity.Book{ID: bookID, OwnerID: ownerID}, nil)
		fx.accountRepo.EXPECT().RemoveBookFromWishlists(ctx, bookID).Return(nil)
		fx.bookRepo.EXPECT().Delete(ctx, bookID).Return(nil)

		assert.NoError(t, fx.service.DeleteBook(ctx, ownerID, bookID))
	})
}
