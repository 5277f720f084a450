package postgres

import (
	"context"
	"strings"
	"time"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bookRepository implements repository.BookRepository using GORM.
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository is the constructor for bookRepository.
func NewBookRepository(db *gorm.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

// withOwner selects books joined with their owner's email.
func (repo *bookRepository) withOwner(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Select("books.*, accounts.email AS owner_email").
		Joins("LEFT JOIN accounts ON accounts.id = books.owner_id")
}

func (repo *bookRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	var row model.BookWithOwner
	if err := repo.withOwner(ctx).Where("books.id = ?", id).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find book by id")
	}

	return toBookDomain(&row), nil
}

func (repo *bookRepository) List(ctx context.Context, filter entity.BookFilter) ([]*entity.Book, error) {
	query := repo.withOwner(ctx)
	for column, value := range map[string]string{
		"books.title":  filter.Title,
		"books.author": filter.Author,
		"books.genre":  filter.Genre,
	} {
		if value == "" {
			continue
		}
		query = query.Where("LOWER("+column+") LIKE ? ESCAPE '\\'", "%"+escapeLike(strings.ToLower(value))+"%")
	}

	var rows []model.BookWithOwner
	err := query.
		Order("books.created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list books")
	}

	books := make([]*entity.Book, 0, len(rows))
	for i := range rows {
		books = append(books, toBookDomain(&rows[i]))
	}

	return books, nil
}

func (repo *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	m := fromBookDomain(book)
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create book")
	}

	book.CreatedAt = m.CreatedAt
	book.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *bookRepository) Update(ctx context.Context, book *entity.Book) error {
	if book.UpdatedAt.IsZero() {
		book.UpdatedAt = time.Now()
	}
	m := fromBookDomain(book)
	result := repo.db.WithContext(ctx).Model(&model.BookModel{}).
		Where("id = ?", book.ID).
		Select("title", "description", "author", "isbn", "genre", "price", "stock_quantity", "updated_at").
		Updates(m)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update book")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

func (repo *bookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BookModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete book")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}
