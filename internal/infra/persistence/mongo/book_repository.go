package mongo

import (
	"context"
	"regexp"
	"time"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type bookRepository struct {
	db *mongo.Database
}

// NewBookRepository is the constructor for the MongoDB book repository.
func NewBookRepository(db *mongo.Database) repository.BookRepository {
	return &bookRepository{db: db}
}

func (repo *bookRepository) books() *mongo.Collection {
	return repo.db.Collection(booksCollection)
}

func (repo *bookRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	books, err := findBooks(ctx, repo.db, bson.M{"_id": id.String()}, options.Find().SetLimit(1))
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, repository.ErrBookNotFound
	}

	return books[0], nil
}

func (repo *bookRepository) List(ctx context.Context, filter entity.BookFilter) ([]*entity.Book, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(filter.Offset))
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	return findBooks(ctx, repo.db, bookListFilter(filter), opts)
}

func (repo *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	now := time.Now().UTC()
	if book.CreatedAt.IsZero() {
		book.CreatedAt = now
	}
	book.UpdatedAt = now

	if _, err := repo.books().InsertOne(ctx, toBookDocument(book)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create book")
	}

	return nil
}

func (repo *bookRepository) Update(ctx context.Context, book *entity.Book) error {
	book.UpdatedAt = time.Now().UTC()

	result, err := repo.books().UpdateOne(ctx, bson.M{"_id": book.ID.String()}, bson.M{"$set": bson.M{
		"title":          book.Title,
		"description":    book.Description,
		"author":         book.Author,
		"isbn":           book.ISBN,
		"genre":          book.Genre,
		"price":          book.Price,
		"stock_quantity": book.StockQuantity,
		"updated_at":     book.UpdatedAt,
	}})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update book")
	}
	if result.MatchedCount == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

func (repo *bookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.books().DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete book")
	}
	if result.DeletedCount == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

// bookListFilter matches each non-empty field as a case-insensitive literal substring.
func bookListFilter(filter entity.BookFilter) bson.M {
	query := bson.M{}
	for field, value := range map[string]string{
		"title":  filter.Title,
		"author": filter.Author,
		"genre":  filter.Genre,
	} {
		if value == "" {
			continue
		}
		query[field] = primitive.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"}
	}

	return query
}

// findBooks runs a books query and fills in each owner's email.
func findBooks(ctx context.Context, db *mongo.Database, filter bson.M, opts *options.FindOptions) ([]*entity.Book, error) {
	var findOpts []*options.FindOptions
	if opts != nil {
		findOpts = append(findOpts, opts)
	}

	cursor, err := db.Collection(booksCollection).Find(ctx, filter, findOpts...)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query books")
	}

	var docs []bookDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode books")
	}

	emails, err := ownerEmails(ctx, db, docs)
	if err != nil {
		return nil, err
	}

	books := make([]*entity.Book, 0, len(docs))
	for i := range docs {
		book, err := docs[i].toEntity(emails[docs[i].OwnerID])
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode book")
		}
		books = append(books, book)
	}

	return books, nil
}

func ownerEmails(ctx context.Context, db *mongo.Database, docs []bookDocument) (map[string]string, error) {
	emails := make(map[string]string)
	if len(docs) == 0 {
		return emails, nil
	}

	ownerIDs := make([]string, 0, len(docs))
	for i := range docs {
		if _, seen := emails[docs[i].OwnerID]; !seen {
			emails[docs[i].OwnerID] = ""
			ownerIDs = append(ownerIDs, docs[i].OwnerID)
		}
	}

	cursor, err := db.Collection(accountsCollection).Find(ctx,
		bson.M{"_id": bson.M{"$in": ownerIDs}},
		options.Find().SetProjection(bson.M{"email": 1}),
	)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query book owners")
	}

	var owners []struct {
		ID    string `bson:"_id"`
		Email string `bson:"email"`
	}
	if err := cursor.All(ctx, &owners); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode book owners")
	}
	for _, owner := range owners {
		emails[owner.ID] = owner.Email
	}

	return emails, nil
}
