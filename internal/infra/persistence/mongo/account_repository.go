package mongo

import (
	"context"
	"time"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type accountRepository struct {
	db *mongo.Database
}

// NewAccountRepository is the constructor for the MongoDB account repository.
func NewAccountRepository(db *mongo.Database) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (repo *accountRepository) accounts() *mongo.Collection {
	return repo.db.Collection(accountsCollection)
}

func (repo *accountRepository) findOne(ctx context.Context, filter bson.M) (*entity.Account, error) {
	var doc accountDocument
	if err := repo.accounts().FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	account, err := doc.toEntity()
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode account")
	}

	return account, nil
}

func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.findOne(ctx, bson.M{"_id": id.String()})
}

func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.findOne(ctx, bson.M{"email": email})
}

func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	now := time.Now().UTC()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	account.UpdatedAt = now

	if _, err := repo.accounts().InsertOne(ctx, toAccountDocument(account)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrEmailInUse.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	return nil
}

// updateByID applies update to a single account and reports a missing account.
func (repo *accountRepository) updateByID(ctx context.Context, id uuid.UUID, update bson.M, details string) error {
	result, err := repo.accounts().UpdateOne(ctx, bson.M{"_id": id.String()}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrEmailInUse.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, details)
	}
	if result.MatchedCount == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func (repo *accountRepository) UpdateProfile(ctx context.Context, account *entity.Account) error {
	return repo.updateByID(ctx, account.ID, bson.M{"$set": bson.M{
		"email":      account.Email,
		"username":   account.Username,
		"updated_at": time.Now().UTC(),
	}}, "failed to update account profile")
}

func (repo *accountRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return repo.updateByID(ctx, id, bson.M{"$set": bson.M{
		"password_hash": passwordHash,
		"updated_at":    time.Now().UTC(),
	}}, "failed to update password")
}

func (repo *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.accounts().DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete account")
	}
	if result.DeletedCount == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func (repo *accountRepository) StoreCode(ctx context.Context, id uuid.UUID, kind entity.CodeKind, code entity.IssuedCode) error {
	return repo.updateByID(ctx, id, bson.M{"$set": bson.M{
		codeField(kind): codeDocument{Hash: code.Hash, IssuedAt: code.IssuedAt},
		"updated_at":    time.Now().UTC(),
	}}, "failed to store code")
}

func (repo *accountRepository) DiscardCode(ctx context.Context, id uuid.UUID, kind entity.CodeKind, codeHash string) error {
	field := codeField(kind)
	_, err := repo.accounts().UpdateOne(ctx,
		bson.M{"_id": id.String(), field + ".hash": codeHash},
		bson.M{"$unset": bson.M{field: ""}},
	)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to discard code")
	}

	return nil
}

// consume clears the code slot only while it still holds codeHash, applying set in the same write.
func (repo *accountRepository) consume(ctx context.Context, id uuid.UUID, kind entity.CodeKind, codeHash string, set bson.M) (bool, error) {
	field := codeField(kind)
	set["updated_at"] = time.Now().UTC()

	result, err := repo.accounts().UpdateOne(ctx,
		bson.M{"_id": id.String(), field + ".hash": codeHash},
		bson.M{"$unset": bson.M{field: ""}, "$set": set},
	)
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to consume code")
	}

	return result.ModifiedCount == 1, nil
}

func (repo *accountRepository) ConsumeVerificationCode(ctx context.Context, id uuid.UUID, codeHash string) (bool, error) {
	return repo.consume(ctx, id, entity.CodeKindVerification, codeHash, bson.M{"verified": true})
}

func (repo *accountRepository) ConsumeForgotPasswordCode(ctx context.Context, id uuid.UUID, codeHash, newPasswordHash string) (bool, error) {
	return repo.consume(ctx, id, entity.CodeKindForgotPassword, codeHash, bson.M{"password_hash": newPasswordHash})
}

func (repo *accountRepository) AddToWishlist(ctx context.Context, id, bookID uuid.UUID) (bool, error) {
	result, err := repo.accounts().UpdateOne(ctx,
		bson.M{"_id": id.String()},
		bson.M{"$addToSet": bson.M{"wishlist": bookID.String()}},
	)
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to add wishlist item")
	}
	if result.MatchedCount == 0 {
		return false, repository.ErrAccountNotFound
	}

	return result.ModifiedCount == 1, nil
}

func (repo *accountRepository) RemoveFromWishlist(ctx context.Context, id, bookID uuid.UUID) (bool, error) {
	result, err := repo.accounts().UpdateOne(ctx,
		bson.M{"_id": id.String()},
		bson.M{"$pull": bson.M{"wishlist": bookID.String()}},
	)
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to remove wishlist item")
	}

	return result.ModifiedCount == 1, nil
}

// ListWishlist resolves the wishlist ids into books, keeping wishlist order.
// A missing account has an empty wishlist.
func (repo *accountRepository) ListWishlist(ctx context.Context, id uuid.UUID) ([]*entity.Book, error) {
	account, err := repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return []*entity.Book{}, nil
	}
	if err != nil {
		return nil, err
	}
	if len(account.Wishlist) == 0 {
		return []*entity.Book{}, nil
	}

	ids := make([]string, 0, len(account.Wishlist))
	for _, bookID := range account.Wishlist {
		ids = append(ids, bookID.String())
	}

	books, err := findBooks(ctx, repo.db, bson.M{"_id": bson.M{"$in": ids}}, nil)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*entity.Book, len(books))
	for _, book := range books {
		byID[book.ID] = book
	}

	ordered := make([]*entity.Book, 0, len(books))
	for _, bookID := range account.Wishlist {
		if book, ok := byID[bookID]; ok {
			ordered = append(ordered, book)
		}
	}

	return ordered, nil
}

func (repo *accountRepository) RemoveBookFromWishlists(ctx context.Context, bookID uuid.UUID) error {
	_, err := repo.accounts().UpdateMany(ctx,
		bson.M{"wishlist": bookID.String()},
		bson.M{"$pull": bson.M{"wishlist": bookID.String()}},
	)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove book from wishlists")
	}

	return nil
}
