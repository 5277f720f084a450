package postgres

import (
	"context"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// accountRepository implements repository.AccountRepository using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (repo *accountRepository) preloaded(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Preload("Wishlist", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	})
}

// FindByID retrieves an account with its wishlist ids.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var m model.AccountModel
	if err := repo.preloaded(ctx).Where("id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return toAccountDomain(&m), nil
}

// FindByEmail retrieves an account by its normalized email.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var m model.AccountModel
	if err := repo.preloaded(ctx).Where("email = ?", email).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&m), nil
}

// Create persists a new account and copies generated timestamps back.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	m := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailInUse.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.CreatedAt = m.CreatedAt
	account.UpdatedAt = m.UpdatedAt

	return nil
}

// UpdateProfile writes the profile fields of the account.
func (repo *accountRepository) UpdateProfile(ctx context.Context, account *entity.Account) error {
	result := repo.db.WithContext(ctx).Model(&model.AccountModel{}).
		Where("id = ?", account.ID).
		Updates(map[string]any{
			"email":    account.Email,
			"username": account.Username,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrEmailInUse.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update account profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// UpdatePassword replaces the password hash.
func (repo *accountRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).Model(&model.AccountModel{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// Delete removes the wishlist rows and then the account.
func (repo *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("account_id = ?", id).Delete(&model.WishlistItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete wishlist")
	}

	result := db.Where("id = ?", id).Delete(&model.AccountModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func codeColumns(kind entity.CodeKind) (codeColumn, issuedAtColumn string, err error) {
	switch kind {
	case entity.CodeKindVerification:
		return "verification_code", "verification_code_issued_at", nil
	case entity.CodeKindForgotPassword:
		return "forgot_password_code", "forgot_password_code_issued_at", nil
	default:
		return "", "", errors.Errorf("unknown code kind: %s", kind)
	}
}

// StoreCode overwrites the slot with a new code.
func (repo *accountRepository) StoreCode(ctx context.Context, id uuid.UUID, kind entity.CodeKind, code entity.IssuedCode) error {
	codeColumn, issuedAtColumn, err := codeColumns(kind)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).Model(&model.AccountModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			codeColumn:     code.Hash,
			issuedAtColumn: code.IssuedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to store code")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// DiscardCode clears the slot if it still holds codeHash. A newer code is left alone.
func (repo *accountRepository) DiscardCode(ctx context.Context, id uuid.UUID, kind entity.CodeKind, codeHash string) error {
	codeColumn, issuedAtColumn, err := codeColumns(kind)
	if err != nil {
		return err
	}

	err = repo.db.WithContext(ctx).Model(&model.AccountModel{}).
		Where("id = ?", id).
		Where(codeColumn+" = ?", codeHash).
		Updates(map[string]any{
			codeColumn:     nil,
			issuedAtColumn: nil,
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to discard code")
	}

	return nil
}

// ConsumeVerificationCode clears the code and marks the account verified in one conditional update.
func (repo *accountRepository) ConsumeVerificationCode(ctx context.Context, id uuid.UUID, codeHash string) (bool, error) {
	result := repo.db.WithContext(ctx).Model(&model.AccountModel{}).
		Where("id = ? AND verification_code = ?", id, codeHash).
		Updates(map[string]any{
			"verification_code":           nil,
			"verification_code_issued_at": nil,
			"verified":                    true,
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume verification code")
	}

	return result.RowsAffected == 1, nil
}

// ConsumeForgotPasswordCode clears the code and sets the new password in one conditional update.
func (repo *accountRepository) ConsumeForgotPasswordCode(ctx context.Context, id uuid.UUID, codeHash, newPasswordHash string) (bool, error) {
	result := repo.db.WithContext(ctx).Model(&model.AccountModel{}).
		Where("id = ? AND forgot_password_code = ?", id, codeHash).
		Updates(map[string]any{
			"forgot_password_code":           nil,
			"forgot_password_code_issued_at": nil,
			"password_hash":                  newPasswordHash,
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume forgot password code")
	}

	return result.RowsAffected == 1, nil
}

// AddToWishlist inserts the pair unless it already exists.
func (repo *accountRepository) AddToWishlist(ctx context.Context, id, bookID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.WishlistItemModel{AccountID: id, BookID: bookID})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, repository.ErrAccountNotFound
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to add wishlist item")
	}

	return result.RowsAffected == 1, nil
}

// RemoveFromWishlist deletes the pair if present.
func (repo *accountRepository) RemoveFromWishlist(ctx context.Context, id, bookID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("account_id = ? AND book_id = ?", id, bookID).
		Delete(&model.WishlistItemModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove wishlist item")
	}

	return result.RowsAffected == 1, nil
}

// ListWishlist joins the wishlist with the books it references. Entries for deleted books are skipped.
func (repo *accountRepository) ListWishlist(ctx context.Context, id uuid.UUID) ([]*entity.Book, error) {
	var rows []model.BookWithOwner
	err := repo.db.WithContext(ctx).
		Table("account_wishlist").
		Select("books.*, accounts.email AS owner_email").
		Joins("JOIN books ON books.id = account_wishlist.book_id").
		Joins("LEFT JOIN accounts ON accounts.id = books.owner_id").
		Where("account_wishlist.account_id = ?", id).
		Order("account_wishlist.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list wishlist")
	}

	books := make([]*entity.Book, 0, len(rows))
	for i := range rows {
		books = append(books, toBookDomain(&rows[i]))
	}

	return books, nil
}

// RemoveBookFromWishlists drops the book from every account's wishlist.
func (repo *accountRepository) RemoveBookFromWishlists(ctx context.Context, bookID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("book_id = ?", bookID).Delete(&model.WishlistItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove book from wishlists")
	}

	return nil
}
