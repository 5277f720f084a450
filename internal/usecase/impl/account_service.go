// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"bookstore/internal/domain/constants"
	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/domain/service"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	events       *eventEmitter
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	AccountRepo    repository.AccountRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		events:       newEventEmitter(params.EventPublisher, params.Logger),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// Signup creates an unverified account and returns it with a signup token.
func (srv *accountService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Info("Starting signup", slog.String("email", email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during signup", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	account := &entity.Account{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        email,
		Username:     input.Username,
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		_, err := accountRepo.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrEmailInUse.WrapMessage("signup with registered email")
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to check email availability")
		}

		return errors.Wrap(accountRepo.Create(ctx, account), "failed to create account during signup")
	})
	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	token, err := srv.tokenService.GenerateSignupToken(account.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate signup token")
	}

	srv.events.emit(ctx, constants.EventAccountRegistered, account)
	srv.log(ctx).Debug("Signup completed", slog.Any("accountID", account.ID))

	return &usecase.SignupOutput{Account: account, Token: token}, nil
}

// Signin checks the credentials and issues a session token.
// Unknown email and wrong password are indistinguishable to the caller.
func (srv *accountService) Signin(ctx context.Context, input *usecase.SigninInput) (*usecase.SigninOutput, error) {
	email := entity.NormalizeEmail(input.Email)

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		srv.log(ctx).Warn("Signin with unknown email", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("signin failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account during signin")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Signin with wrong password", slog.Any("accountID", account.ID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("signin failed")
	}

	token, err := srv.tokenService.GenerateSessionToken(service.SessionSubject{
		AccountID: account.ID,
		Email:     account.Email,
		Verified:  account.Verified,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	return &usecase.SigninOutput{Account: account, Token: token}, nil
}

// ChangePassword replaces the password of a verified session's account.
func (srv *accountService) ChangePassword(ctx context.Context, subject service.SessionSubject, input *usecase.ChangePasswordInput) error {
	if !subject.Verified {
		return domainerrors.ErrNotVerified.WrapMessage("change password requires a verified account")
	}

	account, err := srv.accountRepo.FindByID(ctx, subject.AccountID)
	if err != nil {
		return accountLookupError(err)
	}

	if !srv.hasher.Check(input.OldPassword, account.PasswordHash) {
		srv.log(ctx).Warn("Change password with wrong old password", slog.Any("accountID", account.ID))

		return domainerrors.ErrInvalidCredentials.WrapMessage("old password mismatch")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return errors.Wrap(err, "new password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	if err := srv.accountRepo.UpdatePassword(ctx, account.ID, hashedPassword); err != nil {
		return errors.Wrap(accountLookupError(err), "failed to update password")
	}

	srv.log(ctx).Info("Password changed", slog.Any("accountID", account.ID))

	return nil
}

// GetAccount returns the account without any secrets attached.
func (srv *accountService) GetAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, accountLookupError(err)
	}

	return account, nil
}

// UpdateProfile applies the provided fields. A changed email must still be unique.
func (srv *accountService) UpdateProfile(ctx context.Context, accountID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Account, error) {
	var updated *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByID(ctx, accountID)
		if err != nil {
			return accountLookupError(err)
		}

		if input.Email != nil {
			email := entity.NormalizeEmail(*input.Email)
			if email != account.Email {
				existing, err := accountRepo.FindByEmail(ctx, email)
				if err == nil && existing.ID != account.ID {
					return domainerrors.ErrEmailInUse.WrapMessage("email belongs to another account")
				}
				if err != nil && !errors.Is(err, repository.ErrAccountNotFound) {
					return errors.Wrap(err, "failed to check email availability")
				}
				account.Email = email
			}
		}
		if input.Username != nil {
			account.Username = *input.Username
		}

		if err := accountRepo.UpdateProfile(ctx, account); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}
		updated = account

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update profile transaction")
	}

	return updated, nil
}

// DeleteAccount removes the account and its wishlist. Books it owns stay in the catalog.
func (srv *accountService) DeleteAccount(ctx context.Context, accountID uuid.UUID) error {
	var deleted *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByID(ctx, accountID)
		if err != nil {
			return accountLookupError(err)
		}
		if err := accountRepo.Delete(ctx, accountID); err != nil {
			return errors.Wrap(accountLookupError(err), "failed to delete account")
		}
		deleted = account

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute delete account transaction")
	}

	srv.events.emit(ctx, constants.EventAccountDeleted, deleted)
	srv.log(ctx).Info("Account deleted", slog.Any("accountID", accountID))

	return nil
}
