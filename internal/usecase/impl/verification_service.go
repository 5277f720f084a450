package impl

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"slices"

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

// verificationService implements the VerificationUsecase interface.
type verificationService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	codes       service.CodeManager
	mailer      service.Mailer
	events      *eventEmitter
	logger      *slog.Logger
}

// VerificationServiceParams holds dependencies for VerificationService, injected by Fx.
type VerificationServiceParams struct {
	fx.In

	AccountRepo    repository.AccountRepository
	Hasher         service.PasswordHasher
	CodeManager    service.CodeManager
	Mailer         service.Mailer
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewVerificationService is the constructor for verificationService.
func NewVerificationService(params VerificationServiceParams) usecase.VerificationUsecase {
	return &verificationService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		codes:       params.CodeManager,
		mailer:      params.Mailer,
		events:      newEventEmitter(params.EventPublisher, params.Logger),
		logger:      params.Logger,
	}
}

func (srv *verificationService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// loadAccount resolves the addressed account and enforces that a token holder only acts on itself.
func (srv *verificationService) loadAccount(ctx context.Context, email string, requesterID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, entity.NormalizeEmail(email))
	if err != nil {
		return nil, accountLookupError(err)
	}

	if requesterID != uuid.Nil && requesterID != account.ID {
		srv.log(ctx).Warn("Code requested for another account",
			slog.Any("requesterID", requesterID),
			slog.Any("accountID", account.ID),
		)

		return nil, domainerrors.ErrForbidden.WrapMessage("token does not belong to the addressed account")
	}

	return account, nil
}

func (srv *verificationService) SendVerificationCode(ctx context.Context, input *usecase.SendCodeInput) error {
	account, err := srv.loadAccount(ctx, input.Email, input.RequesterID)
	if err != nil {
		return err
	}
	if account.Verified {
		return domainerrors.ErrAlreadyVerified.WrapMessage("send verification code")
	}

	return srv.sendCode(ctx, account, entity.CodeKindVerification, constants.SubjectVerificationCode)
}

func (srv *verificationService) SendForgotPasswordCode(ctx context.Context, input *usecase.SendCodeInput) error {
	account, err := srv.loadAccount(ctx, input.Email, input.RequesterID)
	if err != nil {
		return err
	}

	return srv.sendCode(ctx, account, entity.CodeKindForgotPassword, constants.SubjectForgotPasswordCode)
}

// sendCode mails a fresh code and stores it only once the server accepted the recipient.
func (srv *verificationService) sendCode(ctx context.Context, account *entity.Account, kind entity.CodeKind, subject string) error {
	plain, code, err := srv.codes.Issue()
	if err != nil {
		return errors.Wrap(err, "failed to issue code")
	}

	receipt, err := srv.mailer.Send(ctx, service.MailMessage{
		To:      account.Email,
		Subject: subject,
		HTML:    fmt.Sprintf("<h1>%s</h1>", html.EscapeString(plain)),
	})
	if err != nil {
		srv.log(ctx).Error("Failed to send code", slog.String("kind", string(kind)), slog.Any("accountID", account.ID), slog.Any("error", err))

		return domainerrors.ErrCodeDeliveryFailed.WrapMessage(err.Error())
	}
	if receipt == nil || !slices.Contains(receipt.Accepted, account.Email) {
		srv.log(ctx).Warn("Mail server did not accept recipient", slog.String("kind", string(kind)), slog.Any("accountID", account.ID))

		return domainerrors.ErrCodeDeliveryFailed.WrapMessage("recipient not accepted")
	}

	if err := srv.accountRepo.StoreCode(ctx, account.ID, kind, code); err != nil {
		return errors.Wrap(accountLookupError(err), "failed to store code")
	}

	srv.log(ctx).Info("Code sent", slog.String("kind", string(kind)), slog.Any("accountID", account.ID))

	return nil
}

// checkCode verifies the provided code. Expired and mismatched codes are discarded so they cannot be retried.
func (srv *verificationService) checkCode(ctx context.Context, account *entity.Account, kind entity.CodeKind, provided string) error {
	stored := account.Code(kind)

	err := srv.codes.Verify(stored, provided)
	if err == nil {
		return nil
	}

	if stored != nil && (errors.Is(err, domainerrors.ErrCodeExpired) || errors.Is(err, domainerrors.ErrCodeMismatch)) {
		if discardErr := srv.accountRepo.DiscardCode(ctx, account.ID, kind, stored.Hash); discardErr != nil {
			srv.log(ctx).Error("Failed to discard code", slog.String("kind", string(kind)), slog.Any("error", discardErr))
		}
	}

	return err
}

func (srv *verificationService) VerifyVerificationCode(ctx context.Context, input *usecase.VerifyCodeInput) error {
	account, err := srv.loadAccount(ctx, input.Email, input.RequesterID)
	if err != nil {
		return err
	}
	if account.Verified {
		return domainerrors.ErrAlreadyVerified.WrapMessage("verify verification code")
	}

	if err := srv.checkCode(ctx, account, entity.CodeKindVerification, input.Code); err != nil {
		return err
	}

	consumed, err := srv.accountRepo.ConsumeVerificationCode(ctx, account.ID, account.VerificationCode.Hash)
	if err != nil {
		return errors.Wrap(err, "failed to consume verification code")
	}
	if !consumed {
		return domainerrors.ErrCodeMissing.WrapMessage("code was consumed or replaced concurrently")
	}

	account.Verified = true
	srv.events.emit(ctx, constants.EventAccountVerified, account)
	srv.log(ctx).Info("Account verified", slog.Any("accountID", account.ID))

	return nil
}

func (srv *verificationService) VerifyForgotPasswordCode(ctx context.Context, input *usecase.ResetPasswordInput) error {
	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return errors.Wrap(err, "new password does not meet security requirements")
	}

	account, err := srv.loadAccount(ctx, input.Email, uuid.Nil)
	if err != nil {
		return err
	}

	if err := srv.checkCode(ctx, account, entity.CodeKindForgotPassword, input.Code); err != nil {
		return err
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	consumed, err := srv.accountRepo.ConsumeForgotPasswordCode(ctx, account.ID, account.ForgotPasswordCode.Hash, hashedPassword)
	if err != nil {
		return errors.Wrap(err, "failed to consume forgot password code")
	}
	if !consumed {
		return domainerrors.ErrCodeMissing.WrapMessage("code was consumed or replaced concurrently")
	}

	srv.events.emit(ctx, constants.EventAccountPasswordReset, account)
	srv.log(ctx).Info("Password reset", slog.Any("accountID", account.ID))

	return nil
}
