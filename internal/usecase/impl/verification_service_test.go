package impl

import (
	"context"
	"testing"
	"time"

	"bookstore/internal/domain/constants"
	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/domain/service"
	mockRepo "bookstore/internal/mocks/repository"
	mockSvc "bookstore/internal/mocks/service"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type verificationServiceFixtures struct {
	service     usecase.VerificationUsecase
	accountRepo *mockRepo.MockAccountRepository
	hasher      *mockSvc.MockPasswordHasher
	codes       *mockSvc.MockCodeManager
	mailer      *mockSvc.MockMailer
	publisher   *mockSvc.MockEventPublisher
}

func createTestVerificationService(t *testing.T) verificationServiceFixtures {
	fx := verificationServiceFixtures{
		accountRepo: mockRepo.NewMockAccountRepository(t),
		hasher:      mockSvc.NewMockPasswordHasher(t),
		codes:       mockSvc.NewMockCodeManager(t),
		mailer:      mockSvc.NewMockMailer(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewVerificationService(VerificationServiceParams{
		AccountRepo:    fx.accountRepo,
		Hasher:         fx.hasher,
		CodeManager:    fx.codes,
		Mailer:         fx.mailer,
		EventPublisher: fx.publisher,
		Logger:         newDiscardLogger(),
	})

	return fx
}

func TestVerificationService_SendVerificationCode_Success(t *testing.T) {
	fx := createTestVerificationService(t)
	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "a@example.com"}
	issued := entity.IssuedCode{Hash: "hash", IssuedAt: time.Now()}

	fx.accountRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(account, nil)
	fx.codes.EXPECT().Issue().Return("123456", issued, nil)
	fx.mailer.EXPECT().
		Send(ctx, service.MailMessage{To: "a@example.com", Subject: constants.SubjectVerificationCode, HTML: "<h1>123456</h1>"}).
		Return(&service.MailReceipt{Accepted: []string{"a@example.com"}}, nil)
	fx.accountRepo.EXPECT().StoreCode(ctx, account.ID, entity.CodeKindVerification, issued).Return(nil)

	err := fx.service.SendVerificationCode(ctx, &usecase.SendCodeInput{Email: "A@example.com", RequesterID: account.ID})

	assert.NoError(t, err)
}

func TestVerificationService_SendVerificationCode_Errors(t *testing.T) {
	accountID := uuid.New()

	t.Run("unknown account", func(t *testing.T) {
		fx := createTestVerificationService(t)
		fx.accountRepo.EXPECT().FindByEmail(mock.Anything, "x@example.com").Return(nil, repository.ErrAccountNotFound)

		err := fx.service.SendVerificationCode(context.Background(), &usecase.SendCodeInput{Email: "x@example.com"})

		assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
	})

	t.Run("token for another account", func(t *testing.T) {
		fx := createTestVerificationService(t)
		fx.accountRepo.EXPECT().FindByEmail(mock.Anything, "a@example.com").Return(&entity.Account{ID: accountID, Email: "a@example.com"}, nil)

		err := fx.service.SendVerificationCode(context.Background(), &usecase.SendCodeInput{Email: "a@example.com", RequesterID: uuid.New()})

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("already verified", func(t *testing.T) {
		fx := createTestVerificationService(t)
		fx.accountRepo.EXPECT().FindByEmail(mock.Anything, "a@example.com").Return(&entity.Account{ID: accountID, Email: "a@example.com", Verified: true}, nil)

		err := fx.service.SendVerificationCode(context.Background(), &usecase.SendCodeInput{Email: "a@example.com"})

		assert.ErrorIs(t, err, domainerrors.ErrAlreadyVerified)
	})

	t.Run("recipient rejected keeps the old code", func(t *testing.T) {
		fx := createTestVerificationService(t)
		fx.accountRepo.EXPECT().FindByEmail(mock.Anything, "a@example.com").Return(&entity.Account{ID: accountID, Email: "a@example.com"}, nil)
		fx.codes.EXPECT().Issue().Return("1", entity.IssuedCode{Hash: "h"}, nil)
		fx.mailer.EXPECT().Send(mock.Anything, mock.Anything).Return(&service.MailReceipt{}, nil)

		err := fx.service.SendVerificationCode(context.Background(), &usecase.SendCodeInput{Email: "a@example.com"})

		assert.ErrorIs(t, err, domainerrors.ErrCodeDeliveryFailed)
	})

	t.Run("mailer error", func(t *testing.T) {
		fx := createTestVerificationService(t)
		fx.accountRepo.EXPECT().FindByEmail(mock.Anything, "a@example.com").Return(&entity.Account{ID: accountID, Email: "a@example.com"}, nil)
		fx.codes.EXPECT().Issue().Return("1", entity.IssuedCode{Hash: "h"}, nil)
		fx.mailer.EXPECT().Send(mock.Anything, mock.Anything).Return(nil, errors.New("dial tcp: refused"))

		err := fx.service.SendVerificationCode(context.Background(), &usecase.SendCodeInput{Email: "a@example.com"})

		assert.ErrorIs(t, err, domainerrors.ErrCodeDeliveryFailed)
	})
}

func TestVerificationService_SendForgotPasswordCode_IgnoresVerified(t *testing.T) {
	fx := createTestVerificationService(t)
	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "a@example.com", Verified: true}
	issued := entity.IssuedCode{Hash: "hash", IssuedAt: time.Now()}

	fx.accountRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(account, nil)
	fx.codes.EXPECT().Issue().Return("42", issued, nil)
	fx.mailer.EXPECT().
		Send(ctx, mock.MatchedBy(func(msg service.MailMessage) bool {
			return msg.Subject == constants.SubjectForgotPasswordCode && msg.HTML == "<h1>42</h1>"
		})).
		Return(&service.MailReceipt{Accepted: []string{"a@example.com"}}, nil)
	fx.accountRepo.EXPECT().StoreCode(ctx, account.ID, entity.CodeKindForgotPassword, issued).Return(nil)

	assert.NoError(t, fx.service.SendForgotPasswordCode(ctx, &usecase.SendCodeInput{Email: "a@example.com"}))
}

func TestVerificationService_VerifyVerificationCode(t *testing.T) {
	newAccount := func() *entity.Account {
		return &entity.Account{
			ID:               uuid.New(),
			Email:            "a@example.com",
			VerificationCode: &entity.IssuedCode{Hash: "stored", IssuedAt: time.Now()},
		}
	}

	t.Run("success", func(t *testing.T) {
		fx := createTestVerificationService(t)
		ctx := context.Background()
		account := newAccount()

		fx.accountRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(account, nil)
		fx.codes.EXPECT().Verify(account.VerificationCode, "123456").Return(nil)
		fx.accountRepo.EXPECT().ConsumeVerificationCode(ctx, account.ID, "stored").Return(true, nil)
		fx.publisher.EXPECT().
			PublishAccountEvent(ctx, mock.MatchedBy(func(event *service.AccountEvent) bool {
				return event.Type == constants.EventAccountVerified
			})).
			Return(nil)

		err := fx.service.VerifyVerificationCode(ctx, &usecase.VerifyCodeInput{Email: "a@example.com", Code: "123456"})

		assert.NoError(t, err)
	})

	t.Run("mismatch discards the code", func(t *testing.T) {
		fx := createTestVerificationService(t)
		ctx := context.Background()
		account := newAccount()

		fx.accountRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(account, nil)
		fx.codes.EXPECT().Verify(account.VerificationCode, "000000").Return(domainerrors.ErrCodeMismatch)
		fx.accountRepo.EXPECT().DiscardCode(ctx, account.ID, entity.CodeKindVerification, "stored").Return(nil)

		err := fx.service.VerifyVerificationCode(ctx, &usecase.VerifyCodeInput{Email: "a@example.com", Code: "000000"})

		assert.ErrorIs(t, err, domainerrors.ErrCodeMismatch)
	})

	t.Run("expired discards the code", func(t *testing.T) {
		fx := createTestVerificationService(t)
		ctx := context.Background()
		account := newAccount()

		fx.accountRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(account, nil)
		fx.codes.EXPECT().Verify(account.VerificationCode, "123456").Return(domainerrors.ErrCodeExpired)
		fx.accountRepo.EXPECT().DiscardCode(ctx, account.ID, entity.CodeKindVerification, "stored").Return(nil)

		err := fx.service.VerifyVerificationCode(ctx, &usecase.VerifyCodeInput{Email: "a@example.com", Code: "123456"})

		assert.ErrorIs(t, err, domainerrors.ErrCodeExpired)
	})

	t.Run("missing code", func(t *testing.T) {
		fx := createTestVerificationService(t)
		ctx := context.Background()
		account := newAccount()
		account.VerificationCode = nil

		fx.accountRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(account, nil)
		fx.codes.EXPECT().Verify((*entity.IssuedCode)(nil), "123456").Return(domainerrors.ErrCodeMissing)

		err := fx.service.VerifyVerificationCode(ctx, &usecase.VerifyCodeInput{Email: "a@example.com", Code: "123456"})

		assert.ErrorIs(t, err, domainerrors.ErrCodeMissing)
	})

	t.Run("lost the race", func(t *testing.T) {
		fx := createTestVerificationService(t)
		ctx := context.Background()
		account := newAccount()

		fx.accountRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(account, nil)
		fx.codes.EXPECT().Verify(account.VerificationCode, "123456").Return(nil)
		fx.accountRepo.EXPECT().ConsumeVerificationCode(ctx, account.ID, "stored").Return(false, nil)

		err := fx.service.VerifyVerificationCode(ctx, &usecase.VerifyCodeInput{Email: "a@example.com", Code: "123456"})

		assert.ErrorIs(t, err, domainerrors.ErrCodeMissing)
	})

	t.Run("already verified", func(t *testing.T) {
		fx := createTestVerificationService(t)
		account := newAccount()
		account.Verified = true

		fx.accountRepo.EXPECT().FindByEmail(mock.Anything, "a@example.com").Return(account, nil)

		err := fx.service.VerifyVerificationCode(context.Background(), &usecase.VerifyCodeInput{Email: "a@example.com", Code: "1"})

		assert.ErrorIs(t, err, domainerrors.ErrAlreadyVerified)
	})
}

func TestVerificationService_VerifyForgotPasswordCode(t *testing.T) {
	t.Run("weak password is rejected before the code is touched", func(t *testing.T) {
		fx := createTestVerificationService(t)
		fx.hasher.EXPECT().ValidatePasswordStrength("weak").Return(domainerrors.ErrPasswordStrength)

		err := fx.service.VerifyForgotPasswordCode(context.Background(), &usecase.ResetPasswordInput{Email: "a@example.com", Code: "1", NewPassword: "weak"})

		assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
	})

	t.Run("success", func(t *testing.T) {
		fx := createTestVerificationService(t)
		ctx := context.Background()
		account := &entity.Account{
			ID:                 uuid.New(),
			Email:              "a@example.com",
			ForgotPasswordCode: &entity.IssuedCode{Hash: "stored", IssuedAt: time.Now()},
		}

		fx.hasher.EXPECT().ValidatePasswordStrength("NewPassw0rd").Return(nil)
		fx.accountRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(account, nil)
		fx.codes.EXPECT().Verify(account.ForgotPasswordCode, "654321").Return(nil)
		fx.hasher.EXPECT().Hash("NewPassw0rd").Return("new-hash", nil)
		fx.accountRepo.EXPECT().ConsumeForgotPasswordCode(ctx, account.ID, "stored", "new-hash").Return(true, nil)
		fx.publisher.EXPECT().PublishAccountEvent(ctx, mock.Anything).Return(nil)

		err := fx.service.VerifyForgotPasswordCode(ctx, &usecase.ResetPasswordInput{Email: "a@example.com", Code: "654321", NewPassword: "NewPassw0rd"})

		require.NoError(t, err)
	})
}
