package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bookstore/internal/delivery/context"
	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func requestLogger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}

// accountLookupError converts the repository miss into the client-facing error.
func accountLookupError(err error) error {
	if errors.Is(err, repository.ErrAccountNotFound) {
		return domainerrors.ErrAccountNotFound.WrapMessage("account lookup failed")
	}

	return errors.Wrap(err, "failed to find account")
}

func bookLookupError(err error) error {
	if errors.Is(err, repository.ErrBookNotFound) {
		return domainerrors.ErrBookNotFound.WrapMessage("book lookup failed")
	}

	return errors.Wrap(err, "failed to find book")
}

// eventEmitter publishes account events after the change is committed.
// Publishing is best effort; failures are logged and never reach the caller.
type eventEmitter struct {
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func newEventEmitter(publisher service.EventPublisher, logger *slog.Logger) *eventEmitter {
	return &eventEmitter{publisher: publisher, logger: logger, now: time.Now}
}

func (e *eventEmitter) emit(ctx context.Context, eventType string, account *entity.Account) {
	if e == nil || e.publisher == nil || account == nil {
		return
	}

	event := &service.AccountEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       eventType,
		AccountID:  account.ID.String(),
		Email:      account.Email,
		OccurredAt: e.now().UTC(),
	}

	if err := e.publisher.PublishAccountEvent(ctx, event); err != nil {
		requestLogger(ctx, e.logger).Warn("Failed to publish account event",
			slog.String("type", eventType),
			slog.Any("accountID", account.ID),
			slog.Any("error", err),
		)
	}
}
