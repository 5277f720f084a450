package mail

import (
	"context"
	"log/slog"

	"bookstore/internal/domain/service"
)

// logMailer accepts every message and writes it to the logger. For local development only.
type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer returns a mailer that never talks to a mail server.
func NewLogMailer(logger *slog.Logger) service.Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) Send(ctx context.Context, msg service.MailMessage) (*service.MailReceipt, error) {
	m.logger.InfoContext(ctx, "[LogMailer] Message accepted",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("html", msg.HTML),
	)

	return &service.MailReceipt{Accepted: []string{msg.To}}, nil
}
