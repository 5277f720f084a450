package mail

import (
	"log/slog"

	"bookstore/config"
	"bookstore/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MailerParams holds dependencies for Mailer, injected by Fx
type MailerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMailer selects the mailer named by mail.provider.
func NewMailer(params MailerParams) (service.Mailer, error) {
	cfg := params.Config.Mail
	if cfg == nil {
		return NewLogMailer(params.Logger), nil
	}

	switch cfg.Provider {
	case "", config.MailProviderLog:
		params.Logger.Info("Using log mailer, codes are written to the log only")

		return NewLogMailer(params.Logger), nil
	case config.MailProviderSMTP:
		params.Logger.Info("Using SMTP mailer", slog.String("host", cfg.SMTP.Host), slog.Int("port", cfg.SMTP.Port))

		return NewSMTPMailer(cfg, params.Logger), nil
	default:
		return nil, errors.Errorf("unknown mail provider: %s", cfg.Provider)
	}
}
