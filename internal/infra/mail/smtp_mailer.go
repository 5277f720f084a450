// Package mail delivers outbound email for verification and reset codes.
package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"bookstore/config"
	"bookstore/internal/domain/service"

	"github.com/pkg/errors"
)

// smtpMailer sends HTML mail over implicit TLS, or over plain TCP upgraded with STARTTLS.
type smtpMailer struct {
	cfg       config.SMTPConfig
	from      string
	tlsConfig *tls.Config
	logger    *slog.Logger
	now       func() time.Time
}

// NewSMTPMailer creates a mailer for the configured SMTP relay.
func NewSMTPMailer(cfg *config.MailConfig, logger *slog.Logger) service.Mailer {
	return &smtpMailer{
		cfg:       cfg.SMTP,
		from:      cfg.From,
		tlsConfig: &tls.Config{ServerName: cfg.SMTP.Host, MinVersion: tls.VersionTLS12},
		logger:    logger,
		now:       time.Now,
	}
}

// dial connects to the relay and returns a client whose session is already encrypted.
func (m *smtpMailer) dial(ctx context.Context) (*smtp.Client, error) {
	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))
	netDialer := &net.Dialer{Timeout: m.cfg.Timeout}

	var (
		conn net.Conn
		err  error
	)
	if m.cfg.StartTLS {
		conn, err = netDialer.DialContext(ctx, "tcp", addr)
	} else {
		conn, err = (&tls.Dialer{NetDialer: netDialer, Config: m.tlsConfig}).DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to SMTP server")
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	} else if m.cfg.Timeout > 0 {
		_ = conn.SetDeadline(m.now().Add(m.cfg.Timeout))
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "failed to create SMTP client")
	}

	if m.cfg.StartTLS {
		if ok, _ := client.Extension("STARTTLS"); !ok {
			_ = client.Close()

			return nil, errors.New("SMTP server does not support STARTTLS")
		}
		if err := client.StartTLS(m.tlsConfig); err != nil {
			_ = client.Close()

			return nil, errors.Wrap(err, "failed to start TLS")
		}
	}

	return client, nil
}

func (m *smtpMailer) Send(ctx context.Context, msg service.MailMessage) (*service.MailReceipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	client, err := m.dial(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	if m.cfg.Username != "" {
		if err := client.Auth(smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)); err != nil {
			return nil, errors.Wrap(err, "failed to authenticate")
		}
	}

	if err := client.Mail(m.from); err != nil {
		return nil, errors.Wrap(err, "failed to set sender")
	}

	// A rejected recipient is reported through the receipt, not as an error.
	if err := client.Rcpt(msg.To); err != nil {
		m.logger.WarnContext(ctx, "SMTP server rejected recipient", slog.String("to", msg.To), slog.Any("error", err))

		return &service.MailReceipt{}, nil
	}

	writer, err := client.Data()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open message body")
	}
	if _, err := writer.Write(buildMessage(m.from, msg, m.now())); err != nil {
		_ = writer.Close()

		return nil, errors.Wrap(err, "failed to write message body")
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to send message")
	}

	if err := client.Quit(); err != nil {
		m.logger.DebugContext(ctx, "SMTP quit failed", slog.Any("error", err))
	}

	return &service.MailReceipt{Accepted: []string{msg.To}}, nil
}

func buildMessage(from string, msg service.MailMessage, now time.Time) []byte {
	var buf bytes.Buffer
	headers := [][2]string{
		{"From", from},
		{"To", msg.To},
		{"Subject", msg.Subject},
		{"MIME-Version", "1.0"},
		{"Content-Type", "text/html; charset=UTF-8"},
		{"Date", now.Format(time.RFC1123Z)},
	}
	for _, h := range headers {
		buf.WriteString(h[0] + ": " + h[1] + "\r\n")
	}
	buf.WriteString("\r\n")
	buf.WriteString(msg.HTML)

	return buf.Bytes()
}
