package mail

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"bookstore/config"
	"bookstore/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogMailer_AcceptsRecipient(t *testing.T) {
	var buf bytes.Buffer
	mailer := NewLogMailer(slog.New(slog.NewTextHandler(&buf, nil)))

	receipt, err := mailer.Send(context.Background(), service.MailMessage{
		To:      "reader@books.com",
		Subject: "verification code",
		HTML:    "<h1>123456</h1>",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"reader@books.com"}, receipt.Accepted)
	assert.Contains(t, buf.String(), "reader@books.com")
}

func TestBuildMessage(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	raw := string(buildMessage("no-reply@books.com", service.MailMessage{
		To:      "reader@books.com",
		Subject: "Forgot password code",
		HTML:    "<h1>42</h1>",
	}, now))

	headers, body, found := strings.Cut(raw, "\r\n\r\n")
	require.True(t, found)
	assert.Equal(t, "<h1>42</h1>", body)
	assert.Contains(t, headers, "From: no-reply@books.com")
	assert.Contains(t, headers, "To: reader@books.com")
	assert.Contains(t, headers, "Subject: Forgot password code")
	assert.Contains(t, headers, "Content-Type: text/html; charset=UTF-8")
	assert.Contains(t, headers, "Date: "+now.Format(time.RFC1123Z))
}

func TestSMTPMailer_CanceledContext(t *testing.T) {
	mailer := NewSMTPMailer(&config.MailConfig{From: "a@b.com", SMTP: config.SMTPConfig{Host: "localhost", Port: 1}}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mailer.Send(ctx, service.MailMessage{To: "reader@books.com"})
	assert.Error(t, err)
}

func TestNewMailer(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	mailer, err := NewMailer(MailerParams{Config: &config.Config{}, Logger: logger})
	require.NoError(t, err)
	assert.IsType(t, &logMailer{}, mailer)

	mailer, err = NewMailer(MailerParams{Config: &config.Config{Mail: &config.MailConfig{Provider: config.MailProviderSMTP}}, Logger: logger})
	require.NoError(t, err)
	assert.IsType(t, &smtpMailer{}, mailer)

	_, err = NewMailer(MailerParams{Config: &config.Config{Mail: &config.MailConfig{Provider: "fax"}}, Logger: logger})
	assert.Error(t, err)
}
