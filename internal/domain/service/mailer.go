package service

import "context"

// MailMessage is a single outbound email with an HTML body.
type MailMessage struct {
	To      string
	Subject string
	HTML    string
}

// MailReceipt lists the recipients the mail server accepted.
type MailReceipt struct {
	Accepted []string
}

// Mailer dispatches email.
type Mailer interface {
	Send(ctx context.Context, msg MailMessage) (*MailReceipt, error)
}
