package notify

import (
	"context"
	"fmt"

	"letterboxd/pkg/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Message is a single HTML email.
type Message struct {
	To      []string
	Subject string
	Body    string
}

// Notifier delivers messages to people outside the app.
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// Sender abstracts the SMTP dial so Mailer can be tested without a server.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer sends through SMTP.
type Mailer struct {
	from   string
	sender Sender
	log    *zap.Logger
}

func NewMailer(config utils.EmailConfig, log *zap.Logger) *Mailer {
	return &Mailer{
		from:   config.From,
		sender: gomail.NewDialer(config.Host, config.Port, config.User, config.Password),
		log:    log.With(zap.String("notifier", "email")),
	}
}

// NewMailerWithSender is NewMailer with an explicit transport.
func NewMailerWithSender(from string, sender Sender, log *zap.Logger) *Mailer {
	return &Mailer{from: from, sender: sender, log: log.With(zap.String("notifier", "email"))}
}

func (m *Mailer) Notify(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	gm := gomail.NewMessage()
	gm.SetHeader("From", m.from)
	gm.SetHeader("To", msg.To...)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/html", msg.Body)

	if err := m.sender.DialAndSend(gm); err != nil {
		m.log.Error("Failed to send email",
			zap.Strings("to", msg.To),
			zap.String("subject", msg.Subject),
			zap.Error(err),
		)
		return fmt.Errorf("send email: %w", err)
	}

	m.log.Info("Email sent",
		zap.Strings("to", msg.To),
		zap.String("subject", msg.Subject),
	)
	return nil
}

// Nop drops every message. Used when SMTP is not configured.
type Nop struct{}

func (Nop) Notify(context.Context, Message) error { return nil }
