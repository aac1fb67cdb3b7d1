package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

var _ Sender = &SMTPSender{}

type SMTPSettings struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

// SMTPSender delivers through an authenticated SMTP relay such as Gmail.
// A new connection is dialed for every email.
type SMTPSender struct {
	settings SMTPSettings
}

func NewSMTPSender(settings SMTPSettings) *SMTPSender {
	return &SMTPSender{
		settings: settings,
	}
}

func (s *SMTPSender) SendEmail(ctx context.Context, e Email) error {
	msg, err := buildMessage(e)
	if err != nil {
		return err
	}

	client, err := s.newClient()
	if err != nil {
		return NewDispatchFailureError(fmt.Sprintf("Failed to configure SMTP client for %s", s.settings.Host), err)
	}

	err = client.DialAndSendWithContext(ctx, msg)
	if err != nil {
		return NewDispatchFailureError(err.Error(), err)
	}

	return nil
}

func (s *SMTPSender) newClient() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(s.settings.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.settings.Username),
		mail.WithPassword(s.settings.Password),
	}

	// 465 is implicit TLS, anything else gets STARTTLS
	if s.settings.Port == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}

	if s.settings.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(s.settings.Timeout))
	}

	return mail.NewClient(s.settings.Host, opts...)
}
