package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/asace-youth/event-registration/api"
	"github.com/asace-youth/event-registration/notification"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
)

var _ notification.Sender = &EmailLogger{}

// notification.Sender that logs out the email contents for local dev
// also writes attachments to dir when one is set
type EmailLogger struct {
	logger *slog.Logger
	dir    string
}

func (el *EmailLogger) SendEmail(ctx context.Context, e notification.Email) error {
	attachments := make([]string, 0, len(e.Attachments))
	for _, a := range e.Attachments {
		attachments = append(attachments, a.Filename)

		if el.dir == "" {
			continue
		}
		path := filepath.Join(el.dir, a.Filename)
		if err := os.WriteFile(path, a.Data, 0o644); err != nil {
			return notification.NewDispatchFailureError(fmt.Sprintf("Failed to write %s", path), err)
		}
	}

	el.logger.Info("email that would be sent",
		slog.String("from", e.FromAddress),
		slog.Any("to", e.ToAddresses),
		slog.String("subject", e.Subject),
		slog.String("text", e.TextBody),
		slog.Any("attachments", attachments),
	)

	return nil
}

func createEmailSender(ctx context.Context, logger *slog.Logger, env api.Environment, awsCfg aws.Config, secrets *secretStore) (notification.Sender, error) {
	defaultProvider := "ses"
	if env == api.LOCAL {
		defaultProvider = "log"
	}

	switch provider := getEnvOrDefault("EMAIL_PROVIDER", defaultProvider); provider {
	case "log":
		return &EmailLogger{logger: logger, dir: getEnvOrDefault("EMAIL_LOG_DIR", "")}, nil
	case "ses":
		return notification.NewSESSender(sesv2.NewFromConfig(awsCfg)), nil
	case "smtp":
		return createSMTPEmailSender(ctx, secrets)
	default:
		return nil, fmt.Errorf("unknown email provider %q", provider)
	}
}

func createSMTPEmailSender(ctx context.Context, secrets *secretStore) (*notification.SMTPSender, error) {
	port, err := getIntEnvOrDefault("SMTP_PORT", 587)
	if err != nil {
		return nil, err
	}

	password, err := secrets.get(ctx, "SMTP_PASSWORD", "smtp-password")
	if err != nil {
		return nil, err
	}

	return notification.NewSMTPSender(notification.SMTPSettings{
		Host:     getEnvOrDefault("SMTP_HOST", "smtp.gmail.com"),
		Port:     port,
		Username: getEnvOrDefault("SMTP_USERNAME", ""),
		Password: password,
		Timeout:  30 * time.Second,
	}), nil
}
