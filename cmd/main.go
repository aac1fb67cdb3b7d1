package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/asace-youth/event-registration/api"
	"github.com/asace-youth/event-registration/blobstore"
	"github.com/asace-youth/event-registration/dynamo"
	"github.com/asace-youth/event-registration/events"
	"github.com/asace-youth/event-registration/notification"
	"github.com/asace-youth/event-registration/slices"
	"github.com/asace-youth/event-registration/ticket"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-sdk-go-v2/otelaws"
)

const serviceName = "asace-registration"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := getEnvironment()
	logger := newLogger(env)
	slog.SetDefault(logger)

	shutdownTracing, err := setupTracing(ctx, serviceName)
	if err != nil {
		logger.Error("failed to set up tracing", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Error("failed to flush traces", "error", err)
		}
	}()

	awsCfg, err := loadAWSConfig(ctx, env)
	if err != nil {
		logger.Error("failed to get aws config", "error", err)
		os.Exit(1)
	}

	secrets := newSecretStore(env, ssm.NewFromConfig(awsCfg))

	admin, err := getAdminAuth(ctx, secrets)
	if err != nil {
		logger.Error("failed to load admin credentials", "error", err)
		os.Exit(1)
	}

	event, err := getEventFromEnv()
	if err != nil {
		logger.Error("invalid event settings", "error", err)
		os.Exit(1)
	}

	sender, err := createEmailSender(ctx, logger, env, awsCfg, secrets)
	if err != nil {
		logger.Error("failed to create email sender", "error", err)
		os.Exit(1)
	}
	notifier := notification.NewDispatcher(sender, getEnvOrDefault("EMAIL_FROM", "ASACE Youth <noreply@asace.org>"), event)

	tickets, err := getTicketGeneratorFromEnv()
	if err != nil {
		logger.Error("invalid ticket settings", "error", err)
		os.Exit(1)
	}

	db := dynamo.NewDB(newDynamoClient(awsCfg, env), getEnvOrDefault("DYNAMO_TABLE_NAME", "ASACERegistrations"))
	if _, ok := os.LookupEnv("DYNAMO_ENDPOINT"); ok && env == api.LOCAL {
		if err := db.EnsureTable(ctx); err != nil {
			logger.Error("failed to create local table", "error", err)
			os.Exit(1)
		}
	}
	proofs := blobstore.NewS3ProofStore(newS3Client(awsCfg, env), getEnvOrDefault("PROOF_BUCKET", "asace-payment-proofs"))

	registrationAPI := api.NewAPI(db, proofs, tickets, notifier, event, admin, logger, env, getAllowedOrigins())

	swagger, err := api.GetSwagger()
	if err != nil {
		logger.Error("error loading swagger spec", "error", err)
		os.Exit(1)
	}

	swagger.Servers = nil

	serverSettings := getServerSettingsFromEnv()
	s := &http.Server{
		Handler:           registrationAPI.Handler(swagger),
		Addr:              net.JoinHostPort(serverSettings.Host, serverSettings.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("addr", s.Addr))
		serverErr <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shut down server", "error", err)
	}
}

func getEnvironment() api.Environment {
	if strings.EqualFold(getEnvOrDefault("ENV", "LOCAL"), "PROD") {
		return api.PROD
	}
	return api.LOCAL
}

func newLogger(env api.Environment) *slog.Logger {
	if env == api.LOCAL {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

func loadAWSConfig(ctx context.Context, env api.Environment) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{}
	if env == api.LOCAL {
		// DynamoDB local and the local S3 emulator accept any credentials.
		opts = append(opts,
			config.WithRegion(getEnvOrDefault("AWS_REGION", "us-east-1")),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("local", "local", "")),
		)
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, err
	}

	otelaws.AppendMiddlewares(&cfg.APIOptions)

	return cfg, nil
}

func newDynamoClient(cfg aws.Config, env api.Environment) *dynamodb.Client {
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint, ok := os.LookupEnv("DYNAMO_ENDPOINT"); ok && env == api.LOCAL {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}

func newS3Client(cfg aws.Config, env api.Environment) *s3.Client {
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint, ok := os.LookupEnv("S3_ENDPOINT"); ok && env == api.LOCAL {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
}

func getAdminAuth(ctx context.Context, secrets *secretStore) (api.AdminAuth, error) {
	password, err := secrets.get(ctx, "ADMIN_PASSWORD", "admin-password")
	if err != nil {
		return api.AdminAuth{}, err
	}
	sessionKey, err := secrets.get(ctx, "ADMIN_SESSION_KEY", "admin-session-key")
	if err != nil {
		return api.AdminAuth{}, err
	}
	if len(sessionKey) < 32 {
		return api.AdminAuth{}, fmt.Errorf("admin session key must be at least 32 bytes, got %d", len(sessionKey))
	}

	return api.AdminAuth{
		Password:   password,
		SessionKey: []byte(sessionKey),
	}, nil
}

func getEventFromEnv() (events.Event, error) {
	fee, err := getIntEnvOrDefault("EVENT_FEE_MINOR_UNITS", 500000)
	if err != nil {
		return events.Event{}, err
	}

	return events.NewEvent(
		getEnvOrDefault("EVENT_NAME", "ASACE Youth Hangout"),
		getEnvOrDefault("EVENT_ORGANIZER", "ASACE Youth Team"),
		getEnvOrDefault("EVENT_GROUP_LINK", ""),
		int64(fee),
		getEnvOrDefault("EVENT_CURRENCY", "NGN"),
		events.PaymentAccount{
			Name:   getEnvOrDefault("PAYMENT_ACCOUNT_NAME", ""),
			Number: getEnvOrDefault("PAYMENT_ACCOUNT_NUMBER", ""),
			Bank:   getEnvOrDefault("PAYMENT_BANK", ""),
		},
	)
}

func getTicketGeneratorFromEnv() (*ticket.Generator, error) {
	x, err := getIntEnvOrDefault("TICKET_QR_X", 150)
	if err != nil {
		return nil, err
	}
	y, err := getIntEnvOrDefault("TICKET_QR_Y", 250)
	if err != nil {
		return nil, err
	}
	size, err := getIntEnvOrDefault("TICKET_QR_SIZE", ticket.DefaultQRSize)
	if err != nil {
		return nil, err
	}

	g := ticket.NewGenerator(getEnvOrDefault("TICKET_TEMPLATE_PATH", "assets/ticket.png"), image.Pt(x, y))
	g.QRSize = size

	if _, ok := os.LookupEnv("TICKET_NAME_X"); ok {
		nameX, err := getIntEnvOrDefault("TICKET_NAME_X", 0)
		if err != nil {
			return nil, err
		}
		nameY, err := getIntEnvOrDefault("TICKET_NAME_Y", 0)
		if err != nil {
			return nil, err
		}
		g.NamePosition = &image.Point{X: nameX, Y: nameY}
	}

	return g, nil
}

func getAllowedOrigins() []string {
	origins := slices.Map(strings.Split(getEnvOrDefault("ALLOWED_ORIGINS", ""), ","), strings.TrimSpace)
	return slices.Filter(origins, func(o string) bool { return o != "" })
}

type ServerSettings struct {
	Host string
	Port string
}

func getServerSettingsFromEnv() ServerSettings {
	return ServerSettings{
		Host: getEnvOrDefault("HOST", "0.0.0.0"),
		Port: getEnvOrDefault("PORT", "8080"),
	}
}

func getEnvOrDefault(key string, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return defaultVal
}

func getIntEnvOrDefault(key string, defaultVal int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal, nil
	}

	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return i, nil
}
