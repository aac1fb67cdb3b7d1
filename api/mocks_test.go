package api

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/asace-youth/event-registration/events"
	"github.com/asace-youth/event-registration/notification"
	"github.com/asace-youth/event-registration/registration"
	"github.com/google/uuid"
)

var noopLogger = slog.New(slog.DiscardHandler)

var testAdmin = AdminAuth{
	Password:   "correct horse battery staple",
	SessionKey: []byte("test-session-key-0123456789abcdef"),
}

var testEvent = events.Event{
	Name:      "ASACE Youth Hangout",
	Organizer: "ASACE Youth Team",
	GroupLink: "https://chat.example.com/asace",
	Account: events.PaymentAccount{
		Name:   "ASACE Youth Fellowship",
		Number: "0123456789",
		Bank:   "Example Bank",
	},
}

var _ DB = &mockDB{}

type mockDB struct {
	CreateRegistrationFunc       func(ctx context.Context, reg registration.Registration) error
	GetRegistrationFunc          func(ctx context.Context, id uuid.UUID) (registration.Registration, error)
	ListRegistrationsFunc        func(ctx context.Context, status *registration.Status) ([]registration.Registration, error)
	UpdateRegistrationStatusFunc func(ctx context.Context, id uuid.UUID, status registration.Status, decidedAt time.Time) error
	MarkNotificationSentFunc     func(ctx context.Context, id uuid.UUID, notifiedAt time.Time) error
}

func (m *mockDB) CreateRegistration(ctx context.Context, reg registration.Registration) error {
	if m.CreateRegistrationFunc != nil {
		return m.CreateRegistrationFunc(ctx, reg)
	}
	return nil
}

func (m *mockDB) GetRegistration(ctx context.Context, id uuid.UUID) (registration.Registration, error) {
	return m.GetRegistrationFunc(ctx, id)
}

func (m *mockDB) ListRegistrations(ctx context.Context, status *registration.Status) ([]registration.Registration, error) {
	return m.ListRegistrationsFunc(ctx, status)
}

func (m *mockDB) UpdateRegistrationStatus(ctx context.Context, id uuid.UUID, status registration.Status, decidedAt time.Time) error {
	return m.UpdateRegistrationStatusFunc(ctx, id, status, decidedAt)
}

func (m *mockDB) MarkNotificationSent(ctx context.Context, id uuid.UUID, notifiedAt time.Time) error {
	if m.MarkNotificationSentFunc != nil {
		return m.MarkNotificationSentFunc(ctx, id, notifiedAt)
	}
	return nil
}

// decidingDB is a mockDB over one stored registration that honours the
// conditional status write.
func decidingDB(reg registration.Registration) *mockDB {
	var mu sync.Mutex
	return &mockDB{
		GetRegistrationFunc: func(ctx context.Context, id uuid.UUID) (registration.Registration, error) {
			mu.Lock()
			defer mu.Unlock()
			if id != reg.ID {
				return registration.Registration{}, registration.NewRegistrationDoesNotExistsError("not found", nil)
			}
			return reg, nil
		},
		UpdateRegistrationStatusFunc: func(ctx context.Context, id uuid.UUID, status registration.Status, decidedAt time.Time) error {
			mu.Lock()
			defer mu.Unlock()
			if id != reg.ID {
				return registration.NewRegistrationDoesNotExistsError("not found", nil)
			}
			if reg.Status != registration.PENDING && (reg.Status != status || !reg.NotificationPending) {
				return registration.NewAlreadyDecidedError("Registration is already "+string(reg.Status), nil)
			}
			reg.Status = status
			reg.DecidedAt = &decidedAt
			reg.NotificationPending = true
			return nil
		},
		MarkNotificationSentFunc: func(ctx context.Context, id uuid.UUID, notifiedAt time.Time) error {
			mu.Lock()
			defer mu.Unlock()
			reg.NotificationPending = false
			reg.NotifiedAt = &notifiedAt
			return nil
		},
	}
}

type mockProofStore struct {
	PutProofFunc  func(ctx context.Context, key string, contentType string, body io.Reader, size int64) error
	SignedURLFunc func(ctx context.Context, key string, ttl time.Duration) (string, error)
}

func (m *mockProofStore) PutProof(ctx context.Context, key string, contentType string, body io.Reader, size int64) error {
	if m.PutProofFunc != nil {
		return m.PutProofFunc(ctx, key, contentType, body, size)
	}
	return nil
}

func (m *mockProofStore) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	if m.SignedURLFunc != nil {
		return m.SignedURLFunc(ctx, key, ttl)
	}
	return "https://proofs.example.com/" + key, nil
}

type mockTicketGenerator struct {
	GenerateFunc func(recipientName, ticketID, payload string) ([]byte, error)
}

func (m *mockTicketGenerator) Generate(recipientName, ticketID, payload string) ([]byte, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(recipientName, ticketID, payload)
	}
	return []byte("png"), nil
}

type mockNotifier struct {
	SendDecisionFunc func(ctx context.Context, recipientEmail, recipientName, ticketID string, decision notification.Decision, ticketImage []byte) error
	sends            int
}

func (m *mockNotifier) SendDecision(ctx context.Context, recipientEmail, recipientName, ticketID string, decision notification.Decision, ticketImage []byte) error {
	m.sends++
	if m.SendDecisionFunc != nil {
		return m.SendDecisionFunc(ctx, recipientEmail, recipientName, ticketID, decision, ticketImage)
	}
	return nil
}

func newTestAPI(db DB, proofs registration.ProofStore, tickets registration.TicketGenerator, notifier registration.Notifier) *API {
	return NewAPI(db, proofs, tickets, notifier, testEvent, testAdmin, noopLogger, LOCAL, nil)
}

func testCtx() context.Context {
	return ctxWithLogger(context.Background(), noopLogger)
}

func pendingRegistration() registration.Registration {
	return registration.Registration{
		ID:          uuid.New(),
		Version:     1,
		CreatedAt:   time.Now().UTC(),
		FullName:    "Ada",
		Email:       "ada@x.io",
		DateOfBirth: "2002-05-01",
		Gender:      registration.FEMALE,
		Hobbies:     "chess and code",
		Status:      registration.PENDING,
	}
}
