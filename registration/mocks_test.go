package registration

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/asace-youth/event-registration/notification"
	"github.com/google/uuid"
)

var _ Repository = &mockRegistrationRepository{}

type mockRegistrationRepository struct {
	CreateRegistrationFunc       func(ctx context.Context, reg Registration) error
	GetRegistrationFunc          func(ctx context.Context, id uuid.UUID) (Registration, error)
	ListRegistrationsFunc        func(ctx context.Context, status *Status) ([]Registration, error)
	UpdateRegistrationStatusFunc func(ctx context.Context, id uuid.UUID, status Status, decidedAt time.Time) error
	MarkNotificationSentFunc     func(ctx context.Context, id uuid.UUID, notifiedAt time.Time) error
}

func (m *mockRegistrationRepository) CreateRegistration(ctx context.Context, reg Registration) error {
	return m.CreateRegistrationFunc(ctx, reg)
}

func (m *mockRegistrationRepository) GetRegistration(ctx context.Context, id uuid.UUID) (Registration, error) {
	return m.GetRegistrationFunc(ctx, id)
}

func (m *mockRegistrationRepository) ListRegistrations(ctx context.Context, status *Status) ([]Registration, error) {
	return m.ListRegistrationsFunc(ctx, status)
}

func (m *mockRegistrationRepository) UpdateRegistrationStatus(ctx context.Context, id uuid.UUID, status Status, decidedAt time.Time) error {
	return m.UpdateRegistrationStatusFunc(ctx, id, status, decidedAt)
}

func (m *mockRegistrationRepository) MarkNotificationSent(ctx context.Context, id uuid.UUID, notifiedAt time.Time) error {
	if m.MarkNotificationSentFunc != nil {
		return m.MarkNotificationSentFunc(ctx, id, notifiedAt)
	}
	return nil
}

// memoryRepository applies the same conditions as the DynamoDB store.
type memoryRepository struct {
	mu   sync.Mutex
	regs map[uuid.UUID]Registration
}

var _ Repository = &memoryRepository{}

func newMemoryRepository(regs ...Registration) *memoryRepository {
	m := &memoryRepository{regs: map[uuid.UUID]Registration{}}
	for _, r := range regs {
		m.regs[r.ID] = r
	}
	return m
}

func (m *memoryRepository) CreateRegistration(ctx context.Context, reg Registration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.regs[reg.ID]; ok {
		return NewRegistrationAlreadyExistsError(fmt.Sprintf("Registration with ID %q already exists", reg.ID), nil)
	}
	m.regs[reg.ID] = reg
	return nil
}

func (m *memoryRepository) GetRegistration(ctx context.Context, id uuid.UUID) (Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	reg, ok := m.regs[id]
	if !ok {
		return Registration{}, NewRegistrationDoesNotExistsError(fmt.Sprintf("Registration with ID %q not found", id), nil)
	}
	return reg, nil
}

func (m *memoryRepository) ListRegistrations(ctx context.Context, status *Status) ([]Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []Registration
	for _, r := range m.regs {
		if status == nil || r.Status == *status {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *memoryRepository) UpdateRegistrationStatus(ctx context.Context, id uuid.UUID, status Status, decidedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	reg, ok := m.regs[id]
	if !ok {
		return NewRegistrationDoesNotExistsError(fmt.Sprintf("Registration with ID %q not found", id), nil)
	}
	if reg.Status != PENDING && (reg.Status != status || !reg.NotificationPending) {
		return NewAlreadyDecidedError(fmt.Sprintf("Registration %q is already %s", id, reg.Status), nil)
	}

	reg.Status = status
	reg.DecidedAt = &decidedAt
	reg.NotificationPending = true
	reg.Version++
	m.regs[id] = reg
	return nil
}

func (m *memoryRepository) MarkNotificationSent(ctx context.Context, id uuid.UUID, notifiedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	reg, ok := m.regs[id]
	if !ok {
		return NewRegistrationDoesNotExistsError(fmt.Sprintf("Registration with ID %q not found", id), nil)
	}
	reg.NotificationPending = false
	reg.NotifiedAt = &notifiedAt
	reg.Version++
	m.regs[id] = reg
	return nil
}

type mockTicketGenerator struct {
	GenerateFunc func(recipientName, ticketID, payload string) ([]byte, error)
	payloads     []string
}

func (m *mockTicketGenerator) Generate(recipientName, ticketID, payload string) ([]byte, error) {
	m.payloads = append(m.payloads, payload)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(recipientName, ticketID, payload)
	}
	return []byte("ticket for " + ticketID), nil
}

type sentDecision struct {
	Email    string
	Name     string
	TicketID string
	Decision notification.Decision
	Ticket   []byte
}

type mockNotifier struct {
	SendDecisionFunc func(ctx context.Context, recipientEmail, recipientName, ticketID string, decision notification.Decision, ticketImage []byte) error

	mu   sync.Mutex
	sent []sentDecision
}

func (m *mockNotifier) SendDecision(ctx context.Context, recipientEmail, recipientName, ticketID string, decision notification.Decision, ticketImage []byte) error {
	if m.SendDecisionFunc != nil {
		if err := m.SendDecisionFunc(ctx, recipientEmail, recipientName, ticketID, decision, ticketImage); err != nil {
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentDecision{
		Email:    recipientEmail,
		Name:     recipientName,
		TicketID: ticketID,
		Decision: decision,
		Ticket:   ticketImage,
	})
	return nil
}

type mockProofStore struct {
	PutProofFunc func(ctx context.Context, key string, contentType string, body io.Reader, size int64) error
	objects      map[string][]byte
}

func (m *mockProofStore) PutProof(ctx context.Context, key string, contentType string, body io.Reader, size int64) error {
	if m.PutProofFunc != nil {
		return m.PutProofFunc(ctx, key, contentType, body, size)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	if m.objects == nil {
		m.objects = map[string][]byte{}
	}
	m.objects[key] = data
	return nil
}

func (m *mockProofStore) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	return "https://proofs.example.com/" + key + "?ttl=" + ttl.String(), nil
}

func pendingRegistration(name, email string) Registration {
	return Registration{
		ID:          uuid.New(),
		Version:     1,
		CreatedAt:   time.Now().UTC(),
		FullName:    name,
		Email:       email,
		DateOfBirth: "2000-01-01",
		Gender:      OTHER,
		Hobbies:     "reading",
		Status:      PENDING,
	}
}

func pngProof() *Proof {
	data := []byte("\x89PNG proof")
	return &Proof{
		FileName:    "receipt.PNG",
		ContentType: "image/png",
		Size:        int64(len(data)),
		Body:        bytes.NewReader(data),
	}
}
