package registration

import (
	"context"
	"time"

	"github.com/asace-youth/event-registration/notification"
	"github.com/google/uuid"
)

type Status string

const (
	PENDING  Status = "pending"
	APPROVED Status = "approved"
	REJECTED Status = "rejected"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case PENDING, APPROVED, REJECTED:
		return Status(s), true
	default:
		return "", false
	}
}

// decision maps a terminal status to the notification it triggers.
func (s Status) decision() (notification.Decision, bool) {
	switch s {
	case APPROVED:
		return notification.APPROVED, true
	case REJECTED:
		return notification.REJECTED, true
	default:
		return "", false
	}
}

type Gender string

const (
	MALE   Gender = "male"
	FEMALE Gender = "female"
	OTHER  Gender = "other"
)

type Registration struct {
	ID          uuid.UUID
	Version     int
	CreatedAt   time.Time
	FullName    string
	Email       string
	DateOfBirth string
	Gender      Gender
	Hobbies     string
	// Object key of the uploaded payment proof. Set once at submission.
	ProofKey  *string
	Status    Status
	DecidedAt *time.Time
	// True from the moment a decision is stored until its email has gone out.
	NotificationPending bool
	NotifiedAt          *time.Time
}

type Repository interface {
	CreateRegistration(ctx context.Context, reg Registration) error
	GetRegistration(ctx context.Context, id uuid.UUID) (Registration, error)
	ListRegistrations(ctx context.Context, status *Status) ([]Registration, error)
	// UpdateRegistrationStatus stores a decision and marks its notification as
	// pending. It only succeeds for pending registrations, or to re-store the
	// same decision while that decision's notification is still pending.
	UpdateRegistrationStatus(ctx context.Context, id uuid.UUID, status Status, decidedAt time.Time) error
	MarkNotificationSent(ctx context.Context, id uuid.UUID, notifiedAt time.Time) error
}
