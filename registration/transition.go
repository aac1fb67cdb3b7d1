package registration

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/asace-youth/event-registration/notification"
	"github.com/asace-youth/event-registration/ticket"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/asace-youth/event-registration/registration")

type TicketGenerator interface {
	Generate(recipientName, ticketID, payload string) ([]byte, error)
}

type Notifier interface {
	SendDecision(ctx context.Context, recipientEmail, recipientName, ticketID string, decision notification.Decision, ticketImage []byte) error
}

// Transition records an admin decision and emails the attendee about it.
//
// The decision is written before anything is sent, so a failure while
// generating the ticket or sending the email leaves the decision stored with
// NotificationPending set. Calling Transition again with the same decision
// retries only the notification; any other repeat is rejected as
// ALREADY_DECIDED, which keeps it to one email per decision.
//
// Once the email is accepted Transition succeeds even if recording that fails;
// the returned registration then still has NotificationPending set.
func Transition(ctx context.Context, id uuid.UUID, requested Status, repo Repository, tickets TicketGenerator, notifier Notifier) (reg Registration, err error) {
	ctx, span := tracer.Start(ctx, "registration.Transition", trace.WithAttributes(
		attribute.String("registration.id", id.String()),
		attribute.String("registration.requested_status", string(requested)),
	))
	defer func() { endSpan(span, err) }()

	decision, ok := requested.decision()
	if !ok {
		return Registration{}, NewInvalidStatusError(requested)
	}

	err = repo.UpdateRegistrationStatus(ctx, id, requested, time.Now().UTC())
	if err != nil {
		if isReason(err, REASON_REGISTRATION_DOES_NOT_EXIST) {
			return Registration{}, NewRecipientUnresolvedError(fmt.Sprintf("No registration with ID %q to notify", id), err)
		}
		return Registration{}, err
	}

	// Re-read rather than trusting anything the caller sent about the recipient.
	reg, err = repo.GetRegistration(ctx, id)
	if err != nil {
		if isReason(err, REASON_REGISTRATION_DOES_NOT_EXIST) {
			return Registration{}, NewRecipientUnresolvedError(fmt.Sprintf("Registration %q disappeared after its status was updated", id), err)
		}
		return Registration{}, err
	}

	if strings.TrimSpace(reg.Email) == "" {
		return reg, NewRecipientUnresolvedError(fmt.Sprintf("Email not found for registration %q", id), nil)
	}

	var ticketImage []byte
	if requested == APPROVED {
		ticketImage, err = tickets.Generate(reg.FullName, reg.ID.String(), ticket.Payload(reg.ID.String()))
		if err != nil {
			message := "Failed to generate ticket"
			var ticketErr *ticket.Error
			if errors.As(err, &ticketErr) {
				message = ticketErr.Message
			}
			return reg, NewTicketGenerationFailedError(message, err)
		}
	}

	err = notifier.SendDecision(ctx, reg.Email, reg.FullName, reg.ID.String(), decision, ticketImage)
	if err != nil {
		message := "Email send failed"
		var notificationErr *notification.Error
		if errors.As(err, &notificationErr) {
			message = notificationErr.Message
		}
		return reg, NewNotificationFailedError(message, err)
	}

	notifiedAt := time.Now().UTC()
	markErr := repo.MarkNotificationSent(ctx, id, notifiedAt)
	if markErr != nil {
		// The email is out, so reporting a failure would only invite a second
		// send. The record keeps NotificationPending for the caller to log.
		span.RecordError(markErr, trace.WithAttributes(attribute.Bool("registration.notification_recorded", false)))
		return reg, nil
	}

	reg.Version++
	reg.NotificationPending = false
	reg.NotifiedAt = &notifiedAt

	return reg, nil
}

func isReason(err error, reason ErrorReason) bool {
	var regErr *Error
	return errors.As(err, &regErr) && regErr.Reason == reason
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
