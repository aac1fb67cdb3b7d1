package registration

import (
	"context"
	"fmt"

	"github.com/asace-youth/event-registration/ticket"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// VerifyTicket resolves a scanned QR payload to an approved registration.
// It never writes, so the same ticket verifies every time it is scanned.
func VerifyTicket(ctx context.Context, scanned string, repo Repository) (reg Registration, err error) {
	ctx, span := tracer.Start(ctx, "registration.VerifyTicket")
	defer func() { endSpan(span, err) }()

	rawID, ok := ticket.ParsePayload(scanned)
	if !ok {
		return Registration{}, NewTicketNotFoundError("Ticket data is not a recognised ticket", nil)
	}

	id, err := uuid.Parse(rawID)
	if err != nil || id.String() != rawID {
		return Registration{}, NewTicketNotFoundError(fmt.Sprintf("Ticket %q not found", rawID), err)
	}
	span.SetAttributes(attribute.String("registration.id", id.String()))

	reg, err = repo.GetRegistration(ctx, id)
	if err != nil {
		if isReason(err, REASON_REGISTRATION_DOES_NOT_EXIST) {
			return Registration{}, NewTicketNotFoundError(fmt.Sprintf("Ticket %q not found", rawID), err)
		}
		return Registration{}, err
	}

	if reg.Status != APPROVED {
		return Registration{}, NewTicketNotApprovedError(reg.Status)
	}

	return reg, nil
}
