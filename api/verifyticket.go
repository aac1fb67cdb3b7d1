package api

import (
	"context"
	"errors"
	"log/slog"

	"github.com/asace-youth/event-registration/ptr"
	"github.com/asace-youth/event-registration/registration"
)

func (a *API) PostVerifyTicket(ctx context.Context, request PostVerifyTicketRequestObject) (PostVerifyTicketResponseObject, error) {
	logger := getLoggerFromCtx(ctx)

	if request.Body == nil {
		return PostVerifyTicket404JSONResponse{
			Valid:   false,
			Message: ptr.String("Ticket not found"),
		}, nil
	}

	reg, err := registration.VerifyTicket(ctx, request.Body.TicketData, a.db)
	if err != nil {
		var registrationErr *registration.Error
		if errors.As(err, &registrationErr) {
			switch registrationErr.Reason {
			case registration.REASON_TICKET_NOT_FOUND:
				logger.Info("Scanned ticket not found", slog.String("ticket-data", request.Body.TicketData))

				return PostVerifyTicket404JSONResponse{
					Valid:   false,
					Message: ptr.String("Ticket not found"),
				}, nil
			case registration.REASON_TICKET_NOT_APPROVED:
				logger.Info("Scanned ticket not approved", slog.String("ticket-data", request.Body.TicketData))

				return PostVerifyTicket403JSONResponse{
					Valid:   false,
					Message: ptr.String("Ticket not approved"),
				}, nil
			}
		}

		logger.Error("Failed to verify ticket", slog.String("error", err.Error()))

		return PostVerifyTicket500JSONResponse{InternalErrorJSONResponse{
			Error:   true,
			Code:    ErrorCodeInternalError,
			Message: "Failed to verify ticket",
		}}, nil
	}

	logger.Info("Ticket verified", slog.String("id", reg.ID.String()))

	return PostVerifyTicket200JSONResponse{
		Valid: true,
		Attendee: &Attendee{
			Name:  reg.FullName,
			Email: reg.Email,
		},
	}, nil
}
