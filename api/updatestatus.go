package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/asace-youth/event-registration/registration"
	"github.com/google/uuid"
)

func (a *API) PostAdminUpdateStatus(ctx context.Context, request PostAdminUpdateStatusRequestObject) (PostAdminUpdateStatusResponseObject, error) {
	logger := getLoggerFromCtx(ctx)

	if request.Body == nil || strings.TrimSpace(request.Body.Id) == "" || request.Body.Status == "" {
		return PostAdminUpdateStatus400JSONResponse{BadRequestJSONResponse{
			Error:   true,
			Code:    ErrorCodeInvalidBody,
			Message: "Missing fields",
		}}, nil
	}

	// Ids are always UUIDs, so anything else cannot name a registration.
	id, err := uuid.Parse(strings.TrimSpace(request.Body.Id))
	if err != nil {
		logger.Warn("Update for malformed registration id", slog.String("id", request.Body.Id))

		return PostAdminUpdateStatus400JSONResponse{BadRequestJSONResponse{
			Error:   true,
			Code:    ErrorCodeRecipientUnresolved,
			Message: fmt.Sprintf("No registration with ID %q", request.Body.Id),
		}}, nil
	}
	logger = logger.With(slog.String("id", id.String()), slog.String("status", string(request.Body.Status)))

	reg, err := registration.Transition(ctx, id, registration.Status(request.Body.Status), a.db, a.tickets, a.notifier)
	if err != nil {
		logger.Error("Failed to update registration status", slog.String("error", err.Error()))

		var registrationErr *registration.Error
		if errors.As(err, &registrationErr) {
			switch registrationErr.Reason {
			case registration.REASON_INVALID_STATUS:
				return PostAdminUpdateStatus400JSONResponse{BadRequestJSONResponse{
					Error:   true,
					Code:    ErrorCodeInvalidBody,
					Message: registrationErr.Message,
				}}, nil
			case registration.REASON_RECIPIENT_UNRESOLVED:
				return PostAdminUpdateStatus400JSONResponse{BadRequestJSONResponse{
					Error:   true,
					Code:    ErrorCodeRecipientUnresolved,
					Message: registrationErr.Message,
				}}, nil
			case registration.REASON_ALREADY_DECIDED:
				return PostAdminUpdateStatus409JSONResponse{
					Error:   true,
					Code:    ErrorCodeAlreadyDecided,
					Message: registrationErr.Message,
				}, nil
			case registration.REASON_TICKET_GENERATION_FAILED:
				return PostAdminUpdateStatus500JSONResponse{InternalErrorJSONResponse{
					Error:   true,
					Code:    ErrorCodeTicketGenerationFailed,
					Message: registrationErr.Message,
				}}, nil
			case registration.REASON_NOTIFICATION_FAILED:
				return PostAdminUpdateStatus500JSONResponse{InternalErrorJSONResponse{
					Error:   true,
					Code:    ErrorCodeNotificationFailed,
					Message: registrationErr.Message,
				}}, nil
			}
		}

		return PostAdminUpdateStatus500JSONResponse{InternalErrorJSONResponse{
			Error:   true,
			Code:    ErrorCodeInternalError,
			Message: "Failed to update status",
		}}, nil
	}

	if reg.NotificationPending {
		// A resend would email the attendee twice, so only flag it here.
		logger.Warn("Attendee notified but the send was not recorded")
	}

	logger.Info("Registration decided and attendee notified")

	return PostAdminUpdateStatus200JSONResponse{Success: true}, nil
}
