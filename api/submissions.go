package api

import (
	"context"
	"log/slog"

	"github.com/asace-youth/event-registration/ptr"
	"github.com/asace-youth/event-registration/registration"
	"github.com/asace-youth/event-registration/slices"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func (a *API) GetAdminSubmissions(ctx context.Context, request GetAdminSubmissionsRequestObject) (GetAdminSubmissionsResponseObject, error) {
	logger := getLoggerFromCtx(ctx)

	var status *registration.Status
	if request.Params.Status != nil {
		s, ok := registration.ParseStatus(string(*request.Params.Status))
		if !ok {
			return GetAdminSubmissions400JSONResponse{BadRequestJSONResponse{
				Error:   true,
				Code:    ErrorCodeInputValidationError,
				Message: "Unknown status filter",
			}}, nil
		}
		status = &s
	}

	regs, err := a.db.ListRegistrations(ctx, status)
	if err != nil {
		logger.Error("Failed to list registrations", slog.String("error", err.Error()))

		return GetAdminSubmissions500JSONResponse{InternalErrorJSONResponse{
			Error:   true,
			Code:    ErrorCodeInternalError,
			Message: "Failed to get submissions",
		}}, nil
	}

	resp := GetAdminSubmissions200JSONResponse(slices.Map(regs, registrationToApiRegistration))
	for i, reg := range regs {
		if reg.ProofKey == nil {
			continue
		}

		url, err := a.proofs.SignedURL(ctx, *reg.ProofKey, proofURLTTL)
		if err != nil {
			// One unsigned link should not hide the whole list.
			logger.Warn("Failed to sign payment proof link", slog.String("id", reg.ID.String()), slog.String("error", err.Error()))
			continue
		}
		resp[i].PaymentProofUrl = ptr.String(url)
	}

	return resp, nil
}

func registrationToApiRegistration(reg registration.Registration) Registration {
	return Registration{
		Id:                  reg.ID,
		CreatedAt:           reg.CreatedAt,
		FullName:            reg.FullName,
		Email:               openapi_types.Email(reg.Email),
		Dob:                 reg.DateOfBirth,
		Gender:              Gender(reg.Gender),
		Hobbies:             reg.Hobbies,
		PaymentStatus:       Status(reg.Status),
		DecidedAt:           reg.DecidedAt,
		NotificationPending: reg.NotificationPending,
	}
}
