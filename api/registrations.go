package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/asace-youth/event-registration/registration"
)

const (
	proofFormField = "proof"
	// Text fields are short. Anything past this is cut off and then fails validation.
	maxFormFieldSize = 4 << 10
)

func (a *API) PostRegistrations(ctx context.Context, request PostRegistrationsRequestObject) (PostRegistrationsResponseObject, error) {
	logger := getLoggerFromCtx(ctx)

	if request.Body == nil {
		return PostRegistrations400JSONResponse{BadRequestJSONResponse{
			Error:   true,
			Code:    ErrorCodeEmptyBody,
			Message: "Must specify a body",
		}}, nil
	}

	sub, proof, err := readRegistrationForm(request.Body)
	if err != nil {
		logger.Warn("Invalid registration form", "error", err)

		return PostRegistrations400JSONResponse{BadRequestJSONResponse{
			Error:   true,
			Code:    ErrorCodeInvalidBody,
			Message: err.Error(),
		}}, nil
	}

	reg, err := registration.Submit(ctx, sub, proof, a.proofs, a.db)
	if err != nil {
		var registrationErr *registration.Error
		if errors.As(err, &registrationErr) && registrationErr.Reason == registration.REASON_INVALID_SUBMISSION {
			logger.Warn("Registration failed validation", "error", err)

			return PostRegistrations400JSONResponse{BadRequestJSONResponse{
				Error:   true,
				Code:    ErrorCodeInputValidationError,
				Message: registrationErr.Message,
			}}, nil
		}

		logger.Error("Failed to submit registration", slog.String("error", err.Error()))

		return PostRegistrations500JSONResponse{InternalErrorJSONResponse{
			Error:   true,
			Code:    ErrorCodeInternalError,
			Message: "Failed to submit registration",
		}}, nil
	}

	logger.Info("Registration submitted", slog.String("id", reg.ID.String()))

	return PostRegistrations201JSONResponse{
		Id:     reg.ID,
		Status: Status(reg.Status),
	}, nil
}

func readRegistrationForm(form *multipart.Reader) (registration.Submission, *registration.Proof, error) {
	var sub registration.Submission
	var proof *registration.Proof

	for {
		part, err := form.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return registration.Submission{}, nil, fmt.Errorf("malformed form: %w", err)
		}

		if part.FormName() == proofFormField {
			proof, err = readProof(part)
			if err != nil {
				return registration.Submission{}, nil, err
			}
			continue
		}

		value, err := io.ReadAll(io.LimitReader(part, maxFormFieldSize))
		if err != nil {
			return registration.Submission{}, nil, fmt.Errorf("failed to read field %q: %w", part.FormName(), err)
		}

		switch part.FormName() {
		case "full_name":
			sub.FullName = string(value)
		case "email":
			sub.Email = string(value)
		case "dob":
			sub.DateOfBirth = string(value)
		case "gender":
			sub.Gender = registration.Gender(value)
		case "hobbies":
			sub.Hobbies = string(value)
		}
	}

	return sub, proof, nil
}

func readProof(part *multipart.Part) (*registration.Proof, error) {
	data, err := io.ReadAll(io.LimitReader(part, registration.MaxProofSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read payment proof: %w", err)
	}
	if len(data) > registration.MaxProofSize {
		return nil, fmt.Errorf("payment proof must be at most %d bytes", registration.MaxProofSize)
	}
	if len(data) == 0 {
		return nil, nil
	}

	contentType := part.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	return &registration.Proof{
		FileName:    part.FileName(),
		ContentType: contentType,
		Size:        int64(len(data)),
		Body:        bytes.NewReader(data),
	}, nil
}
