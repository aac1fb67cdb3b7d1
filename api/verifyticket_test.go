package api

import (
	"context"
	"testing"

	"github.com/asace-youth/event-registration/registration"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verifyRequest(data string) PostVerifyTicketRequestObject {
	return PostVerifyTicketRequestObject{
		Body: &PostVerifyTicketJSONRequestBody{TicketData: data},
	}
}

func TestPostVerifyTicket(t *testing.T) {
	approved := pendingRegistration()
	approved.Status = registration.APPROVED
	pending := pendingRegistration()

	db := &mockDB{
		GetRegistrationFunc: func(ctx context.Context, id uuid.UUID) (registration.Registration, error) {
			switch id {
			case approved.ID:
				return approved, nil
			case pending.ID:
				return pending, nil
			}
			return registration.Registration{}, registration.NewRegistrationDoesNotExistsError("not found", nil)
		},
	}
	api := newTestAPI(db, &mockProofStore{}, &mockTicketGenerator{}, &mockNotifier{})

	t.Run("approved ticket", func(t *testing.T) {
		resp, err := api.PostVerifyTicket(testCtx(), verifyRequest("ASACE-TICKET-"+approved.ID.String()))
		require.NoError(t, err)

		r, ok := resp.(PostVerifyTicket200JSONResponse)
		require.True(t, ok, "unexpected response type: %T", resp)
		assert.True(t, r.Valid)
		require.NotNil(t, r.Attendee)
		assert.Equal(t, Attendee{Name: "Ada", Email: "ada@x.io"}, *r.Attendee)
	})

	t.Run("pending ticket", func(t *testing.T) {
		resp, err := api.PostVerifyTicket(testCtx(), verifyRequest("ASACE-TICKET-"+pending.ID.String()))
		require.NoError(t, err)

		r, ok := resp.(PostVerifyTicket403JSONResponse)
		require.True(t, ok, "unexpected response type: %T", resp)
		assert.False(t, r.Valid)
		assert.Nil(t, r.Attendee)
	})

	t.Run("unknown ticket", func(t *testing.T) {
		resp, err := api.PostVerifyTicket(testCtx(), verifyRequest("ASACE-TICKET-"+uuid.NewString()))
		require.NoError(t, err)

		r, ok := resp.(PostVerifyTicket404JSONResponse)
		require.True(t, ok, "unexpected response type: %T", resp)
		assert.False(t, r.Valid)
	})

	t.Run("foreign code", func(t *testing.T) {
		resp, err := api.PostVerifyTicket(testCtx(), verifyRequest("https://example.com"))
		require.NoError(t, err)
		assert.IsType(t, PostVerifyTicket404JSONResponse{}, resp)
	})

	t.Run("store failure", func(t *testing.T) {
		failing := &mockDB{
			GetRegistrationFunc: func(ctx context.Context, id uuid.UUID) (registration.Registration, error) {
				return registration.Registration{}, registration.NewTimeoutError("GetRegistration timed out")
			},
		}
		api := newTestAPI(failing, &mockProofStore{}, &mockTicketGenerator{}, &mockNotifier{})

		resp, err := api.PostVerifyTicket(testCtx(), verifyRequest("ASACE-TICKET-"+approved.ID.String()))
		require.NoError(t, err)
		assert.IsType(t, PostVerifyTicket500JSONResponse{}, resp)
	})
}
