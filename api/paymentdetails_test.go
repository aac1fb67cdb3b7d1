package api

import (
	"testing"

	"github.com/asace-youth/event-registration/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPaymentDetails(t *testing.T) {
	event, err := events.NewEvent("ASACE Youth Hangout", "ASACE Youth Team", "", 500000, "NGN", testEvent.Account)
	require.NoError(t, err)

	api := NewAPI(&mockDB{}, &mockProofStore{}, &mockTicketGenerator{}, &mockNotifier{}, event, testAdmin, noopLogger, LOCAL, nil)

	resp, err := api.GetPaymentDetails(testCtx(), GetPaymentDetailsRequestObject{})
	require.NoError(t, err)

	r, ok := resp.(GetPaymentDetails200JSONResponse)
	require.True(t, ok, "unexpected response type: %T", resp)
	assert.Equal(t, "ASACE Youth Fellowship", r.AccountName)
	assert.Equal(t, "0123456789", r.AccountNumber)
	assert.Equal(t, "Example Bank", r.Bank)
	assert.Equal(t, "₦5,000.00", r.Amount)
}
