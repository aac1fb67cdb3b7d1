package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	account := PaymentAccount{Name: "Hangout Committee", Number: "1234567890", Bank: "GTBank"}

	t.Run("valid event", func(t *testing.T) {
		event, err := NewEvent("ASACE Hangout", "ASACE Youth Team", "https://chat.example.com/abc", 500000, "NGN", account)
		require.NoError(t, err)

		assert.Equal(t, "ASACE Hangout", event.Name)
		assert.Equal(t, int64(500000), event.Fee.Amount())
		assert.Equal(t, "NGN", event.Fee.Currency().Code)
		assert.Equal(t, account, event.Account)
	})

	t.Run("unknown currency", func(t *testing.T) {
		_, err := NewEvent("ASACE Hangout", "", "", 100, "XXXX", account)
		assert.Error(t, err)
	})

	t.Run("negative fee", func(t *testing.T) {
		_, err := NewEvent("ASACE Hangout", "", "", -1, "NGN", account)
		assert.Error(t, err)
	})
}

func TestDisplayFee(t *testing.T) {
	event, err := NewEvent("ASACE Hangout", "", "", 1050, "USD", PaymentAccount{})
	require.NoError(t, err)
	assert.Equal(t, "$10.50", event.DisplayFee())

	assert.Equal(t, "", Event{}.DisplayFee())
}
