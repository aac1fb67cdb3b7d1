package events

import (
	"fmt"

	"github.com/Rhymond/go-money"
)

// Event holds the fixed details of the hangout that registrations are for.
// There is a single event per deployment, configured at startup.
type Event struct {
	Name      string
	Organizer string
	// Invite link that approved attendees get in their confirmation email.
	GroupLink string
	Fee       *money.Money
	Account   PaymentAccount
}

// PaymentAccount is where attendees send the fee before uploading proof.
type PaymentAccount struct {
	Name   string
	Number string
	Bank   string
}

// NewEvent builds an Event with the fee given in the currency's minor unit.
func NewEvent(name, organizer, groupLink string, feeMinorUnits int64, currency string, account PaymentAccount) (Event, error) {
	if money.GetCurrency(currency) == nil {
		return Event{}, fmt.Errorf("unknown currency code %q", currency)
	}
	if feeMinorUnits < 0 {
		return Event{}, fmt.Errorf("fee must not be negative, got %d", feeMinorUnits)
	}

	return Event{
		Name:      name,
		Organizer: organizer,
		GroupLink: groupLink,
		Fee:       money.New(feeMinorUnits, currency),
		Account:   account,
	}, nil
}

// DisplayFee renders the fee the way the payment instructions show it, e.g. "₦5,000.00".
func (e Event) DisplayFee() string {
	if e.Fee == nil {
		return ""
	}
	return e.Fee.Display()
}
