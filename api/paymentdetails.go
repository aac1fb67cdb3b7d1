package api

import "context"

func (a *API) GetPaymentDetails(ctx context.Context, request GetPaymentDetailsRequestObject) (GetPaymentDetailsResponseObject, error) {
	return GetPaymentDetails200JSONResponse{
		AccountName:   a.event.Account.Name,
		AccountNumber: a.event.Account.Number,
		Bank:          a.event.Account.Bank,
		Amount:        a.event.DisplayFee(),
	}, nil
}
