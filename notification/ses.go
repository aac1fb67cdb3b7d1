package notification

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/aws/smithy-go"
)

var _ Sender = &SESSender{}

type SESv2API interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESSender sends mail through Amazon SES as raw MIME so attachments and
// inline images survive.
type SESSender struct {
	client SESv2API
}

func NewSESSender(client SESv2API) *SESSender {
	return &SESSender{
		client: client,
	}
}

func (s *SESSender) SendEmail(ctx context.Context, e Email) error {
	raw, err := rawMessage(e)
	if err != nil {
		return err
	}

	_, err = s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(e.FromAddress),
		Destination: &types.Destination{
			ToAddresses: e.ToAddresses,
		},
		Content: &types.EmailContent{
			Raw: &types.RawMessage{Data: raw},
		},
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return NewDispatchFailureError(apiErr.ErrorMessage(), err)
		}
		return NewDispatchFailureError("", err)
	}

	return nil
}
