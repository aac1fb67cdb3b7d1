package notification

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSESClient struct {
	SendEmailFunc func(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

func (m *mockSESClient) SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	return m.SendEmailFunc(ctx, params, optFns...)
}

func testEmailWithTicket() Email {
	return Email{
		FromAddress: testFrom,
		ToAddresses: []string{"a@x.com"},
		Subject:     "Your Registration is Approved",
		HTMLBody:    `<img src="cid:ticket_image"/>`,
		TextBody:    "approved",
		Attachments: []Attachment{
			{Filename: "asace-ticket-Ada.png", ContentType: "image/png", Data: []byte("img"), Inline: true, ContentID: "ticket_image"},
			{Filename: "asace-ticket-Ada.png", ContentType: "image/png", Data: []byte("img")},
		},
	}
}

func TestSESSender(t *testing.T) {
	t.Run("sends raw mime with both attachments", func(t *testing.T) {
		var input *sesv2.SendEmailInput
		client := &mockSESClient{
			SendEmailFunc: func(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
				input = params
				return &sesv2.SendEmailOutput{}, nil
			},
		}

		err := NewSESSender(client).SendEmail(context.Background(), testEmailWithTicket())
		require.NoError(t, err)
		require.NotNil(t, input)

		assert.Equal(t, testFrom, *input.FromEmailAddress)
		assert.Equal(t, []string{"a@x.com"}, input.Destination.ToAddresses)
		require.NotNil(t, input.Content.Raw)

		raw := strings.ToLower(string(input.Content.Raw.Data))
		assert.Contains(t, raw, "subject: your registration is approved")
		assert.Contains(t, raw, "content-id: <ticket_image>")
		assert.Contains(t, raw, "content-disposition: inline")
		assert.Contains(t, raw, "content-disposition: attachment")
		assert.Contains(t, raw, "asace-ticket-ada.png")
	})

	t.Run("api error message is surfaced", func(t *testing.T) {
		client := &mockSESClient{
			SendEmailFunc: func(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
				return nil, &smithy.GenericAPIError{Code: "MessageRejected", Message: "Email address is not verified."}
			},
		}

		err := NewSESSender(client).SendEmail(context.Background(), testEmailWithTicket())
		var notificationErr *Error
		require.True(t, errors.As(err, &notificationErr))
		assert.Equal(t, REASON_DISPATCH_FAILURE, notificationErr.Reason)
		assert.Equal(t, "Email address is not verified.", notificationErr.Message)
	})

	t.Run("non api error uses the generic message", func(t *testing.T) {
		client := &mockSESClient{
			SendEmailFunc: func(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
				return nil, context.DeadlineExceeded
			},
		}

		err := NewSESSender(client).SendEmail(context.Background(), testEmailWithTicket())
		var notificationErr *Error
		require.True(t, errors.As(err, &notificationErr))
		assert.Equal(t, "Email send failed", notificationErr.Message)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("invalid recipient never reaches ses", func(t *testing.T) {
		called := false
		client := &mockSESClient{
			SendEmailFunc: func(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
				called = true
				return &sesv2.SendEmailOutput{}, nil
			},
		}

		e := testEmailWithTicket()
		e.ToAddresses = []string{"not an address"}

		err := NewSESSender(client).SendEmail(context.Background(), e)
		var notificationErr *Error
		require.True(t, errors.As(err, &notificationErr))
		assert.Equal(t, REASON_FAILED_TO_BUILD_MESSAGE, notificationErr.Reason)
		assert.False(t, called)
	})
}

func TestSMTPSenderRejectsBadMessageBeforeDialing(t *testing.T) {
	sender := NewSMTPSender(SMTPSettings{Host: "smtp.invalid", Port: 465})

	e := testEmailWithTicket()
	e.FromAddress = ""

	err := sender.SendEmail(context.Background(), e)
	var notificationErr *Error
	require.True(t, errors.As(err, &notificationErr))
	assert.Equal(t, REASON_FAILED_TO_BUILD_MESSAGE, notificationErr.Reason)
}
