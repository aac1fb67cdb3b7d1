package notification

import "context"

// Email is a provider-agnostic outbound message.
type Email struct {
	FromAddress string
	ToAddresses []string
	Subject     string
	HTMLBody    string
	TextBody    string
	Attachments []Attachment
}

// Attachment is a file carried by an Email. Inline attachments are embedded
// in the HTML body and referenced as cid:<ContentID>.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
	Inline      bool
	ContentID   string
}

type Sender interface {
	SendEmail(ctx context.Context, e Email) error
}
