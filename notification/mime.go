package notification

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"
)

func buildMessage(e Email) (*mail.Msg, error) {
	msg := mail.NewMsg()

	err := msg.From(e.FromAddress)
	if err != nil {
		return nil, NewFailedToBuildMessageError(fmt.Sprintf("Invalid from address %q", e.FromAddress), err)
	}

	err = msg.To(e.ToAddresses...)
	if err != nil {
		return nil, NewFailedToBuildMessageError(fmt.Sprintf("Invalid recipient in %v", e.ToAddresses), err)
	}

	msg.Subject(e.Subject)

	switch {
	case e.TextBody != "" && e.HTMLBody != "":
		msg.SetBodyString(mail.TypeTextPlain, e.TextBody)
		msg.AddAlternativeString(mail.TypeTextHTML, e.HTMLBody)
	case e.HTMLBody != "":
		msg.SetBodyString(mail.TypeTextHTML, e.HTMLBody)
	default:
		msg.SetBodyString(mail.TypeTextPlain, e.TextBody)
	}

	for _, a := range e.Attachments {
		opts := []mail.FileOption{mail.WithFileContentType(mail.ContentType(a.ContentType))}

		if a.Inline {
			opts = append(opts, mail.WithFileContentID(contentID(a.ContentID)))
			err = msg.EmbedReader(a.Filename, bytes.NewReader(a.Data), opts...)
		} else {
			err = msg.AttachReader(a.Filename, bytes.NewReader(a.Data), opts...)
		}
		if err != nil {
			return nil, NewFailedToBuildMessageError(fmt.Sprintf("Failed to add %q to message", a.Filename), err)
		}
	}

	return msg, nil
}

// contentID wraps id in the angle brackets Content-ID headers require. The
// HTML body still refers to the bare id as cid:<id>.
func contentID(id string) string {
	id = strings.TrimSuffix(strings.TrimPrefix(id, "<"), ">")
	return "<" + id + ">"
}

// rawMessage renders e as an RFC 5322 message, ready for providers that take
// raw MIME.
func rawMessage(e Email) ([]byte, error) {
	msg, err := buildMessage(e)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	if err != nil {
		return nil, NewFailedToBuildMessageError("Failed to write MIME message", err)
	}

	return buf.Bytes(), nil
}
