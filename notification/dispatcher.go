package notification

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/asace-youth/event-registration/events"
	"github.com/asace-youth/event-registration/ticket"
)

//go:embed templates
var templates embed.FS

type Decision string

const (
	APPROVED Decision = "approved"
	REJECTED Decision = "rejected"
)

const (
	ticketContentID   = "ticket_image"
	ticketContentType = "image/png"
)

// Dispatcher turns an admin decision into the email the attendee receives.
type Dispatcher struct {
	sender      Sender
	fromAddress string
	event       events.Event
}

func NewDispatcher(sender Sender, fromAddress string, event events.Event) *Dispatcher {
	return &Dispatcher{
		sender:      sender,
		fromAddress: fromAddress,
		event:       event,
	}
}

type templateData struct {
	Name      string
	TicketID  string
	Event     events.Event
	HasTicket bool
	ContentID string
}

// SendDecision emails the outcome of a review. For approvals with a ticket the
// image goes out twice: inline for the HTML body and as a download.
func (d *Dispatcher) SendDecision(ctx context.Context, recipientEmail, recipientName, ticketID string, decision Decision, ticketImage []byte) error {
	e, err := d.composeDecision(recipientEmail, recipientName, ticketID, decision, ticketImage)
	if err != nil {
		return err
	}

	err = d.sender.SendEmail(ctx, e)
	if err != nil {
		var notificationErr *Error
		if errors.As(err, &notificationErr) {
			return notificationErr
		}
		return NewDispatchFailureError(err.Error(), err)
	}

	return nil
}

func (d *Dispatcher) composeDecision(recipientEmail, recipientName, ticketID string, decision Decision, ticketImage []byte) (Email, error) {
	data := templateData{
		Name:      displayName(recipientName),
		TicketID:  ticketID,
		Event:     d.event,
		ContentID: ticketContentID,
	}

	var subject, templateName string
	var attachments []Attachment

	switch decision {
	case APPROVED:
		subject = "Your Registration is Approved 🎉 - Event Ticket Attached"
		templateName = "approved"

		if len(ticketImage) > 0 {
			data.HasTicket = true
			filename := ticket.FileName(recipientName)
			attachments = []Attachment{
				{
					Filename:    filename,
					ContentType: ticketContentType,
					Data:        ticketImage,
					Inline:      true,
					ContentID:   ticketContentID,
				},
				{
					Filename:    filename,
					ContentType: ticketContentType,
					Data:        ticketImage,
				},
			}
		}
	case REJECTED:
		subject = "Your Registration Could Not Be Verified"
		templateName = "rejected"
	default:
		return Email{}, NewUnknownDecisionError(decision)
	}

	htmlBody, err := makeHtmlBody(templateName, data)
	if err != nil {
		return Email{}, err
	}

	textBody, err := makeTextOnlyBody(templateName, data)
	if err != nil {
		return Email{}, err
	}

	return Email{
		FromAddress: d.fromAddress,
		ToAddresses: []string{recipientEmail},
		Subject:     subject,
		HTMLBody:    htmlBody,
		TextBody:    textBody,
		Attachments: attachments,
	}, nil
}

func displayName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "there"
	}
	return name
}

func makeHtmlBody(name string, data templateData) (string, error) {
	file := name + ".tmpl"
	tmpl, err := htmltemplate.New(file).ParseFS(templates, "templates/"+file)
	if err != nil {
		return "", NewFailedToRenderTemplateError(fmt.Sprintf("Failed to parse email template %q", file), err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", NewFailedToRenderTemplateError(fmt.Sprintf("Failed to execute email template %q", file), err)
	}

	return buf.String(), nil
}

func makeTextOnlyBody(name string, data templateData) (string, error) {
	file := name + "-textonly.tmpl"
	tmpl, err := texttemplate.New(file).ParseFS(templates, "templates/"+file)
	if err != nil {
		return "", NewFailedToRenderTemplateError(fmt.Sprintf("Failed to parse email template %q", file), err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", NewFailedToRenderTemplateError(fmt.Sprintf("Failed to execute email template %q", file), err)
	}

	return buf.String(), nil
}
