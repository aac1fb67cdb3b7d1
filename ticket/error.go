package ticket

import "fmt"

type ErrorReason string

const (
	REASON_TEMPLATE_MISSING ErrorReason = "TEMPLATE_MISSING"
	REASON_TEMPLATE_INVALID ErrorReason = "TEMPLATE_INVALID"
	REASON_ENCODING_FAILURE ErrorReason = "ENCODING_FAILURE"
	REASON_RENDER_FAILED    ErrorReason = "RENDER_FAILED"
)

type Error struct {
	Reason  ErrorReason
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s. Cause: %s", e.Reason, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newTicketError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewTemplateMissingError(message string, cause error) *Error {
	return newTicketError(REASON_TEMPLATE_MISSING, message, cause)
}

func NewTemplateInvalidError(message string, cause error) *Error {
	return newTicketError(REASON_TEMPLATE_INVALID, message, cause)
}

func NewEncodingFailureError(message string, cause error) *Error {
	return newTicketError(REASON_ENCODING_FAILURE, message, cause)
}

func NewRenderFailedError(message string, cause error) *Error {
	return newTicketError(REASON_RENDER_FAILED, message, cause)
}
