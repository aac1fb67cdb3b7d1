package notification

import "fmt"

type ErrorReason string

const (
	REASON_DISPATCH_FAILURE          ErrorReason = "DISPATCH_FAILURE"
	REASON_FAILED_TO_BUILD_MESSAGE   ErrorReason = "FAILED_TO_BUILD_MESSAGE"
	REASON_FAILED_TO_RENDER_TEMPLATE ErrorReason = "FAILED_TO_RENDER_TEMPLATE"
	REASON_UNKNOWN_DECISION          ErrorReason = "UNKNOWN_DECISION"
)

const genericDispatchMessage = "Email send failed"

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

func newNotificationError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

// NewDispatchFailureError keeps the provider's own message when there is one,
// since that is what gets shown to the admin.
func NewDispatchFailureError(providerMessage string, cause error) *Error {
	if providerMessage == "" {
		providerMessage = genericDispatchMessage
	}
	return newNotificationError(REASON_DISPATCH_FAILURE, providerMessage, cause)
}

func NewFailedToBuildMessageError(message string, cause error) *Error {
	return newNotificationError(REASON_FAILED_TO_BUILD_MESSAGE, message, cause)
}

func NewFailedToRenderTemplateError(message string, cause error) *Error {
	return newNotificationError(REASON_FAILED_TO_RENDER_TEMPLATE, message, cause)
}

func NewUnknownDecisionError(decision Decision) *Error {
	return newNotificationError(REASON_UNKNOWN_DECISION, fmt.Sprintf("Unknown decision %q", decision), nil)
}
