package registration

import "fmt"

type ErrorReason string

const (
	REASON_FAILED_TO_TRANSLATE_TO_DB_MODEL ErrorReason = "FAILED_TO_TRANSLATE_TO_DB_MODEL"
	REASON_FAILED_TO_WRITE                 ErrorReason = "FAILED_TO_WRITE"
	REASON_FAILED_TO_FETCH                 ErrorReason = "FAILED_TO_FETCH"
	REASON_TIMEOUT                         ErrorReason = "TIMEOUT"
	REASON_REGISTRATION_DOES_NOT_EXIST     ErrorReason = "REGISTRATION_DOES_NOT_EXIST"
	REASON_REGISTRATION_ALREADY_EXISTS     ErrorReason = "REGISTRATION_ALREADY_EXISTS"
	REASON_INVALID_SUBMISSION              ErrorReason = "INVALID_SUBMISSION"
	REASON_FAILED_TO_STORE_PROOF           ErrorReason = "FAILED_TO_STORE_PROOF"
	REASON_INVALID_STATUS                  ErrorReason = "INVALID_STATUS"
	REASON_ALREADY_DECIDED                 ErrorReason = "ALREADY_DECIDED"
	REASON_RECIPIENT_UNRESOLVED            ErrorReason = "RECIPIENT_UNRESOLVED"
	REASON_TICKET_GENERATION_FAILED        ErrorReason = "TICKET_GENERATION_FAILED"
	REASON_NOTIFICATION_FAILED             ErrorReason = "NOTIFICATION_FAILED"
	REASON_TICKET_NOT_FOUND                ErrorReason = "TICKET_NOT_FOUND"
	REASON_TICKET_NOT_APPROVED             ErrorReason = "TICKET_NOT_APPROVED"
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

func newRegistrationError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewFailedToWriteError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_WRITE, message, cause)
}

func NewFailedToTranslateToDBModelError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_TRANSLATE_TO_DB_MODEL, message, cause)
}

func NewFailedToFetchError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_FETCH, message, cause)
}

func NewTimeoutError(message string) *Error {
	return newRegistrationError(REASON_TIMEOUT, message, nil)
}

func NewRegistrationAlreadyExistsError(message string, cause error) *Error {
	return newRegistrationError(REASON_REGISTRATION_ALREADY_EXISTS, message, cause)
}

func NewRegistrationDoesNotExistsError(message string, cause error) *Error {
	return newRegistrationError(REASON_REGISTRATION_DOES_NOT_EXIST, message, cause)
}

func NewInvalidSubmissionError(message string, cause error) *Error {
	return newRegistrationError(REASON_INVALID_SUBMISSION, message, cause)
}

func NewFailedToStoreProofError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_STORE_PROOF, message, cause)
}

func NewInvalidStatusError(status Status) *Error {
	return newRegistrationError(REASON_INVALID_STATUS, fmt.Sprintf("Status must be %q or %q, got %q", APPROVED, REJECTED, status), nil)
}

func NewAlreadyDecidedError(message string, cause error) *Error {
	return newRegistrationError(REASON_ALREADY_DECIDED, message, cause)
}

func NewRecipientUnresolvedError(message string, cause error) *Error {
	return newRegistrationError(REASON_RECIPIENT_UNRESOLVED, message, cause)
}

func NewTicketGenerationFailedError(message string, cause error) *Error {
	return newRegistrationError(REASON_TICKET_GENERATION_FAILED, message, cause)
}

func NewNotificationFailedError(message string, cause error) *Error {
	return newRegistrationError(REASON_NOTIFICATION_FAILED, message, cause)
}

func NewTicketNotFoundError(message string, cause error) *Error {
	return newRegistrationError(REASON_TICKET_NOT_FOUND, message, cause)
}

func NewTicketNotApprovedError(status Status) *Error {
	return newRegistrationError(REASON_TICKET_NOT_APPROVED, fmt.Sprintf("Ticket is %s, not approved", status), nil)
}
