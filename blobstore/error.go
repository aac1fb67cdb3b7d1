package blobstore

import "fmt"

type ErrorReason string

const (
	REASON_UPLOAD_FAILED  ErrorReason = "UPLOAD_FAILED"
	REASON_PRESIGN_FAILED ErrorReason = "PRESIGN_FAILED"
	REASON_TIMEOUT        ErrorReason = "TIMEOUT"
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

func newBlobstoreError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewUploadFailedError(message string, cause error) *Error {
	return newBlobstoreError(REASON_UPLOAD_FAILED, message, cause)
}

func NewPresignFailedError(message string, cause error) *Error {
	return newBlobstoreError(REASON_PRESIGN_FAILED, message, cause)
}

func NewTimeoutError(message string) *Error {
	return newBlobstoreError(REASON_TIMEOUT, message, nil)
}
