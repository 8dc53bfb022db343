package apierrors

import (
	"errors"
	"net/http"
)

// Status carries the information needed to map a service error to an
// HTTP response. Message is safe to surface to the caller.
type Status struct {
	Code    int
	Message string
	Details string
}

type APIStatus interface {
	Status() Status
}

type StatusError struct {
	ErrStatus Status
}

var _ error = (*StatusError)(nil)
var _ APIStatus = (*StatusError)(nil)

func (e *StatusError) Error() string {
	return e.ErrStatus.Message
}

func (e *StatusError) Status() Status {
	return e.ErrStatus
}

func NewBadRequest(message string) error {
	return &StatusError{
		ErrStatus: Status{
			Code:    http.StatusBadRequest,
			Message: message,
		},
	}
}

func NewNotFound(message string) error {
	return &StatusError{
		ErrStatus: Status{
			Code:    http.StatusNotFound,
			Message: message,
		},
	}
}

func NewBadGateway(message string, details string) error {
	return &StatusError{
		ErrStatus: Status{
			Code:    http.StatusBadGateway,
			Message: message,
			Details: details,
		},
	}
}

func NewInternalServerError(message string, details string) error {
	return &StatusError{
		ErrStatus: Status{
			Code:    http.StatusInternalServerError,
			Message: message,
			Details: details,
		},
	}
}

// AsAPIStatus returns the status information of err, or nil if err does
// not carry one.
func AsAPIStatus(err error) APIStatus {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr
	}

	return nil
}

func IsBadRequestError(err error) bool {
	return reasonForError(err) == http.StatusBadRequest
}

func IsNotFoundError(err error) bool {
	return reasonForError(err) == http.StatusNotFound
}

func IsBadGatewayError(err error) bool {
	return reasonForError(err) == http.StatusBadGateway
}

func IsInternalServerError(err error) bool {
	return reasonForError(err) == http.StatusInternalServerError
}

func reasonForError(err error) int {
	if status := AsAPIStatus(err); status != nil {
		return status.Status().Code
	}

	return 0
}
