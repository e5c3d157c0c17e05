package queue

import (
	"errors"
	"net/http"
)

// Error codes for queue operations. Handlers translate Status straight into the
// HTTP response code.
const (
	ErrCodeUnauthenticated  = "unauthenticated"
	ErrCodeForbidden        = "forbidden"
	ErrCodeNotFound         = "not_found"
	ErrCodeInvalidInput     = "invalid_input"
	ErrCodeAlreadyProcessed = "already_processed"
	ErrCodeUpstream         = "upstream_failure"
)

type QueueError struct {
	Code    string
	Status  int
	Message string
}

func (e *QueueError) Error() string {
	return e.Code + ": " + e.Message
}

func NewNotFoundError(msg string) error {
	return &QueueError{Code: ErrCodeNotFound, Status: http.StatusNotFound, Message: msg}
}

func NewForbiddenError(msg string) error {
	return &QueueError{Code: ErrCodeForbidden, Status: http.StatusForbidden, Message: msg}
}

func NewInvalidInputError(msg string) error {
	return &QueueError{Code: ErrCodeInvalidInput, Status: http.StatusBadRequest, Message: msg}
}

func NewAlreadyProcessedError(msg string) error {
	return &QueueError{Code: ErrCodeAlreadyProcessed, Status: http.StatusBadRequest, Message: msg}
}

func NewUpstreamError(msg string) error {
	return &QueueError{Code: ErrCodeUpstream, Status: http.StatusInternalServerError, Message: msg}
}

// AsQueueError unwraps err into a QueueError if it is one.
func AsQueueError(err error) (*QueueError, bool) {
	var qe *QueueError
	if errors.As(err, &qe) {
		return qe, true
	}
	return nil, false
}
