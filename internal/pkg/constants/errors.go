package constants

import "net/http"

// CodedError is an error that knows which HTTP status it maps to.
type CodedError struct {
	msg  string
	code int
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound          = NewCodedError("not found", http.StatusNotFound)
	ErrWellNotFound        = NewCodedError("well not found", http.StatusNotFound)
	ErrStageNotFound       = NewCodedError("test stage not found", http.StatusNotFound)
	ErrMeasurementNotFound = NewCodedError("measurement not found", http.StatusNotFound)
	ErrSegmentNotFound     = NewCodedError("lithology segment not found", http.StatusNotFound)
	ErrBadRequest          = NewCodedError("bad request", http.StatusBadRequest)
	ErrInvalidFlowType     = NewCodedError("unknown flow type", http.StatusBadRequest)
	ErrUnauthorized        = NewCodedError("unauthorized", http.StatusUnauthorized)
	ErrMissingSigningKey   = NewCodedError("auth signing key is not configured", http.StatusInternalServerError)
)

var ErrWellExists = NewCodedError("well already exists", http.StatusConflict)

var ErrMaxPressureOutOfRange = NewCodedError("max_pressure exceeds the 100 bar limit", http.StatusBadRequest)
