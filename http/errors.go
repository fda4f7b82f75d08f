package http

import (
	"errors"
	"fmt"
)

// Validation failures raised while shaping a request. They are never
// retried and reach the caller unchanged.
var (
	ErrMissingContentType = errors.New("missing content type")
	ErrInvalidToken       = errors.New("invalid token")
	ErrMissingFileType    = errors.New("missing file type")
	ErrUnknownContentType = errors.New("unknown content type")
	ErrMissingTypeOrData  = errors.New("missing content type or data")
	ErrEmptyData          = errors.New("empty data")
	ErrSerialization      = errors.New("serialization error")
	ErrFormData           = errors.New("form-data error")
	ErrInvalidTextData    = errors.New("text data must be a string")

	ErrMissingBaseURL = errors.New("missing or invalid base URL")
)

// ValidationError reports which builder rejected a request and why.
// Kind is one of the Err* sentinels above; Err carries the underlying
// cause when there is one.
type ValidationError struct {
	Op   string
	Kind error
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Kind)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func headerError(kind error) error {
	return &ValidationError{Op: "headers", Kind: kind}
}

func bodyError(kind, cause error) error {
	return &ValidationError{Op: "body", Kind: kind, Err: cause}
}
