package common

import (
	"errors"
	"fmt"
)

// ErrorKind classifies pipeline failures.
type ErrorKind string

const (
	// KindDecode means the source or chunk bytes are not a parseable PDF.
	KindDecode ErrorKind = "decode"
	// KindIO means rasterization or a filesystem artifact operation failed.
	KindIO ErrorKind = "io"
	// KindUpstream means the extraction model returned a non-success response.
	KindUpstream ErrorKind = "upstream"
	// KindParse means the model reply was absent, not JSON, or schema-violating.
	KindParse ErrorKind = "parse"
	// KindStore means the persistence layer rejected a batch write.
	KindStore ErrorKind = "store"
	// KindConfig means the application configuration is invalid.
	KindConfig ErrorKind = "config"
)

// PipelineError is the typed error threaded through the extraction pipeline.
// None of these kinds are retried; the first one aborts the upload.
type PipelineError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, message string, err error) *PipelineError {
	return &PipelineError{Kind: kind, Message: message, Err: err}
}

func NewDecodeError(message string, err error) *PipelineError {
	return newError(KindDecode, message, err)
}

func NewIOError(message string, err error) *PipelineError {
	return newError(KindIO, message, err)
}

// NewUpstreamError carries the upstream HTTP status and response body so the
// caller can diagnose model-side failures.
func NewUpstreamError(status int, body string, err error) *PipelineError {
	return newError(KindUpstream, fmt.Sprintf("upstream status %d: %s", status, body), err)
}

func NewParseError(message string, err error) *PipelineError {
	return newError(KindParse, message, err)
}

func NewStoreError(message string, err error) *PipelineError {
	return newError(KindStore, message, err)
}

func NewConfigError(message string) *PipelineError {
	return newError(KindConfig, message, nil)
}

// KindOf reports the kind of err, or "" when err carries no PipelineError.
func KindOf(err error) ErrorKind {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}
