package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrNoSession      = fmt.Errorf("no saved session")
	ErrSessionInvalid = fmt.Errorf("saved session is invalid or expired")
	ErrUnknownChannel = fmt.Errorf("unknown channel")
)

// Kind distinguishes the terminal failure classes of one analysis run.
// None of them are retried internally; retry policy belongs to the
// caller.
type Kind string

const (
	KindConnection        Kind = "connection_failure"
	KindAuthentication    Kind = "authentication_failure"
	KindChannelResolution Kind = "channel_resolution_failure"
	KindStreamInterrupted Kind = "stream_interrupted"
	KindCancelled         Kind = "cancelled"
)

// ScanError is a terminal failure of an analysis run: the failure kind
// plus the human-readable cause.
type ScanError struct {
	Kind  Kind
	Cause error
}

func NewScanError(kind Kind, cause error) *ScanError {
	return &ScanError{Kind: kind, Cause: cause}
}

func (e *ScanError) Error() string {
	if e.Cause == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
}

func (e *ScanError) Unwrap() error {
	return e.Cause
}

// KindOf extracts the failure kind from an error chain.
func KindOf(err error) (Kind, bool) {
	var scanErr *ScanError
	if stderrors.As(err, &scanErr) {
		return scanErr.Kind, true
	}
	return "", false
}
