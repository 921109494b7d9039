package vss

import (
	"encoding/json"
	"errors"
	"fmt"
)

// defaultMessages supplies the message used when an Error is constructed
// without one. Only codes the binding reports directly need an entry; the
// rest fall back to the code's symbolic name.
var defaultMessages = map[HRESULT]string{
	codeTransactionThawTimeout:       "The system was unable to thaw the Distributed Transaction Coordinator (DTC) or the Kernel Transaction Manager (KTM).",
	VSS_E_TRANSACTION_FREEZE_TIMEOUT: "The system was unable to freeze the Distributed Transaction Coordinator (DTC) or the Kernel Transaction Manager (KTM).",
	VSS_E_BAD_STATE:                  "The backup components object is not initialized, or this method has been called during a restore operation, or this method has not been called within the correct sequence.",
	VSS_E_UNEXPECTED:                 "An unexpected error occurred in the VSS infrastructure.",
	E_ACCESSDENIED:                   "The caller does not have sufficient backup privileges or is not an administrator.",
	E_OUTOFMEMORY:                    "Out of memory or other system resources.",
	E_INVALIDARG:                     "One of the parameter values is not valid.",
	VSS_E_PROVIDER_VETO:              "An expected provider error has occurred. The error code is logged in the event log.",
	VSS_E_OBJECT_NOT_FOUND:           "The specified object was not found.",
	VSS_E_VOLUME_NOT_SUPPORTED:       "Shadow copying the specified volume is not supported.",
	VSS_E_WRITER_NOT_RESPONDING:      "The writer is not responding.",
	VSS_E_INSUFFICIENT_STORAGE:       "The system or provider has insufficient storage space.",
}

func defaultMessage(code HRESULT) string {
	if msg, ok := defaultMessages[code]; ok {
		return msg
	}
	return fmt.Sprintf("Unexpected VSS error: %s (%#x)", code, uint(code))
}

// Error is a native VSS status code translated into a Go error. It carries
// the code, a human readable message and an optional chained cause, and is
// immutable once constructed.
type Error struct {
	code    HRESULT
	message string
	cause   error
}

// NewError returns an Error for code carrying the code's fixed default
// message.
func NewError(code HRESULT) *Error {
	return &Error{code: code, message: defaultMessage(code)}
}

// NewErrorWithMessage returns an Error for code carrying the caller's
// message verbatim.
func NewErrorWithMessage(code HRESULT, message string) *Error {
	return &Error{code: code, message: message}
}

// NewErrorWithCause returns an Error for code with the caller's message and
// a chained cause retrievable via errors.Unwrap.
func NewErrorWithCause(code HRESULT, message string, cause error) *Error {
	return &Error{code: code, message: message, cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("VSS error: %s: %s (%#x)", e.message, e.code, uint(e.code))
}

// Code returns the native status code associated with the error.
func (e *Error) Code() HRESULT { return e.code }

// Message returns the human readable message.
func (e *Error) Message() string { return e.message }

// Unwrap returns the chained cause, if any.
func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is an Error with the same status code, so
// errors.Is(err, ErrTransactionThawTimeout) matches regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.code == e.code
}

type errorJSON struct {
	Code    uint32 `json:"code"`
	Message string `json:"message"`
	Cause   string `json:"cause,omitempty"`
}

// MarshalJSON serializes the error. A chained cause is flattened to its
// message text.
func (e *Error) MarshalJSON() ([]byte, error) {
	raw := errorJSON{Code: uint32(e.code), Message: e.message}
	if e.cause != nil {
		raw.Cause = e.cause.Error()
	}
	return json.Marshal(raw)
}

// UnmarshalJSON reconstructs an error from its serialized form, preserving
// the code class association. A missing message is replaced with the code's
// default.
func (e *Error) UnmarshalJSON(data []byte) error {
	var raw errorJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	e.code = HRESULT(raw.Code)
	e.message = raw.Message
	if e.message == "" {
		e.message = defaultMessage(e.code)
	}
	e.cause = nil
	if raw.Cause != "" {
		e.cause = errors.New(raw.Cause)
	}
	return nil
}

// Sentinel errors for the status codes the binding reports directly. Match
// with errors.Is; the comparison is by code, not by message.
var (
	ErrTransactionThawTimeout   = NewError(codeTransactionThawTimeout)
	ErrTransactionFreezeTimeout = NewError(VSS_E_TRANSACTION_FREEZE_TIMEOUT)
	ErrBadState                 = NewError(VSS_E_BAD_STATE)
	ErrAccessDenied             = NewError(E_ACCESSDENIED)
	ErrUnexpected               = NewError(VSS_E_UNEXPECTED)
)

// errorIfNotOK translates a non-S_OK result into an Error with the given
// context text.
func errorIfNotOK(text string, code HRESULT) error {
	if code != S_OK {
		return NewErrorWithMessage(code, text)
	}
	return nil
}

// UnsupportedPlatformError reports that the running operating system or
// processor architecture cannot be mapped to an implementation assembly.
// It is fatal to the resolution attempt and never retried.
type UnsupportedPlatformError struct {
	Reason string
}

// Error implements the error interface.
func (e *UnsupportedPlatformError) Error() string {
	return "VSS error: " + e.Reason
}
