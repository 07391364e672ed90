// Package errors provides coded, templated errors for the bootkit packages.
//
// Each package derives its own code sequence with WithPrefix and declares its
// sentinel values once; call sites attach context with WithDetail and WithCause.
// Sentinels stay immutable: WithDetail and WithCause operate on a copy, and
// errors.Is matches on the code instead of pointer identity.
package errors

import (
	"bytes"
	"fmt"
	"runtime"
	"text/template"
	"time"
)

// Code identifies an error class, e.g. "CONTAINER_0003".
type Code string

// New creates a sentinel error for this code. The message may reference
// details with text/template syntax, e.g. "service {{.tag}} not found".
func (c Code) New(msg string) *Error {
	return &Error{
		Code:      c,
		Message:   msg,
		Details:   map[string]any{},
		Timestamp: time.Now(),
	}
}

// WithPrefix returns a factory producing sequentially numbered codes
// sharing a prefix: WithPrefix("CONTAINER") yields CONTAINER_0001,
// CONTAINER_0002 and so on.
func WithPrefix(prefix string) func() Code {
	var counter int
	return func() Code {
		counter++
		return Code(fmt.Sprintf("%s_%04d", prefix, counter))
	}
}

// Error is a coded error with a templated message and structured details.
type Error struct {
	Code      Code           `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	Cause     error          `json:"-"`
	Stack     string         `json:"-"`
	Timestamp time.Time      `json:"timestamp"`
}

func (e *Error) Error() string {
	msg := e.render()
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

func (e *Error) render() string {
	t, err := template.New("error").Parse(e.Message)
	if err != nil {
		return e.Message
	}
	var out bytes.Buffer
	if err := t.Execute(&out, e.Details); err != nil {
		return e.Message
	}
	return out.String()
}

// WithDetail returns a copy of the error carrying an extra detail value.
// The receiver is left untouched so sentinels can be shared.
func (e *Error) WithDetail(key string, value any) *Error {
	clone := e.clone()
	clone.Details[key] = value
	return clone
}

// WithCause returns a copy of the error wrapping an underlying cause.
func (e *Error) WithCause(err error) *Error {
	clone := e.clone()
	clone.Cause = err
	return clone
}

func (e *Error) clone() *Error {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	return &Error{
		Code:      e.Code,
		Message:   e.Message,
		Details:   details,
		Cause:     e.Cause,
		Stack:     captureStack(),
		Timestamp: time.Now(),
	}
}

// Is reports whether target is an *Error with the same code, so
// errors.Is(err, ErrSentinel) keeps working on detail-carrying copies.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func captureStack() string {
	buf := make([]byte, 4096)
	n := runtime.Stack(buf, false)
	return string(buf[:n])
}
