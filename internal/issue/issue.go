// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
)

// ActionableError is an error with context for user-facing messages: what
// operation failed, what resource was involved, and suggestions for fixing it.
type ActionableError struct {
	// Operation describes what was being attempted, e.g. "read module manifest".
	Operation string

	// Resource identifies the file, path, or URL involved (optional).
	Resource string

	// Suggestions provides hints on how to fix the issue (optional).
	Suggestions []string

	// Cause is the underlying error that triggered this one (optional).
	Cause error
}

// Wrap wraps an error with operation context. Returns nil when err is nil.
func Wrap(err error, operation string) *ActionableError {
	if err == nil {
		return nil
	}
	return &ActionableError{Operation: operation, Cause: err}
}

// WrapResource wraps an error with operation and resource context.
func WrapResource(err error, operation, resource string) *ActionableError {
	if err == nil {
		return nil
	}
	return &ActionableError{Operation: operation, Resource: resource, Cause: err}
}

// WithSuggestion appends a fix suggestion and returns the error for chaining.
func (e *ActionableError) WithSuggestion(s string) *ActionableError {
	e.Suggestions = append(e.Suggestions, s)
	return e
}

// Error returns a concise message suitable for default (non-verbose) output.
func (e *ActionableError) Error() string {
	var msg strings.Builder

	msg.WriteString("failed to ")
	msg.WriteString(e.Operation)

	if e.Resource != "" {
		msg.WriteString(": ")
		msg.WriteString(e.Resource)
	}
	if e.Cause != nil {
		msg.WriteString(": ")
		msg.WriteString(e.Cause.Error())
	}

	return msg.String()
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *ActionableError) Unwrap() error { return e.Cause }

// Format renders the error for terminal display. In verbose mode the full
// cause chain is listed line by line; suggestions are always shown.
func (e *ActionableError) Format(verbose bool) string {
	var msg strings.Builder
	msg.WriteString(e.Error())

	if verbose && e.Cause != nil {
		msg.WriteString("\n\nCause chain:")
		for cause := e.Cause; cause != nil; cause = errors.Unwrap(cause) {
			msg.WriteString("\n  - ")
			msg.WriteString(cause.Error())
		}
	}

	for _, s := range e.Suggestions {
		msg.WriteString("\n  hint: ")
		msg.WriteString(s)
	}

	return msg.String()
}
