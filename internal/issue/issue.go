// SPDX-License-Identifier: MPL-2.0

// Package issue carries structured, user-facing errors: what operation
// failed, on which resource, and what the user can do about it. The CLI
// layer formats these; library packages return plain typed errors.
package issue

import (
	"errors"
	"fmt"
	"strings"
)

type (
	// ActionableError is an error with enough context to render a helpful
	// message: the operation attempted, the resource involved, and
	// suggestions for fixing the problem.
	//
	// Use the Context builder for construction:
	//
	//	err := issue.NewContext().
	//		WithOperation("load study file").
	//		WithResource("./dakgen.yaml").
	//		WithSuggestion("run 'dakgen init' to create one").
	//		Wrap(cause).
	//		Build()
	ActionableError struct {
		// Operation describes what was being attempted, as a verb phrase.
		Operation string

		// Resource identifies the file or entity involved (optional).
		Resource string

		// Suggestions lists ways the user might fix the problem (optional).
		Suggestions []string

		// Cause is the underlying error (optional).
		Cause error
	}

	// Context builds ActionableError values incrementally, so call sites
	// can establish the operation and resource up front and attach the
	// cause when it occurs.
	Context struct {
		operation   string
		resource    string
		suggestions []string
		cause       error
	}
)

// NewContext returns an empty Context builder.
func NewContext() *Context {
	return &Context{}
}

// Wrap is shorthand for the common case of attaching operation context to
// an error. It returns nil when err is nil.
func Wrap(err error, operation string) *ActionableError {
	if err == nil {
		return nil
	}
	return &ActionableError{Operation: operation, Cause: err}
}

// WrapResource is Wrap with the resource included.
func WrapResource(err error, operation, resource string) *ActionableError {
	if err == nil {
		return nil
	}
	return &ActionableError{Operation: operation, Resource: resource, Cause: err}
}

// Error implements the error interface. The message is concise; use Format
// for the suggestion list and verbose chain.
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
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format renders the error for terminal output: the message, a bulleted
// suggestion list, and, when verbose, the full unwrap chain.
func (e *ActionableError) Format(verbose bool) string {
	var msg strings.Builder
	msg.WriteString(e.Error())

	if len(e.Suggestions) > 0 {
		msg.WriteString("\n")
		for _, suggestion := range e.Suggestions {
			msg.WriteString("\n  • ")
			msg.WriteString(suggestion)
		}
	}

	if verbose && e.Cause != nil {
		msg.WriteString("\n\nError chain:")
		err := e.Cause
		depth := 1
		for err != nil {
			fmt.Fprintf(&msg, "\n  %d. %s", depth, err.Error())
			err = errors.Unwrap(err)
			depth++
		}
	}

	return msg.String()
}

// HasSuggestions reports whether any suggestions are attached.
func (e *ActionableError) HasSuggestions() bool {
	return len(e.Suggestions) > 0
}

// WithOperation sets the operation being performed, as a verb phrase like
// "load study file" or "render input deck".
func (c *Context) WithOperation(op string) *Context {
	c.operation = op
	return c
}

// WithResource sets the file or entity involved.
func (c *Context) WithResource(res string) *Context {
	c.resource = res
	return c
}

// WithSuggestion adds one suggestion; call repeatedly for more.
func (c *Context) WithSuggestion(sug string) *Context {
	c.suggestions = append(c.suggestions, sug)
	return c
}

// Wrap attaches the underlying cause.
func (c *Context) Wrap(err error) *Context {
	c.cause = err
	return c
}

// Build creates the ActionableError. The operation is required; Build
// returns nil without one.
func (c *Context) Build() *ActionableError {
	if c.operation == "" {
		return nil
	}
	return &ActionableError{
		Operation:   c.operation,
		Resource:    c.resource,
		Suggestions: c.suggestions,
		Cause:       c.cause,
	}
}
