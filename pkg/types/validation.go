// SPDX-License-Identifier: MPL-2.0

// Package types defines the cross-cutting value types shared by the block
// families: level sequences, descriptor labels, and the validation error
// taxonomy they report against.
package types

import "errors"

// The two validation categories every field-level error resolves to.
// Typed errors wrap their own field sentinel, and each field sentinel wraps
// exactly one of these, so callers can branch on the category with errors.Is
// without knowing the concrete field.
var (
	// ErrTypeMismatch reports a value whose shape or type does not match the
	// field (e.g., a number where a label list is expected).
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidValue reports a well-typed value outside the field's allowed
	// domain (e.g., a tolerance outside the open interval (0,1)).
	ErrInvalidValue = errors.New("invalid value")
)
