// SPDX-License-Identifier: MPL-2.0

package types

import (
	"fmt"
	"strings"
)

// ErrInvalidDescriptors is the sentinel error wrapped by InvalidDescriptorsError.
var ErrInvalidDescriptors = fmt.Errorf("%w: invalid descriptors", ErrTypeMismatch)

type (
	// Descriptors holds the ordered labels attached to the entries of a
	// variables or responses block. Position i labels entry i, so the length
	// of the list is the declared entry count.
	Descriptors []string

	// InvalidDescriptorsError is returned when a dynamically typed
	// descriptors value is neither a single label nor a sequence of labels.
	// It wraps ErrInvalidDescriptors for errors.Is() compatibility.
	InvalidDescriptorsError struct {
		Value any
	}
)

// DescriptorsOf normalizes a dynamically typed descriptors value, as read
// from a study file. A single string becomes a one-element list; string
// slices pass through (copied, so later mutation of the input is not
// observed). Any other shape is a type mismatch.
func DescriptorsOf(value any) (Descriptors, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		return Descriptors{v}, nil
	case Descriptors:
		return append(Descriptors(nil), v...), nil
	case []string:
		return append(Descriptors(nil), v...), nil
	case []any:
		out := make(Descriptors, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, &InvalidDescriptorsError{Value: value}
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, &InvalidDescriptorsError{Value: value}
	}
}

// String returns the labels single-quoted and space-separated, matching the
// deck syntax for label lists ('x' 'y').
func (d Descriptors) String() string {
	var sb strings.Builder
	for i, label := range d {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "'%s'", label)
	}
	return sb.String()
}

// Error implements the error interface for InvalidDescriptorsError.
func (e *InvalidDescriptorsError) Error() string {
	return fmt.Sprintf("invalid descriptors %v (%T): must be a label or a list of labels", e.Value, e.Value)
}

// Unwrap returns ErrInvalidDescriptors for errors.Is() compatibility.
func (e *InvalidDescriptorsError) Unwrap() error { return ErrInvalidDescriptors }
