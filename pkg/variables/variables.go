// SPDX-License-Identifier: MPL-2.0

package variables

import (
	"fmt"
	"strings"

	"dakgen/pkg/types"
)

// DefaultKind is the parameter-set kind used when none is specified.
const DefaultKind = "continuous_design"

var (
	// ErrInvalidKind is the sentinel error wrapped by InvalidKindError.
	ErrInvalidKind = fmt.Errorf("%w: invalid variables kind", types.ErrInvalidValue)
	// ErrCountMismatch is the sentinel error wrapped by CountMismatchError.
	ErrCountMismatch = fmt.Errorf("%w: per-variable field length mismatch", types.ErrInvalidValue)
)

type (
	// Block is the contract shared by all variables variants: a parameter
	// set of a given kind that renders itself as the variables block of an
	// input deck.
	Block interface {
		Kind() string
		Render() string
	}

	// Base carries what every parameter set declares: its kind and the
	// ordered descriptor labels, one per variable. Concrete variants embed
	// Base, add their per-variable fields, and extend its rendering.
	Base struct {
		kind        string
		descriptors types.Descriptors
	}

	// InvalidKindError is returned when a variables kind is blank.
	// It wraps ErrInvalidKind for errors.Is() compatibility.
	InvalidKindError struct {
		Value string
	}

	// CountMismatchError is returned when a per-variable field does not
	// have one entry per descriptor. It wraps ErrCountMismatch for
	// errors.Is() compatibility.
	CountMismatchError struct {
		Field string
		Want  int
		Got   int
	}
)

// New returns a parameter set of the given kind with no variables declared.
// The base does not constrain the kind beyond it being non-blank; concrete
// variants fix it.
func New(kind string) (*Base, error) {
	b := &Base{}
	if err := b.SetKind(kind); err != nil {
		return nil, err
	}
	return b, nil
}

// Kind returns the parameter-set kind.
func (b *Base) Kind() string { return b.kind }

// SetKind replaces the parameter-set kind. A blank kind is rejected: it
// would render a syntactically broken block.
func (b *Base) SetKind(kind string) error {
	if strings.TrimSpace(kind) == "" {
		return &InvalidKindError{Value: kind}
	}
	b.kind = kind
	return nil
}

// Descriptors returns the ordered labels of the declared variables.
func (b *Base) Descriptors() types.Descriptors { return b.descriptors }

// SetDescriptors replaces the variable labels. A single bare label is
// normalized to a one-element list; any shape other than a label or a list
// of labels is rejected and the previous value is retained.
func (b *Base) SetDescriptors(value any) error {
	d, err := types.DescriptorsOf(value)
	if err != nil {
		return err
	}
	b.descriptors = d
	return nil
}

// Render emits the variables block preamble: the header, the kind with the
// declared variable count, and the descriptors line. Variants append their
// own per-variable lines after this; the base emits no trailing newline.
func (b *Base) Render() string {
	var sb strings.Builder
	sb.WriteString("variables\n")
	fmt.Fprintf(&sb, "  %s = %d\n", b.kind, len(b.descriptors))
	sb.WriteString("    descriptors =")
	for _, label := range b.descriptors {
		fmt.Fprintf(&sb, " '%s'", label)
	}
	return sb.String()
}

// checkCount verifies that an optional per-variable field has one entry per
// descriptor. A nil field passes; presence requirements belong to the
// concrete variant's Validate.
func (b *Base) checkCount(field string, n int) error {
	if n != len(b.descriptors) {
		return &CountMismatchError{Field: field, Want: len(b.descriptors), Got: n}
	}
	return nil
}

// Error implements the error interface for InvalidKindError.
func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("invalid variables kind %q: must not be blank", e.Value)
}

// Unwrap returns ErrInvalidKind for errors.Is() compatibility.
func (e *InvalidKindError) Unwrap() error { return ErrInvalidKind }

// Error implements the error interface for CountMismatchError.
func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("%s has %d entries, want one per descriptor (%d)", e.Field, e.Got, e.Want)
}

// Unwrap returns ErrCountMismatch for errors.Is() compatibility.
func (e *CountMismatchError) Unwrap() error { return ErrCountMismatch }
