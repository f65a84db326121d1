// SPDX-License-Identifier: MPL-2.0

// Package responses models the responses block of an analysis experiment
// input deck: the labeled quantities the analysis driver reports back, plus
// the gradient and Hessian availability declarations.
package responses

import (
	"fmt"
	"strings"

	"dakgen/pkg/types"
)

// DefaultKind is the response-set kind used when none is specified.
const DefaultKind = "response_functions"

const (
	// GradientsNone declares that the driver reports no gradients.
	GradientsNone Gradients = "no_gradients"
	// GradientsNumerical declares finite-difference gradients.
	GradientsNumerical Gradients = "numerical_gradients"

	// HessiansNone declares that the driver reports no Hessians.
	HessiansNone Hessians = "no_hessians"
)

var (
	// ErrInvalidKind is the sentinel error wrapped by InvalidKindError.
	ErrInvalidKind = fmt.Errorf("%w: invalid responses kind", types.ErrInvalidValue)
	// ErrInvalidGradients is the sentinel error wrapped by InvalidGradientsError.
	ErrInvalidGradients = fmt.Errorf("%w: invalid gradients", types.ErrInvalidValue)
	// ErrInvalidHessians is the sentinel error wrapped by InvalidHessiansError.
	ErrInvalidHessians = fmt.Errorf("%w: invalid hessians", types.ErrInvalidValue)
)

type (
	// Block is the contract shared by all responses variants.
	Block interface {
		Kind() string
		Render() string
	}

	// Gradients declares how response gradients are obtained.
	Gradients string

	// Hessians declares how response Hessians are obtained.
	Hessians string

	// Base carries what every response set declares: its kind, the ordered
	// response labels, and the gradient/Hessian availability.
	Base struct {
		kind        string
		descriptors types.Descriptors
		gradients   Gradients
		hessians    Hessians
	}

	// InvalidKindError is returned when a responses kind is blank.
	// It wraps ErrInvalidKind for errors.Is() compatibility.
	InvalidKindError struct {
		Value string
	}

	// InvalidGradientsError is returned when a Gradients value is not
	// recognized. It wraps ErrInvalidGradients for errors.Is().
	InvalidGradientsError struct {
		Value Gradients
	}

	// InvalidHessiansError is returned when a Hessians value is not
	// recognized. It wraps ErrInvalidHessians for errors.Is().
	InvalidHessiansError struct {
		Value Hessians
	}
)

// New returns a response set of the default kind with no responses declared,
// no gradients, and no Hessians.
func New() *Base {
	return &Base{
		kind:      DefaultKind,
		gradients: GradientsNone,
		hessians:  HessiansNone,
	}
}

// Kind returns the response-set kind.
func (b *Base) Kind() string { return b.kind }

// SetKind replaces the response-set kind. A blank kind is rejected.
func (b *Base) SetKind(kind string) error {
	if strings.TrimSpace(kind) == "" {
		return &InvalidKindError{Value: kind}
	}
	b.kind = kind
	return nil
}

// Descriptors returns the ordered labels of the declared responses.
func (b *Base) Descriptors() types.Descriptors { return b.descriptors }

// SetDescriptors replaces the response labels. A single bare label is
// normalized to a one-element list; other shapes are rejected and the
// previous value is retained.
func (b *Base) SetDescriptors(value any) error {
	d, err := types.DescriptorsOf(value)
	if err != nil {
		return err
	}
	b.descriptors = d
	return nil
}

// Gradients returns the gradient availability declaration.
func (b *Base) Gradients() Gradients { return b.gradients }

// SetGradients replaces the gradient declaration. A value outside the
// recognized set is rejected and the previous value is retained.
func (b *Base) SetGradients(g Gradients) error {
	if err := g.Validate(); err != nil {
		return err
	}
	b.gradients = g
	return nil
}

// Hessians returns the Hessian availability declaration.
func (b *Base) Hessians() Hessians { return b.hessians }

// SetHessians replaces the Hessian declaration. A value outside the
// recognized set is rejected and the previous value is retained.
func (b *Base) SetHessians(h Hessians) error {
	if err := h.Validate(); err != nil {
		return err
	}
	b.hessians = h
	return nil
}

// Render emits the responses block: the header, the kind with the declared
// response count, the response_descriptors line, and the gradient/Hessian
// declarations.
func (b *Base) Render() string {
	var sb strings.Builder
	sb.WriteString("responses\n")
	fmt.Fprintf(&sb, "  %s = %d\n", b.kind, len(b.descriptors))
	sb.WriteString("    response_descriptors =")
	for _, label := range b.descriptors {
		fmt.Fprintf(&sb, " '%s'", label)
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "  %s\n", b.gradients)
	fmt.Fprintf(&sb, "  %s\n", b.hessians)
	return sb.String()
}

// String returns the string representation of the Gradients declaration.
func (g Gradients) String() string { return string(g) }

// Validate returns an error if the Gradients declaration is not recognized.
func (g Gradients) Validate() error {
	switch g {
	case GradientsNone, GradientsNumerical:
		return nil
	default:
		return &InvalidGradientsError{Value: g}
	}
}

// String returns the string representation of the Hessians declaration.
func (h Hessians) String() string { return string(h) }

// Validate returns an error if the Hessians declaration is not recognized.
func (h Hessians) Validate() error {
	switch h {
	case HessiansNone:
		return nil
	default:
		return &InvalidHessiansError{Value: h}
	}
}

// Error implements the error interface for InvalidKindError.
func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("invalid responses kind %q: must not be blank", e.Value)
}

// Unwrap returns ErrInvalidKind for errors.Is() compatibility.
func (e *InvalidKindError) Unwrap() error { return ErrInvalidKind }

// Error implements the error interface for InvalidGradientsError.
func (e *InvalidGradientsError) Error() string {
	return fmt.Sprintf("invalid gradients %q (valid: no_gradients, numerical_gradients)", e.Value)
}

// Unwrap returns ErrInvalidGradients for errors.Is() compatibility.
func (e *InvalidGradientsError) Unwrap() error { return ErrInvalidGradients }

// Error implements the error interface for InvalidHessiansError.
func (e *InvalidHessiansError) Error() string {
	return fmt.Sprintf("invalid hessians %q (valid: no_hessians)", e.Value)
}

// Unwrap returns ErrInvalidHessians for errors.Is() compatibility.
func (e *InvalidHessiansError) Unwrap() error { return ErrInvalidHessians }
