// SPDX-License-Identifier: MPL-2.0

package variables

import (
	"fmt"
	"strings"

	"dakgen/pkg/types"
)

// ErrMissingBounds is the sentinel error wrapped by MissingBoundsError.
var ErrMissingBounds = fmt.Errorf("%w: missing bounds", types.ErrInvalidValue)

type (
	// UniformUncertain declares uniformly distributed aleatory variables.
	// Both bounds are required for the block to be well-formed.
	UniformUncertain struct {
		Base
		lowerBounds []float64
		upperBounds []float64
	}

	// MissingBoundsError is returned when a uniform uncertain set is
	// validated without both bounds. It wraps ErrMissingBounds for
	// errors.Is() compatibility.
	MissingBoundsError struct {
		Field string
	}
)

// NewUniformUncertain returns a uniform uncertain parameter set with no
// variables declared.
func NewUniformUncertain() *UniformUncertain {
	return &UniformUncertain{Base: Base{kind: "uniform_uncertain"}}
}

// LowerBounds returns the distribution lower bounds.
func (v *UniformUncertain) LowerBounds() []float64 {
	return append([]float64(nil), v.lowerBounds...)
}

// SetLowerBounds replaces the distribution lower bounds, one per variable.
func (v *UniformUncertain) SetLowerBounds(bounds ...float64) {
	v.lowerBounds = append([]float64(nil), bounds...)
}

// UpperBounds returns the distribution upper bounds.
func (v *UniformUncertain) UpperBounds() []float64 {
	return append([]float64(nil), v.upperBounds...)
}

// SetUpperBounds replaces the distribution upper bounds, one per variable.
func (v *UniformUncertain) SetUpperBounds(bounds ...float64) {
	v.upperBounds = append([]float64(nil), bounds...)
}

// Validate checks that both bounds are present with one entry per
// descriptor.
func (v *UniformUncertain) Validate() error {
	if len(v.lowerBounds) == 0 {
		return &MissingBoundsError{Field: "lower_bounds"}
	}
	if len(v.upperBounds) == 0 {
		return &MissingBoundsError{Field: "upper_bounds"}
	}
	if err := v.checkCount("lower_bounds", len(v.lowerBounds)); err != nil {
		return err
	}
	return v.checkCount("upper_bounds", len(v.upperBounds))
}

// Render emits the base preamble followed by the bounds lines.
func (v *UniformUncertain) Render() string {
	var sb strings.Builder
	sb.WriteString(v.Base.Render())
	sb.WriteString("\n")
	appendRealLine(&sb, "lower_bounds", v.lowerBounds)
	appendRealLine(&sb, "upper_bounds", v.upperBounds)
	return sb.String()
}

// Error implements the error interface for MissingBoundsError.
func (e *MissingBoundsError) Error() string {
	return fmt.Sprintf("uniform uncertain variables require %s", e.Field)
}

// Unwrap returns ErrMissingBounds for errors.Is() compatibility.
func (e *MissingBoundsError) Unwrap() error { return ErrMissingBounds }
