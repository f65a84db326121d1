// SPDX-License-Identifier: MPL-2.0

package variables

import (
	"fmt"
	"strings"

	"dakgen/pkg/types"
)

// ContinuousDesign declares real-valued design variables, optionally with a
// starting point and bounds.
type ContinuousDesign struct {
	Base
	initialPoint []float64
	lowerBounds  []float64
	upperBounds  []float64
}

// NewContinuousDesign returns a continuous design parameter set with no
// variables declared.
func NewContinuousDesign() *ContinuousDesign {
	return &ContinuousDesign{Base: Base{kind: "continuous_design"}}
}

// InitialPoint returns the starting values of the design variables.
func (v *ContinuousDesign) InitialPoint() []float64 {
	return append([]float64(nil), v.initialPoint...)
}

// SetInitialPoint replaces the starting values, one per variable.
func (v *ContinuousDesign) SetInitialPoint(point ...float64) {
	v.initialPoint = append([]float64(nil), point...)
}

// LowerBounds returns the lower bounds of the design variables.
func (v *ContinuousDesign) LowerBounds() []float64 {
	return append([]float64(nil), v.lowerBounds...)
}

// SetLowerBounds replaces the lower bounds, one per variable.
func (v *ContinuousDesign) SetLowerBounds(bounds ...float64) {
	v.lowerBounds = append([]float64(nil), bounds...)
}

// UpperBounds returns the upper bounds of the design variables.
func (v *ContinuousDesign) UpperBounds() []float64 {
	return append([]float64(nil), v.upperBounds...)
}

// SetUpperBounds replaces the upper bounds, one per variable.
func (v *ContinuousDesign) SetUpperBounds(bounds ...float64) {
	v.upperBounds = append([]float64(nil), bounds...)
}

// Validate checks the cross-field rule: every per-variable field that is
// set must have one entry per descriptor. Setters do not enforce this
// because descriptors and the per-variable fields may be assigned in any
// order.
func (v *ContinuousDesign) Validate() error {
	if len(v.initialPoint) > 0 {
		if err := v.checkCount("initial_point", len(v.initialPoint)); err != nil {
			return err
		}
	}
	if len(v.lowerBounds) > 0 {
		if err := v.checkCount("lower_bounds", len(v.lowerBounds)); err != nil {
			return err
		}
	}
	if len(v.upperBounds) > 0 {
		if err := v.checkCount("upper_bounds", len(v.upperBounds)); err != nil {
			return err
		}
	}
	return nil
}

// Render emits the base preamble followed by whichever per-variable fields
// are set.
func (v *ContinuousDesign) Render() string {
	var sb strings.Builder
	sb.WriteString(v.Base.Render())
	sb.WriteString("\n")
	appendRealLine(&sb, "initial_point", v.initialPoint)
	appendRealLine(&sb, "lower_bounds", v.lowerBounds)
	appendRealLine(&sb, "upper_bounds", v.upperBounds)
	return sb.String()
}

// appendRealLine writes an indented per-variable field line; no-op when the
// field is unset.
func appendRealLine(sb *strings.Builder, field string, vals []float64) {
	if len(vals) == 0 {
		return
	}
	fmt.Fprintf(sb, "    %s =", field)
	for _, val := range vals {
		sb.WriteString(" ")
		sb.WriteString(types.FormatReal(val))
	}
	sb.WriteString("\n")
}
