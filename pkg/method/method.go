// SPDX-License-Identifier: MPL-2.0

package method

import (
	"fmt"
	"strings"

	"dakgen/pkg/types"
)

// DefaultName is the analysis technique used when none is specified.
const DefaultName = "vector_parameter_study"

var (
	// ErrInvalidMethodName is the sentinel error wrapped by InvalidMethodNameError.
	ErrInvalidMethodName = fmt.Errorf("%w: invalid method name", types.ErrInvalidValue)
	// ErrInvalidMaxIterations is the sentinel error wrapped by InvalidMaxIterationsError.
	ErrInvalidMaxIterations = fmt.Errorf("%w: invalid max iterations", types.ErrInvalidValue)
	// ErrInvalidConvergenceTolerance is the sentinel error wrapped by InvalidConvergenceToleranceError.
	ErrInvalidConvergenceTolerance = fmt.Errorf("%w: invalid convergence tolerance", types.ErrInvalidValue)
)

type (
	// Block is the contract shared by all method variants: a named analysis
	// technique that renders itself as the method block of an input deck.
	Block interface {
		Name() string
		Render() string
	}

	// Base carries the controls common to every analysis method: the
	// technique name and the two optional stopping criteria. Concrete
	// variants embed Base and extend its rendering with their own fields.
	Base struct {
		name                    string
		maxIterations           int
		hasMaxIterations        bool
		convergenceTolerance    float64
		hasConvergenceTolerance bool
	}

	// InvalidMethodNameError is returned when a method name is blank.
	// It wraps ErrInvalidMethodName for errors.Is() compatibility.
	InvalidMethodNameError struct {
		Value string
	}

	// InvalidMaxIterationsError is returned when a max_iterations value is
	// negative. It wraps ErrInvalidMaxIterations for errors.Is() compatibility.
	InvalidMaxIterationsError struct {
		Value int
	}

	// InvalidConvergenceToleranceError is returned when a
	// convergence_tolerance value falls outside the open interval (0,1).
	// It wraps ErrInvalidConvergenceTolerance for errors.Is() compatibility.
	InvalidConvergenceToleranceError struct {
		Value float64
	}
)

// New returns a generic method block for the named analysis technique.
// Stopping criteria are unset; assign them through the setters.
func New(name string) (*Base, error) {
	b := &Base{}
	if err := b.SetName(name); err != nil {
		return nil, err
	}
	return b, nil
}

// Name returns the analysis technique name.
func (b *Base) Name() string { return b.name }

// SetName replaces the analysis technique name. A blank name is rejected:
// it would render a syntactically broken block header.
func (b *Base) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &InvalidMethodNameError{Value: name}
	}
	b.name = name
	return nil
}

// MaxIterations returns the iteration stopping bound and whether it is set.
func (b *Base) MaxIterations() (int, bool) {
	return b.maxIterations, b.hasMaxIterations
}

// SetMaxIterations sets the iteration stopping bound. Negative values are
// rejected and the previous value is retained.
func (b *Base) SetMaxIterations(n int) error {
	if n < 0 {
		return &InvalidMaxIterationsError{Value: n}
	}
	b.maxIterations = n
	b.hasMaxIterations = true
	return nil
}

// ClearMaxIterations unsets the iteration stopping bound.
func (b *Base) ClearMaxIterations() {
	b.maxIterations = 0
	b.hasMaxIterations = false
}

// ConvergenceTolerance returns the convergence stopping bound and whether
// it is set.
func (b *Base) ConvergenceTolerance() (float64, bool) {
	return b.convergenceTolerance, b.hasConvergenceTolerance
}

// SetConvergenceTolerance sets the convergence stopping bound, defined on
// the open interval (0,1). Values outside it are rejected and the previous
// value is retained.
func (b *Base) SetConvergenceTolerance(tol float64) error {
	if tol <= 0.0 || tol >= 1.0 {
		return &InvalidConvergenceToleranceError{Value: tol}
	}
	b.convergenceTolerance = tol
	b.hasConvergenceTolerance = true
	return nil
}

// ClearConvergenceTolerance unsets the convergence stopping bound.
func (b *Base) ClearConvergenceTolerance() {
	b.convergenceTolerance = 0
	b.hasConvergenceTolerance = false
}

// Render emits the method block preamble: the header, the technique name,
// and the stopping criteria lines for whichever criteria are set. Variants
// append their own field lines after this; the base never emits a trailing
// block separator.
func (b *Base) Render() string {
	var sb strings.Builder
	sb.WriteString("method\n")
	fmt.Fprintf(&sb, "  %s\n", b.name)
	if b.hasMaxIterations {
		fmt.Fprintf(&sb, "    max_iterations = %d\n", b.maxIterations)
	}
	if b.hasConvergenceTolerance {
		fmt.Fprintf(&sb, "    convergence_tolerance = %s\n", types.FormatReal(b.convergenceTolerance))
	}
	return sb.String()
}

// Error implements the error interface for InvalidMethodNameError.
func (e *InvalidMethodNameError) Error() string {
	return fmt.Sprintf("invalid method name %q: must not be blank", e.Value)
}

// Unwrap returns ErrInvalidMethodName for errors.Is() compatibility.
func (e *InvalidMethodNameError) Unwrap() error { return ErrInvalidMethodName }

// Error implements the error interface for InvalidMaxIterationsError.
func (e *InvalidMaxIterationsError) Error() string {
	return fmt.Sprintf("invalid max iterations %d: must be non-negative", e.Value)
}

// Unwrap returns ErrInvalidMaxIterations for errors.Is() compatibility.
func (e *InvalidMaxIterationsError) Unwrap() error { return ErrInvalidMaxIterations }

// Error implements the error interface for InvalidConvergenceToleranceError.
func (e *InvalidConvergenceToleranceError) Error() string {
	return fmt.Sprintf("invalid convergence tolerance %v: must be on the open interval (0,1)", e.Value)
}

// Unwrap returns ErrInvalidConvergenceTolerance for errors.Is() compatibility.
func (e *InvalidConvergenceToleranceError) Unwrap() error { return ErrInvalidConvergenceTolerance }
