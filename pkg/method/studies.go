// SPDX-License-Identifier: MPL-2.0

package method

import (
	"fmt"
	"strings"

	"dakgen/pkg/types"
)

var (
	// ErrInvalidNumSteps is the sentinel error wrapped by InvalidNumStepsError.
	ErrInvalidNumSteps = fmt.Errorf("%w: invalid num steps", types.ErrInvalidValue)
	// ErrInvalidPartitions is the sentinel error wrapped by InvalidPartitionsError.
	ErrInvalidPartitions = fmt.Errorf("%w: invalid partitions", types.ErrInvalidValue)
)

type (
	// VectorParameterStudy walks a vector of points from the variables'
	// initial point to a final point in a fixed number of steps.
	VectorParameterStudy struct {
		Base
		finalPoint []float64
		numSteps   int
	}

	// MultidimParameterStudy samples a hypergrid over the variables' bounds,
	// with a partition count per variable.
	MultidimParameterStudy struct {
		Base
		partitions []int
	}

	// Sampling is the concrete sampling-based uncertainty study; it carries
	// no controls beyond the shared uncertainty quantification set.
	Sampling struct {
		UncertaintyQuantification
	}

	// InvalidNumStepsError is returned when a num_steps value is negative.
	// It wraps ErrInvalidNumSteps for errors.Is() compatibility.
	InvalidNumStepsError struct {
		Value int
	}

	// InvalidPartitionsError is returned when a partitions entry is negative.
	// It wraps ErrInvalidPartitions for errors.Is() compatibility.
	InvalidPartitionsError struct {
		Value int
	}
)

// NewVectorParameterStudy returns a vector parameter study with no final
// point and the default of 10 steps.
func NewVectorParameterStudy() *VectorParameterStudy {
	return &VectorParameterStudy{
		Base:     Base{name: "vector_parameter_study"},
		numSteps: 10,
	}
}

// FinalPoint returns the endpoint of the study vector.
func (m *VectorParameterStudy) FinalPoint() []float64 {
	return append([]float64(nil), m.finalPoint...)
}

// SetFinalPoint replaces the endpoint of the study vector, one coordinate
// per variable.
func (m *VectorParameterStudy) SetFinalPoint(point ...float64) {
	m.finalPoint = append([]float64(nil), point...)
}

// NumSteps returns the number of steps along the study vector.
func (m *VectorParameterStudy) NumSteps() int { return m.numSteps }

// SetNumSteps sets the number of steps along the study vector. Negative
// values are rejected and the previous value is retained.
func (m *VectorParameterStudy) SetNumSteps(n int) error {
	if n < 0 {
		return &InvalidNumStepsError{Value: n}
	}
	m.numSteps = n
	return nil
}

// Render emits the base preamble followed by the final_point line, when one
// is set, and the num_steps line.
func (m *VectorParameterStudy) Render() string {
	var sb strings.Builder
	sb.WriteString(m.Base.Render())
	if len(m.finalPoint) > 0 {
		sb.WriteString("    final_point =")
		for _, v := range m.finalPoint {
			sb.WriteString(" ")
			sb.WriteString(types.FormatReal(v))
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "    num_steps = %d\n", m.numSteps)
	return sb.String()
}

// NewMultidimParameterStudy returns a multidim parameter study with no
// partitions declared.
func NewMultidimParameterStudy() *MultidimParameterStudy {
	return &MultidimParameterStudy{
		Base: Base{name: "multidim_parameter_study"},
	}
}

// Partitions returns the per-variable partition counts.
func (m *MultidimParameterStudy) Partitions() []int {
	return append([]int(nil), m.partitions...)
}

// SetPartitions replaces the per-variable partition counts. A negative
// entry rejects the whole assignment and the previous value is retained.
func (m *MultidimParameterStudy) SetPartitions(partitions ...int) error {
	for _, p := range partitions {
		if p < 0 {
			return &InvalidPartitionsError{Value: p}
		}
	}
	m.partitions = append([]int(nil), partitions...)
	return nil
}

// Render emits the base preamble followed by the partitions line, when
// partitions are declared.
func (m *MultidimParameterStudy) Render() string {
	var sb strings.Builder
	sb.WriteString(m.Base.Render())
	if len(m.partitions) > 0 {
		sb.WriteString("    partitions =")
		for _, p := range m.partitions {
			fmt.Fprintf(&sb, " %d", p)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// NewSampling returns the concrete sampling study with the shared
// uncertainty quantification defaults.
func NewSampling() *Sampling {
	return &Sampling{UncertaintyQuantification: *NewUncertaintyQuantification()}
}

// Error implements the error interface for InvalidNumStepsError.
func (e *InvalidNumStepsError) Error() string {
	return fmt.Sprintf("invalid num steps %d: must be non-negative", e.Value)
}

// Unwrap returns ErrInvalidNumSteps for errors.Is() compatibility.
func (e *InvalidNumStepsError) Unwrap() error { return ErrInvalidNumSteps }

// Error implements the error interface for InvalidPartitionsError.
func (e *InvalidPartitionsError) Error() string {
	return fmt.Sprintf("invalid partitions entry %d: must be non-negative", e.Value)
}

// Unwrap returns ErrInvalidPartitions for errors.Is() compatibility.
func (e *InvalidPartitionsError) Unwrap() error { return ErrInvalidPartitions }
