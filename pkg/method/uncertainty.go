// SPDX-License-Identifier: MPL-2.0

package method

import (
	"fmt"
	"strings"

	"dakgen/pkg/types"
)

// SamplingName is the technique name shared by all uncertainty
// quantification variants.
const SamplingName = "sampling"

const (
	// PolynomialExtended mixes Askey and orthogonal polynomial bases (the default).
	PolynomialExtended PolynomialFamily = "extended"
	// PolynomialAskey uses the Askey family of orthogonal polynomials.
	PolynomialAskey PolynomialFamily = "askey"
	// PolynomialWiener uses Hermite polynomials for all variables.
	PolynomialWiener PolynomialFamily = "wiener"

	// SampleRandom draws purely random samples.
	SampleRandom SampleType = "random"
	// SampleLHS draws Latin hypercube samples.
	SampleLHS SampleType = "lhs"
)

var (
	// ErrInvalidPolynomialFamily is the sentinel error wrapped by InvalidPolynomialFamilyError.
	ErrInvalidPolynomialFamily = fmt.Errorf("%w: invalid polynomial family", types.ErrInvalidValue)
	// ErrInvalidSampleType is the sentinel error wrapped by InvalidSampleTypeError.
	ErrInvalidSampleType = fmt.Errorf("%w: invalid sample type", types.ErrInvalidValue)
	// ErrInvalidSamples is the sentinel error wrapped by InvalidSamplesError.
	ErrInvalidSamples = fmt.Errorf("%w: invalid samples", types.ErrInvalidValue)
)

type (
	// PolynomialFamily selects the polynomial basis used in a stochastic
	// expansion.
	PolynomialFamily string

	// SampleType selects the technique used to draw samples.
	SampleType string

	// UncertaintyQuantification carries the controls common to
	// sampling-based uncertainty studies. It embeds Base with the technique
	// name fixed to "sampling" and extends the base rendering with its own
	// field lines.
	//
	// To supply probability or response levels for multiple responses, use
	// a grouped types.Levels value: one sub-sequence per response.
	UncertaintyQuantification struct {
		Base
		basisPolynomialFamily PolynomialFamily
		probabilityLevels     types.Levels
		responseLevels        types.Levels
		samples               int
		sampleType            SampleType
		seed                  int
		varianceBasedDecomp   bool
	}

	// InvalidPolynomialFamilyError is returned when a PolynomialFamily value
	// is not recognized. It wraps ErrInvalidPolynomialFamily for errors.Is().
	InvalidPolynomialFamilyError struct {
		Value PolynomialFamily
	}

	// InvalidSampleTypeError is returned when a SampleType value is not
	// recognized. It wraps ErrInvalidSampleType for errors.Is().
	InvalidSampleTypeError struct {
		Value SampleType
	}

	// InvalidSamplesError is returned when a sample count is negative.
	// It wraps ErrInvalidSamples for errors.Is().
	InvalidSamplesError struct {
		Value int
	}
)

// NewUncertaintyQuantification returns an uncertainty quantification method
// with the documented defaults: extended polynomial basis, probability
// levels (0.1, 0.5, 0.9), no response levels, 10 random samples, no seed,
// and variance-based decomposition off.
func NewUncertaintyQuantification() *UncertaintyQuantification {
	return &UncertaintyQuantification{
		Base:                  Base{name: SamplingName},
		basisPolynomialFamily: PolynomialExtended,
		probabilityLevels:     types.FlatLevels(0.1, 0.5, 0.9),
		samples:               10,
		sampleType:            SampleRandom,
	}
}

// BasisPolynomialFamily returns the polynomial basis used in the expansion.
func (u *UncertaintyQuantification) BasisPolynomialFamily() PolynomialFamily {
	return u.basisPolynomialFamily
}

// SetBasisPolynomialFamily replaces the polynomial basis. A value outside
// the recognized set is rejected and the previous value is retained.
func (u *UncertaintyQuantification) SetBasisPolynomialFamily(f PolynomialFamily) error {
	if err := f.Validate(); err != nil {
		return err
	}
	u.basisPolynomialFamily = f
	return nil
}

// ProbabilityLevels returns the probabilities at which response values are
// estimated.
func (u *UncertaintyQuantification) ProbabilityLevels() types.Levels {
	return u.probabilityLevels
}

// SetProbabilityLevels replaces the probability levels. The shape (flat or
// grouped) was already resolved when the Levels value was built.
func (u *UncertaintyQuantification) SetProbabilityLevels(l types.Levels) {
	u.probabilityLevels = l
}

// ResponseLevels returns the values at which statistics are estimated for
// each response.
func (u *UncertaintyQuantification) ResponseLevels() types.Levels {
	return u.responseLevels
}

// SetResponseLevels replaces the response levels.
func (u *UncertaintyQuantification) SetResponseLevels(l types.Levels) {
	u.responseLevels = l
}

// Samples returns the number of model evaluations.
func (u *UncertaintyQuantification) Samples() int { return u.samples }

// SetSamples sets the number of model evaluations. Negative counts are
// rejected and the previous value is retained.
func (u *UncertaintyQuantification) SetSamples(n int) error {
	if n < 0 {
		return &InvalidSamplesError{Value: n}
	}
	u.samples = n
	return nil
}

// SampleType returns the sampling technique.
func (u *UncertaintyQuantification) SampleType() SampleType { return u.sampleType }

// SetSampleType replaces the sampling technique. A value outside the
// recognized set is rejected and the previous value is retained.
func (u *UncertaintyQuantification) SetSampleType(s SampleType) error {
	if err := s.Validate(); err != nil {
		return err
	}
	u.sampleType = s
	return nil
}

// Seed returns the random number generator seed. Zero means unset: the
// study is not reproducible and no seed line is rendered.
func (u *UncertaintyQuantification) Seed() int { return u.seed }

// SetSeed sets the random number generator seed. Setting zero clears it;
// a zero seed and an absent seed are deliberately indistinguishable, for
// compatibility with the deck format's treatment of the field.
func (u *UncertaintyQuantification) SetSeed(n int) { u.seed = n }

// VarianceBasedDecomp reports whether variance-based decomposition global
// sensitivity analysis is active.
func (u *UncertaintyQuantification) VarianceBasedDecomp() bool {
	return u.varianceBasedDecomp
}

// SetVarianceBasedDecomp toggles variance-based decomposition.
func (u *UncertaintyQuantification) SetVarianceBasedDecomp(on bool) {
	u.varianceBasedDecomp = on
}

// Render emits the method block for an uncertainty study: the base preamble
// followed, in fixed order, by the non-default polynomial family, the
// sampling controls, the seed when one is set, the level expansions, and
// the variance_based_decomp toggle.
func (u *UncertaintyQuantification) Render() string {
	var sb strings.Builder
	sb.WriteString(u.Base.Render())
	if u.basisPolynomialFamily != PolynomialExtended {
		fmt.Fprintf(&sb, "    %s\n", u.basisPolynomialFamily)
	}
	fmt.Fprintf(&sb, "    sample_type = %s\n", u.sampleType)
	fmt.Fprintf(&sb, "    samples = %d\n", u.samples)
	if u.seed != 0 {
		fmt.Fprintf(&sb, "    seed = %d\n", u.seed)
	}
	if !u.probabilityLevels.IsEmpty() {
		sb.WriteString("    probability_levels =")
		sb.WriteString(u.probabilityLevels.Expand())
	}
	if !u.responseLevels.IsEmpty() {
		sb.WriteString("    response_levels =")
		sb.WriteString(u.responseLevels.Expand())
	}
	if u.varianceBasedDecomp {
		sb.WriteString("    variance_based_decomp\n")
	}
	return sb.String()
}

// String returns the string representation of the PolynomialFamily.
func (f PolynomialFamily) String() string { return string(f) }

// Validate returns an error if the PolynomialFamily is not one of the
// recognized bases.
func (f PolynomialFamily) Validate() error {
	switch f {
	case PolynomialExtended, PolynomialAskey, PolynomialWiener:
		return nil
	default:
		return &InvalidPolynomialFamilyError{Value: f}
	}
}

// String returns the string representation of the SampleType.
func (s SampleType) String() string { return string(s) }

// Validate returns an error if the SampleType is not one of the recognized
// techniques.
func (s SampleType) Validate() error {
	switch s {
	case SampleRandom, SampleLHS:
		return nil
	default:
		return &InvalidSampleTypeError{Value: s}
	}
}

// Error implements the error interface for InvalidPolynomialFamilyError.
func (e *InvalidPolynomialFamilyError) Error() string {
	return fmt.Sprintf("invalid polynomial family %q (valid: extended, askey, wiener)", e.Value)
}

// Unwrap returns ErrInvalidPolynomialFamily for errors.Is() compatibility.
func (e *InvalidPolynomialFamilyError) Unwrap() error { return ErrInvalidPolynomialFamily }

// Error implements the error interface for InvalidSampleTypeError.
func (e *InvalidSampleTypeError) Error() string {
	return fmt.Sprintf("invalid sample type %q (valid: random, lhs)", e.Value)
}

// Unwrap returns ErrInvalidSampleType for errors.Is() compatibility.
func (e *InvalidSampleTypeError) Unwrap() error { return ErrInvalidSampleType }

// Error implements the error interface for InvalidSamplesError.
func (e *InvalidSamplesError) Error() string {
	return fmt.Sprintf("invalid samples %d: must be non-negative", e.Value)
}

// Unwrap returns ErrInvalidSamples for errors.Is() compatibility.
func (e *InvalidSamplesError) Unwrap() error { return ErrInvalidSamples }
