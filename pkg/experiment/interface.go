// SPDX-License-Identifier: MPL-2.0

package experiment

import (
	"fmt"
	"strings"

	"dakgen/pkg/types"
)

const (
	// ModeFork runs the analysis driver as a forked process.
	ModeFork Mode = "fork"
	// ModeDirect links the analysis driver into the engine directly.
	ModeDirect Mode = "direct"

	// DefaultParametersFile is where variable values are handed to the driver.
	DefaultParametersFile = "params.in"
	// DefaultResultsFile is where the driver reports response values.
	DefaultResultsFile = "results.out"
)

var (
	// ErrInvalidMode is the sentinel error wrapped by InvalidModeError.
	ErrInvalidMode = fmt.Errorf("%w: invalid interface mode", types.ErrInvalidValue)
	// ErrMissingDriver is the sentinel error wrapped by MissingDriverError.
	ErrMissingDriver = fmt.Errorf("%w: missing analysis driver", types.ErrInvalidValue)
)

type (
	// Mode selects how the engine invokes the analysis driver.
	Mode string

	// Interface configures the bridge between the engine and the analysis
	// driver: how the driver is invoked and which files carry parameters
	// and results across the boundary.
	Interface struct {
		id             string
		mode           Mode
		analysisDriver string
		parametersFile string
		resultsFile    string
	}

	// InvalidModeError is returned when a Mode is not recognized. It wraps
	// ErrInvalidMode for errors.Is() compatibility.
	InvalidModeError struct {
		Value Mode
	}

	// MissingDriverError is returned when an interface is validated without
	// an analysis driver. It wraps ErrMissingDriver for errors.Is().
	MissingDriverError struct{}
)

// NewInterface returns a fork-mode interface with the default parameter and
// result file names and no driver set.
func NewInterface() *Interface {
	return &Interface{
		mode:           ModeFork,
		parametersFile: DefaultParametersFile,
		resultsFile:    DefaultResultsFile,
	}
}

// ID returns the interface identifier, empty when unset.
func (i *Interface) ID() string { return i.id }

// SetID replaces the interface identifier. An empty id omits the id line.
func (i *Interface) SetID(id string) { i.id = id }

// Mode returns how the driver is invoked.
func (i *Interface) Mode() Mode { return i.mode }

// SetMode replaces the invocation mode. A value outside the recognized set
// is rejected and the previous value is retained.
func (i *Interface) SetMode(m Mode) error {
	if err := m.Validate(); err != nil {
		return err
	}
	i.mode = m
	return nil
}

// AnalysisDriver returns the driver command, empty when unset.
func (i *Interface) AnalysisDriver() string { return i.analysisDriver }

// SetAnalysisDriver replaces the driver command.
func (i *Interface) SetAnalysisDriver(driver string) { i.analysisDriver = driver }

// ParametersFile returns the file the engine writes variable values to.
func (i *Interface) ParametersFile() string { return i.parametersFile }

// SetParametersFile replaces the parameters file name.
func (i *Interface) SetParametersFile(name string) { i.parametersFile = name }

// ResultsFile returns the file the driver writes response values to.
func (i *Interface) ResultsFile() string { return i.resultsFile }

// SetResultsFile replaces the results file name.
func (i *Interface) SetResultsFile(name string) { i.resultsFile = name }

// Validate checks that an analysis driver is set. Everything else has a
// usable default.
func (i *Interface) Validate() error {
	if strings.TrimSpace(i.analysisDriver) == "" {
		return &MissingDriverError{}
	}
	return nil
}

// Render emits the interface block: the header, the optional id, the mode
// with the driver, and the parameter/result file names.
func (i *Interface) Render() string {
	var sb strings.Builder
	sb.WriteString("interface\n")
	if i.id != "" {
		fmt.Fprintf(&sb, "  id_interface = '%s'\n", i.id)
	}
	fmt.Fprintf(&sb, "  %s\n", i.mode)
	fmt.Fprintf(&sb, "    analysis_driver = '%s'\n", i.analysisDriver)
	fmt.Fprintf(&sb, "    parameters_file = '%s'\n", i.parametersFile)
	fmt.Fprintf(&sb, "    results_file = '%s'\n", i.resultsFile)
	return sb.String()
}

// String returns the string representation of the Mode.
func (m Mode) String() string { return string(m) }

// Validate returns an error if the Mode is not recognized.
func (m Mode) Validate() error {
	switch m {
	case ModeFork, ModeDirect:
		return nil
	default:
		return &InvalidModeError{Value: m}
	}
}

// Error implements the error interface for InvalidModeError.
func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid interface mode %q (valid: fork, direct)", e.Value)
}

// Unwrap returns ErrInvalidMode for errors.Is() compatibility.
func (e *InvalidModeError) Unwrap() error { return ErrInvalidMode }

// Error implements the error interface for MissingDriverError.
func (e *MissingDriverError) Error() string {
	return "interface requires an analysis driver"
}

// Unwrap returns ErrMissingDriver for errors.Is() compatibility.
func (e *MissingDriverError) Unwrap() error { return ErrMissingDriver }
