// SPDX-License-Identifier: MPL-2.0

package experiment

import (
	"fmt"
	"strings"

	"dakgen/pkg/types"
)

// DefaultTabularDataFile is where tabular run data is written when tabular
// output is enabled and no file name is given.
const DefaultTabularDataFile = "dakota.dat"

var (
	// ErrInvalidDataFile is the sentinel error wrapped by InvalidDataFileError.
	ErrInvalidDataFile = fmt.Errorf("%w: invalid tabular data file", types.ErrInvalidValue)
)

type (
	// Environment configures run-level output: whether tabular data is
	// captured and where it goes.
	Environment struct {
		tabularData     bool
		tabularDataFile string
	}

	// InvalidDataFileError is returned when the tabular data file name is
	// blank. It wraps ErrInvalidDataFile for errors.Is() compatibility.
	InvalidDataFileError struct {
		Value string
	}
)

// NewEnvironment returns an environment with tabular output disabled and the
// default data file name.
func NewEnvironment() *Environment {
	return &Environment{tabularDataFile: DefaultTabularDataFile}
}

// TabularData reports whether tabular run data is captured.
func (e *Environment) TabularData() bool { return e.tabularData }

// SetTabularData toggles tabular run data capture.
func (e *Environment) SetTabularData(enabled bool) { e.tabularData = enabled }

// TabularDataFile returns the tabular data file name.
func (e *Environment) TabularDataFile() string { return e.tabularDataFile }

// SetTabularDataFile replaces the tabular data file name. A blank name is
// rejected and the previous value is retained.
func (e *Environment) SetTabularDataFile(name string) error {
	if strings.TrimSpace(name) == "" {
		return &InvalidDataFileError{Value: name}
	}
	e.tabularDataFile = name
	return nil
}

// Render emits the environment block. With tabular output disabled the block
// is the bare header, so the deck always opens the same way.
func (e *Environment) Render() string {
	var sb strings.Builder
	sb.WriteString("environment\n")
	if e.tabularData {
		sb.WriteString("  tabular_data\n")
		fmt.Fprintf(&sb, "    tabular_data_file = '%s'\n", e.tabularDataFile)
	}
	return sb.String()
}

// Error implements the error interface for InvalidDataFileError.
func (e *InvalidDataFileError) Error() string {
	return fmt.Sprintf("invalid tabular data file %q: must not be blank", e.Value)
}

// Unwrap returns ErrInvalidDataFile for errors.Is() compatibility.
func (e *InvalidDataFileError) Unwrap() error { return ErrInvalidDataFile }
