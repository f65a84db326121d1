// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"dakgen/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"

	// verbose enables diagnostic output on stderr.
	verbose bool
	// studyFile is an explicit study file path; empty means look for
	// dakgen.* in the working directory.
	studyFile string

	rootCmd = &cobra.Command{
		Use:   "dakgen",
		Short: "Compose analysis experiment input decks",
		Long: TitleStyle.Render("dakgen") + SubtitleStyle.Render(" - compose analysis experiment input decks") + `

dakgen turns a declarative study file into a complete input deck for an
analysis engine: environment, method, variables, interface, and responses
blocks, rendered deterministically.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Run 'dakgen init' to write a starter study file
  2. Edit dakgen.yaml to describe your study
  3. Run 'dakgen render' to produce the input deck`,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&studyFile, "study", "s", "", "study file (default: dakgen.* in the working directory)")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(initCmd)
}

// Execute runs the root command. Called once, from main.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

func versionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// newLogger returns the stderr diagnostic logger; debug level when the
// --verbose flag is set.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "dakgen",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// formatError renders an error for display, using the actionable form with
// suggestions when available.
func formatError(err error) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}
