// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dakgen/internal/config"
	"dakgen/internal/issue"
)

var (
	// outputFile receives the rendered deck; empty means stdout.
	outputFile string

	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Render the input deck from a study file",
		Long: `Render loads the study file, builds the experiment it describes, checks
its cross-field rules, and writes the resulting input deck.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deck, err := composeDeck(studyFile)
			if err != nil {
				fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatError(err))
				return err
			}

			if outputFile == "" {
				fmt.Fprint(cmd.OutOrStdout(), deck)
				return nil
			}
			if err := os.WriteFile(outputFile, []byte(deck), 0o644); err != nil {
				wrapped := issue.WrapResource(err, "write input deck", outputFile)
				fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatError(wrapped))
				return wrapped
			}
			newLogger().Debug("wrote input deck", "path", outputFile, "bytes", len(deck))
			return nil
		},
	}
)

func init() {
	renderCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write the deck to a file instead of stdout")
	renderCmd.SilenceUsage = true
	renderCmd.SilenceErrors = true
}

// composeDeck runs the full pipeline: load the study file, build the typed
// experiment, validate it, and render the deck text.
func composeDeck(path string) (string, error) {
	logger := newLogger()

	study, resolved, err := config.Load(path)
	if err != nil {
		return "", err
	}
	if resolved == "" {
		logger.Debug("no study file found, using defaults")
	} else {
		logger.Debug("loaded study file", "path", resolved)
	}

	e, err := study.Build()
	if err != nil {
		return "", issue.NewContext().
			WithOperation("build experiment").
			WithResource(resolved).
			WithSuggestion("fix the reported field in the study file").
			Wrap(err).
			Build()
	}

	if err := e.Validate(); err != nil {
		return "", issue.NewContext().
			WithOperation("validate experiment").
			WithResource(resolved).
			WithSuggestion("fix the reported block in the study file").
			Wrap(err).
			Build()
	}

	return e.Render(), nil
}
