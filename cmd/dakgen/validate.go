// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a study file without rendering",
	Long: `Validate runs the same pipeline as render, schema check, typed
construction, and cross-field rules, and reports the outcome without
writing a deck.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if _, err := composeDeck(studyFile); err != nil {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("✗ ")+formatError(err))
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("✓ study is valid"))
		return nil
	},
}

func init() {
	validateCmd.SilenceUsage = true
	validateCmd.SilenceErrors = true
}
