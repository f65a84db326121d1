// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"dakgen/internal/issue"
)

// starterYAML is the default starter study: a small sampling study wired to
// a placeholder driver, ready to edit.
const starterYAML = `# dakgen study file
method:
  name: sampling
  sample_type: lhs
  samples: 10
  seed: 17
  probability_levels: [0.1, 0.5, 0.9]

variables:
  kind: uniform_uncertain
  descriptors: [x1, x2]
  lower_bounds: [0.0, 0.0]
  upper_bounds: [1.0, 1.0]

interface:
  mode: fork
  analysis_driver: run_model

responses:
  descriptors: [response]
  gradients: no_gradients
  hessians: no_hessians

environment:
  tabular_data: true
`

var (
	initFormat string
	initForce  bool

	initCmd = &cobra.Command{
		Use:   "init",
		Short: "Write a starter study file",
		Long: `Init writes a small, valid sampling study to the working directory as a
starting point. The file is YAML by default; pass --format toml for TOML.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := writeStarter(initFormat, initForce)
			if err != nil {
				fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatError(err))
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("✓ wrote ")+path)
			return nil
		},
	}
)

func init() {
	initCmd.Flags().StringVar(&initFormat, "format", "yaml", "starter file format (yaml or toml)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing study file")
	initCmd.SilenceUsage = true
	initCmd.SilenceErrors = true
}

// writeStarter writes the starter study in the requested format and returns
// the path written. An existing file is refused unless force is set.
func writeStarter(format string, force bool) (string, error) {
	var (
		path string
		data []byte
	)

	switch format {
	case "yaml":
		path = "dakgen.yaml"
		data = []byte(starterYAML)
	case "toml":
		path = "dakgen.toml"
		out, err := toml.Marshal(starterSettings())
		if err != nil {
			return "", issue.Wrap(err, "encode starter study")
		}
		data = out
	default:
		return "", issue.NewContext().
			WithOperation("write starter study").
			WithSuggestion("use --format yaml or --format toml").
			Wrap(fmt.Errorf("unknown format %q", format)).
			Build()
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", issue.NewContext().
				WithOperation("write starter study").
				WithResource(path).
				WithSuggestion("pass --force to overwrite it").
				Wrap(fmt.Errorf("file already exists")).
				Build()
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", issue.WrapResource(err, "write starter study", path)
	}
	return path, nil
}

// starterSettings mirrors starterYAML as a settings map for TOML encoding.
func starterSettings() map[string]any {
	return map[string]any{
		"method": map[string]any{
			"name":               "sampling",
			"sample_type":        "lhs",
			"samples":            10,
			"seed":               17,
			"probability_levels": []float64{0.1, 0.5, 0.9},
		},
		"variables": map[string]any{
			"kind":         "uniform_uncertain",
			"descriptors":  []string{"x1", "x2"},
			"lower_bounds": []float64{0.0, 0.0},
			"upper_bounds": []float64{1.0, 1.0},
		},
		"interface": map[string]any{
			"mode":            "fork",
			"analysis_driver": "run_model",
		},
		"responses": map[string]any{
			"descriptors": []string{"response"},
			"gradients":   "no_gradients",
			"hessians":    "no_hessians",
		},
		"environment": map[string]any{
			"tabular_data": true,
		},
	}
}
