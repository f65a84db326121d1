// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"dakgen/internal/issue"
)

// Load reads a study file and returns the decoded study plus the path that
// was actually read. With an empty path it looks for "dakgen.*" in the
// working directory and falls back to pure defaults when nothing is found;
// an explicit path must exist.
func Load(path string) (*Study, string, error) {
	v := viper.New()
	seedDefaults(v)

	resolvedPath := ""

	if path != "" {
		if !fileExists(path) {
			return nil, "", issue.NewContext().
				WithOperation("load study file").
				WithResource(path).
				WithSuggestion("verify the file path is correct").
				WithSuggestion("run 'dakgen init' to write a starter study file").
				Wrap(fmt.Errorf("study file not found: %s", path)).
				Build()
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", issue.NewContext().
				WithOperation("load study file").
				WithResource(path).
				WithSuggestion("check the file syntax for the format its extension declares").
				Wrap(err).
				Build()
		}
		resolvedPath = path
	} else {
		v.SetConfigName(StudyFileName)
		v.AddConfigPath(".")
		err := v.ReadInConfig()
		var notFound viper.ConfigFileNotFoundError
		switch {
		case err == nil:
			resolvedPath = v.ConfigFileUsed()
		case errors.As(err, &notFound):
			// No study file: defaults apply.
		default:
			return nil, "", issue.NewContext().
				WithOperation("load study file").
				WithResource(v.ConfigFileUsed()).
				WithSuggestion("check the file syntax for the format its extension declares").
				Wrap(err).
				Build()
		}
	}

	if resolvedPath != "" {
		if err := validateSettings(v.AllSettings(), resolvedPath); err != nil {
			return nil, "", issue.NewContext().
				WithOperation("validate study file").
				WithResource(resolvedPath).
				WithSuggestion("fix the reported fields; see the starter file from 'dakgen init' for the expected shape").
				Wrap(err).
				Build()
		}
	}

	var study Study
	if err := v.Unmarshal(&study); err != nil {
		return nil, "", issue.WrapResource(err, "decode study file", resolvedPath)
	}

	return &study, resolvedPath, nil
}

// seedDefaults registers every default, so values survive partial study
// files and stay visible to the schema check.
func seedDefaults(v *viper.Viper) {
	defaults := DefaultStudy()
	v.SetDefault("method.name", defaults.Method.Name)
	v.SetDefault("method.basis_polynomial_family", defaults.Method.BasisPolynomialFamily)
	v.SetDefault("method.sample_type", defaults.Method.SampleType)
	v.SetDefault("responses.gradients", defaults.Responses.Gradients)
	v.SetDefault("responses.hessians", defaults.Responses.Hessians)
	v.SetDefault("interface.mode", defaults.Interface.Mode)
	v.SetDefault("interface.parameters_file", defaults.Interface.ParametersFile)
	v.SetDefault("interface.results_file", defaults.Interface.ResultsFile)
	v.SetDefault("environment.tabular_data_file", defaults.Environment.TabularDataFile)
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
