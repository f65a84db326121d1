// SPDX-License-Identifier: MPL-2.0

// Package config loads study files: the declarative description of an
// analysis experiment that the CLI turns into an input deck. A study file
// may be YAML, TOML, or JSON; its decoded settings are validated against an
// embedded CUE schema before any typed object is built.
package config

import (
	"dakgen/pkg/experiment"
	"dakgen/pkg/method"
	"dakgen/pkg/responses"
)

// StudyFileName is the study file looked up in the working directory when
// no explicit path is given (without extension; any viper-supported format).
const StudyFileName = "dakgen"

type (
	// Study is the decoded shape of a study file. Fields the file omits
	// keep the seeded defaults; dynamically shaped fields (descriptors,
	// levels) stay untyped here and are resolved during Build.
	Study struct {
		Method      MethodConfig      `mapstructure:"method"`
		Variables   VariablesConfig   `mapstructure:"variables"`
		Responses   ResponsesConfig   `mapstructure:"responses"`
		Interface   InterfaceConfig   `mapstructure:"interface"`
		Environment EnvironmentConfig `mapstructure:"environment"`
	}

	// MethodConfig declares the analysis technique and its controls. Only
	// the fields the chosen technique understands are consulted; pointer
	// fields distinguish "absent" from a zero value.
	MethodConfig struct {
		Name                  string    `mapstructure:"name"`
		MaxIterations         *int      `mapstructure:"max_iterations"`
		ConvergenceTolerance  *float64  `mapstructure:"convergence_tolerance"`
		BasisPolynomialFamily string    `mapstructure:"basis_polynomial_family"`
		ProbabilityLevels     any       `mapstructure:"probability_levels"`
		ResponseLevels        any       `mapstructure:"response_levels"`
		Samples               *int      `mapstructure:"samples"`
		SampleType            string    `mapstructure:"sample_type"`
		Seed                  int       `mapstructure:"seed"`
		VarianceBasedDecomp   bool      `mapstructure:"variance_based_decomp"`
		FinalPoint            []float64 `mapstructure:"final_point"`
		NumSteps              *int      `mapstructure:"num_steps"`
		Partitions            []int     `mapstructure:"partitions"`
	}

	// VariablesConfig declares the parameter set.
	VariablesConfig struct {
		Kind         string    `mapstructure:"kind"`
		Descriptors  any       `mapstructure:"descriptors"`
		InitialPoint []float64 `mapstructure:"initial_point"`
		LowerBounds  []float64 `mapstructure:"lower_bounds"`
		UpperBounds  []float64 `mapstructure:"upper_bounds"`
	}

	// ResponsesConfig declares the response set.
	ResponsesConfig struct {
		Descriptors any    `mapstructure:"descriptors"`
		Gradients   string `mapstructure:"gradients"`
		Hessians    string `mapstructure:"hessians"`
	}

	// InterfaceConfig declares the analysis driver bridge.
	InterfaceConfig struct {
		ID             string `mapstructure:"id"`
		Mode           string `mapstructure:"mode"`
		AnalysisDriver string `mapstructure:"analysis_driver"`
		ParametersFile string `mapstructure:"parameters_file"`
		ResultsFile    string `mapstructure:"results_file"`
	}

	// EnvironmentConfig declares run-level output capture.
	EnvironmentConfig struct {
		TabularData     bool   `mapstructure:"tabular_data"`
		TabularDataFile string `mapstructure:"tabular_data_file"`
	}
)

// DefaultStudy returns the settings a study file starts from before its own
// values are merged in.
func DefaultStudy() *Study {
	return &Study{
		Method: MethodConfig{
			Name:                  method.DefaultName,
			BasisPolynomialFamily: string(method.PolynomialExtended),
			SampleType:            string(method.SampleRandom),
		},
		Responses: ResponsesConfig{
			Gradients: string(responses.GradientsNone),
			Hessians:  string(responses.HessiansNone),
		},
		Interface: InterfaceConfig{
			Mode:           string(experiment.ModeFork),
			ParametersFile: experiment.DefaultParametersFile,
			ResultsFile:    experiment.DefaultResultsFile,
		},
		Environment: EnvironmentConfig{
			TabularDataFile: experiment.DefaultTabularDataFile,
		},
	}
}
