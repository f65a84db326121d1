// SPDX-License-Identifier: MPL-2.0

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeDeck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "study.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
method:
  name: sampling
  sample_type: lhs
  samples: 20
  seed: 17
variables:
  kind: uniform_uncertain
  descriptors: [x, y]
  lower_bounds: [0.0, 0.0]
  upper_bounds: [1.0, 1.0]
interface:
  analysis_driver: run_model
responses:
  descriptors: response
`), 0o644))

	deck, err := composeDeck(path)
	require.NoError(t, err)

	want := "environment\n" +
		"\n" +
		"method\n" +
		"  sampling\n" +
		"    sample_type = lhs\n" +
		"    samples = 20\n" +
		"    seed = 17\n" +
		"    probability_levels = 0.1 0.5 0.9\n" +
		"\n" +
		"variables\n" +
		"  uniform_uncertain = 2\n" +
		"    descriptors = 'x' 'y'\n" +
		"    lower_bounds = 0.0 0.0\n" +
		"    upper_bounds = 1.0 1.0\n" +
		"\n" +
		"interface\n" +
		"  fork\n" +
		"    analysis_driver = 'run_model'\n" +
		"    parameters_file = 'params.in'\n" +
		"    results_file = 'results.out'\n" +
		"\n" +
		"responses\n" +
		"  response_functions = 1\n" +
		"    response_descriptors = 'response'\n" +
		"  no_gradients\n" +
		"  no_hessians\n"
	assert.Equal(t, want, deck)

	again, err := composeDeck(path)
	require.NoError(t, err)
	assert.Equal(t, deck, again, "rendering must be deterministic")
}

func TestComposeDeck_ValidationFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "study.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
variables:
  kind: uniform_uncertain
  descriptors: [x]
`), 0o644))

	_, err := composeDeck(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "variables block")
}

func TestComposeDeck_MissingFile(t *testing.T) {
	_, err := composeDeck(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "study file not found")
}

func TestWriteStarter(t *testing.T) {
	t.Run("yaml starter loads and validates", func(t *testing.T) {
		t.Chdir(t.TempDir())

		path, err := writeStarter("yaml", false)
		require.NoError(t, err)
		assert.Equal(t, "dakgen.yaml", path)

		deck, err := composeDeck(path)
		require.NoError(t, err)
		assert.Contains(t, deck, "method\n  sampling\n")
		assert.Contains(t, deck, "  tabular_data\n")
	})

	t.Run("toml starter loads and validates", func(t *testing.T) {
		t.Chdir(t.TempDir())

		path, err := writeStarter("toml", false)
		require.NoError(t, err)
		assert.Equal(t, "dakgen.toml", path)

		deck, err := composeDeck(path)
		require.NoError(t, err)
		assert.Contains(t, deck, "    analysis_driver = 'run_model'\n")
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := writeStarter("yaml", false)
		require.NoError(t, err)
		_, err = writeStarter("yaml", false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")

		_, err = writeStarter("yaml", true)
		require.NoError(t, err)
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := writeStarter("ini", false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown format")
	})
}
