package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInputs(t *testing.T, params string) (dir string) {
	t.Helper()
	dir = t.TempDir()
	files := map[string]string{
		"x.csv":      "0,0\n0,1\n1,0\n1,1\n0,0\n0,1\n1,0\n1,1\n",
		"y.csv":      "1\n2\n2\n1\n1\n2\n2\n1\n",
		"layers.csv": "2\n",
	}
	if filepath.Ext(params) == ".yaml" {
		files[params] = "iterations: 10\nfolds: 2\ntrain_percentage: 75\nlearning_rate: 0.5\nlambda: 0\nhidden_layers: [3]\nseed: 3\n"
	} else {
		files[params] = "10\n2\n75\n0.5\n0\n"
	}

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

func TestRun_Text(t *testing.T) {
	dir := writeInputs(t, "parameters.csv")
	var stdout, stderr bytes.Buffer

	err := run([]string{
		"-x", filepath.Join(dir, "x.csv"),
		"-y", filepath.Join(dir, "y.csv"),
		"-layers", filepath.Join(dir, "layers.csv"),
		"-params", filepath.Join(dir, "parameters.csv"),
		"-seed", "11",
		"-workers", "1",
	}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, "Test set 1\n")
	assert.Contains(t, out, "Test set 2\n")
	assert.Contains(t, out, "Average accuracy: ")
}

func TestRun_YAMLParams(t *testing.T) {
	dir := writeInputs(t, "params.yaml")
	var stdout, stderr bytes.Buffer

	err := run([]string{
		"-x", filepath.Join(dir, "x.csv"),
		"-y", filepath.Join(dir, "y.csv"),
		"-layers", "",
		"-params", filepath.Join(dir, "params.yaml"),
		"-format", "yaml",
	}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, "seed: 3\n")
	assert.Contains(t, out, "layer_sizes: [2, 3, 2]\n")
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer

	require.NoError(t, run([]string{"version"}, &stdout, &stderr))
	assert.Equal(t, "bpnet "+version+"\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRun_Errors(t *testing.T) {
	dir := writeInputs(t, "parameters.csv")
	var stdout, stderr bytes.Buffer

	err := run([]string{"-format", "json"}, &stdout, &stderr)
	assert.ErrorContains(t, err, "unknown format")

	err = run([]string{
		"-x", filepath.Join(dir, "missing.csv"),
		"-y", filepath.Join(dir, "y.csv"),
		"-params", filepath.Join(dir, "parameters.csv"),
	}, &stdout, &stderr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
