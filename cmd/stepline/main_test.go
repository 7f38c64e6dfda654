package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	assert.Contains(t, run(t, "version"), "stepline version ")
}

func TestGraphCommand(t *testing.T) {
	out := run(t, "graph", "../../pkg/scene/testdata/intro.yaml")
	assert.Contains(t, out, "graph TD")
	assert.Contains(t, out, `subgraph points["animator points"]`)
	assert.NotContains(t, out, "classDef")

	out = run(t, "graph", "--frames", "1", "../../pkg/scene/testdata/intro.yaml")
	assert.Contains(t, out, "class note committed;", "instant units commit on the first frame")
}

func TestValidateCommand(t *testing.T) {
	out := run(t, "validate", "../../pkg/scene/testdata/intro.yaml")
	assert.Contains(t, out, "title")
}
