package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shapesDir = "../../codegen/testdata/shapes"

func TestTypeNames(t *testing.T) {
	var testCases = []struct {
		description string
		types       string
		expect      []string
	}{
		{description: "empty", types: "", expect: nil},
		{description: "single", types: "Pair", expect: []string{"Pair"}},
		{description: "spaces and blanks", types: " Pair, ,Header ", expect: []string{"Pair", "Header"}},
	}
	for _, testCase := range testCases {
		rootOpts.types = testCase.types
		assert.EqualValues(t, testCase.expect, typeNames(), testCase.description)
	}
	rootOpts.types = ""
}

func TestLayoutCommand(t *testing.T) {
	output := &bytes.Buffer{}
	rootCmd.SetOut(output)
	rootCmd.SetArgs([]string{"layout", "--dir", shapesDir, "-t", "Pair", "--case", "lowerUnderscore"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, output.String(), `"name":"total"`)
	assert.Contains(t, output.String(), `"offset":4`)
	assert.Contains(t, output.String(), `"padding":3`)

	rootCmd.SetArgs([]string{"layout", "--dir", shapesDir, "-t", "Pair", "--case", "noSuchCase"})
	assert.Error(t, rootCmd.Execute())

	rootCmd.SetArgs([]string{"layout", "--dir", shapesDir, "-t", "Celsius", "--case", ""})
	assert.Error(t, rootCmd.Execute())
	rootOpts.types = ""
}

func TestGenCommand(t *testing.T) {
	output := filepath.Join(t.TempDir(), "registrations_gen.go")
	rootCmd.SetArgs([]string{"gen", "--dir", shapesDir, "-t", "Pair,Header", "-o", output})
	require.NoError(t, rootCmd.Execute())
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fieldwalk.MustRegister(reflect.TypeOf(Pair{})")
	assert.Contains(t, string(data), "return &(*Header)(p).label")
	rootOpts.types = ""
}
