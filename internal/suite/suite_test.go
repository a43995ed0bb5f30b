package suite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "basic.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "basic", s.Name)
	assert.Equal(t, filepath.Join("testdata", "specs"), s.SpecsDir())
	require.Len(t, s.Cases, 2)
	assert.Equal(t, "findFriends", s.Cases[0].Query)
	assert.Equal(t, "4.0", s.Cases[1].Version)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			"missing name",
			"specs: specs\ncases:\n  - query: q\n",
			"name is required",
		},
		{
			"missing specs",
			"name: s\ncases:\n  - query: q\n",
			"specs is required",
		},
		{
			"no cases",
			"name: s\nspecs: specs\n",
			"at least one case is required",
		},
		{
			"case missing query",
			"name: s\nspecs: specs\ncases:\n  - version: \"4.0\"\n",
			"query is required",
		},
		{
			"unknown field",
			"name: s\nspecs: specs\ncase:\n  - query: q\n",
			"field case not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "suite.yaml")
			writeFile(t, path, tt.content)

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestRun_Pass(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "basic.yaml"))
	require.NoError(t, err)

	result, err := Run(s)
	require.NoError(t, err)
	assert.True(t, result.OK())
	assert.Equal(t, 2, result.Passed)
	assert.Empty(t, result.Failures)
}

func TestRun_Mismatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "specs", "queries.cue"), `
query: q: {
	match:  ["(n)"]
	return: ["n"]
}
`)
	writeFile(t, filepath.Join(dir, "suite.yaml"), `
name: mismatch
specs: specs
cases:
  - query: q
    want: "CYPHER 3.5 MATCH (m) RETURN m"
`)

	s, err := Load(filepath.Join(dir, "suite.yaml"))
	require.NoError(t, err)

	result, err := Run(s)
	require.NoError(t, err)
	assert.False(t, result.OK())
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "q", result.Failures[0].Query)
	assert.Equal(t, "CYPHER 3.5 MATCH (n) RETURN n", result.Failures[0].Got)
}

func TestRun_MissingQuery(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "specs", "queries.cue"), `
query: q: {
	match:  ["(n)"]
	return: ["n"]
}
`)
	writeFile(t, filepath.Join(dir, "suite.yaml"), `
name: missing
specs: specs
cases:
  - query: nope
`)

	s, err := Load(filepath.Join(dir, "suite.yaml"))
	require.NoError(t, err)

	result, err := Run(s)
	require.NoError(t, err)
	require.Len(t, result.Failures, 1)
	assert.Contains(t, result.Failures[0].Message, "not found")
}

func TestRun_BrokenQueryReportedPerCase(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "specs", "queries.cue"), `
query: broken: {
	match: []
}
`)
	writeFile(t, filepath.Join(dir, "suite.yaml"), `
name: broken
specs: specs
cases:
  - query: broken
`)

	s, err := Load(filepath.Join(dir, "suite.yaml"))
	require.NoError(t, err)

	result, err := Run(s)
	require.NoError(t, err)
	require.Len(t, result.Failures, 1)
	assert.Contains(t, result.Failures[0].Message, "may not be empty")
}

func TestRunWithGolden_Basic(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "basic.yaml"))
	require.NoError(t, err)

	require.NoError(t, RunWithGolden(t, s))
}
