package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, 3, s.Parser.MaxRecursionDepth)
	assert.Equal(t, 30, s.Merge.AdjacencyGap)
	assert.Equal(t, 50, s.Merge.ConnectiveLookahead)
	assert.Equal(t, "text", s.Output.Format)
}

func TestLoadUsesDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxRecursionDepth, s.Parser.MaxRecursionDepth)
	assert.Equal(t, DefaultAdjacencyGap, s.Merge.AdjacencyGap)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "tempex.toml")
	content := `
[parser]
max_recursion_depth = 5

[merge]
adjacency_gap = 12
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	s, err := LoadFromFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Parser.MaxRecursionDepth)
	assert.Equal(t, 12, s.Merge.AdjacencyGap)
	// Untouched keys keep defaults.
	assert.Equal(t, DefaultConnectiveLookahead, s.Merge.ConnectiveLookahead)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestEnvOverride(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	t.Setenv("TEMPEX_PARSER_MAX_RECURSION_DEPTH", "7")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7, s.Parser.MaxRecursionDepth)
}
