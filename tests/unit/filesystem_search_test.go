package unit

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSearchMatch tests glob pattern matching
func TestSearchMatch(t *testing.T) {
	provider, _ := newProvider(t)

	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"logs/app/server.log", "logs/**/*.log", true},
		{"logs/app/server.log", "*.log", true},
		{"logs/app/server.log", "*.txt", false},
		{"main.go", "*.go", true},
	}

	for _, tt := range tests {
		result, err := provider.Execute(context.Background(), "pathname.match",
			map[string]interface{}{"path": tt.path, "pattern": tt.pattern}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, tt.want, result.Data["matched"], "%s vs %s", tt.path, tt.pattern)
	}
}

// TestSearchMatchBadPattern tests malformed pattern handling
func TestSearchMatchBadPattern(t *testing.T) {
	provider, _ := newProvider(t)

	result, err := provider.Execute(context.Background(), "pathname.match",
		map[string]interface{}{"path": "f.txt", "pattern": "["}, nil)
	require.NoError(t, err)
	assert.False(t, result.Success)
}

// TestSearchGlob tests subtree glob search
func TestSearchGlob(t *testing.T) {
	provider, base := newProvider(t)
	writeTestFile(t, base, "src/main.go", "package main")
	writeTestFile(t, base, "src/util/helper.go", "package util")
	writeTestFile(t, base, "src/README.md", "# readme")

	result, err := provider.Execute(context.Background(), "pathname.glob",
		map[string]interface{}{"path": "src", "pattern": "**/*.go"}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	matches := result.Data["matches"].([]string)
	assert.Contains(t, matches, "main.go")
	assert.Contains(t, matches, filepath.Join("util", "helper.go"))
	assert.NotContains(t, matches, "README.md")
}

// TestSearchGlobNoMatches tests an empty result set
func TestSearchGlobNoMatches(t *testing.T) {
	provider, base := newProvider(t)
	writeTestFile(t, base, "src/main.go", "package main")

	result, err := provider.Execute(context.Background(), "pathname.glob",
		map[string]interface{}{"path": "src", "pattern": "**/*.rs"}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, 0, result.Data["count"])
}
