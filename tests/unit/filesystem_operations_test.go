package unit

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOperationsCopyTree tests the recursive copy tool
func TestOperationsCopyTree(t *testing.T) {
	provider, base := newProvider(t)
	writeTestFile(t, base, "src/a/f.txt", "payload")

	result, err := provider.Execute(context.Background(), "pathname.copy_tree",
		map[string]interface{}{"source": "src", "destination": "dst"}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, true, result.Data["copied"])
	assert.NotEmpty(t, result.Data["op_id"])

	content, err := os.ReadFile(filepath.Join(base, "dst/a/f.txt"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(content))
}

// TestOperationsCopyTreeConflict tests destination conflict without overwrite
func TestOperationsCopyTreeConflict(t *testing.T) {
	provider, base := newProvider(t)
	writeTestFile(t, base, "src/f.txt", "x")
	writeTestFile(t, base, "dst/pre.txt", "x")

	result, err := provider.Execute(context.Background(), "pathname.copy_tree",
		map[string]interface{}{"source": "src", "destination": "dst"}, nil)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, *result.Error, "copy failed")

	// Pre-existing content untouched.
	_, statErr := os.Stat(filepath.Join(base, "dst/pre.txt"))
	assert.NoError(t, statErr)
}

// TestOperationsCopyTreeOverwrite tests destination replacement
func TestOperationsCopyTreeOverwrite(t *testing.T) {
	provider, base := newProvider(t)
	writeTestFile(t, base, "src/new.txt", "new")
	writeTestFile(t, base, "dst/old.txt", "old")

	result, err := provider.Execute(context.Background(), "pathname.copy_tree",
		map[string]interface{}{"source": "src", "destination": "dst", "overwrite": true}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	_, statErr := os.Stat(filepath.Join(base, "dst/old.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

// TestOperationsDeleteTree tests the recursive delete tool
func TestOperationsDeleteTree(t *testing.T) {
	provider, base := newProvider(t)
	writeTestFile(t, base, "victim/a/b/f.txt", "x")

	result, err := provider.Execute(context.Background(), "pathname.delete_tree",
		map[string]interface{}{"path": "victim"}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, true, result.Data["deleted"])

	_, statErr := os.Stat(filepath.Join(base, "victim"))
	assert.True(t, os.IsNotExist(statErr))
}

// TestOperationsDeleteTreeMissing tests deleting an absent root
func TestOperationsDeleteTreeMissing(t *testing.T) {
	provider, _ := newProvider(t)

	result, err := provider.Execute(context.Background(), "pathname.delete_tree",
		map[string]interface{}{"path": "ghost"}, nil)
	require.NoError(t, err)
	assert.True(t, result.Success)
}

// TestOperationsSymlink tests symlink creation and readback
func TestOperationsSymlink(t *testing.T) {
	provider, base := newProvider(t)
	writeTestFile(t, base, "target.txt", "x")

	result, err := provider.Execute(context.Background(), "pathname.symlink",
		map[string]interface{}{"target": "target.txt", "link": "link"}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	result, err = provider.Execute(context.Background(), "pathname.readlink",
		map[string]interface{}{"path": "link"}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, filepath.Join(base, "target.txt"), result.Data["target"])
}

// TestOperationsReadlinkNotALink tests readlink on a regular file
func TestOperationsReadlinkNotALink(t *testing.T) {
	provider, base := newProvider(t)
	writeTestFile(t, base, "plain.txt", "x")

	result, err := provider.Execute(context.Background(), "pathname.readlink",
		map[string]interface{}{"path": "plain.txt"}, nil)
	require.NoError(t, err)
	assert.False(t, result.Success)
}

// TestOperationsMissingParams tests parameter guards
func TestOperationsMissingParams(t *testing.T) {
	provider, _ := newProvider(t)

	tests := []struct {
		toolID string
		params map[string]interface{}
	}{
		{"pathname.copy_tree", map[string]interface{}{"destination": "d"}},
		{"pathname.copy_tree", map[string]interface{}{"source": "s"}},
		{"pathname.delete_tree", map[string]interface{}{}},
		{"pathname.symlink", map[string]interface{}{"target": "t"}},
		{"pathname.readlink", map[string]interface{}{}},
	}

	for _, tt := range tests {
		result, err := provider.Execute(context.Background(), tt.toolID, tt.params, nil)
		require.NoError(t, err)
		assert.False(t, result.Success, tt.toolID)
	}
}
