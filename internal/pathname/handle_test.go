package pathname

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/pathkit/internal/storage"
)

func newTestHandle(t *testing.T, path string) (Handle, string) {
	t.Helper()
	base := t.TempDir()
	return New(storage.NewLocal(), base, path), base
}

func TestPathKeepsSuppliedForm(t *testing.T) {
	h, _ := newTestHandle(t, "a/../b/./c")

	assert.Equal(t, "a/../b/./c", h.Path())
}

func TestAbs(t *testing.T) {
	h, base := newTestHandle(t, "sub/file.txt")

	assert.Equal(t, filepath.Join(base, "sub/file.txt"), h.Abs())
}

func TestAbsAbsolutePathUnchanged(t *testing.T) {
	h, _ := newTestHandle(t, "/etc/hosts")

	assert.Equal(t, "/etc/hosts", h.Abs())
}

func TestAbsIdempotent(t *testing.T) {
	h, base := newTestHandle(t, "sub/file.txt")

	first := h.Abs()
	again := New(storage.NewLocal(), base, first)

	assert.Equal(t, first, again.Abs())
}

func TestCanonicalResolvesDotSegments(t *testing.T) {
	h, base := newTestHandle(t, "a/../b/./c")

	assert.Equal(t, filepath.Join(base, "b/c"), h.Canonical())
}

func TestExtension(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"report.json", "json"},
		{"archive.tar.gz", "gz"},
		{"Makefile", ""},
		{".hidden", "hidden"},
		{"dir/file.txt", "txt"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			h, _ := newTestHandle(t, tt.path)
			assert.Equal(t, tt.want, h.Extension())
		})
	}
}

func TestDepthOfDirectory(t *testing.T) {
	h, base := newTestHandle(t, "a/b/c")
	require.NoError(t, os.MkdirAll(filepath.Join(base, "a/b/c"), 0o755))

	parent := New(storage.NewLocal(), base, "a/b")

	// A directory counts separators in its own canonical path, so a
	// child directory sits one deeper than its parent.
	assert.Equal(t, parent.Depth()+1, h.Depth())
}

func TestDepthOfFileUsesParent(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "a/b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "a/b/f.txt"), []byte("x"), 0o644))

	fs := storage.NewLocal()
	file := New(fs, base, "a/b/f.txt")
	dir := New(fs, base, "a/b")

	assert.Equal(t, dir.Depth(), file.Depth())
}

func TestDepthOfMissingPathUsesParent(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "a/b"), 0o755))

	fs := storage.NewLocal()
	missing := New(fs, base, "a/b/ghost")
	dir := New(fs, base, "a/b")

	// Stat fails, so the missing path is treated like a file and
	// measured at its parent directory.
	assert.Equal(t, dir.Depth(), missing.Depth())
}
