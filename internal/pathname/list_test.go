package pathname

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/pathkit/internal/storage"
)

func setupListDir(t *testing.T) (Handle, string) {
	t.Helper()
	base := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(base, "data"), 0o755))
	for _, name := range []string{"a.json", "b.json", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(base, "data", name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(base, "data", "sub"), 0o755))
	return New(storage.NewLocal(), base, "data"), base
}

func TestListAll(t *testing.T) {
	h, _ := setupListDir(t)

	paths, err := h.List(context.Background(), "")
	require.NoError(t, err)
	sort.Strings(paths)

	assert.Equal(t, []string{
		filepath.Join("data", "a.json"),
		filepath.Join("data", "b.json"),
		filepath.Join("data", "c.txt"),
		filepath.Join("data", "sub"),
	}, paths)
}

func TestListGlobFilter(t *testing.T) {
	h, _ := setupListDir(t)

	paths, err := h.List(context.Background(), "*.json")
	require.NoError(t, err)
	sort.Strings(paths)

	assert.Equal(t, []string{
		filepath.Join("data", "a.json"),
		filepath.Join("data", "b.json"),
	}, paths)
}

func TestListNonDirectoryIsEmpty(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, "f.txt"), []byte("x"), 0o644))

	h := New(storage.NewLocal(), base, "f.txt")

	paths, err := h.List(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, paths)
	assert.Empty(t, paths)
}

func TestListSyncNonDirectoryIsNil(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, "f.txt"), []byte("x"), 0o644))

	h := New(storage.NewLocal(), base, "f.txt")

	paths, err := h.ListSync("")
	require.NoError(t, err)
	assert.Nil(t, paths)
}

func TestListSyncMissingPathIsNil(t *testing.T) {
	h, _ := newTestHandle(t, "ghost")

	paths, err := h.ListSync("")
	require.NoError(t, err)
	assert.Nil(t, paths)
}

func TestFilesReturnsHandles(t *testing.T) {
	h, _ := setupListDir(t)

	children, err := h.Files(context.Background(), "*.json")
	require.NoError(t, err)
	require.Len(t, children, 2)

	for _, c := range children {
		isFile, err := c.IsFileSync()
		require.NoError(t, err)
		assert.True(t, isFile)
		assert.Equal(t, "json", c.Extension())
	}
}

func TestFilesNonDirectoryIsEmpty(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, "f.txt"), []byte("x"), 0o644))

	h := New(storage.NewLocal(), base, "f.txt")

	children, err := h.Files(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, children)
	assert.Empty(t, children)
}

func TestFilesSyncNonDirectoryIsNil(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, "f.txt"), []byte("x"), 0o644))

	h := New(storage.NewLocal(), base, "f.txt")

	children, err := h.FilesSync("")
	require.NoError(t, err)
	assert.Nil(t, children)
}

func TestListMissingPathIsEmpty(t *testing.T) {
	h, _ := newTestHandle(t, "ghost")

	paths, err := h.List(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, paths)
	assert.Empty(t, paths)
}

func TestListCancelledContext(t *testing.T) {
	h, _ := setupListDir(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	paths, err := h.List(ctx, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
	assert.Nil(t, paths)
}
