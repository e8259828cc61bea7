// Package testutil provides testing utilities and helpers for service tests.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/pathkit/internal/storage"
	"github.com/GriffinCanCode/pathkit/internal/types"
)

// MockBackend is a mock implementation of storage.Backend for testing.
type MockBackend struct {
	mock.Mock
}

// Stat mocks the Stat method.
func (m *MockBackend) Stat(ctx context.Context, path string) (storage.Metadata, error) {
	args := m.Called(ctx, path)
	return args.Get(0).(storage.Metadata), args.Error(1)
}

// Lstat mocks the Lstat method.
func (m *MockBackend) Lstat(ctx context.Context, path string) (storage.Metadata, error) {
	args := m.Called(ctx, path)
	return args.Get(0).(storage.Metadata), args.Error(1)
}

// ReadDir mocks the ReadDir method.
func (m *MockBackend) ReadDir(ctx context.Context, path string) ([]string, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// Unlink mocks the Unlink method.
func (m *MockBackend) Unlink(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

// Rmdir mocks the Rmdir method.
func (m *MockBackend) Rmdir(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

// Mkdir mocks the Mkdir method.
func (m *MockBackend) Mkdir(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

// ReadLink mocks the ReadLink method.
func (m *MockBackend) ReadLink(ctx context.Context, path string) (string, error) {
	args := m.Called(ctx, path)
	return args.String(0), args.Error(1)
}

// Symlink mocks the Symlink method.
func (m *MockBackend) Symlink(ctx context.Context, target, link string) error {
	args := m.Called(ctx, target, link)
	return args.Error(0)
}

// Access mocks the Access method.
func (m *MockBackend) Access(ctx context.Context, path string, mode storage.AccessMode) bool {
	args := m.Called(ctx, path, mode)
	return args.Bool(0)
}

// CopyBytes mocks the CopyBytes method.
func (m *MockBackend) CopyBytes(ctx context.Context, src, dst string) error {
	args := m.Called(ctx, src, dst)
	return args.Error(0)
}

// NewMockBackend creates a new mock backend.
func NewMockBackend(t *testing.T) *MockBackend {
	t.Helper()
	return new(MockBackend)
}

// MockServiceProvider is a mock implementation of service.Provider for testing.
type MockServiceProvider struct {
	mock.Mock
}

// Definition mocks the Definition method.
func (m *MockServiceProvider) Definition() types.Service {
	args := m.Called()
	return args.Get(0).(types.Service)
}

// Execute mocks the Execute method.
func (m *MockServiceProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	args := m.Called(ctx, toolID, params, reqCtx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Result), args.Error(1)
}

// NewMockServiceProvider creates a new mock service provider with default behaviors.
func NewMockServiceProvider(t *testing.T, serviceID string) *MockServiceProvider {
	t.Helper()
	m := new(MockServiceProvider)

	m.On("Definition").Return(types.Service{
		ID:       serviceID,
		Name:     serviceID,
		Category: types.CategoryFilesystem,
	}).Maybe()

	return m
}

// WriteFile creates a file with content, failing the test on error.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// MkTree creates a directory tree from relative entries under root.
// Entries ending in a separator become directories; everything else
// becomes a file whose content is its own relative name.
func MkTree(t *testing.T, root string, entries []string) {
	t.Helper()
	for _, entry := range entries {
		full := filepath.Join(root, entry)
		if len(entry) > 0 && entry[len(entry)-1] == filepath.Separator {
			require.NoError(t, os.MkdirAll(full, 0o755))
			continue
		}
		WriteFile(t, full, entry)
	}
}
