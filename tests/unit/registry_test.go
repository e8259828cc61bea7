package unit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/pathkit/internal/service"
	"github.com/GriffinCanCode/pathkit/internal/types"
	"github.com/GriffinCanCode/pathkit/tests/helpers/testutil"
)

// TestRegistryRegister tests provider registration
func TestRegistryRegister(t *testing.T) {
	registry := service.NewRegistry()
	provider := testutil.NewMockServiceProvider(t, "pathname")

	require.NoError(t, registry.Register(provider))

	got, ok := registry.Get("pathname")
	assert.True(t, ok)
	assert.NotNil(t, got)
}

// TestRegistryRegisterEmptyID tests the empty service ID guard
func TestRegistryRegisterEmptyID(t *testing.T) {
	registry := service.NewRegistry()
	provider := testutil.NewMockServiceProvider(t, "")

	assert.Error(t, registry.Register(provider))
}

// TestRegistryUnregister tests provider removal
func TestRegistryUnregister(t *testing.T) {
	registry := service.NewRegistry()
	require.NoError(t, registry.Register(testutil.NewMockServiceProvider(t, "pathname")))

	registry.Unregister("pathname")

	_, ok := registry.Get("pathname")
	assert.False(t, ok)
}

// TestRegistryList tests category filtering
func TestRegistryList(t *testing.T) {
	registry := service.NewRegistry()
	require.NoError(t, registry.Register(testutil.NewMockServiceProvider(t, "pathname")))

	all := registry.List(nil)
	assert.Len(t, all, 1)

	fs := types.CategoryFilesystem
	filtered := registry.List(&fs)
	assert.Len(t, filtered, 1)

	sys := types.CategorySystem
	filtered = registry.List(&sys)
	assert.Empty(t, filtered)
}

// TestRegistryExecute tests tool routing by ID prefix
func TestRegistryExecute(t *testing.T) {
	registry := service.NewRegistry()
	provider := testutil.NewMockServiceProvider(t, "pathname")
	provider.On("Execute", mock.Anything, "pathname.stat", mock.Anything, mock.Anything).
		Return(&types.Result{Success: true}, nil)
	require.NoError(t, registry.Register(provider))

	result, err := registry.Execute(context.Background(), "pathname.stat", nil, nil)
	require.NoError(t, err)
	assert.True(t, result.Success)
}

// TestRegistryExecuteUnknownService tests routing to an absent service
func TestRegistryExecuteUnknownService(t *testing.T) {
	registry := service.NewRegistry()

	result, err := registry.Execute(context.Background(), "ghost.stat", nil, nil)
	assert.Error(t, err)
	assert.False(t, result.Success)
}

// TestRegistryExecuteBadToolID tests malformed tool ID handling
func TestRegistryExecuteBadToolID(t *testing.T) {
	registry := service.NewRegistry()

	result, err := registry.Execute(context.Background(), "nodots", nil, nil)
	assert.Error(t, err)
	assert.False(t, result.Success)
}

// TestRegistryStats tests aggregate statistics
func TestRegistryStats(t *testing.T) {
	registry := service.NewRegistry()
	require.NoError(t, registry.Register(testutil.NewMockServiceProvider(t, "pathname")))

	stats := registry.Stats()
	assert.Equal(t, 1, stats["total_services"])
}
