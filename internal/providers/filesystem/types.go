package filesystem

import (
	"path/filepath"

	"github.com/GriffinCanCode/pathkit/internal/logging"
	"github.com/GriffinCanCode/pathkit/internal/monitoring"
	"github.com/GriffinCanCode/pathkit/internal/pathname"
	"github.com/GriffinCanCode/pathkit/internal/storage"
	"github.com/GriffinCanCode/pathkit/internal/types"
)

// FilesystemOps provides common state and helpers for the tool facets.
type FilesystemOps struct {
	Store   storage.Backend
	Base    string
	Log     *logging.Logger
	Metrics *monitoring.Metrics
}

// BaseDir returns the base directory for the request: the context
// override when present, the provider default otherwise.
func (ops *FilesystemOps) BaseDir(reqCtx *types.Context) string {
	if reqCtx != nil && reqCtx.BaseDir != nil && *reqCtx.BaseDir != "" {
		return *reqCtx.BaseDir
	}
	return ops.Base
}

// Handle builds a pathname Handle for the request's base directory.
func (ops *FilesystemOps) Handle(path string, reqCtx *types.Context) pathname.Handle {
	return pathname.New(ops.Store, ops.BaseDir(reqCtx), path)
}

// Resolve returns the absolute form of path under the request's base.
func (ops *FilesystemOps) Resolve(path string, reqCtx *types.Context) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(ops.BaseDir(reqCtx), path)
}

// Success helper
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure helper
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}
