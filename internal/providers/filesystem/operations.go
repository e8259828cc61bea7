package filesystem

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/pathkit/internal/pathname"
	"github.com/GriffinCanCode/pathkit/internal/shared/id"
	"github.com/GriffinCanCode/pathkit/internal/types"
)

// OperationsOps handles tree mutation (recursive copy/delete, links)
type OperationsOps struct {
	*FilesystemOps
}

// GetTools returns tree mutation tool definitions
func (o *OperationsOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "pathname.copy_tree",
			Name:        "Copy Tree",
			Description: "Copy a directory subtree recursively",
			Parameters: []types.Parameter{
				{Name: "source", Type: "string", Description: "Source path", Required: true},
				{Name: "destination", Type: "string", Description: "Destination path", Required: true},
				{Name: "overwrite", Type: "boolean", Description: "Replace existing destination", Required: false},
			},
			Returns: "boolean",
		},
		{
			ID:          "pathname.delete_tree",
			Name:        "Delete Tree",
			Description: "Delete a directory subtree recursively",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Root path", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "pathname.symlink",
			Name:        "Create Symlink",
			Description: "Create symbolic link",
			Parameters: []types.Parameter{
				{Name: "target", Type: "string", Description: "Target path", Required: true},
				{Name: "link", Type: "string", Description: "Symlink path", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "pathname.readlink",
			Name:        "Read Symlink",
			Description: "Read symlink target path",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Symlink path", Required: true},
			},
			Returns: "string",
		},
	}
}

// CopyTree copies a directory subtree recursively
func (o *OperationsOps) CopyTree(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	source, ok := params["source"].(string)
	if !ok || source == "" {
		return Failure("source parameter required")
	}
	destination, ok := params["destination"].(string)
	if !ok || destination == "" {
		return Failure("destination parameter required")
	}
	overwrite, _ := params["overwrite"].(bool)

	opID := id.NewOperationID()
	src := o.Handle(source, reqCtx)
	dst := o.Handle(destination, reqCtx)

	o.Log.Info("copy tree",
		zap.String("op_id", opID.String()),
		zap.String("source", source),
		zap.String("destination", destination),
		zap.Bool("overwrite", overwrite),
	)

	if err := src.CopyTree(ctx, dst, pathname.CopyOptions{Overwrite: overwrite}); err != nil {
		o.Log.Warn("copy tree failed", zap.String("op_id", opID.String()), zap.Error(err))
		return Failure(fmt.Sprintf("copy failed: %v", err))
	}
	if o.Metrics != nil {
		o.Metrics.IncTreeCopies()
	}

	return Success(map[string]interface{}{
		"copied":      true,
		"source":      source,
		"destination": destination,
		"op_id":       opID.String(),
	})
}

// DeleteTree deletes a directory subtree recursively
func (o *OperationsOps) DeleteTree(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}

	opID := id.NewOperationID()
	o.Log.Info("delete tree", zap.String("op_id", opID.String()), zap.String("path", path))

	if err := o.Handle(path, reqCtx).DeleteTree(ctx); err != nil {
		o.Log.Warn("delete tree failed", zap.String("op_id", opID.String()), zap.Error(err))
		return Failure(fmt.Sprintf("delete failed: %v", err))
	}
	if o.Metrics != nil {
		o.Metrics.IncTreeDeletes()
	}

	return Success(map[string]interface{}{"deleted": true, "path": path, "op_id": opID.String()})
}

// Symlink creates a symbolic link
func (o *OperationsOps) Symlink(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	target, ok := params["target"].(string)
	if !ok || target == "" {
		return Failure("target parameter required")
	}
	link, ok := params["link"].(string)
	if !ok || link == "" {
		return Failure("link parameter required")
	}

	if err := o.Store.Symlink(ctx, o.Resolve(target, reqCtx), o.Resolve(link, reqCtx)); err != nil {
		return Failure(fmt.Sprintf("symlink failed: %v", err))
	}

	return Success(map[string]interface{}{"created": true, "target": target, "link": link})
}

// Readlink reads a symlink target
func (o *OperationsOps) Readlink(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}

	target, err := o.Store.ReadLink(ctx, o.Resolve(path, reqCtx))
	if err != nil {
		return Failure(fmt.Sprintf("readlink failed: %v", err))
	}

	return Success(map[string]interface{}{"path": path, "target": target})
}
