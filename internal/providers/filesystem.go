package providers

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/pathkit/internal/logging"
	"github.com/GriffinCanCode/pathkit/internal/monitoring"
	"github.com/GriffinCanCode/pathkit/internal/providers/filesystem"
	"github.com/GriffinCanCode/pathkit/internal/storage"
	"github.com/GriffinCanCode/pathkit/internal/types"
)

// Filesystem provides the pathname tool surface
type Filesystem struct {
	ops        *filesystem.FilesystemOps
	directory  *filesystem.DirectoryOps
	operations *filesystem.OperationsOps
	metadata   *filesystem.MetadataOps
	search     *filesystem.SearchOps
}

// NewFilesystem creates a filesystem provider over a storage backend.
// Relative paths resolve against base unless overridden per request.
func NewFilesystem(store storage.Backend, base string, log *logging.Logger) *Filesystem {
	ops := &filesystem.FilesystemOps{Store: store, Base: base, Log: log}
	return &Filesystem{
		ops:        ops,
		directory:  &filesystem.DirectoryOps{FilesystemOps: ops},
		operations: &filesystem.OperationsOps{FilesystemOps: ops},
		metadata:   &filesystem.MetadataOps{FilesystemOps: ops},
		search:     &filesystem.SearchOps{FilesystemOps: ops},
	}
}

// WithMetrics attaches a metrics collector for tree-operation counters.
func (f *Filesystem) WithMetrics(m *monitoring.Metrics) *Filesystem {
	f.ops.Metrics = m
	return f
}

// Definition returns service metadata
func (f *Filesystem) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, f.directory.GetTools()...)
	tools = append(tools, f.operations.GetTools()...)
	tools = append(tools, f.metadata.GetTools()...)
	tools = append(tools, f.search.GetTools()...)

	return types.Service{
		ID:          "pathname",
		Name:        "Pathname Service",
		Description: "Pathname metadata, glob filtering, and recursive tree operations",
		Category:    types.CategoryFilesystem,
		Capabilities: []string{
			"list",
			"stat",
			"glob",
			"walk",
			"copy_tree",
			"delete_tree",
			"symlink",
		},
		Tools: tools,
	}
}

// Execute runs a pathname tool
func (f *Filesystem) Execute(ctx context.Context, toolID string, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Directory operations
	case "pathname.dir.list":
		return f.directory.List(ctx, params, reqCtx)
	case "pathname.dir.files":
		return f.directory.Files(ctx, params, reqCtx)
	case "pathname.dir.walk":
		return f.directory.Walk(ctx, params, reqCtx)
	case "pathname.dir.tree":
		return f.directory.Tree(ctx, params, reqCtx)
	case "pathname.dir.flatten":
		return f.directory.Flatten(ctx, params, reqCtx)

	// Tree mutation
	case "pathname.copy_tree":
		return f.operations.CopyTree(ctx, params, reqCtx)
	case "pathname.delete_tree":
		return f.operations.DeleteTree(ctx, params, reqCtx)
	case "pathname.symlink":
		return f.operations.Symlink(ctx, params, reqCtx)
	case "pathname.readlink":
		return f.operations.Readlink(ctx, params, reqCtx)

	// Metadata
	case "pathname.stat":
		return f.metadata.Stat(ctx, params, reqCtx)
	case "pathname.depth":
		return f.metadata.Depth(ctx, params, reqCtx)
	case "pathname.extension":
		return f.metadata.Extension(ctx, params, reqCtx)
	case "pathname.hidden":
		return f.metadata.Hidden(ctx, params, reqCtx)
	case "pathname.mime_type":
		return f.metadata.MimeType(ctx, params, reqCtx)

	// Search
	case "pathname.match":
		return f.search.Match(ctx, params, reqCtx)
	case "pathname.glob":
		return f.search.Glob(ctx, params, reqCtx)

	default:
		return filesystem.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
