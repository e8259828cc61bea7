package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/GriffinCanCode/pathkit/internal/types"
	"github.com/charlievieth/fastwalk"
)

// DirectoryOps handles directory listing and traversal
type DirectoryOps struct {
	*FilesystemOps
}

// GetTools returns directory operation tool definitions
func (d *DirectoryOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "pathname.dir.list",
			Name:        "List Directory",
			Description: "List immediate children as joined path strings",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory path", Required: true},
				{Name: "glob", Type: "string", Description: "Glob filter (e.g. '*.json')", Required: false},
			},
			Returns: "array",
		},
		{
			ID:          "pathname.dir.files",
			Name:        "List Child Entries",
			Description: "List immediate children with per-entry metadata",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory path", Required: true},
				{Name: "glob", Type: "string", Description: "Glob filter", Required: false},
			},
			Returns: "array",
		},
		{
			ID:          "pathname.dir.walk",
			Name:        "Walk Directory",
			Description: "Walk directory recursively (fast)",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory path", Required: true},
				{Name: "max_depth", Type: "number", Description: "Max depth (0=unlimited)", Required: false},
			},
			Returns: "array",
		},
		{
			ID:          "pathname.dir.tree",
			Name:        "Directory Tree",
			Description: "Render directory tree structure",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory path", Required: true},
				{Name: "max_depth", Type: "number", Description: "Max depth (0=unlimited)", Required: false},
			},
			Returns: "string",
		},
		{
			ID:          "pathname.dir.flatten",
			Name:        "Flatten Files",
			Description: "Get all files under a directory as a flat array",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory path", Required: true},
			},
			Returns: "array",
		},
	}
}

// List lists immediate children as joined path strings
func (d *DirectoryOps) List(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}
	glob, _ := params["glob"].(string)

	children, err := d.Handle(path, reqCtx).List(ctx, glob)
	if err != nil {
		return Failure(fmt.Sprintf("list failed: %v", err))
	}

	return Success(map[string]interface{}{
		"path":    path,
		"entries": children,
		"count":   len(children),
	})
}

// Files lists immediate children with per-entry metadata
func (d *DirectoryOps) Files(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}
	glob, _ := params["glob"].(string)

	handles, err := d.Handle(path, reqCtx).Files(ctx, glob)
	if err != nil {
		return Failure(fmt.Sprintf("files failed: %v", err))
	}

	entries := make([]map[string]interface{}, 0, len(handles))
	for _, h := range handles {
		entry := map[string]interface{}{
			"path":      h.Path(),
			"absolute":  h.Abs(),
			"extension": h.Extension(),
		}
		if md, err := h.Metadata(ctx); err == nil {
			entry["kind"] = string(md.Kind)
			entry["size"] = md.Size
			entry["modified"] = md.ModTime.Unix()
		}
		entries = append(entries, entry)
	}

	return Success(map[string]interface{}{"path": path, "entries": entries, "count": len(entries)})
}

// Walk walks a directory recursively using fastwalk
func (d *DirectoryOps) Walk(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}

	maxDepth := 0
	if depth, ok := params["max_depth"].(float64); ok {
		maxDepth = int(depth)
	}

	root := d.Resolve(path, reqCtx)
	entries := []map[string]interface{}{}
	conf := fastwalk.Config{Follow: false}

	err := fastwalk.Walk(&conf, root, func(p string, de os.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			return nil // Skip errors
		}

		relPath, _ := filepath.Rel(root, p)
		depth := len(strings.Split(relPath, string(os.PathSeparator))) - 1
		if maxDepth > 0 && depth > maxDepth {
			if de.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		info, err := de.Info()
		if err != nil {
			return nil
		}

		entries = append(entries, map[string]interface{}{
			"path":     relPath,
			"is_dir":   de.IsDir(),
			"size":     info.Size(),
			"modified": info.ModTime().Unix(),
		})
		return nil
	})

	if err != nil {
		return Failure(fmt.Sprintf("walk failed: %v", err))
	}
	if d.Metrics != nil {
		d.Metrics.IncTreesWalked()
	}

	return Success(map[string]interface{}{"path": path, "entries": entries, "count": len(entries)})
}

// Tree renders a directory tree structure
func (d *DirectoryOps) Tree(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}

	maxDepth := 0
	if depth, ok := params["max_depth"].(float64); ok {
		maxDepth = int(depth)
	}

	root := d.Resolve(path, reqCtx)

	var tree strings.Builder
	tree.WriteString(filepath.Base(root) + "/\n")

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, root, func(p string, de os.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil || p == root {
			return nil
		}

		relPath, _ := filepath.Rel(root, p)
		depth := len(strings.Split(relPath, string(os.PathSeparator))) - 1
		if maxDepth > 0 && depth > maxDepth {
			if de.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		indent := strings.Repeat("  ", depth+1)
		name := filepath.Base(p)
		if de.IsDir() {
			tree.WriteString(indent + name + "/\n")
		} else {
			tree.WriteString(indent + name + "\n")
		}
		return nil
	})

	if err != nil {
		return Failure(fmt.Sprintf("tree failed: %v", err))
	}

	return Success(map[string]interface{}{"path": path, "tree": tree.String()})
}

// Flatten gets all files as a flat array of relative paths
func (d *DirectoryOps) Flatten(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}

	root := d.Resolve(path, reqCtx)
	files := []string{}
	conf := fastwalk.Config{Follow: false}

	err := fastwalk.Walk(&conf, root, func(p string, de os.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil || de.IsDir() {
			return nil
		}

		relPath, _ := filepath.Rel(root, p)
		files = append(files, relPath)
		return nil
	})

	if err != nil {
		return Failure(fmt.Sprintf("flatten failed: %v", err))
	}

	return Success(map[string]interface{}{"path": path, "files": files, "count": len(files)})
}
