package filesystem

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/pathkit/internal/types"
	"github.com/gabriel-vasile/mimetype"
)

// MetadataOps handles pathname metadata queries
type MetadataOps struct {
	*FilesystemOps
}

// GetTools returns metadata operation tool definitions
func (m *MetadataOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "pathname.stat",
			Name:        "Path Stats",
			Description: "Get a fresh metadata snapshot for a path",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Path", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "pathname.depth",
			Name:        "Path Depth",
			Description: "Separator count of the directory portion of the canonical path",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Path", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "pathname.extension",
			Name:        "Path Extension",
			Description: "Substring after the last dot of the final segment",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Path", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "pathname.hidden",
			Name:        "Hidden Check",
			Description: "Apply the hidden-path rule (dotfile name, dotfile ancestor for directories)",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Path", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "pathname.mime_type",
			Name:        "MIME Type",
			Description: "Detect file MIME type from content",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
			},
			Returns: "string",
		},
	}
}

// Stat returns a fresh metadata snapshot alongside path facts
func (m *MetadataOps) Stat(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}

	h := m.Handle(path, reqCtx)
	md, err := h.Metadata(ctx)
	if err != nil {
		return Failure(fmt.Sprintf("stat failed: %v", err))
	}

	return Success(map[string]interface{}{
		"path":      path,
		"absolute":  h.Abs(),
		"canonical": h.Canonical(),
		"extension": h.Extension(),
		"kind":      string(md.Kind),
		"size":      md.Size,
		"modified":  md.ModTime.Unix(),
		"accessed":  md.AccessTime.Unix(),
		"changed":   md.ChangeTime.Unix(),
		"readable":  h.Readable(ctx),
		"writable":  h.Writable(ctx),
	})
}

// Depth returns the tree depth of a path
func (m *MetadataOps) Depth(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}

	h := m.Handle(path, reqCtx)
	return Success(map[string]interface{}{"path": path, "depth": h.Depth()})
}

// Extension returns the path extension
func (m *MetadataOps) Extension(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}

	h := m.Handle(path, reqCtx)
	return Success(map[string]interface{}{"path": path, "extension": h.Extension()})
}

// Hidden applies the hidden-path rule
func (m *MetadataOps) Hidden(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}

	hidden, err := m.Handle(path, reqCtx).IsHidden(ctx)
	if err != nil {
		return Failure(fmt.Sprintf("hidden check failed: %v", err))
	}

	return Success(map[string]interface{}{"path": path, "hidden": hidden})
}

// MimeType detects the MIME type of a file from content
func (m *MetadataOps) MimeType(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}

	mtype, err := mimetype.DetectFile(m.Resolve(path, reqCtx))
	if err != nil {
		return Failure(fmt.Sprintf("mime detection failed: %v", err))
	}

	return Success(map[string]interface{}{
		"path":      path,
		"mime_type": mtype.String(),
		"extension": mtype.Extension(),
	})
}
