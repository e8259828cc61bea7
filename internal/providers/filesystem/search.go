package filesystem

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/GriffinCanCode/pathkit/internal/types"
	"github.com/bmatcuk/doublestar/v4"
)

// SearchOps handles glob matching and subtree glob search
type SearchOps struct {
	*FilesystemOps
}

// GetTools returns search operation tool definitions
func (s *SearchOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "pathname.match",
			Name:        "Match Pattern",
			Description: "Test a path against a glob pattern (base-name matching enabled)",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Path to test", Required: true},
				{Name: "pattern", Type: "string", Description: "Glob pattern (e.g. '*.go')", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "pathname.glob",
			Name:        "Subtree Glob",
			Description: "Glob over a subtree with ** patterns (gitignore-style)",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Root directory", Required: true},
				{Name: "pattern", Type: "string", Description: "Glob pattern (e.g. '**/*.go')", Required: true},
			},
			Returns: "array",
		},
	}
}

// Match tests a path against a glob pattern
func (s *SearchOps) Match(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}
	pattern, ok := params["pattern"].(string)
	if !ok || pattern == "" {
		return Failure("pattern parameter required")
	}

	matched, err := s.Handle(path, reqCtx).Matches(pattern)
	if err != nil {
		return Failure(fmt.Sprintf("match failed: %v", err))
	}

	return Success(map[string]interface{}{"path": path, "pattern": pattern, "matched": matched})
}

// Glob finds all subtree entries matching a ** pattern
func (s *SearchOps) Glob(ctx context.Context, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}
	pattern, ok := params["pattern"].(string)
	if !ok || pattern == "" {
		return Failure("pattern parameter required")
	}

	root := s.Resolve(path, reqCtx)
	matches, err := doublestar.FilepathGlob(filepath.Join(root, pattern))
	if err != nil {
		return Failure(fmt.Sprintf("glob failed: %v", err))
	}

	relMatches := []string{}
	for _, match := range matches {
		if relPath, err := filepath.Rel(root, match); err == nil {
			relMatches = append(relMatches, relPath)
		}
	}

	return Success(map[string]interface{}{"path": path, "matches": relMatches, "count": len(relMatches)})
}
