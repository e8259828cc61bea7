package pathname

import (
	"context"
	"errors"
)

// List returns the immediate children of a directory as joined path
// strings, in directory-read order, optionally filtered by a glob
// pattern (empty pattern keeps everything). A path that is absent or
// not a directory yields an empty, non-nil slice; any other storage
// failure is an error.
func (h Handle) List(ctx context.Context, pattern string) ([]string, error) {
	children, err := h.listChildren(ctx, pattern)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(children))
	for i, c := range children {
		paths[i] = c.Path()
	}
	return paths, nil
}

// ListSync is the blocking form of List with one documented divergence:
// a path that is not a directory yields a nil slice, not an empty one.
// The split empty-case contract is deliberate API surface; callers
// depend on it.
func (h Handle) ListSync(pattern string) ([]string, error) {
	isDir, err := h.IsDirSync()
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !isDir {
		return nil, nil
	}
	return h.List(context.Background(), pattern)
}

// Files returns the immediate children as Handles, in directory-read
// order, optionally filtered by a glob pattern. A path that is absent
// or not a directory yields an empty, non-nil slice; any other storage
// failure is an error.
func (h Handle) Files(ctx context.Context, pattern string) ([]Handle, error) {
	return h.listChildren(ctx, pattern)
}

// FilesSync is the blocking form of Files; a non-directory yields nil,
// mirroring ListSync.
func (h Handle) FilesSync(pattern string) ([]Handle, error) {
	isDir, err := h.IsDirSync()
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !isDir {
		return nil, nil
	}
	return h.listChildren(context.Background(), pattern)
}

func (h Handle) listChildren(ctx context.Context, pattern string) ([]Handle, error) {
	isDir, err := h.IsDir(ctx)
	if err != nil {
		// A missing path reads as "not a directory"; anything else is a
		// real storage failure and must surface.
		if errors.Is(err, ErrNotFound) {
			return []Handle{}, nil
		}
		return nil, err
	}
	if !isDir {
		return []Handle{}, nil
	}

	names, err := h.fs.ReadDir(ctx, h.Abs())
	if err != nil {
		return nil, wrapErr("readdir", h.path, err)
	}

	children := make([]Handle, 0, len(names))
	for _, name := range names {
		c := h.child(name)
		if pattern != "" {
			ok, err := c.Matches(pattern)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		children = append(children, c)
	}
	return children, nil
}
