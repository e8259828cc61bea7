package pathname

import (
	"path/filepath"
	"strings"

	"github.com/GriffinCanCode/pathkit/internal/storage"
)

// Handle is an in-memory pathname value. The path string is kept exactly
// as supplied; the base directory is captured at construction and used
// only to resolve relative paths.
type Handle struct {
	fs   storage.Backend
	base string
	path string
}

// New creates a Handle for path. Relative paths resolve against base,
// never against the process working directory.
func New(fs storage.Backend, base, path string) Handle {
	return Handle{fs: fs, base: base, path: path}
}

// Path returns the path string exactly as supplied, with no
// normalization.
func (h Handle) Path() string {
	return h.path
}

// Base returns the base directory captured at construction.
func (h Handle) Base() string {
	return h.base
}

// Abs returns the path unchanged when already absolute, otherwise the
// base directory joined with it using platform separator rules. No I/O.
func (h Handle) Abs() string {
	if filepath.IsAbs(h.path) {
		return h.path
	}
	return filepath.Join(h.base, h.path)
}

// Canonical returns Abs passed through lexical normalization, resolving
// "." and ".." segments. Symbolic links are not resolved; no I/O.
func (h Handle) Canonical() string {
	return filepath.Clean(h.Abs())
}

// Extension returns the substring after the last dot in the final path
// segment, or the empty string when the segment has no dot.
func (h Handle) Extension() string {
	name := filepath.Base(h.Canonical())
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return ""
	}
	return name[idx+1:]
}

// Depth counts path separators in the directory portion of the
// canonical path: the path itself when it names a directory, its parent
// otherwise. It characterizes tree position and implies no ordering.
func (h Handle) Depth() int {
	dir := h.Canonical()
	if isDir, err := h.IsDirSync(); err != nil || !isDir {
		dir = filepath.Dir(dir)
	}
	return strings.Count(dir, string(filepath.Separator))
}

// child derives a Handle for an immediate child entry, keeping the
// supplied-path form so listings report joined path strings.
func (h Handle) child(name string) Handle {
	return Handle{fs: h.fs, base: h.base, path: filepath.Join(h.path, name)}
}

// segments splits the canonical path into its non-empty components.
func (h Handle) segments() []string {
	parts := strings.Split(h.Canonical(), string(filepath.Separator))
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
