package pathname

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/GriffinCanCode/pathkit/internal/storage"
)

// IsDir reports whether the path names a directory. The metadata is
// fetched fresh; a missing path yields ErrNotFound.
func (h Handle) IsDir(ctx context.Context) (bool, error) {
	return h.isKind(ctx, storage.KindDir)
}

// IsDirSync is IsDir with a background context.
func (h Handle) IsDirSync() (bool, error) {
	return h.IsDir(context.Background())
}

// IsFile reports whether the path names a regular file.
func (h Handle) IsFile(ctx context.Context) (bool, error) {
	return h.isKind(ctx, storage.KindFile)
}

// IsFileSync is IsFile with a background context.
func (h Handle) IsFileSync() (bool, error) {
	return h.IsFile(context.Background())
}

// IsSocket reports whether the path names a socket.
func (h Handle) IsSocket(ctx context.Context) (bool, error) {
	return h.isKind(ctx, storage.KindSocket)
}

// IsSocketSync is IsSocket with a background context.
func (h Handle) IsSocketSync() (bool, error) {
	return h.IsSocket(context.Background())
}

func (h Handle) isKind(ctx context.Context, kind storage.Kind) (bool, error) {
	md, err := h.fs.Stat(ctx, h.Abs())
	if err != nil {
		return false, wrapErr("stat", h.path, err)
	}
	return md.Kind == kind, nil
}

// IsHidden reports whether the path is hidden.
//
// The rule is asymmetric on purpose and must stay that way: a
// non-directory is hidden iff its final segment starts with a dot; a
// directory is hidden iff any segment other than the last is a dotfile
// segment (a dot followed by something other than another dot). A
// dotfile ancestor therefore hides a whole directory subtree, while a
// file is judged by its own name alone.
func (h Handle) IsHidden(ctx context.Context) (bool, error) {
	isDir, err := h.IsDir(ctx)
	if err != nil {
		return false, err
	}

	segs := h.segments()
	if !isDir {
		if len(segs) == 0 {
			return false, nil
		}
		return strings.HasPrefix(segs[len(segs)-1], "."), nil
	}

	for i := 0; i < len(segs)-1; i++ {
		if isDotSegment(segs[i]) {
			return true, nil
		}
	}
	return false, nil
}

// IsHiddenSync is IsHidden with a background context.
func (h Handle) IsHiddenSync() (bool, error) {
	return h.IsHidden(context.Background())
}

// isDotSegment reports a segment of the form ".x" where x is neither a
// dot nor empty, so "." and ".." never count.
func isDotSegment(seg string) bool {
	return len(seg) > 1 && seg[0] == '.' && seg[1] != '.'
}

// Matches reports whether the path matches a glob pattern. Base-name
// matching is enabled: a pattern without a separator is also tried
// against the final path segment. Pure apart from pattern compilation.
func (h Handle) Matches(pattern string) (bool, error) {
	ok, err := doublestar.Match(pattern, h.path)
	if err != nil {
		return false, &Error{Op: "match", Path: h.path, Err: err}
	}
	if ok || strings.ContainsRune(pattern, filepath.Separator) {
		return ok, nil
	}
	ok, err = doublestar.Match(pattern, filepath.Base(h.Canonical()))
	if err != nil {
		return false, &Error{Op: "match", Path: h.path, Err: err}
	}
	return ok, nil
}

// Readable reports read permission. Check failures read as false:
// permission denial is an expected outcome here, not an error.
func (h Handle) Readable(ctx context.Context) bool {
	return h.fs.Access(ctx, h.Abs(), storage.AccessRead)
}

// ReadableSync is Readable with a background context.
func (h Handle) ReadableSync() bool {
	return h.Readable(context.Background())
}

// Writable reports write permission.
func (h Handle) Writable(ctx context.Context) bool {
	return h.fs.Access(ctx, h.Abs(), storage.AccessWrite)
}

// WritableSync is Writable with a background context.
func (h Handle) WritableSync() bool {
	return h.Writable(context.Background())
}

// Executable reports execute permission.
func (h Handle) Executable(ctx context.Context) bool {
	return h.fs.Access(ctx, h.Abs(), storage.AccessExec)
}

// ExecutableSync is Executable with a background context.
func (h Handle) ExecutableSync() bool {
	return h.Executable(context.Background())
}

// Exists reports presence via a read-access check. An absent path reads
// as false, never as an error.
func (h Handle) Exists(ctx context.Context) bool {
	return h.fs.Access(ctx, h.Abs(), storage.AccessRead)
}

// ExistsSync is Exists with a background context.
func (h Handle) ExistsSync() bool {
	return h.Exists(context.Background())
}

// Metadata fetches a fresh snapshot for callers that need a consistent
// view across several checks.
func (h Handle) Metadata(ctx context.Context) (storage.Metadata, error) {
	md, err := h.fs.Stat(ctx, h.Abs())
	if err != nil {
		return storage.Metadata{}, wrapErr("stat", h.path, err)
	}
	return md, nil
}
