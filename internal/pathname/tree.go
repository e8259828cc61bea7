package pathname

import (
	"context"
	"errors"
	"sort"

	"github.com/GriffinCanCode/pathkit/internal/storage"
)

// CopyOptions controls recursive copy behavior.
type CopyOptions struct {
	// Overwrite removes a pre-existing destination subtree before
	// copying. Without it, an existing destination aborts the copy
	// before any mutation.
	Overwrite bool
}

// DeleteTree removes the subtree rooted at the Handle depth-first. A
// root that does not exist is a successful no-op, so deleting twice in a
// row is not an error. The first unlink or rmdir failure aborts and
// propagates; the operation is not atomic and a crash mid-way leaves a
// partially deleted tree.
func (h Handle) DeleteTree(ctx context.Context) error {
	md, err := h.fs.Lstat(ctx, h.Abs())
	if err != nil {
		wrapped := wrapErr("delete", h.path, err)
		if errors.Is(wrapped, ErrNotFound) {
			return nil
		}
		return wrapped
	}

	if md.Kind != storage.KindDir {
		return wrapErr("unlink", h.path, h.fs.Unlink(ctx, h.Abs()))
	}

	names, err := h.fs.ReadDir(ctx, h.Abs())
	if err != nil {
		return wrapErr("readdir", h.path, err)
	}

	for _, name := range names {
		c := h.child(name)
		cmd, err := h.fs.Lstat(ctx, c.Abs())
		if err != nil {
			return wrapErr("lstat", c.path, err)
		}
		if cmd.Kind == storage.KindDir {
			grandchildren, err := h.fs.ReadDir(ctx, c.Abs())
			if err != nil {
				return wrapErr("readdir", c.path, err)
			}
			if len(grandchildren) > 0 {
				if err := c.DeleteTree(ctx); err != nil {
					return err
				}
			} else if err := h.fs.Rmdir(ctx, c.Abs()); err != nil {
				return wrapErr("rmdir", c.path, err)
			}
		} else if err := h.fs.Unlink(ctx, c.Abs()); err != nil {
			return wrapErr("unlink", c.path, err)
		}
	}

	if err := h.fs.Rmdir(ctx, h.Abs()); err != nil {
		return wrapErr("rmdir", h.path, err)
	}
	return nil
}

// DeleteTreeSync is DeleteTree with a background context.
func (h Handle) DeleteTreeSync() error {
	return h.DeleteTree(context.Background())
}

// CopyTree replicates the subtree rooted at the Handle under dest.
//
// An existing destination fails with ErrAlreadyExists before anything is
// touched, unless opts.Overwrite is set, in which case the destination
// subtree is fully removed first. Children are classified with a
// link-aware stat: directories recurse, symbolic links are recreated
// pointing at the same target (never dereferenced), everything else is
// byte-copied. The first failure aborts; children already copied stay in
// place.
func (h Handle) CopyTree(ctx context.Context, dest Handle, opts CopyOptions) error {
	if _, err := h.fs.Stat(ctx, dest.Abs()); err == nil {
		if !opts.Overwrite {
			return &Error{Op: "copy", Path: dest.path, Err: ErrAlreadyExists}
		}
		if err := dest.DeleteTree(ctx); err != nil {
			return err
		}
	}

	if err := h.fs.Mkdir(ctx, dest.Abs()); err != nil {
		return wrapErr("mkdir", dest.path, err)
	}

	names, err := h.fs.ReadDir(ctx, h.Abs())
	if err != nil {
		return wrapErr("readdir", h.path, err)
	}

	for _, name := range names {
		src := h.child(name)
		dst := dest.child(name)

		md, err := h.fs.Lstat(ctx, src.Abs())
		if err != nil {
			return wrapErr("lstat", src.path, err)
		}

		switch md.Kind {
		case storage.KindDir:
			if err := src.CopyTree(ctx, dst, opts); err != nil {
				return err
			}
		case storage.KindSymlink:
			target, err := h.fs.ReadLink(ctx, src.Abs())
			if err != nil {
				return wrapErr("readlink", src.path, err)
			}
			if err := h.fs.Symlink(ctx, target, dst.Abs()); err != nil {
				return wrapErr("symlink", dst.path, err)
			}
		default:
			if err := h.fs.CopyBytes(ctx, src.Abs(), dst.Abs()); err != nil {
				return wrapErr("copy", src.path, err)
			}
		}
	}
	return nil
}

// CopyTreeSync is CopyTree with a background context.
func (h Handle) CopyTreeSync(dest Handle, opts CopyOptions) error {
	return h.CopyTree(context.Background(), dest, opts)
}

// Walk visits the subtree in pre-order. The predicate's return value
// decides whether to descend into a directory's children; non-directory
// nodes are leaves regardless. Children at each level are visited in
// lexicographic path order, making the traversal deterministic.
func (h Handle) Walk(fn func(Handle) bool) error {
	descend := fn(h)

	isDir, err := h.IsDirSync()
	if err != nil {
		return err
	}
	if !isDir || !descend {
		return nil
	}

	children, err := h.listChildren(context.Background(), "")
	if err != nil {
		return err
	}
	sort.Slice(children, func(i, j int) bool {
		return children[i].Path() < children[j].Path()
	})

	for _, c := range children {
		if err := c.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}
