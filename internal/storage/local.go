package storage

import (
	"context"
	"io"
	"os"
	"syscall"
)

// Local implements Backend against the host filesystem.
type Local struct{}

// NewLocal creates a local backend.
func NewLocal() *Local {
	return &Local{}
}

// Stat fetches metadata, following symlinks.
func (l *Local) Stat(ctx context.Context, path string) (Metadata, error) {
	if err := ctx.Err(); err != nil {
		return Metadata{}, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return Metadata{}, err
	}
	return metadataFrom(info), nil
}

// Lstat fetches metadata without following symlinks.
func (l *Local) Lstat(ctx context.Context, path string) (Metadata, error) {
	if err := ctx.Err(); err != nil {
		return Metadata{}, err
	}
	info, err := os.Lstat(path)
	if err != nil {
		return Metadata{}, err
	}
	return metadataFrom(info), nil
}

// ReadDir lists immediate child names.
func (l *Local) ReadDir(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name()
	}
	return names, nil
}

// Unlink removes a file or symlink.
func (l *Local) Unlink(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.Remove(path)
}

// Rmdir removes an empty directory. A path naming anything other than
// a directory fails with ENOTDIR rather than being unlinked.
func (l *Local) Rmdir(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &os.PathError{Op: "rmdir", Path: path, Err: syscall.ENOTDIR}
	}
	return os.Remove(path)
}

// Mkdir creates a single directory.
func (l *Local) Mkdir(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.Mkdir(path, 0o755)
}

// ReadLink reads a symlink target.
func (l *Local) ReadLink(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return os.Readlink(path)
}

// Symlink creates a symbolic link at link pointing to target.
func (l *Local) Symlink(ctx context.Context, target, link string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.Symlink(target, link)
}

// Access reports whether the process holds the given permission bits.
// Any check failure reads as false.
func (l *Local) Access(ctx context.Context, path string, mode AccessMode) bool {
	if ctx.Err() != nil {
		return false
	}
	return access(path, mode)
}

// CopyBytes streams the content of src into a new file at dst,
// preserving the source's permission bits.
func (l *Local) CopyBytes(ctx context.Context, src, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func kindOf(mode os.FileMode) Kind {
	switch {
	case mode.IsDir():
		return KindDir
	case mode&os.ModeSymlink != 0:
		return KindSymlink
	case mode&os.ModeSocket != 0:
		return KindSocket
	case mode.IsRegular():
		return KindFile
	default:
		return KindOther
	}
}

func metadataFrom(info os.FileInfo) Metadata {
	md := Metadata{
		Kind:       kindOf(info.Mode()),
		Size:       info.Size(),
		ModTime:    info.ModTime(),
		AccessTime: info.ModTime(),
		ChangeTime: info.ModTime(),
	}
	fillTimes(info, &md)
	return md
}
