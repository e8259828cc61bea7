// Package storage defines the narrow capability set the pathname engine
// uses to touch a filesystem, plus the local OS-backed implementation.
//
// Keeping the surface this small makes every tree operation testable
// against a mock and keeps platform syscall details out of the engine.
package storage

import (
	"context"
	"time"
)

// Kind classifies an on-disk entry.
type Kind string

const (
	KindFile    Kind = "file"
	KindDir     Kind = "dir"
	KindSymlink Kind = "symlink"
	KindSocket  Kind = "socket"
	KindOther   Kind = "other"
)

// Metadata is a point-in-time snapshot of an entry. It is fetched fresh
// on every query and never cached by the engine.
type Metadata struct {
	Kind       Kind      `json:"kind"`
	Size       int64     `json:"size"`
	ModTime    time.Time `json:"mod_time"`
	AccessTime time.Time `json:"access_time"`
	ChangeTime time.Time `json:"change_time"`
}

// AccessMode selects permission bits for Access checks.
// Values mirror access(2): R_OK, W_OK, X_OK.
type AccessMode uint32

const (
	AccessExec  AccessMode = 0x1
	AccessWrite AccessMode = 0x2
	AccessRead  AccessMode = 0x4
)

// Backend is the capability set for filesystem access.
//
// Stat follows symbolic links; Lstat does not. ReadDir returns immediate
// child names in whatever order the platform yields them. Access reports
// whether the calling process holds the given permission bits; any
// failure is reported as false rather than an error.
type Backend interface {
	Stat(ctx context.Context, path string) (Metadata, error)
	Lstat(ctx context.Context, path string) (Metadata, error)
	ReadDir(ctx context.Context, path string) ([]string, error)
	Unlink(ctx context.Context, path string) error
	Rmdir(ctx context.Context, path string) error
	Mkdir(ctx context.Context, path string) error
	ReadLink(ctx context.Context, path string) (string, error)
	Symlink(ctx context.Context, target, link string) error
	Access(ctx context.Context, path string, mode AccessMode) bool
	CopyBytes(ctx context.Context, src, dst string) error
}
