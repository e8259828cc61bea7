//go:build !linux

package storage

import "os"

// fillTimes is a no-op where raw stat fields are unavailable; access and
// change times fall back to the modification time set by the caller.
func fillTimes(info os.FileInfo, md *Metadata) {}

// access approximates access(2) from mode bits.
func access(path string, mode AccessMode) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	perm := info.Mode().Perm()
	switch mode {
	case AccessWrite:
		return perm&0o222 != 0
	case AccessExec:
		return perm&0o111 != 0
	default:
		return perm&0o444 != 0
	}
}
