//go:build linux

package storage

import (
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// fillTimes extracts access and change times from the raw stat result.
func fillTimes(info os.FileInfo, md *Metadata) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return
	}
	md.AccessTime = time.Unix(stat.Atim.Sec, stat.Atim.Nsec)
	md.ChangeTime = time.Unix(stat.Ctim.Sec, stat.Ctim.Nsec)
}

func access(path string, mode AccessMode) bool {
	return unix.Access(path, uint32(mode)) == nil
}
