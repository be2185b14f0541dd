//go:build darwin

package iosync

import "golang.org/x/sys/unix"

// datasync syncs fd's data to disk. Darwin has no fdatasync; F_FULLFSYNC is
// the only call that survives a power loss rather than just a process
// crash, so pack uses it instead of plain fsync.
func datasync(fd int) error {
	_, err := unix.FcntlInt(uintptr(fd), unix.F_FULLFSYNC, 0)
	if err != nil {
		return unix.Fsync(fd)
	}
	return nil
}
