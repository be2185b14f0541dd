//go:build windows

package iosync

import "golang.org/x/sys/windows"

// datasync syncs fd's data and metadata to disk via FlushFileBuffers, the
// Windows equivalent of fsync.
func datasync(fd int) error {
	return windows.FlushFileBuffers(windows.Handle(fd))
}
