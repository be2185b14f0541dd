package iosync

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes data to path and syncs the file's contents to disk before
// returning, then makes a best-effort attempt to sync its containing
// directory (see syncDir); a failed directory sync is not reported.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("iosync: open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("iosync: write %s: %w", path, err)
	}

	if err := datasync(int(f.Fd())); err != nil {
		return fmt.Errorf("iosync: sync %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("iosync: close %s: %w", path, err)
	}

	return syncDir(path)
}

// syncDir fsyncs the directory containing path, so the new directory entry
// itself survives a crash. Best-effort: some platforms/filesystems don't
// support fsyncing a directory handle, and that is not treated as fatal.
func syncDir(path string) error {
	dir, err := os.Open(filepath.Dir(path))
	if err != nil {
		return nil
	}
	defer dir.Close()
	_ = datasync(int(dir.Fd()))
	return nil
}
