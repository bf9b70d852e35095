// Package fileio loads one file's full content for scanning, enforcing the
// regular-file and size-ceiling checks before any bytes are read.
package fileio

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Sentinel failure classes for the loader. Callers distinguish them with
// errors.Is; the underlying OS error stays reachable through Unwrap.
var (
	// ErrNotFound means the path does not exist or is not a regular file.
	// Symlinks, directories and device files are all rejected.
	ErrNotFound = errors.New("not found or not a regular file")

	// ErrSizeLimit means the file exceeds the caller's byte ceiling. The
	// file is deliberately skipped without reading any content.
	ErrSizeLimit = errors.New("skipped: file size > limit")

	// ErrRead means an I/O failure while opening or reading the file
	// (permission denied, device error, file truncated mid-read).
	ErrRead = errors.New("read error")
)

// Load validates path and reads its entire content.
//
// The returned size is the stat-reported file size and is populated whenever
// it could be determined, including on ErrSizeLimit and ErrRead failures, so
// the caller can still report it. maxBytes of 0 means unlimited. On any
// error the returned buffer is nil; no partial content is ever exposed.
func Load(path string, maxBytes int64) ([]byte, int64, error) {
	// Lstat, not Stat: a symlink is not a regular file here even when its
	// target is one.
	info, err := os.Lstat(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if !info.Mode().IsRegular() {
		return nil, 0, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	size := info.Size()
	if maxBytes > 0 && size > maxBytes {
		return nil, size, fmt.Errorf("%w (%d > %d)", ErrSizeLimit, size, maxBytes)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, size, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer f.Close()

	if size == 0 {
		return []byte{}, 0, nil
	}

	// Read exactly the stat-reported size. A file that shrank since Lstat
	// surfaces as ErrUnexpectedEOF and is reported as a read failure.
	buf := make([]byte, size)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, size, fmt.Errorf("%w: %w", ErrRead, err)
	}

	return buf, size, nil
}
