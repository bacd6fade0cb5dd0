// Package fsops provides the filesystem primitives used by the transfer
// and undo engines: metadata-preserving copies, cross-device-safe moves,
// and cleanup of emptied directory trees.
package fsops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// defaultBufferSize is used when the caller does not configure one
const defaultBufferSize = 64 * 1024

// CopyFile copies src to dst with the default buffer, creating parent
// directories on demand and preserving the source's permissions and
// modification time
func CopyFile(src, dst string) error {
	return CopyFileBuffer(src, dst, defaultBufferSize)
}

// CopyFileBuffer is CopyFile with a caller-chosen copy buffer size
func CopyFileBuffer(src, dst string, bufSize int) error {
	if bufSize < 1024 {
		bufSize = defaultBufferSize
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to stat source file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}

	written, err := io.CopyBuffer(out, in, make([]byte, bufSize))
	if err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("failed to copy file: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return fmt.Errorf("failed to close destination file: %w", err)
	}

	if written != srcInfo.Size() {
		os.Remove(dst)
		return fmt.Errorf("incomplete copy: expected %d bytes, wrote %d", srcInfo.Size(), written)
	}

	// Preserve permissions and modification time
	if err := os.Chmod(dst, srcInfo.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Chtimes(dst, srcInfo.ModTime(), srcInfo.ModTime()); err != nil {
		return fmt.Errorf("failed to set modification time: %w", err)
	}

	return nil
}

// Exists checks if a path exists
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check existence: %w", err)
}
