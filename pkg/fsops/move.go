package fsops

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// MoveFile relocates src to dst, creating parent directories on demand.
// Within one filesystem the move is an atomic rename; across filesystem
// boundaries it falls back to copy+delete.
func MoveFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !isCrossDevice(err) {
		return fmt.Errorf("failed to move file: %w", err)
	}

	// Cross-device rename: copy then delete the original
	if err := CopyFile(src, dst); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("failed to remove source after copy: %w", err)
	}

	return nil
}

// isCrossDevice reports whether err is an EXDEV cross-device link error
func isCrossDevice(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}
