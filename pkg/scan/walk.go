package scan

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sdejongh/mediacurator/pkg/config"
)

// ArchiveEntry is one file found in the destination archive
type ArchiveEntry struct {
	Path string
	Size int64
}

// WalkArchive traverses the destination archive and returns every media
// and sidecar file with its size. A missing root yields an empty result,
// not an error: an empty archive simply has no duplicates. Unreadable
// entries are skipped.
func WalkArchive(ctx context.Context, root string) ([]ArchiveEntry, error) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	var entries []ArchiveEntry
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		name := strings.ToLower(d.Name())
		if d.IsDir() {
			if config.SkipDirnames[name] {
				return fs.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !config.IsMediaExtension(ext) && !config.SidecarExtensions[ext] {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}

		entries = append(entries, ArchiveEntry{Path: path, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk archive: %w", err)
	}

	return entries, nil
}
