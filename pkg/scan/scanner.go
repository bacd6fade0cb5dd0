// Package scan discovers media and sidecar files in the source tree and
// walks the destination archive for the matching strategies.
package scan

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/sdejongh/mediacurator/pkg/config"
	"github.com/sdejongh/mediacurator/pkg/logging"
	"github.com/sdejongh/mediacurator/pkg/models"
)

// SidecarMap associates a media file path with its sidecar files, in
// discovery order
type SidecarMap map[string][]models.FileRecord

// Scanner walks the source directory and produces file records
type Scanner struct {
	cfg    *config.RunConfig
	logger logging.Logger
}

// NewScanner creates a scanner for the run's source directory
func NewScanner(cfg *config.RunConfig, logger logging.Logger) *Scanner {
	return &Scanner{cfg: cfg, logger: logger}
}

// Scan walks the source tree and returns the discovered media files plus
// a map of media path -> sidecar records. Junk files, pruned directories,
// and unknown extensions are ignored; unstatable files are logged and
// skipped. Orphan sidecars (no media file with the same stem in the same
// directory) are logged and dropped.
func (s *Scanner) Scan(ctx context.Context) ([]models.FileRecord, SidecarMap, error) {
	var media []models.FileRecord
	var sidecars []models.FileRecord

	err := filepath.WalkDir(s.cfg.Source, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.logger.Warn(ctx, "cannot access path", logging.Fields{"path": path, "error": err.Error()})
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

		if config.SkipFilenames[name] {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !config.IsMediaExtension(ext) && !config.SidecarExtensions[ext] {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			s.logger.Warn(ctx, "cannot stat file", logging.Fields{"path": path, "error": err.Error()})
			return nil
		}

		record := models.FileRecord{
			Path:      path,
			Category:  config.Categorize(ext),
			Size:      info.Size(),
			Extension: ext,
		}

		if config.IsMediaExtension(ext) {
			media = append(media, record)
		} else {
			sidecars = append(sidecars, record)
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan source: %w", err)
	}

	return media, s.mapSidecars(ctx, media, sidecars), nil
}

// mapSidecars attaches sidecar records to their parent media file,
// matched by identical parent directory and case-insensitive stem
func (s *Scanner) mapSidecars(ctx context.Context, media, sidecars []models.FileRecord) SidecarMap {
	lookup := make(map[string]string, len(media))
	for _, m := range media {
		lookup[stemKey(m.Path)] = m.Path
	}

	result := make(SidecarMap)
	for _, sc := range sidecars {
		parent, ok := lookup[stemKey(sc.Path)]
		if !ok {
			s.logger.Debug(ctx, "orphan sidecar, no matching media", logging.Fields{"path": sc.Path})
			continue
		}
		sc.ParentMedia = parent
		result[parent] = append(result[parent], sc)
	}
	return result
}

// stemKey builds the sidecar association key: directory plus
// case-insensitive filename stem
func stemKey(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(path), strings.ToLower(stem))
}
