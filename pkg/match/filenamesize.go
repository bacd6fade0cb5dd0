package match

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/sdejongh/mediacurator/pkg/logging"
	"github.com/sdejongh/mediacurator/pkg/models"
	"github.com/sdejongh/mediacurator/pkg/scan"
)

// StrategyFilenameSize is the registry name of the filename+size strategy
const StrategyFilenameSize = "filename-size"

// nameSizeKey is the index key: lowercased filename plus byte size
type nameSizeKey struct {
	name string
	size int64
}

// FilenameSize flags a source file as duplicate when an identical
// filename (case-insensitive) with the same byte size exists anywhere
// under the destination archive. When several archive files share a key
// the first one found wins; ties are not disambiguated further.
type FilenameSize struct {
	logger logging.Logger
	index  map[nameSizeKey][]string
}

// NewFilenameSize creates a filename+size strategy with empty index state
func NewFilenameSize(logger logging.Logger) *FilenameSize {
	return &FilenameSize{
		logger: logger,
		index:  make(map[nameSizeKey][]string),
	}
}

// Name returns the strategy identifier
func (s *FilenameSize) Name() string {
	return StrategyFilenameSize
}

// BuildIndex indexes the destination archive by (filename, size)
func (s *FilenameSize) BuildIndex(ctx context.Context, destination string) error {
	entries, err := scan.WalkArchive(ctx, destination)
	if err != nil {
		return err
	}

	for _, e := range entries {
		key := nameSizeKey{name: strings.ToLower(filepath.Base(e.Path)), size: e.Size}
		s.index[key] = append(s.index[key], e.Path)
	}
	return nil
}

// MatchAll compares every source file against the index. Novel files are
// inserted into the working index so that a later duplicate within the
// same source batch is also caught.
func (s *FilenameSize) MatchAll(ctx context.Context, files []models.FileRecord) ([]models.MatchResult, error) {
	results := make([]models.MatchResult, 0, len(files))

	for _, record := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		key := nameSizeKey{name: strings.ToLower(filepath.Base(record.Path)), size: record.Size}

		if matches := s.index[key]; len(matches) > 0 {
			results = append(results, models.MatchResult{
				Source:          record,
				MatchedExisting: matches[0],
				IsDuplicate:     true,
			})
			continue
		}

		results = append(results, models.MatchResult{Source: record})
		s.index[key] = append(s.index[key], record.Path)
	}

	return results, nil
}
