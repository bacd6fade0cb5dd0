package match

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"os"

	"github.com/sdejongh/mediacurator/pkg/logging"
	"github.com/sdejongh/mediacurator/pkg/models"
	"github.com/sdejongh/mediacurator/pkg/scan"
)

// StrategyContentHash is the registry name of the content-hash strategy
const StrategyContentHash = "content-hash"

// hashChunkSize is the streaming read size, bounding memory use
// regardless of file size
const hashChunkSize = 64 * 1024

// progressLogInterval is how often hashing progress is logged
const progressLogInterval = 1000

// ContentHash flags a source file as duplicate when a file with an
// identical SHA-256 content digest exists anywhere under the destination
// archive, regardless of filename. Indexing and matching both read every
// byte, which dominates wall-clock time on large archives.
type ContentHash struct {
	logger   logging.Logger
	index    map[string][]string
	progress ProgressFunc
}

// NewContentHash creates a content-hash strategy with empty index state
func NewContentHash(logger logging.Logger) *ContentHash {
	return &ContentHash{
		logger: logger,
		index:  make(map[string][]string),
	}
}

// Name returns the strategy identifier
func (s *ContentHash) Name() string {
	return StrategyContentHash
}

// SetProgress sets a callback invoked as files are hashed
func (s *ContentHash) SetProgress(fn ProgressFunc) {
	s.progress = fn
}

// BuildIndex hashes every file in the destination archive. Unreadable
// files are logged and excluded from the index; they never abort the run.
func (s *ContentHash) BuildIndex(ctx context.Context, destination string) error {
	entries, err := scan.WalkArchive(ctx, destination)
	if err != nil {
		return err
	}

	total := len(entries)
	for i, e := range entries {
		s.reportProgress(ctx, "hashing destination", i, total)

		digest, err := HashFile(ctx, e.Path)
		if err != nil {
			s.logger.Warn(ctx, "cannot hash archive file", logging.Fields{"path": e.Path, "error": err.Error()})
			continue
		}
		s.index[digest] = append(s.index[digest], e.Path)
	}
	s.reportProgress(ctx, "hashing destination", total, total)

	return ctx.Err()
}

// MatchAll hashes every source file and looks the digest up in the index.
// A file that cannot be hashed is treated as non-duplicate.
func (s *ContentHash) MatchAll(ctx context.Context, files []models.FileRecord) ([]models.MatchResult, error) {
	results := make([]models.MatchResult, 0, len(files))

	total := len(files)
	for i, record := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		s.reportProgress(ctx, "hashing source", i, total)

		digest, err := HashFile(ctx, record.Path)
		if err != nil {
			s.logger.Warn(ctx, "cannot hash source file", logging.Fields{"path": record.Path, "error": err.Error()})
			results = append(results, models.MatchResult{Source: record})
			continue
		}

		if matches := s.index[digest]; len(matches) > 0 {
			results = append(results, models.MatchResult{
				Source:          record,
				MatchedExisting: matches[0],
				IsDuplicate:     true,
			})
			continue
		}

		results = append(results, models.MatchResult{Source: record})
	}
	s.reportProgress(ctx, "hashing source", total, total)

	return results, nil
}

// reportProgress forwards progress to the callback and logs at coarse
// intervals
func (s *ContentHash) reportProgress(ctx context.Context, phase string, done, total int) {
	if s.progress != nil {
		s.progress(done, total)
	}
	if done > 0 && done%progressLogInterval == 0 {
		s.logger.Info(ctx, phase, logging.Fields{"done": done, "total": total})
	}
}

// HashFile computes the SHA-256 hex digest of a file, streaming it in
// fixed-size chunks
func HashFile(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	hasher := sha256.New()
	buf := make([]byte, hashChunkSize)

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		n, err := f.Read(buf)
		if n > 0 {
			hasher.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
	}

	return fmt.Sprintf("%x", hasher.Sum(nil)), nil
}
