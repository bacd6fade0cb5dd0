// Package match implements the pluggable duplicate-detection strategies
// and their registry. A strategy indexes the destination archive and
// decides, for every discovered source file, whether it is a duplicate.
package match

import (
	"context"

	"github.com/sdejongh/mediacurator/pkg/models"
)

// Strategy defines the interface for duplicate-detection policies.
// A strategy instance holds per-run index state: BuildIndex must be
// called once before MatchAll.
type Strategy interface {
	// Name returns the identifier used by the --match-strategy flag
	Name() string

	// BuildIndex scans the destination archive and builds the
	// strategy-specific index
	BuildIndex(ctx context.Context, destination string) error

	// MatchAll compares every source file against the index, returning
	// exactly one result per input file with order preserved
	MatchAll(ctx context.Context, files []models.FileRecord) ([]models.MatchResult, error)
}

// ProgressFunc reports coarse progress through a long-running phase
type ProgressFunc func(done, total int)

// ProgressReporter is implemented by strategies whose indexing or
// matching is long-running enough to report progress
type ProgressReporter interface {
	// SetProgress sets a callback invoked as files are processed
	SetProgress(fn ProgressFunc)
}
