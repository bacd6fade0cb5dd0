// Package resolve assigns one disposition to every match result: store,
// discard the source, skip, or file under NoDate.
package resolve

import (
	"fmt"
	"path/filepath"

	"github.com/sdejongh/mediacurator/pkg/config"
	"github.com/sdejongh/mediacurator/pkg/models"
)

// NoDateDirName is the destination subdirectory for files without a
// usable capture date
const NoDateDirName = "NoDate"

// Resolver decides what happens to each file based on its match result.
// It holds no mutable state across calls and performs no file transfers.
//
// Rules, in order:
//   - duplicate            -> discard the source, archive copy wins
//   - target == source     -> skip (recursive in-place mode)
//   - no capture date      -> store under destination/NoDate
//   - otherwise            -> store under destination/YYYY/MM
//
// Duplicate detection deliberately takes precedence over in-place skip: a
// file that is already in place and also matches the destination snapshot
// is discarded, not skipped.
type Resolver struct {
	cfg *config.RunConfig
}

// NewResolver creates a resolver for the run's directory layout
func NewResolver(cfg *config.RunConfig) *Resolver {
	return &Resolver{cfg: cfg}
}

// Resolve assigns a disposition and target path to every match result,
// in order. Sidecars are attached to the returned actions afterwards;
// they never receive an independent disposition.
func (r *Resolver) Resolve(results []models.MatchResult) []models.FileAction {
	actions := make([]models.FileAction, 0, len(results))

	for _, mr := range results {
		source := mr.Source

		if mr.IsDuplicate {
			actions = append(actions, models.FileAction{
				Source:          source,
				Action:          models.ActionDiscardSource,
				DestinationPath: filepath.Join(r.cfg.Discard, filepath.Base(source.Path)),
				MatchedExisting: mr.MatchedExisting,
				Reason:          fmt.Sprintf("duplicate of %s", mr.MatchedExisting),
			})
			continue
		}

		target := filepath.Join(r.targetDir(source), filepath.Base(source.Path))

		if canonical(target) == canonical(source.Path) {
			actions = append(actions, models.FileAction{
				Source:          source,
				Action:          models.ActionSkip,
				DestinationPath: target,
				Reason:          "already in correct location",
			})
			continue
		}

		action, reason := models.ActionStore, "new file"
		if source.Year == "" {
			action, reason = models.ActionNoDate, "no capture date"
		}
		actions = append(actions, models.FileAction{
			Source:          source,
			Action:          action,
			DestinationPath: target,
			Reason:          reason,
		})
	}

	return actions
}

// targetDir computes destination/YYYY/MM, or destination/NoDate when the
// capture date is unknown
func (r *Resolver) targetDir(record models.FileRecord) string {
	if record.HasDate() {
		return filepath.Join(r.cfg.Destination, record.Year, record.Month)
	}
	return filepath.Join(r.cfg.Destination, NoDateDirName)
}

// canonical resolves a path to its absolute, symlink-free form so the
// in-place comparison never false-negatives on symlinks or relative
// segments. Paths that do not exist yet canonicalize their textual form.
func canonical(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
