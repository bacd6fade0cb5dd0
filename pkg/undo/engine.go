// Package undo reverses the file operations of a previous run using its
// JSON manifest. Copy-mode runs delete the copies; move-mode runs move
// files back to their recorded source paths.
package undo

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/sdejongh/mediacurator/pkg/fsops"
	"github.com/sdejongh/mediacurator/pkg/logging"
	"github.com/sdejongh/mediacurator/pkg/manifest"
)

// UndoneOperation records one successfully reversed transfer
type UndoneOperation struct {
	UndoneSource      string `json:"undone_source"`
	UndoneDestination string `json:"undone_destination"`
}

// Result summarizes an undo run
type Result struct {
	// Undone lists every reversed transfer, in undo order
	Undone []UndoneOperation

	// Errors counts per-file undo failures
	Errors int

	// ResultPath is where the undo-result document was written
	ResultPath string

	// NoOp reports that the original run was a dry-run and nothing had
	// to be reversed
	NoOp bool
}

// ExitCode returns the process exit status: non-zero when any per-file
// undo failed
func (r *Result) ExitCode() int {
	if r.Errors > 0 {
		return 1
	}
	return 0
}

// Engine replays a manifest in reverse to restore the pre-run state
type Engine struct {
	logger logging.Logger
	dryRun bool
	logDir string
}

// NewEngine creates an undo engine. logDir receives the undo-result
// document; dryRun previews the undo without changing anything.
func NewEngine(logger logging.Logger, dryRun bool, logDir string) *Engine {
	return &Engine{logger: logger, dryRun: dryRun, logDir: logDir}
}

// Run loads, validates, and reverses a manifest. Records are processed
// in reverse order, and within each record sidecars are undone before
// the primary, mirroring application order exactly. Undo is safely
// re-runnable: destinations that no longer exist count as already
// undone.
func (e *Engine) Run(ctx context.Context, manifestPath string) (*Result, error) {
	doc, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, err
	}

	result := &Result{}

	if doc.Config.DryRun {
		e.logger.Info(ctx, "original run was a dry-run, nothing to undo", nil)
		result.NoOp = true
		return result, nil
	}
	if len(doc.Operations) == 0 {
		e.logger.Info(ctx, "no operations to undo", nil)
		return result, nil
	}

	for i := len(doc.Operations) - 1; i >= 0; i-- {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		op := doc.Operations[i]

		for j := len(op.Sidecars) - 1; j >= 0; j-- {
			sc := op.Sidecars[j]
			// Sidecar records carry no size, so no integrity check
			if e.undoOne(ctx, doc, sc.Source, sc.Destination, nil) {
				result.Undone = append(result.Undone, UndoneOperation{
					UndoneSource:      sc.Source,
					UndoneDestination: sc.Destination,
				})
			} else {
				result.Errors++
			}
		}

		if e.undoOne(ctx, doc, op.Source, op.Destination, op.SourceSize) {
			result.Undone = append(result.Undone, UndoneOperation{
				UndoneSource:      op.Source,
				UndoneDestination: op.Destination,
			})
		} else {
			result.Errors++
		}
	}

	if !e.dryRun {
		path, err := e.writeResult(manifestPath, doc, result)
		if err != nil {
			return nil, err
		}
		result.ResultPath = path
	}

	e.logger.Info(ctx, "undo finished", logging.Fields{
		"undone": len(result.Undone),
		"errors": result.Errors,
	})

	return result, nil
}

// undoOne reverses a single recorded transfer. Returns true on success,
// including the already-undone case. A nil sourceSize skips the
// integrity check.
func (e *Engine) undoOne(ctx context.Context, doc *manifest.Document, source, destination string, sourceSize *int64) bool {
	info, err := os.Stat(destination)
	if os.IsNotExist(err) {
		e.logger.Warn(ctx, "already gone, skipping", logging.Fields{"destination": destination})
		return true
	}
	if err != nil {
		e.logger.Error(ctx, "cannot stat destination", err, logging.Fields{"destination": destination})
		return false
	}

	// A recorded size that no longer matches means the file at the
	// destination is not the one this manifest moved there; refuse
	// rather than restore wrong content
	if sourceSize != nil && info.Size() != *sourceSize {
		e.logger.Error(ctx, "size mismatch, refusing undo", nil, logging.Fields{
			"destination": destination,
			"expected":    *sourceSize,
			"actual":      info.Size(),
		})
		return false
	}

	fields := logging.Fields{"source": source, "destination": destination}

	if doc.Config.Mode == "copy" {
		// The source original was never touched; delete the copy
		if e.dryRun {
			e.logger.Info(ctx, "would delete", fields)
			return true
		}
		e.logger.Info(ctx, "delete", fields)
		if err := os.Remove(destination); err != nil {
			e.logger.Error(ctx, "failed to delete", err, fields)
			return false
		}
	} else {
		if e.dryRun {
			e.logger.Info(ctx, "would move back", fields)
			return true
		}
		e.logger.Info(ctx, "move back", fields)
		if err := fsops.MoveFile(destination, source); err != nil {
			e.logger.Error(ctx, "failed to move back", err, fields)
			return false
		}
	}

	e.pruneParents(destination, doc)
	return true
}

// pruneParents removes emptied directories above an undone destination,
// stopping at the destination or discard root it belongs to. Paths
// outside both roots are left alone.
func (e *Engine) pruneParents(destination string, doc *manifest.Document) {
	dir := filepath.Dir(destination)
	for _, root := range []string{doc.Config.Destination, doc.Config.Discard} {
		if root != "" && within(dir, root) {
			fsops.PruneEmptyDirs(dir, root)
			return
		}
	}
}

// within reports whether path is inside root
func within(path, root string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (!strings.HasPrefix(rel, "..") && !filepath.IsAbs(rel))
}
