// Package transfer executes planned file actions: it moves or copies
// primaries and their sidecars into place, resolves name collisions, and
// emits one manifest record per primary transfer.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/sdejongh/mediacurator/pkg/config"
	"github.com/sdejongh/mediacurator/pkg/fsops"
	"github.com/sdejongh/mediacurator/pkg/logging"
	"github.com/sdejongh/mediacurator/pkg/manifest"
	"github.com/sdejongh/mediacurator/pkg/models"
)

// Mover executes file actions in list order. Per-file failures are
// logged and counted without aborting the batch; only collision
// exhaustion stops the run.
type Mover struct {
	cfg         *config.RunConfig
	maxAttempts int
	bufferSize  int
	writer      *manifest.Writer
	logger      logging.Logger
	progress    func(done, total int)
}

// NewMover creates a transfer engine for one run
func NewMover(cfg *config.RunConfig, transferCfg config.TransferConfig, writer *manifest.Writer, logger logging.Logger) *Mover {
	return &Mover{
		cfg:         cfg,
		maxAttempts: transferCfg.MaxCollisionAttempts,
		bufferSize:  transferCfg.BufferSize,
		writer:      writer,
		logger:      logger,
	}
}

// SetProgress sets a callback invoked after each action
func (m *Mover) SetProgress(fn func(done, total int)) {
	m.progress = fn
}

// Execute applies every action in order, accumulating counters into
// result. In dry-run mode every decision is made and recorded but no
// filesystem mutation is issued.
func (m *Mover) Execute(ctx context.Context, actions []models.FileAction, result *models.RunResult) error {
	total := len(actions)
	for i, action := range actions {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := m.executeOne(ctx, action, result); err != nil {
			if errors.Is(err, ErrCollisionExhausted) {
				return err
			}
			m.logger.Error(ctx, "failed to process file", err, logging.Fields{"path": action.Source.Path})
			result.Errors++
		}

		if m.progress != nil {
			m.progress(i+1, total)
		}
	}
	return nil
}

// executeOne applies one action: skip, or transfer primary plus sidecars
// and record the operation
func (m *Mover) executeOne(ctx context.Context, fa models.FileAction, result *models.RunResult) error {
	if fa.Action == models.ActionSkip {
		m.logger.Debug(ctx, "skip", logging.Fields{"path": fa.Source.Path, "reason": fa.Reason})
		result.FilesSkipped++
		return nil
	}

	dest, err := ResolveCollision(fa.DestinationPath, m.maxAttempts)
	if err != nil {
		return err
	}

	if err := m.transfer(ctx, fa.Source.Path, dest); err != nil {
		return err
	}

	// Sidecars follow the primary: into its directory for stores, into
	// the discard root for discards
	sidecarDir := filepath.Dir(dest)
	if fa.Action == models.ActionDiscardSource {
		sidecarDir = m.cfg.Discard
	}

	sidecars := make([]manifest.Sidecar, 0, len(fa.Sidecars))
	for _, sc := range fa.Sidecars {
		scDest, err := ResolveCollision(filepath.Join(sidecarDir, filepath.Base(sc.Path)), m.maxAttempts)
		if err != nil {
			return err
		}
		if err := m.transfer(ctx, sc.Path, scDest); err != nil {
			return err
		}
		sidecars = append(sidecars, manifest.Sidecar{Source: sc.Path, Destination: scDest})
	}

	sourceSize := fa.Source.Size
	m.writer.Record(manifest.Operation{
		Action:          string(fa.Action),
		Source:          fa.Source.Path,
		Destination:     dest,
		SourceSize:      &sourceSize,
		MatchedExisting: fa.MatchedExisting,
		Sidecars:        sidecars,
	})

	switch fa.Action {
	case models.ActionStore:
		result.FilesStored++
	case models.ActionNoDate:
		result.FilesNoDate++
	case models.ActionDiscardSource:
		result.FilesDiscarded++
	}

	return nil
}

// transfer copies or moves a single file, honoring dry-run
func (m *Mover) transfer(ctx context.Context, src, dest string) error {
	fields := logging.Fields{"source": src, "destination": dest, "mode": m.cfg.Mode}
	if m.cfg.DryRun {
		m.logger.Info(ctx, "would transfer", fields)
		return nil
	}
	m.logger.Info(ctx, "transfer", fields)

	if m.cfg.Mode == "move" {
		if err := fsops.MoveFile(src, dest); err != nil {
			return fmt.Errorf("move %s: %w", src, err)
		}
		return nil
	}
	if err := fsops.CopyFileBuffer(src, dest, m.bufferSize); err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return nil
}
