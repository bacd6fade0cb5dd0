// Package pipeline sequences a curation run: scan, metadata enrichment,
// duplicate matching, conflict resolution, transfer execution, and
// manifest finalization.
package pipeline

import (
	"context"
	"fmt"

	"github.com/sdejongh/mediacurator/pkg/config"
	"github.com/sdejongh/mediacurator/pkg/logging"
	"github.com/sdejongh/mediacurator/pkg/manifest"
	"github.com/sdejongh/mediacurator/pkg/match"
	"github.com/sdejongh/mediacurator/pkg/metadata"
	"github.com/sdejongh/mediacurator/pkg/models"
	"github.com/sdejongh/mediacurator/pkg/output"
	"github.com/sdejongh/mediacurator/pkg/resolve"
	"github.com/sdejongh/mediacurator/pkg/scan"
	"github.com/sdejongh/mediacurator/pkg/transfer"
)

// Pipeline orchestrates the full curation run. All phases execute
// sequentially on the calling goroutine; nothing is shared across
// threads within a run.
type Pipeline struct {
	runCfg    *config.RunConfig
	appCfg    *config.Config
	extractor metadata.Extractor
	logger    logging.Logger
	progress  *output.Progress
}

// New assembles a pipeline for one run
func New(runCfg *config.RunConfig, appCfg *config.Config, extractor metadata.Extractor, logger logging.Logger, progress *output.Progress) *Pipeline {
	return &Pipeline{
		runCfg:    runCfg,
		appCfg:    appCfg,
		extractor: extractor,
		logger:    logger,
		progress:  progress,
	}
}

// Run executes the five pipeline phases and finalizes the manifest.
// The returned result aggregates the run counters; per-file failures
// are counted there, only configuration-level failures return an error.
func (p *Pipeline) Run(ctx context.Context) (*models.RunResult, error) {
	result := &models.RunResult{DryRun: p.runCfg.DryRun}
	writer := manifest.NewWriter(p.runCfg)

	p.logger.Info(ctx, "phase 1/5: scanning source directory", nil)
	scanner := scan.NewScanner(p.runCfg, p.logger)
	media, sidecars, err := scanner.Scan(ctx)
	if err != nil {
		return nil, err
	}
	result.FilesScanned = len(media)

	sidecarCount := 0
	for _, list := range sidecars {
		sidecarCount += len(list)
	}
	p.logger.Info(ctx, "scan complete", logging.Fields{"media": len(media), "sidecars": sidecarCount})

	if len(media) == 0 {
		p.logger.Info(ctx, "no files to process", nil)
		return p.finalize(writer, result)
	}

	p.logger.Info(ctx, "phase 2/5: extracting capture dates", logging.Fields{"extractor": p.extractor.Name()})
	dates := p.extractor.ExtractDates(ctx, metadata.Paths(media))
	records := metadata.Enrich(media, dates)

	p.logger.Info(ctx, "phase 3/5: matching against destination archive", logging.Fields{"strategy": p.runCfg.MatchStrategy})
	strategy, err := match.New(p.runCfg.MatchStrategy, p.logger)
	if err != nil {
		return nil, err
	}
	if reporter, ok := strategy.(match.ProgressReporter); ok && p.progress != nil {
		reporter.SetProgress(p.progress.Set)
	}
	if err := strategy.BuildIndex(ctx, p.runCfg.Destination); err != nil {
		return nil, fmt.Errorf("failed to index destination: %w", err)
	}
	matches, err := strategy.MatchAll(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("failed to match source files: %w", err)
	}
	if p.progress != nil {
		p.progress.Finish()
	}

	p.logger.Info(ctx, "phase 4/5: resolving dispositions", nil)
	resolver := resolve.NewResolver(p.runCfg)
	actions := resolver.Resolve(matches)
	for i := range actions {
		actions[i].Sidecars = sidecars[actions[i].Source.Path]
	}

	p.logger.Info(ctx, "phase 5/5: executing file operations", nil)
	mover := transfer.NewMover(p.runCfg, p.appCfg.Transfer, writer, p.logger)
	if p.progress != nil {
		p.progress.Start(len(actions))
		mover.SetProgress(p.progress.Set)
	}
	if err := mover.Execute(ctx, actions, result); err != nil {
		return nil, err
	}
	if p.progress != nil {
		p.progress.Finish()
	}

	return p.finalize(writer, result)
}

// finalize writes the manifest and stamps its path into the result
func (p *Pipeline) finalize(writer *manifest.Writer, result *models.RunResult) (*models.RunResult, error) {
	path, err := writer.Finalize(result)
	if err != nil {
		return nil, err
	}
	result.ManifestPath = path
	return result, nil
}
