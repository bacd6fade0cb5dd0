package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/sdejongh/mediacurator/internal/platform"
	"github.com/sdejongh/mediacurator/pkg/config"
	"github.com/sdejongh/mediacurator/pkg/match"
	"github.com/sdejongh/mediacurator/pkg/metadata"
)

// validateRunFlags validates the run command flags before anything is
// mutated; every failure here is a configuration error
func validateRunFlags(cfg *config.Config) error {
	for _, path := range []string{runFlags.Source, runFlags.Destination, runFlags.Discard} {
		if err := platform.ValidatePath(path); err != nil {
			return err
		}
	}

	info, err := os.Stat(runFlags.Source)
	if os.IsNotExist(err) {
		return fmt.Errorf("source path does not exist: %s", runFlags.Source)
	}
	if err != nil {
		return fmt.Errorf("failed to access source path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("source path is not a directory: %s", runFlags.Source)
	}

	valid := map[string]bool{}
	for _, name := range match.Available() {
		valid[name] = true
	}
	if !valid[runFlags.MatchStrategy] {
		return fmt.Errorf("invalid match strategy: %s (valid: %v)", runFlags.MatchStrategy, match.Available())
	}

	if runFlags.Mode != "copy" && runFlags.Mode != "move" {
		return fmt.Errorf("invalid mode: %s (valid: copy, move)", runFlags.Mode)
	}

	if runFlags.Extractor != "" {
		cfg.Extractor.Kind = runFlags.Extractor
	}
	if runFlags.BatchSize > 0 {
		cfg.Extractor.BatchSize = runFlags.BatchSize
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// A missing external tool must fail before any file is touched
	if cfg.Extractor.Kind == "exiftool" {
		if err := metadata.CheckExifTool(); err != nil {
			return err
		}
	}

	// The destination and discard trees are created up front except in
	// dry-run mode, which must not mutate anything
	if !runFlags.DryRun {
		if err := os.MkdirAll(runFlags.Destination, 0755); err != nil {
			return fmt.Errorf("failed to create destination directory: %w", err)
		}
		if err := os.MkdirAll(runFlags.Discard, 0755); err != nil {
			return fmt.Errorf("failed to create discard directory: %w", err)
		}
	}

	return nil
}

// buildRunConfig assembles the immutable per-run configuration with
// absolute paths and a fresh run id
func buildRunConfig() (*config.RunConfig, error) {
	source, err := filepath.Abs(platform.NormalizePath(runFlags.Source))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve source path: %w", err)
	}
	destination, err := filepath.Abs(platform.NormalizePath(runFlags.Destination))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve destination path: %w", err)
	}
	discard, err := filepath.Abs(platform.NormalizePath(runFlags.Discard))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve discard path: %w", err)
	}

	logDir := runFlags.LogDir
	if logDir == "" {
		logDir = "."
	}
	logDir, err = filepath.Abs(logDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve log directory: %w", err)
	}

	rc := &config.RunConfig{
		RunID:         newRunID(),
		Source:        source,
		Destination:   destination,
		Discard:       discard,
		Mode:          runFlags.Mode,
		MatchStrategy: runFlags.MatchStrategy,
		DryRun:        runFlags.DryRun,
		LogDir:        logDir,
	}

	if err := rc.Validate(); err != nil {
		return nil, err
	}

	return rc, nil
}

// newRunID builds a sortable run identifier: timestamp plus a short
// unique suffix so two runs within the same second never collide
func newRunID() string {
	return fmt.Sprintf("mediacurator_%s_%s",
		time.Now().Format("20060102_150405"),
		uuid.New().String()[:8])
}
