package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sdejongh/mediacurator/pkg/config"
	"github.com/sdejongh/mediacurator/pkg/logging"
	"github.com/sdejongh/mediacurator/pkg/metadata"
	"github.com/sdejongh/mediacurator/pkg/output"
	"github.com/sdejongh/mediacurator/pkg/pipeline"
)

// RunFlags holds run command flags
type RunFlags struct {
	Source        string
	Destination   string
	Discard       string
	Mode          string
	MatchStrategy string
	DryRun        bool
	Extractor     string
	BatchSize     int
	LogDir        string
	Output        string
}

var runFlags RunFlags

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the media curation pipeline",
		Long: `Scan a source directory for photos and videos, deduplicate them
against the destination archive, and organize new files into a
date-based YYYY/MM layout. Every file operation is recorded in a JSON
manifest that the undo command can reverse.`,
		RunE: runCuration,
	}

	cmd.Flags().StringVarP(&runFlags.Source, "source", "s", "", "source directory to scan (required)")
	cmd.Flags().StringVarP(&runFlags.Destination, "destination", "d", "", "destination archive directory (required)")
	cmd.Flags().StringVar(&runFlags.Discard, "discard", "", "directory for discarded duplicates (required)")
	cmd.MarkFlagRequired("source")
	cmd.MarkFlagRequired("destination")
	cmd.MarkFlagRequired("discard")

	cmd.Flags().StringVarP(&runFlags.Mode, "mode", "m", "copy", "transfer mode: copy, move")
	cmd.Flags().StringVar(&runFlags.MatchStrategy, "match-strategy", "filename-size", "duplicate detection strategy: filename-size, content-hash")
	cmd.Flags().BoolVar(&runFlags.DryRun, "dry-run", false, "preview all actions without making changes")
	cmd.Flags().StringVar(&runFlags.Extractor, "extractor", "", "capture-date extractor: exiftool, native")
	cmd.Flags().IntVar(&runFlags.BatchSize, "batch-size", 0, "files per exiftool batch call (default: 500)")
	cmd.Flags().StringVar(&runFlags.LogDir, "log-dir", "", "directory for log and manifest files (default: current directory)")
	cmd.Flags().StringVarP(&runFlags.Output, "output", "o", "", "summary format: human, json")

	return cmd
}

func runCuration(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if runFlags.Output != "" {
		cfg.Output.Format = runFlags.Output
	}
	if globalFlags.Quiet {
		cfg.Output.Progress = false
		cfg.Output.Quiet = true
	}

	if err := validateRunFlags(cfg); err != nil {
		return err
	}

	runCfg, err := buildRunConfig()
	if err != nil {
		return err
	}

	logger, err := newRunLogger(cfg, runCfg.LogDir, runCfg.RunID)
	if err != nil {
		return err
	}
	defer logger.Close()

	logger.Info(ctx, "starting curation run", logging.Fields{
		"run_id":      runCfg.RunID,
		"source":      runCfg.Source,
		"destination": runCfg.Destination,
		"discard":     runCfg.Discard,
		"mode":        runCfg.Mode,
		"strategy":    runCfg.MatchStrategy,
		"dry_run":     runCfg.DryRun,
	})
	if samePath(runCfg.Source, runCfg.Destination) {
		logger.Info(ctx, "recursive mode: source and destination are the same directory", nil)
	}

	var extractor metadata.Extractor
	switch cfg.Extractor.Kind {
	case "native":
		extractor = metadata.NewNative(logger)
	default:
		extractor = metadata.NewExifTool(cfg.Extractor.BatchSize, cfg.ExtractorTimeout(), logger)
	}

	progress := output.NewProgress(cfg.Output.Progress && cfg.Output.Format == "human")

	result, err := pipeline.New(runCfg, cfg, extractor, logger, progress).Run(ctx)
	if err != nil {
		return err
	}

	if !cfg.Output.Quiet || result.Errors > 0 {
		formatter := output.NewFormatter(cfg.Output.Format)
		if err := formatter.Summary(os.Stdout, result); err != nil {
			return err
		}
	}

	logger.Close()
	os.Exit(result.ExitCode())
	return nil
}

// loadConfig loads configuration from file or returns default
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// newRunLogger builds the per-run logger: console plus a log file named
// after the run id
func newRunLogger(cfg *config.Config, logDir, runID string) (logging.Logger, error) {
	consoleLevel := logging.ParseLevel(cfg.Logging.Level)
	if globalFlags.Verbose {
		consoleLevel = logging.DebugLevel
	}
	if globalFlags.Quiet {
		consoleLevel = logging.ErrorLevel
	}

	fileLogger, err := logging.NewFileLogger(logging.FileLoggerConfig{
		Path:   filepath.Join(logDir, runID+".log"),
		Format: logging.Format(cfg.Logging.Format),
		Level:  logging.DebugLevel,
	})
	if err != nil {
		return nil, err
	}

	return logging.NewMulti(logging.NewConsoleLogger(consoleLevel), fileLogger), nil
}

// samePath reports whether two paths refer to the same directory
func samePath(a, b string) bool {
	ra, err := filepath.EvalSymlinks(a)
	if err != nil {
		ra = a
	}
	rb, err := filepath.EvalSymlinks(b)
	if err != nil {
		rb = b
	}
	return ra == rb
}
