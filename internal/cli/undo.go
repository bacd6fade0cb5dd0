package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sdejongh/mediacurator/pkg/logging"
	"github.com/sdejongh/mediacurator/pkg/undo"
)

// UndoFlags holds undo command flags
type UndoFlags struct {
	DryRun bool
	LogDir string
}

var undoFlags UndoFlags

// NewUndoCommand creates the undo command
func NewUndoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo <manifest>",
		Short: "Reverse the operations of a previous run",
		Long: `Reverse all file operations recorded in the JSON manifest of a
previous run. Copy-mode runs delete the copies; move-mode runs move
files back to their original locations. Undo is safely re-runnable:
files that are already gone count as undone.`,
		Args: cobra.ExactArgs(1),
		RunE: runUndo,
	}

	cmd.Flags().BoolVar(&undoFlags.DryRun, "dry-run", false, "preview undo actions without making changes")
	cmd.Flags().StringVar(&undoFlags.LogDir, "log-dir", "", "directory for the undo result file (default: manifest directory)")

	return cmd
}

func runUndo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	manifestPath, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve manifest path: %w", err)
	}

	logDir := undoFlags.LogDir
	if logDir == "" {
		logDir = filepath.Dir(manifestPath)
	}
	logDir, err = filepath.Abs(logDir)
	if err != nil {
		return fmt.Errorf("failed to resolve log directory: %w", err)
	}

	consoleLevel := logging.InfoLevel
	if globalFlags.Verbose {
		consoleLevel = logging.DebugLevel
	}
	if globalFlags.Quiet {
		consoleLevel = logging.ErrorLevel
	}
	logger := logging.NewConsoleLogger(consoleLevel)

	engine := undo.NewEngine(logger, undoFlags.DryRun, logDir)
	result, err := engine.Run(ctx, manifestPath)
	if err != nil {
		return err
	}

	os.Exit(result.ExitCode())
	return nil
}
