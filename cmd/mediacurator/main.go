package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sdejongh/mediacurator/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "mediacurator",
		Short: "Photo and video archive curation utility",
		Long: `mediacurator curates photo and video archives. It scans a source
directory for media files, deduplicates them against an existing
archive, organizes new files into a date-based YYYY/MM layout, and
records every operation in a replayable JSON manifest that the undo
command can reverse.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", cli.Version, cli.Commit, cli.BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	cli.AddGlobalFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(cli.NewRunCommand())
	rootCmd.AddCommand(cli.NewUndoCommand())
	rootCmd.AddCommand(cli.NewConfigCommand())
	rootCmd.AddCommand(cli.NewVersionCommand())

	return rootCmd.Execute()
}
