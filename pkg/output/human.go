package output

import (
	"fmt"
	"io"

	"github.com/sdejongh/mediacurator/pkg/models"
)

// HumanFormatter formats the run summary in human-readable form
type HumanFormatter struct{}

// NewHumanFormatter creates a new human-readable formatter
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{}
}

// Summary writes the final run summary
func (f *HumanFormatter) Summary(w io.Writer, result *models.RunResult) error {
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Summary:\n")
	fmt.Fprintf(w, "  Scanned:   %d\n", result.FilesScanned)
	fmt.Fprintf(w, "  Stored:    %d\n", result.FilesStored)
	fmt.Fprintf(w, "  Discarded: %d\n", result.FilesDiscarded)
	fmt.Fprintf(w, "  Skipped:   %d\n", result.FilesSkipped)
	fmt.Fprintf(w, "  No date:   %d\n", result.FilesNoDate)
	fmt.Fprintf(w, "  Errors:    %d\n", result.Errors)
	if result.DryRun {
		fmt.Fprintf(w, "  (dry-run -- no files were changed)\n")
	}
	if result.ManifestPath != "" {
		fmt.Fprintf(w, "  Manifest:  %s\n", result.ManifestPath)
	}
	return nil
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}
