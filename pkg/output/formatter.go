// Package output renders run summaries for humans and for automation,
// and provides the progress bars shown during long-running phases.
package output

import (
	"io"

	"github.com/sdejongh/mediacurator/pkg/models"
)

// Formatter defines the interface for run-summary output.
// Implementations include human-readable and JSON formatters.
type Formatter interface {
	// Summary writes the final run summary
	Summary(w io.Writer, result *models.RunResult) error

	// Name returns the formatter name
	Name() string
}

// NewFormatter returns the formatter for a format name, defaulting to
// human-readable output
func NewFormatter(format string) Formatter {
	if format == "json" {
		return NewJSONFormatter()
	}
	return NewHumanFormatter()
}
