package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sdejongh/mediacurator/pkg/models"
)

// JSONFormatter formats the run summary as JSON for automation and
// scripting
type JSONFormatter struct{}

// jsonSummary is the wire shape of the JSON summary output
type jsonSummary struct {
	FilesScanned   int    `json:"files_scanned"`
	FilesStored    int    `json:"files_stored"`
	FilesDiscarded int    `json:"files_discarded"`
	FilesSkipped   int    `json:"files_skipped"`
	FilesNoDate    int    `json:"files_no_date"`
	Errors         int    `json:"errors"`
	DryRun         bool   `json:"dry_run"`
	ManifestPath   string `json:"manifest_path,omitempty"`
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Summary writes the final run summary as one JSON document
func (f *JSONFormatter) Summary(w io.Writer, result *models.RunResult) error {
	data, err := json.MarshalIndent(jsonSummary{
		FilesScanned:   result.FilesScanned,
		FilesStored:    result.FilesStored,
		FilesDiscarded: result.FilesDiscarded,
		FilesSkipped:   result.FilesSkipped,
		FilesNoDate:    result.FilesNoDate,
		Errors:         result.Errors,
		DryRun:         result.DryRun,
		ManifestPath:   result.ManifestPath,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}
