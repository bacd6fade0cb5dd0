package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sdejongh/mediacurator/pkg/config"
	"github.com/sdejongh/mediacurator/pkg/models"
)

// Writer accumulates operation records during a run and serializes the
// manifest document at the end. It is the exclusive owner of the
// operation list; records are appended in execution order by a single
// logical writer.
type Writer struct {
	cfg        *config.RunConfig
	operations []Operation
}

// NewWriter creates a manifest writer for one run
func NewWriter(cfg *config.RunConfig) *Writer {
	return &Writer{cfg: cfg, operations: []Operation{}}
}

// Record appends a completed file operation
func (w *Writer) Record(op Operation) {
	if op.Sidecars == nil {
		op.Sidecars = []Sidecar{}
	}
	w.operations = append(w.operations, op)
}

// Operations returns the records appended so far, in execution order
func (w *Writer) Operations() []Operation {
	return w.operations
}

// Finalize writes the manifest as one whole JSON document and returns
// its path. The document is written exactly once, so a crash mid-run
// loses only the in-memory tail and never corrupts a partial file.
func (w *Writer) Finalize(result *models.RunResult) (string, error) {
	doc := Document{
		SchemaVersion: SchemaVersion,
		RunID:         w.cfg.RunID,
		Timestamp:     time.Now().Format(time.RFC3339),
		Config: ConfigSnapshot{
			Source:        w.cfg.Source,
			Destination:   w.cfg.Destination,
			Discard:       w.cfg.Discard,
			Mode:          w.cfg.Mode,
			MatchStrategy: w.cfg.MatchStrategy,
			DryRun:        w.cfg.DryRun,
		},
		Operations: w.operations,
		Summary: Summary{
			FilesScanned:   result.FilesScanned,
			FilesStored:    result.FilesStored,
			FilesDiscarded: result.FilesDiscarded,
			FilesSkipped:   result.FilesSkipped,
			FilesNoDate:    result.FilesNoDate,
			Errors:         result.Errors,
		},
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal manifest: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(w.cfg.LogDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(w.cfg.LogDir, w.cfg.RunID+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write manifest: %w", err)
	}

	return path, nil
}
