package undo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sdejongh/mediacurator/pkg/manifest"
)

// ResultDocument is the JSON record of what an undo run did, written
// next to the original manifest's log directory
type ResultDocument struct {
	SchemaVersion    string            `json:"schema_version"`
	Type             string            `json:"type"`
	RunID            string            `json:"run_id"`
	Timestamp        string            `json:"timestamp"`
	OriginalManifest string            `json:"original_manifest"`
	OriginalRunID    string            `json:"original_run_id"`
	Mode             string            `json:"mode"`
	OperationsUndone []UndoneOperation `json:"operations_undone"`
	Errors           int               `json:"errors"`
}

// writeResult serializes the undo-result document and returns its path
func (e *Engine) writeResult(manifestPath string, doc *manifest.Document, result *Result) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("mediacurator_%s_undo", now.Format("20060102_150405"))

	undone := result.Undone
	if undone == nil {
		undone = []UndoneOperation{}
	}

	out := ResultDocument{
		SchemaVersion:    manifest.SchemaVersion,
		Type:             "undo",
		RunID:            runID,
		Timestamp:        now.Format(time.RFC3339),
		OriginalManifest: manifestPath,
		OriginalRunID:    doc.RunID,
		Mode:             doc.Config.Mode,
		OperationsUndone: undone,
		Errors:           result.Errors,
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal undo result: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(e.logDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(e.logDir, runID+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write undo result: %w", err)
	}

	return path, nil
}
