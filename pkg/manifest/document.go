// Package manifest defines the JSON operations manifest: the single
// durable record of a curation run and the sole input to undo.
package manifest

// SchemaVersion marks the manifest document format understood by this
// version of the tool
const SchemaVersion = "1.0"

// Document is the whole-run manifest written once at the end of a run.
// The absence of an operation record for a file means that file was
// never transferred.
type Document struct {
	SchemaVersion string         `json:"schema_version"`
	RunID         string         `json:"run_id"`
	Timestamp     string         `json:"timestamp"`
	Config        ConfigSnapshot `json:"config"`
	Operations    []Operation    `json:"operations"`
	Summary       Summary        `json:"summary"`
}

// ConfigSnapshot preserves the run configuration the manifest was
// produced under; undo needs the mode and dry-run flag
type ConfigSnapshot struct {
	Source        string `json:"source"`
	Destination   string `json:"destination"`
	Discard       string `json:"discard"`
	Mode          string `json:"mode"`
	MatchStrategy string `json:"match_strategy"`
	DryRun        bool   `json:"dry_run"`
}

// Operation records one primary file transfer with its embedded sidecar
// transfers. Appended once, never mutated.
type Operation struct {
	// Action is the disposition: "store", "discard_source" or "no_date"
	Action string `json:"action"`

	// Source is the absolute path the file came from
	Source string `json:"source"`

	// Destination is the absolute final path, after collision resolution
	Destination string `json:"destination"`

	// SourceSize is the source byte size, checked again before undo.
	// A manifest without the key carries nil: undo then restores without
	// an integrity check rather than expecting a zero-byte file.
	SourceSize *int64 `json:"source_size,omitempty"`

	// MatchedExisting is the archive path a duplicate matched, if any
	MatchedExisting string `json:"matched_existing,omitempty"`

	// Sidecars are the sidecar transfers applied after the primary
	Sidecars []Sidecar `json:"sidecars"`
}

// Sidecar is one sidecar transfer embedded in a primary operation
type Sidecar struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

// Summary carries the run counters into the manifest
type Summary struct {
	FilesScanned   int `json:"files_scanned"`
	FilesStored    int `json:"files_stored"`
	FilesDiscarded int `json:"files_discarded"`
	FilesSkipped   int `json:"files_skipped"`
	FilesNoDate    int `json:"files_no_date"`
	Errors         int `json:"errors"`
}
