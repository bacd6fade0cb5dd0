package models

// Action is the decided disposition for one media file
type Action string

const (
	// ActionStore places a new file under destination/YYYY/MM
	ActionStore Action = "store"
	// ActionDiscardSource sends a duplicate source file to the discard
	// directory; the archive copy wins
	ActionDiscardSource Action = "discard_source"
	// ActionSkip leaves a file alone because it is already in its correct
	// location (only possible when source and destination trees overlap)
	ActionSkip Action = "skip"
	// ActionNoDate places a file without a usable capture date under
	// destination/NoDate
	ActionNoDate Action = "no_date"
)

// MatchResult pairs a source file with the outcome of duplicate detection
type MatchResult struct {
	// Source is the discovered file that was matched
	Source FileRecord

	// MatchedExisting is the archive path the file matched ("" = novel)
	MatchedExisting string

	// IsDuplicate reports whether the file already exists in the archive
	IsDuplicate bool
}

// FileAction is a planned operation for one media file and its sidecars
type FileAction struct {
	// Source is the file the action applies to
	Source FileRecord

	// Action is the disposition assigned by the resolver
	Action Action

	// DestinationPath is the target path before collision resolution
	DestinationPath string

	// Sidecars are the files that follow the primary wherever it goes
	Sidecars []FileRecord

	// MatchedExisting is the archive path a duplicate matched ("" otherwise)
	MatchedExisting string

	// Reason is a human-readable explanation for logs and reports
	Reason string
}
