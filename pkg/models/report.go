package models

// RunResult aggregates the counters of a completed curation run.
// It is derived state: everything except skips and errors is recomputable
// from the manifest's operation list.
type RunResult struct {
	// FilesScanned is the number of media files discovered in the source
	FilesScanned int

	// FilesStored is the number of new files placed under YYYY/MM
	FilesStored int

	// FilesDiscarded is the number of duplicates sent to the discard dir
	FilesDiscarded int

	// FilesSkipped is the number of files already in their correct location
	FilesSkipped int

	// FilesNoDate is the number of files placed under NoDate
	FilesNoDate int

	// Errors is the number of per-file failures during the run
	Errors int

	// DryRun reports whether the run made any filesystem changes
	DryRun bool

	// ManifestPath is where the JSON manifest was written
	ManifestPath string
}

// ExitCode returns the process exit status for this result: zero on
// success, non-zero when any per-file error occurred
func (r *RunResult) ExitCode() int {
	if r.Errors > 0 {
		return 1
	}
	return 0
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
