package fsops

import (
	"os"
	"path/filepath"
)

// PruneEmptyDirs removes empty directories starting at dir and walking
// upward, stopping at the first non-empty ancestor or when reaching stop
// (stop itself is never removed). Races with concurrent writers and
// permission errors end the walk silently; pruning is best-effort.
func PruneEmptyDirs(dir, stop string) {
	stop = filepath.Clean(stop)
	dir = filepath.Clean(dir)

	for dir != stop && dir != filepath.Dir(dir) {
		entries, err := os.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			return
		}
		if err := os.Remove(dir); err != nil {
			return
		}
		dir = filepath.Dir(dir)
	}
}
