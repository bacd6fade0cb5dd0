package resolve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sdejongh/mediacurator/pkg/config"
	"github.com/sdejongh/mediacurator/pkg/models"
)

// newTestConfig returns a run configuration rooted in a temp directory
func newTestConfig(t *testing.T) (*config.RunConfig, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "mediacurator-resolve-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	cfg := &config.RunConfig{
		Source:        filepath.Join(tempDir, "source"),
		Destination:   filepath.Join(tempDir, "dest"),
		Discard:       filepath.Join(tempDir, "discard"),
		Mode:          "copy",
		MatchStrategy: "filename-size",
	}
	return cfg, func() { os.RemoveAll(tempDir) }
}

// TestResolve tests disposition assignment
func TestResolve(t *testing.T) {
	t.Run("DatedFileStored", func(t *testing.T) {
		cfg, cleanup := newTestConfig(t)
		defer cleanup()

		record := models.FileRecord{
			Path: filepath.Join(cfg.Source, "IMG_0001.jpg"),
			Size: 100,
			Year: "2023", Month: "07",
		}

		actions := NewResolver(cfg).Resolve([]models.MatchResult{{Source: record}})
		if len(actions) != 1 {
			t.Fatalf("Resolve() = %d actions, want 1", len(actions))
		}

		action := actions[0]
		if action.Action != models.ActionStore {
			t.Errorf("Action = %s, want %s", action.Action, models.ActionStore)
		}
		want := filepath.Join(cfg.Destination, "2023", "07", "IMG_0001.jpg")
		if action.DestinationPath != want {
			t.Errorf("DestinationPath = %s, want %s", action.DestinationPath, want)
		}
	})

	t.Run("UndatedFileToNoDate", func(t *testing.T) {
		cfg, cleanup := newTestConfig(t)
		defer cleanup()

		record := models.FileRecord{
			Path: filepath.Join(cfg.Source, "scan.jpg"),
			Size: 100,
		}

		actions := NewResolver(cfg).Resolve([]models.MatchResult{{Source: record}})
		action := actions[0]
		if action.Action != models.ActionNoDate {
			t.Errorf("Action = %s, want %s", action.Action, models.ActionNoDate)
		}
		want := filepath.Join(cfg.Destination, NoDateDirName, "scan.jpg")
		if action.DestinationPath != want {
			t.Errorf("DestinationPath = %s, want %s", action.DestinationPath, want)
		}
	})

	t.Run("DuplicateDiscarded", func(t *testing.T) {
		cfg, cleanup := newTestConfig(t)
		defer cleanup()

		existing := filepath.Join(cfg.Destination, "2020", "01", "IMG_0002.jpg")
		record := models.FileRecord{
			Path: filepath.Join(cfg.Source, "IMG_0002.jpg"),
			Size: 100,
			Year: "2020", Month: "01",
		}

		actions := NewResolver(cfg).Resolve([]models.MatchResult{{
			Source:          record,
			MatchedExisting: existing,
			IsDuplicate:     true,
		}})
		action := actions[0]
		if action.Action != models.ActionDiscardSource {
			t.Errorf("Action = %s, want %s", action.Action, models.ActionDiscardSource)
		}
		want := filepath.Join(cfg.Discard, "IMG_0002.jpg")
		if action.DestinationPath != want {
			t.Errorf("DestinationPath = %s, want %s", action.DestinationPath, want)
		}
		if action.MatchedExisting != existing {
			t.Errorf("MatchedExisting = %s, want %s", action.MatchedExisting, existing)
		}
	})

	t.Run("InPlaceFileSkipped", func(t *testing.T) {
		cfg, cleanup := newTestConfig(t)
		defer cleanup()

		// Recursive layout: the file already sits at its computed target
		record := models.FileRecord{
			Path: filepath.Join(cfg.Destination, "2023", "07", "IMG_0003.jpg"),
			Size: 100,
			Year: "2023", Month: "07",
		}

		actions := NewResolver(cfg).Resolve([]models.MatchResult{{Source: record}})
		if actions[0].Action != models.ActionSkip {
			t.Errorf("Action = %s, want %s", actions[0].Action, models.ActionSkip)
		}
	})

	t.Run("DuplicateWinsOverInPlaceSkip", func(t *testing.T) {
		cfg, cleanup := newTestConfig(t)
		defer cleanup()

		// A file that is already in place and also matches an archive
		// entry is discarded, never skipped
		path := filepath.Join(cfg.Destination, "2023", "07", "IMG_0004.jpg")
		record := models.FileRecord{
			Path: path,
			Size: 100,
			Year: "2023", Month: "07",
		}

		actions := NewResolver(cfg).Resolve([]models.MatchResult{{
			Source:          record,
			MatchedExisting: filepath.Join(cfg.Destination, "2019", "12", "IMG_0004.jpg"),
			IsDuplicate:     true,
		}})
		if actions[0].Action != models.ActionDiscardSource {
			t.Errorf("Action = %s, want %s (duplicate takes precedence over in-place skip)", actions[0].Action, models.ActionDiscardSource)
		}
	})

	t.Run("OrderPreserved", func(t *testing.T) {
		cfg, cleanup := newTestConfig(t)
		defer cleanup()

		results := []models.MatchResult{
			{Source: models.FileRecord{Path: filepath.Join(cfg.Source, "a.jpg"), Year: "2023", Month: "01"}},
			{Source: models.FileRecord{Path: filepath.Join(cfg.Source, "b.jpg")}},
			{Source: models.FileRecord{Path: filepath.Join(cfg.Source, "c.jpg"), Year: "2024", Month: "02"}},
		}

		actions := NewResolver(cfg).Resolve(results)
		if len(actions) != 3 {
			t.Fatalf("Resolve() = %d actions, want 3", len(actions))
		}
		for i := range results {
			if actions[i].Source.Path != results[i].Source.Path {
				t.Errorf("action %d is for %s, want %s", i, actions[i].Source.Path, results[i].Source.Path)
			}
		}
	})
}
