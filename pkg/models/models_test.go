package models

import "testing"

// TestFileCategoryConstants verifies that category constants are properly defined
func TestFileCategoryConstants(t *testing.T) {
	tests := []struct {
		category FileCategory
		expected string
	}{
		{CategoryPhoto, "photo"},
		{CategoryVideo, "video"},
		{CategorySidecar, "sidecar"},
		{CategoryUnknown, "unknown"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			if string(tt.category) != tt.expected {
				t.Errorf("FileCategory %s has wrong value: got %s, want %s", tt.category, string(tt.category), tt.expected)
			}
		})
	}
}

// TestActionConstants verifies that action constants are properly defined
func TestActionConstants(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionStore, "store"},
		{ActionDiscardSource, "discard_source"},
		{ActionSkip, "skip"},
		{ActionNoDate, "no_date"},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			if string(tt.action) != tt.expected {
				t.Errorf("Action %s has wrong value: got %s, want %s", tt.action, string(tt.action), tt.expected)
			}
		})
	}
}

// TestFileRecordDate verifies HasDate and WithDate behavior
func TestFileRecordDate(t *testing.T) {
	record := FileRecord{
		Path:      "/photos/IMG_0001.jpg",
		Category:  CategoryPhoto,
		Size:      1024,
		Extension: ".jpg",
	}

	t.Run("NoDate", func(t *testing.T) {
		if record.HasDate() {
			t.Error("HasDate() = true for record without date")
		}
	})

	t.Run("WithDate", func(t *testing.T) {
		dated := record.WithDate("2023", "07")
		if !dated.HasDate() {
			t.Error("HasDate() = false after WithDate")
		}
		if dated.Year != "2023" || dated.Month != "07" {
			t.Errorf("WithDate produced %s/%s, want 2023/07", dated.Year, dated.Month)
		}
	})

	t.Run("OriginalUnchanged", func(t *testing.T) {
		_ = record.WithDate("2023", "07")
		if record.Year != "" || record.Month != "" {
			t.Error("WithDate mutated the original record")
		}
	})

	t.Run("PartialDate", func(t *testing.T) {
		partial := record
		partial.Year = "2023"
		if partial.HasDate() {
			t.Error("HasDate() = true with year but no month")
		}
	})
}

// TestRunResultExitCode verifies exit code derivation
func TestRunResultExitCode(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		result := &RunResult{FilesScanned: 10, FilesStored: 10}
		if code := result.ExitCode(); code != 0 {
			t.Errorf("ExitCode() = %d, want 0", code)
		}
	})

	t.Run("WithErrors", func(t *testing.T) {
		result := &RunResult{FilesScanned: 10, FilesStored: 8, Errors: 2}
		if code := result.ExitCode(); code != 1 {
			t.Errorf("ExitCode() = %d, want 1", code)
		}
	})
}

// TestValidationError verifies the error message format
func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "mode", Message: "must be 'copy' or 'move'"}
	want := "mode: must be 'copy' or 'move'"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
