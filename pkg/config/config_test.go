package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sdejongh/mediacurator/pkg/models"
)

// TestDefault verifies the default configuration is valid
func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default() configuration is invalid: %v", err)
	}

	if cfg.Extractor.Kind != "exiftool" {
		t.Errorf("Extractor.Kind = %s, want exiftool", cfg.Extractor.Kind)
	}
	if cfg.Extractor.BatchSize != 500 {
		t.Errorf("Extractor.BatchSize = %d, want 500", cfg.Extractor.BatchSize)
	}
	if cfg.Extractor.TimeoutSeconds != 300 {
		t.Errorf("Extractor.TimeoutSeconds = %d, want 300", cfg.Extractor.TimeoutSeconds)
	}
	if cfg.Transfer.MaxCollisionAttempts != 9999 {
		t.Errorf("Transfer.MaxCollisionAttempts = %d, want 9999", cfg.Transfer.MaxCollisionAttempts)
	}
}

// TestValidate verifies each validation rule rejects bad values
func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"BadExtractorKind", func(c *Config) { c.Extractor.Kind = "magic" }, "extractor.kind"},
		{"ZeroBatchSize", func(c *Config) { c.Extractor.BatchSize = 0 }, "extractor.batch_size"},
		{"ZeroTimeout", func(c *Config) { c.Extractor.TimeoutSeconds = 0 }, "extractor.timeout_seconds"},
		{"TinyBuffer", func(c *Config) { c.Transfer.BufferSize = 100 }, "transfer.buffer_size"},
		{"ZeroCollisionAttempts", func(c *Config) { c.Transfer.MaxCollisionAttempts = 0 }, "transfer.max_collision_attempts"},
		{"BadOutputFormat", func(c *Config) { c.Output.Format = "xml" }, "output.format"},
		{"BadLogFormat", func(c *Config) { c.Logging.Format = "csv" }, "logging.format"},
		{"BadLogLevel", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			verr, ok := err.(*models.ValidationError)
			if !ok {
				t.Fatalf("Validate() returned %T, want *models.ValidationError", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Field = %s, want %s", verr.Field, tt.field)
			}
		})
	}
}

// TestExtractorTimeout verifies the duration conversion
func TestExtractorTimeout(t *testing.T) {
	cfg := Default()
	cfg.Extractor.TimeoutSeconds = 42
	if d := cfg.ExtractorTimeout(); d != 42*time.Second {
		t.Errorf("ExtractorTimeout() = %v, want 42s", d)
	}
}

// TestCategorize verifies extension classification
func TestCategorize(t *testing.T) {
	tests := []struct {
		ext      string
		expected models.FileCategory
	}{
		{".jpg", models.CategoryPhoto},
		{".cr2", models.CategoryPhoto},
		{".heic", models.CategoryPhoto},
		{".mp4", models.CategoryVideo},
		{".mov", models.CategoryVideo},
		{".xmp", models.CategorySidecar},
		{".aae", models.CategorySidecar},
		{".txt", models.CategoryUnknown},
		{".pdf", models.CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			if got := Categorize(tt.ext); got != tt.expected {
				t.Errorf("Categorize(%s) = %s, want %s", tt.ext, got, tt.expected)
			}
		})
	}
}

// TestIsMediaExtension verifies media extension detection
func TestIsMediaExtension(t *testing.T) {
	if !IsMediaExtension(".jpg") {
		t.Error("IsMediaExtension(.jpg) = false, want true")
	}
	if !IsMediaExtension(".mkv") {
		t.Error("IsMediaExtension(.mkv) = false, want true")
	}
	if IsMediaExtension(".xmp") {
		t.Error("IsMediaExtension(.xmp) = true, want false (sidecar)")
	}
	if IsMediaExtension(".txt") {
		t.Error("IsMediaExtension(.txt) = true, want false")
	}
}

// TestRunConfigValidate verifies the per-run configuration rules
func TestRunConfigValidate(t *testing.T) {
	valid := func() *RunConfig {
		return &RunConfig{
			RunID:         "mediacurator_20240101_120000_abcd1234",
			Source:        "/photos/incoming",
			Destination:   "/photos/archive",
			Discard:       "/photos/duplicates",
			Mode:          "copy",
			MatchStrategy: "filename-size",
			LogDir:        "/photos/logs",
		}
	}

	t.Run("Valid", func(t *testing.T) {
		if err := valid().Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	t.Run("MissingSource", func(t *testing.T) {
		cfg := valid()
		cfg.Source = ""
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() = nil, want error for missing source")
		}
	})

	t.Run("MissingDestination", func(t *testing.T) {
		cfg := valid()
		cfg.Destination = ""
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() = nil, want error for missing destination")
		}
	})

	t.Run("MissingDiscard", func(t *testing.T) {
		cfg := valid()
		cfg.Discard = ""
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() = nil, want error for missing discard")
		}
	})

	t.Run("BadMode", func(t *testing.T) {
		cfg := valid()
		cfg.Mode = "sync"
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() = nil, want error for invalid mode")
		}
	})
}

// TestYAMLRoundTrip verifies configuration file save and load
func TestYAMLRoundTrip(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "mediacurator-config-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "config.yaml")

	cfg := Default()
	cfg.Extractor.Kind = "native"
	cfg.Transfer.BufferSize = 32768
	cfg.Output.Format = "json"

	if err := SaveToFile(cfg, path); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if loaded.Extractor.Kind != "native" {
		t.Errorf("Extractor.Kind = %s, want native", loaded.Extractor.Kind)
	}
	if loaded.Transfer.BufferSize != 32768 {
		t.Errorf("Transfer.BufferSize = %d, want 32768", loaded.Transfer.BufferSize)
	}
	if loaded.Output.Format != "json" {
		t.Errorf("Output.Format = %s, want json", loaded.Output.Format)
	}
}

// TestLoadFromFileMissing verifies that a missing file is an error
func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/config.yaml")
	if err == nil {
		t.Error("LoadFromFile() = nil, want error for missing file")
	}
}
