package config

import (
	"time"

	"github.com/sdejongh/mediacurator/pkg/models"
)

// Extension sets recognized by the scanner. Keys are lowercased
// extensions including the dot.
var (
	// PhotoExtensions are still-image formats, including common RAW types
	PhotoExtensions = map[string]bool{
		".jpg": true, ".jpeg": true, ".cr2": true, ".cr3": true,
		".heic": true, ".png": true, ".tiff": true, ".tif": true,
		".gif": true, ".bmp": true, ".nef": true, ".arw": true,
		".dng": true, ".orf": true, ".rw2": true,
	}

	// VideoExtensions are supported video formats
	VideoExtensions = map[string]bool{
		".mov": true, ".mp4": true, ".avi": true, ".mpeg": true,
		".mpg": true, ".m4v": true, ".mkv": true, ".wmv": true,
		".3gp": true,
	}

	// SidecarExtensions are auxiliary metadata files that travel with a
	// media file of the same name
	SidecarExtensions = map[string]bool{
		".xmp": true, ".thm": true, ".aae": true,
	}

	// SkipFilenames are junk files ignored during traversal (lowercased)
	SkipFilenames = map[string]bool{
		"desktop.ini": true, "thumbs.db": true, ".ds_store": true,
		".picasa.ini": true, "zbthumbnail.info": true,
	}

	// SkipDirnames are directory names pruned during traversal (lowercased)
	SkipDirnames = map[string]bool{
		".picasaoriginals": true,
	}
)

// ExifDateFields are the metadata fields consulted for a capture date,
// in priority order
var ExifDateFields = []string{
	"DateTimeOriginal",
	"CreateDate",
	"MediaCreateDate",
}

// ZeroDate is the all-zero sentinel some cameras write instead of
// omitting the date field; it must be treated as absent
const ZeroDate = "0000:00:00 00:00:00"

// IsMediaExtension reports whether ext is a photo or video extension
func IsMediaExtension(ext string) bool {
	return PhotoExtensions[ext] || VideoExtensions[ext]
}

// Categorize maps a lowercased extension to a file category
func Categorize(ext string) models.FileCategory {
	switch {
	case PhotoExtensions[ext]:
		return models.CategoryPhoto
	case VideoExtensions[ext]:
		return models.CategoryVideo
	case SidecarExtensions[ext]:
		return models.CategorySidecar
	default:
		return models.CategoryUnknown
	}
}

// Config represents the application configuration
type Config struct {
	Extractor ExtractorConfig `yaml:"extractor"`
	Transfer  TransferConfig  `yaml:"transfer"`
	Output    OutputConfig    `yaml:"output"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ExtractorConfig holds metadata-extraction settings
type ExtractorConfig struct {
	// Kind selects the extractor: "exiftool" (batch subprocess) or
	// "native" (in-process EXIF decoding)
	Kind string `yaml:"kind"`

	// BatchSize is the number of files per exiftool invocation
	BatchSize int `yaml:"batch_size"`

	// TimeoutSeconds is the wall-clock ceiling per exiftool batch
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// TransferConfig holds file-transfer settings
type TransferConfig struct {
	// BufferSize is the copy/hash buffer size in bytes
	BufferSize int `yaml:"buffer_size"`

	// MaxCollisionAttempts bounds the _NNN rename search; exhausting it
	// aborts the run since it signals a pathologically cluttered target
	MaxCollisionAttempts int `yaml:"max_collision_attempts"`
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format"`   // "human" or "json"
	Progress bool   `yaml:"progress"` // Show progress bars
	Quiet    bool   `yaml:"quiet"`    // Suppress non-error output
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Format string `yaml:"format"` // "json" or "text"
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Extractor: ExtractorConfig{
			Kind:           "exiftool",
			BatchSize:      500,
			TimeoutSeconds: 300,
		},
		Transfer: TransferConfig{
			BufferSize:           65536,
			MaxCollisionAttempts: 9999,
		},
		Output: OutputConfig{
			Format:   "human",
			Progress: true,
			Quiet:    false,
		},
		Logging: LoggingConfig{
			Format: "text",
			Level:  "info",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validKinds := map[string]bool{"exiftool": true, "native": true}
	if !validKinds[c.Extractor.Kind] {
		return &models.ValidationError{
			Field:   "extractor.kind",
			Message: "must be 'exiftool' or 'native'",
		}
	}

	if c.Extractor.BatchSize < 1 {
		return &models.ValidationError{
			Field:   "extractor.batch_size",
			Message: "must be at least 1",
		}
	}

	if c.Extractor.TimeoutSeconds < 1 {
		return &models.ValidationError{
			Field:   "extractor.timeout_seconds",
			Message: "must be at least 1",
		}
	}

	if c.Transfer.BufferSize < 1024 {
		return &models.ValidationError{
			Field:   "transfer.buffer_size",
			Message: "must be at least 1024 bytes",
		}
	}

	if c.Transfer.MaxCollisionAttempts < 1 {
		return &models.ValidationError{
			Field:   "transfer.max_collision_attempts",
			Message: "must be at least 1",
		}
	}

	validFormats := map[string]bool{"human": true, "json": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'human' or 'json'",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	return nil
}

// ExtractorTimeout returns the per-batch timeout as a duration
func (c *Config) ExtractorTimeout() time.Duration {
	return time.Duration(c.Extractor.TimeoutSeconds) * time.Second
}

// RunConfig is the immutable per-run configuration assembled from CLI
// arguments. All paths are absolute.
type RunConfig struct {
	// RunID identifies this run; it names the manifest and log files
	RunID string

	// Source is the directory scanned for new media
	Source string

	// Destination is the archive root (files organized into YYYY/MM)
	Destination string

	// Discard receives duplicate source files
	Discard string

	// Mode is "copy" or "move"
	Mode string

	// MatchStrategy selects the duplicate-detection strategy by name
	MatchStrategy string

	// DryRun previews every action without touching the filesystem
	DryRun bool

	// LogDir receives the manifest and per-run log file
	LogDir string
}

// Validate checks the per-run configuration
func (rc *RunConfig) Validate() error {
	if rc.Source == "" {
		return &models.ValidationError{Field: "source", Message: "source directory is required"}
	}
	if rc.Destination == "" {
		return &models.ValidationError{Field: "destination", Message: "destination directory is required"}
	}
	if rc.Discard == "" {
		return &models.ValidationError{Field: "discard", Message: "discard directory is required"}
	}
	if rc.Mode != "copy" && rc.Mode != "move" {
		return &models.ValidationError{Field: "mode", Message: "must be 'copy' or 'move'"}
	}
	return nil
}
