package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"

	"github.com/sdejongh/mediacurator/pkg/config"
	"github.com/sdejongh/mediacurator/pkg/logging"
)

// exifToolBinary is the external tool invoked for batch extraction
const exifToolBinary = "exiftool"

// ExifTool extracts capture dates by invoking exiftool in JSON batch
// mode. Each batch runs under a wall-clock ceiling; a batch that fails
// or times out degrades to "no date" for its files.
type ExifTool struct {
	batchSize int
	timeout   time.Duration
	logger    logging.Logger
}

// NewExifTool creates an exiftool-backed extractor
func NewExifTool(batchSize int, timeout time.Duration, logger logging.Logger) *ExifTool {
	return &ExifTool{batchSize: batchSize, timeout: timeout, logger: logger}
}

// Name returns the extractor identifier
func (e *ExifTool) Name() string {
	return "exiftool"
}

// CheckExifTool verifies that exiftool is installed and on PATH.
// Called during configuration validation so a missing tool fails fast.
func CheckExifTool() error {
	if _, err := exec.LookPath(exifToolBinary); err != nil {
		return fmt.Errorf("exiftool is not installed or not in PATH: %w", err)
	}
	return nil
}

// ExtractDates runs exiftool over the paths in batches and returns raw
// date strings keyed by path
func (e *ExifTool) ExtractDates(ctx context.Context, paths []string) map[string]string {
	result := make(map[string]string)

	for start := 0; start < len(paths); start += e.batchSize {
		end := start + e.batchSize
		if end > len(paths) {
			end = len(paths)
		}
		e.extractBatch(ctx, paths[start:end], result)
	}

	return result
}

// extractBatch runs one exiftool invocation and merges its dates into
// result
func (e *ExifTool) extractBatch(ctx context.Context, batch []string, result map[string]string) {
	batchCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	args := []string{"-json"}
	for _, field := range config.ExifDateFields {
		args = append(args, "-"+field)
	}
	args = append(args, "-d", "%Y:%m:%d %H:%M:%S")
	args = append(args, batch...)

	// exiftool exits non-zero when some files have no metadata but
	// still prints JSON for the rest; only an empty stdout is a failure
	out, err := exec.CommandContext(batchCtx, exifToolBinary, args...).Output()
	if len(out) == 0 {
		if err == nil {
			err = fmt.Errorf("no output")
		}
		e.logger.Warn(ctx, "exiftool batch failed", logging.Fields{"files": len(batch), "error": err.Error()})
		return
	}

	var items []map[string]interface{}
	if err := json.Unmarshal(out, &items); err != nil {
		e.logger.Warn(ctx, "exiftool output parse error", logging.Fields{"error": err.Error()})
		return
	}

	for _, item := range items {
		path, _ := item["SourceFile"].(string)
		if path == "" {
			continue
		}
		for _, field := range config.ExifDateFields {
			if val, _ := item[field].(string); val != "" && val != config.ZeroDate {
				result[path] = val
				break
			}
		}
	}
}
