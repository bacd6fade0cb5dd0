package metadata

import (
	"context"
	"os"

	"github.com/rwcarlsen/goexif/exif"

	"github.com/sdejongh/mediacurator/pkg/logging"
)

// Native extracts capture dates in-process with an EXIF decoder, without
// requiring an external tool. It covers EXIF-bearing photo formats;
// files it cannot decode simply get no date.
type Native struct {
	logger logging.Logger
}

// NewNative creates the in-process extractor
func NewNative(logger logging.Logger) *Native {
	return &Native{logger: logger}
}

// Name returns the extractor identifier
func (n *Native) Name() string {
	return "native"
}

// ExtractDates decodes EXIF headers one file at a time and returns raw
// date strings keyed by path
func (n *Native) ExtractDates(ctx context.Context, paths []string) map[string]string {
	result := make(map[string]string)

	for _, path := range paths {
		select {
		case <-ctx.Done():
			return result
		default:
		}

		raw, err := n.extractOne(path)
		if err != nil {
			n.logger.Debug(ctx, "no EXIF date", logging.Fields{"path": path, "error": err.Error()})
			continue
		}
		if raw != "" {
			result[path] = raw
		}
	}

	return result
}

// extractOne reads the first usable EXIF date field of one file
func (n *Native) extractOne(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return "", err
	}

	for _, field := range []exif.FieldName{exif.DateTimeOriginal, exif.DateTimeDigitized, exif.DateTime} {
		tag, err := x.Get(field)
		if err != nil {
			continue
		}
		if val, err := tag.StringVal(); err == nil && val != "" {
			return val, nil
		}
	}

	return "", nil
}
