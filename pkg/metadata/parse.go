// Package metadata extracts capture dates for discovered media files,
// either through an exiftool batch subprocess or an in-process EXIF
// decoder.
package metadata

import (
	"strconv"
	"strings"

	"github.com/sdejongh/mediacurator/pkg/config"
)

// ParseDate parses a raw "YYYY:MM:DD HH:MM:SS" date string into a
// (year, month) pair. The month is zero-padded to two digits. Returns
// ok=false for empty strings, the all-zero sentinel, and implausible
// values.
func ParseDate(raw string) (year, month string, ok bool) {
	if raw == "" || raw == config.ZeroDate {
		return "", "", false
	}

	// A whitespace-only value yields no fields at all
	tokens := strings.Fields(raw)
	if len(tokens) == 0 {
		return "", "", false
	}

	parts := strings.Split(tokens[0], ":")
	if len(parts) < 2 {
		return "", "", false
	}

	year = parts[0]
	month = parts[1]
	if len(month) == 1 {
		month = "0" + month
	}

	y, err := strconv.Atoi(year)
	if err != nil || y < 1900 || y > 2100 {
		return "", "", false
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return "", "", false
	}

	return year, month, true
}
