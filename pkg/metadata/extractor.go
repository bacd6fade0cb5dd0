package metadata

import (
	"context"

	"github.com/sdejongh/mediacurator/pkg/models"
)

// Extractor is the external metadata boundary: given file paths, it
// returns a map of path -> raw date string ("YYYY:MM:DD HH:MM:SS").
// Paths with no usable date are absent from the map. Extraction
// failures degrade to "no date available"; they never abort the run.
type Extractor interface {
	// ExtractDates returns raw capture-date strings keyed by path
	ExtractDates(ctx context.Context, paths []string) map[string]string

	// Name returns the extractor identifier
	Name() string
}

// Enrich returns new file records with Year and Month populated from
// the extracted raw dates. Input records are not mutated.
func Enrich(records []models.FileRecord, dates map[string]string) []models.FileRecord {
	enriched := make([]models.FileRecord, 0, len(records))
	for _, record := range records {
		if year, month, ok := ParseDate(dates[record.Path]); ok {
			record = record.WithDate(year, month)
		}
		enriched = append(enriched, record)
	}
	return enriched
}

// Paths extracts the path of every record, preserving order
func Paths(records []models.FileRecord) []string {
	paths := make([]string, len(records))
	for i, r := range records {
		paths[i] = r.Path
	}
	return paths
}
