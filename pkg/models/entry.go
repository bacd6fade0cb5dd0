package models

// FileCategory classifies a discovered file by its extension
type FileCategory string

const (
	// CategoryPhoto is a still-image file (JPEG, RAW, HEIC, ...)
	CategoryPhoto FileCategory = "photo"
	// CategoryVideo is a video file
	CategoryVideo FileCategory = "video"
	// CategorySidecar is an auxiliary metadata file (XMP, THM, AAE)
	CategorySidecar FileCategory = "sidecar"
	// CategoryUnknown is anything the scanner does not recognize
	CategoryUnknown FileCategory = "unknown"
)

// FileRecord describes one discovered file.
// Records are treated as immutable: metadata enrichment produces new
// records instead of mutating existing ones.
type FileRecord struct {
	// Path is the absolute path of the file
	Path string

	// Category classifies the file
	Category FileCategory

	// Size in bytes
	Size int64

	// Extension is the lowercased extension, including the dot
	Extension string

	// Year is the four-digit capture year ("" when no usable date exists)
	Year string

	// Month is the zero-padded capture month ("" when no usable date exists)
	Month string

	// ParentMedia is the media file a sidecar belongs to ("" for media files)
	ParentMedia string
}

// HasDate reports whether the record carries a usable capture date
func (r FileRecord) HasDate() bool {
	return r.Year != "" && r.Month != ""
}

// WithDate returns a copy of the record with the capture date populated
func (r FileRecord) WithDate(year, month string) FileRecord {
	r.Year = year
	r.Month = month
	return r
}
