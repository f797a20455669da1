package photo

import (
	"image"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"shortlist/internal/status"
)

// ID uniquely identifies a Record independent of its file path. Two files may
// in principle share a display name; the ID never collides.
type ID string

// Record is one image known to the session: its identity, triage status, and
// cached rasters. Raster fields are populated by the acquisition pipeline and
// may be nil until the corresponding decode completes.
type Record struct {
	ID          ID
	SourcePath  string
	DisplayName string

	Status status.Label

	Thumbnail image.Image
	Preview   image.Image

	// DecodeErr records the most recent decode failure for this photo, if
	// any. A failed decode leaves the raster fields untouched.
	DecodeErr error

	// SizeBytes is captured at scan time for display purposes.
	SizeBytes int64
}

// NewRecord builds a Record for a source file with a fresh ID and the given
// initial status. The display name is the NFC-normalized base name, so files
// written by macOS (NFD) sort and render identically to everything else.
func NewRecord(sourcePath string, size int64, initial status.Label) *Record {
	return &Record{
		ID:          ID(uuid.NewString()),
		SourcePath:  sourcePath,
		DisplayName: norm.NFC.String(filepath.Base(sourcePath)),
		Status:      initial,
		SizeBytes:   size,
	}
}
