package triage

import (
	"image"

	"shortlist/internal/photo"
	"shortlist/internal/status"
)

// PhotoView is one photo's observable state.
type PhotoView struct {
	ID           photo.ID
	Name         string
	Status       status.Label
	SizeBytes    int64
	HasThumbnail bool
	DecodeFailed bool
}

// ArenaView is one round's observable state, ids resolved to display names by
// the caller through the snapshot's photo list.
type ArenaView struct {
	Champion  photo.ID
	Displaced []photo.ID
	Archived  bool
}

// Snapshot is a read-only view of the session for rendering. Raster handles
// reference the live decoded images; everything else is copied.
type Snapshot struct {
	Folder      string
	Photos      []PhotoView
	Cursor      int
	Arenas      []ArenaView
	CompareMode bool

	CursorPreview  image.Image
	ComparePreview image.Image

	Stage    string
	Progress float64
	LastErr  error
}

// Snapshot captures the current observable state atomically with respect to
// engine operations.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	lib := s.engine.Library()
	snap := Snapshot{
		Folder:      s.folder,
		Cursor:      s.engine.Cursor(),
		CompareMode: s.engine.CompareMode(),
		Stage:       s.stage,
		Progress:    s.progress,
		LastErr:     s.lastErr,
	}
	if snap.LastErr == nil {
		snap.LastErr = s.engine.LastTagError()
	}

	snap.Photos = make([]PhotoView, 0, lib.Len())
	for _, rec := range lib.All() {
		snap.Photos = append(snap.Photos, PhotoView{
			ID:           rec.ID,
			Name:         rec.DisplayName,
			Status:       rec.Status,
			SizeBytes:    rec.SizeBytes,
			HasThumbnail: rec.Thumbnail != nil,
			DecodeFailed: rec.DecodeErr != nil,
		})
	}

	for _, arena := range s.engine.Arenas() {
		snap.Arenas = append(snap.Arenas, ArenaView{
			Champion:  arena.Champion,
			Displaced: append([]photo.ID(nil), arena.Displaced...),
			Archived:  arena.Archived,
		})
	}

	if current := s.engine.Current(); current != nil {
		snap.CursorPreview = current.Preview
	}
	if s.engine.CompareMode() {
		if champ := s.engine.Champion(); champ != nil {
			snap.ComparePreview = champ.Preview
		}
	}
	return snap
}

// Name resolves a photo id to its display name, or "" when unknown.
func (snap Snapshot) Name(id photo.ID) string {
	for _, p := range snap.Photos {
		if p.ID == id {
			return p.Name
		}
	}
	return ""
}
