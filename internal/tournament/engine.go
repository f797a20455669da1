package tournament

import (
	"log/slog"

	"shortlist/internal/logging"
	"shortlist/internal/photo"
	"shortlist/internal/status"
	"shortlist/internal/tags"
)

// Engine drives the elimination rounds for one loaded folder.
//
// Callers must serialize all method calls; see the package doc.
type Engine struct {
	lib     *photo.Library
	cursor  int
	arenas  []*photo.Arena
	compare bool

	store  tags.Store
	logger *slog.Logger
	fetch  FetchFunc

	lastTagErr error
}

// New builds an engine over an empty library. Load replaces the collection
// once a folder scan completes. A nil fetch sink is allowed.
func New(store tags.Store, logger *slog.Logger, fetch FetchFunc) *Engine {
	if store == nil {
		store = tags.Disabled{}
	}
	return &Engine{
		lib:    photo.NewLibrary(nil),
		arenas: []*photo.Arena{photo.NewArena()},
		store:  store,
		logger: logging.NewComponentLogger(logger, "engine"),
		fetch:  fetch,
	}
}

// Load replaces the photo collection and resets all rounds. The cursor
// returns to the first photo and a single fresh arena becomes active.
func (e *Engine) Load(lib *photo.Library) {
	if lib == nil {
		lib = photo.NewLibrary(nil)
	}
	e.lib = lib
	e.cursor = 0
	e.arenas = []*photo.Arena{photo.NewArena()}
	e.lastTagErr = nil
	if lib.Len() > 0 {
		e.emit(FetchRequest{Slot: SlotCursor, Photo: lib.At(0).ID})
	}
}

// Library exposes the engine's photo collection.
func (e *Engine) Library() *photo.Library { return e.lib }

// Cursor returns the current cursor index. Meaningless when the library is
// empty.
func (e *Engine) Cursor() int { return e.cursor }

// Current returns the photo under the cursor, or nil for an empty library.
func (e *Engine) Current() *photo.Record {
	if e.lib.Len() == 0 {
		return nil
	}
	return e.lib.At(e.cursor)
}

// Arenas returns the arena stack, oldest first. The last element is the only
// mutable one.
func (e *Engine) Arenas() []*photo.Arena { return e.arenas }

// Active returns the mutable arena at the top of the stack.
func (e *Engine) Active() *photo.Arena { return e.arenas[len(e.arenas)-1] }

// Champion returns the active arena's champion record, or nil.
func (e *Engine) Champion() *photo.Record {
	active := e.Active()
	if !active.HasChampion() {
		return nil
	}
	return e.lib.Get(active.Champion)
}

// CompareMode reports whether the champion comparison view is requested.
func (e *Engine) CompareMode() bool { return e.compare }

// LastTagError returns the most recent failed color-label write, or nil. Tag
// writes are best-effort; the in-memory status always updates regardless.
func (e *Engine) LastTagError() error { return e.lastTagErr }

// Challenge declares that the cursor photo beats the current champion. The
// previous champion, if any and not the same photo, becomes Displaced and is
// pushed to the front of the active arena's history. A rejected photo may
// re-enter competition this way.
func (e *Engine) Challenge() {
	current := e.Current()
	if current == nil {
		return
	}

	e.setStatus(current, status.Champion)

	active := e.Active()
	if active.HasChampion() && active.Champion != current.ID {
		old := e.lib.Get(active.Champion)
		if old != nil {
			e.setStatus(old, status.Displaced)
		}
		active.Displace(active.Champion)
	}
	active.Champion = current.ID

	e.logger.Debug("challenge applied",
		logging.String(logging.FieldPhoto, current.DisplayName),
		logging.Int("displaced", len(active.Displaced)),
	)
	e.emit(FetchRequest{Slot: SlotChampion, Photo: current.ID})
}

// Finalize closes out the active round and opens the next one with the
// cursor photo as its undefeated champion.
func (e *Engine) Finalize() {
	current := e.Current()
	if current == nil {
		return
	}

	e.Active().Archived = true
	next := photo.NewArena()
	e.arenas = append(e.arenas, next)

	e.setStatus(current, status.Champion)
	next.Champion = current.ID

	e.logger.Debug("round finalized",
		logging.Int("rounds", len(e.arenas)),
		logging.String(logging.FieldPhoto, current.DisplayName),
	)
	e.emit(FetchRequest{Slot: SlotChampion, Photo: current.ID})
}

// Reject removes the cursor photo from competition and advances the cursor.
// Arenas are untouched; a rejected photo was either never in one or stays in
// a displaced history that never shrinks.
func (e *Engine) Reject() {
	current := e.Current()
	if current == nil {
		return
	}

	e.setStatus(current, status.Rejected)
	e.logger.Debug("photo rejected", logging.String(logging.FieldPhoto, current.DisplayName))
	e.Navigate(1)
}

// Navigate moves the cursor by direction (-1 or +1), clamped to the library
// bounds with no wraparound. It reports whether the cursor moved; a boundary
// no-op emits no fetch requests.
func (e *Engine) Navigate(direction int) bool {
	if e.lib.Len() == 0 {
		return false
	}
	next := e.cursor + direction
	if next < 0 || next >= e.lib.Len() {
		return false
	}
	e.cursor = next

	e.emit(FetchRequest{Slot: SlotCursor, Photo: e.lib.At(next).ID})
	if e.compare {
		if champ := e.Champion(); champ != nil {
			e.emit(FetchRequest{Slot: SlotChampion, Photo: champ.ID})
		}
	}
	return true
}

// SetCompareMode toggles the side-by-side champion view. Enabling it fetches
// the champion preview so the view has something to show.
func (e *Engine) SetCompareMode(enabled bool) {
	e.compare = enabled
	if enabled {
		if champ := e.Champion(); champ != nil {
			e.emit(FetchRequest{Slot: SlotChampion, Photo: champ.ID})
		}
	}
}

// setStatus updates the in-memory status and propagates the matching color
// label. The in-memory state wins on write failure.
func (e *Engine) setStatus(rec *photo.Record, label status.Label) {
	rec.Status = label
	if err := e.store.WriteLabel(rec.SourcePath, label.Tag()); err != nil {
		e.lastTagErr = err
		e.logger.Warn("color label write failed; in-memory status kept",
			logging.String(logging.FieldPhoto, rec.DisplayName),
			logging.Error(err),
		)
	}
}

func (e *Engine) emit(req FetchRequest) {
	if e.fetch != nil {
		e.fetch(req)
	}
}
