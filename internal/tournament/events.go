package tournament

import "shortlist/internal/photo"

// Slot names a preview target. Each slot keeps only its latest outstanding
// fetch alive; the pipeline uses the slot to run its staleness check.
type Slot string

const (
	// SlotCursor is the photo under the cursor.
	SlotCursor Slot = "cursor"
	// SlotChampion is the active arena's champion, shown in compare mode.
	SlotChampion Slot = "champion"
)

// FetchRequest asks the pipeline to (re)load a preview for a slot.
type FetchRequest struct {
	Slot  Slot
	Photo photo.ID
}

// FetchFunc receives fetch requests emitted by engine operations.
type FetchFunc func(FetchRequest)
