package photo

import (
	"sort"
	"strings"
)

// Library is the ordered collection of records for one loaded folder. It is
// the sole owner of every Record; all other structures reference records by
// ID through Get.
type Library struct {
	records []*Record
	byID    map[ID]*Record
}

// NewLibrary builds a library from records, sorting them case-insensitively
// by display name. The input slice is not retained.
func NewLibrary(records []*Record) *Library {
	ordered := make([]*Record, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		a := strings.ToLower(ordered[i].DisplayName)
		b := strings.ToLower(ordered[j].DisplayName)
		if a == b {
			return ordered[i].DisplayName < ordered[j].DisplayName
		}
		return a < b
	})

	byID := make(map[ID]*Record, len(ordered))
	for _, rec := range ordered {
		byID[rec.ID] = rec
	}
	return &Library{records: ordered, byID: byID}
}

// Len returns the number of records.
func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return len(l.records)
}

// At returns the record at position idx. It panics on out-of-range access,
// matching slice semantics; callers clamp their cursors.
func (l *Library) At(idx int) *Record {
	return l.records[idx]
}

// Get returns the record for id, or nil when the id is unknown.
func (l *Library) Get(id ID) *Record {
	if l == nil {
		return nil
	}
	return l.byID[id]
}

// IndexOf returns the position of id in scan order, or -1.
func (l *Library) IndexOf(id ID) int {
	for i, rec := range l.records {
		if rec.ID == id {
			return i
		}
	}
	return -1
}

// All returns the records in scan order. Callers must not reorder or resize
// the returned slice.
func (l *Library) All() []*Record {
	if l == nil {
		return nil
	}
	return l.records
}
