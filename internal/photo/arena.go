package photo

// Arena is one elimination round. The champion slot holds the photo currently
// winning the round; Displaced lists every photo the champion slot has beaten,
// most recent first. Both fields hold record IDs into the session library.
//
// An arena only ever grows: entries are never removed from Displaced, and an
// archived arena is never mutated again.
type Arena struct {
	Champion  ID
	Displaced []ID
	Archived  bool
}

// NewArena returns an empty, active arena.
func NewArena() *Arena {
	return &Arena{}
}

// HasChampion reports whether the champion slot is occupied.
func (a *Arena) HasChampion() bool {
	return a != nil && a.Champion != ""
}

// Displace pushes id to the front of the displaced history.
func (a *Arena) Displace(id ID) {
	a.Displaced = append([]ID{id}, a.Displaced...)
}

// Contains reports whether id appears as champion or anywhere in the
// displaced history.
func (a *Arena) Contains(id ID) bool {
	if a == nil {
		return false
	}
	if a.Champion == id {
		return true
	}
	for _, d := range a.Displaced {
		if d == id {
			return true
		}
	}
	return false
}
