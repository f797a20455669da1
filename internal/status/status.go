// Package status defines the four-valued classification applied to each photo
// during triage and its mapping to the external color-label vocabulary.
//
// The mapping is deliberately lossy in one direction: any tag outside the
// known vocabulary degrades to Unset rather than failing, so a folder that was
// labeled by another tool still loads cleanly.
package status

// Label classifies a photo within the elimination workflow.
type Label string

const (
	// Unset marks a photo that has not been judged yet.
	Unset Label = "unset"
	// Champion marks the photo currently winning its round.
	Champion Label = "champion"
	// Displaced marks a former champion beaten by a later challenger.
	Displaced Label = "displaced"
	// Rejected marks a photo removed from competition entirely.
	Rejected Label = "rejected"
)

// Color-label vocabulary used by the external tag store.
const (
	TagChampion  = "Green"
	TagDisplaced = "Yellow"
	TagRejected  = "Red"
)

// FromTag maps an external color label to a Label. Unknown or empty tags map
// to Unset.
func FromTag(tag string) Label {
	switch tag {
	case TagChampion:
		return Champion
	case TagDisplaced:
		return Displaced
	case TagRejected:
		return Rejected
	default:
		return Unset
	}
}

// Tag returns the external color label for a Label. Unset returns the empty
// string, meaning "no tag".
func (l Label) Tag() string {
	switch l {
	case Champion:
		return TagChampion
	case Displaced:
		return TagDisplaced
	case Rejected:
		return TagRejected
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (l Label) String() string {
	if l == "" {
		return string(Unset)
	}
	return string(l)
}
