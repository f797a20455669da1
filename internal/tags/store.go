package tags

// Store is the collaborator interface the triage core uses to persist color
// labels. Implementations must treat an absent label as ("", nil), and an
// empty label on write as a removal.
type Store interface {
	ReadLabel(path string) (string, error)
	WriteLabel(path, label string) error
}

// Disabled is a Store that retains nothing. It backs sessions run with tag
// writes turned off.
type Disabled struct{}

func (Disabled) ReadLabel(string) (string, error) { return "", nil }

func (Disabled) WriteLabel(string, string) error { return nil }
