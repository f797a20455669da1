package testsupport

import (
	"errors"
	"sync"
)

// MemTagStore is an in-memory tags.Store for tests. It records every write
// and can be told to fail.
type MemTagStore struct {
	mu       sync.Mutex
	labels   map[string]string
	writes   int
	failNext error
}

// NewMemTagStore builds an empty store.
func NewMemTagStore() *MemTagStore {
	return &MemTagStore{labels: make(map[string]string)}
}

// Seed sets a label without counting as a write.
func (m *MemTagStore) Seed(path, label string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.labels[path] = label
}

// FailWrites makes every subsequent WriteLabel return err.
func (m *MemTagStore) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		err = errors.New("tag store failure")
	}
	m.failNext = err
}

func (m *MemTagStore) ReadLabel(path string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.labels[path], nil
}

func (m *MemTagStore) WriteLabel(path, label string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failNext != nil {
		return m.failNext
	}
	m.writes++
	if label == "" {
		delete(m.labels, path)
		return nil
	}
	m.labels[path] = label
	return nil
}

// Label returns the stored label for path.
func (m *MemTagStore) Label(path string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.labels[path]
}

// Writes returns the number of successful writes.
func (m *MemTagStore) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
