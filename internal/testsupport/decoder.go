package testsupport

import (
	"image"
	"sync"

	"shortlist/internal/services"
)

// StubDecoder is an imaging.Decoder that fabricates rasters without touching
// the filesystem. Decodes can be held open via Gate to exercise stale-result
// handling, and individual paths can be made to fail.
type StubDecoder struct {
	mu       sync.Mutex
	failing  map[string]struct{}
	decoded  []string
	gate     chan struct{}
	EdgeSeen map[string]int
}

// NewStubDecoder builds a decoder where every path succeeds instantly.
func NewStubDecoder() *StubDecoder {
	return &StubDecoder{
		failing:  make(map[string]struct{}),
		EdgeSeen: make(map[string]int),
	}
}

// Fail makes Decode return a decode error for path.
func (s *StubDecoder) Fail(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing[path] = struct{}{}
}

// Hold makes every subsequent Decode block until Release is called.
func (s *StubDecoder) Hold() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gate = make(chan struct{})
}

// Release unblocks decodes held by Hold.
func (s *StubDecoder) Release() {
	s.mu.Lock()
	gate := s.gate
	s.gate = nil
	s.mu.Unlock()
	if gate != nil {
		close(gate)
	}
}

// Decoded returns the paths decoded so far, in completion order.
func (s *StubDecoder) Decoded() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.decoded...)
}

func (s *StubDecoder) Decode(path string, maxEdge int) (image.Image, error) {
	s.mu.Lock()
	gate := s.gate
	s.mu.Unlock()
	if gate != nil {
		<-gate
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.failing[path]; ok {
		return nil, services.Wrap(services.ErrDecode, "testsupport", "decode", path, nil)
	}
	s.decoded = append(s.decoded, path)
	s.EdgeSeen[path] = maxEdge
	size := maxEdge
	if size <= 0 || size > 8 {
		size = 8
	}
	return image.NewRGBA(image.Rect(0, 0, size, size)), nil
}
