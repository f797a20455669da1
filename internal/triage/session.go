package triage

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"

	"shortlist/internal/acquisition"
	"shortlist/internal/config"
	"shortlist/internal/imaging"
	"shortlist/internal/logging"
	"shortlist/internal/tags"
	"shortlist/internal/tournament"
)

// Stage labels surfaced to the UI while a folder loads.
const (
	StageIdle       = "idle"
	StageScanning   = "scanning folder"
	StageThumbnails = "loading thumbnails"
	StageReady      = "ready"
)

// Options overrides Session collaborators, primarily for tests. Zero values
// select the production implementations.
type Options struct {
	Decoder  imaging.Decoder
	TagStore tags.Store
	Logger   *slog.Logger
}

// Session coordinates one triage run: a loaded folder, the elimination
// engine, and the pipeline feeding it.
type Session struct {
	cfg      *config.Config
	logger   *slog.Logger
	pipeline *acquisition.Pipeline
	engine   *tournament.Engine

	mu       sync.Mutex
	folder   string
	stage    string
	progress float64
	lastErr  error
	lock     *flock.Flock

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSession builds an idle session. Call Start before LoadFolder.
func NewSession(cfg *config.Config, opts Options) *Session {
	store := opts.TagStore
	if store == nil {
		if cfg.Tags.WriteEnabled {
			store = tags.NewXattrStore(cfg.Tags.Attribute)
		} else {
			store = tags.Disabled{}
		}
	}

	s := &Session{
		cfg:    cfg,
		logger: logging.NewComponentLogger(opts.Logger, "session"),
		stage:  StageIdle,
	}
	s.pipeline = acquisition.New(cfg, opts.Decoder, store, opts.Logger)
	s.engine = tournament.New(store, opts.Logger, s.requestFetch)
	return s
}

// Start launches the decode workers and the result drain. The session is
// usable until ctx is canceled or Stop is called.
func (s *Session) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	s.pipeline.Start(runCtx)
	go s.drainResults(runCtx)
}

// Stop terminates background work and waits for the drain to exit.
func (s *Session) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.pipeline.Wait()
	s.unlockFolder()
}

// LoadFolder scans path, derives initial statuses, prefetches every
// thumbnail, and hands the finished library to the engine. On scan failure
// the previous session state is left untouched. The progress callback, if
// non-nil, receives the prefetch fraction as it advances.
func (s *Session) LoadFolder(ctx context.Context, path string, progress func(fraction float64)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	reload := s.folder == abs && s.lock != nil
	lock := s.lock
	s.mu.Unlock()

	if !reload {
		lock, err = s.acquireFolderLock(abs)
		if err != nil {
			s.failStage(err)
			return err
		}
	}

	s.setStage(StageScanning, 0)
	entries, err := s.pipeline.Scan(abs)
	if err != nil {
		if !reload {
			lock.Unlock()
		}
		s.failStage(err)
		return err
	}
	lib := s.pipeline.BuildLibrary(entries)

	s.setStage(StageThumbnails, 0)
	err = s.pipeline.PrefetchThumbnails(ctx, lib, func(done, total int) {
		fraction := float64(done) / float64(total)
		s.setStage(StageThumbnails, fraction)
		if progress != nil {
			progress(fraction)
		}
	})
	if err != nil {
		if !reload {
			lock.Unlock()
		}
		s.failStage(err)
		return err
	}

	s.mu.Lock()
	if !reload {
		s.unlockFolderLocked()
	}
	s.folder = abs
	s.lock = lock
	s.engine.Load(lib)
	s.stage = StageReady
	s.progress = 1
	s.lastErr = nil
	s.mu.Unlock()

	s.logger.Info("folder loaded",
		logging.String(logging.FieldFolder, abs),
		logging.Int("photos", lib.Len()),
	)
	return nil
}

// Challenge applies "this photo beats the champion" to the cursor photo.
func (s *Session) Challenge() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Challenge()
}

// Finalize banks the active round and opens the next one.
func (s *Session) Finalize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Finalize()
}

// Reject removes the cursor photo from competition.
func (s *Session) Reject() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Reject()
}

// Navigate moves the cursor and reports whether it moved.
func (s *Session) Navigate(direction int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Navigate(direction)
}

// SetCompareMode toggles the champion comparison view.
func (s *Session) SetCompareMode(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.SetCompareMode(enabled)
}

// requestFetch is the engine's event sink. The engine calls it synchronously
// under the session mutex; pipeline.Request never blocks.
func (s *Session) requestFetch(req tournament.FetchRequest) {
	rec := s.engine.Library().Get(req.Photo)
	if rec == nil {
		return
	}
	s.pipeline.Request(req, rec)
}

func (s *Session) drainResults(ctx context.Context) {
	defer close(s.done)
	for {
		select {
		case <-ctx.Done():
			return
		case res := <-s.pipeline.Results():
			s.applyResult(res)
		}
	}
}

// applyResult runs on the drain goroutine: the staleness gate, then the only
// place outside prefetch where raster fields are written.
func (s *Session) applyResult(res acquisition.PreviewResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pipeline.Stale(res) {
		s.logger.Debug("stale preview dropped",
			logging.String(logging.FieldSlot, string(res.Slot)),
			logging.String(logging.FieldPhoto, res.Record.DisplayName),
		)
		return
	}

	if res.Err != nil {
		res.Record.DecodeErr = res.Err
		s.lastErr = res.Err
		s.logger.Warn("preview decode failed",
			logging.String(logging.FieldPhoto, res.Record.DisplayName),
			logging.Error(res.Err),
		)
		return
	}
	res.Record.Preview = res.Image
	res.Record.DecodeErr = nil
}

// failStage records err without disturbing a previously loaded folder: the
// stage falls back to ready when a collection is already in place.
func (s *Session) failStage(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = err
	s.progress = 0
	if s.engine.Library().Len() > 0 {
		s.stage = StageReady
	} else {
		s.stage = StageIdle
	}
}

func (s *Session) setStage(stage string, progress float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stage = stage
	s.progress = progress
}

func (s *Session) acquireFolderLock(folder string) (*flock.Flock, error) {
	if err := s.cfg.EnsureDirectories(); err != nil {
		return nil, err
	}
	hash := fnv.New64a()
	hash.Write([]byte(folder))
	name := fmt.Sprintf("folder-%x.lock", hash.Sum64())
	lock := flock.New(filepath.Join(lockDir(s.cfg), name))

	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire folder lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("folder %s is already being triaged by another shortlist instance", folder)
	}
	return lock, nil
}

func (s *Session) unlockFolder() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unlockFolderLocked()
}

func (s *Session) unlockFolderLocked() {
	if s.lock != nil {
		_ = s.lock.Unlock()
		s.lock = nil
	}
}

func lockDir(cfg *config.Config) string {
	if cfg.Paths.LogDir != "" {
		return cfg.Paths.LogDir
	}
	return os.TempDir()
}
