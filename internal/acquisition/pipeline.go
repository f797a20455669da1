package acquisition

import (
	"context"
	"image"
	"log/slog"
	"sync"
	"sync/atomic"

	"shortlist/internal/config"
	"shortlist/internal/imaging"
	"shortlist/internal/logging"
	"shortlist/internal/photo"
	"shortlist/internal/tags"
	"shortlist/internal/tournament"
)

// Pipeline performs all image acquisition for a session: folder scans,
// thumbnail prefetch, and last-request-wins preview decodes.
type Pipeline struct {
	cfg    *config.Config
	dec    imaging.Decoder
	store  tags.Store
	logger *slog.Logger

	jobs    chan previewJob
	results chan PreviewResult

	cursorGen   atomic.Uint64
	championGen atomic.Uint64

	startOnce sync.Once
	wg        sync.WaitGroup
}

type previewJob struct {
	slot    tournament.Slot
	record  *photo.Record
	gen     uint64
	maxEdge int
}

// PreviewResult is the worker-to-coordinator handoff for one completed
// preview decode. The coordinator must re-check staleness via Stale before
// applying the raster to any record.
type PreviewResult struct {
	Slot   tournament.Slot
	Record *photo.Record
	Gen    uint64
	Image  image.Image
	Err    error
}

// New builds a pipeline. The decoder and tag store are the session's
// collaborators; logger may be nil.
func New(cfg *config.Config, dec imaging.Decoder, store tags.Store, logger *slog.Logger) *Pipeline {
	if dec == nil {
		dec = imaging.StdDecoder{}
	}
	if store == nil {
		store = tags.Disabled{}
	}
	return &Pipeline{
		cfg:     cfg,
		dec:     dec,
		store:   store,
		logger:  logging.NewComponentLogger(logger, "acquisition"),
		jobs:    make(chan previewJob, 16),
		results: make(chan PreviewResult, 16),
	}
}

// Results exposes completed preview decodes. Drained by the session's
// coordinating goroutine only.
func (p *Pipeline) Results() <-chan PreviewResult { return p.results }

// Start launches the preview decode workers. Workers exit when ctx is
// canceled; in-flight decodes finish and their results are discarded by the
// staleness check downstream.
func (p *Pipeline) Start(ctx context.Context) {
	p.startOnce.Do(func() {
		for i := 0; i < p.cfg.Imaging.DecodeWorkers; i++ {
			p.wg.Add(1)
			go p.previewWorker(ctx)
		}
	})
}

// Wait blocks until all preview workers have exited.
func (p *Pipeline) Wait() { p.wg.Wait() }

// Request enqueues a preview decode for a fetch request. It never blocks the
// caller: when the queue is full the oldest queued job is discarded, which is
// safe because the generation bump has already made it stale.
func (p *Pipeline) Request(req tournament.FetchRequest, rec *photo.Record) {
	if rec == nil {
		return
	}
	gen := p.bumpGeneration(req.Slot)
	job := previewJob{slot: req.Slot, record: rec, gen: gen, maxEdge: p.cfg.Imaging.PreviewMaxEdge}
	for {
		select {
		case p.jobs <- job:
			return
		default:
		}
		select {
		case <-p.jobs:
		default:
		}
	}
}

// Stale reports whether res was superseded by a newer request for its slot.
func (p *Pipeline) Stale(res PreviewResult) bool {
	return res.Gen != p.generation(res.Slot)
}

func (p *Pipeline) bumpGeneration(slot tournament.Slot) uint64 {
	if slot == tournament.SlotChampion {
		return p.championGen.Add(1)
	}
	return p.cursorGen.Add(1)
}

func (p *Pipeline) generation(slot tournament.Slot) uint64 {
	if slot == tournament.SlotChampion {
		return p.championGen.Load()
	}
	return p.cursorGen.Load()
}

func (p *Pipeline) previewWorker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-p.jobs:
			if job.gen != p.generation(job.slot) {
				// Superseded while queued; skip the decode entirely.
				continue
			}
			img, err := p.dec.Decode(job.record.SourcePath, job.maxEdge)
			res := PreviewResult{Slot: job.slot, Record: job.record, Gen: job.gen, Image: img, Err: err}
			select {
			case <-ctx.Done():
				return
			case p.results <- res:
			}
		}
	}
}

// PrefetchThumbnails decodes a thumbnail for every record before the folder
// is considered loaded. Decode failures are recorded on the affected record
// and do not block the rest. The progress callback receives (completed,
// total) after each item; it is invoked from worker goroutines.
func (p *Pipeline) PrefetchThumbnails(ctx context.Context, lib *photo.Library, progress func(done, total int)) error {
	records := lib.All()
	total := len(records)
	if total == 0 {
		return nil
	}

	var done atomic.Int64
	work := make(chan *photo.Record)
	var wg sync.WaitGroup
	for i := 0; i < p.cfg.Imaging.DecodeWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rec := range work {
				img, err := p.dec.Decode(rec.SourcePath, p.cfg.Imaging.ThumbnailMaxEdge)
				if err != nil {
					rec.DecodeErr = err
					p.logger.Warn("thumbnail decode failed",
						logging.String(logging.FieldPhoto, rec.DisplayName),
						logging.Error(err),
					)
				} else {
					rec.Thumbnail = img
					rec.DecodeErr = nil
				}
				if progress != nil {
					progress(int(done.Add(1)), total)
				}
			}
		}()
	}

	var err error
feed:
	for _, rec := range records {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case work <- rec:
		}
	}
	close(work)
	wg.Wait()
	return err
}
