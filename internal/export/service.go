// Package export turns a manuscript plus settings overrides into rendered
// artifacts. The service runs exports synchronously or as tracked jobs;
// each job renders its formats in parallel and can be cancelled while
// running.
package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/jackzampolin/bookpress/internal/layout"
	"github.com/jackzampolin/bookpress/internal/manuscript"
	"github.com/jackzampolin/bookpress/internal/render"
	"github.com/jackzampolin/bookpress/internal/settings"
)

// ErrJobNotFound indicates an unknown job ID.
var ErrJobNotFound = errors.New("export job not found")

// Request is one export order: the manuscript, optional settings
// overrides, and the formats to produce.
type Request struct {
	Manuscript *manuscript.Manuscript `json:"manuscript"`
	Settings   *settings.Overrides    `json:"settings,omitempty"`
	Formats    []render.Format        `json:"formats"`
}

// Service executes exports against a backend registry.
type Service struct {
	registry *render.Registry
	logger   *slog.Logger

	mu      sync.RWMutex
	jobs    map[string]*Record
	cancels map[string]context.CancelFunc
}

// NewService creates an export service.
func NewService(registry *render.Registry, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		registry: registry,
		logger:   logger,
		jobs:     make(map[string]*Record),
		cancels:  make(map[string]context.CancelFunc),
	}
}

// Export runs one export synchronously and returns the rendered artifacts
// by format.
func (s *Service) Export(ctx context.Context, req Request) (map[render.Format][]byte, error) {
	if len(req.Formats) == 0 {
		return nil, errors.New("no export formats requested")
	}
	resolved := settings.Resolve(req.Settings)
	doc, err := layout.Build(req.Manuscript, resolved)
	if err != nil {
		return nil, fmt.Errorf("layout failed: %w", err)
	}

	// Look up every backend before rendering anything, so an unknown
	// format fails fast instead of wasting a PDF pass.
	backends := make(map[render.Format]render.Backend, len(req.Formats))
	for _, f := range req.Formats {
		b, err := s.registry.Get(f)
		if err != nil {
			return nil, err
		}
		backends[f] = b
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		outputs = make(map[render.Format][]byte, len(req.Formats))
		firstErr error
	)
	for f, b := range backends {
		wg.Add(1)
		go func(f render.Format, b render.Backend) {
			defer wg.Done()
			data, err := b.Render(ctx, doc)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("render %s: %w", f, err)
				}
				return
			}
			outputs[f] = data
		}(f, b)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	s.logger.Info("export complete", "title", req.Manuscript.Title, "formats", len(outputs))
	return outputs, nil
}

// Submit queues an export job and returns its ID. The job runs on its own
// goroutine with a context detached from the caller's; Cancel stops it.
func (s *Service) Submit(req Request) (string, error) {
	if req.Manuscript == nil {
		return "", errors.New("no manuscript")
	}
	if len(req.Formats) == 0 {
		return "", errors.New("no export formats requested")
	}

	rec := newRecord(req.Manuscript.Title, req.Formats)
	jobCtx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	s.jobs[rec.ID] = rec
	s.cancels[rec.ID] = cancel
	s.mu.Unlock()

	go s.run(jobCtx, rec.ID, req)

	s.logger.Info("export job queued", "id", rec.ID, "title", req.Manuscript.Title)
	return rec.ID, nil
}

// run executes one submitted job and records its outcome.
func (s *Service) run(ctx context.Context, id string, req Request) {
	s.setStatus(id, StatusRunning, "")

	outputs, err := s.Export(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.jobs[id]
	if !ok {
		return
	}
	now := time.Now().UTC()
	rec.CompletedAt = &now
	delete(s.cancels, id)

	switch {
	case ctx.Err() != nil:
		rec.Status = StatusCancelled
		rec.Error = ctx.Err().Error()
	case err != nil:
		rec.Status = StatusFailed
		rec.Error = err.Error()
		s.logger.Error("export job failed", "id", id, "error", err)
	default:
		rec.Status = StatusCompleted
		rec.Outputs = outputs
	}
}

func (s *Service) setStatus(id string, status Status, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.jobs[id]
	if !ok {
		return
	}
	rec.Status = status
	rec.Error = errMsg
	if status == StatusRunning {
		now := time.Now().UTC()
		rec.StartedAt = &now
	}
}

// Get returns a snapshot of a job record.
func (s *Service) Get(id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.jobs[id]
	if !ok {
		return nil, ErrJobNotFound
	}
	snapshot := *rec
	return &snapshot, nil
}

// Result returns one rendered artifact from a completed job.
func (s *Service) Result(id string, format render.Format) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.jobs[id]
	if !ok {
		return nil, ErrJobNotFound
	}
	if rec.Status != StatusCompleted {
		return nil, fmt.Errorf("job %s is %s, not completed", id, rec.Status)
	}
	data, ok := rec.Outputs[format]
	if !ok {
		return nil, fmt.Errorf("job %s has no %s output", id, format)
	}
	return data, nil
}

// Cancel stops a running job. Completed jobs are left untouched.
func (s *Service) Cancel(id string) error {
	s.mu.Lock()
	cancel, ok := s.cancels[id]
	s.mu.Unlock()
	if !ok {
		if _, err := s.Get(id); err != nil {
			return err
		}
		return fmt.Errorf("job %s is no longer running", id)
	}
	cancel()
	return nil
}

// List returns all job records, newest first.
func (s *Service) List() []*Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Record, 0, len(s.jobs))
	for _, rec := range s.jobs {
		snapshot := *rec
		out = append(out, &snapshot)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}
