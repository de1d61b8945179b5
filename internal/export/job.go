package export

import (
	"time"

	"github.com/google/uuid"

	"github.com/jackzampolin/bookpress/internal/render"
)

// Status represents the current state of an export job.
type Status string

const (
	StatusQueued    Status = "queued"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// Record tracks one export job. Outputs hold the rendered artifacts after
// completion and are omitted from serialized views; clients fetch them
// through the service.
type Record struct {
	ID          string                   `json:"id"`
	Title       string                   `json:"title"`
	Formats     []render.Format          `json:"formats"`
	Status      Status                   `json:"status"`
	CreatedAt   time.Time                `json:"createdAt"`
	StartedAt   *time.Time               `json:"startedAt,omitempty"`
	CompletedAt *time.Time               `json:"completedAt,omitempty"`
	Error       string                   `json:"error,omitempty"`
	Outputs     map[render.Format][]byte `json:"-"`
}

// OutputSizes reports rendered artifact sizes for status responses.
func (r *Record) OutputSizes() map[render.Format]int {
	if len(r.Outputs) == 0 {
		return nil
	}
	sizes := make(map[render.Format]int, len(r.Outputs))
	for f, data := range r.Outputs {
		sizes[f] = len(data)
	}
	return sizes
}

// newRecord creates a queued job record.
func newRecord(title string, formats []render.Format) *Record {
	return &Record{
		ID:        uuid.New().String(),
		Title:     title,
		Formats:   formats,
		Status:    StatusQueued,
		CreatedAt: time.Now().UTC(),
	}
}
