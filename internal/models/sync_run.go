package models

import (
	"fmt"
	"time"
)

// SyncRunStatus is the terminal state of a [SyncRun].
type SyncRunStatus string

const (
	SyncRunCompleted SyncRunStatus = "completed"
	SyncRunFailed    SyncRunStatus = "failed"
)

// SyncRun records one execution of the sync engine.
type SyncRun struct {
	ID           string        `json:"id"`
	LibraryPath  string        `json:"library_path"`
	InputList    int           `json:"input_list"`
	NewVolumes   int           `json:"new_volumes"`
	Status       SyncRunStatus `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
	StartedAt    time.Time     `json:"started_at"`
	CompletedAt  time.Time     `json:"completed_at"`
}

// NewSyncRun builds a run from its stats. A non-nil err marks the run as failed.
func NewSyncRun(path string, stats AppendStats, startedAt time.Time, err error) *SyncRun {
	run := &SyncRun{
		LibraryPath: path,
		InputList:   stats.InputList,
		NewVolumes:  stats.NewVolumes,
		Status:      SyncRunCompleted,
		StartedAt:   startedAt,
		CompletedAt: time.Now(),
	}
	if err != nil {
		run.Status = SyncRunFailed
		run.ErrorMessage = err.Error()
	}
	return run
}

// Validate checks the run invariants before persisting.
func (r *SyncRun) Validate() error {
	if r.LibraryPath == "" {
		return fmt.Errorf("library path is required")
	}
	if r.InputList < 0 || r.NewVolumes < 0 {
		return fmt.Errorf("counters must be non-negative")
	}
	if r.NewVolumes > r.InputList {
		return fmt.Errorf("new volumes (%d) exceed input list (%d)", r.NewVolumes, r.InputList)
	}
	switch r.Status {
	case SyncRunCompleted, SyncRunFailed:
	default:
		return fmt.Errorf("unknown status %q", r.Status)
	}
	return nil
}

// Duration returns how long the run took.
func (r *SyncRun) Duration() time.Duration {
	return r.CompletedAt.Sub(r.StartedAt)
}
