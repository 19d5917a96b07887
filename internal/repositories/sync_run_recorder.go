package repositories

import (
	"fmt"

	"github.com/desertthunder/shelf/internal/models"
)

// SyncRunRecorder implements tasks.RunRecorder using SyncRunRepository.
type SyncRunRecorder struct {
	repo *SyncRunRepository
}

// NewSyncRunRecorder creates a new SyncRunRecorder with the given repository
func NewSyncRunRecorder(repo *SyncRunRepository) *SyncRunRecorder {
	return &SyncRunRecorder{repo: repo}
}

// RecordRun persists run and returns its generated ID.
func (a *SyncRunRecorder) RecordRun(run *models.SyncRun) (string, error) {
	if err := a.repo.Create(run); err != nil {
		return "", fmt.Errorf("failed to record sync run: %w", err)
	}
	return run.ID, nil
}
