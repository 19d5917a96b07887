package repositories

import (
	"errors"
	"testing"

	"github.com/desertthunder/shelf/internal/models"
	"github.com/desertthunder/shelf/internal/shared"
)

func TestSyncRunRepositoryErrors(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		t.Run("ValidationError", func(t *testing.T) {
			db := setupTestDB(t)
			defer db.Close()

			repo := NewSyncRunRepository(db)
			run := newRun("", 1, 0, nil)

			if err := repo.Create(run); err == nil {
				t.Fatal("expected validation error for empty library path")
			}

			if run.ID != "" {
				t.Error("expected no ID for an invalid run")
			}
		})

		t.Run("FailedInsertKeepsSequence", func(t *testing.T) {
			db := setupTestDB(t)
			defer db.Close()

			if _, err := db.Exec("DROP TABLE sync_runs"); err != nil {
				t.Fatalf("failed to drop table: %v", err)
			}

			if err := NewSyncRunRepository(db).Create(newRun("library.json", 1, 1, nil)); err == nil {
				t.Fatal("expected insert error without a sync_runs table")
			}

			got, err := NextSequence(db, "sync_runs")
			if err != nil {
				t.Fatalf("NextSequence() error = %v", err)
			}
			if got != 1 {
				t.Errorf("expected the failed insert to roll back its sequence, got %d", got)
			}
		})

		t.Run("CountersOutOfRange", func(t *testing.T) {
			db := setupTestDB(t)
			defer db.Close()

			repo := NewSyncRunRepository(db)
			run := newRun("library.json", 1, 2, nil)

			if err := repo.Create(run); err == nil {
				t.Fatal("expected validation error when new volumes exceed input")
			}
		})

		t.Run("MissingTables", func(t *testing.T) {
			db, err := shared.NewDatabase(":memory:")
			if err != nil {
				t.Fatalf("failed to create database: %v", err)
			}
			defer db.Close()

			if err := NewSyncRunRepository(db).Create(newRun("library.json", 1, 1, nil)); err == nil {
				t.Fatal("expected error without migrations")
			}
		})
	})

	t.Run("Get", func(t *testing.T) {
		t.Run("NotFound", func(t *testing.T) {
			db := setupTestDB(t)
			defer db.Close()

			_, err := NewSyncRunRepository(db).Get("nonexistent-id")
			if !errors.Is(err, shared.ErrRunNotFound) {
				t.Fatalf("expected ErrRunNotFound, got %v", err)
			}
		})

		t.Run("ClosedDatabase", func(t *testing.T) {
			db := setupTestDB(t)
			db.Close()

			_, err := NewSyncRunRepository(db).Get("any")
			if err == nil || errors.Is(err, shared.ErrRunNotFound) {
				t.Fatalf("expected a database error, got %v", err)
			}
		})
	})

	t.Run("List", func(t *testing.T) {
		t.Run("ClosedDatabase", func(t *testing.T) {
			db := setupTestDB(t)
			db.Close()

			if _, err := NewSyncRunRepository(db).List("", 0); err == nil {
				t.Fatal("expected error listing from a closed database")
			}
		})

		t.Run("Empty", func(t *testing.T) {
			db := setupTestDB(t)
			defer db.Close()

			runs, err := NewSyncRunRepository(db).List("", 10)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(runs) != 0 {
				t.Errorf("expected no runs, got %d", len(runs))
			}
		})
	})

	t.Run("Delete", func(t *testing.T) {
		t.Run("NotFound", func(t *testing.T) {
			db := setupTestDB(t)
			defer db.Close()

			if err := NewSyncRunRepository(db).Delete("nonexistent-id"); !errors.Is(err, shared.ErrRunNotFound) {
				t.Fatalf("expected ErrRunNotFound, got %v", err)
			}
		})
	})

	t.Run("Recorder", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		recorder := NewSyncRunRecorder(NewSyncRunRepository(db))
		if _, err := recorder.RecordRun(&models.SyncRun{}); err == nil {
			t.Fatal("expected error for invalid run")
		}
	})
}
