package repositories

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/desertthunder/shelf/internal/models"
	"github.com/desertthunder/shelf/internal/shared"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if _, err := shared.RunMigrations(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func newRun(path string, input, added int, err error) *models.SyncRun {
	return models.NewSyncRun(path, models.AppendStats{InputList: input, NewVolumes: added}, time.Now().Add(-time.Second), err)
}

func TestNextSequence(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for want := 1; want <= 3; want++ {
		got, err := NextSequence(db, "sync_runs")
		if err != nil {
			t.Fatalf("NextSequence() error = %v", err)
		}
		if got != want {
			t.Errorf("NextSequence() = %d, want %d", got, want)
		}
	}

	if _, err := NextSequence(db, "missing"); err == nil {
		t.Error("expected error for a table without sequence")
	}
}

func TestSyncRunRepository(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSyncRunRepository(db)
		run := newRun("library.json", 3, 2, nil)

		if err := repo.Create(run); err != nil {
			t.Fatalf("failed to create run: %v", err)
		}

		if run.ID == "" {
			t.Error("run ID should be set after creation")
		}
	})

	t.Run("Get", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSyncRunRepository(db)
		run := newRun("library.json", 4, 1, errors.New("impossible to write library"))

		if err := repo.Create(run); err != nil {
			t.Fatalf("failed to create run: %v", err)
		}

		got, err := repo.Get(run.ID)
		if err != nil {
			t.Fatalf("failed to get run: %v", err)
		}

		if got.Sequence != 1 {
			t.Errorf("expected sequence 1, got %d", got.Sequence)
		}
		if got.LibraryPath != "library.json" || got.InputList != 4 || got.NewVolumes != 1 {
			t.Errorf("unexpected run %+v", got)
		}
		if got.Status != models.SyncRunFailed {
			t.Errorf("expected status failed, got %s", got.Status)
		}
		if got.ErrorMessage != "impossible to write library" {
			t.Errorf("expected error message, got %q", got.ErrorMessage)
		}
		if got.StartedAt.Unix() != run.StartedAt.Unix() {
			t.Errorf("expected started_at %v, got %v", run.StartedAt, got.StartedAt)
		}
	})

	t.Run("Get Without Error Message", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSyncRunRepository(db)
		run := newRun("library.json", 1, 1, nil)
		if err := repo.Create(run); err != nil {
			t.Fatalf("failed to create run: %v", err)
		}

		got, err := repo.Get(run.ID)
		if err != nil {
			t.Fatalf("failed to get run: %v", err)
		}
		if got.ErrorMessage != "" {
			t.Errorf("expected empty error message, got %q", got.ErrorMessage)
		}
	})

	t.Run("List", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSyncRunRepository(db)
		for _, path := range []string{"a.json", "b.json", "a.json"} {
			if err := repo.Create(newRun(path, 1, 0, nil)); err != nil {
				t.Fatalf("failed to create run: %v", err)
			}
		}

		all, err := repo.List("", 0)
		if err != nil {
			t.Fatalf("failed to list runs: %v", err)
		}
		if len(all) != 3 {
			t.Fatalf("expected 3 runs, got %d", len(all))
		}
		if all[0].Sequence != 3 || all[2].Sequence != 1 {
			t.Error("expected most recent run first")
		}

		filtered, err := repo.List("a.json", 0)
		if err != nil {
			t.Fatalf("failed to list runs: %v", err)
		}
		if len(filtered) != 2 {
			t.Errorf("expected 2 runs for a.json, got %d", len(filtered))
		}

		limited, err := repo.List("", 1)
		if err != nil {
			t.Fatalf("failed to list runs: %v", err)
		}
		if len(limited) != 1 || limited[0].Sequence != 3 {
			t.Errorf("expected only the latest run, got %+v", limited)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSyncRunRepository(db)
		run := newRun("library.json", 1, 1, nil)
		if err := repo.Create(run); err != nil {
			t.Fatalf("failed to create run: %v", err)
		}

		if err := repo.Delete(run.ID); err != nil {
			t.Fatalf("failed to delete run: %v", err)
		}

		if _, err := repo.Get(run.ID); !errors.Is(err, shared.ErrRunNotFound) {
			t.Errorf("expected ErrRunNotFound after delete, got %v", err)
		}
	})
}

func TestSyncRunRecorder(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	recorder := NewSyncRunRecorder(NewSyncRunRepository(db))
	id, err := recorder.RecordRun(newRun("library.json", 2, 2, nil))
	if err != nil {
		t.Fatalf("RecordRun() error = %v", err)
	}
	if id == "" {
		t.Error("expected generated id")
	}
}
