package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/desertthunder/shelf/internal/models"
	"github.com/desertthunder/shelf/internal/shared"
)

// SyncRunRepository stores [models.SyncRun] rows.
type SyncRunRepository struct {
	db *sql.DB
}

// NewSyncRunRepository creates a new SyncRunRepository with the given database connection
func NewSyncRunRepository(db *sql.DB) *SyncRunRepository {
	return &SyncRunRepository{db: db}
}

// SyncRunRecord is a stored run with its sequence number.
type SyncRunRecord struct {
	Sequence int `json:"sequence"`
	models.SyncRun
}

// Create inserts a new run with a generated ID and sequence.
//
// The sequence is reserved in the same transaction as the insert, so a failed
// insert leaves no gap in the numbering.
func (r *SyncRunRepository) Create(run *models.SyncRun) error {
	if err := run.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	var errorMessage any = run.ErrorMessage
	if run.ErrorMessage == "" {
		errorMessage = nil
	}

	query := `
		INSERT INTO sync_runs (
			id, sequence, library_path, input_list, new_volumes,
			status, error_message, started_at, completed_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	id := shared.GenerateID()
	err := withTx(r.db, func(tx *sql.Tx) error {
		sequence, err := bumpSequence(tx, runsTable)
		if err != nil {
			return fmt.Errorf("failed to generate sequence: %w", err)
		}

		_, err = tx.Exec(query,
			id,
			sequence,
			run.LibraryPath,
			run.InputList,
			run.NewVolumes,
			string(run.Status),
			errorMessage,
			run.StartedAt,
			run.CompletedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert sync run: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	run.ID = id
	return nil
}

// Get retrieves a run by ID.
func (r *SyncRunRepository) Get(id string) (*SyncRunRecord, error) {
	query := `
		SELECT id, sequence, library_path, input_list, new_volumes, status, error_message, started_at, completed_at
		FROM sync_runs
		WHERE id = ?
	`

	record, err := scanRun(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", shared.ErrRunNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan sync run: %w", err)
	}
	return record, nil
}

// List returns the most recent runs first. An empty libraryPath matches every library; limit <= 0 means no limit.
func (r *SyncRunRepository) List(libraryPath string, limit int) ([]*SyncRunRecord, error) {
	query := `
		SELECT id, sequence, library_path, input_list, new_volumes, status, error_message, started_at, completed_at
		FROM sync_runs
	`

	args := []any{}
	if libraryPath != "" {
		query += " WHERE library_path = ?"
		args = append(args, libraryPath)
	}

	query += " ORDER BY sequence DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sync runs: %w", err)
	}
	defer rows.Close()

	var records []*SyncRunRecord
	for rows.Next() {
		record, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sync run: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return records, nil
}

// Delete removes a run by ID.
func (r *SyncRunRepository) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM sync_runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete sync run: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrRunNotFound, id)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*SyncRunRecord, error) {
	var (
		record       SyncRunRecord
		status       string
		errorMessage sql.NullString
		startedAt    time.Time
		completedAt  time.Time
	)

	err := row.Scan(
		&record.ID,
		&record.Sequence,
		&record.LibraryPath,
		&record.InputList,
		&record.NewVolumes,
		&status,
		&errorMessage,
		&startedAt,
		&completedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Status = models.SyncRunStatus(status)
	record.ErrorMessage = errorMessage.String
	record.StartedAt = startedAt
	record.CompletedAt = completedAt

	return &record, nil
}
