// package repositories provides persistence layer implementations for all model types.
package repositories

import (
	"database/sql"
	"fmt"
)

// runsTable owns the one-row "sync_runs_sequence" counter.
const runsTable = "sync_runs"

// NextSequence reserves the next sequence number for table in its own transaction.
//
// Sequence numbers give runs a human-readable order (run #42).
func NextSequence(db *sql.DB, table string) (int, error) {
	var sequence int
	err := withTx(db, func(tx *sql.Tx) error {
		var err error
		sequence, err = bumpSequence(tx, table)
		return err
	})
	return sequence, err
}

// withTx runs fn in a transaction and commits when fn succeeds.
func withTx(db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// bumpSequence increments the counter row of table and returns the new value.
func bumpSequence(tx *sql.Tx, table string) (int, error) {
	query := fmt.Sprintf("UPDATE %s_sequence SET value = value + 1 WHERE id = 1 RETURNING value", table)

	var sequence int
	if err := tx.QueryRow(query).Scan(&sequence); err != nil {
		return 0, fmt.Errorf("failed to increment %s sequence: %w", table, err)
	}
	return sequence, nil
}
