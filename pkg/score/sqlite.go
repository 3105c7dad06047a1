package score

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver
)

const (
	recordSlot = 0

	schemaSQL = `CREATE TABLE IF NOT EXISTS score_record (
	slot  INTEGER PRIMARY KEY,
	value INTEGER NOT NULL
)`
)

// SQLiteStore keeps the record as a single row. A missing row reads as an
// erased record.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path required")
	}
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err = db.ExecContext(context.Background(), schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// ReadScoreRecord implements Store.
func (s *SQLiteStore) ReadScoreRecord() (uint32, error) {
	var v int64
	err := s.db.QueryRow(`SELECT value FROM score_record WHERE slot = ?`, recordSlot).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return ErasedRecord, nil
	}
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// WriteScoreRecord implements Store.
func (s *SQLiteStore) WriteScoreRecord(v uint32) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err = tx.Exec(`DELETE FROM score_record WHERE slot = ?`, recordSlot); err != nil {
		tx.Rollback()
		return err
	}
	if _, err = tx.Exec(`INSERT INTO score_record (slot, value) VALUES (?, ?)`, recordSlot, int64(v)); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// EraseScoreRecord implements Eraser.
func (s *SQLiteStore) EraseScoreRecord() error {
	_, err := s.db.Exec(`DELETE FROM score_record WHERE slot = ?`, recordSlot)
	return err
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
