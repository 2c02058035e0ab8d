package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// Path and LLM events live in separate ent-managed tables, and per-table
// autoincrement IDs cannot order events across tables. Every append,
// whatever the table, draws its sequence number from this one counter.
//
// Raw SQL because ent has no atomic counter primitive. The RETURNING
// clause makes the draw atomic in the database; the mutex keeps draws
// single-file within the process.
const (
	createSequenceTable = `CREATE TABLE IF NOT EXISTS event_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_value INTEGER NOT NULL DEFAULT 1
	)`
	seedSequenceRow = `INSERT OR IGNORE INTO event_sequence (id, next_value) VALUES (1, 1)`
	drawSequence    = `UPDATE event_sequence SET next_value = next_value + 1 WHERE id = 1 RETURNING next_value - 1`
)

type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	if _, err := db.Exec(createSequenceTable); err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}
	if _, err := db.Exec(seedSequenceRow); err != nil {
		return nil, fmt.Errorf("seed sequence row: %w", err)
	}
	return &sequenceCounter{db: db}, nil
}

// Next draws the next global sequence number.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	if err := sc.db.QueryRowContext(ctx, drawSequence).Scan(&seq); err != nil {
		return 0, fmt.Errorf("draw sequence number: %w", err)
	}
	return seq, nil
}
