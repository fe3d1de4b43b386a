package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordCycle(r CycleRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO cycles
		(cycle_id, started, finished, group_count, symbol_count, failure_count)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.CycleID, r.Started, r.Finished, r.Groups, r.Symbols, r.Failures,
	)
	return err
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
