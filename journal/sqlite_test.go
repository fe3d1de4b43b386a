package journal

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) (*SQLiteJournal, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	j, err := NewSQLite(path)
	require.NoError(t, err)

	return j, path
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='cycles'`).Scan(&name)
	assert.NoError(t, err)
	assert.Equal(t, "cycles", name)
}

func TestSQLiteRecordCycle(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)

	started := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	rec := CycleRecord{
		CycleID:  "01J0000000000000000000RUN2",
		Started:  started,
		Finished: started.Add(2 * time.Second),
		Groups:   6,
		Symbols:  39,
		Failures: 1,
	}
	require.NoError(t, j.RecordCycle(rec))
	require.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var (
		id                        string
		groups, symbols, failures int
	)
	err = db.QueryRow(`SELECT cycle_id, group_count, symbol_count, failure_count FROM cycles`).
		Scan(&id, &groups, &symbols, &failures)
	require.NoError(t, err)

	assert.Equal(t, rec.CycleID, id)
	assert.Equal(t, 6, groups)
	assert.Equal(t, 39, symbols)
	assert.Equal(t, 1, failures)
}

func TestSQLiteDuplicateCycleID(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	rec := CycleRecord{CycleID: "DUP", Started: time.Now(), Finished: time.Now()}
	require.NoError(t, j.RecordCycle(rec))
	assert.Error(t, j.RecordCycle(rec))
}

func TestNopJournal(t *testing.T) {
	t.Parallel()

	var j Journal = Nop{}
	assert.NoError(t, j.RecordCycle(CycleRecord{}))
	assert.NoError(t, j.Close())
}
