package journal

const Schema = `
CREATE TABLE IF NOT EXISTS cycles (
	cycle_id TEXT PRIMARY KEY,
	started DATETIME NOT NULL,
	finished DATETIME NOT NULL,
	group_count INTEGER NOT NULL,
	symbol_count INTEGER NOT NULL,
	failure_count INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_cycles_started ON cycles(started);
`
