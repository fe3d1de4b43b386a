// Package journal records per-cycle operational stats (durations, fetch
// and failure counts) for offline inspection. It does not store quotes.
package journal

import "time"

type CycleRecord struct {
	CycleID  string
	Started  time.Time
	Finished time.Time
	Groups   int
	Symbols  int
	Failures int
}

type Journal interface {
	RecordCycle(CycleRecord) error
	Close() error
}

// Nop is the default journal.
type Nop struct{}

func (Nop) RecordCycle(CycleRecord) error { return nil }
func (Nop) Close() error                  { return nil }
