package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	w *csv.Writer
	f *os.File
}

func NewCSV(path string) (*CSVJournal, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"cycle_id", "started", "finished", "groups", "symbols", "failures"}); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{w: w, f: f}, nil
}

func (j *CSVJournal) RecordCycle(r CycleRecord) error {
	err := j.w.Write([]string{
		r.CycleID,
		r.Started.Format(time.RFC3339),
		r.Finished.Format(time.RFC3339),
		strconv.Itoa(r.Groups),
		strconv.Itoa(r.Symbols),
		strconv.Itoa(r.Failures),
	})
	if err != nil {
		return err
	}

	j.w.Flush()
	return j.w.Error()
}

func (j *CSVJournal) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		return err
	}
	return j.f.Close()
}
