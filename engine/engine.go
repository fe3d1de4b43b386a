// Package engine drives the refresh loop: every interval it fetches all
// catalog groups in order, batch by batch, and hands each group's
// quotes to the rendering boundary as soon as they are in.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/finboard/finboard/catalog"
	"github.com/finboard/finboard/journal"
	"github.com/finboard/finboard/pkg/id"
	"github.com/finboard/finboard/quote"
)

// Renderer is the presentation boundary. The engine calls RenderGroup
// once per group per cycle, in catalog order, then RenderUpdatedAt once
// the full cycle is done.
type Renderer interface {
	RenderGroup(group catalog.Group, quotes []quote.Quote)
	RenderUpdatedAt(t time.Time)
}

type Options struct {
	Interval  time.Duration // sleep between refresh cycles
	BatchSize int           // concurrent fetches per batch
}

type Engine struct {
	catalog  catalog.Catalog
	fetcher  *quote.Fetcher
	renderer Renderer
	journal  journal.Journal
	opts     Options
	log      logrus.FieldLogger
}

func New(cat catalog.Catalog, f *quote.Fetcher, r Renderer, j journal.Journal, opts Options, log logrus.FieldLogger) (*Engine, error) {
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	if opts.Interval <= 0 {
		return nil, fmt.Errorf("refresh interval must be positive, got %s", opts.Interval)
	}
	if opts.BatchSize <= 0 {
		return nil, fmt.Errorf("batch size must be positive, got %d", opts.BatchSize)
	}
	if j == nil {
		j = journal.Nop{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Engine{
		catalog:  cat,
		fetcher:  f,
		renderer: r,
		journal:  j,
		opts:     opts,
		log:      log,
	}, nil
}

// Run refreshes immediately, then once per interval, until ctx is
// cancelled. Cycles never overlap: a cycle that outlasts the interval is
// followed by at most one immediate cycle, not a catch-up burst.
// Cancellation is not an error.
func (e *Engine) Run(ctx context.Context) error {
	ticker := time.NewTicker(e.opts.Interval)
	defer ticker.Stop()

	e.runCycle(ctx)
	for {
		select {
		case <-ctx.Done():
			e.log.Info("refresh loop stopped")
			return nil
		case <-ticker.C:
			e.runCycle(ctx)
		}
	}
}

// runCycle fetches every group in catalog order and forwards each to
// the renderer as soon as it is ready, so tables update group by group.
func (e *Engine) runCycle(ctx context.Context) {
	cycleID := id.New()
	log := e.log.WithField("cycle", cycleID)
	started := time.Now()

	var symbols, failures int
	for _, g := range e.catalog.Groups {
		if ctx.Err() != nil {
			return
		}
		quotes := FetchGroup(ctx, e.fetcher, g.Symbols(), e.opts.BatchSize)
		if ctx.Err() != nil {
			return
		}
		for _, q := range quotes {
			symbols++
			if !q.HasPrice() {
				failures++
			}
		}
		e.renderer.RenderGroup(g, quotes)
	}

	finished := time.Now()
	e.renderer.RenderUpdatedAt(finished)

	log.WithFields(logrus.Fields{
		"symbols":  symbols,
		"failures": failures,
		"took":     finished.Sub(started),
	}).Debug("cycle complete")

	err := e.journal.RecordCycle(journal.CycleRecord{
		CycleID:  cycleID,
		Started:  started,
		Finished: finished,
		Groups:   len(e.catalog.Groups),
		Symbols:  symbols,
		Failures: failures,
	})
	if err != nil {
		log.Warnf("journal cycle: %v", err)
	}
}
