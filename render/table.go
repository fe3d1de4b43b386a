// Package render turns fetched quotes into terminal tables. Formatting
// and coloring are pure functions of a Quote so the engine stays free of
// display concerns.
package render

import (
	"fmt"
	"io"
	"strconv"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/finboard/finboard/catalog"
	"github.com/finboard/finboard/quote"
)

// NoData is shown in place of any value the last cycle could not fetch.
const NoData = "no data"

type Direction int

const (
	Flat Direction = iota
	Up
	Down
)

// ChangeDirection classifies a quote's movement against its previous
// close. No baseline or no data counts as Flat.
func ChangeDirection(q quote.Quote) Direction {
	switch {
	case !q.HasChange():
		return Flat
	case *q.ChangePercent > 0:
		return Up
	case *q.ChangePercent < 0:
		return Down
	default:
		return Flat
	}
}

// FormatPrice renders the price with the given number of decimals, or
// the no-data marker.
func FormatPrice(q quote.Quote, precision int) string {
	if !q.HasPrice() {
		return NoData
	}
	return strconv.FormatFloat(*q.Price, 'f', precision, 64)
}

// FormatChange renders the percent change with an explicit sign, or the
// no-data marker when no baseline is known.
func FormatChange(q quote.Quote) string {
	if !q.HasChange() {
		return NoData
	}
	return fmt.Sprintf("%+.2f%%", *q.ChangePercent)
}

// Table writes one table per instrument group to w. Rising rows print
// red and falling rows blue, matching the dashboard this replaces.
type Table struct {
	mu   sync.Mutex
	w    io.Writer
	up   *color.Color
	down *color.Color
}

func NewTable(w io.Writer) *Table {
	return &Table{
		w:    w,
		up:   color.New(color.FgRed),
		down: color.New(color.FgBlue),
	}
}

func (t *Table) RenderGroup(g catalog.Group, quotes []quote.Quote) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.w, "\n%s\n", g.Name)
	tw := tabwriter.NewWriter(t.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INSTRUMENT\tPRICE (USD)\tCHANGE")
	for i, inst := range g.Instruments {
		var q quote.Quote
		if i < len(quotes) {
			q = quotes[i]
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			inst.Name,
			t.colorize(q, FormatPrice(q, g.PricePrecision())),
			t.colorize(q, FormatChange(q)),
		)
	}
	tw.Flush()
}

func (t *Table) RenderUpdatedAt(ts time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.w, "\nLast updated: %s\n", ts.Format("2006-01-02 15:04:05"))
}

func (t *Table) colorize(q quote.Quote, s string) string {
	switch ChangeDirection(q) {
	case Up:
		return t.up.Sprint(s)
	case Down:
		return t.down.Sprint(s)
	default:
		return s
	}
}
