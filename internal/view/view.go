// Package view turns repository snapshots into render-ready page models
// and owns the chart widget lifecycle.
package view

import (
	"sync"

	"tracker/internal/core"
	"tracker/internal/repo"
)

// Row is one rendered table line.
type Row struct {
	ID          string
	Date        string
	Description string
	Category    string
	Type        core.TxType
	Amount      string // signed, derived from type; amounts are stored unsigned
}

// ChartSlice is one category in the expense breakdown chart. Width is the
// bar length as a percentage of the largest slice.
type ChartSlice struct {
	Label  string
	Amount string
	Width  int
}

// Chart is the singleton breakdown widget. Exactly one dataset is live at
// a time: Replace destroys the previous one before deciding whether to
// create a new one, and an empty aggregation leaves the widget destroyed
// so the page shows a distinct empty state instead of a zero-height chart.
type Chart struct {
	slices []ChartSlice
	live   bool
}

// Replace swaps the chart dataset. Passing an empty aggregation destroys
// the widget without creating a replacement.
func (c *Chart) Replace(slices []ChartSlice) {
	c.slices = nil
	c.live = false
	if len(slices) == 0 {
		return
	}
	c.slices = slices
	c.live = true
}

func (c *Chart) Live() bool          { return c.live }
func (c *Chart) Slices() []ChartSlice { return c.slices }

// Page is everything the templates need for one render.
type Page struct {
	Rows         []Row
	Empty        bool
	TotalIncome  string
	TotalExpense string
	Balance      string
	Filter       string
	Categories   []string
	Chart        []ChartSlice
	HasChart     bool
}

// Presenter renders snapshots. It owns the chart widget; Sync is the only
// path that touches it.
type Presenter struct {
	symbol string

	mu    sync.Mutex
	chart Chart
}

func NewPresenter(currencySymbol string) *Presenter {
	return &Presenter{symbol: currencySymbol}
}

// Sync builds the page model from one snapshot: table rows first, then the
// empty indicator, then the three summary figures, then the chart dataset.
// Every step is a pure projection of the snapshot, so calling Sync twice
// with the same snapshot yields the same page.
func (p *Presenter) Sync(snap repo.Snapshot) Page {
	page := Page{
		Filter:     snap.Filter,
		Categories: snap.Categories,
	}

	for _, t := range snap.View {
		page.Rows = append(page.Rows, Row{
			ID:          t.ID,
			Date:        t.Date.Format("Jan 2, 2006"),
			Description: t.Description,
			Category:    t.Category,
			Type:        t.Type,
			Amount:      p.signedAmount(t),
		})
	}

	page.Empty = len(page.Rows) == 0

	page.TotalIncome = p.money(snap.Summary.TotalIncome)
	page.TotalExpense = p.money(snap.Summary.TotalExpense)
	page.Balance = p.money(snap.Summary.Balance)

	p.mu.Lock()
	p.chart.Replace(p.chartSlices(snap.Breakdown))
	page.Chart = p.chart.Slices()
	page.HasChart = p.chart.Live()
	p.mu.Unlock()

	return page
}

// ChartLive reports whether a chart dataset is currently installed.
func (p *Presenter) ChartLive() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.chart.Live()
}

func (p *Presenter) chartSlices(breakdown []core.CategoryTotal) []ChartSlice {
	var maxCents int64
	for _, ct := range breakdown {
		if ct.Total.Cents > maxCents {
			maxCents = ct.Total.Cents
		}
	}
	var out []ChartSlice
	for _, ct := range breakdown {
		width := 0
		if maxCents > 0 && ct.Total.Cents > 0 {
			width = int((ct.Total.Cents*100 + maxCents/2) / maxCents) // rounded percent
			if width < 2 {                                           // keep tiny slices visible
				width = 2
			}
			if width > 100 {
				width = 100
			}
		}
		out = append(out, ChartSlice{
			Label:  ct.Category,
			Amount: p.money(ct.Total),
			Width:  width,
		})
	}
	return out
}

func (p *Presenter) signedAmount(t core.Transaction) string {
	if t.Type == core.Expense {
		return "-" + p.symbol + t.Amount.StringFixed()
	}
	return "+" + p.symbol + t.Amount.StringFixed()
}

func (p *Presenter) money(m core.Money) string {
	if m.Cents < 0 {
		return "-" + p.symbol + (core.Money{Cents: -m.Cents}).StringFixed()
	}
	return p.symbol + m.StringFixed()
}
