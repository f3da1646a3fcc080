package view

import (
	"testing"
	"time"

	"tracker/internal/core"
	"tracker/internal/repo"
)

func mustDate(t *testing.T, s string) core.Date {
	t.Helper()
	d, err := core.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

func sampleSnapshot(t *testing.T) repo.Snapshot {
	t.Helper()
	txs := []core.Transaction{
		{
			ID:          "1",
			Amount:      core.Money{Cents: 100000},
			Type:        core.Income,
			Category:    "Salary",
			Date:        mustDate(t, "2026-08-01"),
			Description: "August salary",
			CreatedAt:   time.Now(),
		},
		{
			ID:          "2",
			Amount:      core.Money{Cents: 50000},
			Type:        core.Expense,
			Category:    "Food",
			Date:        mustDate(t, "2026-08-02"),
			Description: "Groceries",
			CreatedAt:   time.Now(),
		},
	}
	return repo.Snapshot{
		View:       txs,
		Summary:    core.Summarize(txs),
		Breakdown:  core.AggregateByCategory(txs),
		Categories: core.Categories(txs),
	}
}

func TestSyncBuildsRowsAndSummary(t *testing.T) {
	p := NewPresenter("$")
	page := p.Sync(sampleSnapshot(t))

	if len(page.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(page.Rows))
	}
	if page.Empty {
		t.Fatal("page should not be empty")
	}
	if page.Rows[0].Amount != "+$1000.00" {
		t.Errorf("income amount = %q, want +$1000.00", page.Rows[0].Amount)
	}
	if page.Rows[1].Amount != "-$500.00" {
		t.Errorf("expense amount = %q, want -$500.00", page.Rows[1].Amount)
	}
	if page.TotalIncome != "$1000.00" || page.TotalExpense != "$500.00" || page.Balance != "$500.00" {
		t.Errorf("summary = %q/%q/%q", page.TotalIncome, page.TotalExpense, page.Balance)
	}
}

func TestSyncNegativeBalance(t *testing.T) {
	txs := []core.Transaction{
		{
			ID:          "1",
			Amount:      core.Money{Cents: 30000},
			Type:        core.Expense,
			Category:    "Rent",
			Date:        mustDate(t, "2026-08-01"),
			Description: "Rent payment",
		},
	}
	p := NewPresenter("$")
	page := p.Sync(repo.Snapshot{View: txs, Summary: core.Summarize(txs), Breakdown: core.AggregateByCategory(txs)})

	if page.Balance != "-$300.00" {
		t.Errorf("balance = %q, want -$300.00", page.Balance)
	}
}

func TestSyncChartLifecycle(t *testing.T) {
	p := NewPresenter("$")

	page := p.Sync(sampleSnapshot(t))
	if !page.HasChart || !p.ChartLive() {
		t.Fatal("chart should be live after syncing expenses")
	}
	if len(page.Chart) != 1 || page.Chart[0].Label != "Food" {
		t.Fatalf("unexpected chart slices: %+v", page.Chart)
	}
	if page.Chart[0].Width != 100 {
		t.Errorf("single slice width = %d, want 100", page.Chart[0].Width)
	}

	// All-income set destroys the chart without creating a new one.
	incomeOnly := []core.Transaction{
		{
			ID:          "1",
			Amount:      core.Money{Cents: 100000},
			Type:        core.Income,
			Category:    "Salary",
			Date:        mustDate(t, "2026-08-01"),
			Description: "August salary",
		},
	}
	page = p.Sync(repo.Snapshot{View: incomeOnly, Summary: core.Summarize(incomeOnly), Breakdown: core.AggregateByCategory(incomeOnly)})
	if page.HasChart || p.ChartLive() {
		t.Fatal("chart should be destroyed when there are no expenses")
	}
	if len(page.Chart) != 0 {
		t.Fatalf("expected no slices, got %+v", page.Chart)
	}
}

func TestSyncEmptySnapshot(t *testing.T) {
	p := NewPresenter("$")
	page := p.Sync(repo.Snapshot{})

	if !page.Empty {
		t.Fatal("empty snapshot should mark the page empty")
	}
	if page.HasChart {
		t.Fatal("empty snapshot should not install a chart")
	}
}

func TestChartSliceWidths(t *testing.T) {
	txs := []core.Transaction{
		{ID: "1", Amount: core.Money{Cents: 100000}, Type: core.Expense, Category: "Rent", Date: mustDate(t, "2026-08-01"), Description: "Rent payment"},
		{ID: "2", Amount: core.Money{Cents: 50000}, Type: core.Expense, Category: "Food", Date: mustDate(t, "2026-08-02"), Description: "Groceries"},
		{ID: "3", Amount: core.Money{Cents: 500}, Type: core.Expense, Category: "Coffee", Date: mustDate(t, "2026-08-03"), Description: "Espresso beans"},
	}
	p := NewPresenter("$")
	page := p.Sync(repo.Snapshot{View: txs, Summary: core.Summarize(txs), Breakdown: core.AggregateByCategory(txs)})

	byLabel := map[string]int{}
	for _, s := range page.Chart {
		byLabel[s.Label] = s.Width
	}
	if byLabel["Rent"] != 100 {
		t.Errorf("Rent width = %d, want 100", byLabel["Rent"])
	}
	if byLabel["Food"] != 50 {
		t.Errorf("Food width = %d, want 50", byLabel["Food"])
	}
	if byLabel["Coffee"] != 2 {
		t.Errorf("Coffee width = %d, want minimum 2", byLabel["Coffee"])
	}
}
