package export

import (
	"strings"
	"testing"

	"tracker/internal/core"
)

func tx(t *testing.T, date, desc, category string, typ core.TxType, cents int64) core.Transaction {
	t.Helper()
	d, err := core.ParseDate(date)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", date, err)
	}
	return core.Transaction{
		Amount:      core.Money{Cents: cents},
		Type:        typ,
		Category:    category,
		Date:        d,
		Description: desc,
	}
}

func TestWriteCSV(t *testing.T) {
	set := []core.Transaction{
		tx(t, "2026-08-02", "Groceries", "Food", core.Expense, 50000),
		tx(t, "2026-08-01", "August salary", "Salary", core.Income, 100000),
	}

	var sb strings.Builder
	if err := WriteCSV(&sb, set); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	want := "Date,Description,Category,Type,Amount\n" +
		"8/2/2026,Groceries,Food,expense,500.00\n" +
		"8/1/2026,August salary,Salary,income,1000.00\n"
	if sb.String() != want {
		t.Errorf("csv mismatch:\ngot:\n%s\nwant:\n%s", sb.String(), want)
	}
}

func TestWriteCSVEmptySet(t *testing.T) {
	var sb strings.Builder
	if err := WriteCSV(&sb, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if sb.String() != "Date,Description,Category,Type,Amount\n" {
		t.Errorf("empty export = %q", sb.String())
	}
}

func TestWriteCSVDoesNotQuote(t *testing.T) {
	set := []core.Transaction{
		tx(t, "2026-08-03", "Dinner, drinks", "Food", core.Expense, 8000),
	}
	var sb strings.Builder
	if err := WriteCSV(&sb, set); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if strings.Contains(sb.String(), `"`) {
		t.Errorf("fields must not be quoted: %q", sb.String())
	}
}
