package core

import (
	"reflect"
	"testing"
)

func tx(amount int64, typ TxType, category string, date Date) Transaction {
	return Transaction{
		Amount:      Money{Cents: amount},
		Type:        typ,
		Category:    category,
		Date:        date,
		Description: "test entry",
	}
}

func TestFilter(t *testing.T) {
	set := []Transaction{
		tx(100, Expense, "Food", NewDate(2025, 1, 1)),
		tx(200, Income, "Salary", NewDate(2025, 1, 2)),
		tx(300, Expense, "Food", NewDate(2025, 1, 3)),
	}

	food := Filter(set, "Food")
	if len(food) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(food))
	}
	for _, e := range food {
		if e.Category != "Food" {
			t.Fatalf("filtered entry has category %q", e.Category)
		}
	}
	// Order of the input is preserved.
	if food[0].Amount.Cents != 100 || food[1].Amount.Cents != 300 {
		t.Fatal("filter must preserve input order")
	}

	if got := Filter(set, ""); !reflect.DeepEqual(got, set) {
		t.Fatal("empty category must return the full set unchanged")
	}
	if got := Filter(set, "Travel"); got != nil {
		t.Fatalf("unknown category expected empty subset, got %v", got)
	}
}

func TestSummarize(t *testing.T) {
	// Scenario from the tracker's reference data set.
	set := []Transaction{
		tx(50000, Expense, "Food", NewDate(2025, 1, 1)),
		tx(100000, Income, "Salary", NewDate(2025, 1, 2)),
	}
	s := Summarize(set)
	if s.TotalIncome.Cents != 100000 {
		t.Errorf("income: expected 100000, got %d", s.TotalIncome.Cents)
	}
	if s.TotalExpense.Cents != 50000 {
		t.Errorf("expense: expected 50000, got %d", s.TotalExpense.Cents)
	}
	if s.Balance.Cents != 50000 {
		t.Errorf("balance: expected 50000, got %d", s.Balance.Cents)
	}

	if got := Summarize(nil); got != (Summary{}) {
		t.Fatalf("empty set expected all zero, got %+v", got)
	}
}

func TestSummarizeAdditive(t *testing.T) {
	a := []Transaction{
		tx(100, Income, "Salary", NewDate(2025, 1, 1)),
		tx(40, Expense, "Food", NewDate(2025, 1, 2)),
	}
	b := []Transaction{
		tx(300, Income, "Gift", NewDate(2025, 2, 1)),
		tx(70, Expense, "Travel", NewDate(2025, 2, 2)),
	}
	union := Summarize(append(append([]Transaction{}, a...), b...))
	sa, sb := Summarize(a), Summarize(b)
	if union.TotalIncome.Cents != sa.TotalIncome.Cents+sb.TotalIncome.Cents {
		t.Error("income totals are not additive")
	}
	if union.TotalExpense.Cents != sa.TotalExpense.Cents+sb.TotalExpense.Cents {
		t.Error("expense totals are not additive")
	}
	if union.Balance.Cents != sa.Balance.Cents+sb.Balance.Cents {
		t.Error("balances are not additive")
	}
}

func TestAggregateByCategory(t *testing.T) {
	set := []Transaction{
		tx(50000, Expense, "Food", NewDate(2025, 1, 1)),
		tx(100000, Income, "Salary", NewDate(2025, 1, 2)),
		tx(2000, Expense, "Travel", NewDate(2025, 1, 3)),
		tx(1500, Expense, "Food", NewDate(2025, 1, 4)),
	}
	got := AggregateByCategory(set)
	want := []CategoryTotal{
		{Category: "Food", Total: Money{Cents: 51500}},
		{Category: "Travel", Total: Money{Cents: 2000}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAggregateByCategoryOmitsIncome(t *testing.T) {
	set := []Transaction{
		tx(100, Income, "Salary", NewDate(2025, 1, 1)),
		tx(200, Income, "Gift", NewDate(2025, 1, 2)),
	}
	if got := AggregateByCategory(set); len(got) != 0 {
		t.Fatalf("all-income set expected empty aggregation, got %v", got)
	}
}

func TestCategories(t *testing.T) {
	set := []Transaction{
		tx(1, Expense, "Food", NewDate(2025, 1, 1)),
		tx(2, Income, "Salary", NewDate(2025, 1, 2)),
		tx(3, Expense, "Food", NewDate(2025, 1, 3)),
		tx(4, Expense, "Travel", NewDate(2025, 1, 4)),
	}
	want := []string{"Food", "Salary", "Travel"}
	if got := Categories(set); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
