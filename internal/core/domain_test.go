package core

import (
	"testing"
	"time"
)

func TestDateValidate(t *testing.T) {
	cases := []struct {
		d  Date
		ok bool
	}{
		{NewDate(2025, 1, 1), true},
		{NewDate(2025, 12, 31), true},
		{Date{Time: time.Time{}}, false}, // zero time
	}
	for i, tc := range cases {
		err := tc.d.Validate()
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-02")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if d.Year() != 2025 || d.Month() != time.January || d.Day() != 2 {
		t.Fatalf("unexpected date %v", d)
	}
	if _, err := ParseDate("02/01/2025"); err == nil {
		t.Fatal("expected error for wrong layout")
	}
}

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 1}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Money{Cents: 0}).Validate(); err == nil {
		t.Fatal("expected error for zero")
	}
	if err := (Money{Cents: -5}).Validate(); err == nil {
		t.Fatal("expected error for negative")
	}
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		Amount:      Money{Cents: 100},
		Type:        Expense,
		Category:    "Food",
		Date:        NewDate(2025, 1, 1),
		Description: "groceries",
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Transaction{
		{Amount: Money{Cents: 0}, Type: Expense, Category: "c", Date: NewDate(2025, 1, 1), Description: "abc"},
		{Amount: Money{Cents: 1}, Type: "transfer", Category: "c", Date: NewDate(2025, 1, 1), Description: "abc"},
		{Amount: Money{Cents: 1}, Type: Income, Category: "", Date: NewDate(2025, 1, 1), Description: "abc"},
		{Amount: Money{Cents: 1}, Type: Income, Category: "c", Date: Date{}, Description: "abc"},
		{Amount: Money{Cents: 1}, Type: Income, Category: "c", Date: NewDate(2025, 1, 1), Description: ""},
		{Amount: Money{Cents: 1}, Type: Income, Category: "c", Date: NewDate(2025, 1, 1), Description: "ab"},
	}
	for i, tx := range bads {
		if err := tx.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}
