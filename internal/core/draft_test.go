package core

import (
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 15, 13, 45, 0, 0, time.UTC)

func validDraft() Draft {
	return Draft{
		Amount:      "12.50",
		Category:    "Food",
		Type:        "expense",
		Date:        "2025-06-10",
		Description: "lunch out",
	}
}

func TestDraftValidateOK(t *testing.T) {
	if v := validDraft().Validate(testNow); len(v) != 0 {
		t.Fatalf("expected no violations, got %v", v)
	}
}

func TestDraftValidateReportsEveryViolation(t *testing.T) {
	d := Draft{
		Amount:      "0",
		Category:    "",
		Type:        "expense",
		Date:        "2025-06-10",
		Description: "",
	}
	v := d.Validate(testNow)
	if len(v) != 3 {
		t.Fatalf("expected 3 violations, got %d: %v", len(v), v)
	}
	for _, want := range []string{"description", "amount", "category"} {
		found := false
		for _, msg := range v {
			if strings.Contains(msg, want) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected a %s violation in %v", want, v)
		}
	}
}

func TestDraftValidateDateRules(t *testing.T) {
	cases := []struct {
		date string
		ok   bool
	}{
		{"2025-06-15", true},  // today is accepted regardless of time of day
		{"2025-06-16", false}, // tomorrow is rejected
		{"2025-01-01", true},
		{"", false},
		{"15/06/2025", false},
	}
	for _, tc := range cases {
		d := validDraft()
		d.Date = tc.date
		v := d.Validate(testNow)
		if tc.ok && len(v) != 0 {
			t.Fatalf("date %q expected ok, got %v", tc.date, v)
		}
		if !tc.ok && len(v) != 1 {
			t.Fatalf("date %q expected exactly one violation, got %v", tc.date, v)
		}
	}
}

func TestDraftValidateDescriptionLength(t *testing.T) {
	d := validDraft()
	d.Description = "  ab  " // trimmed length is 2
	v := d.Validate(testNow)
	if len(v) != 1 || !strings.Contains(v[0], "3 characters") {
		t.Fatalf("expected a length violation, got %v", v)
	}
}

func TestDraftValidateType(t *testing.T) {
	d := validDraft()
	d.Type = "transfer"
	v := d.Validate(testNow)
	if len(v) != 1 || !strings.Contains(v[0], "type") {
		t.Fatalf("expected a type violation, got %v", v)
	}
}

func TestDraftTransaction(t *testing.T) {
	tx, violations := validDraft().Transaction(testNow)
	if len(violations) != 0 {
		t.Fatalf("expected ok, got %v", violations)
	}
	if tx.Amount.Cents != 1250 {
		t.Errorf("expected 1250 cents, got %d", tx.Amount.Cents)
	}
	if tx.Type != Expense {
		t.Errorf("expected expense, got %s", tx.Type)
	}
	if tx.Date.String() != "2025-06-10" {
		t.Errorf("unexpected date %s", tx.Date)
	}
	if tx.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
	if tx.ID != "" {
		t.Error("ID must be empty before the first insert")
	}

	bad := validDraft()
	bad.Amount = "nope"
	if _, violations := bad.Transaction(testNow); len(violations) == 0 {
		t.Fatal("expected violations for invalid draft")
	}
}
