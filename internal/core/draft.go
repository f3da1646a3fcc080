package core

import (
	"strings"
	"time"
)

// Draft carries raw form field values for a candidate transaction. Nothing
// is parsed or trimmed until Validate runs.
type Draft struct {
	Amount      string
	Category    string
	Type        string
	Date        string
	Description string
}

// Validate checks every field rule independently and returns the complete
// ordered list of human-readable violations. Rules are never
// short-circuited: a draft with a zero amount and an empty description
// yields both messages. An empty slice means the draft is valid.
//
// The future-date rule compares at midnight granularity against now's
// calendar day, so a draft dated today is always accepted regardless of
// time of day.
func (d Draft) Validate(now time.Time) []string {
	var violations []string

	desc := strings.TrimSpace(d.Description)
	if desc == "" {
		violations = append(violations, "description is required")
	} else if len(desc) < 3 {
		violations = append(violations, "description must be at least 3 characters")
	}

	if _, err := ParseAmount(d.Amount); err != nil {
		if strings.TrimSpace(d.Amount) == "" {
			violations = append(violations, "amount is required")
		} else {
			violations = append(violations, "amount must be a positive number")
		}
	}

	if strings.TrimSpace(d.Category) == "" {
		violations = append(violations, "category is required")
	}

	if strings.TrimSpace(d.Date) == "" {
		violations = append(violations, "date is required")
	} else if date, err := ParseDate(d.Date); err != nil {
		violations = append(violations, "date must be a valid YYYY-MM-DD date")
	} else if date.After(Today(now).Time) {
		violations = append(violations, "date cannot be in the future")
	}

	if !TxType(strings.TrimSpace(d.Type)).Valid() {
		violations = append(violations, "type must be income or expense")
	}

	return violations
}

// Transaction builds the domain entity from a valid draft. When the draft
// is invalid the violations are returned and the zero Transaction must be
// discarded. CreatedAt is set once here and never changes.
func (d Draft) Transaction(now time.Time) (Transaction, []string) {
	if violations := d.Validate(now); len(violations) > 0 {
		return Transaction{}, violations
	}
	amount, _ := ParseAmount(d.Amount)
	date, _ := ParseDate(d.Date)
	return Transaction{
		Amount:      amount,
		Type:        TxType(strings.TrimSpace(d.Type)),
		Category:    strings.TrimSpace(d.Category),
		Date:        date,
		Description: strings.TrimSpace(d.Description),
		CreatedAt:   now.UTC(),
	}, nil
}
