package core

// CategoryTotal is an expense total keyed by category name.
type CategoryTotal struct {
	Category string
	Total    Money
}

// Summary holds the three running figures derived from a transaction set.
// Balance may be negative; Money.Validate does not apply to derived values.
type Summary struct {
	TotalIncome  Money
	TotalExpense Money
	Balance      Money
}

// Filter returns the subset of set whose category equals category, in the
// same order. The empty category selects everything and returns the input
// unchanged.
func Filter(set []Transaction, category string) []Transaction {
	if category == "" {
		return set
	}
	var out []Transaction
	for _, t := range set {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// Summarize computes income/expense totals and their balance. The empty
// set yields all zeroes.
func Summarize(set []Transaction) Summary {
	var s Summary
	for _, t := range set {
		switch t.Type {
		case Income:
			s.TotalIncome.Cents += t.Amount.Cents
		case Expense:
			s.TotalExpense.Cents += t.Amount.Cents
		}
	}
	s.Balance.Cents = s.TotalIncome.Cents - s.TotalExpense.Cents
	return s
}

// AggregateByCategory groups expense amounts by exact category string,
// preserving first-appearance order. Income entries are ignored entirely.
// First-appearance order is load-bearing: chart colors are assigned by
// position, so reordering would reshuffle them between renders.
//
// A nil result means no expenses in the set, which the presentation layer
// treats as a distinct empty state rather than a zero-height chart.
func AggregateByCategory(set []Transaction) []CategoryTotal {
	var order []string
	totals := make(map[string]int64)
	for _, t := range set {
		if t.Type != Expense {
			continue
		}
		if _, seen := totals[t.Category]; !seen {
			order = append(order, t.Category)
		}
		totals[t.Category] += t.Amount.Cents
	}
	var out []CategoryTotal
	for _, name := range order {
		out = append(out, CategoryTotal{Category: name, Total: Money{Cents: totals[name]}})
	}
	return out
}

// Categories returns the distinct category names of set in first-appearance
// order, income and expense alike. Used to populate the filter selector.
func Categories(set []Transaction) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, t := range set {
		if _, ok := seen[t.Category]; ok {
			continue
		}
		seen[t.Category] = struct{}{}
		out = append(out, t.Category)
	}
	return out
}
