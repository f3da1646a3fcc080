package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  TxType = "income"
	Expense TxType = "expense"
)

type (
	// TxType is the closed transaction kind enumeration. The sign of every
	// derived figure comes from the type; amounts are stored unsigned.
	TxType string

	// Date is a calendar date pinned to UTC midnight. Time of day is never
	// significant anywhere in the system.
	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Transaction is the sole persisted entity. ID is assigned by the
	// document store on insert and is empty before the first successful
	// write. CreatedAt is informational only: never displayed, never used
	// for sorting.
	Transaction struct {
		ID          string
		Amount      Money
		Type        TxType
		Category    string
		Date        Date
		Description string
		CreatedAt   time.Time
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidType      = errors.New("invalid transaction type")
	ErrEmptyCategory    = errors.New("empty category")
	ErrEmptyDescription = errors.New("empty description")
	ErrShortDescription = errors.New("description too short")
	ErrZeroDate         = errors.New("date cannot be zero")
	ErrFutureDate       = errors.New("date cannot be in the future")
)

// DateLayout is the wire format for dates in the document store.
const DateLayout = "2006-01-02"

func (t TxType) Valid() bool {
	return t == Income || t == Expense
}

// NewDate creates a Date from year, month, day at UTC midnight.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// Today truncates now to UTC midnight.
func Today(now time.Time) Date {
	y, m, d := now.UTC().Date()
	return NewDate(y, int(m), d)
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrZeroDate
	}
	return nil
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Validate checks a fully built transaction before it is handed to a store.
// Form input goes through Draft.Validate first, which reports every
// violation at once; this is the final guard on the domain type.
func (t Transaction) Validate() error {
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if err := t.Date.Validate(); err != nil {
		return err
	}
	desc := strings.TrimSpace(t.Description)
	if desc == "" {
		return ErrEmptyDescription
	}
	if len(desc) < 3 {
		return ErrShortDescription
	}
	return nil
}
