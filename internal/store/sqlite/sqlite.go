// Package sqlite implements the document-store ports on a local SQLite
// database, for single-node deployments that do not want a remote store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite"

	"tracker/internal/core"
	"tracker/internal/store"
)

type Store struct {
	db       *sql.DB
	notifier *store.Notifier
}

var _ store.Store = (*Store)(nil)

func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, notifier: store.NewNotifier()}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) FetchAll(ctx context.Context) ([]core.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, amount_cents, category, type, date, description, created_at
		 FROM transactions`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		var (
			id        int64
			cents     int64
			category  string
			typ       string
			date      string
			desc      string
			createdAt string
		)
		if err := rows.Scan(&id, &cents, &category, &typ, &date, &desc, &createdAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		d, err := core.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("parse date for transaction %d: %w", id, err)
		}
		created, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at for transaction %d: %w", id, err)
		}
		out = append(out, core.Transaction{
			ID:          strconv.FormatInt(id, 10),
			Amount:      core.Money{Cents: cents},
			Type:        core.TxType(typ),
			Category:    category,
			Date:        d,
			Description: desc,
			CreatedAt:   created,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}

func (s *Store) Insert(ctx context.Context, t core.Transaction) (string, error) {
	if err := t.Validate(); err != nil {
		return "", fmt.Errorf("validate transaction: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (amount_cents, category, type, date, description, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		t.Amount.Cents, t.Category, string(t.Type), t.Date.String(),
		t.Description, t.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("insert transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return "", fmt.Errorf("last insert id: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved to SQLite",
		"id", id,
		"type", t.Type,
		"category", t.Category,
		"amount_cents", t.Amount.Cents)

	s.notifier.Notify()
	return strconv.FormatInt(id, 10), nil
}

func (s *Store) DeleteByID(ctx context.Context, id string) error {
	numeric, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: bad id %q", store.ErrNotFound, id)
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, numeric)
	if err != nil {
		return fmt.Errorf("delete transaction %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}

	slog.InfoContext(ctx, "Transaction deleted from SQLite", "id", id)

	s.notifier.Notify()
	return nil
}

// Subscribe delivers in-process change signals. SQLite has no server-side
// change feed, so only this process's own writes are observed.
func (s *Store) Subscribe(ctx context.Context, onChange func()) error {
	return s.notifier.Subscribe(ctx, onChange)
}
