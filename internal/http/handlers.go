package http

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"tracker/internal/core"
	"tracker/internal/export"
	"tracker/internal/repo"
	"tracker/internal/store"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	page := s.presenter.Sync(s.repo.Snapshot())
	if err := s.templates.ExecuteTemplate(w, "index.html", page); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", "error", err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "method", r.Method, "url", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">Invalid request format</div>`))
		return
	}

	draft := core.Draft{
		Amount:      sanitizeInput(r.Form.Get("amount")),
		Category:    sanitizeInput(r.Form.Get("category")),
		Type:        sanitizeInput(r.Form.Get("type")),
		Date:        sanitizeInput(r.Form.Get("date")),
		Description: sanitizeInput(r.Form.Get("description")),
	}

	tx, violations := draft.Transaction(time.Now())
	if len(violations) > 0 {
		w.WriteHeader(http.StatusUnprocessableEntity)
		s.writeViolations(w, violations)
		return
	}

	id, err := s.repo.Add(r.Context(), tx)
	if err != nil && !errors.Is(err, repo.ErrStaleView) {
		slog.ErrorContext(r.Context(), "Transaction add error", "error", err,
			"description", tx.Description, "amount_cents", tx.Amount.Cents)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="error">Failed to save transaction</div>`))
		return
	}

	slog.InfoContext(r.Context(), "Transaction created", "id", id, "category", tx.Category)
	w.Header().Set("HX-Trigger", `{"transaction:created": {"id": "`+template.JSEscapeString(id)+`"}}`)
	if errors.Is(err, repo.ErrStaleView) {
		// Saved, but the view lags the store. Retrying the save would
		// duplicate the entry, so report only the refresh failure.
		slog.WarnContext(r.Context(), "Transaction saved but view refresh failed", "id", id, "error", err)
		_, _ = w.Write([]byte(`<div class="notice">Saved, but refreshing the list failed. It will catch up shortly.</div>`))
	}
	s.renderTransactions(w, r)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.Header().Set("Allow", "DELETE")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/transactions/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}

	err := s.repo.Delete(r.Context(), id)
	if err != nil && !errors.Is(err, repo.ErrStaleView) {
		if errors.Is(err, store.ErrNotFound) {
			slog.WarnContext(r.Context(), "Delete of unknown transaction", "id", id)
			http.NotFound(w, r)
			return
		}
		slog.ErrorContext(r.Context(), "Transaction delete error", "error", err, "id", id)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="error">Failed to delete transaction</div>`))
		return
	}

	slog.InfoContext(r.Context(), "Transaction deleted", "id", id)
	w.Header().Set("HX-Trigger", `{"transaction:deleted": {"id": "`+template.JSEscapeString(id)+`"}}`)
	if errors.Is(err, repo.ErrStaleView) {
		slog.WarnContext(r.Context(), "Transaction deleted but view refresh failed", "id", id, "error", err)
		_, _ = w.Write([]byte(`<div class="notice">Deleted, but refreshing the list failed. It will catch up shortly.</div>`))
	}
	s.renderTransactions(w, r)
}

// handleTransactionsPartial re-renders the transactions view, optionally
// switching the category filter first.
func (s *Server) handleTransactionsPartial(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if r.URL.Query().Has("category") {
		s.repo.SetFilter(sanitizeInput(r.URL.Query().Get("category")))
	}
	s.renderTransactions(w, r)
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	if err := export.WriteCSV(w, s.repo.All()); err != nil {
		slog.ErrorContext(r.Context(), "CSV export error", "error", err)
	}
}

// renderTransactions writes the transactions partial from one snapshot.
func (s *Server) renderTransactions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page := s.presenter.Sync(s.repo.Snapshot())

	if s.templates == nil {
		_, _ = w.Write([]byte(`<section id="transactions"><div class="placeholder">Balance: ` +
			template.HTMLEscapeString(page.Balance) + `</div></section>`))
		return
	}
	if err := s.templates.ExecuteTemplate(w, "transactions.html", page); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", "error", err, "template", "transactions.html")
		_, _ = w.Write([]byte(`<section id="transactions"><div class="placeholder">Failed to render transactions</div></section>`))
	}
}

func (s *Server) writeViolations(w http.ResponseWriter, violations []string) {
	var b strings.Builder
	b.WriteString(`<div class="error"><ul>`)
	for _, v := range violations {
		b.WriteString("<li>")
		b.WriteString(template.HTMLEscapeString(v))
		b.WriteString("</li>")
	}
	b.WriteString("</ul></div>")
	_, _ = w.Write([]byte(b.String()))
}

// sanitizeInput removes potentially dangerous characters and trims whitespace
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	// Remove control characters except tab, newline, carriage return
	result := strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1 // remove character
		}
		return r
	}, s)
	return result
}
