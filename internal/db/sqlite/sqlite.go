package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jusunglee/boothko/internal/db"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Fixed-width UTC timestamps so string comparison orders them correctly.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Repository implements db.Repository using SQLite
type Repository struct {
	db  *sql.DB
	now func() time.Time
}

// New opens (or creates) the database at dbPath and applies the schema.
// ":memory:" gives a private in-memory database.
func New(ctx context.Context, dbPath string) (*Repository, error) {
	dbPath = strings.TrimPrefix(dbPath, "sqlite://")

	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite database: %w", err)
	}
	// A single connection serializes writers and keeps :memory: databases
	// from splitting across pool connections.
	sqliteDB.SetMaxOpenConns(1)

	if _, err := sqliteDB.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := sqliteDB.ExecContext(ctx, schemaSQL); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Repository{db: sqliteDB, now: time.Now}, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) CreateSearchHistory(ctx context.Context, arg db.CreateSearchHistoryParams) (db.SearchHistory, error) {
	keyword := strings.TrimSpace(arg.Keyword)
	if keyword == "" {
		return db.SearchHistory{}, db.ErrEmptyKeyword
	}

	result, err := r.db.ExecContext(ctx, `
		INSERT INTO search_history (keyword, converted, searched_at)
		VALUES (?, ?, ?)
	`, keyword, nullString(arg.Converted), formatTime(r.now()))
	if err != nil {
		return db.SearchHistory{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return db.SearchHistory{}, err
	}

	return r.GetSearchHistory(ctx, id)
}

func (r *Repository) GetSearchHistory(ctx context.Context, id int64) (db.SearchHistory, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, keyword, converted, searched_at
		FROM search_history WHERE id = ?
	`, id)

	return scanSearchHistory(row)
}

func (r *Repository) ListSearchHistory(ctx context.Context, limit int32) ([]db.SearchHistory, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, keyword, converted, searched_at
		FROM search_history
		ORDER BY searched_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []db.SearchHistory
	for rows.Next() {
		var h db.SearchHistory
		var searchedAt string
		if err := rows.Scan(&h.ID, &h.Keyword, &h.Converted, &searchedAt); err != nil {
			return nil, err
		}
		h.SearchedAt = parseTime(searchedAt)
		history = append(history, h)
	}
	return history, rows.Err()
}

func (r *Repository) TopKeywords(ctx context.Context, limit int32) ([]db.KeywordCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT keyword, COUNT(*) AS searches, MAX(searched_at) AS last_searched_at
		FROM search_history
		GROUP BY keyword
		ORDER BY searches DESC, last_searched_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []db.KeywordCount
	for rows.Next() {
		var c db.KeywordCount
		var lastSearchedAt string
		if err := rows.Scan(&c.Keyword, &c.Count, &lastSearchedAt); err != nil {
			return nil, err
		}
		c.LastSearchedAt = parseTime(lastSearchedAt)
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *Repository) DeleteSearchHistory(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM search_history WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *Repository) ClearSearchHistory(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM search_history`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *Repository) DeleteOldSearchHistory(ctx context.Context, before time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM search_history WHERE searched_at < ?
	`, formatTime(before))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Helper functions

func scanSearchHistory(row *sql.Row) (db.SearchHistory, error) {
	var h db.SearchHistory
	var searchedAt string
	err := row.Scan(&h.ID, &h.Keyword, &h.Converted, &searchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return db.SearchHistory{}, db.ErrNoRows
	}
	if err != nil {
		return db.SearchHistory{}, err
	}
	h.SearchedAt = parseTime(searchedAt)
	return h, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(timeLayout, s)
	return t
}

func nullString(s sql.NullString) interface{} {
	if s.Valid {
		return s.String
	}
	return nil
}
