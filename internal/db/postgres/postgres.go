package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jusunglee/boothko/internal/db"
)

//go:embed schema.sql
var schemaSQL string

// Repository implements db.Repository using PostgreSQL via pgx
type Repository struct {
	pool *pgxpool.Pool
}

// New connects to databaseURL and ensures the schema exists.
func New(ctx context.Context, databaseURL string) (*Repository, error) {
	pool, err := db.NewPool(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Repository{pool: pool}, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *Repository) Close() error {
	r.pool.Close()
	return nil
}

// PoolStats exposes pool counters for metrics export.
func (r *Repository) PoolStats() *pgxpool.Stat {
	return r.pool.Stat()
}

type searchHistoryRow struct {
	ID         int64
	Keyword    string
	Converted  pgtype.Text
	SearchedAt pgtype.Timestamptz
}

func (row searchHistoryRow) convert() db.SearchHistory {
	h := db.SearchHistory{
		ID:         row.ID,
		Keyword:    row.Keyword,
		SearchedAt: row.SearchedAt.Time,
	}
	if row.Converted.Valid {
		h.Converted = sql.NullString{String: row.Converted.String, Valid: true}
	}
	return h
}

func (r *Repository) CreateSearchHistory(ctx context.Context, arg db.CreateSearchHistoryParams) (db.SearchHistory, error) {
	keyword := strings.TrimSpace(arg.Keyword)
	if keyword == "" {
		return db.SearchHistory{}, db.ErrEmptyKeyword
	}

	converted := pgtype.Text{String: arg.Converted.String, Valid: arg.Converted.Valid}
	row, err := collectOne(r.pool.Query(ctx, `
		INSERT INTO search_history (keyword, converted)
		VALUES ($1, $2)
		RETURNING id, keyword, converted, searched_at
	`, keyword, converted))
	if err != nil {
		return db.SearchHistory{}, err
	}
	return row.convert(), nil
}

func (r *Repository) GetSearchHistory(ctx context.Context, id int64) (db.SearchHistory, error) {
	row, err := collectOne(r.pool.Query(ctx, `
		SELECT id, keyword, converted, searched_at
		FROM search_history WHERE id = $1
	`, id))
	if err != nil {
		return db.SearchHistory{}, err
	}
	return row.convert(), nil
}

func (r *Repository) ListSearchHistory(ctx context.Context, limit int32) ([]db.SearchHistory, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, keyword, converted, searched_at
		FROM search_history
		ORDER BY searched_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}

	results, err := pgx.CollectRows(rows, pgx.RowToStructByPos[searchHistoryRow])
	if err != nil {
		return nil, err
	}

	history := make([]db.SearchHistory, len(results))
	for i, row := range results {
		history[i] = row.convert()
	}
	return history, nil
}

func (r *Repository) TopKeywords(ctx context.Context, limit int32) ([]db.KeywordCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT keyword, COUNT(*) AS searches, MAX(searched_at) AS last_searched_at
		FROM search_history
		GROUP BY keyword
		ORDER BY searches DESC, last_searched_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (db.KeywordCount, error) {
		var c db.KeywordCount
		var last pgtype.Timestamptz
		if err := row.Scan(&c.Keyword, &c.Count, &last); err != nil {
			return db.KeywordCount{}, err
		}
		c.LastSearchedAt = last.Time
		return c, nil
	})
}

func (r *Repository) DeleteSearchHistory(ctx context.Context, id int64) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM search_history WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) ClearSearchHistory(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM search_history`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) DeleteOldSearchHistory(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM search_history WHERE searched_at < $1`, before)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func collectOne(rows pgx.Rows, err error) (searchHistoryRow, error) {
	if err != nil {
		return searchHistoryRow{}, err
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByPos[searchHistoryRow])
	if errors.Is(err, pgx.ErrNoRows) {
		return searchHistoryRow{}, db.ErrNoRows
	}
	return row, err
}
