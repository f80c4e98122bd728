package db

import (
	"context"
	"database/sql"
	"time"
)

// SearchHistory is one search the user ran. Converted holds the Japanese
// query that was actually sent to BOOTH when it differs from Keyword.
type SearchHistory struct {
	ID         int64
	Keyword    string
	Converted  sql.NullString
	SearchedAt time.Time
}

type CreateSearchHistoryParams struct {
	Keyword   string
	Converted sql.NullString
}

// KeywordCount aggregates history rows by keyword.
type KeywordCount struct {
	Keyword        string
	Count          int64
	LastSearchedAt time.Time
}

// Repository defines the interface for search history storage.
type Repository interface {
	CreateSearchHistory(ctx context.Context, arg CreateSearchHistoryParams) (SearchHistory, error)
	GetSearchHistory(ctx context.Context, id int64) (SearchHistory, error)
	ListSearchHistory(ctx context.Context, limit int32) ([]SearchHistory, error)
	TopKeywords(ctx context.Context, limit int32) ([]KeywordCount, error)
	DeleteSearchHistory(ctx context.Context, id int64) (int64, error)
	ClearSearchHistory(ctx context.Context) (int64, error)

	// Retention
	DeleteOldSearchHistory(ctx context.Context, before time.Time) (int64, error)

	// Lifecycle
	Ping(ctx context.Context) error
	Close() error
}
