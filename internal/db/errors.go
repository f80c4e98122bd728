package db

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
)

var (
	// ErrNoRows is returned when a lookup matches nothing.
	ErrNoRows = errors.New("no rows in result set")

	// ErrEmptyKeyword is returned when saving a blank search.
	ErrEmptyKeyword = errors.New("keyword is empty")
)

// IsNoRows reports whether err means nothing was found, whichever driver
// produced it.
func IsNoRows(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrNoRows) ||
		errors.Is(err, sql.ErrNoRows) ||
		errors.Is(err, pgx.ErrNoRows)
}
