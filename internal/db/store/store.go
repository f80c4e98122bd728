// Package store picks a search history backend from a database URL.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jusunglee/boothko/internal/db"
	"github.com/jusunglee/boothko/internal/db/postgres"
	"github.com/jusunglee/boothko/internal/db/sqlite"
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// DriverFor reports which backend serves databaseURL. postgres:// and
// postgresql:// URLs go to PostgreSQL; anything else is a SQLite path.
func DriverFor(databaseURL string) Driver {
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}

func Open(ctx context.Context, databaseURL string) (db.Repository, Driver, error) {
	driver := DriverFor(databaseURL)
	switch driver {
	case DriverPostgres:
		repo, err := postgres.New(ctx, databaseURL)
		if err != nil {
			return nil, driver, fmt.Errorf("opening PostgreSQL: %w", err)
		}
		return repo, driver, nil
	default:
		repo, err := sqlite.New(ctx, databaseURL)
		if err != nil {
			return nil, driver, fmt.Errorf("opening SQLite: %w", err)
		}
		return repo, driver, nil
	}
}
