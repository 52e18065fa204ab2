// SPDX-License-Identifier: MIT

package dataset

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	_ "modernc.org/sqlite"             // registers the "sqlite" database/sql driver

	"github.com/katalvlaran/chartscale/scale"
)

// Registered driver names accepted by OpenSQL.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// Querier is the subset of *sql.DB, *sql.Conn and *sql.Tx used by Query.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// OpenSQL opens and pings a database through one of the registered drivers.
// The caller owns the returned handle.
func OpenSQL(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	switch driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, datasetErrorf(opOpenSQL, fmt.Errorf("%w: driver %q", ErrUnsupportedFormat, driver))
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, datasetErrorf(opOpenSQL, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, datasetErrorf(opOpenSQL, err)
	}
	return db, nil
}

// Query runs query against db and converts the result set with FromRows.
func Query(ctx context.Context, db Querier, query string, args ...any) (scale.Dataset, error) {
	if query == "" {
		return nil, datasetErrorf(opQuery, ErrMissingQuery)
	}
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, datasetErrorf(opQuery, err)
	}
	defer rows.Close()
	return FromRows(rows)
}

// FromRows drains rows into a Dataset keyed by column name. SQL NULL becomes
// null; driver values (int64, float64, string, []byte, time.Time, and
// driver.Valuer types such as pgtype values) go through scale.Of. rows is
// not closed.
func FromRows(rows *sql.Rows) (scale.Dataset, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, datasetErrorf(opFromRows, err)
	}

	data := scale.Dataset{}
	cells := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range cells {
		ptrs[i] = &cells[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, datasetErrorf(opFromRows, err)
		}
		rec := make(scale.Record, len(cols))
		for i, col := range cols {
			rec[col] = scale.Of(cells[i])
			cells[i] = nil
		}
		data = append(data, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, datasetErrorf(opFromRows, err)
	}
	return data, nil
}
