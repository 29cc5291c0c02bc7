// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Open opens and pings a database.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:areas.db?mode=ro&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/dashboards?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// QuerySQL runs query and reads area data from its result columns.
// A NULL value means the area has no data.
func QuerySQL(ctx context.Context, db *sql.DB, query string, hover []string) ([]Row, error) {
	rs, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rs.Close()

	header, err := rs.Columns()
	if err != nil {
		return nil, err
	}
	cols, err := findColumns(header, hover)
	if err != nil {
		return nil, err
	}

	cells := make([]sql.NullString, len(header))
	dest := make([]any, len(header))
	for i := range cells {
		dest[i] = &cells[i]
	}

	var rows []Row
	for rs.Next() {
		if err := rs.Scan(dest...); err != nil {
			return nil, err
		}
		row := Row{
			AreaCode: cells[cols.code].String,
			Region:   cells[cols.region].String,
			Hover:    make(map[string]string, len(hover)),
		}
		if v := cells[cols.value]; v.Valid && strings.TrimSpace(v.String) != "" {
			x, err := strconv.ParseFloat(strings.TrimSpace(v.String), 64)
			if err != nil {
				return nil, fmt.Errorf("area %s: bad %s %q", row.AreaCode, ValueColumn, v.String)
			}
			row.Value = &x
		}
		for i, h := range hover {
			row.Hover[h] = cells[cols.hover[i]].String
		}
		rows = append(rows, row)
	}
	return rows, rs.Err()
}
