// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset loads the per-area values plotted on a map and
// joins them into GeoJSON features.
//
// Area data is a table with an area code column, a region name
// column, a value column, and any number of extra columns shown in a
// feature's tooltip. It can come from a CSV file or from a SQL query
// against SQLite or Postgres.
package dataset

import (
	"errors"
	"strings"

	"github.com/aclements/go-moremath/stats"
)

// Column names expected in area data.
const (
	AreaCodeColumn = "Area_Code"
	RegionColumn   = "Region"
	ValueColumn    = "Value"
)

// ErrMissingColumn is returned when area data lacks a required or
// requested column.
var ErrMissingColumn = errors.New("missing column")

// Row is the data for one area.
type Row struct {
	AreaCode string
	Region   string
	// Value is nil when the area has no data.
	Value *float64
	// Hover holds the tooltip columns, keyed by column name.
	Hover map[string]string
}

// Bounds returns the smallest and largest present value in rows. ok
// is false if no row has a value.
func Bounds(rows []Row) (min, max float64, ok bool) {
	xs := make([]float64, 0, len(rows))
	for _, r := range rows {
		if r.Value != nil {
			xs = append(xs, *r.Value)
		}
	}
	if len(xs) == 0 {
		return 0, 0, false
	}
	min, max = stats.Bounds(xs)
	return min, max, true
}

// columns locates the required and hover columns in a header row.
// Names match case-insensitively, since some databases fold
// unquoted identifiers to lower case.
type columns struct {
	code, region, value int
	hover               []int
}

func findColumns(header []string, hover []string) (columns, error) {
	find := func(name string) (int, error) {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i, nil
			}
		}
		return -1, &ColumnError{name}
	}
	var c columns
	var err error
	if c.code, err = find(AreaCodeColumn); err != nil {
		return c, err
	}
	if c.region, err = find(RegionColumn); err != nil {
		return c, err
	}
	if c.value, err = find(ValueColumn); err != nil {
		return c, err
	}
	c.hover = make([]int, len(hover))
	for i, h := range hover {
		if c.hover[i], err = find(h); err != nil {
			return c, err
		}
	}
	return c, nil
}

// ColumnError reports a column missing from area data.
type ColumnError struct {
	Column string
}

func (e *ColumnError) Error() string {
	return "missing column " + e.Column
}

func (e *ColumnError) Unwrap() error {
	return ErrMissingColumn
}
