// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadCSV reads area data from r. The first record is the header.
// An empty value cell means the area has no data.
func ReadCSV(r io.Reader, hover []string) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	// Spreadsheet exports often start with a byte order mark.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	cols, err := findColumns(header, hover)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		cell := func(i int) string {
			if i < len(rec) {
				return strings.TrimSpace(rec[i])
			}
			return ""
		}
		row := Row{
			AreaCode: cell(cols.code),
			Region:   cell(cols.region),
			Hover:    make(map[string]string, len(hover)),
		}
		if v := cell(cols.value); v != "" {
			x, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad %s %q", line, ValueColumn, v)
			}
			row.Value = &x
		}
		for i, h := range hover {
			row.Hover[h] = cell(cols.hover[i])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadCSVFile reads area data from the named CSV file.
func ReadCSVFile(path string, hover []string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rows, err := ReadCSV(f, hover)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}
