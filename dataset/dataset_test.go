// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"bytes"
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dluhc/go-choropleth/geojson"
)

const areasCSV = "\ufeffArea_Code,Region,Value,Households\n" +
	"E12000001,North East,12.5,1200\n" +
	"E12000002,North West,,900\n" +
	"E12000003,Yorkshire and The Humber,40,3100\n"

func TestReadCSV(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader(areasCSV), []string{"Households"})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "E12000001", rows[0].AreaCode)
	assert.Equal(t, "North East", rows[0].Region)
	require.NotNil(t, rows[0].Value)
	assert.Equal(t, 12.5, *rows[0].Value)
	assert.Equal(t, "1200", rows[0].Hover["Households"])

	assert.Nil(t, rows[1].Value)
}

func TestReadCSVErrors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("Area_Code,Region\nE1,North\n"), nil)
	assert.ErrorIs(t, err, ErrMissingColumn)

	_, err = ReadCSV(strings.NewReader(areasCSV), []string{"Population"})
	var cerr *ColumnError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "Population", cerr.Column)

	_, err = ReadCSV(strings.NewReader("Area_Code,Region,Value\nE1,North,lots\n"), nil)
	assert.ErrorContains(t, err, "line 2")
}

func TestBounds(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader(areasCSV), nil)
	require.NoError(t, err)
	min, max, ok := Bounds(rows)
	assert.True(t, ok)
	assert.Equal(t, 12.5, min)
	assert.Equal(t, 40.0, max)

	_, _, ok = Bounds([]Row{{AreaCode: "E1"}})
	assert.False(t, ok)
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()
	db, err := Open(ctx, DriverSQLite, "file:"+filepath.Join(t.TempDir(), "areas.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.ExecContext(ctx, `
CREATE TABLE areas (area_code TEXT, region TEXT, value REAL, households INTEGER);
INSERT INTO areas VALUES ('E12000001', 'North East', 12.5, 1200);
INSERT INTO areas VALUES ('E12000002', 'North West', NULL, 900);
`)
	require.NoError(t, err)
	return db
}

func TestQuerySQL(t *testing.T) {
	db := openTestDB(t)
	rows, err := QuerySQL(context.Background(), db,
		"SELECT area_code, region, value, households FROM areas ORDER BY area_code",
		[]string{"Households"})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.NotNil(t, rows[0].Value)
	assert.Equal(t, 12.5, *rows[0].Value)
	assert.Equal(t, "1200", rows[0].Hover["Households"])
	assert.Nil(t, rows[1].Value)
	assert.Equal(t, "North West", rows[1].Region)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), Driver("oracle"), "")
	assert.Error(t, err)
}

func TestSourceFallsBackToCSV(t *testing.T) {
	db := openTestDB(t)
	path := filepath.Join(t.TempDir(), "areas.csv")
	require.NoError(t, os.WriteFile(path, []byte(areasCSV), 0o644))

	var logBuf bytes.Buffer
	log := zerolog.New(&logBuf)
	src := &Source{
		DB:      db,
		Query:   "SELECT * FROM no_such_table",
		CSVPath: path,
		Log:     &log,
	}
	rows, err := src.Rows(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Contains(t, logBuf.String(), "falling back to CSV")

	src.Query = "SELECT area_code, region, value FROM areas"
	rows, err = src.Rows(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Contains(t, logBuf.String(), "area data source is database")
}

func TestSourceNothingConfigured(t *testing.T) {
	_, err := (&Source{}).Rows(context.Background())
	assert.Error(t, err)
}

func TestJoin(t *testing.T) {
	fc, err := geojson.Decode(strings.NewReader(`{"type": "FeatureCollection", "features": [
		{"type": "Feature", "properties": {"geo_id": "E12000001"}, "geometry": null},
		{"type": "Feature", "properties": {"geo_id": "E12000002"}, "geometry": null},
		{"type": "Feature", "properties": {"geo_id": "W92000004"}, "geometry": null}
	]}`))
	require.NoError(t, err)
	rows, err := ReadCSV(strings.NewReader(areasCSV), []string{"Households", "Value"})
	require.NoError(t, err)

	n := Join(fc, rows, []string{"Households", "Value"}, "")
	assert.Equal(t, 2, n)

	p := fc.Features[0].Properties
	assert.Equal(t, 12.5, p[ValueProperty])
	assert.Equal(t, "North East", p[RegionProperty])
	assert.Equal(t, "<b>North East</b><br>Households: 1200<br>Value: 12.5", p[TooltipProperty])

	p = fc.Features[1].Properties
	assert.Nil(t, p[ValueProperty])
	assert.Contains(t, p, ValueProperty)
	assert.Equal(t, "<b>North West</b><br>No data available", p[TooltipProperty])

	p = fc.Features[2].Properties
	assert.Nil(t, p[ValueProperty])
	assert.Equal(t, "Unknown", p[RegionProperty])
	assert.Equal(t, "No data available", p[TooltipProperty])
}

func TestJoinValueProperty(t *testing.T) {
	fc, err := geojson.Decode(strings.NewReader(`{"type": "FeatureCollection", "features": [
		{"type": "Feature", "properties": {"geo_id": "E12000001"}, "geometry": null},
		{"type": "Feature", "properties": {"geo_id": "W92000004"}, "geometry": null}
	]}`))
	require.NoError(t, err)
	rows, err := ReadCSV(strings.NewReader(areasCSV), nil)
	require.NoError(t, err)

	Join(fc, rows, nil, "rate")
	p := fc.Features[0].Properties
	assert.Equal(t, 12.5, p["rate"])
	assert.NotContains(t, p, ValueProperty)
	assert.Contains(t, fc.Features[1].Properties, "rate")
	assert.Nil(t, fc.Features[1].Properties["rate"])
}
