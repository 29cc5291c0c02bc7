// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapload

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dluhc/go-choropleth/colorscale"
	"github.com/dluhc/go-choropleth/internal/config"
)

const areas = `{"type": "FeatureCollection", "features": [
  {"type": "Feature", "properties": {"geo_id": "E1"},
   "geometry": {"type": "Polygon", "coordinates": [[[0, 50], [1, 50], [1, 51], [0, 50]]]}},
  {"type": "Feature", "properties": {"geo_id": "E2"},
   "geometry": {"type": "Polygon", "coordinates": [[[1, 50], [2, 50], [2, 51], [1, 50]]]}}
]}`

const data = "Area_Code,Region,Value\nE1,North,5\nE2,South,25\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{
		GeoJSONPath:  writeFile(t, dir, "areas.geojson", areas),
		DataCSV:      writeFile(t, dir, "areas.csv", data),
		ScaleConfig:  writeFile(t, dir, "scale.yaml", "colorscale: ['#000000', '#ffffff']\nmax: 45\n"),
		HoverColumns: []string{"Value"},
		Title:        "Homes",
	}
	var buf bytes.Buffer
	m, err := Load(context.Background(), cfg, zerolog.New(&buf))
	require.NoError(t, err)

	assert.Equal(t, 2, m.Matched())
	c := m.Config()
	assert.Equal(t, 5.0, *c.Min)
	assert.Equal(t, 45.0, *c.Max)
	fill, _ := m.Resolve(colorscale.Properties{"density": 25}).FillColor()
	assert.Equal(t, "rgb(128,128,128)", fill)

	cb, err := m.Legend()
	require.NoError(t, err)
	assert.Equal(t, "Homes", cb.Title)

	assert.Contains(t, buf.String(), "area data source is CSV")
	assert.Contains(t, buf.String(), "map ready")
}

func TestLoadBadDatabaseFallsBack(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{
		GeoJSONPath:  writeFile(t, dir, "areas.geojson", areas),
		DataCSV:      writeFile(t, dir, "areas.csv", data),
		DBDriver:     "oracle",
		HoverColumns: []string{"Value"},
	}
	var buf bytes.Buffer
	m, err := Load(context.Background(), cfg, zerolog.New(&buf))
	require.NoError(t, err)
	assert.Equal(t, 2, m.Matched())
	assert.Contains(t, buf.String(), "cannot open database")
}

func TestLoadMissingFiles(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(context.Background(), config.Config{GeoJSONPath: filepath.Join(dir, "none.geojson")}, zerolog.Nop())
	assert.Error(t, err)

	cfg := config.Config{
		GeoJSONPath: writeFile(t, dir, "areas.geojson", areas),
		DataCSV:     filepath.Join(dir, "none.csv"),
	}
	_, err = Load(context.Background(), cfg, zerolog.Nop())
	assert.Error(t, err)
}
