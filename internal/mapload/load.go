// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mapload assembles a choropleth.Map from the files and
// database named in the service configuration.
package mapload

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/dluhc/go-choropleth/choropleth"
	"github.com/dluhc/go-choropleth/colorscale"
	"github.com/dluhc/go-choropleth/dataset"
	"github.com/dluhc/go-choropleth/geojson"
	"github.com/dluhc/go-choropleth/internal/config"
	"github.com/dluhc/go-choropleth/legend"
)

// Load reads the boundaries, area data and scale configuration named
// by cfg and builds the map. A database that cannot be opened is
// logged and skipped in favor of the CSV file.
func Load(ctx context.Context, cfg config.Config, log zerolog.Logger) (*choropleth.Map, error) {
	fc, err := geojson.ReadFile(cfg.GeoJSONPath)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("features", len(fc.Features)).Str("path", cfg.GeoJSONPath).Msg("loaded boundaries")

	var db *sql.DB
	if cfg.DBDriver != "" {
		db, err = dataset.Open(ctx, dataset.Driver(cfg.DBDriver), cfg.DBDSN)
		if err != nil {
			log.Warn().Err(err).Str("driver", cfg.DBDriver).Msg("cannot open database")
			db = nil
		} else {
			defer db.Close()
		}
	}
	src := &dataset.Source{
		DB:           db,
		Query:        cfg.DBQuery,
		CSVPath:      cfg.DataCSV,
		HoverColumns: cfg.HoverColumns,
		Log:          &log,
	}
	rows, err := src.Rows(ctx)
	if err != nil {
		return nil, err
	}

	var sc colorscale.Config
	if cfg.ScaleConfig != "" {
		sc, err = colorscale.LoadConfig(cfg.ScaleConfig)
		if err != nil {
			return nil, err
		}
	}

	m, err := choropleth.New(fc, rows, sc, choropleth.Options{
		HoverColumns: cfg.HoverColumns,
		Legend:       legend.Options{Title: cfg.Title},
	})
	if err != nil {
		return nil, err
	}
	log.Info().
		Int("features", m.Len()).
		Int("matched", m.Matched()).
		Int("rows", len(rows)).
		Msg("map ready")
	return m, nil
}
