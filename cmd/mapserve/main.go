// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command mapserve serves a choropleth map of area data.
//
// mapserve joins area data to GeoJSON boundaries by area code and
// colors each area from a color scale. It serves the styled GeoJSON
// and the scale configuration for browser map layers, along with a
// server-rendered SVG map and PNG colorbar.
//
// # Usage
//
// Area data is a CSV file with Area_Code, Region and Value columns
// plus any columns listed for tooltips. Boundaries are a GeoJSON
// FeatureCollection whose features carry the area code in a geo_id
// property. For example,
//
//	mapserve -geojson areas.geojson -data areas.csv
//
// starts a web server listening by default on localhost:8001.
//
// If DB_DRIVER is set to sqlite or postgres, area data is read with
// DB_QUERY from the database at DB_DSN instead, falling back to the
// CSV file if the database is unavailable. Other settings come from
// the environment: SCALE_CONFIG names a YAML or JSON color scale
// file, HOVER_COLUMNS lists tooltip columns, and LOG_LEVEL sets the
// log level.
//
// Routes
//
//	/           map page
//	/features   styled GeoJSON
//	/hideout    color scale configuration
//	/map.svg    SVG map (width, height, minify, legend)
//	/legend     colorbar ticks as JSON
//	/legend.png colorbar image (width, height)
//	/healthz    liveness
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dluhc/go-choropleth/internal/config"
	"github.com/dluhc/go-choropleth/internal/mapload"
	"github.com/dluhc/go-choropleth/internal/server"
)

func main() {
	cfg := config.FromEnv()
	var (
		flagHttp    = flag.String("http", cfg.HTTPAddr, "serve HTTP on `address`")
		flagGeoJSON = flag.String("geojson", cfg.GeoJSONPath, "read area boundaries from `file`")
		flagData    = flag.String("data", cfg.DataCSV, "read area data from CSV `file`")
		flagScale   = flag.String("scale", cfg.ScaleConfig, "read color scale configuration from `file`")
		flagTitle   = flag.String("title", cfg.Title, "colorbar `title`")
	)
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}
	cfg.HTTPAddr = *flagHttp
	cfg.GeoJSONPath = *flagGeoJSON
	cfg.DataCSV = *flagData
	cfg.ScaleConfig = *flagScale
	cfg.Title = *flagTitle

	log, err := cfg.Logger(os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m, err := mapload.Load(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("loading map")
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.New(m, log, cfg.CORSOrigins).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdown)
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Msg("serving")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("serving")
	}
}
