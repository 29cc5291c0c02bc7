// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command maprender draws a choropleth map of area data as an SVG
// image, or its colorbar as a PNG image.
//
// It reads the same files and environment as mapserve. For example,
//
//	maprender -geojson areas.geojson -data areas.csv -o map.svg
//	maprender -geojson areas.geojson -data areas.csv -legend -o legend.png
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dluhc/go-choropleth/choropleth"
	"github.com/dluhc/go-choropleth/internal/config"
	"github.com/dluhc/go-choropleth/internal/mapload"
	"github.com/dluhc/go-choropleth/legend"
)

func main() {
	cfg := config.FromEnv()
	var (
		flagGeoJSON = flag.String("geojson", cfg.GeoJSONPath, "read area boundaries from `file`")
		flagData    = flag.String("data", cfg.DataCSV, "read area data from CSV `file`")
		flagScale   = flag.String("scale", cfg.ScaleConfig, "read color scale configuration from `file`")
		flagTitle   = flag.String("title", cfg.Title, "colorbar `title`")
		flagOut     = flag.String("o", "-", "write image to `file`")
		flagWidth   = flag.Int("w", 0, "image width in pixels")
		flagHeight  = flag.Int("h", 0, "image height in pixels")
		flagLegend  = flag.Bool("legend", false, "draw only the colorbar, as PNG")
		flagMinify  = flag.Bool("minify", false, "minify SVG output")
	)
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}
	cfg.GeoJSONPath = *flagGeoJSON
	cfg.DataCSV = *flagData
	cfg.ScaleConfig = *flagScale
	cfg.Title = *flagTitle

	log, err := cfg.Logger(os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	m, err := mapload.Load(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("loading map")
	}

	var out io.Writer = os.Stdout
	if *flagOut != "-" {
		f, err := os.Create(*flagOut)
		if err != nil {
			log.Fatal().Err(err).Msg("creating output")
		}
		defer f.Close()
		out = f
	}
	bw := bufio.NewWriter(out)

	if *flagLegend {
		cb, err := m.Legend()
		if err == nil {
			err = cb.PNG(bw, m.Gradient(), legend.PNGOptions{Width: *flagWidth, Height: *flagHeight})
		}
		if err != nil {
			log.Fatal().Err(err).Msg("drawing legend")
		}
	} else {
		opts := choropleth.RenderOptions{Width: *flagWidth, Height: *flagHeight, Minify: *flagMinify}
		if err := m.WriteSVG(bw, opts); err != nil {
			log.Fatal().Err(err).Msg("drawing map")
		}
	}
	if err := bw.Flush(); err != nil {
		log.Fatal().Err(err).Msg("writing output")
	}
}
