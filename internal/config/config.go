// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the map service settings, read from the
// environment.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Config struct {
	HTTPAddr string

	GeoJSONPath string
	DataCSV     string

	// DBDriver is "sqlite" or "postgres". If empty, area data is
	// read from DataCSV only.
	DBDriver string
	DBDSN    string
	DBQuery  string

	// ScaleConfig is a YAML or JSON color scale file. If empty, the
	// default palette and the data range are used.
	ScaleConfig string

	HoverColumns []string
	Title        string

	LogLevel  string
	LogPretty bool

	CORSOrigins []string
}

func FromEnv() Config {
	return Config{
		HTTPAddr:     envOr("HTTP_ADDR", "localhost:8001"),
		GeoJSONPath:  envOr("GEOJSON_PATH", "data/areas.geojson"),
		DataCSV:      envOr("DATA_CSV", "data/areas.csv"),
		DBDriver:     os.Getenv("DB_DRIVER"),
		DBDSN:        os.Getenv("DB_DSN"),
		DBQuery:      envOr("DB_QUERY", "SELECT * FROM area_data"),
		ScaleConfig:  os.Getenv("SCALE_CONFIG"),
		HoverColumns: csvOr("HOVER_COLUMNS", "Value"),
		Title:        os.Getenv("MAP_TITLE"),
		LogLevel:     envOr("LOG_LEVEL", envOr("LOGGING_LEVEL", "info")),
		LogPretty:    envBool("LOG_PRETTY", false),
		CORSOrigins:  csvOr("CORS_ORIGINS", "*"),
	}
}

// Logger returns a logger writing to w at c's level.
func (c Config) Logger(w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("bad log level %q: %w", c.LogLevel, err)
	}
	if c.LogPretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
