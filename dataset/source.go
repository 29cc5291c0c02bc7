// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Source loads area data from a database when one is configured and
// reachable, and otherwise from a CSV file.
type Source struct {
	DB           *sql.DB
	Query        string
	CSVPath      string
	HoverColumns []string

	// Log receives a note of which source was used. If nil,
	// nothing is logged.
	Log *zerolog.Logger
}

// Rows loads the area data.
func (s *Source) Rows(ctx context.Context) ([]Row, error) {
	log := s.Log
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}

	var dbErr error
	if s.DB != nil && s.Query != "" {
		rows, err := QuerySQL(ctx, s.DB, s.Query, s.HoverColumns)
		if err == nil {
			log.Info().Int("rows", len(rows)).Msg("area data source is database")
			return rows, nil
		}
		dbErr = err
		if s.CSVPath == "" {
			return nil, fmt.Errorf("querying area data: %w", err)
		}
		log.Warn().Err(err).Str("csv", s.CSVPath).Msg("database query failed, falling back to CSV")
	}

	if s.CSVPath == "" {
		return nil, errors.New("no area data source configured")
	}
	rows, err := ReadCSVFile(s.CSVPath, s.HoverColumns)
	if err != nil {
		if dbErr != nil {
			return nil, fmt.Errorf("%w (after database error: %v)", err, dbErr)
		}
		return nil, err
	}
	log.Info().Int("rows", len(rows)).Str("csv", s.CSVPath).Msg("area data source is CSV")
	return rows, nil
}
