// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package legend computes and draws the colorbar that accompanies a
// choropleth map.
package legend

import (
	"errors"
	"fmt"
	"math"

	mscale "github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/vec"

	"github.com/dluhc/go-choropleth/internal/numfmt"
	"github.com/dluhc/go-choropleth/scale"
)

// DefaultTicks is the number of ticks on a continuous colorbar.
const DefaultTicks = 5

// ErrEmptyRange is returned for a colorbar whose range has no width.
var ErrEmptyRange = errors.New("colorbar range is empty")

// Format selects how tick labels are written.
type Format int

const (
	// FormatThousands writes 2500000 as "2.500m" and thousands
	// with Options.Decimals decimals.
	FormatThousands Format = iota
	// FormatHuman writes 1500 as "1.5k" and 2500000000 as "2.5bn",
	// with commas below one thousand.
	FormatHuman
)

type Options struct {
	Title string

	// Ticks is the number of ticks on a continuous colorbar. If 0,
	// DefaultTicks is used.
	Ticks int

	// Transform is the scale transform of the map ("", "linear",
	// "log" or "sqrt"). Tick positions follow it.
	Transform string

	Format Format
	// Decimals is the number of decimals FormatThousands uses for
	// thousands. numfmt.DefaultDecimals uses as many as needed.
	Decimals int
	// Prefix is prepended to FormatHuman labels, for example "£".
	Prefix string
}

// A Colorbar is the set of labelled ticks along a color gradient.
// Positions are normalized to [0, 1] from the bottom of the bar.
type Colorbar struct {
	Title     string    `json:"title,omitempty"`
	Min       float64   `json:"min"`
	Max       float64   `json:"max"`
	Ticks     []float64 `json:"ticks"`
	Positions []float64 `json:"positions"`
	Labels    []string  `json:"labels"`
	Discrete  bool      `json:"discrete,omitempty"`
}

// New returns the colorbar for a continuous scale over data values in
// [dataMin, dataMax]. The bar always includes zero unless the scale is
// logarithmic.
func New(dataMin, dataMax float64, opts Options) (*Colorbar, error) {
	lo, hi := dataMin, dataMax
	if opts.Transform != "log" {
		lo = math.Min(lo, 0)
	}
	if !(hi > lo) {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrEmptyRange, lo, hi)
	}
	n := opts.Ticks
	if n == 0 {
		n = DefaultTicks
	}
	if n < 2 {
		return nil, fmt.Errorf("colorbar needs at least 2 ticks, got %d", n)
	}

	cb := &Colorbar{Title: opts.Title, Min: lo, Max: hi}
	switch opts.Transform {
	case "", "linear":
		cb.Ticks = vec.Linspace(lo, hi, n)
		cb.Positions = vec.Map(mscale.Linear{Min: lo, Max: hi}.Map, cb.Ticks)
	case "log":
		s, err := scale.NewLog(lo, hi, 10)
		if err != nil {
			return nil, err
		}
		cb.Ticks, _ = s.Ticks(n)
		cb.Positions = vec.Map(s.Of, cb.Ticks)
	default:
		s, err := scale.ByName(opts.Transform, lo, hi)
		if err != nil {
			return nil, err
		}
		cb.Ticks = vec.Linspace(lo, hi, n)
		cb.Positions = vec.Map(s.Of, cb.Ticks)
	}
	cb.Labels = labels(cb.Ticks, opts)
	return cb, nil
}

// NewDiscrete returns the colorbar for a discrete scale with n
// palette entries whose first entry is selected by min. Each tick
// sits in the middle of its color band.
func NewDiscrete(min float64, n int, opts Options) (*Colorbar, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: no classes", ErrEmptyRange)
	}
	cb := &Colorbar{
		Title:     opts.Title,
		Min:       min,
		Max:       min + float64(n-1),
		Ticks:     make([]float64, n),
		Positions: make([]float64, n),
		Discrete:  true,
	}
	for i := range cb.Ticks {
		cb.Ticks[i] = min + float64(i)
		cb.Positions[i] = (float64(i) + 0.5) / float64(n)
	}
	cb.Labels = labels(cb.Ticks, opts)
	return cb, nil
}

func labels(ticks []float64, opts Options) []string {
	out := make([]string, len(ticks))
	for i, x := range ticks {
		switch opts.Format {
		case FormatHuman:
			out[i] = numfmt.HumanReadable(x, opts.Prefix)
		default:
			out[i] = numfmt.ThousandsOrMillions(x, opts.Decimals)
		}
	}
	return out
}
