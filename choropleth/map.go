// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package choropleth builds styled area maps from boundaries, area
// data and a color scale configuration.
package choropleth

import (
	"errors"
	"fmt"
	"image/color"
	"runtime"
	"sync"

	"github.com/dluhc/go-choropleth/colorscale"
	"github.com/dluhc/go-choropleth/dataset"
	"github.com/dluhc/go-choropleth/geojson"
	"github.com/dluhc/go-choropleth/legend"
	"github.com/dluhc/go-choropleth/scale"
)

// StyleProperty is the feature property Styled sets.
const StyleProperty = "style"

// ErrNoData is returned by New when the scale domain is unset and no
// area has a value to derive it from.
var ErrNoData = errors.New("no area has a value")

type Options struct {
	// HoverColumns are the data columns listed in tooltips.
	HoverColumns []string

	// Legend configures the colorbar. If Legend.Title is empty, the
	// first hover column is used.
	Legend legend.Options

	// Workers bounds the goroutines Styled uses. If 0, GOMAXPROCS
	// is used.
	Workers int
}

// A Map is a feature collection joined with area data and the scale
// that colors it. A Map is immutable and safe for concurrent use.
type Map struct {
	fc       *geojson.FeatureCollection
	cfg      colorscale.Config
	resolver colorscale.Resolver
	matched  int
	workers  int

	colorbar    *legend.Colorbar
	colorbarErr error
}

// New joins rows into a copy of fc and builds the scale cfg
// describes. Area values are stored in the property the scale reads.
// An unset cfg.Min or cfg.Max is taken from the data.
func New(fc *geojson.FeatureCollection, rows []dataset.Row, cfg colorscale.Config, opts Options) (*Map, error) {
	cfg, err := cfg.Normalized()
	if err != nil {
		return nil, err
	}
	fc = fc.Clone()
	matched := dataset.Join(fc, rows, opts.HoverColumns, cfg.ColorProp)

	dataMin, dataMax, ok := dataset.Bounds(rows)
	if cfg.Min == nil || (cfg.Max == nil && !cfg.Discrete) {
		if !ok {
			return nil, ErrNoData
		}
		cfg = cfg.WithDomain(dataMin, dataMax)
	}
	if !ok {
		dataMin, dataMax = *cfg.Min, *cfg.Min
		if cfg.Max != nil {
			dataMax = *cfg.Max
		}
	}
	r, err := cfg.Resolver()
	if err != nil {
		return nil, fmt.Errorf("building color scale: %w", err)
	}

	m := &Map{
		fc:       fc,
		cfg:      cfg,
		resolver: r,
		matched:  matched,
		workers:  opts.Workers,
	}
	if m.workers <= 0 {
		m.workers = runtime.GOMAXPROCS(0)
	}

	lopts := opts.Legend
	if lopts.Title == "" && len(opts.HoverColumns) > 0 {
		lopts.Title = opts.HoverColumns[0]
	}
	if cfg.Discrete {
		m.colorbar, m.colorbarErr = legend.NewDiscrete(*cfg.Min, len(cfg.Colorscale), lopts)
	} else {
		lopts.Transform = cfg.Transform
		m.colorbar, m.colorbarErr = legend.New(dataMin, dataMax, lopts)
	}
	return m, nil
}

// Config returns the normalized scale configuration, with the domain
// filled in. It is the hideout a browser map layer needs.
func (m *Map) Config() colorscale.Config {
	c := m.cfg
	c.Colorscale = append([]string(nil), c.Colorscale...)
	c.Style = c.Style.Clone()
	return c
}

// Matched returns the number of features that matched an area row.
func (m *Map) Matched() int {
	return m.matched
}

// Len returns the number of features.
func (m *Map) Len() int {
	return len(m.fc.Features)
}

// Resolve returns the style for f.
func (m *Map) Resolve(f colorscale.Feature) colorscale.Style {
	return m.resolver.Resolve(f)
}

// Features returns a copy of the joined feature collection.
func (m *Map) Features() *geojson.FeatureCollection {
	return m.fc.Clone()
}

// Styled returns a copy of the joined feature collection with each
// feature's resolved style stored in its style property.
func (m *Map) Styled() *geojson.FeatureCollection {
	out := m.fc.Clone()
	styles := m.styles(out)
	for i, f := range out.Features {
		f.Properties[StyleProperty] = styles[i]
	}
	return out
}

// styles resolves every feature of fc using up to m.workers
// goroutines.
func (m *Map) styles(fc *geojson.FeatureCollection) []colorscale.Style {
	styles := make([]colorscale.Style, len(fc.Features))
	work := make(chan int)
	var wg sync.WaitGroup
	for w, n := 0, min(m.workers, len(fc.Features)); w < n; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				styles[i] = m.resolver.Resolve(fc.Features[i])
			}
		}()
	}
	for i := range fc.Features {
		work <- i
	}
	close(work)
	wg.Wait()
	return styles
}

// Legend returns the colorbar for m.
func (m *Map) Legend() (*legend.Colorbar, error) {
	return m.colorbar, m.colorbarErr
}

// Gradient returns the colors along the colorbar, from position 0 at
// the bottom to 1 at the top.
func (m *Map) Gradient() colorscale.Gradient {
	if c, ok := m.resolver.(*colorscale.Continuous); ok && m.colorbar != nil {
		return barGradient{c, scale.NewOutputScale(m.colorbar.Min, m.colorbar.Max).WithMode(scale.Clamp)}
	}
	return m.resolver.(colorscale.Gradient)
}

// barGradient maps colorbar positions back to data values, so the
// bar shows the color each value gets on the map even when the bar
// extends past the scale domain.
type barGradient struct {
	c   *colorscale.Continuous
	bar scale.OutputScale
}

func (g barGradient) ColorAt(t float64) color.NRGBA {
	v, _ := g.bar.Of(t)
	min, max := g.c.Domain()
	if v < min {
		v = min
	} else if v > max {
		v = max
	}
	col, ok := g.c.ColorOf(v)
	if !ok {
		return g.c.ColorAt(0)
	}
	return col
}
