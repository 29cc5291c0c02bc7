// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorscale

import (
	"image/color"
	"math"
)

// Discrete colors a feature by using its value as a palette index.
// The value min selects palette entry 0.
//
// A Discrete is immutable and safe for concurrent use.
type Discrete struct {
	palette Palette
	prop    string
	base    Style
	min     float64
}

// NewDiscrete returns a discrete scale reading prop, where value min
// selects the first palette entry.
func NewDiscrete(palette Palette, prop string, base Style, min float64) (*Discrete, error) {
	if palette.Len() == 0 {
		return nil, ErrEmptyPalette
	}
	if math.IsNaN(min) || math.IsInf(min, 0) {
		return nil, domainError(nil)
	}
	return &Discrete{palette: palette, prop: prop, base: base.Clone(), min: min}, nil
}

// Resolve returns the style for f. Missing values and values that do
// not land on a palette index get FallbackColor.
func (d *Discrete) Resolve(f Feature) Style {
	idx, ok := d.index(f)
	if !ok {
		return d.base.withFill(FallbackColor)
	}
	return d.base.withFill(d.palette.hex[idx])
}

func (d *Discrete) index(f Feature) (int, bool) {
	v, ok := value(f, d.prop)
	if !ok {
		return 0, false
	}
	x := v - d.min
	if x < 0 || x >= float64(d.palette.Len()) || x != math.Trunc(x) {
		return 0, false
	}
	return int(x), true
}

// ColorAt returns the palette entry covering normalized position t,
// treating the palette as equal-width steps across [0, 1].
func (d *Discrete) ColorAt(t float64) color.NRGBA {
	n := d.palette.Len()
	x := math.Floor(t * float64(n))
	switch {
	case math.IsNaN(x) || x < 0:
		return d.palette.rgb[0]
	case x >= float64(n):
		return d.palette.rgb[n-1]
	}
	return d.palette.rgb[int(x)]
}

// Min returns the value that selects the first palette entry.
func (d *Discrete) Min() float64 {
	return d.min
}

// Palette returns d's palette.
func (d *Discrete) Palette() Palette {
	return d.palette
}
