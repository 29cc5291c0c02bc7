// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorscale

import (
	"image/color"
	"math"

	"github.com/dluhc/go-choropleth/scale"
)

// Continuous colors a feature by interpolating along a palette.
//
// A value is normalized to t = (value - min) / (max - min) and t is
// split into len(palette)-1 equal segments. t is not clamped to
// [0, 1]: a value below min blends along the first segment and a
// value above max along the last, with each channel pinned to
// [0, 255].
//
// A Continuous is immutable and safe for concurrent use.
type Continuous struct {
	palette   Palette
	prop      string
	base      Style
	norm      scale.Interface
	min, max  float64
	transform string
}

// NewContinuous returns a continuous scale reading prop over the
// domain [min, max]. transform names the normalization, see
// scale.ByName; "" is linear.
func NewContinuous(palette Palette, prop string, base Style, min, max float64, transform string) (*Continuous, error) {
	if palette.Len() == 0 {
		return nil, ErrEmptyPalette
	}
	norm, err := scale.ByName(transform, min, max)
	if err != nil {
		return nil, domainError(err)
	}
	return &Continuous{
		palette:   palette,
		prop:      prop,
		base:      base.Clone(),
		norm:      norm,
		min:       min,
		max:       max,
		transform: transform,
	}, nil
}

// Resolve returns the style for f. It never fails: a missing or
// non-numeric value gets FallbackColor.
func (c *Continuous) Resolve(f Feature) Style {
	v, ok := value(f, c.prop)
	if !ok {
		return c.base.withFill(FallbackColor)
	}
	col, ok := c.ColorOf(v)
	if !ok {
		return c.base.withFill(FallbackColor)
	}
	return c.base.withFill(CSS(col))
}

// ColorOf returns the color of value v. ok is false if v has no
// position on the scale, such as a non-positive value on a log scale.
func (c *Continuous) ColorOf(v float64) (col color.NRGBA, ok bool) {
	t := c.norm.Of(v)
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return color.NRGBA{}, false
	}
	return c.ColorAt(t), true
}

// ColorAt returns the palette color at normalized position t.
func (c *Continuous) ColorAt(t float64) color.NRGBA {
	cols := c.palette.rgb
	n := len(cols) - 1
	if n == 0 || math.IsNaN(t) || math.IsInf(t, 0) {
		return cols[0]
	}
	seg := math.Floor(t * float64(n))
	idx := n - 1
	if seg < float64(n-1) {
		idx = 0
		if seg > 0 {
			idx = int(seg)
		}
	}
	local := t*float64(n) - float64(idx)
	return blend(cols[idx], cols[idx+1], local)
}

// Domain returns the configured value domain.
func (c *Continuous) Domain() (min, max float64) {
	return c.min, c.max
}

// Transform returns the name of the normalization transform.
func (c *Continuous) Transform() string {
	return c.transform
}

// Palette returns c's palette.
func (c *Continuous) Palette() Palette {
	return c.palette
}

func blend(c1, c2 color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: channel(c1.R, c2.R, t),
		G: channel(c1.G, c2.G, t),
		B: channel(c1.B, c2.B, t),
		A: 0xff,
	}
}

// channel blends a and b and rounds half up, as Math.round does.
func channel(a, b uint8, t float64) uint8 {
	x := math.Floor((float64(b)-float64(a))*t + float64(a) + 0.5)
	switch {
	case x < 0:
		return 0
	case x > 255:
		return 255
	}
	return uint8(x)
}
