// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorscale

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrEmptyPalette is returned for a palette with no colors.
	ErrEmptyPalette = errors.New("palette has no colors")

	// ErrBadColor is returned for a palette entry that is not a
	// hexadecimal RGB color.
	ErrBadColor = errors.New("not a hex color")
)

// A Palette is an ordered list of colors. The original strings are
// kept so that discrete scales hand them back exactly as configured.
type Palette struct {
	hex []string
	rgb []color.NRGBA
}

// ParsePalette parses colors written as "#rrggbb" or "#rgb".
func ParsePalette(colors []string) (Palette, error) {
	if len(colors) == 0 {
		return Palette{}, ErrEmptyPalette
	}
	p := Palette{
		hex: append([]string(nil), colors...),
		rgb: make([]color.NRGBA, len(colors)),
	}
	for i, s := range colors {
		if len(s) != 4 && len(s) != 7 {
			return Palette{}, fmt.Errorf("palette entry %d %q: %w", i, s, ErrBadColor)
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return Palette{}, fmt.Errorf("palette entry %d %q: %w", i, s, ErrBadColor)
		}
		r, g, b := c.RGB255()
		p.rgb[i] = color.NRGBA{r, g, b, 0xff}
	}
	return p, nil
}

// Len returns the number of colors in p.
func (p Palette) Len() int {
	return len(p.hex)
}

// Hex returns a copy of the configured color strings.
func (p Palette) Hex() []string {
	return append([]string(nil), p.hex...)
}

// CSS formats c as a CSS rgb() color.
func CSS(c color.NRGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}
