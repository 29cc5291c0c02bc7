// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorscale

import "github.com/dluhc/go-choropleth/palettes"

// FillColorKey is the style attribute a resolver sets.
const FillColorKey = "fillColor"

// FallbackColor is the fill for features with a missing or invalid
// value.
const FallbackColor = palettes.MidGrey

// Style maps style attribute names, such as "weight" or "fillOpacity",
// to values.
type Style map[string]any

// Clone returns a shallow copy of s. Clone of a nil Style is an empty,
// non-nil Style.
func (s Style) Clone() Style {
	out := make(Style, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	return out
}

// withFill returns a copy of s with the fill color set to c.
func (s Style) withFill(c string) Style {
	out := s.Clone()
	out[FillColorKey] = c
	return out
}

// FillColor returns the fill color of s, if set.
func (s Style) FillColor() (string, bool) {
	c, ok := s[FillColorKey].(string)
	return c, ok
}
