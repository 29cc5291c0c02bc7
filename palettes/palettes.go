// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palettes holds the named color palettes used by dashboard
// maps.
//
// The GOV.UK colors come from https://design-system.service.gov.uk/styles/colour/,
// the Analysis Function colors from the Government Analysis Function
// data visualisation guidance, and the ONS colors from the ONS
// subnational indicators explorer.
package palettes

import "sort"

// MidGrey is the GOV.UK mid grey. Maps use it for features that have
// no usable value.
const MidGrey = "#b1b4b6"

// Default is the continuous palette used when a map does not name one.
var Default = []string{"#B0F2BC", "#257D98"}

var registry = map[string][]string{
	"default": Default,

	// GOV.UK sequential, light to dark.
	"govuk-red":  {"#fbebe8", "#ea9a8e", "#d4351c", "#6a1b0e", "#150503"},
	"govuk-blue": {"#e8f1f8", "#77a9d4", "#1d70b8", "#11436e", "#092237"},

	// Analysis Function. Use at most the first four categorical
	// colors where possible.
	"af-categorical":     {"#12436D", "#28A197", "#801650", "#F46A25", "#3D3D3D", "#A285D1"},
	"af-blue-sequential": {"#12436D", "#2073BC", "#6BACE6"},
	"af-focus":           {"#12436D", "#BFBFBF"},

	// ONS, with orange added to differentiate from CIPFA light blue.
	"ons": {"#206095", "#a8bd3a", "#871a5b", "#f47738"},
}

// Lookup returns a copy of the palette registered as name.
func Lookup(name string) ([]string, bool) {
	p, ok := registry[name]
	if !ok {
		return nil, false
	}
	return append([]string(nil), p...), true
}

// Names returns the registered palette names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
