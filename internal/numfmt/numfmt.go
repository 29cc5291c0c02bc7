// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numfmt formats numbers for map legends.
package numfmt

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// DefaultDecimals asks ThousandsOrMillions to print thousands with as
// many decimals as needed.
const DefaultDecimals = -1

// ThousandsOrMillions abbreviates x, so 1500 becomes "2k" with 0
// thousand decimals (or "1.5k" with DefaultDecimals) and 1234567
// becomes "1.235m". Millions always get 3 decimals.
func ThousandsOrMillions(x float64, thousandDecimals int) string {
	switch {
	case x >= 1e6:
		return strconv.FormatFloat(x/1e6, 'f', 3, 64) + "m"
	case x >= 1e3:
		return strconv.FormatFloat(x/1e3, 'f', thousandDecimals, 64) + "k"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// HumanReadable abbreviates x to 6 significant digits with a bn, m or
// k suffix. Values under a thousand get thousands separators, which
// matters for large negative values.
func HumanReadable(x float64, prefix string) string {
	switch {
	case x >= 1e9:
		return prefix + sig6(x/1e9) + "bn"
	case x >= 1e6:
		return prefix + sig6(x/1e6) + "m"
	case x >= 1e3:
		return prefix + sig6(x/1e3) + "k"
	}
	s := sig6(x)
	if strings.ContainsAny(s, "eE") {
		return prefix + s
	}
	v, _ := strconv.ParseFloat(s, 64)
	return prefix + humanize.Commaf(v)
}

func sig6(x float64) string {
	return strconv.FormatFloat(x, 'g', 6, 64)
}
