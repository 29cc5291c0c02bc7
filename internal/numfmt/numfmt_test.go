// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThousandsOrMillions(t *testing.T) {
	for _, tc := range []struct {
		x        float64
		decimals int
		want     string
	}{
		{0, 0, "0"},
		{999, 0, "999"},
		{12.5, 0, "12.5"},
		{1500, 0, "2k"},
		{1500, 1, "1.5k"},
		{1500, DefaultDecimals, "1.5k"},
		{20000, DefaultDecimals, "20k"},
		{1234567, 0, "1.235m"},
		{1e6, 0, "1.000m"},
		{-5000, 0, "-5000"},
	} {
		assert.Equal(t, tc.want, ThousandsOrMillions(tc.x, tc.decimals), "%v/%d", tc.x, tc.decimals)
	}
}

func TestHumanReadable(t *testing.T) {
	for _, tc := range []struct {
		x      float64
		prefix string
		want   string
	}{
		{2.5e9, "£", "£2.5bn"},
		{1234567, "", "1.23457m"},
		{1500, "", "1.5k"},
		{999, "", "999"},
		{-12345, "", "-12,345"},
		{0.25, "", "0.25"},
	} {
		assert.Equal(t, tc.want, HumanReadable(tc.x, tc.prefix), "%v", tc.x)
	}
}
