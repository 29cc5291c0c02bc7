// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorscale

import (
	"fmt"
	"math"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseStyle = Style{"weight": 2, "opacity": 1, "color": "white", "fillOpacity": 1}

func mustPalette(t *testing.T, colors ...string) Palette {
	t.Helper()
	p, err := ParsePalette(colors)
	require.NoError(t, err)
	return p
}

func mustContinuous(t *testing.T, min, max float64, colors ...string) *Continuous {
	t.Helper()
	c, err := NewContinuous(mustPalette(t, colors...), "density", baseStyle, min, max, "")
	require.NoError(t, err)
	return c
}

func mustDiscrete(t *testing.T, min float64, colors ...string) *Discrete {
	t.Helper()
	d, err := NewDiscrete(mustPalette(t, colors...), "category", baseStyle, min)
	require.NoError(t, err)
	return d
}

func fill(t *testing.T, s Style) string {
	t.Helper()
	c, ok := s.FillColor()
	require.True(t, ok, "style has no fill color: %v", s)
	return c
}

func TestMissingValueFallsBack(t *testing.T) {
	c := mustContinuous(t, 0, 10, "#000000", "#ffffff")
	d := mustDiscrete(t, 1, "#d7191c", "#fdae61", "#abdda4", "#2b83ba")

	features := map[string]Feature{
		"absent":    Properties{"region": "Nowhere"},
		"null":      Properties{"density": nil, "category": nil},
		"nil props": Properties(nil),
		"nil":       nil,
	}
	for name, f := range features {
		for rname, r := range map[string]Resolver{"continuous": c, "discrete": d} {
			s := r.Resolve(f)
			assert.Equal(t, FallbackColor, fill(t, s), "%s/%s", rname, name)

			delete(s, FillColorKey)
			assert.Equal(t, baseStyle, s, "%s/%s", rname, name)
		}
	}
	assert.Equal(t, "#b1b4b6", FallbackColor)
}

func TestContinuousMidpoint(t *testing.T) {
	c := mustContinuous(t, 0, 10, "#000000", "#ffffff")
	assert.Equal(t, "rgb(128,128,128)", fill(t, c.Resolve(Properties{"density": 5.0})))
	assert.Equal(t, "rgb(0,0,0)", fill(t, c.Resolve(Properties{"density": 0})))
	assert.Equal(t, "rgb(255,255,255)", fill(t, c.Resolve(Properties{"density": int64(10)})))
}

// hexChannels decodes "#rrggbb" without going through the package.
func hexChannels(t *testing.T, s string) [3]float64 {
	v, err := strconv.ParseUint(s[1:], 16, 32)
	require.NoError(t, err)
	return [3]float64{float64(v >> 16), float64(v >> 8 & 0xff), float64(v & 0xff)}
}

func TestContinuousInterpolation(t *testing.T) {
	palette := []string{"#d7191c", "#fdae61", "#abdda4", "#2b83ba"}
	c := mustContinuous(t, 0, 1, palette...)
	n := len(palette) - 1

	for k := 0; k <= 200; k++ {
		v := float64(k) / 200
		tt := v
		idx := int(math.Floor(tt * float64(n)))
		if idx > n-1 {
			idx = n - 1
		}
		local := tt*float64(n) - float64(idx)
		c1, c2 := hexChannels(t, palette[idx]), hexChannels(t, palette[idx+1])
		var want [3]int
		for i := range want {
			want[i] = int(math.Floor(c1[i] + (c2[i]-c1[i])*local + 0.5))
		}
		wantCSS := fmt.Sprintf("rgb(%d,%d,%d)", want[0], want[1], want[2])
		assert.Equal(t, wantCSS, fill(t, c.Resolve(Properties{"density": v})), "value %v", v)
	}
}

func TestContinuousExtrapolation(t *testing.T) {
	c := mustContinuous(t, 0, 10, "#000000", "#ffffff")
	// t = -0.5 blends the first segment at -0.5 and pins to 0.
	assert.Equal(t, "rgb(0,0,0)", fill(t, c.Resolve(Properties{"density": -5.0})))
	assert.Equal(t, "rgb(255,255,255)", fill(t, c.Resolve(Properties{"density": 15.0})))

	c = mustContinuous(t, 0, 10, "#000000", "#646464", "#c8c8c8")
	// t = 1.2: idx clamps to the last segment, local_t = 1.4.
	assert.Equal(t, "rgb(240,240,240)", fill(t, c.Resolve(Properties{"density": 12.0})))
	// t = -0.2: idx clamps to 0, local_t = -0.4, channel -40 pins to 0.
	assert.Equal(t, "rgb(0,0,0)", fill(t, c.Resolve(Properties{"density": -2.0})))
	// t = 0.45: inside the first segment, local_t = 0.9.
	assert.Equal(t, "rgb(90,90,90)", fill(t, c.Resolve(Properties{"density": 4.5})))
}

func TestContinuousIdempotent(t *testing.T) {
	c := mustContinuous(t, 0, 100, "#B0F2BC", "#257D98")
	f := Properties{"density": 37.5}
	first := c.Resolve(f)
	second := c.Resolve(f)
	assert.Equal(t, first, second)

	first["weight"] = 99
	assert.Equal(t, 2, c.Resolve(f)["weight"], "resolved styles must not share storage")
}

func TestContinuousConcurrent(t *testing.T) {
	c := mustContinuous(t, 0, 100, "#B0F2BC", "#257D98")
	want := c.Resolve(Properties{"density": 50.0})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, want, c.Resolve(Properties{"density": 50.0}))
			}
		}()
	}
	wg.Wait()
}

func TestContinuousInvalidValues(t *testing.T) {
	c := mustContinuous(t, 0, 10, "#000000", "#ffffff")
	for _, v := range []any{"abc", "", true, math.NaN(), []int{1}} {
		assert.Equal(t, FallbackColor, fill(t, c.Resolve(Properties{"density": v})), "value %#v", v)
	}
	assert.Equal(t, "rgb(128,128,128)", fill(t, c.Resolve(Properties{"density": " 5 "})))
}

func TestFloatStrings(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12.5", 12.5, true},
		{" -3 ", -3, true},
		{"1e3", 1000, true},
		{"0x10", 16, true},
		{"0X1f", 31, true},
		{"0o17", 15, true},
		{"0b101", 5, true},
		{"010", 10, true},
		{"0x", 0, false},
		{"0xzz", 0, false},
		{"1_000", 0, false},
		{"twelve", 0, false},
	} {
		got, ok := Float(tc.in)
		assert.Equal(t, tc.ok, ok, "Float(%q)", tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got, "Float(%q)", tc.in)
		}
	}
}

func TestContinuousColorAtNonFinite(t *testing.T) {
	c := mustContinuous(t, 0, 10, "#000000", "#646464", "#c8c8c8")
	first := c.ColorAt(0)
	assert.Equal(t, first, c.ColorAt(math.NaN()))
	assert.Equal(t, first, c.ColorAt(math.Inf(1)))
	assert.Equal(t, first, c.ColorAt(math.Inf(-1)))
}

func TestContinuousSingleColor(t *testing.T) {
	c := mustContinuous(t, 0, 10, "#257D98")
	assert.Equal(t, "rgb(37,125,152)", fill(t, c.Resolve(Properties{"density": 3.0})))
}

func TestContinuousEmptyDomain(t *testing.T) {
	_, err := NewContinuous(mustPalette(t, "#000000", "#ffffff"), "density", nil, 5, 5, "")
	assert.ErrorIs(t, err, ErrDomain)
}

func TestContinuousLogTransform(t *testing.T) {
	c, err := NewContinuous(mustPalette(t, "#000000", "#ffffff"), "density", nil, 1, 100, "log")
	require.NoError(t, err)
	assert.Equal(t, "rgb(0,0,0)", fill(t, c.Resolve(Properties{"density": 1.0})))
	assert.Equal(t, "rgb(255,255,255)", fill(t, c.Resolve(Properties{"density": 100.0})))
	// 10 sits halfway along a log scale; allow for round-off in the logs.
	assert.Contains(t, []string{"rgb(127,127,127)", "rgb(128,128,128)"}, fill(t, c.Resolve(Properties{"density": 10.0})))
	// Zero has no position on a log scale.
	assert.Equal(t, FallbackColor, fill(t, c.Resolve(Properties{"density": 0.0})))
}

func TestBaseStyleNotMutated(t *testing.T) {
	base := Style{"weight": 2}
	palette := []string{"#000000", "#ffffff"}
	p := mustPalette(t, palette...)
	c, err := NewContinuous(p, "density", base, 0, 1, "")
	require.NoError(t, err)
	d, err := NewDiscrete(p, "density", base, 0)
	require.NoError(t, err)

	c.Resolve(Properties{"density": 0.5})
	d.Resolve(Properties{"density": 1})
	assert.Equal(t, Style{"weight": 2}, base)
	assert.Equal(t, palette, p.Hex())
}

func TestDiscrete(t *testing.T) {
	d := mustDiscrete(t, 1, "#d7191c", "#fdae61", "#abdda4", "#2b83ba")
	for _, tc := range []struct {
		value any
		want  string
	}{
		{2, "#fdae61"},
		{1.0, "#d7191c"},
		{4, "#2b83ba"},
		{"3", "#abdda4"},
		{10, FallbackColor},
		{5, FallbackColor},
		{0, FallbackColor},
		{-3, FallbackColor},
		{1.5, FallbackColor},
		{"north", FallbackColor},
	} {
		got := fill(t, d.Resolve(Properties{"category": tc.value}))
		assert.Equal(t, tc.want, got, "value %#v", tc.value)
	}
}

func TestDiscreteColorAt(t *testing.T) {
	d := mustDiscrete(t, 0, "#000000", "#ffffff")
	assert.Equal(t, uint8(0), d.ColorAt(0.25).R)
	assert.Equal(t, uint8(255), d.ColorAt(0.75).R)
	assert.Equal(t, uint8(255), d.ColorAt(1).R)
	assert.Equal(t, uint8(0), d.ColorAt(-3).R)
	assert.Equal(t, uint8(0), d.ColorAt(math.NaN()).R)
}

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette([]string{"#fff", "#12436D"})
	require.NoError(t, err)
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, "rgb(255,255,255)", CSS(p.rgb[0]))
	assert.Equal(t, "rgb(18,67,109)", CSS(p.rgb[1]))

	_, err = ParsePalette(nil)
	assert.ErrorIs(t, err, ErrEmptyPalette)

	for _, bad := range []string{"red", "#12345", "#1234567", "123456", "#gggggg"} {
		_, err = ParsePalette([]string{bad})
		assert.ErrorIs(t, err, ErrBadColor, "color %q", bad)
	}
}
