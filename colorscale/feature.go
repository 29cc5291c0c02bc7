// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorscale

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// A Feature exposes the named attributes of one map feature.
// Value returns ok == false for an absent attribute.
type Feature interface {
	Value(name string) (v any, ok bool)
}

// Properties is a Feature backed by a map, such as the properties
// object of a GeoJSON feature.
type Properties map[string]any

func (p Properties) Value(name string) (any, bool) {
	v, ok := p[name]
	return v, ok
}

// Float converts an attribute value to a number. Strings are trimmed
// and parsed as decimal numbers, or as unsigned integers with a 0x, 0o
// or 0b prefix, close to how a browser coerces them. It returns false
// for nil, empty or non-numeric strings, and NaN.
func Float(v any) (float64, bool) {
	var f float64
	switch v := v.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int8:
		f = float64(v)
	case int16:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint8:
		f = float64(v)
	case uint16:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	case json.Number:
		x, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = x
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		x, err := parseNumber(s)
		if err != nil {
			return 0, false
		}
		f = x
	default:
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

func parseNumber(s string) (float64, error) {
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			return float64(n), err
		}
	}
	return strconv.ParseFloat(s, 64)
}

// value looks up name in f and converts it to a number.
func value(f Feature, name string) (float64, bool) {
	if f == nil {
		return 0, false
	}
	v, ok := f.Value(name)
	if !ok || v == nil {
		return 0, false
	}
	return Float(v)
}
