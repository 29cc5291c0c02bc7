// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale maps data values on to normalized positions.
//
// A value at the low end of a scale's domain maps to 0 and a value at
// the high end maps to 1. Values outside the domain are not clamped:
// they map outside [0, 1], and it is up to the caller to decide what
// that means. OutputScale maps normalized positions on to an output
// range such as pixel coordinates.
package scale

// A scale satisfies Interface if it maps from some input domain to
// the interval [0, 1].
type Interface interface {
	Of(x float64) float64
	Ticks(n int) (major, minor []float64)
}

// ByName returns the scale named by transform over the domain
// [min, max]. The empty string selects a linear scale. "log" selects
// a base 10 logarithmic scale and "sqrt" a square-root power scale.
func ByName(transform string, min, max float64) (Interface, error) {
	switch transform {
	case "", "linear":
		return NewLinearRange(min, max)
	case "log":
		return NewLog(min, max, 10)
	case "sqrt":
		return NewPower(min, max, 0.5)
	}
	return nil, &UnknownError{transform}
}

// UnknownError is returned by ByName for an unrecognized transform.
type UnknownError struct {
	Transform string
}

func (e *UnknownError) Error() string {
	return "unknown scale transform " + e.Transform
}
