// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// Linear maps [min, min+width] linearly on to [0, 1].
type Linear struct {
	min, width float64
}

// NewLinear returns a linear scale spanning the values in input.
// input must not be empty.
func NewLinear(input []float64) Linear {
	min, max := minmax(input)
	return Linear{min, max - min}
}

// NewLinearRange returns a linear scale over [min, max]. It is an
// error if min >= max.
func NewLinearRange(min, max float64) (Linear, error) {
	if err := checkDomain(min, max); err != nil {
		return Linear{}, err
	}
	return Linear{min, max - min}, nil
}

func (s Linear) Of(x float64) float64 {
	return (x - s.min) / s.width
}

// Domain returns the bounds of s's input domain.
func (s Linear) Domain() (min, max float64) {
	return s.min, s.min + s.width
}

// Ticks returns n evenly spaced major ticks from the low end of the
// domain to the high end, inclusive. Linear scales have no minor
// ticks.
func (s Linear) Ticks(n int) (major, minor []float64) {
	if n < 2 {
		panic("n must be >= 2")
	}
	major, minor = make([]float64, n), []float64{}
	for i := range major {
		major[i] = float64(i)*s.width/float64(n-1) + s.min
	}
	// Avoid round-off at the top.
	major[n-1] = s.min + s.width
	return
}
