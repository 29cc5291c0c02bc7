// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// Power is a linear scale raised to a fixed exponent.
type Power struct {
	lin Linear
	exp float64
}

// NewPower returns a new power scale over [min, max].
func NewPower(min, max, exp float64) (Power, error) {
	lin, err := NewLinearRange(min, max)
	if err != nil {
		return Power{}, err
	}
	return Power{lin, exp}, nil
}

// Of returns the linear position of x raised to the exponent. Below
// the domain the linear position is negative; the sign is carried
// through so the result stays monotonic.
func (s Power) Of(x float64) float64 {
	t := s.lin.Of(x)
	if t < 0 {
		return -math.Pow(-t, s.exp)
	}
	return math.Pow(t, s.exp)
}

func (s Power) Ticks(n int) (major, minor []float64) {
	return s.lin.Ticks(n)
}
