// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// Mode controls how an OutputScale treats positions outside [0, 1].
type Mode int

const (
	// Crop rejects positions outside [0, 1].
	Crop Mode = iota
	// Unclamped extrapolates positions outside [0, 1].
	Unclamped
	// Clamp pins positions outside [0, 1] to the nearest end.
	Clamp
)

// OutputScale maps normalized positions in [0, 1] on to [min, max].
// min may be greater than max, which flips the direction, as is
// usual for a vertical pixel axis.
type OutputScale struct {
	min, max float64
	mode     Mode
}

func NewOutputScale(min, max float64) OutputScale {
	return OutputScale{min, max, Crop}
}

// WithMode returns a copy of s using mode m.
func (s OutputScale) WithMode(m Mode) OutputScale {
	s.mode = m
	return s
}

// Of maps x to the output range. ok is false if x was rejected by a
// Crop scale.
func (s OutputScale) Of(x float64) (y float64, ok bool) {
	switch s.mode {
	case Crop:
		if x < 0 || x > 1 {
			return 0, false
		}
	case Clamp:
		if x < 0 {
			x = 0
		} else if x > 1 {
			x = 1
		}
	}
	return x*(s.max-s.min) + s.min, true
}

// Range returns the bounds of the output range.
func (s OutputScale) Range() (min, max float64) {
	return s.min, s.max
}
