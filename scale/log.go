// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"math"
)

// Log is a logarithmic scale. Values <= 0 have no position on a Log
// scale and map to NaN or -Inf.
type Log struct {
	min, max, base float64
	logMin, denom  float64
}

// NewLog returns a new logarithmic scale over [min, max]. min must be
// positive.
//
// base has no effect on the scaling. It is only used for computing
// tick marks.
func NewLog(min, max, base float64) (*Log, error) {
	if err := checkDomain(min, max); err != nil {
		return nil, err
	}
	if min <= 0 {
		return nil, fmt.Errorf("log scale domain [%v, %v] must be positive", min, max)
	}
	if base <= 1 {
		return nil, fmt.Errorf("log scale base %v must be > 1", base)
	}
	s := &Log{min: min, max: max, base: base}
	s.precompute()
	return s, nil
}

func (s *Log) precompute() {
	s.logMin = math.Log(s.min)
	s.denom = math.Log(s.max) - s.logMin
}

func (s *Log) Of(x float64) float64 {
	return (math.Log(x) - s.logMin) / s.denom
}

// Ticks returns at most n major ticks at powers of the base that fall
// within the domain, plus minor ticks at multiples in between.
func (s *Log) Ticks(n int) (major, minor []float64) {
	if n < 2 {
		panic("n must be >= 2")
	}

	major, minor = []float64{}, []float64{}

	ebase := s.base
	for ; ; ebase *= s.base {
		nticks := 1 + (math.Log(s.max)-math.Log(s.min))/math.Log(ebase)
		if nticks <= float64(n) {
			break
		}
	}

	// Start at the major tick below s.min
	x := math.Pow(ebase, math.Floor(math.Log(s.min)/math.Log(ebase)))
	for x <= s.max {
		for step := 0.0; step < ebase; step += ebase / s.base {
			x2 := x + step*x
			if x2 < s.min {
				continue
			} else if x2 > s.max {
				break
			}

			if step == 0 {
				major = append(major, x2)
			} else {
				minor = append(minor, x2)
			}
		}

		x *= ebase
	}

	return
}
