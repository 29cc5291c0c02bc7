// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmptyDomain is returned when a scale's domain has no width.
var ErrEmptyDomain = errors.New("scale domain is empty")

func minmax(xs []float64) (min float64, max float64) {
	min, max = xs[0], xs[0]
	for _, x := range xs {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return
}

func checkDomain(min, max float64) error {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return fmt.Errorf("scale domain [%v, %v] is not finite", min, max)
	}
	if !(min < max) {
		return fmt.Errorf("[%v, %v]: %w", min, max, ErrEmptyDomain)
	}
	return nil
}
