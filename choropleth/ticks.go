// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package choropleth

import (
	"github.com/dluhc/go-choropleth/internal/svg"
	"github.com/dluhc/go-choropleth/legend"
	"github.com/dluhc/go-choropleth/scale"
)

type ticksFormat struct {
	tickLen, textSep      float64
	tickColor, labelColor string
	fontSize              float64
}

// vTicks draws cb's ticks and labels to the right of a vertical bar
// whose right edge is at x. y maps bar positions to SVG coordinates.
func (f *ticksFormat) vTicks(s *svg.SVG, cb *legend.Colorbar, y scale.OutputScale, x float64) {
	y = y.WithMode(scale.Crop)

	s.SetStroke(f.tickColor)
	s.SetLineWidth(1)
	s.NewPath()
	for _, pos := range cb.Positions {
		if y, ok := y.Of(pos); ok {
			s.MoveTo(x, y)
			s.LineToRel(f.tickLen, 0)
		}
	}
	s.Stroke()
	s.SetStroke("")
	s.SetLineWidth(0)

	lOpts := svg.TextOpts{Baseline: svg.BaselineMiddle, FontSize: f.fontSize}
	s.SetFill(f.labelColor)
	for i, pos := range cb.Positions {
		if i >= len(cb.Labels) {
			break
		}
		if y, ok := y.Of(pos); ok {
			s.Text(x+f.tickLen+f.textSep, y, lOpts, cb.Labels[i])
		}
	}
	s.SetFill("")
}
