// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package choropleth

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/tdewolff/minify/v2"
	msvg "github.com/tdewolff/minify/v2/svg"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/html"

	"github.com/dluhc/go-choropleth/colorscale"
	"github.com/dluhc/go-choropleth/dataset"
	"github.com/dluhc/go-choropleth/geojson"
	"github.com/dluhc/go-choropleth/internal/svg"
	"github.com/dluhc/go-choropleth/legend"
	"github.com/dluhc/go-choropleth/scale"
)

const (
	mapMargin   = 10
	legendWidth = 130
	barWidth    = 20
)

type RenderOptions struct {
	Width, Height int

	// NoLegend omits the colorbar.
	NoLegend bool

	// Minify minifies the SVG output.
	Minify bool
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 600
	}
	return o
}

// WriteSVG draws m as an SVG image. Areas are drawn in an
// equirectangular projection fit to the bounds of the features, with
// their tooltips as titles, and the colorbar to the right.
func (m *Map) WriteSVG(w io.Writer, opts RenderOptions) error {
	opts = opts.withDefaults()
	if !opts.Minify {
		return m.writeSVG(w, opts)
	}
	var buf bytes.Buffer
	if err := m.writeSVG(&buf, opts); err != nil {
		return err
	}
	mini := minify.New()
	mini.AddFunc("image/svg+xml", msvg.Minify)
	out, err := mini.Bytes("image/svg+xml", buf.Bytes())
	if err != nil {
		return fmt.Errorf("minifying SVG: %w", err)
	}
	_, err = w.Write(out)
	return err
}

func (m *Map) writeSVG(w io.Writer, opts RenderOptions) error {
	cb, cbErr := m.Legend()
	withLegend := !opts.NoLegend && cbErr == nil && opts.Width > 2*legendWidth

	mapWidth := float64(opts.Width)
	if withLegend {
		mapWidth -= legendWidth
	}
	proj, err := newProjection(m.fc.Bounds(), mapMargin, mapMargin, mapWidth-mapMargin, float64(opts.Height)-mapMargin)
	if err != nil {
		return err
	}

	s := svg.New(w, opts.Width, opts.Height)
	styles := m.styles(m.fc)
	for i, f := range m.fc.Features {
		polys, err := f.Geometry.Polygons()
		if err != nil {
			return fmt.Errorf("feature %d: %w", i, err)
		}
		if len(polys) == 0 {
			continue
		}
		applyStyle(s, styles[i])
		for _, p := range polys {
			for _, ring := range p {
				for j, pt := range ring {
					x, y := proj.Of(pt)
					if j == 0 {
						s.MoveTo(x, y)
					} else {
						s.LineTo(x, y)
					}
				}
				if len(ring) > 0 {
					s.ClosePath()
				}
			}
		}
		s.Area(tooltipText(f.StringValue(dataset.TooltipProperty)))
	}
	s.SetStroke("")
	s.SetLineWidth(0)
	s.SetOpacity(1, 1)

	if withLegend {
		m.drawLegend(s, cb, mapWidth, float64(opts.Height))
	}
	return s.Done()
}

func (m *Map) drawLegend(s *svg.SVG, cb *legend.Colorbar, x0, height float64) {
	top, bottom := float64(2*mapMargin), height-2*mapMargin
	if cb.Title != "" {
		s.SetFill("black")
		s.Text(x0, mapMargin+12, svg.TextOpts{FontSize: 14, Bold: true}, cb.Title)
		top += 20
	}
	if bottom-top < 20 {
		return
	}

	// Gradient stops run from the top of the bar to the bottom.
	g := m.Gradient()
	const nstops = 32
	stops := make([]color.Color, nstops)
	for i := range stops {
		stops[i] = g.ColorAt(1 - float64(i)/(nstops-1))
	}
	if cb.Discrete {
		n := float64(len(cb.Ticks))
		y := scale.NewOutputScale(bottom, top)
		for i := range cb.Ticks {
			y1, _ := y.Of(float64(i) / n)
			y2, _ := y.Of(float64(i+1) / n)
			s.SetFillColor(g.ColorAt((float64(i) + 0.5) / n))
			s.Rect(x0, y2, barWidth, y1-y2).Fill()
		}
	} else {
		s.LinearGradient("colorbar", stops)
		s.FillURL("colorbar")
		s.Rect(x0, top, barWidth, bottom-top).Fill()
	}

	f := ticksFormat{tickLen: 4, textSep: 3, tickColor: "black", labelColor: "black", fontSize: 12}
	f.vTicks(s, cb, scale.NewOutputScale(bottom, top), x0+barWidth)
}

// applyStyle sets the fill and stroke of s from a resolved style.
func applyStyle(s *svg.SVG, st colorscale.Style) {
	fill, _ := st.FillColor()
	s.SetFill(fill)
	stroke, _ := st["color"].(string)
	s.SetStroke(stroke)
	weight, ok := colorscale.Float(st["weight"])
	if !ok {
		weight = 1
	}
	s.SetLineWidth(weight)
	fillOpacity, ok := colorscale.Float(st["fillOpacity"])
	if !ok {
		fillOpacity = 1
	}
	opacity, ok := colorscale.Float(st["opacity"])
	if !ok {
		opacity = 1
	}
	s.SetOpacity(fillOpacity, opacity)
}

// tooltipText converts an HTML tooltip to plain text, turning line
// breaks into newlines and dropping other markup.
func tooltipText(h string) string {
	if h == "" {
		return ""
	}
	var b strings.Builder
	l := html.NewLexer(parse.NewInputString(h))
	for {
		tt, data := l.Next()
		switch tt {
		case html.ErrorToken:
			return strings.TrimSpace(b.String())
		case html.TextToken:
			b.Write(data)
		case html.StartTagToken:
			if strings.EqualFold(string(l.Text()), "br") {
				b.WriteByte('\n')
			}
		}
	}
}

// A projection maps longitude and latitude to SVG coordinates with
// an equirectangular projection centered on the bounds.
type projection struct {
	kx     float64
	xs, ys scale.Linear
	xo, yo scale.OutputScale
}

func newProjection(b geojson.Bounds, x0, y0, x1, y1 float64) (*projection, error) {
	if b.Empty() {
		return nil, fmt.Errorf("map has no area geometry")
	}
	kx := math.Cos((b.Min.Y + b.Max.Y) / 2 * math.Pi / 180)
	dw, dh := (b.Max.X-b.Min.X)*kx, b.Max.Y-b.Min.Y
	if dw <= 0 || dh <= 0 {
		return nil, fmt.Errorf("map bounds %v have no area", b)
	}
	k := math.Min((x1-x0)/dw, (y1-y0)/dh)
	pw, ph := dw*k, dh*k
	cx, cy := x0+(x1-x0-pw)/2, y0+(y1-y0-ph)/2

	p := &projection{kx: kx}
	var err error
	if p.xs, err = scale.NewLinearRange(b.Min.X*kx, b.Max.X*kx); err != nil {
		return nil, err
	}
	if p.ys, err = scale.NewLinearRange(b.Min.Y, b.Max.Y); err != nil {
		return nil, err
	}
	p.xo = scale.NewOutputScale(cx, cx+pw).WithMode(scale.Unclamped)
	// North is up.
	p.yo = scale.NewOutputScale(cy+ph, cy).WithMode(scale.Unclamped)
	return p, nil
}

func (p *projection) Of(pt geojson.Point) (x, y float64) {
	x, _ = p.xo.Of(p.xs.Of(pt.X * p.kx))
	y, _ = p.yo.Of(p.ys.Of(pt.Y))
	return
}
