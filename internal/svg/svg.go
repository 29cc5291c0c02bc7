// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svg is a small streaming SVG writer.
//
// It keeps a current path and current fill and stroke settings, in
// the manner of a 2-D drawing context. The first write error is
// remembered and returned by Done.
package svg

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"
)

type SVG struct {
	w   io.Writer
	err error

	fill, stroke string
	lineWidth    string
	opacity      string

	path []string
}

func New(w io.Writer, width, height int) *SVG {
	s := &SVG{w: w}
	s.fprintf("<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n", width, height, width, height)
	s.fprintf("<style>.area:hover { stroke:#666; stroke-width:5 }</style>\n")
	s.NewPath()
	return s
}

type svglen float64

func (v svglen) String() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

// ColorToCSS formats c as a CSS color.
func ColorToCSS(c color.Color) string {
	cc := color.NRGBAModel.Convert(c).(color.NRGBA)
	if cc.A == 0xff {
		return fmt.Sprintf("rgb(%d,%d,%d)", cc.R, cc.G, cc.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%v)", cc.R, cc.G, cc.B, svglen(float64(cc.A)/0xff))
}

func (s *SVG) fprintf(format string, a ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

func (s *SVG) escape(text string) {
	if s.err == nil {
		s.err = xml.EscapeText(s.w, []byte(text))
	}
}

// SetFill sets the fill to a CSS color. "" means no fill.
func (s *SVG) SetFill(css string) {
	if css == "" {
		s.fill = ""
	} else {
		s.fill = "fill:" + css
	}
}

// SetFillColor sets the fill to c. nil means no fill.
func (s *SVG) SetFillColor(c color.Color) {
	if c == nil {
		s.SetFill("")
	} else {
		s.SetFill(ColorToCSS(c))
	}
}

// SetStroke sets the stroke to a CSS color. "" means no stroke.
func (s *SVG) SetStroke(css string) {
	if css == "" {
		s.stroke = ""
	} else {
		s.stroke = "stroke:" + css
	}
}

func (s *SVG) SetLineWidth(lw float64) {
	if lw <= 0 {
		s.lineWidth = ""
		return
	}
	s.lineWidth = fmt.Sprintf("stroke-width:%v", svglen(lw))
}

// SetOpacity sets the fill and stroke opacity. Values outside [0, 1)
// reset to fully opaque.
func (s *SVG) SetOpacity(fill, stroke float64) {
	var parts []string
	if fill >= 0 && fill < 1 {
		parts = append(parts, fmt.Sprintf("fill-opacity:%v", svglen(fill)))
	}
	if stroke >= 0 && stroke < 1 {
		parts = append(parts, fmt.Sprintf("stroke-opacity:%v", svglen(stroke)))
	}
	s.opacity = strings.Join(parts, ";")
}

func (s *SVG) style(parts ...string) string {
	val, sep := "", ""
	for _, part := range parts {
		if part != "" {
			val += sep + part
			sep = ";"
		}
	}
	if val != "" {
		return " style=\"" + val + "\""
	}
	return ""
}

func (s *SVG) NewPath() *SVG {
	s.path = []string{}
	return s
}

func (s *SVG) MoveTo(x, y float64) *SVG {
	s.path = append(s.path, fmt.Sprintf("M%v %v", svglen(x), svglen(y)))
	return s
}

func (s *SVG) LineTo(x, y float64) *SVG {
	s.path = append(s.path, fmt.Sprintf("L%v %v", svglen(x), svglen(y)))
	return s
}

func (s *SVG) LineToRel(xd, yd float64) *SVG {
	var op string
	if xd == 0 {
		op = fmt.Sprintf("v%v", svglen(yd))
	} else if yd == 0 {
		op = fmt.Sprintf("h%v", svglen(xd))
	} else {
		op = fmt.Sprintf("l%v %v", svglen(xd), svglen(yd))
	}
	s.path = append(s.path, op)
	return s
}

func (s *SVG) Rect(x, y, w, h float64) *SVG {
	return s.MoveTo(x, y).LineToRel(w, 0).LineToRel(0, h).LineToRel(-w, 0).ClosePath()
}

func (s *SVG) ClosePath() *SVG {
	s.path = append(s.path, "z")
	return s
}

func (s *SVG) pathData() string {
	return strings.Join(s.path, "")
}

func (s *SVG) Stroke() *SVG {
	s.fprintf("<path d=\"%s\"%s/>\n", s.pathData(), s.style("fill:none", s.stroke, s.lineWidth, s.opacity))
	return s.NewPath()
}

func (s *SVG) Fill() *SVG {
	s.fprintf("<path d=\"%s\"%s/>\n", s.pathData(), s.style(s.fill, s.opacity))
	return s.NewPath()
}

// Area fills and strokes the current path as one map area. Holes use
// the even-odd rule. If title is not empty it becomes the area's
// tooltip.
func (s *SVG) Area(title string) *SVG {
	s.fprintf("<path class=\"area\" d=\"%s\" fill-rule=\"evenodd\"%s>", s.pathData(), s.style(s.fill, s.stroke, s.lineWidth, s.opacity))
	if title != "" {
		s.fprintf("<title>")
		s.escape(title)
		s.fprintf("</title>")
	}
	s.fprintf("</path>\n")
	return s.NewPath()
}

// LinearGradient defines a vertical gradient with the given id. stops
// are colors from the top of the gradient to the bottom.
func (s *SVG) LinearGradient(id string, stops []color.Color) {
	s.fprintf("<defs><linearGradient id=\"%s\" x1=\"0\" y1=\"0\" x2=\"0\" y2=\"1\">", id)
	for i, c := range stops {
		off := 0.0
		if len(stops) > 1 {
			off = float64(i) / float64(len(stops)-1)
		}
		s.fprintf("<stop offset=\"%v\" stop-color=\"%s\"/>", svglen(off), ColorToCSS(c))
	}
	s.fprintf("</linearGradient></defs>\n")
}

// FillURL sets the fill to a paint server such as a gradient.
func (s *SVG) FillURL(id string) {
	s.fill = "fill:url(#" + id + ")"
}

type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

type Baseline int

const (
	BaselineAuto Baseline = iota
	BaselineBaseline
	BaselineMiddle
)

type TextOpts struct {
	Anchor   Anchor
	Baseline Baseline
	FontSize float64
	Bold     bool
}

func (s *SVG) Text(x, y float64, opts TextOpts, text string) {
	astr := map[Anchor]string{
		AnchorStart:  "",
		AnchorMiddle: " text-anchor=\"middle\"",
		AnchorEnd:    " text-anchor=\"end\"",
	}[opts.Anchor]
	bstr := map[Baseline]string{
		BaselineAuto:     "",
		BaselineBaseline: " dominant-baseline=\"baseline\"",
		BaselineMiddle:   " dominant-baseline=\"middle\"",
	}[opts.Baseline]
	fstr := ""
	if opts.FontSize != 0 {
		fstr = fmt.Sprintf(" font-size=\"%v\"", svglen(opts.FontSize))
	}
	if opts.Bold {
		fstr += " font-weight=\"bold\""
	}
	s.fprintf("<text x=\"%v\" y=\"%v\"%s%s%s%s>", svglen(x), svglen(y), astr, bstr, fstr, s.style(s.fill))
	s.escape(text)
	s.fprintf("</text>\n")
}

func (s *SVG) Done() error {
	s.fprintf("</svg>\n")
	return s.err
}
