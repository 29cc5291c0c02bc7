// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package legend

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/dluhc/go-choropleth/colorscale"
	"github.com/dluhc/go-choropleth/scale"
)

type PNGOptions struct {
	Width, Height int
	BarWidth      int
	FontSize      float64
}

func (o PNGOptions) withDefaults() PNGOptions {
	if o.Width <= 0 {
		o.Width = 140
	}
	if o.Height <= 0 {
		o.Height = 320
	}
	if o.BarWidth <= 0 {
		o.BarWidth = 24
	}
	if o.FontSize <= 0 {
		o.FontSize = 12
	}
	return o
}

var (
	fontOnce sync.Once
	fontTTF  *truetype.Font
	fontErr  error
)

func loadFont() (*truetype.Font, error) {
	fontOnce.Do(func() {
		fontTTF, fontErr = freetype.ParseFont(goregular.TTF)
	})
	return fontTTF, fontErr
}

const margin = 8

// PNG draws cb as a vertical bar filled from g, with the lowest value
// at the bottom, and writes it to w as a PNG.
func (cb *Colorbar) PNG(w io.Writer, g colorscale.Gradient, opts PNGOptions) error {
	img, err := cb.Image(g, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Image draws cb like PNG but returns the image.
func (cb *Colorbar) Image(g colorscale.Gradient, opts PNGOptions) (*image.NRGBA, error) {
	opts = opts.withDefaults()

	ttf, err := loadFont()
	if err != nil {
		return nil, fmt.Errorf("loading legend font: %w", err)
	}
	fontCtx := freetype.NewContext()
	fontCtx.SetFontSize(opts.FontSize)
	fontCtx.SetSrc(image.Black)
	fontCtx.SetFont(ttf)
	fontBounds := ttf.Bounds(fontCtx.PointToFixed(opts.FontSize))
	labelHeight := int((fontBounds.Max.Y - fontBounds.Min.Y) >> 6)
	ascent := int(fontBounds.Max.Y >> 6)

	img := image.NewNRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	fontCtx.SetDst(img)
	fontCtx.SetClip(img.Bounds())

	top := margin + labelHeight/2
	if cb.Title != "" {
		if _, err := fontCtx.DrawString(cb.Title, freetype.Pt(margin, margin+ascent)); err != nil {
			return nil, err
		}
		top += labelHeight + margin
	}
	bottom := opts.Height - margin - labelHeight/2
	if bottom-top < 2 {
		return nil, fmt.Errorf("legend image %dx%d is too small", opts.Width, opts.Height)
	}
	left, right := margin, margin+opts.BarWidth

	// Pixel rows run top to bottom; the bar runs from position 1 at
	// the top to 0 at the bottom.
	rows, err := scale.NewLinearRange(float64(top), float64(bottom))
	if err != nil {
		return nil, err
	}
	clamp := scale.NewOutputScale(0, 1).WithMode(scale.Clamp)
	for y := top; y < bottom; y++ {
		t, _ := clamp.Of(1 - rows.Of(float64(y)+0.5))
		c := g.ColorAt(t)
		for x := left; x < right; x++ {
			img.SetNRGBA(x, y, c)
		}
	}

	ys := scale.NewOutputScale(float64(bottom), float64(top)).WithMode(scale.Clamp)
	for i, pos := range cb.Positions {
		fy, _ := ys.Of(pos)
		y := int(fy)
		if y >= bottom {
			y = bottom - 1
		}
		for x := right; x < right+4; x++ {
			img.Set(x, y, color.Black)
		}
		if i < len(cb.Labels) {
			pt := freetype.Pt(right+6, y+ascent/2)
			if _, err := fontCtx.DrawString(cb.Labels[i], pt); err != nil {
				return nil, err
			}
		}
	}
	return img, nil
}
