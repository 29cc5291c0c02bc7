// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorscale

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/dluhc/go-choropleth/palettes"
)

// DefaultColorProp is the feature attribute scales read when a Config
// does not name one.
const DefaultColorProp = "density"

// ErrDomain is returned when a scale's value domain is missing or
// unusable.
var ErrDomain = errors.New("invalid scale domain")

func domainError(err error) error {
	if err == nil {
		return ErrDomain
	}
	return fmt.Errorf("%w: %v", ErrDomain, err)
}

// A Resolver computes the style for one feature.
type Resolver interface {
	Resolve(f Feature) Style
}

// A Gradient gives the color at a normalized position, for drawing
// legends.
type Gradient interface {
	ColorAt(t float64) color.NRGBA
}

// Config is the scale configuration handed to a map layer alongside
// its features. Field names follow the dash-leaflet "hideout" object
// so the same document can be served to a browser.
type Config struct {
	// Colorscale lists the palette colors. If empty, Palette names a
	// registered palette instead.
	Colorscale []string `json:"colorscale,omitempty" yaml:"colorscale,omitempty"`
	Palette    string   `json:"palette,omitempty" yaml:"palette,omitempty"`

	// ColorProp is the feature attribute holding the value.
	ColorProp string `json:"colorProp" yaml:"colorProp"`

	// Style is the base style for every feature.
	Style Style `json:"style,omitempty" yaml:"style,omitempty"`

	// Min and Max bound the value domain. A discrete scale only
	// uses Min. Either may be left unset and filled from data with
	// WithDomain.
	Min *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max *float64 `json:"max,omitempty" yaml:"max,omitempty"`

	Discrete  bool   `json:"discrete,omitempty" yaml:"discrete,omitempty"`
	Transform string `json:"transform,omitempty" yaml:"transform,omitempty"`
}

// DefaultStyle is the base style used when a Config has none.
func DefaultStyle() Style {
	return Style{"weight": 2, "opacity": 1, "color": "white", "fillOpacity": 1}
}

// HoverStyle is the style a map layer applies to the feature under
// the pointer.
func HoverStyle() Style {
	return Style{"weight": 5, "color": "#666", "dashArray": ""}
}

// ParseConfig parses a YAML or JSON scale configuration.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parsing scale config: %w", err)
	}
	return c, nil
}

// LoadConfig reads a scale configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	c, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// WithDomain returns a copy of c with Min and Max filled in from
// [min, max] where they are unset.
func (c Config) WithDomain(min, max float64) Config {
	if c.Min == nil {
		c.Min = &min
	}
	if c.Max == nil {
		c.Max = &max
	}
	return c
}

// Normalized returns a copy of c with defaults applied: the palette
// is resolved to colors, and the property name and base style are
// set.
func (c Config) Normalized() (Config, error) {
	if len(c.Colorscale) == 0 {
		name := c.Palette
		if name == "" {
			name = "default"
		}
		p, ok := palettes.Lookup(name)
		if !ok {
			return Config{}, fmt.Errorf("unknown palette %q", name)
		}
		c.Colorscale = p
	} else {
		c.Colorscale = append([]string(nil), c.Colorscale...)
	}
	if c.ColorProp == "" {
		c.ColorProp = DefaultColorProp
	}
	if c.Style == nil {
		c.Style = DefaultStyle()
	} else {
		c.Style = c.Style.Clone()
	}
	return c, nil
}

// Resolver builds the scale c describes.
func (c Config) Resolver() (Resolver, error) {
	c, err := c.Normalized()
	if err != nil {
		return nil, err
	}
	p, err := ParsePalette(c.Colorscale)
	if err != nil {
		return nil, err
	}
	if c.Min == nil {
		return nil, domainError(errors.New("min is unset"))
	}
	if c.Discrete {
		d, err := NewDiscrete(p, c.ColorProp, c.Style, *c.Min)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
	if c.Max == nil {
		return nil, domainError(errors.New("max is unset"))
	}
	cs, err := NewContinuous(p, c.ColorProp, c.Style, *c.Min, *c.Max, c.Transform)
	if err != nil {
		return nil, err
	}
	return cs, nil
}
