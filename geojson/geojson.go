// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geojson reads and writes the subset of GeoJSON (RFC 7946)
// used by area maps: feature collections of polygons and
// multipolygons with free-form properties.
package geojson

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/goccy/go-json"
)

type FeatureCollection struct {
	Type     string     `json:"type"`
	Features []*Feature `json:"features"`
}

type Feature struct {
	Type       string         `json:"type"`
	ID         any            `json:"id,omitempty"`
	Geometry   *Geometry      `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// Geometry holds a geometry's coordinates undecoded until they are
// needed, so that feature collections pass through unchanged.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates,omitempty"`
	Geometries  []*Geometry     `json:"geometries,omitempty"`
}

// Point is a position in longitude, latitude order.
type Point struct {
	X, Y float64
}

// A Polygon is a list of linear rings. The first ring is the exterior
// and any others are holes.
type Polygon [][]Point

// Decode reads a FeatureCollection from r.
func Decode(r io.Reader) (*FeatureCollection, error) {
	var fc FeatureCollection
	if err := json.NewDecoder(r).Decode(&fc); err != nil {
		return nil, fmt.Errorf("decoding GeoJSON: %w", err)
	}
	if fc.Type != "FeatureCollection" {
		return nil, fmt.Errorf("GeoJSON type is %q, want FeatureCollection", fc.Type)
	}
	for i, f := range fc.Features {
		if f == nil {
			return nil, fmt.Errorf("GeoJSON feature %d is null", i)
		}
		if f.Properties == nil {
			f.Properties = make(map[string]any)
		}
	}
	return &fc, nil
}

// ReadFile reads a FeatureCollection from the named file.
func ReadFile(path string) (*FeatureCollection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	fc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fc, nil
}

// Encode writes fc to w as JSON.
func (fc *FeatureCollection) Encode(w io.Writer) error {
	return json.NewEncoder(w).Encode(fc)
}

// Clone returns a copy of fc whose features have their own property
// maps. Geometries are shared.
func (fc *FeatureCollection) Clone() *FeatureCollection {
	out := &FeatureCollection{Type: fc.Type, Features: make([]*Feature, len(fc.Features))}
	for i, f := range fc.Features {
		nf := *f
		nf.Properties = make(map[string]any, len(f.Properties)+1)
		for k, v := range f.Properties {
			nf.Properties[k] = v
		}
		out.Features[i] = &nf
	}
	return out
}

// Value returns the named property of f.
func (f *Feature) Value(name string) (any, bool) {
	v, ok := f.Properties[name]
	return v, ok
}

// StringValue returns the named property of f if it is a string.
func (f *Feature) StringValue(name string) string {
	s, _ := f.Properties[name].(string)
	return s
}

// Polygons returns the polygons making up g. Point and line
// geometries have no area and contribute nothing.
func (g *Geometry) Polygons() ([]Polygon, error) {
	if g == nil {
		return nil, nil
	}
	switch g.Type {
	case "Polygon":
		var rings [][][]float64
		if err := json.Unmarshal(g.Coordinates, &rings); err != nil {
			return nil, fmt.Errorf("decoding Polygon: %w", err)
		}
		p, err := polygon(rings)
		if err != nil {
			return nil, err
		}
		return []Polygon{p}, nil

	case "MultiPolygon":
		var polys [][][][]float64
		if err := json.Unmarshal(g.Coordinates, &polys); err != nil {
			return nil, fmt.Errorf("decoding MultiPolygon: %w", err)
		}
		out := make([]Polygon, 0, len(polys))
		for _, rings := range polys {
			p, err := polygon(rings)
			if err != nil {
				return nil, err
			}
			out = append(out, p)
		}
		return out, nil

	case "GeometryCollection":
		var out []Polygon
		for _, sub := range g.Geometries {
			ps, err := sub.Polygons()
			if err != nil {
				return nil, err
			}
			out = append(out, ps...)
		}
		return out, nil

	case "Point", "MultiPoint", "LineString", "MultiLineString":
		return nil, nil
	}
	return nil, fmt.Errorf("unknown geometry type %q", g.Type)
}

func polygon(rings [][][]float64) (Polygon, error) {
	p := make(Polygon, len(rings))
	for i, ring := range rings {
		p[i] = make([]Point, len(ring))
		for j, pos := range ring {
			if len(pos) < 2 {
				return nil, fmt.Errorf("position has %d coordinates, want at least 2", len(pos))
			}
			p[i][j] = Point{pos[0], pos[1]}
		}
	}
	return p, nil
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max Point
}

// Empty reports whether b contains no points.
func (b Bounds) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

func emptyBounds() Bounds {
	return Bounds{Point{math.Inf(1), math.Inf(1)}, Point{math.Inf(-1), math.Inf(-1)}}
}

func (b *Bounds) extend(p Point) {
	b.Min.X = math.Min(b.Min.X, p.X)
	b.Min.Y = math.Min(b.Min.Y, p.Y)
	b.Max.X = math.Max(b.Max.X, p.X)
	b.Max.Y = math.Max(b.Max.Y, p.Y)
}

// Bounds returns the bounding box of every polygon in fc. Features
// whose geometry cannot be decoded are skipped.
func (fc *FeatureCollection) Bounds() Bounds {
	b := emptyBounds()
	for _, f := range fc.Features {
		polys, err := f.Geometry.Polygons()
		if err != nil {
			continue
		}
		for _, p := range polys {
			for _, ring := range p {
				for _, pt := range ring {
					b.extend(pt)
				}
			}
		}
	}
	return b
}
