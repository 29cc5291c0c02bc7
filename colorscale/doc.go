// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorscale computes the fill style of choropleth map
// features from their attribute values.
//
// There are two kinds of scale. A Continuous scale interpolates along
// a palette, and a Discrete scale uses the value as a palette index.
// Both start from a base style and set only the "fillColor"
// attribute. Resolving a feature never fails: features whose value is
// missing or cannot be placed on the scale are filled with
// FallbackColor, so every feature on a map always has a color.
//
// Scales are usually built from a Config:
//
//	cfg, err := colorscale.LoadConfig("scale.yaml")
//	...
//	r, err := cfg.WithDomain(dataMin, dataMax).Resolver()
//	...
//	style := r.Resolve(colorscale.Properties{"density": 42.0})
package colorscale
