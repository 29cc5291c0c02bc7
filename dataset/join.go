// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"strings"

	"github.com/dluhc/go-choropleth/geojson"
)

// Feature properties read and written by Join.
const (
	GeoIDProperty   = "geo_id"
	ValueProperty   = "density"
	RegionProperty  = "region"
	TooltipProperty = "tooltip"
)

const noData = "No data available"

// Join copies area data into the features of fc, matching each
// feature's geo_id property against the row area codes. Every feature
// gets a value in the valueProp property (ValueProperty if empty), a
// region name and an HTML tooltip listing the hover columns in order.
// Features with no matching row get a null value and the region
// "Unknown".
//
// Join returns the number of features that matched a row.
func Join(fc *geojson.FeatureCollection, rows []Row, hover []string, valueProp string) int {
	if valueProp == "" {
		valueProp = ValueProperty
	}
	byCode := make(map[string]*Row, len(rows))
	for i := range rows {
		byCode[rows[i].AreaCode] = &rows[i]
	}

	matched := 0
	for _, f := range fc.Features {
		row, ok := byCode[f.StringValue(GeoIDProperty)]
		if !ok {
			f.Properties[valueProp] = nil
			f.Properties[RegionProperty] = "Unknown"
			f.Properties[TooltipProperty] = noData
			continue
		}
		matched++

		if row.Value != nil {
			f.Properties[valueProp] = *row.Value
		} else {
			f.Properties[valueProp] = nil
		}
		f.Properties[RegionProperty] = row.Region
		f.Properties[TooltipProperty] = Tooltip(row, hover)
	}
	return matched
}

// Tooltip returns the HTML tooltip for an area.
func Tooltip(row *Row, hover []string) string {
	var b strings.Builder
	b.WriteString("<b>" + row.Region + "</b>")
	if row.Value == nil {
		b.WriteString("<br>" + noData)
		return b.String()
	}
	for _, h := range hover {
		b.WriteString("<br>" + h + ": " + row.Hover[h])
	}
	return b.String()
}
