/*
	Copyright 2025 Google Inc.
	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at
		https://www.apache.org/licenses/LICENSE-2.0
	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

// Package legend groups a chart's series into legend entries (merging
// series with an identical visual legend), chooses the best row/column
// count for a candidate rectangle, and renders the resulting grid.
package legend

import (
	"github.com/chartus/chartus/color"
	"github.com/chartus/chartus/geom"
	"github.com/chartus/chartus/scene"
	"github.com/chartus/chartus/series"
)

// Entry is one legend row: a series name and the swatch used to represent
// it (color, line style, marker).
type Entry struct {
	Name        string
	Color       color.Color
	LineWidthPt float64
	Dash        []float64
	Marker      series.MarkerShape
	HasLine     bool
	HasMarker   bool
}

// visualKey identifies entries with an equivalent visual legend, so
// series sharing one are merged into a single entry.
type visualKey struct {
	color     color.Color
	lineWidth float64
	marker    series.MarkerShape
	hasLine   bool
	hasMarker bool
}

// Group merges entries sharing a visual key, concatenating their names
// (joined with ", ") into a single merged entry, preserving first-seen
// order.
func Group(entries []Entry) []Entry {
	order := make([]visualKey, 0, len(entries))
	merged := make(map[visualKey]*Entry)
	for _, e := range entries {
		k := visualKey{e.Color, e.LineWidthPt, e.Marker, e.HasLine, e.HasMarker}
		if existing, ok := merged[k]; ok {
			existing.Name += ", " + e.Name
			continue
		}
		copy := e
		merged[k] = &copy
		order = append(order, k)
	}
	out := make([]Entry, 0, len(order))
	for _, k := range order {
		out = append(out, *merged[k])
	}
	return out
}

// Layout is a resolved row/column count for laying out n legend entries.
type Layout struct {
	Rows, Cols int
}

// BestLayout chooses the row/column count that fits n entries, each
// entryW x entryH, into the smallest box no larger than (maxW, maxH),
// preferring the candidate that wastes the least area.
func BestLayout(n int, entryW, entryH, maxW, maxH float64) Layout {
	if n <= 0 {
		return Layout{Rows: 0, Cols: 0}
	}
	best := Layout{Rows: n, Cols: 1}
	bestWaste := -1.0
	maxCols := int(maxW / entryW)
	if maxCols < 1 {
		maxCols = 1
	}
	if maxCols > n {
		maxCols = n
	}
	for cols := 1; cols <= maxCols; cols++ {
		rows := (n + cols - 1) / cols
		boxH := float64(rows) * entryH
		if boxH > maxH && rows > 1 {
			continue
		}
		boxW := float64(cols) * entryW
		waste := boxW*boxH - float64(n)*entryW*entryH
		if bestWaste < 0 || waste < bestWaste {
			bestWaste = waste
			best = Layout{Rows: rows, Cols: cols}
		}
	}
	return best
}

// Build renders entries into a grid scene using layout, with each cell
// entryW x entryH, anchored at the box's top-left corner.
func Build(entries []Entry, layout Layout, entryW, entryH float64, origin geom.Point) *scene.Object {
	root := scene.NewGroup()
	for i, e := range entries {
		row := i / layout.Cols
		col := i % layout.Cols
		x := origin.X + float64(col)*entryW
		y := origin.Y - float64(row)*entryH
		root.Add(swatch(e, geom.Point{X: x, Y: y}, entryW, entryH))
	}
	return root
}

func swatch(e Entry, at geom.Point, w, h float64) *scene.Object {
	g := scene.NewGroup()
	swatchW := w * 0.3
	midY := at.Y - h/2
	if e.HasLine {
		g.Add(&scene.Object{Kind: scene.KindLine, Points: []geom.Point{
			{X: at.X, Y: midY}, {X: at.X + swatchW, Y: midY},
		}, Attrs: scene.Attrs{LineColor: e.Color, LineWidthPt: e.LineWidthPt, Dash: e.Dash}})
	}
	if e.HasMarker {
		g.Add(series.Marker(e.Marker, geom.Point{X: at.X + swatchW/2, Y: midY}, h*0.6, e.LineWidthPt, e.Color, e.Color))
	}
	g.Add(&scene.Object{Kind: scene.KindText, Text: e.Name, At: geom.Point{X: at.X + swatchW + 4, Y: midY - h*0.3}})
	return g
}
