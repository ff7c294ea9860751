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

// Package series defines the ten chart series types and their drawing
// arithmetic: stacking and layering offsets, polyline pruning, plot-rectangle
// clipping, marker geometry, and tag anchoring.
//
// A Series is built into a chart with:
//
//	s := series.New(series.Line, "requests", 0)
//	s.Style = style.Resolve(style.Index(0))
//	s.Points = append(s.Points, series.Point{X: 0, Y: 12})
//
// Style modifiers (see the style package) are applied with s.With, which
// restyles the receiver only; this package does not carry them over to
// subsequent series.
package series

import (
	"math"

	"github.com/chartus/chartus/style"
)

// Type names one of the ten series types.
type Type int

const (
	XY Type = iota
	Scatter
	Line
	Point
	Lollipop
	Bar
	StackedBar
	LayeredBar
	Area
	StackedArea
)

// IsCategoryX reports whether the receiver's X domain is a category axis
// (all types except XY and Scatter).
func (t Type) IsCategoryX() bool {
	return t != XY && t != Scatter
}

// BelowAxes reports whether the receiver draws in the "series below axes"
// draw-order layer (stacked areas, bars, lollipop stems) rather than the
// "series above axes" layer (lines/points/markers).
func (t Type) BelowAxes() bool {
	switch t {
	case Bar, StackedBar, LayeredBar, Area, StackedArea, Lollipop:
		return true
	default:
		return false
	}
}

// Sentinel values distinguishing "missing" from "skip" in a data stream.
const (
	// INVALID breaks a line segment: the point is absent and no segment may
	// span across it.
	INVALID = math.MaxFloat64
	// SKIP is treated as if the point were absent, without breaking a
	// segment (pruning/clipping simply omit it).
	SKIP = -math.MaxFloat64
)

// Clamps on representable values.
const (
	MaxAbsValue = 1e300
	MinLogValue = 1e-300
)

// IsInvalid reports whether v is the INVALID sentinel.
func IsInvalid(v float64) bool { return v == INVALID }

// IsSkip reports whether v is the SKIP sentinel.
func IsSkip(v float64) bool { return v == SKIP }

// Clamp bounds v to +/-MaxAbsValue.
func Clamp(v float64) float64 {
	if v > MaxAbsValue {
		return MaxAbsValue
	}
	if v < -MaxAbsValue {
		return -MaxAbsValue
	}
	return v
}

// Point is one data sample: X is a numeric value (XY/Scatter) or a category
// position (all other types); Y is the value-axis sample.
type Point struct {
	X, Y float64
}

// MarkerShape names the nine marker shapes a series may use.
type MarkerShape int

const (
	Circle MarkerShape = iota
	Square
	Triangle
	InvTriangle
	Diamond
	Cross
	Star
	LineX
	LineY
)

// Series is one chart series: its type, styling, data, and derived stacking
// state.
type Series struct {
	Type        Type
	Name        string
	YAxisIndex  int
	Base        float64
	StyleIndex  int
	Style       style.Style
	Marker      MarkerShape
	MarkerSize  float64
	Tag         bool
	Snap        bool
	Points      []Point

	// layerIndex and atBase are derived state; atBase is set by DataMinMax
	// and reported by AtBase.
	layerIndex int
	atBase     bool
}

// New returns a Series of the given type, name, and Y-axis index, with
// default style index 0. A series is tagged and contributes snap points by
// default; both are suppressed automatically for a series left empty.
func New(t Type, name string, yAxisIndex int) *Series {
	return &Series{Type: t, Name: name, YAxisIndex: yAxisIndex, MarkerSize: 4, Tag: true, Snap: true}
}

// With applies persistent and one-time modifiers to the receiver and
// returns it, to facilitate chaining.
func (s *Series) With(mods style.Modifiers) *Series {
	s.Style = mods.Apply(s.Style)
	return s
}

// AtBase reports whether the receiver's resolved min/max equals its base,
// used by axis legalization to avoid auto-expanding beyond the base for a
// series with no valid data.
func (s *Series) AtBase() bool {
	return s.atBase
}

// DataMinMax returns the series' minimum and maximum Y value across valid
// (non-INVALID, non-SKIP) points, or (base, base) if no valid points exist.
func (s *Series) DataMinMax() (min, max float64) {
	min, max = s.Base, s.Base
	found := false
	for _, p := range s.Points {
		if IsInvalid(p.Y) || IsSkip(p.Y) {
			continue
		}
		if !found {
			min, max = p.Y, p.Y
			found = true
			continue
		}
		if p.Y < min {
			min = p.Y
		}
		if p.Y > max {
			max = p.Y
		}
	}
	s.atBase = !found
	return min, max
}
