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

// Package style implements the series style-index numbering scheme: an
// integer in 0..79 that selects a palette color (index mod 10) and a
// line-width/dash preset (index div 10).
package style

import (
	"github.com/chartus/chartus/color"
)

// NumStyles is the size of the style-index space.
const NumStyles = 80

// palette is the 10-color series palette cycled by style index mod 10.
var palette = []color.Color{
	color.RGB(0x1f, 0x77, 0xb4), // blue
	color.RGB(0xff, 0x7f, 0x0e), // orange
	color.RGB(0x2c, 0xa0, 0x2c), // green
	color.RGB(0xd6, 0x27, 0x28), // red
	color.RGB(0x94, 0x67, 0xbd), // purple
	color.RGB(0x8c, 0x56, 0x4b), // brown
	color.RGB(0xe3, 0x77, 0xc2), // pink
	color.RGB(0x7f, 0x7f, 0x7f), // gray
	color.RGB(0xbc, 0xbd, 0x22), // olive
	color.RGB(0x17, 0xbe, 0xcf), // cyan
}

// widthDashPreset describes the line width (in points) and dash pattern
// (lengths of on/off segments, in points; nil/empty is solid) for one of
// the 8 presets selected by style index div 10.
type widthDashPreset struct {
	WidthPt float64
	Dash    []float64
}

var widthDashPresets = []widthDashPreset{
	{WidthPt: 1.5, Dash: nil},
	{WidthPt: 1.5, Dash: []float64{4, 2}},
	{WidthPt: 2.5, Dash: nil},
	{WidthPt: 2.5, Dash: []float64{6, 3}},
	{WidthPt: 1.5, Dash: []float64{1, 2}},
	{WidthPt: 3.5, Dash: nil},
	{WidthPt: 2.5, Dash: []float64{6, 2, 1, 2}},
	{WidthPt: 1.5, Dash: []float64{8, 3}},
}

// Style is a fully resolved style: a color and a line-width/dash preset.
type Style struct {
	Color   color.Color
	WidthPt float64
	Dash    []float64
}

// Index normalizes any integer into the 0..79 style-index space.
func Index(i int) int {
	i %= NumStyles
	if i < 0 {
		i += NumStyles
	}
	return i
}

// Resolve returns the Style for the given style index: the integer
// selects a palette index (mod 10) and a line-width/dash preset (div 10).
func Resolve(index int) Style {
	index = Index(index)
	p := palette[index%len(palette)]
	wd := widthDashPresets[(index/len(palette))%len(widthDashPresets)]
	return Style{Color: p, WidthPt: wd.WidthPt, Dash: wd.Dash}
}

// Modifiers holds persistent per-series style modifications that apply to
// the current and all subsequent series until overridden. They are distinct
// from one-time modifiers (explicit colors), which the caller applies only
// to the series being constructed.
type Modifiers struct {
	MarkerSize      *float64
	LineWidthPt     *float64
	Dash            []float64
	Lighten         *float64
	FillTransparency *float64
}

// Apply overlays the receiver's LineWidthPt, Dash, and Lighten fields,
// where set, onto the base Style, returning the result. Unset modifier
// fields leave the base unchanged; MarkerSize and FillTransparency are not
// applied, as Style has no field for them.
func (m Modifiers) Apply(base Style) Style {
	ret := base
	if m.LineWidthPt != nil {
		ret.WidthPt = *m.LineWidthPt
	}
	if m.Dash != nil {
		ret.Dash = m.Dash
	}
	if m.Lighten != nil {
		ret.Color = ret.Color.Lighten(*m.Lighten)
	}
	return ret
}
