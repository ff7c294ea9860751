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

// Package categoryaxis implements the category (textual) X-axis: the
// category string list, stride-based label thinning, and the 0°/staggered/
// 45°/90° rotation fallback ladder.
package categoryaxis

import "math"

// Rotation names a category-label orientation, tried in escalating order
// until labels stop colliding.
type Rotation int

const (
	Rotation0 Rotation = iota
	RotationStaggered
	Rotation45
	Rotation90
)

// Stride suppresses intermediate category labels: only categories at
// positions Start, Start+Step, Start+2*Step, ... are labeled.
type Stride struct {
	Start, Step int
}

// Config configures a category axis before Prepare resolves stride and
// rotation.
type Config struct {
	// Stride, if non-nil, is user-imposed and never refined further.
	Stride *Stride
	// LineHeight is the label font's line height in points, used to estimate
	// the footprint of a 90°-rotated label.
	LineHeight float64
}

// Axis is a category (textual) axis: an ordered, deduplicated list of
// category strings plus the resolved numeric range, stride, and rotation
// used to place their labels.
type Axis struct {
	Config
	Categories *stringTable

	Length   float64
	Min, Max float64

	ResolvedStride   Stride
	ResolvedRotation Rotation
}

// NewAxis returns an empty category axis.
func NewAxis(cfg Config) *Axis {
	return &Axis{Config: cfg, Categories: newStringTable()}
}

// Add registers label (if new) and returns its stable integer position.
func (a *Axis) Add(label string) int {
	return a.Categories.index(label)
}

// Count returns the number of distinct categories registered so far.
func (a *Axis) Count() int {
	return a.Categories.len()
}

// Labels returns the registered category strings in position order.
func (a *Axis) Labels() []string {
	return a.Categories.strings()
}

// RangeFor computes [min, max] for a category axis with n categories: a
// chart with a bar or stair series starts its range at -0.5 instead of 0
// so bars sit centered on their category tick, then both ends are
// expanded by barMargin.
func RangeFor(n int, hasBarOrStair bool, barMargin float64) (float64, float64) {
	min := 0.0
	if hasBarOrStair {
		min = -0.5
	}
	max := min + float64(n)
	if min >= 0 {
		max--
	}
	return min - barMargin, max + barMargin
}

// Coor maps a category position (an integer category index, or a
// fractional position for bar-group offsets) to a point along the axis.
func (a *Axis) Coor(pos float64) float64 {
	if a.Max == a.Min {
		return 0
	}
	t := (pos - a.Min) / (a.Max - a.Min)
	return t * a.Length
}

// Prepare resolves the stride and rotation needed for every selected
// category's label to fit within its allotted span, given each label's
// rendered pixel width (textWidth) and the axis's pixel length.
func (a *Axis) Prepare(textWidth func(string) float64) {
	categories := a.Categories.strings()
	n := len(categories)
	if n == 0 {
		return
	}
	spacing := a.Length / float64(n)

	stride := Stride{Start: 0, Step: 1}
	if a.Config.Stride != nil {
		stride = *a.Config.Stride
	}
	rotation := Rotation0
	userStride := a.Config.Stride != nil

	for iter := 0; iter < 4*n+4; iter++ {
		if a.fits(categories, stride, rotation, spacing, textWidth) {
			break
		}
		switch rotation {
		case Rotation0:
			rotation = RotationStaggered
		case RotationStaggered:
			rotation = Rotation45
		case Rotation45:
			rotation = Rotation90
		default:
			if userStride {
				break
			}
			stride.Step++
		}
		if stride.Step > n {
			break
		}
	}
	a.ResolvedStride = stride
	a.ResolvedRotation = rotation
}

// fits reports whether every category selected by stride, rendered under
// rotation, fits within spacing*stride.Step.
func (a *Axis) fits(categories []string, stride Stride, rotation Rotation, spacing float64, textWidth func(string) float64) bool {
	budget := spacing * float64(stride.Step)
	if rotation == RotationStaggered {
		budget *= 2
	}
	for i := stride.Start; i < len(categories); i += stride.Step {
		w := footprint(textWidth(categories[i]), a.Config.LineHeight, rotation)
		if w > budget {
			return false
		}
	}
	return true
}

func footprint(textWidth, lineHeight float64, rotation Rotation) float64 {
	switch rotation {
	case Rotation45:
		return textWidth * math.Cos(math.Pi/4)
	case Rotation90:
		return lineHeight
	default:
		return textWidth
	}
}
