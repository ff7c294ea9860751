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

// Package axis implements the continuous (linear/logarithmic) axis: range
// legalization, major/sub tick selection, number formatting and
// collision-aware placement, and axis style resolution.
package axis

import (
	"math"

	"github.com/chartus/chartus/geom"
	"github.com/chartus/chartus/numfmt"
)

// Style names the visible form of the axis line.
type Style int

const (
	StyleAuto Style = iota
	StyleNone
	StyleLine
	StyleArrow
	StyleEdge
)

// Clamps bounding the valid value range.
const (
	maxAbsValue   = 1e300
	minLogValue   = 1e-300
	CoordinateClamp = geom.CoordinateClamp
)

// Config holds the user-facing configuration of an axis, before range
// legalization and tick selection resolve it into an Axis.
type Config struct {
	IsX      bool
	Reverse  bool
	LogScale bool

	// Min, Max, Cross, Major are nil when not forced by the user.
	Min, Max, Cross, Major *float64
	SubDivs                *int

	Style Style
	// Boxed is whether the owning chart draws a full frame; it resolves
	// StyleAuto (see ResolveStyle).
	Boxed bool

	Format numfmt.Mode
	Label, SubLabel, Unit string
}

// Tick is one tick mark (major or minor) on the axis.
type Tick struct {
	Value float64
	Major bool
}

// NumberLabel is a formatted, positioned number label for a major tick,
// or a label dropped due to collision with another label or a DMZ
// rectangle; a dropped label is never shifted to make room.
type NumberLabel struct {
	Tick    Tick
	Result  numfmt.Result
	Box     geom.Box
	Dropped bool
}

// Axis is a prepared continuous axis ready to place ticks, gridlines, and
// numbers along a run of Length points.
type Axis struct {
	Config

	Length float64
	Min, Max float64

	MajorInterval float64
	SubDivsResolved int

	ResolvedStyle Style

	Ticks  []Tick
	Labels []NumberLabel

	lengths numfmt.Lengths
}

// New returns an unprepared Axis from the given configuration.
func New(cfg Config) *Axis {
	return &Axis{Config: cfg}
}

// Prepare legalizes the axis range from data hints, selects major/sub tick
// intervals, generates ticks, and formats+places number labels, given the
// axis's length in points and whether the owning chart is boxed.
func (a *Axis) Prepare(dataMin, dataMax, length float64, dmz []geom.Box) {
	a.Length = length
	a.Min, a.Max = a.legalizeRange(dataMin, dataMax)
	if a.LogScale {
		a.MajorInterval = a.chooseMajorLog()
		a.SubDivsResolved = a.chooseSubDivsLog()
	} else {
		a.MajorInterval = a.chooseMajorLinear()
		a.Min, a.Max = a.expandToMultiple(a.Min, a.Max, a.MajorInterval)
		a.SubDivsResolved = 2
		if a.Config.SubDivs != nil {
			a.SubDivsResolved = *a.Config.SubDivs
		}
	}
	a.Ticks = a.generateTicks()
	a.Labels = a.placeLabels(dmz)
	a.ResolvedStyle = a.resolveStyle()
}

// legalizeRange resolves [min, max] from data hints and user overrides.
func (a *Axis) legalizeRange(dataMin, dataMax float64) (float64, float64) {
	min, max := dataMin, dataMax
	if min > max {
		min, max = max, min
	}
	if min == max {
		max = min + 1
	}

	if a.LogScale {
		if min <= 0 {
			min = math.Max(max/1e6, minLogValue)
		}
		if max < 10*min {
			max = 10 * min
		}
	} else {
		switch {
		case min > 0 && max > 0 && (max-min)/max > 0.5:
			min = 0
		case min < 0 && max < 0 && (max-min)/(-min) > 0.5:
			max = 0
		}
	}

	if a.Config.Min != nil {
		min = *a.Config.Min
	}
	if a.Config.Max != nil {
		max = *a.Config.Max
	}
	return min, max
}

var majorMantissas = []float64{1, 2, 4, 5}
var majorDivisors = []float64{1, 2, 5, 10}

// chooseMajorLinear picks the finest "nice" interval (of the form
// 10^p·{1,2,4,5}/d) whose major ticks still occupy at least
// min(100, length/4) points. If the user forced a major interval, it is
// used as-is.
func (a *Axis) chooseMajorLinear() float64 {
	if a.Config.Major != nil {
		return *a.Config.Major
	}
	span := a.Max - a.Min
	if span <= 0 {
		return 1
	}
	threshold := math.Min(100, a.Length/4)
	best := math.Inf(1)
	for p := -30; p <= 30; p++ {
		base := math.Pow(10, float64(p))
		for _, m := range majorMantissas {
			for _, d := range majorDivisors {
				candidate := base * m / d
				if candidate <= 0 {
					continue
				}
				spacing := candidate / span * a.Length
				if spacing >= threshold && candidate < best {
					best = candidate
				}
			}
		}
	}
	if math.IsInf(best, 1) {
		return span
	}
	return best
}

// chooseMajorLog resolves the log-scale major interval: round the
// user-supplied major (if any) to the nearest power of ten, then multiply
// by ten until adjacent majors are >=20pt apart.
func (a *Axis) chooseMajorLog() float64 {
	m := 10.0
	if a.Config.Major != nil && *a.Config.Major > 0 {
		m = math.Pow(10, math.Round(math.Log10(*a.Config.Major)))
	}
	decades := math.Log10(a.Max / a.Min)
	if decades <= 0 {
		return m
	}
	for iter := 0; iter < 64; iter++ {
		numMajors := decades / math.Log10(m)
		if numMajors <= 0 {
			break
		}
		spacing := a.Length / numMajors
		if spacing >= 20 {
			break
		}
		m *= 10
	}
	return m
}

// chooseSubDivsLog resolves log-scale sub-division count: default 10,
// shrinking until adjacent minor ticks are >=4pt apart.
func (a *Axis) chooseSubDivsLog() int {
	sub := 10
	if a.Config.SubDivs != nil {
		sub = *a.Config.SubDivs
	}
	decades := math.Log10(a.Max / a.Min)
	if decades <= 0 {
		return sub
	}
	for sub > 1 {
		numMinor := decades / math.Log10(a.MajorInterval) * float64(sub)
		spacing := a.Length / math.Max(numMinor, 1)
		if spacing >= 4 {
			break
		}
		sub--
	}
	return sub
}

// expandToMultiple grows [min, max] outward to the nearest multiple of M,
// never past a user-forced endpoint.
func (a *Axis) expandToMultiple(min, max, m float64) (float64, float64) {
	newMin, newMax := min, max
	if a.Config.Min == nil {
		newMin = math.Floor(min/m) * m
	}
	if a.Config.Max == nil {
		newMax = math.Ceil(max/m) * m
	}
	return newMin, newMax
}

// generateTicks enumerates major and minor tick values across [Min, Max].
func (a *Axis) generateTicks() []Tick {
	var ticks []Tick
	if a.LogScale {
		for v := a.Min; v <= a.Max*(1+1e-9); v *= a.MajorInterval {
			ticks = append(ticks, Tick{Value: v, Major: true})
			if a.SubDivsResolved > 1 {
				step := (a.MajorInterval - 1) / float64(a.SubDivsResolved)
				for i := 1; i < a.SubDivsResolved; i++ {
					mv := v * (1 + step*float64(i))
					if mv < v*a.MajorInterval {
						ticks = append(ticks, Tick{Value: mv, Major: false})
					}
				}
			}
			if a.MajorInterval <= 1 {
				break
			}
		}
		return ticks
	}
	n := int(math.Round((a.Max - a.Min) / a.MajorInterval))
	for i := 0; i <= n; i++ {
		v := a.Min + float64(i)*a.MajorInterval
		ticks = append(ticks, Tick{Value: v, Major: true})
		if i < n && a.SubDivsResolved > 1 {
			for s := 1; s < a.SubDivsResolved; s++ {
				mv := v + a.MajorInterval*float64(s)/float64(a.SubDivsResolved)
				ticks = append(ticks, Tick{Value: mv, Major: false})
			}
		}
	}
	return ticks
}

// placeLabels formats and places a number label for every major tick,
// dropping (not shifting) any label that collides with the DMZ rectangles
// or a previously placed label on this axis.
func (a *Axis) placeLabels(dmz []geom.Box) []NumberLabel {
	var majors []Tick
	for _, t := range a.Ticks {
		if t.Major {
			majors = append(majors, t)
		}
	}
	vals := make([]float64, len(majors))
	for i, t := range majors {
		vals[i] = t.Value
	}
	decimals := numfmt.Decimals(vals, a.Format, 10)

	var labels []NumberLabel
	var placed []geom.Box
	for _, t := range majors {
		r := numfmt.Format(t.Value, numfmt.Options{Mode: a.Format, Decimals: decimals, Unit: a.Unit})
		a.lengths.Observe(r)
		pos := a.coorUnclamped(t.Value)
		box := a.labelBox(pos, r)
		nl := NumberLabel{Tick: t, Result: r}
		if collidesAny(box, dmz) || collidesAny(box, placed) {
			nl.Dropped = true
		} else {
			nl.Box = box
			placed = append(placed, box)
		}
		labels = append(labels, nl)
	}
	return labels
}

func collidesAny(box geom.Box, others []geom.Box) bool {
	for _, o := range others {
		if geom.Collides(box, o, 0, 0) {
			return true
		}
	}
	return false
}

// labelBox estimates a number label's bounding box at tick position pos
// along the axis; X-axis labels extend below the tick, Y-axis labels extend
// to the left of it.
func (a *Axis) labelBox(pos float64, r numfmt.Result) geom.Box {
	const charWidth = 6.0
	const lineHeight = 12.0
	w := float64(len(r.Text)) * charWidth
	if a.IsX {
		return geom.NewBox(geom.Point{X: pos - w/2, Y: -lineHeight}, geom.Point{X: pos + w/2, Y: 0})
	}
	return geom.NewBox(geom.Point{X: -w, Y: pos - lineHeight/2}, geom.Point{X: 0, Y: pos + lineHeight/2})
}

// Valid reports whether v is within the representable value clamps.
func (a *Axis) Valid(v float64) bool {
	if math.IsNaN(v) || math.Abs(v) > maxAbsValue {
		return false
	}
	if a.LogScale && v < minLogValue {
		return false
	}
	return true
}

// Coor maps v to a point in [0, Length] along the axis, honoring Reverse.
// It returns NaN for values outside [Min, Max] or failing Valid.
func (a *Axis) Coor(v float64) float64 {
	if !a.Valid(v) {
		return math.NaN()
	}
	if v < a.Min || v > a.Max {
		return math.NaN()
	}
	return a.coorUnclamped(v)
}

func (a *Axis) coorUnclamped(v float64) float64 {
	var t float64
	if a.LogScale {
		t = (math.Log10(v) - math.Log10(a.Min)) / (math.Log10(a.Max) - math.Log10(a.Min))
	} else {
		t = (v - a.Min) / (a.Max - a.Min)
	}
	if a.Reverse {
		t = 1 - t
	}
	return clampCoor(t * a.Length)
}

func clampCoor(v float64) float64 {
	if v > CoordinateClamp {
		return CoordinateClamp
	}
	if v < -CoordinateClamp {
		return -CoordinateClamp
	}
	return v
}

// resolveStyle resolves StyleAuto: Arrow when the chart is unboxed and the
// axis crosses interior coordinates (i.e. a Cross value lies strictly
// within (Min, Max)), Edge otherwise.
func (a *Axis) resolveStyle() Style {
	if a.Config.Style != StyleAuto {
		return a.Config.Style
	}
	crossesInterior := a.Config.Cross != nil && *a.Config.Cross > a.Min && *a.Config.Cross < a.Max
	if !a.Boxed && crossesInterior {
		return StyleArrow
	}
	return StyleEdge
}

// ResolvedCross clamps the configured cross value (default 0) into [Min, Max].
func (a *Axis) ResolvedCross() float64 {
	cross := 0.0
	if a.Config.Cross != nil {
		cross = *a.Config.Cross
	}
	if cross < a.Min {
		return a.Min
	}
	if cross > a.Max {
		return a.Max
	}
	return cross
}
