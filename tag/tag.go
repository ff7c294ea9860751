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

// Package tag places per-series value tags near their anchor point,
// avoiding collisions with previously placed tags and other avoid geometry.
package tag

import (
	"math"

	"github.com/chartus/chartus/geom"
)

// Direction is one of the 8 compass directions a tag may be offset toward
// from its anchor.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// allDirections is the canonical compass ordering used to build candidate
// orders.
var allDirections = []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// Vector returns the unit vector pointing in the receiver's direction,
// y-up per geom's internal convention.
func (d Direction) Vector() geom.Point {
	angle := float64(d) * math.Pi / 4
	return geom.Point{X: math.Sin(angle), Y: math.Cos(angle)}
}

// maxPasses and candidatesPerPass implement a three-concentric-pass,
// eight-candidate-per-pass placement relaxation: each pass tries all 8
// compass directions at an increasing distance from the anchor before
// giving up.
const (
	maxPasses        = 3
	candidatesPerPass = 8
)

// PreferredOrder returns the 8 compass directions ordered so that the
// direction most opposite the average of the incoming and outgoing segment
// vectors comes first, keeping the tag outside of the line's acute angle.
func PreferredOrder(in, out geom.Point) []Direction {
	avg := in.Add(out)
	if avg.Length() == 0 {
		return append([]Direction{}, allDirections...)
	}
	avg = avg.Scale(1 / avg.Length())
	opposite := avg.Scale(-1)

	type scored struct {
		d     Direction
		score float64
	}
	scoredDirs := make([]scored, len(allDirections))
	for i, d := range allDirections {
		v := d.Vector()
		scoredDirs[i] = scored{d: d, score: v.X*opposite.X + v.Y*opposite.Y}
	}
	// Selection sort by descending score (8 elements, simplicity over
	// asymptotic performance); the swaps do not keep tied directions in
	// compass order.
	for i := 0; i < len(scoredDirs); i++ {
		best := i
		for j := i + 1; j < len(scoredDirs); j++ {
			if scoredDirs[j].score > scoredDirs[best].score {
				best = j
			}
		}
		scoredDirs[i], scoredDirs[best] = scoredDirs[best], scoredDirs[i]
	}
	ordered := make([]Direction, len(scoredDirs))
	for i, s := range scoredDirs {
		ordered[i] = s.d
	}
	return ordered
}

// Place finds a collision-free box of size (width, height) offset from
// anchor in one of the directions in order, trying preferred first if
// non-nil. On pass p (1 to 3) the box center is anchor + v*(p*baseDist +
// width/2) horizontally and anchor + v*(p*baseDist + height/2)
// vertically, v being the direction's unit vector. It returns
// the placed box, the direction used, and whether placement succeeded; on
// failure the caller should suppress the tag rather than force a collision.
func Place(anchor geom.Point, width, height, baseDist float64, preferred *Direction, order []Direction, avoid []geom.Box, marginX, marginY float64) (geom.Box, Direction, bool) {
	candidates := buildCandidateOrder(preferred, order)
	for pass := 1; pass <= maxPasses; pass++ {
		dist := baseDist * float64(pass)
		for _, d := range candidates {
			v := d.Vector()
			center := geom.Point{
				X: anchor.X + v.X*(dist+width/2),
				Y: anchor.Y + v.Y*(dist+height/2),
			}
			box := geom.NewBox(
				geom.Point{X: center.X - width/2, Y: center.Y - height/2},
				geom.Point{X: center.X + width/2, Y: center.Y + height/2},
			)
			if !collidesAny(box, avoid, marginX, marginY) {
				return box, d, true
			}
		}
	}
	return geom.Box{}, 0, false
}

func buildCandidateOrder(preferred *Direction, order []Direction) []Direction {
	if order == nil {
		order = allDirections
	}
	if preferred == nil {
		return order
	}
	out := make([]Direction, 0, len(order)+1)
	out = append(out, *preferred)
	for _, d := range order {
		if d != *preferred {
			out = append(out, d)
		}
	}
	if len(out) > candidatesPerPass {
		out = out[:candidatesPerPass]
	}
	return out
}

func collidesAny(box geom.Box, avoid []geom.Box, marginX, marginY float64) bool {
	for _, a := range avoid {
		if geom.Collides(box, a, marginX, marginY) {
			return true
		}
	}
	return false
}
