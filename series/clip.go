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

package series

import (
	"math"

	"github.com/chartus/chartus/geom"
)

// clipEpsilon suppresses near-corner clips that would otherwise produce
// sub-pixel spikes.
const clipEpsilon = 1e-6

// ClipSegment clips the segment (p0, p1) to box using a Liang-Barsky test
// against the box's four sides. It returns the clipped endpoints and
// whether any visible portion of the segment remains.
func ClipSegment(p0, p1 geom.Point, box geom.Box) (geom.Point, geom.Point, bool) {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	tMin, tMax := 0.0, 1.0

	type edge struct{ p, q float64 }
	edges := [4]edge{
		{-dx, p0.X - box.MinX},
		{dx, box.MaxX - p0.X},
		{-dy, p0.Y - box.MinY},
		{dy, box.MaxY - p0.Y},
	}
	for _, e := range edges {
		if e.p == 0 {
			if e.q < 0 {
				return geom.Point{}, geom.Point{}, false
			}
			continue
		}
		t := e.q / e.p
		if e.p < 0 {
			if t > tMax {
				return geom.Point{}, geom.Point{}, false
			}
			if t > tMin {
				tMin = t
			}
		} else {
			if t < tMin {
				return geom.Point{}, geom.Point{}, false
			}
			if t < tMax {
				tMax = t
			}
		}
	}
	if tMax-tMin < clipEpsilon {
		return geom.Point{}, geom.Point{}, false
	}

	clippedP0 := geom.Point{X: p0.X + tMin*dx, Y: p0.Y + tMin*dy}
	clippedP1 := geom.Point{X: p0.X + tMax*dx, Y: p0.Y + tMax*dy}
	return clippedP0, clippedP1, true
}

// Inside reports whether p lies within box (inclusive), used to suppress
// marker rendering and tag anchoring for out-of-range centers.
func Inside(p geom.Point, box geom.Box) bool {
	return p.X >= box.MinX-clipEpsilon && p.X <= box.MaxX+clipEpsilon &&
		p.Y >= box.MinY-clipEpsilon && p.Y <= box.MaxY+clipEpsilon
}

// ClipPolyline clips a pruned polyline to box, breaking it into possibly
// several visible runs (one per contiguous visible segment chain),
// inserting intersection points where a run crosses the boundary: when
// both endpoints of a segment are outside but the segment passes through
// the box, both intersection points are inserted.
func ClipPolyline(points []geom.Point, box geom.Box) [][]geom.Point {
	var runs [][]geom.Point
	var current []geom.Point
	for i := 0; i+1 < len(points); i++ {
		p0, p1, ok := ClipSegment(points[i], points[i+1], box)
		if !ok {
			if len(current) > 0 {
				runs = append(runs, current)
				current = nil
			}
			continue
		}
		if len(current) == 0 {
			current = append(current, p0)
		} else if !almostEqual(current[len(current)-1], p0) {
			runs = append(runs, current)
			current = []geom.Point{p0}
		}
		current = append(current, p1)
	}
	if len(current) > 0 {
		runs = append(runs, current)
	}
	return runs
}

func almostEqual(a, b geom.Point) bool {
	return math.Abs(a.X-b.X) < clipEpsilon && math.Abs(a.Y-b.Y) < clipEpsilon
}
