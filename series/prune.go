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

// DefaultPruneDist is the default maximum perpendicular deviation, in
// points, a run of collinear-enough samples may have from the chord
// connecting its endpoints before it is split.
const DefaultPruneDist = 0.3

// Prune collapses runs of nearly-collinear points in a rendered polyline
// into their endpoints, reducing vector output size without visible
// distortion. A point at index i for which preserve(i) is true (start, end,
// and any anchor contributing to a tag or the HTML snap set) is always
// retained and starts a new run.
//
// A run [runStart, i] is kept collapsed so long as every point strictly
// between them lies within pruneDist of the chord from points[runStart] to
// points[i]. Testing against the chord's own perpendicular distance also
// bounds how far the chord's angle may drift from an axis-parallel
// predecessor, since a purely horizontal or vertical chord's deviation
// formula reduces to a plain y- or x-difference.
func Prune(points []geom.Point, pruneDist float64, preserve func(i int) bool) []geom.Point {
	if len(points) <= 2 {
		out := make([]geom.Point, len(points))
		copy(out, points)
		return out
	}
	if pruneDist <= 0 {
		pruneDist = DefaultPruneDist
	}

	out := make([]geom.Point, 0, len(points))
	out = append(out, points[0])
	runStart := 0

	i := 1
	for i < len(points) {
		if i < len(points)-1 && preserve != nil && preserve(i) {
			if !fitsChord(points, runStart, i, pruneDist) {
				out = append(out, points[i-1])
			}
			out = append(out, points[i])
			runStart = i
			i++
			continue
		}
		if fitsChord(points, runStart, i, pruneDist) {
			i++
			continue
		}
		out = append(out, points[i-1])
		runStart = i - 1
		// Retry the current point as a candidate extension of the new run.
	}
	out = append(out, points[len(points)-1])
	return out
}

// fitsChord reports whether every point strictly between runStart and end
// lies within pruneDist of the chord from points[runStart] to points[end].
func fitsChord(points []geom.Point, runStart, end int, pruneDist float64) bool {
	p1, p2 := points[runStart], points[end]
	for k := runStart + 1; k < end; k++ {
		if perpDistance(p1, p2, points[k]) > pruneDist {
			return false
		}
	}
	return true
}

// perpDistance returns the perpendicular distance from p to the infinite
// line through a and b (or the plain distance to a if a == b).
func perpDistance(a, b, p geom.Point) float64 {
	ab := b.Sub(a)
	length := ab.Length()
	if length == 0 {
		return p.Dist(a)
	}
	cross := ab.X*(p.Y-a.Y) - ab.Y*(p.X-a.X)
	return math.Abs(cross) / length
}

// PruneScatter de-duplicates coincident scatter points by bucketing onto a
// grid of size pruneDist, keeping the first point seen in each bucket.
func PruneScatter(points []geom.Point, pruneDist float64) []geom.Point {
	if pruneDist <= 0 {
		pruneDist = DefaultPruneDist
	}
	type bucket struct{ x, y int64 }
	seen := map[bucket]bool{}
	out := make([]geom.Point, 0, len(points))
	for _, p := range points {
		b := bucket{int64(math.Floor(p.X / pruneDist)), int64(math.Floor(p.Y / pruneDist))}
		if seen[b] {
			continue
		}
		seen[b] = true
		out = append(out, p)
	}
	return out
}
