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

// Package grid places multiple charts into a rectangular grid of cells so
// that shared row/column edges of their interior plot rectangles align,
// via iterative relaxation.
package grid

import (
	"github.com/chartus/chartus/geom"
)

// Demand is one chart's sizing requirement along a single axis direction
// (X or Y): it spans grid cells [Start, End] (inclusive, End==Start for a
// single-cell chart) and needs AreaSize points of interior plot width
// across that span, with PadBefore/PadAfter points of decoration
// (axis labels, legend, titles) spilling outside the plot rectangle on
// each side.
type Demand struct {
	Start, End         int
	AreaSize           float64
	PadBefore, PadAfter float64
}

// convergenceLimit is the total undamped deficit, as returned by relax,
// below which phase 1 is considered converged.
const convergenceLimit = 0.01

// damping is the per-iteration damping factor applied to each relaxation
// step.
const damping = 0.3

const maxPhase1Iters = 200

// maxRetryTrials bounds the padding-overlap retry loop: up to five retry
// trials are allowed, and on the last trial all padding is treated as
// active regardless of whether it was observed to overlap.
const maxRetryTrials = 5

// Solve resolves the per-cell interior width along one axis direction for
// numCells grid cells given the chart demands spanning them, returning the
// numCells cell widths and the numCells+1 cumulative plot-rectangle edge
// coordinates starting at 0.
//
// This runs three phases in simplified form: phase 1 (unconstrained
// relaxation distributing each multi-cell chart's size
// deficit evenly across its span, damped by `damping` each iteration, with
// independent inter-cell padding-gap insertion when cells' paddings would
// otherwise overlap) and phase 2 (tighten, compressing a multi-cell span
// back down when its cells' own single-cell demands already oversize it;
// see tighten's doc comment for the cases it doesn't fully reconcile).
// Phase 3 (empty-cell expansion for a legend hole) is left to the caller,
// which already knows which cells are empty; ExpandEmptyCell performs that
// expansion given Solve's result.
func Solve(numCells int, demands []Demand) (cellWidths []float64, edges []float64, paddingGaps []float64) {
	cellWidths = make([]float64, numCells)
	paddingBefore := make([]float64, numCells)
	paddingAfter := make([]float64, numCells)

	for _, d := range demands {
		if d.Start == d.End {
			if d.AreaSize > cellWidths[d.Start] {
				cellWidths[d.Start] = d.AreaSize
			}
		}
		if d.PadBefore > paddingBefore[d.Start] {
			paddingBefore[d.Start] = d.PadBefore
		}
		if d.PadAfter > paddingAfter[d.End] {
			paddingAfter[d.End] = d.PadAfter
		}
	}

	paddingActive := make([]bool, numCells)
	for trial := 0; trial < maxRetryTrials; trial++ {
		lastTrial := trial == maxRetryTrials-1
		for iter := 0; iter < maxPhase1Iters; iter++ {
			total := relax(numCells, cellWidths, demands)
			if total < convergenceLimit {
				break
			}
		}

		paddingGaps = make([]float64, numCells)
		overlap := false
		for i := 0; i < numCells-1; i++ {
			if !paddingActive[i] && !lastTrial {
				continue
			}
			gap := paddingAfter[i] + paddingBefore[i+1]
			paddingGaps[i] = gap
		}
		for i := 0; i < numCells-1; i++ {
			if paddingAfter[i]+paddingBefore[i+1] > 0 && !paddingActive[i] {
				paddingActive[i] = true
				overlap = true
			}
		}
		if !overlap || lastTrial {
			break
		}
	}

	// Phase 2: the first/last cell edges need no locking here — they are
	// always anchored at the cumulative sum starting at 0 — but cell widths
	// do need tightening. relax only ever grows a multi-cell span to cover
	// a deficit; it never shrinks one, so a span whose single-cell
	// neighbors already sum past its own demand (each sized by its own,
	// larger, single-cell chart) is left oversized. tighten compresses
	// exactly that case.
	tighten(demands, cellWidths)

	edges = make([]float64, numCells+1)
	for i := 0; i < numCells; i++ {
		gap := 0.0
		if i > 0 {
			gap = paddingGaps[i-1]
		}
		edges[i+1] = edges[i] + cellWidths[i] + gap
	}
	return cellWidths, edges, paddingGaps
}

// relax performs one damped relaxation pass, distributing each multi-cell
// chart's size deficit evenly across the cells in its span, and returns
// the sum of the deficits it found, before damping (the phase 1
// convergence signal).
func relax(numCells int, cellWidths []float64, demands []Demand) float64 {
	total := 0.0
	for _, d := range demands {
		if d.Start == d.End {
			continue
		}
		span := d.End - d.Start + 1
		sum := 0.0
		for i := d.Start; i <= d.End; i++ {
			sum += cellWidths[i]
		}
		deficit := d.AreaSize - sum
		if deficit <= 0 {
			continue
		}
		share := deficit / float64(span) * damping
		for i := d.Start; i <= d.End; i++ {
			cellWidths[i] += share
		}
		total += deficit
	}
	return total
}

// tighten shrinks each multi-cell chart's span back down to its own demand
// when phase 1 left it oversized. This happens whenever the span's cells,
// sized by their own single-cell demands, already sum to more than this
// chart needs: relax only grows cells to cover a deficit and never shrinks
// one back down. Each cell is shrunk only down to the largest single-cell
// demand still pinning it, proportionally to how much slack each cell in
// the span has above its own floor.
//
// A cell claimed by more than one multi-cell demand is left alone: shrinking
// it to satisfy one oversized span could undersize another span that also
// depends on it, and tighten has no way to tell which span's demand should
// win. Surplus on a shared cell is left uncompressed — a known
// simplification that would need to solve all overlapping spans jointly to
// fully reconcile.
func tighten(demands []Demand, cellWidths []float64) {
	floor := make([]float64, len(cellWidths))
	multiSpans := make([]int, len(cellWidths))
	for _, d := range demands {
		if d.Start == d.End {
			if d.AreaSize > floor[d.Start] {
				floor[d.Start] = d.AreaSize
			}
			continue
		}
		for i := d.Start; i <= d.End; i++ {
			multiSpans[i]++
		}
	}
	for _, d := range demands {
		if d.Start == d.End {
			continue
		}
		sum := 0.0
		for i := d.Start; i <= d.End; i++ {
			sum += cellWidths[i]
		}
		surplus := sum - d.AreaSize
		if surplus <= convergenceLimit {
			continue
		}
		slack := 0.0
		for i := d.Start; i <= d.End; i++ {
			if multiSpans[i] > 1 {
				continue
			}
			if s := cellWidths[i] - floor[i]; s > 0 {
				slack += s
			}
		}
		if slack <= 0 {
			continue
		}
		for i := d.Start; i <= d.End; i++ {
			if multiSpans[i] > 1 {
				continue
			}
			s := cellWidths[i] - floor[i]
			if s <= 0 {
				continue
			}
			cut := surplus * (s / slack)
			if cut > s {
				cut = s
			}
			cellWidths[i] -= cut
		}
	}
}

// ExpandEmptyCell grows the (already solved) width of cell index i — known
// by the caller to hold no chart — by extra points, redistributing the
// subsequent cumulative edges without disturbing the alignment of any
// occupied cell's plot rectangle (only a wholly empty cell's own width
// changes; occupied cells keep their solved size).
func ExpandEmptyCell(cellWidths []float64, edges []float64, i int, extra float64) {
	if i < 0 || i >= len(cellWidths) || extra <= 0 {
		return
	}
	cellWidths[i] += extra
	for j := i + 1; j < len(edges); j++ {
		edges[j] += extra
	}
}

// Hole is an empty rectangular region of grid cells, in cell-index space,
// reported by DetectHoles for candidate global-legend placement.
type Hole struct {
	X1, Y1, X2, Y2 int
}

// Area returns the hole's cell count (width * height in cells).
func (h Hole) Area() int {
	return (h.X2 - h.X1 + 1) * (h.Y2 - h.Y1 + 1)
}

// DetectHoles splits the empty cells of a cols x rows grid, given the
// occupied cells (true = covered by some chart), into axis-aligned cell
// rectangles. Cells are scanned row by row; each empty cell not already
// inside an earlier rectangle seeds a rectangle grown greedily right, then
// down. The returned rectangles do not overlap, and a rectangle is not
// necessarily maximal: a larger empty rectangle containing it may exist.
// Callers select PreferredHole, which ranks by edge/corner
// preference then largest area, rather than relying on enumeration order.
func DetectHoles(cols, rows int, occupied func(x, y int) bool) []Hole {
	var holes []Hole
	seen := make([][]bool, rows)
	for y := range seen {
		seen[y] = make([]bool, cols)
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if occupied(x, y) || seen[y][x] {
				continue
			}
			x2 := x
			for x2+1 < cols && !occupied(x2+1, y) {
				x2++
			}
			y2 := y
		growDown:
			for y2+1 < rows {
				for xi := x; xi <= x2; xi++ {
					if occupied(xi, y2+1) {
						break growDown
					}
				}
				y2++
			}
			for yi := y; yi <= y2; yi++ {
				for xi := x; xi <= x2; xi++ {
					seen[yi][xi] = true
				}
			}
			holes = append(holes, Hole{X1: x, Y1: y, X2: x2, Y2: y2})
		}
	}
	return holes
}

// PreferredHole returns the best hole from holes for global legend
// placement: edge cells (touching a grid boundary) before interior ones,
// corners before plain edges, then largest area.
func PreferredHole(holes []Hole, cols, rows int) (Hole, bool) {
	if len(holes) == 0 {
		return Hole{}, false
	}
	best := holes[0]
	bestScore := holeScore(best, cols, rows)
	for _, h := range holes[1:] {
		if s := holeScore(h, cols, rows); s > bestScore {
			bestScore, best = s, h
		}
	}
	return best, true
}

func holeScore(h Hole, cols, rows int) int {
	onLeft := h.X1 == 0
	onRight := h.X2 == cols-1
	onTop := h.Y1 == 0
	onBottom := h.Y2 == rows-1
	edges := 0
	for _, b := range []bool{onLeft, onRight, onTop, onBottom} {
		if b {
			edges++
		}
	}
	score := edges * 1000
	if edges >= 2 {
		score += 500 // corner
	}
	return score + h.Area()
}

// PlotBox computes the plot rectangle for the chart spanning
// [x1,x2]x[y1,y2] given the solved X and Y edges, with origin at (0,0) and
// Y measured upward (geom's internal convention); the caller translates
// the whole grid into final canvas coordinates afterward.
func PlotBox(xEdges, yEdges []float64, x1, x2, y1, y2 int) geom.Box {
	return geom.NewBox(
		geom.Point{X: xEdges[x1], Y: yEdges[y1]},
		geom.Point{X: xEdges[x2+1], Y: yEdges[y2+1]},
	)
}
