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

package chart

import (
	"math"

	"github.com/chartus/chartus/geom"
	"github.com/chartus/chartus/legend"
	"github.com/chartus/chartus/scene"
	"github.com/chartus/chartus/series"
)

const (
	legendEntryW = 80.0
	legendEntryH = 16.0

	// legendWeightOverlap and legendWeightCross score a legend-box candidate
	// after series are drawn: series-area overlap counts for more than a
	// line merely crossing the box, since an overlapping swatch obscures a
	// data point while a crossing line only obscures empty space under it.
	legendWeightOverlap = 1.0
	legendWeightCross   = 0.3
)

// legendAnchor pairs a candidate box anchor with the plot-box point it
// should land on.
type legendAnchor struct {
	at    geom.Anchor
	point geom.Point
}

// legendAnchorCandidates returns the corner, edge-midpoint, and center
// anchors a legend box may be placed at, inset from the plot box so a
// placed box doesn't touch the plot frame.
func (c *Chart) legendAnchorCandidates() []legendAnchor {
	const margin = 4.0
	pb := c.PlotBox.Expand(-margin, -margin)
	return []legendAnchor{
		{geom.AnchorTopLeft, pb.AnchorPoint(geom.AnchorTopLeft)},
		{geom.AnchorTopRight, pb.AnchorPoint(geom.AnchorTopRight)},
		{geom.AnchorBottomLeft, pb.AnchorPoint(geom.AnchorBottomLeft)},
		{geom.AnchorBottomRight, pb.AnchorPoint(geom.AnchorBottomRight)},
		{geom.AnchorTop, pb.AnchorPoint(geom.AnchorTop)},
		{geom.AnchorBottom, pb.AnchorPoint(geom.AnchorBottom)},
		{geom.AnchorLeft, pb.AnchorPoint(geom.AnchorLeft)},
		{geom.AnchorRight, pb.AnchorPoint(geom.AnchorRight)},
		{geom.AnchorCenter, pb.Center()},
	}
}

// legendLayoutCandidates returns the row/column decompositions tried for n
// legend entries: the best fit within (maxW, maxH), plus a single row and a
// single column, deduplicated.
func legendLayoutCandidates(n int, maxW, maxH float64) []legend.Layout {
	if n <= 0 {
		return nil
	}
	tried := []legend.Layout{
		legend.BestLayout(n, legendEntryW, legendEntryH, maxW, maxH),
		{Rows: 1, Cols: n},
		{Rows: n, Cols: 1},
	}
	seen := make(map[legend.Layout]bool, len(tried))
	out := make([]legend.Layout, 0, len(tried))
	for _, l := range tried {
		if l.Rows <= 0 || l.Cols <= 0 || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}

// legendEntries builds one legend.Entry per non-empty series (a series
// with no valid data point draws no marker, no line, no legend entry, and
// no tag), ready for legend.Group to merge entries sharing a visual.
func (c *Chart) legendEntries() []legend.Entry {
	var entries []legend.Entry
	for _, s := range c.series {
		if !seriesHasData(s) {
			continue
		}
		entries = append(entries, legend.Entry{
			Name:        s.Name,
			Color:       s.Style.Color,
			LineWidthPt: s.Style.WidthPt,
			Dash:        s.Style.Dash,
			Marker:      s.Marker,
			HasLine:     s.Type == series.XY || s.Type == series.Line,
			HasMarker:   s.MarkerSize > 0,
		})
	}
	return entries
}

func seriesHasData(s *series.Series) bool {
	for _, p := range s.Points {
		if !series.IsInvalid(p.Y) && !series.IsSkip(p.Y) {
			return true
		}
	}
	return false
}

// seriesPixelPoints returns s's valid points mapped to plot-box pixel
// coordinates, in data order.
func (c *Chart) seriesPixelPoints(s *series.Series) []geom.Point {
	pts := make([]geom.Point, 0, len(s.Points))
	for _, p := range s.Points {
		if series.IsInvalid(p.Y) || series.IsSkip(p.Y) {
			continue
		}
		pts = append(pts, geom.Point{X: c.xCoor(p.X), Y: c.yCoor(s.YAxisIndex, p.Y)})
	}
	return pts
}

// discoverLegend places the receiver's own legend box: candidate anchors
// are enumerated around the plot area's corners, edges, and center, with
// one or more row/column counts tried at each, and candidates that fall
// outside the plot box or collide with avoid geometry (axis numbers, axis
// labels, the title) are discarded. Surviving candidates are scored by
// series-area overlap (legendWeightOverlap) and series line length
// crossing the box (legendWeightCross); the least-cost candidate is
// returned, or nil if the chart has no legend entries or no candidate
// survives.
func (c *Chart) discoverLegend(avoid []*scene.Object) *scene.Object {
	entries := legend.Group(c.legendEntries())
	if len(entries) == 0 {
		return nil
	}

	var best *scene.Object
	bestCost := math.Inf(1)
	for _, anchor := range c.legendAnchorCandidates() {
		for _, layout := range legendLayoutCandidates(len(entries), c.PlotBox.Width()*0.6, c.PlotBox.Height()*0.6) {
			box := legend.Build(entries, layout, legendEntryW, legendEntryH, geom.Point{})
			if !box.BoundingBox(scene.Attrs{}).Defined() {
				continue
			}
			box.MoveTo(scene.Attrs{}, anchor.at, anchor.point.X, anchor.point.Y)
			placed := box.BoundingBox(scene.Attrs{})
			if !c.PlotBox.Contains(placed) {
				continue
			}
			if collidesAny(placed, avoid) {
				continue
			}
			if cost := c.legendCost(placed); cost < bestCost {
				bestCost, best = cost, box
			}
		}
	}
	return best
}

// legendCost scores a placed legend box by the total series-area overlap
// and series line length crossing it.
func (c *Chart) legendCost(box geom.Box) float64 {
	var overlap, cross float64
	for _, s := range c.series {
		pts := c.seriesPixelPoints(s)
		if len(pts) == 0 {
			continue
		}
		var pb geom.Box
		for _, p := range pts {
			pb.Update(p)
		}
		overlap += geom.Overlap(box, pb)
		for _, run := range series.ClipPolyline(pts, box) {
			for i := 1; i < len(run); i++ {
				cross += run[i-1].Dist(run[i])
			}
		}
	}
	return legendWeightOverlap*overlap + legendWeightCross*cross
}

// collidesAny reports whether box overlaps the bounding box of any object
// in avoid.
func collidesAny(box geom.Box, avoid []*scene.Object) bool {
	for _, a := range avoid {
		if a == nil {
			continue
		}
		if geom.Overlap(box, a.BoundingBox(scene.Attrs{})) > 0 {
			return true
		}
	}
	return false
}
