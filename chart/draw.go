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
	"github.com/chartus/chartus/axis"
	"github.com/chartus/chartus/geom"
	"github.com/chartus/chartus/scene"
	"github.com/chartus/chartus/series"
	"github.com/chartus/chartus/tag"
)

// Draw renders the receiver's full scene subtree, in a fixed back-to-front
// layer order: chart-area fill; minor grid; major grid; zero grid; label
// backgrounds; lower annotations; series below axes; axis lines; series
// above axes; axis numbers; axis labels; tags; upper annotations; legends;
// title and title frame; plot frame.
func (c *Chart) Draw() *scene.Object {
	root := scene.NewGroup()

	root.Add(c.drawAreaFill())
	root.Add(c.drawGrid(false)) // minor
	root.Add(c.drawGrid(true))  // major
	root.Add(c.drawZeroGrid())

	labelBG := scene.NewGroup()
	root.Add(labelBG) // populated below, once number labels are drawn

	root.Add(annotationGroup(c.LowerAnnotations))
	// Bars and areas accumulate stack offsets as they are drawn; start from
	// empty offsets so Prepare's replay is not counted a second time.
	c.stacker = series.NewStacker()
	root.Add(c.drawSeries(true))  // below axes
	root.Add(c.drawAxisLines())
	root.Add(c.drawSeries(false)) // above axes

	numbers := c.drawAxisNumbers()
	root.Add(numbers)
	axisText := c.drawAxisText()
	root.Add(axisText)
	root.Add(c.drawTags())
	root.Add(annotationGroup(c.UpperAnnotations))

	title := c.drawTitle()
	c.Legend = c.discoverLegend([]*scene.Object{numbers, axisText, title})
	if c.Legend != nil {
		root.Add(c.Legend)
	}
	root.Add(title)
	root.Add(c.drawPlotFrame())

	for _, n := range numbers.Children {
		labelBG.Add(labelBackground(n))
	}
	labelBG.FrontToBack()

	return root
}

func annotationGroup(objs []*scene.Object) *scene.Object {
	g := scene.NewGroup()
	for _, o := range objs {
		g.Add(o)
	}
	return g
}

func labelBackground(label *scene.Object) *scene.Object {
	box := label.BoundingBox(scene.Attrs{})
	return &scene.Object{
		Kind:     scene.KindRect,
		Corner:   geom.Point{X: box.MinX - 1, Y: box.MinY - 1},
		Opposite: geom.Point{X: box.MaxX + 1, Y: box.MaxY + 1},
	}
}

func (c *Chart) drawAreaFill() *scene.Object {
	return &scene.Object{
		Kind:     scene.KindRect,
		Corner:   geom.Point{X: c.PlotBox.MinX, Y: c.PlotBox.MinY},
		Opposite: geom.Point{X: c.PlotBox.MaxX, Y: c.PlotBox.MaxY},
		Attrs:    scene.Attrs{FillColor: c.cfg.Background},
	}
}

// drawGrid draws either the minor or major gridlines for every shown axis,
// as horizontal lines (from Y-axis ticks) and vertical lines (from the
// numeric X-axis's ticks; category axes draw no gridlines of their own).
func (c *Chart) drawGrid(major bool) *scene.Object {
	g := scene.NewGroup()
	for i, a := range c.yAxes {
		if !c.yAxisShown(i) || a == nil {
			continue
		}
		for _, t := range a.Ticks {
			if t.Major != major {
				continue
			}
			y := c.PlotBox.MinY + a.Coor(t.Value)
			g.Add(&scene.Object{Kind: scene.KindLine, Points: []geom.Point{
				{X: c.PlotBox.MinX, Y: y}, {X: c.PlotBox.MaxX, Y: y},
			}})
		}
	}
	if c.xAxis != nil {
		for _, t := range c.xAxis.Ticks {
			if t.Major != major {
				continue
			}
			x := c.PlotBox.MinX + c.xAxis.Coor(t.Value)
			g.Add(&scene.Object{Kind: scene.KindLine, Points: []geom.Point{
				{X: x, Y: c.PlotBox.MinY}, {X: x, Y: c.PlotBox.MaxY},
			}})
		}
	}
	return g
}

// drawZeroGrid highlights the zero line on any shown linear Y-axis whose
// range straddles zero, one layer above the ordinary grid.
func (c *Chart) drawZeroGrid() *scene.Object {
	g := scene.NewGroup()
	for i, a := range c.yAxes {
		if !c.yAxisShown(i) || a == nil || a.LogScale {
			continue
		}
		if a.Min >= 0 || a.Max <= 0 {
			continue
		}
		y := c.PlotBox.MinY + a.Coor(0)
		g.Add(&scene.Object{Kind: scene.KindLine, Points: []geom.Point{
			{X: c.PlotBox.MinX, Y: y}, {X: c.PlotBox.MaxX, Y: y},
		}})
	}
	return g
}

// xCoor maps a series point's X value (numeric or category position) to a
// point-space X coordinate within the plot box.
func (c *Chart) xCoor(x float64) float64 {
	if c.isCategoryChart() {
		return c.PlotBox.MinX + c.catAxis.Coor(x)
	}
	return c.PlotBox.MinX + c.xAxis.Coor(x)
}

func (c *Chart) yCoor(axisIndex int, y float64) float64 {
	return c.PlotBox.MinY + c.yAxes[axisIndex].Coor(y)
}

// drawSeries draws every series whose Type.BelowAxes() matches below,
// dispatching to each series type's own draw routine.
func (c *Chart) drawSeries(below bool) *scene.Object {
	g := scene.NewGroup()
	for _, s := range c.series {
		if s.Type.BelowAxes() != below {
			continue
		}
		g.Add(c.drawOneSeries(s))
	}
	return g
}

func (c *Chart) drawOneSeries(s *series.Series) *scene.Object {
	g := scene.NewGroup()
	attrs := scene.Attrs{LineColor: s.Style.Color, FillColor: s.Style.Color, LineWidthPt: s.Style.WidthPt, Dash: s.Style.Dash}
	g.Attrs = attrs

	switch s.Type {
	case series.Bar, series.StackedBar, series.LayeredBar:
		c.drawBars(g, s)
	case series.Area, series.StackedArea:
		c.drawArea(g, s)
	case series.Lollipop:
		c.drawLollipop(g, s)
	default:
		c.drawLineAndMarkers(g, s)
	}
	return g
}

func (c *Chart) drawBars(g *scene.Object, s *series.Series) {
	const halfWidth = 0.35
	for _, p := range s.Points {
		if series.IsInvalid(p.Y) || series.IsSkip(p.Y) {
			continue
		}
		var lower, upper float64
		switch s.Type {
		case series.Bar:
			lower, upper = c.stacker.Bar(s.YAxisIndex, int(p.X), s.Base, p.Y)
		case series.StackedBar:
			lower, upper = c.stacker.StackedBar(s.YAxisIndex, int(p.X), s.Base, p.Y)
		case series.LayeredBar:
			lower, upper = s.Base, p.Y
		}
		x0 := c.xCoor(p.X - halfWidth)
		x1 := c.xCoor(p.X + halfWidth)
		y0 := c.yCoor(s.YAxisIndex, lower)
		y1 := c.yCoor(s.YAxisIndex, upper)
		g.Add(&scene.Object{Kind: scene.KindRect,
			Corner: geom.Point{X: x0, Y: y0}, Opposite: geom.Point{X: x1, Y: y1}})
	}
}

func (c *Chart) drawArea(g *scene.Object, s *series.Series) {
	above := stackedAreaAbove(s)
	pts := make([]geom.Point, 0, len(s.Points)*2)
	base := make([]geom.Point, 0, len(s.Points))
	for _, p := range s.Points {
		if series.IsInvalid(p.Y) || series.IsSkip(p.Y) {
			continue
		}
		var lower, upper float64
		if s.Type == series.StackedArea {
			lower, upper = c.stacker.StackedArea(s.YAxisIndex, int(p.X), s.Base, p.Y, above)
		} else {
			lower, upper = s.Base, p.Y
		}
		x := c.xCoor(p.X)
		pts = append(pts, geom.Point{X: x, Y: c.yCoor(s.YAxisIndex, upper)})
		base = append(base, geom.Point{X: x, Y: c.yCoor(s.YAxisIndex, lower)})
	}
	for i := len(base) - 1; i >= 0; i-- {
		pts = append(pts, base[i])
	}
	if len(pts) >= 3 {
		g.Add(&scene.Object{Kind: scene.KindPolygon, Points: pts})
	}
}

func (c *Chart) drawLollipop(g *scene.Object, s *series.Series) {
	for _, p := range s.Points {
		if series.IsInvalid(p.Y) || series.IsSkip(p.Y) {
			continue
		}
		x := c.xCoor(p.X)
		y0 := c.yCoor(s.YAxisIndex, s.Base)
		y1 := c.yCoor(s.YAxisIndex, p.Y)
		g.Add(&scene.Object{Kind: scene.KindLine, Points: []geom.Point{{X: x, Y: y0}, {X: x, Y: y1}}})
		g.Add(series.Marker(s.Marker, geom.Point{X: x, Y: y1}, s.MarkerSize, s.Style.WidthPt, s.Style.Color, s.Style.Color))
	}
}

// drawLineAndMarkers handles XY, Scatter, Line, and Point: a pruned,
// clipped polyline (XY/Line only) plus markers at each valid, in-range
// point (all four).
func (c *Chart) drawLineAndMarkers(g *scene.Object, s *series.Series) {
	raw := c.seriesPixelPoints(s)

	if s.Type == series.XY || s.Type == series.Line {
		pruned := series.Prune(raw, series.DefaultPruneDist, nil)
		for _, run := range series.ClipPolyline(pruned, c.PlotBox) {
			if len(run) >= 2 {
				g.Add(&scene.Object{Kind: scene.KindPolyline, Points: run})
			}
		}
	}

	if s.MarkerSize > 0 {
		for _, p := range raw {
			if !series.Inside(p, c.PlotBox) {
				continue
			}
			g.Add(series.Marker(s.Marker, p, s.MarkerSize, s.Style.WidthPt, s.Style.Color, s.Style.Color))
		}
	}
}

// drawAxisLines draws the resolved axis line/arrow/edge for every shown
// axis.
func (c *Chart) drawAxisLines() *scene.Object {
	g := scene.NewGroup()
	if c.xAxis != nil && c.xAxis.ResolvedStyle != axis.StyleNone {
		y := c.PlotBox.MinY + c.xAxis.Coor(c.xAxis.ResolvedCross())
		g.Add(&scene.Object{Kind: scene.KindLine, Points: []geom.Point{
			{X: c.PlotBox.MinX, Y: y}, {X: c.PlotBox.MaxX, Y: y},
		}})
	}
	for i, a := range c.yAxes {
		if !c.yAxisShown(i) || a == nil || a.ResolvedStyle == axis.StyleNone {
			continue
		}
		x := c.PlotBox.MinX + a.Coor(a.ResolvedCross())
		g.Add(&scene.Object{Kind: scene.KindLine, Points: []geom.Point{
			{X: x, Y: c.PlotBox.MinY}, {X: x, Y: c.PlotBox.MaxY},
		}})
	}
	return g
}

// drawAxisNumbers renders every axis's placed number labels (the axis
// package has already resolved collisions via placeLabels).
func (c *Chart) drawAxisNumbers() *scene.Object {
	g := scene.NewGroup()
	for i, a := range c.yAxes {
		if !c.yAxisShown(i) || a == nil {
			continue
		}
		for _, lbl := range a.Labels {
			if lbl.Dropped {
				continue
			}
			g.Add(&scene.Object{Kind: scene.KindText, Text: lbl.Result.Text,
				At: geom.Point{X: c.PlotBox.MinX - 4, Y: c.PlotBox.MinY + a.Coor(lbl.Tick.Value)}})
		}
	}
	if c.xAxis != nil {
		for _, lbl := range c.xAxis.Labels {
			if lbl.Dropped {
				continue
			}
			g.Add(&scene.Object{Kind: scene.KindText, Text: lbl.Result.Text,
				At: geom.Point{X: c.PlotBox.MinX + c.xAxis.Coor(lbl.Tick.Value), Y: c.PlotBox.MinY - 12}})
		}
	}
	return g
}

// drawAxisText renders axis label/sub-label/unit strings and, for category
// axes, the resolved per-category labels.
func (c *Chart) drawAxisText() *scene.Object {
	g := scene.NewGroup()
	if c.xAxis != nil && c.xAxis.Label != "" {
		g.Add(&scene.Object{Kind: scene.KindText, Text: c.xAxis.Label,
			At: geom.Point{X: c.PlotBox.Center().X, Y: c.PlotBox.MinY - 24}})
	}
	for i, a := range c.yAxes {
		if !c.yAxisShown(i) || a == nil || a.Label == "" {
			continue
		}
		g.Add(&scene.Object{Kind: scene.KindText, Text: a.Label,
			At: geom.Point{X: c.PlotBox.MinX - 32, Y: c.PlotBox.Center().Y}})
	}
	if c.isCategoryChart() {
		for i, label := range c.catAxis.Labels() {
			if (i-c.catAxis.ResolvedStride.Start)%max1(c.catAxis.ResolvedStride.Step) != 0 {
				continue
			}
			g.Add(&scene.Object{Kind: scene.KindText, Text: label,
				At: geom.Point{X: c.xCoor(float64(i)), Y: c.PlotBox.MinY - 12}})
		}
	}
	return g
}

func max1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

// drawTags places a value tag at the last valid point of every tagged
// series, using the 8-direction collision search of the tag package.
func (c *Chart) drawTags() *scene.Object {
	g := scene.NewGroup()
	var placed []geom.Box
	for _, s := range c.series {
		if !s.Tag || len(s.Points) == 0 {
			continue
		}
		li := len(s.Points) - 1
		for li >= 0 && (series.IsInvalid(s.Points[li].Y) || series.IsSkip(s.Points[li].Y)) {
			li--
		}
		if li < 0 {
			continue
		}
		last := s.Points[li]
		anchor := geom.Point{X: c.xCoor(last.X), Y: c.yCoor(s.YAxisIndex, last.Y)}
		if !series.Inside(anchor, c.PlotBox) {
			continue
		}
		order := tag.PreferredOrder(geom.Point{}, geom.Point{})
		box, _, ok := tag.Place(anchor, 40, 14, 8, nil, order, placed, 2, 2)
		if !ok {
			continue
		}
		placed = append(placed, box)
		g.Add(&scene.Object{Kind: scene.KindText, Text: s.Name, At: geom.Point{X: box.MinX, Y: box.MinY}})
	}
	return g
}

func (c *Chart) drawTitle() *scene.Object {
	if c.cfg.Title == "" {
		return scene.NewGroup()
	}
	return &scene.Object{Kind: scene.KindText, Text: c.cfg.Title,
		At: geom.Point{X: c.PlotBox.Center().X, Y: c.PlotBox.MaxY + 16}}
}

func (c *Chart) drawPlotFrame() *scene.Object {
	if !c.cfg.Boxed {
		return scene.NewGroup()
	}
	return &scene.Object{Kind: scene.KindRect,
		Corner:   geom.Point{X: c.PlotBox.MinX, Y: c.PlotBox.MinY},
		Opposite: geom.Point{X: c.PlotBox.MaxX, Y: c.PlotBox.MaxY},
	}
}
