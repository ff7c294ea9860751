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

// Package chart implements a chart: two Y-axes, one X-axis, a series list,
// and a fixed-layer draw order. A Chart is built into a fixed plot
// rectangle with:
//
//	c := chart.New(chart.Config{...})
//	c.AddSeries(s)
//	c.Prepare(plotBox)
//	group := c.Draw()
package chart

import (
	"github.com/chartus/chartus/annotate"
	"github.com/chartus/chartus/axis"
	"github.com/chartus/chartus/categoryaxis"
	"github.com/chartus/chartus/color"
	"github.com/chartus/chartus/geom"
	"github.com/chartus/chartus/scene"
	"github.com/chartus/chartus/series"
)

// Config bundles a Chart's axis configuration and chrome.
type Config struct {
	XAxis        axis.Config
	CategoryAxis categoryaxis.Config
	YAxes        [2]axis.Config
	Boxed        bool
	BarMarginPx  float64
	Background   color.Color
	Title        string
}

// Chart owns a chart's axes, series list, and resolved layout.
type Chart struct {
	cfg Config

	xAxis  *axis.Axis        // set by Prepare iff the chart's X domain is numeric
	catAxis *categoryaxis.Axis // always allocated by New; used iff the chart's X domain is categorical
	yAxes  [2]*axis.Axis

	series  []*series.Series
	stacker *series.Stacker

	PlotBox geom.Box

	// Legend is the winning candidate from Draw's per-chart legend-box
	// discovery, nil if the chart has no legend entries or no candidate
	// fits. LowerAnnotations and UpperAnnotations are filled in by
	// ResolveAnnotations before Draw is called.
	Legend           *scene.Object
	LowerAnnotations []*scene.Object
	UpperAnnotations []*scene.Object

	// PendingLower and PendingUpper hold annotation primitives captured
	// during parsing, before this chart's plot box is known; ResolveAnnotations
	// turns them into LowerAnnotations/UpperAnnotations once Prepare has run.
	PendingLower []func(annotate.Target) *scene.Object
	PendingUpper []func(annotate.Target) *scene.Object
}

// New returns an empty Chart from cfg. Whether the chart ends up with a
// numeric or category X-axis is decided lazily, in Prepare, from the types
// of the series added to it; mixing category and numeric series on one
// chart is a validation error left to the caller.
func New(cfg Config) *Chart {
	return &Chart{
		cfg:     cfg,
		yAxes:   [2]*axis.Axis{axis.New(cfg.YAxes[0]), axis.New(cfg.YAxes[1])},
		catAxis: categoryaxis.NewAxis(cfg.CategoryAxis),
		stacker: series.NewStacker(),
	}
}

// AddSeries appends s to the receiver's series list.
func (c *Chart) AddSeries(s *series.Series) {
	c.series = append(c.series, s)
}

// Series returns the receiver's series list, for callers (e.g. emit) that
// build an interactive-document description of a prepared chart.
func (c *Chart) Series() []*series.Series {
	return c.series
}

// Categories returns the receiver's category-axis labels in position
// order, or nil for a chart with a numeric X-axis.
func (c *Chart) Categories() []string {
	if !c.isCategoryChart() {
		return nil
	}
	return c.catAxis.Labels()
}

// XAxis returns the receiver's resolved numeric X-axis, or nil for a chart
// whose X domain turned out to be categorical.
func (c *Chart) XAxis() *axis.Axis {
	return c.xAxis
}

// YAxis returns the receiver's resolved Y-axis at index i (0 or 1).
func (c *Chart) YAxis(i int) *axis.Axis {
	return c.yAxes[i]
}

// YAxisShown reports whether Y-axis index i is referenced by any series.
func (c *Chart) YAxisShown(i int) bool {
	return c.yAxisShown(i)
}

// CategoryAxis returns the receiver's category axis, or nil for a chart
// whose X domain is numeric.
func (c *Chart) CategoryAxis() *categoryaxis.Axis {
	if !c.isCategoryChart() {
		return nil
	}
	return c.catAxis
}

// IsCategoryChart reports whether the receiver's X domain is categorical.
func (c *Chart) IsCategoryChart() bool {
	return c.isCategoryChart()
}

// Background returns the receiver's configured chart background color.
func (c *Chart) Background() color.Color {
	return c.cfg.Background
}

// ScreenPoint maps a data point on series s to plot-box pixel coordinates,
// in the same y-up convention Draw uses internally.
func (c *Chart) ScreenPoint(s *series.Series, p series.Point) geom.Point {
	return geom.Point{X: c.xCoor(p.X), Y: c.yCoor(s.YAxisIndex, p.Y)}
}

// AddCategory registers label as a category on the receiver's category
// axis (if new) and returns its stable integer position.
func (c *Chart) AddCategory(label string) int {
	return c.catAxis.Add(label)
}

// yAxisShown reports whether Y-axis index i is referenced by any series.
func (c *Chart) yAxisShown(i int) bool {
	for _, s := range c.series {
		if s.YAxisIndex == i {
			return true
		}
	}
	return false
}

// isCategoryChart reports whether any series in the receiver uses a
// category X-axis. It is an error (left to the caller's validation layer)
// for a chart to mix category and numeric series.
func (c *Chart) isCategoryChart() bool {
	for _, s := range c.series {
		if s.Type.IsCategoryX() {
			return true
		}
	}
	return false
}

// Prepare resolves the receiver's axis ranges from its series data, lays
// out the X-axis (category or numeric), lays out both Y-axes, and computes
// stack offsets for every stacking series, all within the given plot box.
//
// Axes are legalized and ticked in X-then-Y order; every Y-axis gets the
// plot box's full height as its length, regardless of the X-axis's
// category label rotation.
func (c *Chart) Prepare(plotBox geom.Box) {
	c.PlotBox = plotBox

	if c.isCategoryChart() {
		c.prepareCategoryX(plotBox)
	} else {
		c.prepareNumericX(plotBox)
	}

	c.prepareStacks()

	for i := range c.yAxes {
		if !c.yAxisShown(i) {
			continue
		}
		min, max := c.yDataMinMax(i)
		c.yAxes[i].Prepare(min, max, plotBox.Height(), nil)
	}
}

func (c *Chart) prepareNumericX(plotBox geom.Box) {
	min, max := xDataMinMax(c.series)
	c.xAxis = axis.New(c.cfg.XAxis)
	c.xAxis.Prepare(min, max, plotBox.Width(), nil)
}

// prepareCategoryX lays out the receiver's category axis. Category strings
// are registered in advance via AddCategory; this step only resolves the
// numeric range, stride, and rotation once every category is known.
func (c *Chart) prepareCategoryX(plotBox geom.Box) {
	hasBarOrStair := false
	for _, s := range c.series {
		if s.Type == series.Bar || s.Type == series.StackedBar || s.Type == series.LayeredBar {
			hasBarOrStair = true
		}
	}
	min, max := categoryaxis.RangeFor(c.catAxis.Count(), hasBarOrStair, c.cfg.BarMarginPx)
	c.catAxis.Min, c.catAxis.Max, c.catAxis.Length = min, max, plotBox.Width()
	c.catAxis.Prepare(func(s string) float64 { return float64(len(s)) * 6 })
}

// prepareStacks resets the stacker and replays every stacking series
// (StackedBar, LayeredBar, StackedArea) in series-list order: stacking
// groups are keyed by (Y-axis, category position) and accumulate in
// definition order.
func (c *Chart) prepareStacks() {
	c.stacker = series.NewStacker()
	for _, s := range c.series {
		switch s.Type {
		case series.Bar:
			for i := range s.Points {
				c.stacker.Bar(s.YAxisIndex, int(s.Points[i].X), s.Base, 0)
			}
		case series.StackedBar:
			for _, p := range s.Points {
				c.stacker.StackedBar(s.YAxisIndex, int(p.X), s.Base, p.Y)
			}
		case series.LayeredBar:
			for i := range s.Points {
				c.stacker.LayeredBar(s.YAxisIndex, int(s.Points[i].X))
			}
		case series.StackedArea:
			above := stackedAreaAbove(s)
			for _, p := range s.Points {
				c.stacker.StackedArea(s.YAxisIndex, int(p.X), s.Base, p.Y, above)
			}
		}
	}
}

// stackedAreaAbove resolves the direction (above/below base) a
// StackedArea series stacks in, chosen by its first valid sample's sign.
func stackedAreaAbove(s *series.Series) bool {
	for _, p := range s.Points {
		if series.IsInvalid(p.Y) || series.IsSkip(p.Y) {
			continue
		}
		return p.Y >= 0
	}
	return true
}

// yDataMinMax returns the combined data min/max across every series on Y
// axis index i, including stack extents for stacking series.
func (c *Chart) yDataMinMax(i int) (min, max float64) {
	found := false
	for _, s := range c.series {
		if s.YAxisIndex != i {
			continue
		}
		smin, smax := s.DataMinMax()
		if !found {
			min, max = smin, smax
			found = true
			continue
		}
		if smin < min {
			min = smin
		}
		if smax > max {
			max = smax
		}
	}
	return min, max
}

// AnnotateBelow and AnnotateAbove queue an annotation primitive, expressed
// as a function from the chart's eventual annotate.Target to the scene
// object it draws, to be resolved once the chart's plot box and axes are
// final (see ResolveAnnotations). "Below"/"Above" match the lower/upper
// annotation draw layers.
func (c *Chart) AnnotateBelow(f func(annotate.Target) *scene.Object) {
	c.PendingLower = append(c.PendingLower, f)
}

func (c *Chart) AnnotateAbove(f func(annotate.Target) *scene.Object) {
	c.PendingUpper = append(c.PendingUpper, f)
}

// ResolveAnnotations builds the receiver's annotate.Target from its
// now-final plot box and axis mappings and evaluates every pending
// annotation, filling LowerAnnotations/UpperAnnotations for Draw. It must
// be called after Prepare and before Draw.
func (c *Chart) ResolveAnnotations() {
	target := annotate.Target{
		PlotBox: c.PlotBox,
		XAxis:   c.xCoor,
		YAxis:   func(value float64, yAxisIndex int) float64 { return c.yCoor(yAxisIndex, value) },
	}
	for _, f := range c.PendingLower {
		c.LowerAnnotations = append(c.LowerAnnotations, f(target))
	}
	for _, f := range c.PendingUpper {
		c.UpperAnnotations = append(c.UpperAnnotations, f(target))
	}
}

func xDataMinMax(ss []*series.Series) (min, max float64) {
	found := false
	for _, s := range ss {
		for _, p := range s.Points {
			if series.IsInvalid(p.X) || series.IsSkip(p.X) {
				continue
			}
			if !found {
				min, max = p.X, p.X
				found = true
				continue
			}
			if p.X < min {
				min = p.X
			}
			if p.X > max {
				max = p.X
			}
		}
	}
	return min, max
}
