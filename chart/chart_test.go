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
	"testing"

	"github.com/chartus/chartus/axis"
	"github.com/chartus/chartus/categoryaxis"
	"github.com/chartus/chartus/geom"
	"github.com/chartus/chartus/series"
)

func newTestChart() *Chart {
	return New(Config{
		XAxis:        axis.Config{IsX: true},
		CategoryAxis: categoryaxis.Config{LineHeight: 12},
		YAxes:        [2]axis.Config{{}, {}},
	})
}

func TestPrepareNumericXScenario(t *testing.T) {
	c := newTestChart()
	s := series.New(series.XY, "requests", 0)
	s.Points = []series.Point{{X: 0, Y: 10}, {X: 1, Y: 20}, {X: 2, Y: 15}}
	c.AddSeries(s)

	c.Prepare(geom.NewBox(geom.Point{X: 0, Y: 0}, geom.Point{X: 400, Y: 300}))

	if c.xAxis == nil {
		t.Fatal("Prepare() did not resolve a numeric X-axis")
	}
	if c.catAxis != nil && c.isCategoryChart() {
		t.Error("a numeric series should not resolve a category axis")
	}
	if !c.yAxisShown(0) {
		t.Error("yAxisShown(0) = false, want true (series references axis 0)")
	}
	if c.yAxisShown(1) {
		t.Error("yAxisShown(1) = true, want false (no series references axis 1)")
	}
}

func TestPrepareCategoryXScenario(t *testing.T) {
	c := newTestChart()
	catA := c.AddCategory("alpha")
	catB := c.AddCategory("beta")

	s := series.New(series.Bar, "count", 0)
	s.Points = []series.Point{{X: float64(catA), Y: 5}, {X: float64(catB), Y: 8}}
	c.AddSeries(s)

	c.Prepare(geom.NewBox(geom.Point{X: 0, Y: 0}, geom.Point{X: 400, Y: 300}))

	if c.catAxis == nil {
		t.Fatal("Prepare() did not resolve a category X-axis")
	}
	if c.catAxis.Count() != 2 {
		t.Errorf("catAxis.Count() = %d, want 2", c.catAxis.Count())
	}
}

func TestPrepareStacksAccumulatesStackedBar(t *testing.T) {
	c := newTestChart()
	cat := c.AddCategory("only")

	lower := series.New(series.StackedBar, "lower", 0)
	lower.Points = []series.Point{{X: float64(cat), Y: 5}}
	upper := series.New(series.StackedBar, "upper", 0)
	upper.Points = []series.Point{{X: float64(cat), Y: 3}}
	c.AddSeries(lower)
	c.AddSeries(upper)

	c.Prepare(geom.NewBox(geom.Point{X: 0, Y: 0}, geom.Point{X: 400, Y: 300}))

	l1, u1 := c.stacker.StackedBar(0, cat, 0, 0)
	if l1 != 8 || u1 != 8 {
		t.Errorf("stacker offset after Prepare's replay = (%v, %v), want (8, 8) (no-op add of 0 atop 5+3)", l1, u1)
	}
}

func TestDrawProducesNonEmptyScene(t *testing.T) {
	c := newTestChart()
	s := series.New(series.Line, "x", 0)
	catA := c.AddCategory("a")
	catB := c.AddCategory("b")
	s.Points = []series.Point{{X: float64(catA), Y: 1}, {X: float64(catB), Y: 2}}
	c.AddSeries(s)
	c.Prepare(geom.NewBox(geom.Point{X: 0, Y: 0}, geom.Point{X: 400, Y: 300}))

	root := c.Draw()
	if len(root.Children) == 0 {
		t.Error("Draw() returned a group with no layers")
	}
}

func TestYAxisShownDerivedFromSeriesReference(t *testing.T) {
	c := newTestChart()
	s := series.New(series.XY, "s", 1)
	s.Points = []series.Point{{X: 0, Y: 1}}
	c.AddSeries(s)
	if c.yAxisShown(0) {
		t.Error("yAxisShown(0) = true, want false")
	}
	if !c.yAxisShown(1) {
		t.Error("yAxisShown(1) = false, want true")
	}
}
