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

package ensemble

import (
	"testing"

	"github.com/chartus/chartus/axis"
	"github.com/chartus/chartus/chart"
	"github.com/chartus/chartus/series"
)

func newTestChart() *chart.Chart {
	c := chart.New(chart.Config{
		XAxis: axis.Config{IsX: true},
		YAxes: [2]axis.Config{{}, {Style: axis.StyleNone}},
	})
	s := series.New(series.Line, "requests", 0)
	s.Points = append(s.Points, series.Point{X: 0, Y: 1}, series.Point{X: 1, Y: 2})
	c.AddSeries(s)
	return c
}

func TestBuildProducesSingleChartDocument(t *testing.T) {
	e := New(Config{Cols: 1, Rows: 1, MarginPt: 10, Title: "title"})
	e.AddChart(newTestChart(), Span{0, 0, 0, 0}, 300, 200, 40, 10, 10, 30)
	doc, err := e.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(doc.Children) == 0 {
		t.Error("Build() produced an empty document")
	}
}

func TestBuildTwoChartsShareAlignedGrid(t *testing.T) {
	e := New(Config{Cols: 2, Rows: 1})
	e.AddChart(newTestChart(), Span{0, 0, 0, 0}, 200, 200, 40, 10, 10, 30)
	e.AddChart(newTestChart(), Span{1, 1, 0, 0}, 300, 200, 40, 10, 10, 30)
	doc, err := e.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(doc.Children) == 0 {
		t.Error("Build() produced an empty document")
	}
}

func TestLegendHolePrefersEmptyCorner(t *testing.T) {
	e := New(Config{Cols: 2, Rows: 2})
	e.members = []*member{
		{chart: newTestChart(), span: Span{0, 0, 0, 0}},
		{chart: newTestChart(), span: Span{1, 1, 0, 0}},
		{chart: newTestChart(), span: Span{0, 0, 1, 1}},
	}
	hole, ok := e.legendHole()
	if !ok {
		t.Fatal("legendHole() found nothing")
	}
	if hole.X1 != 1 || hole.Y1 != 1 {
		t.Errorf("legendHole() = %+v, want the empty (1,1) cell", hole)
	}
}

func TestBuildRecoversFloatingPointTrap(t *testing.T) {
	e := New(Config{Cols: 1, Rows: 1})
	e.members = []*member{{chart: nil, span: Span{0, 0, 0, 0}}}
	doc, err := e.Build()
	if err != nil {
		t.Fatalf("Build() error = %v, want recovered error card", err)
	}
	if len(doc.Children) == 0 {
		t.Error("Build() recovered but produced an empty document")
	}
}
