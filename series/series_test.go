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
	"testing"

	"github.com/chartus/chartus/geom"
)

func TestDataMinMaxSkipsSentinels(t *testing.T) {
	s := New(XY, "s", 0)
	s.Points = []Point{{X: 0, Y: 5}, {X: 1, Y: INVALID}, {X: 2, Y: SKIP}, {X: 3, Y: 1}}
	min, max := s.DataMinMax()
	if min != 1 || max != 5 {
		t.Errorf("DataMinMax() = (%v, %v), want (1, 5)", min, max)
	}
	if s.AtBase() {
		t.Error("AtBase() = true, want false (series has valid points)")
	}
}

func TestDataMinMaxAllInvalidIsAtBase(t *testing.T) {
	s := New(XY, "s", 0)
	s.Base = 10
	s.Points = []Point{{X: 0, Y: INVALID}}
	min, max := s.DataMinMax()
	if min != 10 || max != 10 {
		t.Errorf("DataMinMax() = (%v, %v), want (10, 10)", min, max)
	}
	if !s.AtBase() {
		t.Error("AtBase() = false, want true")
	}
}

func TestStackerBarResetsOffsets(t *testing.T) {
	st := NewStacker()
	st.StackedBar(0, 0, 0, 5)
	lower, upper := st.Bar(0, 0, 0, 3)
	if lower != 0 || upper != 3 {
		t.Errorf("Bar() after prior stacking = (%v, %v), want (0, 3)", lower, upper)
	}
}

func TestStackerStackedBarAccumulatesBySign(t *testing.T) {
	st := NewStacker()
	l1, u1 := st.StackedBar(0, 0, 0, 5)
	l2, u2 := st.StackedBar(0, 0, 0, 3)
	if l1 != 0 || u1 != 5 {
		t.Errorf("first StackedBar = (%v, %v), want (0, 5)", l1, u1)
	}
	if l2 != 5 || u2 != 8 {
		t.Errorf("second StackedBar = (%v, %v), want (5, 8)", l2, u2)
	}
	l3, u3 := st.StackedBar(0, 0, 0, -2)
	if l3 != -2 || u3 != 0 {
		t.Errorf("negative StackedBar = (%v, %v), want (-2, 0)", l3, u3)
	}
}

func TestStackerLayeredBarIncrementsIndex(t *testing.T) {
	st := NewStacker()
	if l := st.LayeredBar(0, 0); l != 0 {
		t.Errorf("first LayeredBar index = %d, want 0", l)
	}
	if l := st.LayeredBar(0, 0); l != 1 {
		t.Errorf("second LayeredBar index = %d, want 1", l)
	}
}

func TestStackerDifferentCategoriesIndependent(t *testing.T) {
	st := NewStacker()
	st.StackedBar(0, 0, 0, 5)
	l, u := st.StackedBar(0, 1, 0, 3)
	if l != 0 || u != 3 {
		t.Errorf("StackedBar on a different category = (%v, %v), want (0, 3)", l, u)
	}
}

func TestPruneCollapsesCollinearRun(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0.01}, {X: 2, Y: -0.01}, {X: 3, Y: 0}}
	got := Prune(pts, 0.3, nil)
	if len(got) != 2 {
		t.Fatalf("Prune() = %v, want 2 points (collapsed run)", got)
	}
}

func TestPruneSplitsOnLargeDeviation(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 10}, {X: 2, Y: 0}}
	got := Prune(pts, 0.3, nil)
	if len(got) != 3 {
		t.Errorf("Prune() = %v, want all 3 points retained (spike)", got)
	}
}

func TestPrunePreservesMarkedAnchors(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}
	got := Prune(pts, 0.3, func(i int) bool { return i == 2 })
	found := false
	for _, p := range got {
		if p == (geom.Point{X: 2, Y: 0}) {
			found = true
		}
	}
	if !found {
		t.Errorf("Prune() dropped a preserved anchor: got %v", got)
	}
}

func TestPruneScatterDedupesByBucket(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 0.01, Y: 0.01}, {X: 5, Y: 5}}
	got := PruneScatter(pts, 0.3)
	if len(got) != 2 {
		t.Errorf("PruneScatter() = %v, want 2 (first two points bucket together)", got)
	}
}

func TestClipSegmentFullyInside(t *testing.T) {
	box := geom.NewBox(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 10})
	p0, p1, ok := ClipSegment(geom.Point{X: 1, Y: 1}, geom.Point{X: 5, Y: 5}, box)
	if !ok || p0.X != 1 || p1.X != 5 {
		t.Errorf("ClipSegment(inside) = (%v, %v, %v), want unchanged endpoints", p0, p1, ok)
	}
}

func TestClipSegmentPartiallyOutside(t *testing.T) {
	box := geom.NewBox(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 10})
	_, p1, ok := ClipSegment(geom.Point{X: 5, Y: 5}, geom.Point{X: 15, Y: 5}, box)
	if !ok {
		t.Fatal("ClipSegment() should keep the inside portion")
	}
	if p1.X != 10 {
		t.Errorf("ClipSegment() clipped endpoint X = %v, want 10", p1.X)
	}
}

func TestClipSegmentFullyOutsideRejected(t *testing.T) {
	box := geom.NewBox(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 10})
	_, _, ok := ClipSegment(geom.Point{X: 20, Y: 20}, geom.Point{X: 30, Y: 30}, box)
	if ok {
		t.Error("ClipSegment() should reject a segment entirely outside the box")
	}
}

func TestClipSegmentPassThroughKeepsBothIntersections(t *testing.T) {
	box := geom.NewBox(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 10})
	p0, p1, ok := ClipSegment(geom.Point{X: -5, Y: 5}, geom.Point{X: 15, Y: 5}, box)
	if !ok {
		t.Fatal("ClipSegment() should find a visible portion crossing through")
	}
	if p0.X != 0 || p1.X != 10 {
		t.Errorf("ClipSegment(through) = (%v, %v), want X in {0, 10}", p0, p1)
	}
}

func TestInsideRespectsBoxBounds(t *testing.T) {
	box := geom.NewBox(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 10})
	if !Inside(geom.Point{X: 5, Y: 5}, box) {
		t.Error("Inside(center) = false, want true")
	}
	if Inside(geom.Point{X: 50, Y: 50}, box) {
		t.Error("Inside(far outside) = true, want false")
	}
}

func TestMarkerBoundingBoxMatchesSize(t *testing.T) {
	box := MarkerBoundingBox(geom.Point{X: 0, Y: 0}, 10)
	if box.Width() != 10 || box.Height() != 10 {
		t.Errorf("MarkerBoundingBox() = %+v, want 10x10", box)
	}
}

func TestTypeIsCategoryX(t *testing.T) {
	if XY.IsCategoryX() || Scatter.IsCategoryX() {
		t.Error("XY/Scatter should not be category-X types")
	}
	if !Bar.IsCategoryX() || !Line.IsCategoryX() {
		t.Error("Bar/Line should be category-X types")
	}
}

func TestTypeBelowAxes(t *testing.T) {
	if !Bar.BelowAxes() || !StackedArea.BelowAxes() {
		t.Error("Bar/StackedArea should draw below axes")
	}
	if Line.BelowAxes() || Scatter.BelowAxes() {
		t.Error("Line/Scatter should draw above axes")
	}
}
