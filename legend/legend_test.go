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

package legend

import (
	"testing"

	"github.com/chartus/chartus/color"
	"github.com/chartus/chartus/geom"
	"github.com/chartus/chartus/series"
)

func TestGroupMergesIdenticalVisualEntries(t *testing.T) {
	red := color.RGB(255, 0, 0)
	entries := []Entry{
		{Name: "cpu", Color: red, HasLine: true, LineWidthPt: 1.5},
		{Name: "mem", Color: red, HasLine: true, LineWidthPt: 1.5},
		{Name: "disk", Color: color.RGB(0, 255, 0), HasLine: true, LineWidthPt: 1.5},
	}
	got := Group(entries)
	if len(got) != 2 {
		t.Fatalf("Group() returned %d entries, want 2", len(got))
	}
	if got[0].Name != "cpu, mem" {
		t.Errorf("Group()[0].Name = %q, want %q", got[0].Name, "cpu, mem")
	}
}

func TestGroupPreservesDistinctMarkers(t *testing.T) {
	c := color.RGB(0, 0, 255)
	entries := []Entry{
		{Name: "a", Color: c, HasMarker: true, Marker: series.Circle},
		{Name: "b", Color: c, HasMarker: true, Marker: series.Square},
	}
	got := Group(entries)
	if len(got) != 2 {
		t.Errorf("Group() merged distinct markers: got %d entries, want 2", len(got))
	}
}

func TestBestLayoutFitsWithinWidth(t *testing.T) {
	l := BestLayout(10, 50, 20, 120, 1000)
	if l.Cols > 2 {
		t.Errorf("BestLayout() cols = %d, want <= 2 (120/50 = 2.4)", l.Cols)
	}
	if l.Rows*l.Cols < 10 {
		t.Errorf("BestLayout() rows*cols = %d, want >= 10 entries covered", l.Rows*l.Cols)
	}
}

func TestBestLayoutSingleEntry(t *testing.T) {
	l := BestLayout(1, 50, 20, 500, 500)
	if l.Rows != 1 || l.Cols != 1 {
		t.Errorf("BestLayout(1, ...) = %+v, want {1, 1}", l)
	}
}

func TestBestLayoutZeroEntries(t *testing.T) {
	l := BestLayout(0, 50, 20, 500, 500)
	if l.Rows != 0 || l.Cols != 0 {
		t.Errorf("BestLayout(0, ...) = %+v, want {0, 0}", l)
	}
}

func TestBuildProducesOneGroupPerEntry(t *testing.T) {
	entries := []Entry{
		{Name: "a", Color: color.RGB(1, 2, 3), HasLine: true},
		{Name: "b", Color: color.RGB(4, 5, 6), HasLine: true},
	}
	root := Build(entries, Layout{Rows: 1, Cols: 2}, 60, 20, geom.Point{})
	if len(root.Children) != 2 {
		t.Errorf("Build() produced %d children, want 2", len(root.Children))
	}
}
