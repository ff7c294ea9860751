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

package scene

import (
	"testing"

	"github.com/chartus/chartus/geom"
)

func TestBoundingBoxPerKind(t *testing.T) {
	for _, test := range []struct {
		name string
		obj  *Object
		want geom.Box
	}{
		{
			name: "line",
			obj:  &Object{Kind: KindLine, Points: []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 3}}},
			want: geom.NewBox(geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 3}),
		},
		{
			name: "rect",
			obj:  &Object{Kind: KindRect, Corner: geom.Point{X: 1, Y: 1}, Opposite: geom.Point{X: 5, Y: 3}},
			want: geom.NewBox(geom.Point{X: 1, Y: 1}, geom.Point{X: 5, Y: 3}),
		},
		{
			name: "circle",
			obj:  &Object{Kind: KindCircle, Center: geom.Point{X: 2, Y: 2}, Radius: 2},
			want: geom.NewBox(geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 4}),
		},
		{
			name: "ellipse",
			obj:  &Object{Kind: KindEllipse, Center: geom.Point{X: 0, Y: 0}, RX: 3, RY: 1},
			want: geom.NewBox(geom.Point{X: -3, Y: -1}, geom.Point{X: 3, Y: 1}),
		},
		{
			name: "polygon",
			obj: &Object{Kind: KindPolygon, Points: []geom.Point{
				{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 2},
			}},
			want: geom.NewBox(geom.Point{X: 0, Y: 0}, geom.Point{X: 2, Y: 2}),
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := test.obj.BoundingBox(Attrs{})
			if got != test.want {
				t.Errorf("BoundingBox() = %+v, want %+v", got, test.want)
			}
		})
	}
}

func TestBoundingBoxText(t *testing.T) {
	o := &Object{Kind: KindText, Text: "ab", At: geom.Point{X: 0, Y: 0}}
	box := o.BoundingBox(Attrs{Font: DefaultFont})
	if box.Width() <= 0 || box.Height() <= 0 {
		t.Errorf("text BoundingBox() = %+v, want positive width/height", box)
	}
}

func TestBoundingBoxGroupUnionsChildren(t *testing.T) {
	g := NewGroup()
	g.Add(&Object{Kind: KindCircle, Center: geom.Point{X: -5, Y: 0}, Radius: 1})
	g.Add(&Object{Kind: KindCircle, Center: geom.Point{X: 5, Y: 0}, Radius: 1})
	box := g.BoundingBox(Attrs{})
	want := geom.NewBox(geom.Point{X: -6, Y: -1}, geom.Point{X: 6, Y: 1})
	if box != want {
		t.Errorf("group BoundingBox() = %+v, want %+v", box, want)
	}
}

func TestAttrsInheritThroughGroup(t *testing.T) {
	g := NewGroup()
	g.Attrs.Font = &Font{SizePt: 20, WidthFactor: 1, HeightFactor: 1, BaselineFactor: 1}
	text := &Object{Kind: KindText, Text: "x", At: geom.Point{}}
	g.Add(text)

	withInherited := text.BoundingBox(overlay(Attrs{}, g.Attrs))
	withoutInherited := text.BoundingBox(Attrs{})
	if withInherited.Width() <= withoutInherited.Width() {
		t.Errorf("inherited 20pt font should widen text box beyond default font: got %v vs %v",
			withInherited.Width(), withoutInherited.Width())
	}
}

func TestCollides(t *testing.T) {
	a := &Object{Kind: KindRect, Corner: geom.Point{X: 0, Y: 0}, Opposite: geom.Point{X: 10, Y: 10}}
	b := &Object{Kind: KindRect, Corner: geom.Point{X: 20, Y: 20}, Opposite: geom.Point{X: 30, Y: 30}}
	if Collides(a, Attrs{}, b, Attrs{}, 0, 0) {
		t.Error("disjoint rects should not collide with zero margin")
	}
	if !Collides(a, Attrs{}, b, Attrs{}, 15, 15) {
		t.Error("disjoint rects should collide once margin bridges the gap")
	}
}

func TestMoveToAnchorsBoundingBox(t *testing.T) {
	o := &Object{Kind: KindRect, Corner: geom.Point{X: 0, Y: 0}, Opposite: geom.Point{X: 4, Y: 2}}
	o.MoveTo(Attrs{}, geom.AnchorCenter, 100, 100)
	box := o.BoundingBox(Attrs{})
	center := box.Center()
	if center.X != 100 || center.Y != 100 {
		t.Errorf("after MoveTo center, box center = (%v, %v), want (100, 100)", center.X, center.Y)
	}
}

func TestFrontToBackMovesLastChildToFront(t *testing.T) {
	g := NewGroup()
	a := &Object{ID: "a"}
	b := &Object{ID: "b"}
	c := &Object{ID: "c"}
	g.Add(a).Add(b).Add(c)
	g.FrontToBack()
	if g.Children[0].ID != "c" {
		t.Errorf("FrontToBack: Children[0].ID = %q, want %q", g.Children[0].ID, "c")
	}
	if len(g.Children) != 3 {
		t.Fatalf("FrontToBack changed child count: got %d, want 3", len(g.Children))
	}
}

func TestMoveObjsSeparatesOverlappingMover(t *testing.T) {
	mover := &Object{Kind: KindRect, Corner: geom.Point{X: 0, Y: 0}, Opposite: geom.Point{X: 10, Y: 10}}
	avoider := &Object{Kind: KindRect, Corner: geom.Point{X: 5, Y: 0}, Opposite: geom.Point{X: 15, Y: 10}}

	MoveObjs(geom.Point{X: -1, Y: 0}, []*Object{mover}, []*Object{avoider}, Attrs{}, 0, 0)

	if geom.Collides(mover.BoundingBox(Attrs{}), avoider.BoundingBox(Attrs{}), 0, 0) {
		t.Error("MoveObjs left mover colliding with avoider")
	}
}

func TestMoveObjsNoOverlapIsNoop(t *testing.T) {
	mover := &Object{Kind: KindRect, Corner: geom.Point{X: 0, Y: 0}, Opposite: geom.Point{X: 1, Y: 1}}
	avoider := &Object{Kind: KindRect, Corner: geom.Point{X: 100, Y: 100}, Opposite: geom.Point{X: 101, Y: 101}}
	MoveObjs(geom.Point{X: 1, Y: 0}, []*Object{mover}, []*Object{avoider}, Attrs{}, 0, 0)
	want := geom.NewBox(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 1})
	if got := mover.BoundingBox(Attrs{}); got != want {
		t.Errorf("MoveObjs moved a non-colliding mover: got %+v, want %+v", got, want)
	}
}
