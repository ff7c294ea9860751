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

// Package scene implements the low-level vector scene graph: a polymorphic
// drawable object tagged union (Line, Rect, Circle, Ellipse, Polyline,
// Polygon, Text, Group), lexical attribute inheritance, bounding-box
// queries, anchored translation, and collision testing. It also
// serializes the graph to SVG.
package scene

import (
	"github.com/chartus/chartus/color"
	"github.com/chartus/chartus/geom"
)

// Kind tags the variant of an Object.
type Kind int

const (
	KindLine Kind = iota
	KindRect
	KindCircle
	KindEllipse
	KindPolyline
	KindPolygon
	KindText
	KindGroup
)

// Attrs is a mutable attribute record: text font, colors, line styling, and
// text anchoring. A zero-valued field is "unset", meaning "inherit from the
// nearest ancestor that sets it."
type Attrs struct {
	TextColor   color.Color
	FillColor   color.Color
	LineColor   color.Color
	LineWidthPt float64
	Dash        []float64
	TextAnchor  geom.Anchor
	Font        *Font
}

// overlay returns attrs overlaid on top of base: any field attrs sets
// (non-Undefined color, non-zero width, non-nil dash/font) wins, otherwise
// base's value is kept. An emitter walks the tree collecting the current
// overlay as it descends; this fold is pure, so the same Attrs value can
// be reused across sibling subtrees without aliasing state between them.
func overlay(base, attrs Attrs) Attrs {
	ret := base
	if !attrs.TextColor.IsUndefined() {
		ret.TextColor = attrs.TextColor
	}
	if !attrs.FillColor.IsUndefined() {
		ret.FillColor = attrs.FillColor
	}
	if !attrs.LineColor.IsUndefined() {
		ret.LineColor = attrs.LineColor
	}
	if attrs.LineWidthPt != 0 {
		ret.LineWidthPt = attrs.LineWidthPt
	}
	if attrs.Dash != nil {
		ret.Dash = attrs.Dash
	}
	if attrs.TextAnchor != 0 {
		ret.TextAnchor = attrs.TextAnchor
	}
	if attrs.Font != nil {
		ret.Font = attrs.Font
	}
	return ret
}

// Object is a single node in the scene graph: either a concrete drawable
// primitive or a Group of children with its own Attrs overlay.
type Object struct {
	Kind Kind

	// Geometry, meaningful per Kind.
	Points  []geom.Point // Line: 2 points; Polyline/Polygon: N points
	Center  geom.Point   // Circle/Ellipse
	Radius  float64      // Circle
	RX, RY  float64      // Ellipse
	Corner  geom.Point   // Rect: one corner
	Opposite geom.Point  // Rect: opposite corner
	Rounding float64     // Rect: corner rounding radius

	// Text, meaningful for KindText.
	Text string
	At   geom.Point

	// Group, meaningful for KindGroup.
	Children []*Object

	Attrs Attrs
	ID    string // stable identifier, used by the label registry
}

// NewGroup returns a new, empty Group.
func NewGroup() *Object {
	return &Object{Kind: KindGroup}
}

// Add appends child to the receiver's children (the receiver must be a
// Group) and returns the receiver, to facilitate chaining.
func (o *Object) Add(child *Object) *Object {
	o.Children = append(o.Children, child)
	return o
}

// FrontToBack moves the receiver's last child to the front (index 0) of its
// child list, used to push newly-inserted backgrounds behind
// already-present foregrounds.
func (o *Object) FrontToBack() {
	n := len(o.Children)
	if n < 2 {
		return
	}
	last := o.Children[n-1]
	copy(o.Children[1:], o.Children[:n-1])
	o.Children[0] = last
}

// BoundingBox returns the receiver's bounding box under the given inherited
// attributes (used to resolve font metrics for Text objects).
func (o *Object) BoundingBox(inherited Attrs) geom.Box {
	attrs := overlay(inherited, o.Attrs)
	var box geom.Box
	switch o.Kind {
	case KindLine, KindPolyline, KindPolygon:
		for _, p := range o.Points {
			box.Update(p)
		}
	case KindRect:
		box.Update(o.Corner)
		box.Update(o.Opposite)
	case KindCircle:
		box.Update(geom.Point{X: o.Center.X - o.Radius, Y: o.Center.Y - o.Radius})
		box.Update(geom.Point{X: o.Center.X + o.Radius, Y: o.Center.Y + o.Radius})
	case KindEllipse:
		box.Update(geom.Point{X: o.Center.X - o.RX, Y: o.Center.Y - o.RY})
		box.Update(geom.Point{X: o.Center.X + o.RX, Y: o.Center.Y + o.RY})
	case KindText:
		f := attrs.Font
		if f == nil {
			f = DefaultFont
		}
		w := f.TextWidth(o.Text)
		h := f.Height()
		box.Update(o.At)
		box.Update(geom.Point{X: o.At.X + w, Y: o.At.Y + h})
	case KindGroup:
		for _, c := range o.Children {
			box.UpdateBox(c.BoundingBox(attrs))
		}
	}
	return box
}

// MoveTo translates the receiver (and, if a Group, all its children in
// lockstep) so that the anchor point of its bounding box lands on (x, y).
func (o *Object) MoveTo(inherited Attrs, anchor geom.Anchor, x, y float64) {
	box := o.BoundingBox(inherited)
	if !box.Defined() {
		return
	}
	dx, dy := box.MoveTo(anchor, x, y)
	o.Translate(dx, dy)
}

// Translate shifts the receiver (recursively, for Groups) by (dx, dy).
func (o *Object) Translate(dx, dy float64) {
	switch o.Kind {
	case KindLine, KindPolyline, KindPolygon:
		for i := range o.Points {
			o.Points[i].X += dx
			o.Points[i].Y += dy
		}
	case KindRect:
		o.Corner.X += dx
		o.Corner.Y += dy
		o.Opposite.X += dx
		o.Opposite.Y += dy
	case KindCircle, KindEllipse:
		o.Center.X += dx
		o.Center.Y += dy
	case KindText:
		o.At.X += dx
		o.At.Y += dy
	case KindGroup:
		for _, c := range o.Children {
			c.Translate(dx, dy)
		}
	}
}

// Collides reports whether a and b's bounding boxes (under their respective
// inherited attributes) overlap once expanded by the given margins.
func Collides(a *Object, aAttrs Attrs, b *Object, bAttrs Attrs, marginX, marginY float64) bool {
	return geom.Collides(a.BoundingBox(aAttrs), b.BoundingBox(bAttrs), marginX, marginY)
}

// MoveObjs repeatedly shifts every object in movers together along
// direction by the minimum displacement needed to clear every object in
// avoiders, terminating when no mover overlaps any avoider or after
// maxIters safety-valve iterations. direction must be a unit vector.
func MoveObjs(direction geom.Point, movers, avoiders []*Object, attrs Attrs, marginX, marginY float64) {
	const maxIters = 1000
	for iter := 0; iter < maxIters; iter++ {
		moved := false
		for _, m := range movers {
			mb := m.BoundingBox(attrs)
			for _, a := range avoiders {
				ab := a.BoundingBox(attrs)
				if !geom.Collides(mb, ab, marginX, marginY) {
					continue
				}
				d := minSeparation(mb, ab, direction, marginX, marginY)
				if d <= 0 {
					continue
				}
				for _, mm := range movers {
					mm.Translate(direction.X*d, direction.Y*d)
				}
				moved = true
			}
		}
		if !moved {
			return
		}
	}
}

// minSeparation returns the minimal positive distance along direction that
// clears mb from ab (expanded by margins), or 0 if direction cannot
// separate them (e.g. direction is orthogonal to the overlap axis).
func minSeparation(mb, ab geom.Box, direction geom.Point, marginX, marginY float64) float64 {
	ab = ab.Expand(marginX, marginY)
	var d float64
	if direction.X > 0 {
		d = max(d, ab.MaxX-mb.MinX)
	} else if direction.X < 0 {
		d = max(d, mb.MaxX-ab.MinX)
	}
	if direction.Y > 0 {
		d = max(d, ab.MaxY-mb.MinY)
	} else if direction.Y < 0 {
		d = max(d, mb.MaxY-ab.MinY)
	}
	return d
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
