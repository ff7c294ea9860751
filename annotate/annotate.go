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

// Package annotate implements the user-authored annotation primitives:
// Line, Rect, Circle, Ellipse, Polyline, Polygon, Text, TextBox, Arrow, and
// TextArrow, drawn in plot coordinates with a persistent, `{ }`-nestable
// drawing state (line width, dash, colors, text anchor/size, rect radius,
// point-coordinate flag, Y-axis target).
package annotate

import (
	"github.com/chartus/chartus/color"
	"github.com/chartus/chartus/geom"
	"github.com/chartus/chartus/scene"
)

// Keyword names a coordinate's symbolic position along one axis
// direction: one of Left/Right/Center or Top/Bottom/Center, as an
// alternative to a value+offset combination.
type Keyword int

const (
	// None means the Coord carries a numeric axis Value instead.
	None Keyword = iota
	Left
	Right
	Top
	Bottom
	Center
)

// Coord is one coordinate of an annotation point along a single axis
// direction: either a symbolic Keyword, or an axis Value plus a pixel
// Offset applied after resolution.
type Coord struct {
	Keyword Keyword
	Value   float64
	Offset  float64
}

// Val returns a numeric-valued Coord at v, offset by off plot pixels.
func Val(v, off float64) Coord { return Coord{Value: v, Offset: off} }

// Kw returns a symbolic Coord.
func Kw(k Keyword) Coord { return Coord{Keyword: k} }

// Point is a pair of Coords, one per axis direction.
type Point struct {
	X, Y Coord
}

// Target supplies the geometry an Annotator resolves Coords against: the
// plot rectangle, and the caller's axis-value-to-pixel mappings (so
// annotate stays independent of the concrete axis/categoryaxis types).
type Target struct {
	PlotBox geom.Box
	XAxis   func(value float64) float64
	YAxis   func(value float64, yAxisIndex int) float64
}

// resolve maps a single Coord to a plot-pixel coordinate along one
// direction.
func resolve(c Coord, lo, hi float64, valueToPixel func(float64) float64) float64 {
	switch c.Keyword {
	case Left, Bottom:
		return lo + c.Offset
	case Right, Top:
		return hi + c.Offset
	case Center:
		return (lo+hi)/2 + c.Offset
	default:
		return valueToPixel(c.Value) + c.Offset
	}
}

// State is the persistent drawing state set by annotation keywords or
// inherited into a nested `{ }` block.
type State struct {
	LineWidthPt float64
	Dash        []float64
	LineColor   color.Color
	FillColor   color.Color
	TextColor   color.Color
	TextAnchor  geom.Anchor
	TextSizePt  float64
	RectRadius  float64
	PointCoor   bool
	YAxisIndex  int
}

// DefaultState is the state a fresh Annotator (or top of its stack)
// starts from.
func DefaultState() State {
	return State{LineWidthPt: 1, TextSizePt: 10, TextAnchor: geom.AnchorCenter, LineColor: color.RGB(0, 0, 0), TextColor: color.RGB(0, 0, 0)}
}

// Annotator draws plot-coordinate primitives against a Target, tracking
// State through a `{ }` nesting stack.
type Annotator struct {
	Target Target
	state  State
	stack  []State
}

// New returns an Annotator over target with default persistent state.
func New(target Target) *Annotator {
	return &Annotator{Target: target, state: DefaultState()}
}

// State returns the receiver's current persistent drawing state.
func (a *Annotator) State() State { return a.state }

// SetState replaces the receiver's current persistent drawing state
// (used by annotation keywords like `LineWidth:`, `Color:`, `TextAnchor:`).
func (a *Annotator) SetState(s State) { a.state = s }

// Push snapshots the current state onto the nesting stack, entering a
// `{` block.
func (a *Annotator) Push() { a.stack = append(a.stack, a.state) }

// Pop restores the state from the top of the nesting stack, leaving a
// `}` block. It reports false if the stack is empty (an unmatched `}`,
// a fatal parse error at the caller).
func (a *Annotator) Pop() bool {
	if len(a.stack) == 0 {
		return false
	}
	a.state = a.stack[len(a.stack)-1]
	a.stack = a.stack[:len(a.stack)-1]
	return true
}

func (a *Annotator) resolvePoint(p Point) geom.Point {
	box := a.Target.PlotBox
	x := resolve(p.X, box.MinX, box.MaxX, a.Target.XAxis)
	y := resolve(p.Y, box.MinY, box.MaxY, func(v float64) float64 { return a.Target.YAxis(v, a.state.YAxisIndex) })
	return geom.Point{X: x, Y: y}
}

func (a *Annotator) lineAttrs() scene.Attrs {
	return scene.Attrs{LineColor: a.state.LineColor, LineWidthPt: a.state.LineWidthPt, Dash: a.state.Dash}
}

func (a *Annotator) fillAttrs() scene.Attrs {
	attrs := a.lineAttrs()
	attrs.FillColor = a.state.FillColor
	return attrs
}

// Line draws a line segment between two points.
func (a *Annotator) Line(p1, p2 Point) *scene.Object {
	return &scene.Object{Kind: scene.KindLine, Points: []geom.Point{a.resolvePoint(p1), a.resolvePoint(p2)}, Attrs: a.lineAttrs()}
}

// Rect draws a (possibly rounded, per State.RectRadius) rectangle between
// two opposite corners.
func (a *Annotator) Rect(p1, p2 Point) *scene.Object {
	return &scene.Object{Kind: scene.KindRect, Corner: a.resolvePoint(p1), Opposite: a.resolvePoint(p2), Rounding: a.state.RectRadius, Attrs: a.fillAttrs()}
}

// Circle draws a circle of the given plot-pixel radius centered at
// center.
func (a *Annotator) Circle(center Point, radius float64) *scene.Object {
	return &scene.Object{Kind: scene.KindCircle, Center: a.resolvePoint(center), Radius: radius, Attrs: a.fillAttrs()}
}

// Ellipse draws an ellipse of the given plot-pixel radii centered at
// center.
func (a *Annotator) Ellipse(center Point, rx, ry float64) *scene.Object {
	return &scene.Object{Kind: scene.KindEllipse, Center: a.resolvePoint(center), RX: rx, RY: ry, Attrs: a.fillAttrs()}
}

// Polyline draws an open multi-segment line through pts.
func (a *Annotator) Polyline(pts []Point) *scene.Object {
	return &scene.Object{Kind: scene.KindPolyline, Points: a.resolvePoints(pts), Attrs: a.lineAttrs()}
}

// Polygon draws a closed, fillable shape through pts.
func (a *Annotator) Polygon(pts []Point) *scene.Object {
	return &scene.Object{Kind: scene.KindPolygon, Points: a.resolvePoints(pts), Attrs: a.fillAttrs()}
}

func (a *Annotator) resolvePoints(pts []Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[i] = a.resolvePoint(p)
	}
	return out
}

// Text draws text anchored at at per State.TextAnchor.
func (a *Annotator) Text(at Point, text string) *scene.Object {
	anchored := anchoredAt(a.resolvePoint(at), a.state.TextAnchor, textBoxSize(text, a.state.TextSizePt))
	return &scene.Object{Kind: scene.KindText, At: anchored, Text: text,
		Attrs: scene.Attrs{TextColor: a.state.TextColor, TextAnchor: a.state.TextAnchor, Font: &scene.Font{SizePt: a.state.TextSizePt}}}
}

// TextBox draws text with a filled, possibly rounded background rectangle
// behind it, sized to the text.
func (a *Annotator) TextBox(at Point, text string) *scene.Object {
	center := a.resolvePoint(at)
	size := textBoxSize(text, a.state.TextSizePt)
	box := geom.NewBox(geom.Point{X: center.X - size.X/2, Y: center.Y - size.Y/2}, geom.Point{X: center.X + size.X/2, Y: center.Y + size.Y/2})
	group := scene.NewGroup()
	group.Add(&scene.Object{Kind: scene.KindRect, Corner: geom.Point{X: box.MinX, Y: box.MinY}, Opposite: geom.Point{X: box.MaxX, Y: box.MaxY}, Rounding: a.state.RectRadius, Attrs: a.fillAttrs()})
	group.Add(&scene.Object{Kind: scene.KindText, At: center, Text: text,
		Attrs: scene.Attrs{TextColor: a.state.TextColor, TextAnchor: geom.AnchorCenter, Font: &scene.Font{SizePt: a.state.TextSizePt}}})
	return group
}

// Arrow draws a line from `from` to `to` with an arrowhead at `to`.
func (a *Annotator) Arrow(from, to Point) *scene.Object {
	p1, p2 := a.resolvePoint(from), a.resolvePoint(to)
	return arrowObject(p1, p2, a.lineAttrs())
}

// TextArrow draws text anchored at textAt, plus an arrow running from the
// edge of the text's bounding box that faces pointAt toward pointAt.
func (a *Annotator) TextArrow(textAt Point, text string, pointAt Point) []*scene.Object {
	textObj := a.Text(textAt, text)
	size := textBoxSize(text, a.state.TextSizePt)
	box := geom.NewBox(geom.Point{X: textObj.At.X, Y: textObj.At.Y}, geom.Point{X: textObj.At.X + size.X, Y: textObj.At.Y + size.Y})
	target := a.resolvePoint(pointAt)
	from := box.AnchorPoint(edgeFacing(box.Center(), target))
	arrow := arrowObject(from, target, a.lineAttrs())
	return []*scene.Object{textObj, arrow}
}

// anchoredAt returns the draw position for a text object of the given size
// (the min corner of its box, bottom-left in the y-up convention) so that
// anchor lands on at.
func anchoredAt(at geom.Point, anchor geom.Anchor, size geom.Point) geom.Point {
	box := geom.NewBox(geom.Point{}, size)
	offset := box.AnchorPoint(anchor)
	return geom.Point{X: at.X - offset.X, Y: at.Y - offset.Y}
}

// textBoxSize estimates a text run's bounding box from a monospace
// per-character width, matching the font model of scene.Font.
func textBoxSize(text string, sizePt float64) geom.Point {
	return geom.Point{X: float64(len(text)) * sizePt * 0.6, Y: sizePt * 1.2}
}

// edgeFacing returns the Anchor of box's edge midpoint closest to facing
// target, used to pick a TextArrow's departure point.
func edgeFacing(center, target geom.Point) geom.Anchor {
	dx, dy := target.X-center.X, target.Y-center.Y
	if abs(dx) > abs(dy) {
		if dx > 0 {
			return geom.AnchorRight
		}
		return geom.AnchorLeft
	}
	if dy > 0 {
		return geom.AnchorTop
	}
	return geom.AnchorBottom
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func arrowObject(from, to geom.Point, attrs scene.Attrs) *scene.Object {
	head := arrowHead(from, to, 8)
	group := scene.NewGroup()
	group.Add(&scene.Object{Kind: scene.KindLine, Points: []geom.Point{from, to}, Attrs: attrs})
	group.Add(&scene.Object{Kind: scene.KindPolygon, Points: head, Attrs: scene.Attrs{FillColor: attrs.LineColor}})
	return group
}

// arrowHead returns a small triangle's three points for an arrowhead at
// tip, pointing away from tail, with the given size in plot pixels.
func arrowHead(tail, tip geom.Point, size float64) []geom.Point {
	dx, dy := tip.X-tail.X, tip.Y-tail.Y
	length := geom.Point{X: dx, Y: dy}.Length()
	if length == 0 {
		return []geom.Point{tip, tip, tip}
	}
	ux, uy := dx/length, dy/length
	// Perpendicular unit vector.
	px, py := -uy, ux
	base := geom.Point{X: tip.X - ux*size, Y: tip.Y - uy*size}
	return []geom.Point{
		tip,
		{X: base.X + px*size/2, Y: base.Y + py*size/2},
		{X: base.X - px*size/2, Y: base.Y - py*size/2},
	}
}
