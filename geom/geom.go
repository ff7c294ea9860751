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

// Package geom provides the geometric primitives shared by every layer of
// the chart compiler: points and axis-aligned bounding boxes.
//
// Internally, y points up (mathematical convention); the screen-space
// (y-down) flip happens only where a document is emitted.
package geom

import "math"

// CoordinateClamp bounds any single coordinate value used in geometric
// arithmetic, preventing overflow when e.g. extrapolating a clipped segment.
const CoordinateClamp = 1e24

// Point is a single point in the plane.
type Point struct {
	X, Y float64
}

// Add returns the receiver translated by the given offset.
func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

// Sub returns the vector from o to the receiver.
func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

// Scale returns the receiver scaled by f.
func (p Point) Scale(f float64) Point {
	return Point{p.X * f, p.Y * f}
}

// Clamp bounds both coordinates to +/-CoordinateClamp.
func (p Point) Clamp() Point {
	return Point{clamp(p.X), clamp(p.Y)}
}

func clamp(v float64) float64 {
	if v > CoordinateClamp {
		return CoordinateClamp
	}
	if v < -CoordinateClamp {
		return -CoordinateClamp
	}
	return v
}

// Length returns the Euclidean length of the receiver as a vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Dist returns the Euclidean distance between p and o.
func (p Point) Dist(o Point) float64 {
	return p.Sub(o).Length()
}

// Anchor names a corner, edge midpoint, or center of a bounding box, used by
// MoveTo to decide which point on an object's bounding box is translated to
// a target coordinate.
type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorLeft
	AnchorRight
	AnchorTop
	AnchorBottom
	AnchorTopLeft
	AnchorTopRight
	AnchorBottomLeft
	AnchorBottomRight
)

// Box is an axis-aligned bounding box. A zero Box is not Defined(); it
// becomes defined on the first Update/UpdateBox call.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
	defined    bool
}

// NewBox returns a Box already defined over the given corners (which need
// not be given in any particular order).
func NewBox(a, b Point) Box {
	var box Box
	box.Update(a)
	box.Update(b)
	return box
}

// Defined reports whether the receiver has been updated with at least one
// point or box.
func (b Box) Defined() bool {
	return b.defined
}

// Update grows the receiver, if necessary, to include p.
func (b *Box) Update(p Point) {
	if !b.defined {
		b.MinX, b.MaxX = p.X, p.X
		b.MinY, b.MaxY = p.Y, p.Y
		b.defined = true
		return
	}
	b.MinX = math.Min(b.MinX, p.X)
	b.MaxX = math.Max(b.MaxX, p.X)
	b.MinY = math.Min(b.MinY, p.Y)
	b.MaxY = math.Max(b.MaxY, p.Y)
}

// UpdateBox grows the receiver, if necessary, to include o.
func (b *Box) UpdateBox(o Box) {
	if !o.defined {
		return
	}
	b.Update(Point{o.MinX, o.MinY})
	b.Update(Point{o.MaxX, o.MaxY})
}

// Width returns the receiver's width, or 0 if undefined.
func (b Box) Width() float64 {
	if !b.defined {
		return 0
	}
	return b.MaxX - b.MinX
}

// Height returns the receiver's height, or 0 if undefined.
func (b Box) Height() float64 {
	if !b.defined {
		return 0
	}
	return b.MaxY - b.MinY
}

// Center returns the receiver's center point.
func (b Box) Center() Point {
	return Point{(b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2}
}

// Expand returns the receiver expanded by dx on each side along x and dy on
// each side along y. Negative values shrink the box.
func (b Box) Expand(dx, dy float64) Box {
	if !b.defined {
		return b
	}
	return Box{
		MinX: b.MinX - dx, MaxX: b.MaxX + dx,
		MinY: b.MinY - dy, MaxY: b.MaxY + dy,
		defined: true,
	}
}

// Translate returns the receiver shifted by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	if !b.defined {
		return b
	}
	return Box{
		MinX: b.MinX + dx, MaxX: b.MaxX + dx,
		MinY: b.MinY + dy, MaxY: b.MaxY + dy,
		defined: true,
	}
}

// AnchorPoint returns the point on the receiver's boundary named by a.
func (b Box) AnchorPoint(a Anchor) Point {
	switch a {
	case AnchorLeft:
		return Point{b.MinX, (b.MinY + b.MaxY) / 2}
	case AnchorRight:
		return Point{b.MaxX, (b.MinY + b.MaxY) / 2}
	case AnchorTop:
		return Point{(b.MinX + b.MaxX) / 2, b.MaxY}
	case AnchorBottom:
		return Point{(b.MinX + b.MaxX) / 2, b.MinY}
	case AnchorTopLeft:
		return Point{b.MinX, b.MaxY}
	case AnchorTopRight:
		return Point{b.MaxX, b.MaxY}
	case AnchorBottomLeft:
		return Point{b.MinX, b.MinY}
	case AnchorBottomRight:
		return Point{b.MaxX, b.MinY}
	default:
		return b.Center()
	}
}

// MoveTo returns the translation (dx, dy) that moves the point on the
// receiver named by anchor to (x, y).
func (b Box) MoveTo(anchor Anchor, x, y float64) (dx, dy float64) {
	p := b.AnchorPoint(anchor)
	return x - p.X, y - p.Y
}

// Contains reports whether the receiver fully encloses o.
func (b Box) Contains(o Box) bool {
	if !b.defined || !o.defined {
		return false
	}
	return o.MinX >= b.MinX && o.MaxX <= b.MaxX && o.MinY >= b.MinY && o.MaxY <= b.MaxY
}

// Collides reports whether a, expanded by marginX/marginY on every side,
// overlaps b; b itself is not expanded.
func Collides(a, b Box, marginX, marginY float64) bool {
	if !a.defined || !b.defined {
		return false
	}
	ae := a.Expand(marginX, marginY)
	return ae.MinX < b.MaxX && ae.MaxX > b.MinX && ae.MinY < b.MaxY && ae.MaxY > b.MinY
}

// Overlap returns the area of intersection between a and b (0 if disjoint).
func Overlap(a, b Box) float64 {
	if !a.Defined() || !b.Defined() {
		return 0
	}
	dx := math.Min(a.MaxX, b.MaxX) - math.Max(a.MinX, b.MinX)
	dy := math.Min(a.MaxY, b.MaxY) - math.Max(a.MinY, b.MinY)
	if dx <= 0 || dy <= 0 {
		return 0
	}
	return dx * dy
}
