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
	"math"

	"github.com/chartus/chartus/color"
	"github.com/chartus/chartus/geom"
	"github.com/chartus/chartus/scene"
)

// Marker builds the scene object for a marker of the given shape, centered
// at center with the given outer size and line width. The outer radius is
// size/2 and the hole radius is one line width less; when the hole radius
// is no larger than one line width, the marker is rendered filled (in the
// line color) rather than hollow.
func Marker(shape MarkerShape, center geom.Point, size, lineWidthPt float64, fill, line color.Color) *scene.Object {
	outer := size / 2
	inner := outer - lineWidthPt
	filled := inner <= lineWidthPt

	attrs := scene.Attrs{LineColor: line, LineWidthPt: lineWidthPt, FillColor: fill}
	if filled {
		attrs.FillColor = line
	}

	switch shape {
	case Circle:
		return &scene.Object{Kind: scene.KindCircle, Center: center, Radius: outer, Attrs: attrs}
	case Square:
		return &scene.Object{
			Kind:     scene.KindRect,
			Corner:   geom.Point{X: center.X - outer, Y: center.Y - outer},
			Opposite: geom.Point{X: center.X + outer, Y: center.Y + outer},
			Attrs:    attrs,
		}
	case Triangle:
		return polygonMarker(center, outer, []float64{90, 210, 330}, attrs)
	case InvTriangle:
		return polygonMarker(center, outer, []float64{270, 30, 150}, attrs)
	case Diamond:
		return polygonMarker(center, outer, []float64{90, 180, 270, 0}, attrs)
	case Star:
		return starMarker(center, outer, attrs)
	case Cross:
		return &scene.Object{
			Kind: scene.KindGroup,
			Children: []*scene.Object{
				{Kind: scene.KindLine, Points: []geom.Point{
					{X: center.X - outer, Y: center.Y - outer}, {X: center.X + outer, Y: center.Y + outer},
				}, Attrs: attrs},
				{Kind: scene.KindLine, Points: []geom.Point{
					{X: center.X - outer, Y: center.Y + outer}, {X: center.X + outer, Y: center.Y - outer},
				}, Attrs: attrs},
			},
		}
	case LineX:
		return &scene.Object{Kind: scene.KindLine, Points: []geom.Point{
			{X: center.X - outer, Y: center.Y}, {X: center.X + outer, Y: center.Y},
		}, Attrs: attrs}
	case LineY:
		return &scene.Object{Kind: scene.KindLine, Points: []geom.Point{
			{X: center.X, Y: center.Y - outer}, {X: center.X, Y: center.Y + outer},
		}, Attrs: attrs}
	default:
		return &scene.Object{Kind: scene.KindCircle, Center: center, Radius: outer, Attrs: attrs}
	}
}

func polygonMarker(center geom.Point, radius float64, anglesDeg []float64, attrs scene.Attrs) *scene.Object {
	pts := make([]geom.Point, len(anglesDeg))
	for i, deg := range anglesDeg {
		rad := deg * math.Pi / 180
		pts[i] = geom.Point{X: center.X + radius*math.Cos(rad), Y: center.Y + radius*math.Sin(rad)}
	}
	return &scene.Object{Kind: scene.KindPolygon, Points: pts, Attrs: attrs}
}

func starMarker(center geom.Point, radius float64, attrs scene.Attrs) *scene.Object {
	const points = 5
	pts := make([]geom.Point, 0, points*2)
	for i := 0; i < points*2; i++ {
		r := radius
		if i%2 == 1 {
			r = radius * 0.4
		}
		deg := 90 + float64(i)*360/float64(points*2)
		rad := deg * math.Pi / 180
		pts = append(pts, geom.Point{X: center.X + r*math.Cos(rad), Y: center.Y + r*math.Sin(rad)})
	}
	return &scene.Object{Kind: scene.KindPolygon, Points: pts, Attrs: attrs}
}

// MarkerBoundingBox returns the outer bounding box of a marker of the given
// size centered at center, whatever its shape, without constructing its
// scene object.
func MarkerBoundingBox(center geom.Point, size float64) geom.Box {
	outer := size / 2
	return geom.NewBox(
		geom.Point{X: center.X - outer, Y: center.Y - outer},
		geom.Point{X: center.X + outer, Y: center.Y + outer},
	)
}
