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
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/chartus/chartus/geom"
)

// Canvas is the root of a scene graph plus its overall pixel dimensions,
// ready for SVG serialization. Internally the scene graph uses the
// mathematical (y-up) convention; WriteSVG performs the y-flip to screen
// (y-down) coordinates.
type Canvas struct {
	Width, Height float64
	Root          *Object
}

// WriteSVG serializes the receiver as a complete SVG document to w.
func (c *Canvas) WriteSVG(w io.Writer) error {
	fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		c.Width, c.Height, c.Width, c.Height)
	writeObject(w, c.Root, Attrs{}, c.Height)
	fmt.Fprint(w, "</svg>\n")
	return nil
}

func flipY(y, height float64) float64 {
	return height - y
}

// FlipY converts a y-up scene coordinate to the y-down screen coordinate
// WriteSVG uses, for callers building screen-space geometry (e.g. the
// interactive payload) outside the SVG writer itself.
func FlipY(y, height float64) float64 {
	return flipY(y, height)
}

func writeObject(w io.Writer, o *Object, inherited Attrs, height float64) {
	attrs := overlay(inherited, o.Attrs)
	switch o.Kind {
	case KindGroup:
		fmt.Fprint(w, "<g>\n")
		for _, c := range o.Children {
			writeObject(w, c, attrs, height)
		}
		fmt.Fprint(w, "</g>\n")
	case KindLine:
		if len(o.Points) != 2 {
			return
		}
		p0, p1 := o.Points[0], o.Points[1]
		fmt.Fprintf(w, `<line x1="%g" y1="%g" x2="%g" y2="%g" %s/>`+"\n",
			p0.X, flipY(p0.Y, height), p1.X, flipY(p1.Y, height), lineAttrs(attrs))
	case KindRect:
		x0, y0 := minF(o.Corner.X, o.Opposite.X), minF(o.Corner.Y, o.Opposite.Y)
		w0 := maxF(o.Corner.X, o.Opposite.X) - x0
		h0 := maxF(o.Corner.Y, o.Opposite.Y) - y0
		fmt.Fprintf(w, `<rect x="%g" y="%g" width="%g" height="%g" rx="%g" %s/>`+"\n",
			x0, flipY(y0+h0, height), w0, h0, o.Rounding, fillAttrs(attrs))
	case KindCircle:
		fmt.Fprintf(w, `<circle cx="%g" cy="%g" r="%g" %s/>`+"\n",
			o.Center.X, flipY(o.Center.Y, height), o.Radius, fillAttrs(attrs))
	case KindEllipse:
		fmt.Fprintf(w, `<ellipse cx="%g" cy="%g" rx="%g" ry="%g" %s/>`+"\n",
			o.Center.X, flipY(o.Center.Y, height), o.RX, o.RY, fillAttrs(attrs))
	case KindPolyline:
		fmt.Fprintf(w, `<polyline points="%s" fill="none" %s/>`+"\n", pointsAttr(o.Points, height), lineAttrs(attrs))
	case KindPolygon:
		fmt.Fprintf(w, `<polygon points="%s" %s/>`+"\n", pointsAttr(o.Points, height), fillAttrs(attrs))
	case KindText:
		fmt.Fprintf(w, `<text x="%g" y="%g" %s>%s</text>`+"\n",
			o.At.X, flipY(o.At.Y, height), textAttrs(attrs), html.EscapeString(o.Text))
	}
}

func pointsAttr(pts []geom.Point, height float64) string {
	var b strings.Builder
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%g,%g", p.X, flipY(p.Y, height))
	}
	return b.String()
}

func lineAttrs(a Attrs) string {
	col := "black"
	if !a.LineColor.IsUndefined() && !a.LineColor.IsClear() {
		col = a.LineColor.Hex()
	}
	w := a.LineWidthPt
	if w == 0 {
		w = 1
	}
	dash := ""
	if len(a.Dash) > 0 {
		dash = fmt.Sprintf(` stroke-dasharray="%s"`, dashArray(a.Dash))
	}
	return fmt.Sprintf(`stroke="%s" stroke-width="%g"%s`, col, w, dash)
}

func fillAttrs(a Attrs) string {
	fill := "none"
	if !a.FillColor.IsUndefined() {
		if a.FillColor.IsClear() {
			fill = "none"
		} else {
			fill = a.FillColor.Hex()
		}
	}
	return fmt.Sprintf(`fill="%s" %s`, fill, lineAttrs(a))
}

func textAttrs(a Attrs) string {
	col := "black"
	if !a.TextColor.IsUndefined() && !a.TextColor.IsClear() {
		col = a.TextColor.Hex()
	}
	size := DefaultFont.SizePt
	if a.Font != nil {
		size = a.Font.SizePt
	}
	return fmt.Sprintf(`fill="%s" font-size="%g" font-family="monospace"`, col, size)
}

func dashArray(dash []float64) string {
	var b strings.Builder
	for i, d := range dash {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%g", d)
	}
	return b.String()
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
