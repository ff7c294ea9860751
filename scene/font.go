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
	"golang.org/x/text/width"
)

// Font describes the metrics of a monospace font at a given point size,
// parameterized by three multiplicative factors (width, height, baseline)
// so that mono-width Latin rendering can be adjusted if CJK characters
// appear.
type Font struct {
	SizePt float64
	// WidthFactor, HeightFactor, and BaselineFactor scale SizePt to obtain,
	// respectively, the per-character advance width, the line height, and
	// the baseline offset from the top of the line, for ordinary
	// narrow/half-width runes.
	WidthFactor    float64
	HeightFactor   float64
	BaselineFactor float64
	// WideFactor multiplies WidthFactor for East-Asian wide/fullwidth runes
	// (as classified by golang.org/x/text/width), so a CJK-heavy label does
	// not under-measure its rendered width.
	WideFactor float64
}

// DefaultFont is a reasonable default monospace font used when no Font is
// set anywhere up an object's attribute chain.
var DefaultFont = &Font{
	SizePt:         10,
	WidthFactor:    0.6,
	HeightFactor:   1.2,
	BaselineFactor: 0.8,
	WideFactor:     2.0,
}

// CharWidth returns the rendered width, in points, of a single rune at the
// receiver's size, widened for East-Asian wide/fullwidth runes.
func (f *Font) CharWidth(r rune) float64 {
	base := f.SizePt * f.WidthFactor
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return base * f.WideFactor
	default:
		return base
	}
}

// TextWidth returns the total rendered width, in points, of s.
func (f *Font) TextWidth(s string) float64 {
	var total float64
	for _, r := range s {
		total += f.CharWidth(r)
	}
	return total
}

// Height returns the receiver's line height in points.
func (f *Font) Height() float64 {
	return f.SizePt * f.HeightFactor
}

// Baseline returns the receiver's baseline offset, in points, from the top
// of a line of text.
func (f *Font) Baseline() float64 {
	return f.SizePt * f.BaselineFactor
}
