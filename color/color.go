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

// Package color implements the RGB color model used throughout the chart
// compiler: named/hex parsing, lighten/darken interpolation, transparency,
// background blending, and a perceptual distance used to decide whether a
// color remains visible against a given background.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is an RGB triple (each channel 0..255) plus a transparency in
// [0, 1] (0 opaque, 1 fully transparent). A Color may also be Undefined
// (unset, inherits from context) or Clear (explicitly "None": paint nothing).
type Color struct {
	R, G, B      uint8
	Transparency float64
	state        state
}

type state int

const (
	stateSet state = iota
	stateUndefined
	stateClear
)

// Undefined returns the unset color: "no color specified here", distinct
// from Clear ("explicitly paint nothing").
func Undefined() Color { return Color{state: stateUndefined} }

// Clear returns the "None" color: paint nothing.
func Clear() Color { return Color{state: stateClear} }

// IsUndefined reports whether the receiver is the unset color.
func (c Color) IsUndefined() bool { return c.state == stateUndefined }

// IsClear reports whether the receiver is the explicit "None" color.
func (c Color) IsClear() bool { return c.state == stateClear }

// RGB returns an opaque, set Color with the given channel values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Parse parses a color specifier: a name from the named-color table (case
// sensitive, per §6's closed key space), a "#rrggbb" hex triple, or "None".
// An optional lighten/darken amount in [-1, 1] and an optional transparency
// in [0, 1] are applied in that order.
func Parse(spec string, lightenDarken *float64, transparency *float64) (Color, error) {
	spec = strings.TrimSpace(spec)
	var c Color
	switch {
	case spec == "None":
		c = Clear()
	case strings.HasPrefix(spec, "#"):
		parsed, err := parseHex(spec)
		if err != nil {
			return Color{}, err
		}
		c = parsed
	default:
		named, ok := Named[spec]
		if !ok {
			return Color{}, fmt.Errorf("unknown color name %q", spec)
		}
		c = named
	}
	if c.IsClear() {
		return c, nil
	}
	if lightenDarken != nil {
		c = c.Lighten(*lightenDarken)
	}
	if transparency != nil {
		c.Transparency = *transparency
	}
	return c, nil
}

func parseHex(spec string) (Color, error) {
	s := strings.TrimPrefix(spec, "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q: want 6 hex digits", spec)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", spec, err)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Hex renders the receiver as a "#rrggbb" string, ignoring transparency.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lighten interpolates the receiver toward white for t>0, toward black for
// t<0, where |t|<=1. Lighten(0) is the identity.
func (c Color) Lighten(t float64) Color {
	if c.state != stateSet {
		return c
	}
	if t > 1 {
		t = 1
	}
	if t < -1 {
		t = -1
	}
	target := 255.0
	if t < 0 {
		target = 0
		t = -t
	}
	ret := c
	ret.R = lerp(c.R, target, t)
	ret.G = lerp(c.G, target, t)
	ret.B = lerp(c.B, target, t)
	return ret
}

func lerp(from uint8, to, t float64) uint8 {
	v := float64(from) + (to-float64(from))*t
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(math.Round(v))
}

// SetAgainst linearly blends fg over bg by t (fg's opacity), i.e. the visible
// color when drawing fg with transparency (1-t) on top of bg.
// SetAgainst(bg, bg, t) == bg for all t, and SetAgainst(bg, fg, 1) == fg.
func SetAgainst(bg, fg Color, t float64) Color {
	if fg.state != stateSet || bg.state != stateSet {
		return fg
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return Color{
		R: uint8(float64(bg.R)*(1-t) + float64(fg.R)*t),
		G: uint8(float64(bg.G)*(1-t) + float64(fg.G)*t),
		B: uint8(float64(bg.B)*(1-t) + float64(fg.B)*t),
	}
}

// Diff returns a perceptual distance between a and b in [0, 1], using a
// redmean-weighted Euclidean distance in RGB space. It is used to decide
// whether a or b would be legible against the other, e.g. to choose a
// visible text color against a series' fill.
func Diff(a, b Color) float64 {
	rMean := (float64(a.R) + float64(b.R)) / 2
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	dist := math.Sqrt((2+rMean/256)*dr*dr + 4*dg*dg + (2+(255-rMean)/256)*db*db)
	const maxDist = 764.8339663572415 // Diff(black, white)
	return dist / maxDist
}

// Against returns the more legible of preferred and fallback when drawn
// against bg, per Diff, requiring at least minDiff distance; if neither
// clears minDiff, preferred is returned regardless.
func Against(bg, preferred, fallback Color, minDiff float64) Color {
	if Diff(bg, preferred) >= minDiff {
		return preferred
	}
	if Diff(bg, fallback) >= minDiff {
		return fallback
	}
	return preferred
}

// Opaque returns the receiver with transparency reset to 0.
func (c Color) Opaque() Color {
	c.Transparency = 0
	return c
}

// WithTransparency returns the receiver with the given transparency, clamped
// to [0, 1].
func (c Color) WithTransparency(t float64) Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	c.Transparency = t
	return c
}
