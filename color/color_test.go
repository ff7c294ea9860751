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

package color

import "testing"

func TestLightenIdentity(t *testing.T) {
	c := RGB(100, 150, 200)
	if got := c.Lighten(0); got != c {
		t.Errorf("Lighten(0) = %+v, want identity %+v", got, c)
	}
}

func TestLightenTowardWhite(t *testing.T) {
	c := RGB(100, 100, 100)
	got := c.Lighten(1)
	want := RGB(255, 255, 255)
	if got != want {
		t.Errorf("Lighten(1) = %+v, want %+v", got, want)
	}
}

func TestDarkenTowardBlack(t *testing.T) {
	c := RGB(100, 100, 100)
	got := c.Lighten(-1)
	want := RGB(0, 0, 0)
	if got != want {
		t.Errorf("Lighten(-1) = %+v, want %+v", got, want)
	}
}

func TestSetAgainstIdentity(t *testing.T) {
	c := RGB(10, 20, 30)
	for _, tt := range []float64{0, 0.3, 0.5, 1} {
		if got := SetAgainst(c, c, tt); got != c {
			t.Errorf("SetAgainst(c, c, %v) = %+v, want %+v", tt, got, c)
		}
	}
}

func TestSetAgainstEndpoints(t *testing.T) {
	bg := RGB(0, 0, 0)
	fg := RGB(255, 255, 255)
	if got := SetAgainst(bg, fg, 0); got != bg {
		t.Errorf("SetAgainst(.., 0) = %+v, want bg %+v", got, bg)
	}
	if got := SetAgainst(bg, fg, 1); got != fg {
		t.Errorf("SetAgainst(.., 1) = %+v, want fg %+v", got, fg)
	}
}

func TestDiffIdentityIsZero(t *testing.T) {
	c := RGB(12, 34, 56)
	if got := Diff(c, c); got != 0 {
		t.Errorf("Diff(c, c) = %v, want 0", got)
	}
}

func TestDiffBlackWhiteIsMax(t *testing.T) {
	if got := Diff(RGB(0, 0, 0), RGB(255, 255, 255)); got < 0.999 {
		t.Errorf("Diff(black, white) = %v, want ~1", got)
	}
}

func TestParseNamed(t *testing.T) {
	c, err := Parse("red", nil, nil)
	if err != nil {
		t.Fatalf("Parse(red) failed: %v", err)
	}
	if got, want := c, Named["red"]; got != want {
		t.Errorf("Parse(red) = %+v, want %+v", got, want)
	}
}

func TestParseHex(t *testing.T) {
	c, err := Parse("#ff0080", nil, nil)
	if err != nil {
		t.Fatalf("Parse(#ff0080) failed: %v", err)
	}
	want := RGB(0xff, 0x00, 0x80)
	if c != want {
		t.Errorf("Parse(#ff0080) = %+v, want %+v", c, want)
	}
}

func TestParseNoneIsClear(t *testing.T) {
	c, err := Parse("None", nil, nil)
	if err != nil {
		t.Fatalf("Parse(None) failed: %v", err)
	}
	if !c.IsClear() {
		t.Errorf("Parse(None) should be Clear")
	}
}

func TestParseWithLightenAndTransparency(t *testing.T) {
	ld := 1.0
	tr := 0.5
	c, err := Parse("black", &ld, &tr)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if c.Opaque() != RGB(255, 255, 255) {
		t.Errorf("lightened black should be white, got %+v", c)
	}
	if c.Transparency != 0.5 {
		t.Errorf("transparency = %v, want 0.5", c.Transparency)
	}
}

func TestParseUnknownName(t *testing.T) {
	if _, err := Parse("not-a-color", nil, nil); err == nil {
		t.Errorf("Parse(not-a-color) should fail")
	}
}

func TestNamedTableSize(t *testing.T) {
	if len(Named) < 147 {
		t.Errorf("Named table has %d colors, want at least 147", len(Named))
	}
}
