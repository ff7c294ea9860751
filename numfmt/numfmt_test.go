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

package numfmt

import "testing"

func TestFormatFixed(t *testing.T) {
	for _, test := range []struct {
		v        float64
		decimals int
		want     string
	}{
		{1, 0, "1"},
		{1.5, 1, "1.5"},
		{-2.25, 2, "-2.25"},
		{0, 2, "0.00"},
	} {
		got := Format(test.v, Options{Mode: Fixed, Decimals: test.decimals}).Text
		if got != test.want {
			t.Errorf("Format(%v, decimals=%d) = %q, want %q", test.v, test.decimals, got, test.want)
		}
	}
}

func TestFormatScientificNormalizesMantissa(t *testing.T) {
	r := Format(1234.0, Options{Mode: Scientific, Decimals: 2})
	if r.Text != "1.23·10^3" {
		t.Errorf("Format(1234, scientific) = %q, want %q", r.Text, "1.23·10^3")
	}
}

func TestFormatMagnitudeSuffixes(t *testing.T) {
	for _, test := range []struct {
		v    float64
		want string
	}{
		{1000, "1k"},
		{1000000, "1M"},
		{0.001, "1m"},
		{1, "1"},
		{1000000000, "1G"},
	} {
		got := Format(test.v, Options{Mode: Magnitude, Decimals: 0}).Text
		if got != test.want {
			t.Errorf("Format(%v, magnitude) = %q, want %q", test.v, got, test.want)
		}
	}
}

func TestFormatNoneIsEmpty(t *testing.T) {
	if got := Format(123, Options{Mode: None}).Text; got != "" {
		t.Errorf("Format(.., None) = %q, want empty", got)
	}
}

func TestDecimalsMinimalToDistinguish(t *testing.T) {
	vals := []float64{1.0, 1.05, 1.1}
	d := Decimals(vals, Fixed, 10)
	if d < 2 {
		t.Errorf("Decimals() = %d, want >= 2 to distinguish 1.05 from 1.0/1.1", d)
	}
	// Sanity: at d decimals all labels actually differ.
	seen := map[string]bool{}
	for _, v := range vals {
		text := Format(v, Options{Mode: Fixed, Decimals: d}).Text
		if seen[text] {
			t.Fatalf("labels collide at chosen decimals=%d", d)
		}
		seen[text] = true
	}
}

func TestDecimalsIdenticalValuesNeedZero(t *testing.T) {
	vals := []float64{2, 2, 2}
	if d := Decimals(vals, Fixed, 10); d != 0 {
		t.Errorf("Decimals() = %d, want 0 for identical values", d)
	}
}

func TestLengthsPad(t *testing.T) {
	var l Lengths
	short := Format(1, Options{Mode: Fixed, Decimals: 0})
	long := Format(-123, Options{Mode: Fixed, Decimals: 0})
	l.Observe(short)
	l.Observe(long)
	if got := l.Pad(short); len(got) != len(long.Text) {
		t.Errorf("Pad(short) = %q (len %d), want len %d", got, len(got), len(long.Text))
	}
}
