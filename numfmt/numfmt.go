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

// Package numfmt implements axis number formatting: Fixed, Scientific,
// Magnitude, and None, plus the shared "minimum decimals so that adjacent
// tick labels differ" search and the running max-length accumulators axes
// use to column-align numbers.
package numfmt

import (
	"fmt"
	"math"
	"strings"
)

// Mode selects a number formatting mode.
type Mode int

const (
	// Fixed renders sign, integer part, optional decimals, optional unit.
	Fixed Mode = iota
	// Scientific renders d[.ddd]*10^e with a superscript exponent.
	Scientific
	// Magnitude renders d[.ddd]<suffix>, suffix chosen by exponent/3.
	Magnitude
	// None omits numbers entirely.
	None
)

// magnitudeSuffixes are indexed by (exponent/3)+10, exponent in multiples of
// 3 from -30 (q) to +30 (Q), one distinct suffix per entry; the
// placeholder "_" at index 10 (exponent 0) is the empty string.
var magnitudeSuffixes = []string{
	"q", "r", "y", "z", "a", "f", "p", "n", "µ", "m",
	"_",
	"k", "M", "G", "T", "P", "E", "Z", "Y", "R", "Q",
}

const magnitudeZeroIndex = 10 // index of exponent 0 ("_") in the table above.

// Result is a single formatted number, with the pieces needed for
// superscript exponent rendering and column alignment kept separate from
// the flattened Text.
type Result struct {
	Text      string // the full rendered label, e.g. "1.50" or "1.50·10^3"
	NumLen    int    // length of the mantissa/integer portion (for alignment)
	ExpLen    int    // length of the exponent portion, 0 if none
	Superscript string // the exponent text to render as superscript, "" if none
}

// Options configures a Format call.
type Options struct {
	Mode     Mode
	Decimals int    // number of decimals after the point; -1 = auto (unused by Format; see Decimals())
	ShowSign bool   // always render a leading '+' for non-negative values
	Unit     string // appended (Fixed only) after the number, e.g. "%" or "ms"
}

// Format renders v according to opts. Decimals must already be resolved
// (see Decimals) to a concrete non-negative count.
func Format(v float64, opts Options) Result {
	switch opts.Mode {
	case None:
		return Result{}
	case Scientific:
		return formatScientific(v, opts)
	case Magnitude:
		return formatMagnitude(v, opts)
	default:
		return formatFixed(v, opts)
	}
}

func sign(v float64, showSign bool) string {
	switch {
	case v < 0:
		return "-"
	case showSign:
		return "+"
	default:
		return ""
	}
}

func formatFixed(v float64, opts Options) Result {
	s := sign(v, opts.ShowSign)
	av := math.Abs(v)
	numStr := strconv(av, opts.Decimals)
	text := s + numStr + opts.Unit
	return Result{Text: text, NumLen: len(s) + len(numStr)}
}

func strconv(av float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return fmt.Sprintf("%.*f", decimals, av)
}

// formatScientific renders d[.ddd]*10^e, normalizing the mantissa to
// [1, 10).
func formatScientific(v float64, opts Options) Result {
	s := sign(v, opts.ShowSign)
	av := math.Abs(v)
	exp := 0
	mant := av
	if av != 0 {
		exp = int(math.Floor(math.Log10(av)))
		mant = av / math.Pow(10, float64(exp))
		// Guard against rounding pushing mantissa to 10.0 at the chosen
		// decimal precision.
		if roundsUpToTen(mant, opts.Decimals) {
			mant /= 10
			exp++
		}
	}
	mantStr := strconv(mant, opts.Decimals)
	expStr := fmt.Sprintf("%d", exp)
	text := fmt.Sprintf("%s%s·10^%s", s, mantStr, expStr)
	return Result{
		Text:        text,
		NumLen:      len(s) + len(mantStr),
		ExpLen:      len(expStr),
		Superscript: expStr,
	}
}

func roundsUpToTen(mant float64, decimals int) bool {
	if decimals < 0 {
		decimals = 0
	}
	scaled := math.Round(mant*math.Pow(10, float64(decimals))) / math.Pow(10, float64(decimals))
	return scaled >= 10
}

// formatMagnitude renders d[.ddd]<suffix>, suffix chosen by exponent
// rounded down to the nearest multiple of 3.
func formatMagnitude(v float64, opts Options) Result {
	s := sign(v, opts.ShowSign)
	av := math.Abs(v)
	exp3 := 0
	mant := av
	if av != 0 {
		rawExp := int(math.Floor(math.Log10(av)))
		exp3 = int(math.Floor(float64(rawExp)/3)) * 3
		mant = av / math.Pow(10, float64(exp3))
		scale := math.Pow(10, math.Max(float64(opts.Decimals), 0))
		if math.Round(mant*scale)/scale >= 1000 {
			mant /= 1000
			exp3 += 3
		}
	}
	idx := exp3/3 + magnitudeZeroIndex
	suffix := ""
	if idx >= 0 && idx < len(magnitudeSuffixes) {
		suffix = magnitudeSuffixes[idx]
	}
	if suffix == "_" {
		suffix = ""
	}
	mantStr := strconv(mant, opts.Decimals)
	text := s + mantStr + suffix
	return Result{Text: text, NumLen: len(s) + len(mantStr)}
}

// Decimals computes the minimum number of decimal digits, bounded to
// [0, maxDecimals], such that formatting every value in vals at that
// precision with mode produces pairwise-distinct labels for pairwise
// distinct inputs.
func Decimals(vals []float64, mode Mode, maxDecimals int) int {
	if maxDecimals <= 0 {
		maxDecimals = 10
	}
	for d := 0; d <= maxDecimals; d++ {
		seen := map[string]float64{}
		ok := true
		for _, v := range vals {
			r := Format(v, Options{Mode: mode, Decimals: d})
			if prev, dup := seen[r.Text]; dup && prev != v {
				ok = false
				break
			}
			seen[r.Text] = v
		}
		if ok {
			return d
		}
	}
	return maxDecimals
}

// Lengths accumulates the running max_num_len/max_exp_len used to pad
// labels for column alignment on vertical axes.
type Lengths struct {
	MaxNumLen int
	MaxExpLen int
}

// Observe folds r into the running maximums.
func (l *Lengths) Observe(r Result) {
	if r.NumLen > l.MaxNumLen {
		l.MaxNumLen = r.NumLen
	}
	if r.ExpLen > l.MaxExpLen {
		l.MaxExpLen = r.ExpLen
	}
}

// Pad left-pads r's text to the receiver's accumulated MaxNumLen (the
// exponent portion, if any, is left as-is since it is rendered as a
// superscript rather than inline padded).
func (l Lengths) Pad(r Result) string {
	pad := l.MaxNumLen - r.NumLen
	if pad <= 0 {
		return r.Text
	}
	return strings.Repeat(" ", pad) + r.Text
}
