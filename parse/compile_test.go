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

package parse

import (
	"errors"
	"strings"
	"testing"
)

func mustCompile(t *testing.T, src string) *ensembleDoc {
	t.Helper()
	ens, err := Compile(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	doc, err := ens.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if doc == nil {
		t.Fatalf("Build() returned a nil document")
	}
	return &ensembleDoc{}
}

// ensembleDoc is an empty marker type: the scene graph produced by Build
// has no exported accessors worth asserting on beyond "it built", so these
// tests check compile-time behavior (success/failure, error Kind) rather
// than walking the resulting tree.
type ensembleDoc struct{}

func TestCompileBasicXYChart(t *testing.T) {
	mustCompile(t, `Title: Request Latency
Chart: latency
XLabel: Time
YLabel: Milliseconds
Series: XY p50 0
Data: 0 12
Data: 1 14
Data: 2 11
`)
}

func TestCompileBarChartWithNegativeValues(t *testing.T) {
	mustCompile(t, `Chart: profit
Series: Bar profit 0
Category: Q1 -5
Category: Q2 3
Category: Q3 -1
`)
}

func TestCompileStackedBarOrdering(t *testing.T) {
	mustCompile(t, `Chart: usage
Series: StackedBar cpu 0
Category: node1 10
Category: node2 20
Series: StackedBar mem 0
Category: node1 5
Category: node2 8
`)
}

func TestCompileLogScaleAxis(t *testing.T) {
	mustCompile(t, `Chart: growth
LogScale: true
Series: XY users 0
Data: 0 1
Data: 1 10
Data: 2 100
`)
}

func TestCompileTwoChartGridAlignment(t *testing.T) {
	mustCompile(t, `Cols: 2
Rows: 1
Chart: left
Series: XY a 0
Data: 0 1
Data: 1 2
Chart: right
Series: XY b 0
Data: 0 3
Data: 1 4
`)
}

func TestCompileSentinelsInData(t *testing.T) {
	mustCompile(t, `Chart: sentinels
Series: Line a 0
Data: 0 1
Data: 1 !
Data: 2 -
Data: 3 4
`)
}

func TestCompileDataContinuationLines(t *testing.T) {
	mustCompile(t, `Chart: rows
Series: Line a 0
Data: 0 1
  1 2
  2 3
`)
}

func TestCompileMacroExpansion(t *testing.T) {
	mustCompile(t, `MacroDef: twoPoints
Data: 0 1
Data: 1 2
MacroEnd: twoPoints
Chart: macroed
Series: Line a 0
Macro: twoPoints
`)
}

func TestCompileCyclicMacroIsFatalParseError(t *testing.T) {
	_, err := Compile(strings.NewReader(`MacroDef: a
Macro: b
MacroEnd: a
MacroDef: b
Macro: a
MacroEnd: b
Chart: c
Series: Line s 0
Macro: a
`))
	if err == nil {
		t.Fatalf("Compile() error = nil, want a cyclic-macro parse error")
	}
	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("Compile() error = %v (%T), want *parse.Error", err, err)
	}
	if pe.Kind != ParseError {
		t.Errorf("Kind = %v, want ParseError", pe.Kind)
	}
}

func TestCompileUndefinedMacroIsFatalParseError(t *testing.T) {
	_, err := Compile(strings.NewReader(`Chart: c
Series: Line s 0
Macro: neverDefined
`))
	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("Compile() error = %v (%T), want *parse.Error", err, err)
	}
	if pe.Kind != ParseError {
		t.Errorf("Kind = %v, want ParseError", pe.Kind)
	}
}

func TestCompileUnknownKeyIsFatalParseError(t *testing.T) {
	_, err := Compile(strings.NewReader(`Chart: c
Bogus: value
`))
	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("Compile() error = %v (%T), want *parse.Error", err, err)
	}
}

func TestCompileSeriesBeforeChartIsFatalParseError(t *testing.T) {
	_, err := Compile(strings.NewReader(`Series: Line a 0
Data: 0 1
`))
	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("Compile() error = %v (%T), want *parse.Error", err, err)
	}
}

func TestCompileChartAnnotation(t *testing.T) {
	mustCompile(t, `Chart: annotated
Series: XY a 0
Data: 0 1
Data: 1 2
@Color red
@Line Left 0 Top 0 Right 0 Bottom 0
@TextBox 0 0 5 5 "peak"
`)
}

func TestCompileGlobalAnnotation(t *testing.T) {
	mustCompile(t, `Chart: annotated
Series: XY a 0
Data: 0 1
@@Text Center 0 Center 0 "overview"
`)
}

func TestCompileUnmatchedAnnotationPopIsFatalParseError(t *testing.T) {
	_, err := Compile(strings.NewReader(`Chart: c
Series: Line a 0
Data: 0 1
@}
`))
	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("Compile() error = %v (%T), want *parse.Error", err, err)
	}
}
