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

// Package emit serializes the interactive-document data payload and wraps
// a rendered vector document into an HTML page embedding it, for
// consumption by an externally supplied viewer script.
package emit

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
	"github.com/google/safehtml/uncheckedconversions"
)

// Rect is a screen-coordinate rectangle, (0,0) at the top-left — the
// interactive document always uses screen convention, never the y-up
// convention the renderer uses internally.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// NumberFormat names one of the three number formats an interactive
// document's axis descriptors report.
type NumberFormat string

const (
	FormatFixed       NumberFormat = "Fixed"
	FormatScientific  NumberFormat = "Scientific"
	FormatEngineering NumberFormat = "Engineering"
)

// AxisDescriptor is one of a chart's four axis descriptors (two X, two Y)
// in the interactive payload.
type AxisDescriptor struct {
	Show        bool         `json:"show"`
	AreaVal1    float64      `json:"areaVal1"`
	AreaVal2    float64      `json:"areaVal2"`
	IsCategory  bool         `json:"isCategory"`
	Logarithmic bool         `json:"logarithmic"`
	ShowSign    bool         `json:"showSign"`
	Format      NumberFormat `json:"format"`
}

// SeriesEntry is one series's interactive metadata.
type SeriesEntry struct {
	Name          string  `json:"name"`
	YAxisIndex    int     `json:"yAxisIndex"`
	LegendBB      *Rect   `json:"legendBB,omitempty"`
	ForegroundHex string  `json:"fg"`
	BackgroundHex string  `json:"bg"`
	TextHex       string  `json:"text"`
}

// SnapPoint is one entry of a chart's snapPoints list, surviving pruning
// and spatial-hash deduplication.
type SnapPoint struct {
	SeriesIndex int     `json:"series_index"`
	XTagOrCat   float64 `json:"x_tag_or_cat_idx"`
	YTag        float64 `json:"y_tag"`
	ScreenX     float64 `json:"screen_x"`
	ScreenY     float64 `json:"screen_y"`
}

// Chart is one chart's interactive payload.
type Chart struct {
	Area       Rect             `json:"area"`
	PlotBox    Rect             `json:"chart"`
	XAxes      [2]AxisDescriptor `json:"xAxes"`
	YAxes      [2]AxisDescriptor `json:"yAxes"`
	AxisSwap   bool             `json:"axisSwap"`
	SeriesList []SeriesEntry    `json:"seriesList"`
	SnapPoints []SnapPoint      `json:"snapPoints"`
	CatCnt     int              `json:"catCnt"`
	Categories []string         `json:"categories"`
}

// Document is the full interactive-document payload for an ensemble: one
// entry per chart, each carrying its own category count and its category
// labels as a plain list in position order; no starting indices are
// interleaved with the labels.
type Document struct {
	Charts []Chart `json:"charts"`
}

// MarshalJSON serializes the receiver; kept as a named method (rather than
// relying solely on struct tags) so future non-struct-shaped fields can be
// folded in without changing the wire shape.
func (d *Document) MarshalJSON() ([]byte, error) {
	type alias Document
	return json.Marshal((*alias)(d))
}

// snapBucket buckets a snap point into an O(1)-lookup spatial hash cell
// of side snapFactor screen pixels.
func snapBucket(x, y, snapFactor float64) [2]int64 {
	if snapFactor <= 0 {
		snapFactor = 1
	}
	return [2]int64{int64(x / snapFactor), int64(y / snapFactor)}
}

// DedupeSnapPoints returns the subset of candidates that fit into the
// snap_factor spatial hash, always keeping entries in preserved (e.g.
// series-pruning-marked anchors) and filling remaining free buckets from
// the rest in order.
func DedupeSnapPoints(preserved, candidates []SnapPoint, snapFactor float64) []SnapPoint {
	taken := make(map[[2]int64]bool)
	out := append([]SnapPoint(nil), preserved...)
	for _, p := range preserved {
		taken[snapBucket(p.ScreenX, p.ScreenY, snapFactor)] = true
	}
	for _, p := range candidates {
		b := snapBucket(p.ScreenX, p.ScreenY, snapFactor)
		if taken[b] {
			continue
		}
		taken[b] = true
		out = append(out, p)
	}
	return out
}

// pageTemplate is a trusted, compile-time-constant template source: the
// only computed content it interpolates is the SVG document (already a
// trusted, internally-generated fragment, not user input) and the JSON
// payload, both supplied as safehtml types so the template engine emits
// them unescaped while everything else stays auto-escaped by construction.
const pageTemplate = `<!DOCTYPE html><html><body>{{.SVG}}` +
	`<script type="application/json" id="chartus-data">{{.Payload}}</script>` +
	`<script src="chartus-viewer.js"></script></body></html>`

var page = template.Must(template.New("chartus").Parse(pageTemplate))

type pageData struct {
	SVG     safehtml.HTML
	Payload safehtml.JS
}

// Wrap embeds svg (a complete SVG document) and the JSON-encoded payload
// into an HTML document, writing it to w. The viewer script itself is not
// authored here (it is supplied externally, per the Non-goal); a
// placeholder <script src> tag is left for it.
//
// svg and the marshaled payload are both produced internally by this
// module, never from untrusted input, which is the precondition for using
// uncheckedconversions to assert they satisfy safehtml's HTML/JS type
// contracts.
func Wrap(w io.Writer, svg string, doc *Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling interactive payload: %w", err)
	}
	return page.Execute(w, pageData{
		SVG:     uncheckedconversions.HTMLFromStringKnownToSatisfyTypeContract(svg),
		Payload: uncheckedconversions.JSFromStringKnownToSatisfyTypeContract(string(payload)),
	})
}
