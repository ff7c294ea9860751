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

// Command chartus compiles a chart description in the grammar of
// parse.Compile into an SVG document, optionally wrapped as an
// interactive HTML page.
package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chartus/chartus/axis"
	"github.com/chartus/chartus/categoryaxis"
	"github.com/chartus/chartus/chart"
	"github.com/chartus/chartus/color"
	"github.com/chartus/chartus/emit"
	"github.com/chartus/chartus/ensemble"
	"github.com/chartus/chartus/geom"
	"github.com/chartus/chartus/numfmt"
	"github.com/chartus/chartus/parse"
	"github.com/chartus/chartus/scene"
	"github.com/chartus/chartus/series"
)

// snapFactorPx is the spatial-hash bucket size (in screen pixels) used to
// dedupe candidate snap points; it is not itself part of any chart
// description, just a fixed hit-radius for the interactive viewer's pointer
// snapping.
const snapFactorPx = 8.0

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		outPath string
		html    bool
	)
	cmd := &cobra.Command{
		Use:   "chartus [input-file]",
		Short: "Compile a chart description into SVG or interactive HTML",
		Long: `chartus reads a chart description in the chartus grammar — a
Title/Chart/Series/Data header language with per-chart and global
annotations — and renders it to an SVG document, or, with --html, an
HTML page embedding that SVG alongside the interactive payload its
JavaScript viewer reads to drive hover/snap behavior.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := "-"
			if len(args) == 1 {
				in = args[0]
			}
			return run(in, outPath, html)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "-", `output path, or "-" for stdout`)
	cmd.Flags().BoolVar(&html, "html", false, "wrap the SVG in an interactive HTML page")
	return cmd
}

func run(inPath, outPath string, html bool) error {
	src, closeSrc, err := openSource(inPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", inPath, err)
	}
	defer closeSrc()

	ens, err := parse.Compile(src)
	if err != nil {
		return err
	}
	doc, err := ens.Build()
	if err != nil {
		return err
	}

	canvas, offX, offY := canvasFor(doc)

	out, closeOut, err := openDest(outPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", outPath, err)
	}
	defer closeOut()

	if !html {
		return canvas.WriteSVG(out)
	}

	var svg bytes.Buffer
	if err := canvas.WriteSVG(&svg); err != nil {
		return err
	}
	return emit.Wrap(out, svg.String(), documentFor(ens, offX, offY, canvas.Height))
}

// openSource opens inPath (or stdin for "-") and wraps it in the
// segmented-buffer source reader, so the parser reads through the same
// background-prefetch path a long-running server would, rather than a
// plain bufio.Reader over the file.
func openSource(inPath string) (*parse.Stream, func(), error) {
	if inPath == "-" {
		r := parse.NewStdinReader(os.Stdin)
		return parse.NewStream(context.Background(), r), r.Stop, nil
	}
	f, err := os.Open(inPath)
	if err != nil {
		return nil, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	r := parse.NewReader(f, info.Size(), 0)
	closeFn := func() { r.Stop(); f.Close() }
	return parse.NewStream(context.Background(), r), closeFn, nil
}

func openDest(outPath string) (*os.File, func(), error) {
	if outPath == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(outPath)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

// canvasFor sizes a Canvas to the rendered document's bounding box,
// translated so its top-left corner sits at the origin. The translation
// offset is returned so other consumers of pre-translation coordinates
// (e.g. a chart's plot box) can be shifted into the same frame.
func canvasFor(doc *scene.Object) (canvas *scene.Canvas, offX, offY float64) {
	box := doc.BoundingBox(scene.Attrs{})
	if !box.Defined() {
		return &scene.Canvas{Root: doc}, 0, 0
	}
	doc.Translate(-box.MinX, -box.MinY)
	return &scene.Canvas{Width: box.Width(), Height: box.Height(), Root: doc}, box.MinX, box.MinY
}

// documentFor builds the interactive payload from the ensemble's prepared
// charts: one entry per chart, with axis descriptors, series metadata, and
// snap points read from the same chart/axis/series state Draw used to
// render the SVG. offX/offY and canvasHeight translate each chart's
// internal (y-up, pre-translation) geometry into the screen-space (y-down,
// origin-shifted) coordinates the emitted SVG actually uses.
func documentFor(ens *ensemble.Ensemble, offX, offY, canvasHeight float64) *emit.Document {
	doc := &emit.Document{}
	for _, c := range ens.Charts() {
		doc.Charts = append(doc.Charts, chartEntry(c, offX, offY, canvasHeight))
	}
	return doc
}

func chartEntry(c *chart.Chart, offX, offY, canvasHeight float64) emit.Chart {
	plot := screenRect(c.PlotBox, offX, offY, canvasHeight)
	entry := emit.Chart{
		Area:       plot,
		PlotBox:    plot,
		Categories: c.Categories(),
		// This chart model resolves a single X domain (numeric or
		// category), not the independent top/bottom X-axis pair the
		// interactive payload's two-slot XAxes array allows for; only
		// XAxes[0] is ever populated.
		XAxes:      [2]emit.AxisDescriptor{xAxisDescriptor(c)},
		AxisSwap:   false, // this chart model never renders a vertical X-axis
		SnapPoints: snapPointsFor(c, offX, offY, canvasHeight),
	}
	entry.CatCnt = len(entry.Categories)
	for i := range entry.YAxes {
		if c.YAxisShown(i) {
			entry.YAxes[i] = axisDescriptorFor(c.YAxis(i), false)
		}
	}

	var legendBB *emit.Rect
	if c.Legend != nil {
		r := screenRect(c.Legend.BoundingBox(scene.Attrs{}), offX, offY, canvasHeight)
		legendBB = &r
	}
	bg := c.Background().Hex()
	for _, s := range c.Series() {
		entry.SeriesList = append(entry.SeriesList, emit.SeriesEntry{
			Name:          s.Name,
			YAxisIndex:    s.YAxisIndex,
			LegendBB:      legendBB,
			ForegroundHex: s.Style.Color.Hex(),
			BackgroundHex: bg,
			TextHex:       color.Against(s.Style.Color, color.RGB(0, 0, 0), color.RGB(255, 255, 255), 0.4).Hex(),
		})
	}
	return entry
}

// xAxisDescriptor resolves the receiver's single X-axis (numeric or
// category) into the interactive payload's axis-descriptor shape.
func xAxisDescriptor(c *chart.Chart) emit.AxisDescriptor {
	if c.IsCategoryChart() {
		return categoryAxisDescriptor(c.CategoryAxis())
	}
	if xa := c.XAxis(); xa != nil {
		return axisDescriptorFor(xa, false)
	}
	return emit.AxisDescriptor{}
}

// axisDescriptorFor reports a's resolved range, scale, and number format.
// ShowSign is always false: no axis.Config field in this chart model
// requests a leading '+' on non-negative numbers.
func axisDescriptorFor(a *axis.Axis, isCategory bool) emit.AxisDescriptor {
	return emit.AxisDescriptor{
		Show:        true,
		AreaVal1:    a.Min,
		AreaVal2:    a.Max,
		IsCategory:  isCategory,
		Logarithmic: a.LogScale,
		Format:      numberFormatFor(a.Format),
	}
}

func categoryAxisDescriptor(a *categoryaxis.Axis) emit.AxisDescriptor {
	return emit.AxisDescriptor{
		Show:       true,
		AreaVal1:   a.Min,
		AreaVal2:   a.Max,
		IsCategory: true,
	}
}

func numberFormatFor(m numfmt.Mode) emit.NumberFormat {
	switch m {
	case numfmt.Scientific:
		return emit.FormatScientific
	case numfmt.Magnitude:
		return emit.FormatEngineering
	default:
		return emit.FormatFixed
	}
}

// screenRect translates an internal (y-up) box into screen-space (y-down)
// coordinates relative to the document's origin-shifting translation.
func screenRect(b geom.Box, offX, offY, canvasHeight float64) emit.Rect {
	if !b.Defined() {
		return emit.Rect{}
	}
	return emit.Rect{
		X: b.MinX - offX,
		Y: scene.FlipY(b.MaxY-offY, canvasHeight),
		W: b.Width(),
		H: b.Height(),
	}
}

// snapPointsFor collects candidate snap points from every series with
// Snap set, preserving the series' tagged anchor point (if any) across
// deduplication the way a drawn value tag is never dropped, per
// emit.DedupeSnapPoints.
func snapPointsFor(c *chart.Chart, offX, offY, canvasHeight float64) []emit.SnapPoint {
	var preserved, candidates []emit.SnapPoint
	for idx, s := range c.Series() {
		if !s.Snap {
			continue
		}
		tagged := -1
		if s.Tag {
			tagged = lastValidIndex(s.Points)
		}
		for i, p := range s.Points {
			if series.IsInvalid(p.X) || series.IsSkip(p.X) || series.IsInvalid(p.Y) || series.IsSkip(p.Y) {
				continue
			}
			px := c.ScreenPoint(s, p)
			pt := emit.SnapPoint{
				SeriesIndex: idx,
				XTagOrCat:   p.X,
				YTag:        p.Y,
				ScreenX:     px.X - offX,
				ScreenY:     scene.FlipY(px.Y-offY, canvasHeight),
			}
			if i == tagged {
				preserved = append(preserved, pt)
			} else {
				candidates = append(candidates, pt)
			}
		}
	}
	return emit.DedupeSnapPoints(preserved, candidates, snapFactorPx)
}

// lastValidIndex returns the index of the last point in pts with a valid Y
// value, matching the anchor drawTags places a value tag at, or -1 if none.
func lastValidIndex(pts []series.Point) int {
	for i := len(pts) - 1; i >= 0; i-- {
		if !series.IsInvalid(pts[i].Y) && !series.IsSkip(pts[i].Y) {
			return i
		}
	}
	return -1
}
