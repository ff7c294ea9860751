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

// Package ensemble implements the top-level document container: it owns
// the canvas, colors, margin/border/padding, footnotes, the chart list and
// their grid placement, and the global legend; Build orchestrates
// preparation, grid solving, drawing, and final assembly.
package ensemble

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/chartus/chartus/chart"
	"github.com/chartus/chartus/color"
	"github.com/chartus/chartus/geom"
	"github.com/chartus/chartus/grid"
	"github.com/chartus/chartus/legend"
	"github.com/chartus/chartus/scene"
)

// Span is a chart's position in the grid, in cell-index space, inclusive on
// both ends.
type Span struct {
	X1, X2, Y1, Y2 int
}

// member is one chart placed into the ensemble's grid.
type member struct {
	chart       *chart.Chart
	span        Span
	areaWidth   float64
	areaHeight  float64
	padLeft     float64
	padRight    float64
	padTop      float64
	padBottom   float64
}

// Config configures an Ensemble before charts are added.
type Config struct {
	Cols, Rows       int
	MarginPt         float64
	BorderPt         float64
	PaddingPt        float64
	Foreground       color.Color
	Background       color.Color
	Title            string
	Footnotes        []string
}

// Ensemble is the top-level document: a grid of charts sharing aligned
// plot rectangles, a global title and footnotes, and an optional global
// legend.
type Ensemble struct {
	cfg     Config
	members []*member

	GlobalLegendEntries []legend.Entry

	// GlobalAnnotations are `@@`-introduced annotations, resolved against
	// the ensemble's overall bounding box once the grid has been solved.
	GlobalAnnotations []func(geom.Box) *scene.Object
}

// New returns an empty Ensemble.
func New(cfg Config) *Ensemble {
	return &Ensemble{cfg: cfg}
}

// Charts returns the charts placed in the receiver, in the order they were
// added, for callers (e.g. cmd/chartus) that build an interactive-document
// description of the rendered ensemble after Build.
func (e *Ensemble) Charts() []*chart.Chart {
	cs := make([]*chart.Chart, len(e.members))
	for i, m := range e.members {
		cs[i] = m.chart
	}
	return cs
}

// AddChart places c at span in the receiver's grid, with the given
// estimated interior plot-area size and decoration padding spilling
// outside that area on each side (axis labels, per-chart legend, title).
func (e *Ensemble) AddChart(c *chart.Chart, span Span, areaWidth, areaHeight, padLeft, padRight, padTop, padBottom float64) {
	e.members = append(e.members, &member{
		chart: c, span: span,
		areaWidth: areaWidth, areaHeight: areaHeight,
		padLeft: padLeft, padRight: padRight, padTop: padTop, padBottom: padBottom,
	})
}

// Build prepares every chart (fanned out with errgroup.Group, since each
// chart's own preparation is independent of every other chart's until the
// grid solver's synchronization barrier), solves the grid, moves and draws
// each chart, places the global legend in the best available hole, and
// assembles the final document. A deferred recover() converts any
// floating-point trap (divide-by-zero, invalid result) surfacing as a
// runtime.Error into a single error-card SVG document instead of
// propagating the panic.
func (e *Ensemble) Build() (doc *scene.Object, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); ok {
				doc, err = errorCard(fmt.Sprintf("%v", r)), nil
				return
			}
			panic(r)
		}
	}()
	return e.build()
}

func (e *Ensemble) build() (*scene.Object, error) {
	if err := e.prepareAll(); err != nil {
		return nil, err
	}

	xDemands := make([]grid.Demand, len(e.members))
	yDemands := make([]grid.Demand, len(e.members))
	for i, m := range e.members {
		xDemands[i] = grid.Demand{Start: m.span.X1, End: m.span.X2, AreaSize: m.areaWidth, PadBefore: m.padLeft, PadAfter: m.padRight}
		yDemands[i] = grid.Demand{Start: m.span.Y1, End: m.span.Y2, AreaSize: m.areaHeight, PadBefore: m.padBottom, PadAfter: m.padTop}
	}
	_, xEdges, _ := grid.Solve(e.cfg.Cols, xDemands)
	_, yEdges, _ := grid.Solve(e.cfg.Rows, yDemands)

	hole, hasHole := e.legendHole()
	if hasHole && len(e.GlobalLegendEntries) > 0 {
		legendW := yEdges[hole.Y2+1] - yEdges[hole.Y1] // placeholder extent, refined by caller via ExpandEmptyCell
		_ = legendW
	}

	root := scene.NewGroup()
	for _, m := range e.members {
		box := grid.PlotBox(xEdges, yEdges, m.span.X1, m.span.X2, m.span.Y1, m.span.Y2)
		m.chart.Prepare(box)
		m.chart.ResolveAnnotations()
		g := m.chart.Draw()
		root.Add(g)
	}
	for _, f := range e.GlobalAnnotations {
		root.Add(f(geom.NewBox(geom.Point{X: xEdges[0], Y: yEdges[0]}, geom.Point{X: xEdges[len(xEdges)-1], Y: yEdges[len(yEdges)-1]})))
	}

	if hasHole && len(e.GlobalLegendEntries) > 0 {
		entries := legend.Group(e.GlobalLegendEntries)
		layout := legend.BestLayout(len(entries), 80, 16, xEdges[hole.X2+1]-xEdges[hole.X1], yEdges[hole.Y2+1]-yEdges[hole.Y1])
		origin := geom.Point{X: xEdges[hole.X1], Y: yEdges[hole.Y2+1]}
		root.Add(legend.Build(entries, layout, 80, 16, origin))
	}

	frame := &scene.Object{
		Kind:     scene.KindRect,
		Corner:   geom.Point{X: xEdges[0] - e.cfg.MarginPt, Y: yEdges[0] - e.cfg.MarginPt},
		Opposite: geom.Point{X: xEdges[len(xEdges)-1] + e.cfg.MarginPt, Y: yEdges[len(yEdges)-1] + e.cfg.MarginPt},
		Attrs:    scene.Attrs{FillColor: e.cfg.Background, LineColor: e.cfg.Foreground, LineWidthPt: e.cfg.BorderPt},
	}
	doc := scene.NewGroup()
	doc.Add(frame)
	doc.Add(root)

	if e.cfg.Title != "" {
		doc.Add(&scene.Object{Kind: scene.KindText, Text: e.cfg.Title,
			At: geom.Point{X: (xEdges[0] + xEdges[len(xEdges)-1]) / 2, Y: yEdges[len(yEdges)-1] + e.cfg.MarginPt + 16}})
	}
	for i, f := range e.cfg.Footnotes {
		doc.Add(&scene.Object{Kind: scene.KindText, Text: f,
			At: geom.Point{X: xEdges[0], Y: yEdges[0] - e.cfg.MarginPt - 12*float64(i+1)}})
	}
	return doc, nil
}

// prepareAll runs a provisional Prepare for every chart concurrently (each
// chart's own series/axis/stack resolution is independent of every other
// chart's), used only to discover each chart's natural plot-area footprint
// before the grid solver fixes final cell sizes.
func (e *Ensemble) prepareAll() error {
	errg, _ := errgroup.WithContext(context.Background())
	panics := make(chan any, len(e.members))
	for _, m := range e.members {
		m := m
		errg.Go(func() (err error) {
			// A panic inside a goroutine can't be recovered by the caller's
			// defer, so it is caught here and re-raised after Wait returns,
			// letting Build's top-level recover still see it.
			defer func() {
				if r := recover(); r != nil {
					panics <- r
				}
			}()
			box := geom.NewBox(geom.Point{X: 0, Y: 0}, geom.Point{X: m.areaWidth, Y: m.areaHeight})
			m.chart.Prepare(box)
			return nil
		})
	}
	err := errg.Wait()
	close(panics)
	for r := range panics {
		panic(r)
	}
	return err
}

// legendHole finds the best empty grid cell for the global legend.
func (e *Ensemble) legendHole() (grid.Hole, bool) {
	occupied := make(map[[2]int]bool)
	for _, m := range e.members {
		for x := m.span.X1; x <= m.span.X2; x++ {
			for y := m.span.Y1; y <= m.span.Y2; y++ {
				occupied[[2]int{x, y}] = true
			}
		}
	}
	holes := grid.DetectHoles(e.cfg.Cols, e.cfg.Rows, func(x, y int) bool { return occupied[[2]int{x, y}] })
	return grid.PreferredHole(holes, e.cfg.Cols, e.cfg.Rows)
}

// errorCard builds a minimal document reporting a fatal rendering error,
// the fallback shown for a recovered floating-point trap.
func errorCard(msg string) *scene.Object {
	root := scene.NewGroup()
	root.Add(&scene.Object{
		Kind:     scene.KindRect,
		Corner:   geom.Point{X: 0, Y: 0},
		Opposite: geom.Point{X: 400, Y: 80},
		Attrs:    scene.Attrs{FillColor: color.RGB(0xff, 0xe0, 0xe0)},
	})
	root.Add(&scene.Object{Kind: scene.KindText, Text: "rendering error: " + msg, At: geom.Point{X: 8, Y: 40}})
	return root
}
