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
	"io"
	"strconv"
	"strings"

	"github.com/chartus/chartus/annotate"
	"github.com/chartus/chartus/axis"
	"github.com/chartus/chartus/chart"
	"github.com/chartus/chartus/color"
	"github.com/chartus/chartus/ensemble"
	"github.com/chartus/chartus/geom"
	"github.com/chartus/chartus/scene"
	"github.com/chartus/chartus/series"
	"github.com/chartus/chartus/style"
)

// Compile reads src under this package's grammar and builds the Ensemble it
// describes. The supported key space (see DESIGN.md for the documented
// scope) is: a top-level document header, Chart: blocks carrying axis
// labels and Series:/Data:/Category: blocks, MacroDef:/MacroEnd:/Macro:
// expansion, and `@`/`@@` annotation lines.
func Compile(src io.Reader) (*ensemble.Ensemble, error) {
	c := &compiler{lx: NewLexer(src), macros: NewMacros()}
	return c.run()
}

type compiler struct {
	lx      *Lexer
	macros  *Macros
	pending []Line

	cols, rows int
	margin     float64
	background color.Color
	foreground color.Color
	title      string
	footnotes  []string

	charts            []*chartBuilder
	globalAnnotator   *annotate.Annotator
	globalAnnotations []func(geom.Box) *scene.Object
}

// chartBuilder accumulates one Chart: block's configuration and series
// list. The underlying chart.Chart is constructed lazily, the first time a
// Series: or Category: line needs it, since chart.New freezes its axis
// Config at construction time: header keys (XLabel:, YLabel:, ...) must
// precede any Series:/Category:/@ line within a chart's block.
type chartBuilder struct {
	cfg       chart.Config
	built     *chart.Chart
	nextStyle int

	curSeries *series.Series
	lastRow   string // "Data" or "Category", for indented continuation lines

	annotator *annotate.Annotator
}

func newChartBuilder() *chartBuilder {
	return &chartBuilder{cfg: chart.Config{YAxes: [2]axis.Config{{}, {}}}}
}

func (b *chartBuilder) chart() *chart.Chart {
	if b.built == nil {
		b.built = chart.New(b.cfg)
	}
	return b.built
}

func (c *compiler) run() (*ensemble.Ensemble, error) {
	c.cols, c.rows = 1, 1
	var recordingMacro string
	var recordedLines []Line

	for {
		line, err := c.nextLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if line.Comment {
			continue
		}

		if recordingMacro != "" {
			if line.Key == "MacroEnd" && strings.TrimSpace(line.Value) == recordingMacro {
				c.macros.Define(recordingMacro, recordedLines)
				recordingMacro, recordedLines = "", nil
				continue
			}
			recordedLines = append(recordedLines, line)
			continue
		}

		switch {
		case line.Key == "MacroDef":
			recordingMacro = strings.TrimSpace(line.Value)
			recordedLines = nil
			continue
		case line.Key == "Macro":
			if err := c.expandMacro(line); err != nil {
				return nil, err
			}
			continue
		case line.Key == "__macroend":
			c.macros.Leave(line.Value)
			c.lx.PopFrame()
			continue
		case line.Annotation:
			if err := c.handleAnnotation(line, false); err != nil {
				return nil, err
			}
			continue
		case line.AnnotationGlobal:
			if err := c.handleAnnotation(line, true); err != nil {
				return nil, err
			}
			continue
		case line.Continuation:
			if err := c.handleRow(line.Number, line.Value); err != nil {
				return nil, err
			}
			continue
		}

		if err := c.handleSpecifier(line); err != nil {
			return nil, err
		}
	}

	if recordingMacro != "" {
		return nil, c.lx.Errorf(c.lx.lineNo, 1, ParseError, "MacroDef: %s is never closed with a matching MacroEnd", recordingMacro)
	}

	return c.build(), nil
}

func (c *compiler) expandMacro(line Line) error {
	name := strings.TrimSpace(line.Value)
	body, mErr := c.macros.Expand(name, line.Number)
	if mErr != nil {
		return mErr
	}
	c.macros.Enter(name)
	c.lx.PushFrame(name, line.Number)
	// Expanded lines are pushed ahead of whatever is already pending,
	// followed by a sentinel that leaves the macro's active/frame state
	// once every expanded line has been consumed.
	expanded := append(append([]Line(nil), body...), Line{Key: "__macroend", Value: name})
	c.pending = append(expanded, c.pending...)
	return nil
}

func (c *compiler) nextLine() (Line, error) {
	if len(c.pending) > 0 {
		l := c.pending[0]
		c.pending = c.pending[1:]
		return l, nil
	}
	return c.lx.Next()
}

func (c *compiler) currentChart() *chartBuilder {
	if len(c.charts) == 0 {
		return nil
	}
	return c.charts[len(c.charts)-1]
}

func (c *compiler) handleSpecifier(line Line) error {
	cur := c.currentChart()
	switch line.Key {
	case "Title":
		if cur == nil {
			c.title = line.Value
		} else {
			cur.cfg.Title = line.Value
		}
	case "Width", "Height":
		// Accepted for forward compatibility with an explicit canvas size;
		// actual dimensions are derived by the grid solver from chart
		// content, so the value only needs to be well-formed.
		if _, err := parseFloat(line.Value, line.Number); err != nil {
			return err
		}
	case "Margin":
		v, err := parseFloat(line.Value, line.Number)
		if err != nil {
			return err
		}
		c.margin = v
	case "Background":
		col, err := parseColorSpec(line.Value, line.Number, c.lx)
		if err != nil {
			return err
		}
		if cur == nil {
			c.background = col
		} else {
			cur.cfg.Background = col
		}
	case "Foreground":
		col, err := parseColorSpec(line.Value, line.Number, c.lx)
		if err != nil {
			return err
		}
		c.foreground = col
	case "Footnote":
		c.footnotes = append(c.footnotes, line.Value)
	case "Cols":
		v, err := parseInt(line.Value, line.Number, c.lx)
		if err != nil {
			return err
		}
		c.cols = v
	case "Rows":
		v, err := parseInt(line.Value, line.Number, c.lx)
		if err != nil {
			return err
		}
		c.rows = v
	case "Chart":
		c.charts = append(c.charts, newChartBuilder())
	case "XLabel":
		if err := c.requireOpenChart(line, "XLabel"); err != nil {
			return err
		}
		cur.cfg.XAxis.Label = line.Value
	case "YLabel":
		if err := c.requireOpenChart(line, "YLabel"); err != nil {
			return err
		}
		cur.cfg.YAxes[0].Label = line.Value
	case "Y2Label":
		if err := c.requireOpenChart(line, "Y2Label"); err != nil {
			return err
		}
		cur.cfg.YAxes[1].Label = line.Value
	case "LogScale":
		if err := c.requireOpenChart(line, "LogScale"); err != nil {
			return err
		}
		cur.cfg.YAxes[0].LogScale = true
	case "CategoryMargin":
		if err := c.requireOpenChart(line, "CategoryMargin"); err != nil {
			return err
		}
		v, err := parseFloat(line.Value, line.Number)
		if err != nil {
			return err
		}
		cur.cfg.BarMarginPx = v
	case "Series":
		return c.handleSeriesLine(line)
	case "Color":
		return c.handleSeriesColor(line)
	case "Data":
		if cur == nil {
			return c.lx.Errorf(line.Number, 1, ParseError, "Data: before any Series: is open")
		}
		cur.lastRow = "Data"
		return c.handleRow(line.Number, line.Value)
	case "Category":
		if cur == nil {
			return c.lx.Errorf(line.Number, 1, ParseError, "Category: before any Series: is open")
		}
		cur.lastRow = "Category"
		return c.handleRow(line.Number, line.Value)
	default:
		return c.lx.Errorf(line.Number, 1, ParseError, "unknown key %q", line.Key)
	}
	return nil
}

func (c *compiler) requireOpenChart(line Line, key string) error {
	cur := c.currentChart()
	if cur == nil {
		return c.lx.Errorf(line.Number, 1, ParseError, "%s: before any Chart: is open", key)
	}
	if cur.built != nil {
		return c.lx.Errorf(line.Number, 1, ParseError, "%s: must appear before this chart's first Series:", key)
	}
	return nil
}

var seriesTypes = map[string]series.Type{
	"XY": series.XY, "Scatter": series.Scatter, "Line": series.Line, "Point": series.Point,
	"Lollipop": series.Lollipop, "Bar": series.Bar, "StackedBar": series.StackedBar,
	"LayeredBar": series.LayeredBar, "Area": series.Area, "StackedArea": series.StackedArea,
}

func (c *compiler) handleSeriesLine(line Line) error {
	cur := c.currentChart()
	if cur == nil {
		return c.lx.Errorf(line.Number, 1, ParseError, "Series: before any Chart: is open")
	}
	fields := strings.Fields(line.Value)
	if len(fields) < 2 {
		return c.lx.Errorf(line.Number, 1, ParseError, "Series: requires a type and a name")
	}
	t, ok := seriesTypes[fields[0]]
	if !ok {
		return c.lx.Errorf(line.Number, 1, ParseError, "Series: unknown series type %q", fields[0])
	}
	yAxis := 0
	if len(fields) >= 3 {
		v, err := strconv.Atoi(fields[2])
		if err != nil || (v != 0 && v != 1) {
			return c.lx.Errorf(line.Number, 1, ParseError, "Series: Y-axis index must be 0 or 1")
		}
		yAxis = v
	}
	s := series.New(t, fields[1], yAxis)
	s.Style = style.Resolve(style.Index(cur.nextStyle))
	cur.nextStyle++
	cur.curSeries = s
	cur.chart().AddSeries(s)
	return nil
}

func (c *compiler) handleSeriesColor(line Line) error {
	cur := c.currentChart()
	if cur == nil || cur.curSeries == nil {
		return c.lx.Errorf(line.Number, 1, ParseError, "Color: before any Series: is open")
	}
	fields := strings.Fields(line.Value)
	if len(fields) == 0 {
		return c.lx.Errorf(line.Number, 1, ParseError, "Color: requires a color specifier")
	}
	var lighten, transparency *float64
	if len(fields) >= 2 {
		v, err := parseFloat(fields[1], line.Number)
		if err != nil {
			return err
		}
		lighten = &v
	}
	if len(fields) >= 3 {
		v, err := parseFloat(fields[2], line.Number)
		if err != nil {
			return err
		}
		transparency = &v
	}
	col, err := color.Parse(fields[0], lighten, transparency)
	if err != nil {
		return c.lx.Errorf(line.Number, 1, ParseError, "Color: %v", err)
	}
	cur.curSeries.Style.Color = col
	return nil
}

func (c *compiler) handleRow(lineNo int, value string) error {
	cur := c.currentChart()
	if cur == nil || cur.curSeries == nil {
		return c.lx.Errorf(lineNo, 1, ParseError, "a data row appears before any Series: is open")
	}
	fields := strings.Fields(value)
	if len(fields) != 2 {
		return c.lx.Errorf(lineNo, 1, ParseError, "a data row requires exactly two fields")
	}
	switch cur.lastRow {
	case "Category":
		y, err := parseDatum(fields[1], lineNo)
		if err != nil {
			return err
		}
		idx := cur.chart().AddCategory(fields[0])
		cur.curSeries.Points = append(cur.curSeries.Points, series.Point{X: float64(idx), Y: y})
	default:
		x, err := parseDatum(fields[0], lineNo)
		if err != nil {
			return err
		}
		y, err := parseDatum(fields[1], lineNo)
		if err != nil {
			return err
		}
		cur.curSeries.Points = append(cur.curSeries.Points, series.Point{X: x, Y: y})
	}
	return nil
}

// parseDatum parses a single data value, honoring the `!`/`-` sentinels:
// `!` marks the value invalid (breaking the line), `-` skips it (ignored
// without breaking the line).
func parseDatum(tok string, lineNo int) (float64, error) {
	switch tok {
	case "!":
		return series.INVALID, nil
	case "-":
		return series.SKIP, nil
	default:
		return parseFloat(tok, lineNo)
	}
}

func parseFloat(s string, lineNo int) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, Errorf(ParseError, lineNo, 1, "expected a number, got %q", s)
	}
	return v, nil
}

func parseInt(s string, lineNo int, lx *Lexer) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, lx.Errorf(lineNo, 1, ParseError, "expected an integer, got %q", s)
	}
	return v, nil
}

func parseColorSpec(s string, lineNo int, lx *Lexer) (color.Color, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return color.Color{}, lx.Errorf(lineNo, 1, ParseError, "expected a color specifier")
	}
	col, err := color.Parse(fields[0], nil, nil)
	if err != nil {
		return color.Color{}, lx.Errorf(lineNo, 1, ParseError, "%v", err)
	}
	return col, nil
}

func (c *compiler) build() *ensemble.Ensemble {
	ens := ensemble.New(ensemble.Config{
		Cols: c.cols, Rows: c.rows, MarginPt: c.margin,
		Foreground: c.foreground, Background: c.background,
		Title: c.title, Footnotes: c.footnotes,
	})
	ens.GlobalAnnotations = c.globalAnnotations
	for i, cb := range c.charts {
		col, row := i%c.cols, i/c.cols
		ens.AddChart(cb.chart(), ensemble.Span{X1: col, X2: col, Y1: row, Y2: row}, 400, 300, 50, 20, 20, 40)
	}
	return ens
}

// handleAnnotation interprets an `@` (per-chart) or `@@` (global) line,
// either a persistent-state keyword, a `{`/`}` nesting marker, or a
// primitive that's compiled into a closure and queued for resolution once
// the relevant plot coordinates are final (chart.Chart.AnnotateAbove for
// per-chart annotations, Ensemble.GlobalAnnotations for global ones).
//
// A coordinate is always written as two tokens: a keyword (Left/Right/Top/
// Bottom/Center) or an axis value, followed by a pixel offset — e.g.
// "Left 0" or "3.5 -2". Text arguments are double-quoted. See DESIGN.md for
// the full annotation keyword grammar this compiler accepts.
func (c *compiler) handleAnnotation(line Line, global bool) error {
	var a *annotate.Annotator
	if global {
		if c.globalAnnotator == nil {
			c.globalAnnotator = annotate.New(annotate.Target{})
		}
		a = c.globalAnnotator
	} else {
		cur := c.currentChart()
		if cur == nil {
			return c.lx.Errorf(line.Number, 1, ParseError, "@%s before any chart is open", line.Key)
		}
		if cur.annotator == nil {
			cur.annotator = annotate.New(annotate.Target{})
		}
		a = cur.annotator
	}

	args := tokenize(line.Value)

	switch line.Key {
	case "{":
		a.Push()
		return nil
	case "}":
		if !a.Pop() {
			return c.lx.Errorf(line.Number, 1, ParseError, "unmatched `}`")
		}
		return nil
	case "LineWidth", "Dash", "Color", "Fill", "TextColor", "TextAnchor", "TextSize", "RectRadius", "PointCoor", "YAxis":
		return c.applyAnnotationState(line, a, args)
	}

	prim, err := buildAnnotationPrimitive(c.lx, line, a.State(), args)
	if err != nil {
		return err
	}
	if global {
		c.globalAnnotations = append(c.globalAnnotations, prim.asGlobal())
	} else {
		c.currentChart().chart().AnnotateAbove(prim.asChart())
	}
	return nil
}

func (c *compiler) applyAnnotationState(line Line, a *annotate.Annotator, args []string) error {
	st := a.State()
	switch line.Key {
	case "LineWidth":
		v, err := parseFloat(firstOr(args, ""), line.Number)
		if err != nil {
			return err
		}
		st.LineWidthPt = v
	case "TextSize":
		v, err := parseFloat(firstOr(args, ""), line.Number)
		if err != nil {
			return err
		}
		st.TextSizePt = v
	case "RectRadius":
		v, err := parseFloat(firstOr(args, ""), line.Number)
		if err != nil {
			return err
		}
		st.RectRadius = v
	case "Dash":
		if len(args) == 1 && args[0] == "None" {
			st.Dash = nil
			break
		}
		dash := make([]float64, len(args))
		for i, tok := range args {
			v, err := parseFloat(tok, line.Number)
			if err != nil {
				return err
			}
			dash[i] = v
		}
		st.Dash = dash
	case "Color":
		col, err := parseColorSpec(firstOr(args, ""), line.Number, c.lx)
		if err != nil {
			return err
		}
		st.LineColor = col
	case "Fill":
		col, err := parseColorSpec(firstOr(args, ""), line.Number, c.lx)
		if err != nil {
			return err
		}
		st.FillColor = col
	case "TextColor":
		col, err := parseColorSpec(firstOr(args, ""), line.Number, c.lx)
		if err != nil {
			return err
		}
		st.TextColor = col
	case "TextAnchor":
		anchor, ok := anchorKeywords[firstOr(args, "")]
		if !ok {
			return c.lx.Errorf(line.Number, 1, ParseError, "TextAnchor: unknown anchor %q", firstOr(args, ""))
		}
		st.TextAnchor = anchor
	case "PointCoor":
		st.PointCoor = firstOr(args, "") == "true"
	case "YAxis":
		v, err := parseInt(firstOr(args, ""), line.Number, c.lx)
		if err != nil {
			return err
		}
		st.YAxisIndex = v
	}
	a.SetState(st)
	return nil
}

func firstOr(args []string, dflt string) string {
	if len(args) == 0 {
		return dflt
	}
	return args[0]
}

var anchorKeywords = map[string]geom.Anchor{
	"Center": geom.AnchorCenter, "Left": geom.AnchorLeft, "Right": geom.AnchorRight,
	"Top": geom.AnchorTop, "Bottom": geom.AnchorBottom,
	"TopLeft": geom.AnchorTopLeft, "TopRight": geom.AnchorTopRight,
	"BottomLeft": geom.AnchorBottomLeft, "BottomRight": geom.AnchorBottomRight,
}

// primitiveBuild is a captured annotation primitive call, replayed once a
// real annotate.Target is available against a fresh Annotator carrying the
// state in effect when the primitive line was parsed.
type primitiveBuild func(a *annotate.Annotator) *scene.Object

func (p primitiveBuild) asChart() func(annotate.Target) *scene.Object {
	return func(t annotate.Target) *scene.Object { return p(annotate.New(t)) }
}

func (p primitiveBuild) asGlobal() func(geom.Box) *scene.Object {
	return func(box geom.Box) *scene.Object {
		target := annotate.Target{
			PlotBox: box,
			XAxis:   func(v float64) float64 { return v },
			YAxis:   func(v float64, _ int) float64 { return v },
		}
		return p(annotate.New(target))
	}
}

func buildAnnotationPrimitive(lx *Lexer, line Line, state annotate.State, args []string) (primitiveBuild, error) {
	wrap := func(f func(a *annotate.Annotator) *scene.Object) primitiveBuild {
		return func(a *annotate.Annotator) *scene.Object {
			a.SetState(state)
			return f(a)
		}
	}
	switch line.Key {
	case "Line":
		p1, p2, err := twoPoints(lx, line, args)
		if err != nil {
			return nil, err
		}
		return wrap(func(a *annotate.Annotator) *scene.Object { return a.Line(p1, p2) }), nil
	case "Arrow":
		p1, p2, err := twoPoints(lx, line, args)
		if err != nil {
			return nil, err
		}
		return wrap(func(a *annotate.Annotator) *scene.Object { return a.Arrow(p1, p2) }), nil
	case "Rect":
		p1, p2, err := twoPoints(lx, line, args)
		if err != nil {
			return nil, err
		}
		return wrap(func(a *annotate.Annotator) *scene.Object { return a.Rect(p1, p2) }), nil
	case "Circle":
		if len(args) != 5 {
			return nil, lx.Errorf(line.Number, 1, ParseError, "Circle: requires a center point and a radius (5 fields)")
		}
		center, _, err := parsePoint(lx, line, args[:4])
		if err != nil {
			return nil, err
		}
		r, err := parseFloat(args[4], line.Number)
		if err != nil {
			return nil, err
		}
		return wrap(func(a *annotate.Annotator) *scene.Object { return a.Circle(center, r) }), nil
	case "Ellipse":
		if len(args) != 6 {
			return nil, lx.Errorf(line.Number, 1, ParseError, "Ellipse: requires a center point and two radii (6 fields)")
		}
		center, _, err := parsePoint(lx, line, args[:4])
		if err != nil {
			return nil, err
		}
		rx, err := parseFloat(args[4], line.Number)
		if err != nil {
			return nil, err
		}
		ry, err := parseFloat(args[5], line.Number)
		if err != nil {
			return nil, err
		}
		return wrap(func(a *annotate.Annotator) *scene.Object { return a.Ellipse(center, rx, ry) }), nil
	case "Polyline", "Polygon":
		pts, err := pointList(lx, line, args)
		if err != nil {
			return nil, err
		}
		if line.Key == "Polyline" {
			return wrap(func(a *annotate.Annotator) *scene.Object { return a.Polyline(pts) }), nil
		}
		return wrap(func(a *annotate.Annotator) *scene.Object { return a.Polygon(pts) }), nil
	case "Text", "TextBox":
		if len(args) < 5 {
			return nil, lx.Errorf(line.Number, 1, ParseError, "%s: requires a point and quoted text", line.Key)
		}
		at, _, err := parsePoint(lx, line, args[:4])
		if err != nil {
			return nil, err
		}
		text := unquote(args[4])
		if line.Key == "Text" {
			return wrap(func(a *annotate.Annotator) *scene.Object { return a.Text(at, text) }), nil
		}
		return wrap(func(a *annotate.Annotator) *scene.Object { return a.TextBox(at, text) }), nil
	case "TextArrow":
		if len(args) != 9 {
			return nil, lx.Errorf(line.Number, 1, ParseError, "TextArrow: requires quoted text, a text-anchor point, and a target point (9 fields)")
		}
		text := unquote(args[0])
		textAt, _, err := parsePoint(lx, line, args[1:5])
		if err != nil {
			return nil, err
		}
		pointAt, _, err := parsePoint(lx, line, args[5:9])
		if err != nil {
			return nil, err
		}
		return wrap(func(a *annotate.Annotator) *scene.Object {
			objs := a.TextArrow(textAt, text, pointAt)
			g := scene.NewGroup()
			for _, o := range objs {
				g.Add(o)
			}
			return g
		}), nil
	default:
		return nil, lx.Errorf(line.Number, 1, ParseError, "unknown annotation keyword %q", line.Key)
	}
}

func twoPoints(lx *Lexer, line Line, args []string) (annotate.Point, annotate.Point, error) {
	if len(args) != 8 {
		return annotate.Point{}, annotate.Point{}, lx.Errorf(line.Number, 1, ParseError, "%s: requires two points (8 fields)", line.Key)
	}
	p1, _, err := parsePoint(lx, line, args[:4])
	if err != nil {
		return annotate.Point{}, annotate.Point{}, err
	}
	p2, _, err := parsePoint(lx, line, args[4:8])
	if err != nil {
		return annotate.Point{}, annotate.Point{}, err
	}
	return p1, p2, nil
}

func pointList(lx *Lexer, line Line, args []string) ([]annotate.Point, error) {
	if len(args) < 8 || len(args)%4 != 0 {
		return nil, lx.Errorf(line.Number, 1, ParseError, "%s: requires at least two points, in groups of 4 fields", line.Key)
	}
	pts := make([]annotate.Point, 0, len(args)/4)
	for i := 0; i < len(args); i += 4 {
		p, _, err := parsePoint(lx, line, args[i:i+4])
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
	return pts, nil
}

func parsePoint(lx *Lexer, line Line, args []string) (annotate.Point, []string, error) {
	x, err := parseCoord(lx, line, args[0], args[1])
	if err != nil {
		return annotate.Point{}, nil, err
	}
	y, err := parseCoord(lx, line, args[2], args[3])
	if err != nil {
		return annotate.Point{}, nil, err
	}
	return annotate.Point{X: x, Y: y}, args[4:], nil
}

var coordKeywords = map[string]annotate.Keyword{
	"Left": annotate.Left, "Right": annotate.Right, "Top": annotate.Top,
	"Bottom": annotate.Bottom, "Center": annotate.Center,
}

func parseCoord(lx *Lexer, line Line, posTok, offTok string) (annotate.Coord, error) {
	off, err := parseFloat(offTok, line.Number)
	if err != nil {
		return annotate.Coord{}, err
	}
	if kw, ok := coordKeywords[posTok]; ok {
		return annotate.Coord{Keyword: kw, Offset: off}, nil
	}
	v, err := parseFloat(posTok, line.Number)
	if err != nil {
		return annotate.Coord{}, lx.Errorf(line.Number, 1, ParseError, "expected a keyword or a number, got %q", posTok)
	}
	return annotate.Val(v, off), nil
}

// tokenize splits an annotation line's argument string on whitespace,
// treating a double-quoted run as a single token (for Text/TextBox/
// TextArrow's literal text argument).
func tokenize(s string) []string {
	var out []string
	var b strings.Builder
	inQuote := false
	flush := func() {
		if b.Len() > 0 {
			out = append(out, b.String())
			b.Reset()
		}
	}
	for _, r := range s {
		switch {
		case r == '"':
			b.WriteRune(r)
			inQuote = !inQuote
			if !inQuote {
				flush()
			}
		case !inQuote && (r == ' ' || r == '\t'):
			flush()
		default:
			b.WriteRune(r)
		}
	}
	flush()
	return out
}

func unquote(tok string) string {
	return strings.Trim(tok, `"`)
}
