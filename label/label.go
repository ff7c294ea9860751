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

// Package label supports drawing background rectangles behind text after the
// text has moved, by remembering which scene objects make up a label and
// where they originally stood.
package label

import (
	"github.com/chartus/chartus/color"
	"github.com/chartus/chartus/geom"
	"github.com/chartus/chartus/scene"
)

// ID identifies a registered label. An index into a Registry's internal
// slice rather than a raw pointer, so labels can reference each other
// without pointer cycles.
type ID int

// entry is one registered label: the scene objects that together render its
// text (usually a single scene.KindText, occasionally several lines) and the
// union of their bounding boxes as first registered, before any subsequent
// move.
type entry struct {
	lines    []*scene.Object
	original geom.Box
}

// Registry maps label IDs to their constituent line objects and original
// bounding boxes.
type Registry struct {
	entries []entry
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register records lines (the scene objects rendering one label's text) and
// returns a stable ID for later lookup. original is recorded as the union of
// each line's bounding box at the time of registration, under attrs.
func (r *Registry) Register(lines []*scene.Object, attrs scene.Attrs) ID {
	var box geom.Box
	for _, l := range lines {
		box.UpdateBox(l.BoundingBox(attrs))
	}
	r.entries = append(r.entries, entry{lines: lines, original: box})
	return ID(len(r.entries) - 1)
}

// Lines returns the scene objects registered under id.
func (r *Registry) Lines(id ID) []*scene.Object {
	if int(id) < 0 || int(id) >= len(r.entries) {
		return nil
	}
	return r.entries[id].lines
}

// OriginalBox returns the bounding box id's lines occupied at registration
// time, before any subsequent move.
func (r *Registry) OriginalBox(id ID) geom.Box {
	if int(id) < 0 || int(id) >= len(r.entries) {
		return geom.Box{}
	}
	return r.entries[id].original
}

// CurrentBox returns the union of the current bounding boxes of id's lines,
// reflecting any moves applied since registration.
func (r *Registry) CurrentBox(id ID, attrs scene.Attrs) geom.Box {
	var box geom.Box
	for _, l := range r.Lines(id) {
		box.UpdateBox(l.BoundingBox(attrs))
	}
	return box
}

// Background builds a filled Rect scene object covering box (typically a
// label's current bounding box), expanded by padding on every side, suitable for inserting
// behind the label's lines so that text remains legible over grid lines or
// other series geometry. fill is typically the chart's background color.
func Background(box geom.Box, padding float64, fill color.Color) *scene.Object {
	box = box.Expand(padding, padding)
	return &scene.Object{
		Kind:     scene.KindRect,
		Corner:   geom.Point{X: box.MinX, Y: box.MinY},
		Opposite: geom.Point{X: box.MaxX, Y: box.MaxY},
		Attrs:    scene.Attrs{FillColor: fill},
	}
}
