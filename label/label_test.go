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

package label

import (
	"testing"

	"github.com/chartus/chartus/color"
	"github.com/chartus/chartus/geom"
	"github.com/chartus/chartus/scene"
)

func TestRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	text := &scene.Object{Kind: scene.KindText, Text: "hello", At: geom.Point{X: 0, Y: 0}}
	id := r.Register([]*scene.Object{text}, scene.Attrs{Font: scene.DefaultFont})

	if got := r.Lines(id); len(got) != 1 || got[0] != text {
		t.Fatalf("Lines(%v) = %v, want [text]", id, got)
	}
	if !r.OriginalBox(id).Defined() {
		t.Fatalf("OriginalBox(%v) not defined", id)
	}
}

func TestOriginalBoxSurvivesMove(t *testing.T) {
	r := NewRegistry()
	text := &scene.Object{Kind: scene.KindText, Text: "hi", At: geom.Point{X: 0, Y: 0}}
	id := r.Register([]*scene.Object{text}, scene.Attrs{Font: scene.DefaultFont})
	original := r.OriginalBox(id)

	text.Translate(100, 100)

	if got := r.OriginalBox(id); got != original {
		t.Errorf("OriginalBox(%v) changed after move: got %+v, want %+v", id, got, original)
	}
	current := r.CurrentBox(id, scene.Attrs{Font: scene.DefaultFont})
	if current == original {
		t.Errorf("CurrentBox(%v) should reflect the move, got unchanged %+v", id, current)
	}
}

func TestBackgroundExpandsByPadding(t *testing.T) {
	box := geom.NewBox(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 4})
	bg := Background(box, 2, color.RGB(255, 255, 255))
	got := bg.BoundingBox(scene.Attrs{})
	want := geom.NewBox(geom.Point{X: -2, Y: -2}, geom.Point{X: 12, Y: 6})
	if got != want {
		t.Errorf("Background box = %+v, want %+v", got, want)
	}
}

func TestUnknownIDReturnsZeroValue(t *testing.T) {
	r := NewRegistry()
	if lines := r.Lines(ID(42)); lines != nil {
		t.Errorf("Lines(unknown) = %v, want nil", lines)
	}
	if box := r.OriginalBox(ID(42)); box.Defined() {
		t.Errorf("OriginalBox(unknown) = %+v, want undefined", box)
	}
}
