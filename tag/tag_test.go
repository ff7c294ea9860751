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

package tag

import (
	"testing"

	"github.com/chartus/chartus/geom"
)

func TestPreferredOrderPutsOppositeDirectionFirst(t *testing.T) {
	// Incoming and outgoing both point East; the tag should prefer West,
	// staying outside the line's acute angle.
	in := geom.Point{X: 1, Y: 0}
	out := geom.Point{X: 1, Y: 0}
	order := PreferredOrder(in, out)
	if order[0] != West {
		t.Errorf("PreferredOrder()[0] = %v, want West", order[0])
	}
}

func TestPlaceFindsFreeSpaceWhenUnobstructed(t *testing.T) {
	anchor := geom.Point{X: 0, Y: 0}
	box, _, ok := Place(anchor, 10, 4, 5, nil, nil, nil, 0, 0)
	if !ok {
		t.Fatal("Place() with no avoid geometry should always succeed")
	}
	if box.Width() != 10 || box.Height() != 4 {
		t.Errorf("Place() box = %+v, want width=10 height=4", box)
	}
}

func TestPlacePrefersRequestedDirectionWhenFree(t *testing.T) {
	anchor := geom.Point{X: 0, Y: 0}
	north := North
	_, d, ok := Place(anchor, 4, 4, 5, &north, nil, nil, 0, 0)
	if !ok || d != North {
		t.Errorf("Place() direction = %v ok=%v, want North", d, ok)
	}
}

func TestPlaceFallsBackWhenPreferredDirectionBlocked(t *testing.T) {
	anchor := geom.Point{X: 0, Y: 0}
	north := North
	// Block everything near the North candidate at pass 1.
	blocker := geom.NewBox(geom.Point{X: -10, Y: 0}, geom.Point{X: 10, Y: 20})
	_, d, ok := Place(anchor, 4, 4, 5, &north, nil, []geom.Box{blocker}, 0, 0)
	if !ok {
		t.Fatal("Place() should still find a direction once North is blocked")
	}
	if d == North {
		t.Errorf("Place() returned blocked direction %v", d)
	}
}

func TestPlaceFailsWhenSurrounded(t *testing.T) {
	anchor := geom.Point{X: 0, Y: 0}
	// A huge blocker covering every candidate offset across all 3 passes.
	blocker := geom.NewBox(geom.Point{X: -1000, Y: -1000}, geom.Point{X: 1000, Y: 1000})
	_, _, ok := Place(anchor, 4, 4, 5, nil, nil, []geom.Box{blocker}, 0, 0)
	if ok {
		t.Error("Place() should fail (tag suppressed) when every candidate collides")
	}
}
