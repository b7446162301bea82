// github.com/NorthBoundWisdom/CavalierContours - a 2D polyline contour library
// Copyright (C) 2026  The CavalierContours authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cavc

import (
	"math"
	"sort"
	"testing"

	"github.com/NorthBoundWisdom/CavalierContours/testcases"
)

// totalAbsArea sums |area| over a polyline list.
func totalAbsArea(plines []Polyline[float64]) float64 {
	var total float64
	for i := range plines {
		total += math.Abs(GetArea(&plines[i]))
	}
	return total
}

// sortedAbsAreas returns the |area| of each polyline, ascending.
func sortedAbsAreas(plines []Polyline[float64]) []float64 {
	areas := make([]float64, len(plines))
	for i := range plines {
		areas[i] = math.Abs(GetArea(&plines[i]))
	}
	sort.Float64s(areas)
	return areas
}

func circleRectCase() (Polyline[float64], Polyline[float64]) {
	cv, rv := testcases.SimpleBoolCase()
	return plineFromCase(cv, true), plineFromCase(rv, true)
}

func TestCombineCircleRectangle(t *testing.T) {
	circle, rect := circleRectCase()

	t.Run("union", func(t *testing.T) {
		r := CombinePlines(&circle, &rect, CombineUnion)
		if len(r.Remaining) != 1 || len(r.Subtracted) != 0 {
			t.Fatalf("got %d remaining, %d subtracted; want 1, 0", len(r.Remaining), len(r.Subtracted))
		}
		checkNear(t, "area", math.Abs(GetArea(&r.Remaining[0])), 109.15381629282, 1e-6)

		ext := GetExtents(&r.Remaining[0])
		checkNear(t, "xMin", ext.XMin, 0.0, 1e-6)
		checkNear(t, "yMin", ext.YMin, -10.0, 1e-6)
		checkNear(t, "xMax", ext.XMax, 10.0, 1e-6)
		checkNear(t, "yMax", ext.YMax, 10.0, 1e-6)
	})

	t.Run("intersect", func(t *testing.T) {
		r := CombinePlines(&circle, &rect, CombineIntersect)
		if len(r.Remaining) != 1 {
			t.Fatalf("got %d remaining, want 1", len(r.Remaining))
		}
		checkNear(t, "area", math.Abs(GetArea(&r.Remaining[0])), 29.386000046924, 1e-6)
	})

	t.Run("exclude", func(t *testing.T) {
		r := CombinePlines(&circle, &rect, CombineExclude)
		if len(r.Remaining) != 2 {
			t.Fatalf("got %d remaining, want 2", len(r.Remaining))
		}
		areas := sortedAbsAreas(r.Remaining)
		checkNear(t, "small lobe", areas[0], 19.816835628274, 1e-6)
		checkNear(t, "large lobe", areas[1], 29.336980664548, 1e-6)
	})

	t.Run("xor", func(t *testing.T) {
		r := CombinePlines(&circle, &rect, CombineXOR)
		if len(r.Remaining) != 4 {
			t.Fatalf("got %d remaining, want 4", len(r.Remaining))
		}
		// union minus intersection
		checkNear(t, "total area", totalAbsArea(r.Remaining), 109.15381629282-29.386000046924, 1e-6)
	})

	t.Run("argument_order_symmetry", func(t *testing.T) {
		ab := CombinePlines(&circle, &rect, CombineUnion)
		ba := CombinePlines(&rect, &circle, CombineUnion)
		checkNear(t, "union symmetric area", totalAbsArea(ab.Remaining), totalAbsArea(ba.Remaining), 1e-6)

		abi := CombinePlines(&circle, &rect, CombineIntersect)
		bai := CombinePlines(&rect, &circle, CombineIntersect)
		checkNear(t, "intersect symmetric area", totalAbsArea(abi.Remaining), totalAbsArea(bai.Remaining), 1e-6)
	})
}

func TestCombineSelfIdentity(t *testing.T) {
	a := plineFromCase(testcases.PositiveCircle(), true)

	union := CombinePlines(&a, &a, CombineUnion)
	if len(union.Remaining) != 1 {
		t.Fatalf("union(a,a): got %d remaining, want 1", len(union.Remaining))
	}
	checkNear(t, "union area", GetArea(&union.Remaining[0]), GetArea(&a), 1e-9)

	intersect := CombinePlines(&a, &a, CombineIntersect)
	if len(intersect.Remaining) != 1 {
		t.Fatalf("intersect(a,a): got %d remaining, want 1", len(intersect.Remaining))
	}
	checkNear(t, "intersect area", GetArea(&intersect.Remaining[0]), GetArea(&a), 1e-9)

	exclude := CombinePlines(&a, &a, CombineExclude)
	if len(exclude.Remaining) != 0 || len(exclude.Subtracted) != 0 {
		t.Errorf("exclude(a,a): got %d remaining, %d subtracted; want empty",
			len(exclude.Remaining), len(exclude.Subtracted))
	}

	xor := CombinePlines(&a, &a, CombineXOR)
	if len(xor.Remaining) != 0 || len(xor.Subtracted) != 0 {
		t.Errorf("xor(a,a): got empty = false")
	}
}

func TestCombineCoincidentRotatedAndReversed(t *testing.T) {
	a := plineFromCase(testcases.SimpleRectangle(), true)

	rotated := Polyline[float64]{Closed: true}
	rotated.Vertexes = append(rotated.Vertexes, a.Vertexes[2:]...)
	rotated.Vertexes = append(rotated.Vertexes, a.Vertexes[:2]...)
	r := CombinePlines(&a, &rotated, CombineExclude)
	if len(r.Remaining) != 0 {
		t.Errorf("exclude of rotated copy: got %d remaining, want 0", len(r.Remaining))
	}

	reversed := plineFromCase(testcases.ReverseDirection(testcases.SimpleRectangle()), true)
	r = CombinePlines(&a, &reversed, CombineUnion)
	if len(r.Remaining) != 1 {
		t.Fatalf("union with reversed copy: got %d remaining, want 1", len(r.Remaining))
	}
	checkNear(t, "area", math.Abs(GetArea(&r.Remaining[0])), 1.0, 1e-9)
}

func TestCombineDisjoint(t *testing.T) {
	a := plineFromCase(testcases.SimpleRectangle(), true)
	b := plineFromCase(testcases.SimpleRectangle(), true)
	TranslatePolyline(&b, V2(5.0, 5.0))

	union := CombinePlines(&a, &b, CombineUnion)
	if len(union.Remaining) != 2 {
		t.Errorf("union: got %d remaining, want 2", len(union.Remaining))
	}

	intersect := CombinePlines(&a, &b, CombineIntersect)
	if len(intersect.Remaining) != 0 {
		t.Errorf("intersect: got %d remaining, want 0", len(intersect.Remaining))
	}

	exclude := CombinePlines(&a, &b, CombineExclude)
	if len(exclude.Remaining) != 1 {
		t.Fatalf("exclude: got %d remaining, want 1", len(exclude.Remaining))
	}
	checkNear(t, "exclude area", GetArea(&exclude.Remaining[0]), 1.0, testEps)

	xor := CombinePlines(&a, &b, CombineXOR)
	if len(xor.Remaining) != 2 {
		t.Errorf("xor: got %d remaining, want 2", len(xor.Remaining))
	}
}

func TestCombineNested(t *testing.T) {
	outer := plineFromCase(testcases.SimpleRectangle(), true)
	ScalePolyline(&outer, 10.0)
	inner := plineFromCase(testcases.SimpleRectangle(), true)
	TranslatePolyline(&inner, V2(4.0, 4.0))

	union := CombinePlines(&outer, &inner, CombineUnion)
	if len(union.Remaining) != 1 {
		t.Fatalf("union: got %d remaining, want 1", len(union.Remaining))
	}
	checkNear(t, "union area", GetArea(&union.Remaining[0]), 100.0, testEps)

	intersect := CombinePlines(&outer, &inner, CombineIntersect)
	if len(intersect.Remaining) != 1 {
		t.Fatalf("intersect: got %d remaining, want 1", len(intersect.Remaining))
	}
	checkNear(t, "intersect area", GetArea(&intersect.Remaining[0]), 1.0, testEps)

	exclude := CombinePlines(&outer, &inner, CombineExclude)
	if len(exclude.Remaining) != 1 || len(exclude.Subtracted) != 1 {
		t.Fatalf("exclude: got %d remaining, %d subtracted; want 1, 1",
			len(exclude.Remaining), len(exclude.Subtracted))
	}
	checkNear(t, "exclude outer area", GetArea(&exclude.Remaining[0]), 100.0, testEps)
	checkNear(t, "exclude hole area", GetArea(&exclude.Subtracted[0]), 1.0, testEps)

	// excluding the outer from the inner leaves nothing
	swapped := CombinePlines(&inner, &outer, CombineExclude)
	if len(swapped.Remaining) != 0 {
		t.Errorf("inner minus outer: got %d remaining, want 0", len(swapped.Remaining))
	}
}

func TestCombineOverlappingSquares(t *testing.T) {
	a := NewPolyline[float64](true,
		[3]float64{0, 0, 0},
		[3]float64{4, 0, 0},
		[3]float64{4, 4, 0},
		[3]float64{0, 4, 0})
	b := NewPolyline[float64](true,
		[3]float64{2, 1, 0},
		[3]float64{6, 1, 0},
		[3]float64{6, 3, 0},
		[3]float64{2, 3, 0})

	// a is 16, b is 8, overlap is 2x2=4
	union := CombinePlines(&a, &b, CombineUnion)
	if len(union.Remaining) != 1 {
		t.Fatalf("union: got %d remaining, want 1", len(union.Remaining))
	}
	checkNear(t, "union area", math.Abs(GetArea(&union.Remaining[0])), 20.0, 1e-9)

	intersect := CombinePlines(&a, &b, CombineIntersect)
	if len(intersect.Remaining) != 1 {
		t.Fatalf("intersect: got %d remaining, want 1", len(intersect.Remaining))
	}
	checkNear(t, "intersect area", math.Abs(GetArea(&intersect.Remaining[0])), 4.0, 1e-9)

	exclude := CombinePlines(&a, &b, CombineExclude)
	if len(exclude.Remaining) != 1 {
		t.Fatalf("exclude: got %d remaining, want 1", len(exclude.Remaining))
	}
	checkNear(t, "exclude area", math.Abs(GetArea(&exclude.Remaining[0])), 12.0, 1e-9)

	xor := CombinePlines(&a, &b, CombineXOR)
	checkNear(t, "xor area", totalAbsArea(xor.Remaining), 16.0, 1e-9)
}

func TestCombineOpenPolylinePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("combine on open polyline did not panic")
		}
	}()
	open := plineFromCase(testcases.SimpleRectangle(), false)
	closed := plineFromCase(testcases.SimpleRectangle(), true)
	CombinePlines(&open, &closed, CombineUnion)
}

func TestCombineOutputOrientationConsistent(t *testing.T) {
	circle, rect := circleRectCase()
	r := CombinePlines(&circle, &rect, CombineUnion)
	if len(r.Remaining) != 1 {
		t.Fatalf("got %d remaining, want 1", len(r.Remaining))
	}
	// inputs are counter-clockwise; the union keeps that orientation
	if GetArea(&r.Remaining[0]) <= 0 {
		t.Errorf("union area = %v, want positive (ccw preserved)", GetArea(&r.Remaining[0]))
	}

	// every result vertex lies on one of the input boundaries
	for _, v := range r.Remaining[0].Vertexes {
		dA := ClosestPoint(&circle, v.Pos()).Distance
		dB := ClosestPoint(&rect, v.Pos()).Distance
		if min(dA, dB) > 1e-6 {
			t.Errorf("vertex (%v, %v) lies on neither input boundary", v.X, v.Y)
		}
	}
}
