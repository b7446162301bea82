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
	"testing"
)

func TestPlineVertexBulgeClassification(t *testing.T) {
	v := PV(1.0, 2.0, 0.5)
	if v.BulgeIsZero() || v.BulgeIsNeg() || !v.BulgeIsPos() {
		t.Errorf("bulge 0.5 misclassified")
	}
	v = PV(1.0, 2.0, -0.5)
	if v.BulgeIsZero() || !v.BulgeIsNeg() || v.BulgeIsPos() {
		t.Errorf("bulge -0.5 misclassified")
	}
	v = PV(1.0, 2.0, 0.0)
	if !v.BulgeIsZero() {
		t.Errorf("bulge 0 misclassified")
	}
}

func TestArcRadiusAndCenter(t *testing.T) {
	cases := []struct {
		name   string
		v1, v2 PlineVertex[float64]
		radius float64
		center Vector2[float64]
	}{
		{"positive_quarter", PV(1.0, 0.0, 0.414213562373095), PV(0.0, 1.0, 0.0), 1.0, V2(0.0, 0.0)},
		{"negative_quarter", PV(1.0, 0.0, -0.414213562373095), PV(0.0, -1.0, 0.0), 1.0, V2(0.0, 0.0)},
		{"positive_h_half", PV(1.0, 0.0, 1.0), PV(-1.0, 0.0, 0.0), 1.0, V2(0.0, 0.0)},
		{"negative_h_half", PV(1.0, 0.0, -1.0), PV(-1.0, 0.0, 0.0), 1.0, V2(0.0, 0.0)},
		{"positive_v_half", PV(0.0, 1.0, 1.0), PV(0.0, -1.0, 0.0), 1.0, V2(0.0, 0.0)},
		{"negative_v_half", PV(0.0, 1.0, -1.0), PV(0.0, -1.0, 0.0), 1.0, V2(0.0, 0.0)},
		{"semicircle_below", PV(0.0, 0.0, 1.0), PV(10.0, 0.0, 0.0), 5.0, V2(5.0, 0.0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rc := ArcRadiusAndCenter(tc.v1, tc.v2)
			checkNear(t, "radius", rc.Radius, tc.radius, testEps)
			checkVecNear(t, "center", rc.Center, tc.center, 1e-9)

			// center must be equidistant from both endpoints
			d1 := tc.v1.Pos().Sub(rc.Center).Length()
			d2 := tc.v2.Pos().Sub(rc.Center).Length()
			checkNear(t, "endpoint distances", d1, d2, testEps)
		})
	}
}

func TestSplitAtPoint(t *testing.T) {
	t.Run("lines", func(t *testing.T) {
		v1, v2 := simpleLine()
		split := SplitAtPoint(v1, v2, V2(1.0, 1.0))
		checkVecNear(t, "updatedStart", split.UpdatedStart.Pos(), v1.Pos(), testEps)
		checkVecNear(t, "splitVertex", split.SplitVertex.Pos(), V2(1.0, 1.0), testEps)
		if !split.SplitVertex.BulgeIsZero() {
			t.Errorf("line split produced non-zero bulge %v", split.SplitVertex.Bulge)
		}
	})

	arcCases := []struct {
		name   string
		v1, v2 PlineVertex[float64]
		at     Vector2[float64]
	}{
		{"positive_quarter", PV(1.0, 0.0, 0.414213562373095), PV(0.0, 1.0, 0.0), V2(math.Sqrt2/2, math.Sqrt2/2)},
		{"negative_quarter", PV(1.0, 0.0, -0.414213562373095), PV(0.0, -1.0, 0.0), V2(math.Sqrt2/2, -math.Sqrt2/2)},
		{"positive_h_half", PV(1.0, 0.0, 1.0), PV(-1.0, 0.0, 0.0), V2(0.0, 1.0)},
		{"negative_h_half", PV(1.0, 0.0, -1.0), PV(-1.0, 0.0, 0.0), V2(0.0, -1.0)},
		{"positive_v_half", PV(0.0, 1.0, 1.0), PV(0.0, -1.0, 0.0), V2(-1.0, 0.0)},
		{"three_quarter_ccw", PV(1.0, 0.0, 3.0), PV(0.0, 1.0, 0.0), V2(2.0, 2.0)},
	}
	for _, tc := range arcCases {
		t.Run(tc.name, func(t *testing.T) {
			split := SplitAtPoint(tc.v1, tc.v2, tc.at)
			checkVecNear(t, "updatedStart pos", split.UpdatedStart.Pos(), tc.v1.Pos(), testEps)
			checkVecNear(t, "splitVertex pos", split.SplitVertex.Pos(), tc.at, testEps)

			// bulge signs must follow the original arc
			if math.Signbit(split.UpdatedStart.Bulge) != math.Signbit(tc.v1.Bulge) {
				t.Errorf("first sub-arc bulge sign flipped: %v", split.UpdatedStart.Bulge)
			}
			if math.Signbit(split.SplitVertex.Bulge) != math.Signbit(tc.v1.Bulge) {
				t.Errorf("second sub-arc bulge sign flipped: %v", split.SplitVertex.Bulge)
			}

			// the two sub-segments together reproduce the original length
			l1 := SegLength(split.UpdatedStart, PV(tc.at.X, tc.at.Y, 0.0))
			l2 := SegLength(split.SplitVertex, tc.v2)
			orig := SegLength(tc.v1, tc.v2)
			checkNear(t, "sub-segment length sum", l1+l2, orig, 1e-6)
		})
	}
}

func TestSegTangentVector(t *testing.T) {
	v1, v2 := simpleLine()
	tangent := SegTangentVector(v1, v2, V2(1.0, 1.0))
	checkVecNear(t, "line tangent", tangent, v2.Pos().Sub(v1.Pos()), testEps)

	a1, a2 := positiveQuarterArc()
	tangent = SegTangentVector(a1, a2, V2(math.Sqrt2/2, math.Sqrt2/2))
	checkVecNear(t, "ccw quarter tangent", tangent, V2(-math.Sqrt2/2, math.Sqrt2/2), 1e-10)

	n1, n2 := negativeQuarterArc()
	tangent = SegTangentVector(n1, n2, V2(math.Sqrt2/2, -math.Sqrt2/2))
	if tangent.X >= 0 || tangent.Y >= 0 {
		t.Errorf("cw quarter tangent should point down-left, got (%v, %v)", tangent.X, tangent.Y)
	}

	h1, h2 := positiveHHalfArc()
	tangent = SegTangentVector(h1, h2, V2(0.0, 1.0))
	checkVecNear(t, "ccw half tangent", tangent, V2(-1.0, 0.0), 1e-6)

	nh1, nh2 := negativeHHalfArc()
	tangent = SegTangentVector(nh1, nh2, V2(0.0, -1.0))
	checkVecNear(t, "cw half tangent", tangent, V2(-1.0, 0.0), 1e-6)
}

func TestSegLength(t *testing.T) {
	cases := []struct {
		name   string
		v1, v2 PlineVertex[float64]
		want   float64
	}{
		{"diagonal_line", PV(2.0, 0.0, 0.0), PV(0.0, 2.0, 0.0), math.Sqrt(8.0)},
		{"horizontal_line", PV(0.0, 0.0, 0.0), PV(2.0, 0.0, 0.0), 2.0},
		{"positive_quarter", PV(1.0, 0.0, 0.414213562373095), PV(0.0, 1.0, 0.0), math.Pi / 2},
		{"negative_quarter", PV(1.0, 0.0, -0.414213562373095), PV(0.0, -1.0, 0.0), math.Pi / 2},
		{"positive_h_half", PV(1.0, 0.0, 1.0), PV(-1.0, 0.0, 0.0), math.Pi},
		{"negative_v_half", PV(0.0, 1.0, -1.0), PV(0.0, -1.0, 0.0), math.Pi},
		{"three_quarter_ccw", PV(1.0, 0.0, 3.0), PV(0.0, 1.0, 0.0), 10 * math.Sqrt2 / 3 * math.Atan(3)},
		{"degenerate", PV(1.0, 1.0, 0.0), PV(1.0, 1.0, 0.0), 0.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			checkNear(t, "length", SegLength(tc.v1, tc.v2), tc.want, 1e-6)
		})
	}
}

func TestSegMidpoint(t *testing.T) {
	v1, v2 := horizontalLine()
	checkVecNear(t, "line midpoint", SegMidpoint(v1, v2), V2(1.0, 0.0), testEps)

	a1, a2 := positiveQuarterArc()
	checkVecNear(t, "quarter midpoint", SegMidpoint(a1, a2), V2(math.Sqrt2/2, math.Sqrt2/2), 1e-6)

	h1, h2 := positiveHHalfArc()
	checkVecNear(t, "h half midpoint", SegMidpoint(h1, h2), V2(0.0, 1.0), 1e-6)

	n1, n2 := negativeHHalfArc()
	checkVecNear(t, "neg h half midpoint", SegMidpoint(n1, n2), V2(0.0, -1.0), 1e-6)

	pv1, pv2 := positiveVHalfArc()
	checkVecNear(t, "v half midpoint", SegMidpoint(pv1, pv2), V2(-1.0, 0.0), 1e-6)

	nv1, nv2 := negativeVHalfArc()
	checkVecNear(t, "neg v half midpoint", SegMidpoint(nv1, nv2), V2(1.0, 0.0), 1e-6)
}

func TestClosestPointOnSeg(t *testing.T) {
	v1, v2 := simpleLine()
	checkVecNear(t, "on line", ClosestPointOnSeg(v1, v2, V2(0.0, 0.0)), V2(1.0, 1.0), testEps)
	checkVecNear(t, "clamped to end", ClosestPointOnSeg(v1, v2, V2(-4.0, 0.0)), V2(0.0, 2.0), testEps)

	h1, h2 := horizontalLine()
	checkVecNear(t, "above line", ClosestPointOnSeg(h1, h2, V2(1.0, 1.0)), V2(1.0, 0.0), testEps)

	a1, a2 := positiveQuarterArc()
	want := V2(math.Sqrt2/2, math.Sqrt2/2)
	checkVecNear(t, "inside arc", ClosestPointOnSeg(a1, a2, V2(0.5, 0.5)), want, 1e-6)
	checkVecNear(t, "outside arc", ClosestPointOnSeg(a1, a2, V2(1.5, 1.5)), want, 1e-6)

	ph1, ph2 := positiveHHalfArc()
	checkVecNear(t, "inside half arc", ClosestPointOnSeg(ph1, ph2, V2(0.0, 0.5)), V2(0.0, 1.0), testEps)
	checkVecNear(t, "past arc end", ClosestPointOnSeg(ph1, ph2, V2(5.0, -1.5)), V2(1.0, 0.0), testEps)

	nh1, nh2 := negativeHHalfArc()
	checkVecNear(t, "below cw arc", ClosestPointOnSeg(nh1, nh2, V2(0.0, -0.5)), V2(0.0, -1.0), testEps)
	checkVecNear(t, "above cw arc", ClosestPointOnSeg(nh1, nh2, V2(5.0, 1.5)), V2(1.0, 0.0), testEps)
}

func TestCreateFastApproxBoundingBox(t *testing.T) {
	v1, v2 := simpleLine()
	box := CreateFastApproxBoundingBox(v1, v2)
	checkNear(t, "xMin", box.XMin, 0.0, testEps)
	checkNear(t, "xMax", box.XMax, 2.0, testEps)
	checkNear(t, "yMin", box.YMin, 0.0, testEps)
	checkNear(t, "yMax", box.YMax, 2.0, testEps)

	// approx boxes must contain the exact boxes
	arcs := [][2]PlineVertex[float64]{
		{PV(1.0, 0.0, 0.414213562373095), PV(0.0, 1.0, 0.0)},
		{PV(1.0, 0.0, 1.0), PV(-1.0, 0.0, 0.0)},
		{PV(1.0, 0.0, -1.0), PV(-1.0, 0.0, 0.0)},
		{PV(0.0, 0.0, 1.0), PV(10.0, 0.0, 0.0)},
	}
	for _, arc := range arcs {
		fast := CreateFastApproxBoundingBox(arc[0], arc[1])
		exact := SegBoundingBox(arc[0], arc[1])
		if fast.XMin > exact.XMin+testEps || fast.YMin > exact.YMin+testEps ||
			fast.XMax < exact.XMax-testEps || fast.YMax < exact.YMax-testEps {
			t.Errorf("fast box %+v does not contain exact box %+v", fast, exact)
		}
	}
}

func TestSegBoundingBox(t *testing.T) {
	// lower semicircle from (0,0) to (10,0)
	box := SegBoundingBox(PV(0.0, 0.0, 1.0), PV(10.0, 0.0, 0.0))
	checkNear(t, "xMin", box.XMin, 0.0, 1e-9)
	checkNear(t, "xMax", box.XMax, 10.0, 1e-9)
	checkNear(t, "yMin", box.YMin, -5.0, 1e-9)
	checkNear(t, "yMax", box.YMax, 0.0, 1e-9)

	// upper half arc of the unit circle
	box = SegBoundingBox(PV(1.0, 0.0, 1.0), PV(-1.0, 0.0, 0.0))
	checkNear(t, "half xMin", box.XMin, -1.0, 1e-9)
	checkNear(t, "half xMax", box.XMax, 1.0, 1e-9)
	checkNear(t, "half yMin", box.YMin, 0.0, 1e-9)
	checkNear(t, "half yMax", box.YMax, 1.0, 1e-9)
}
