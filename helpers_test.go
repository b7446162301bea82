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

	"github.com/NorthBoundWisdom/CavalierContours/testcases"
)

const testEps = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func checkNear(t *testing.T, name string, got, want, eps float64) {
	t.Helper()
	if !approxEqual(got, want, eps) {
		t.Errorf("%s = %v, want %v (eps %v)", name, got, want, eps)
	}
}

func checkVecNear(t *testing.T, name string, got, want Vector2[float64], eps float64) {
	t.Helper()
	if !approxEqual(got.X, want.X, eps) || !approxEqual(got.Y, want.Y, eps) {
		t.Errorf("%s = (%v, %v), want (%v, %v)", name, got.X, got.Y, want.X, want.Y)
	}
}

// plineFromCase builds a polyline from testcases vertex data.
func plineFromCase(verts []testcases.Vertex, closed bool) Polyline[float64] {
	p := Polyline[float64]{Closed: closed}
	for _, v := range verts {
		p.AddVertex(v.X, v.Y, v.Bulge)
	}
	return p
}

// segment fixtures matching the shapes the original test suite is built
// around

func simpleLine() (PlineVertex[float64], PlineVertex[float64]) {
	return PV(2.0, 0.0, 0.0), PV(0.0, 2.0, 0.0)
}

func horizontalLine() (PlineVertex[float64], PlineVertex[float64]) {
	return PV(0.0, 0.0, 0.0), PV(2.0, 0.0, 0.0)
}

func verticalLine() (PlineVertex[float64], PlineVertex[float64]) {
	return PV(0.0, 0.0, 0.0), PV(0.0, 2.0, 0.0)
}

func positiveQuarterArc() (PlineVertex[float64], PlineVertex[float64]) {
	return PV(1.0, 0.0, 0.414213562373095), PV(0.0, 1.0, 0.0)
}

func negativeQuarterArc() (PlineVertex[float64], PlineVertex[float64]) {
	return PV(1.0, 0.0, -0.414213562373095), PV(0.0, -1.0, 0.0)
}

func positiveHHalfArc() (PlineVertex[float64], PlineVertex[float64]) {
	return PV(1.0, 0.0, 1.0), PV(-1.0, 0.0, 0.0)
}

func negativeHHalfArc() (PlineVertex[float64], PlineVertex[float64]) {
	return PV(1.0, 0.0, -1.0), PV(-1.0, 0.0, 0.0)
}

func positiveVHalfArc() (PlineVertex[float64], PlineVertex[float64]) {
	return PV(0.0, 1.0, 1.0), PV(0.0, -1.0, 0.0)
}

func negativeVHalfArc() (PlineVertex[float64], PlineVertex[float64]) {
	return PV(0.0, 1.0, -1.0), PV(0.0, -1.0, 0.0)
}
