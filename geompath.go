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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ToPath converts a polyline into a geom path, emitting each arc segment
// as cubic Bézier spans of at most a quarter turn each. The conversion is
// exact for line segments; cubic spans approximate arcs to well under
// typical rendering tolerances.
func ToPath(p *Polyline[float64]) path.Path {
	verts := p.Vertexes
	closed := p.Closed
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(verts) == 0 {
			return
		}
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: verts[0].X, Y: verts[0].Y}}) {
			return
		}
		segCount := len(verts) - 1
		if closed {
			segCount = len(verts)
		}
		for i := 0; i < segCount; i++ {
			v1 := verts[i]
			v2 := verts[(i+1)%len(verts)]
			if v1.BulgeIsZero() {
				if !yield(path.CmdLineTo, []vec.Vec2{{X: v2.X, Y: v2.Y}}) {
					return
				}
				continue
			}
			if !emitArcAsCubics(v1, v2, yield) {
				return
			}
		}
		if closed {
			yield(path.CmdClose, nil)
		}
	}
}

// emitArcAsCubics yields CubeTo commands approximating the arc from v1 to
// v2, splitting the sweep into spans of at most pi/2.
func emitArcAsCubics(v1, v2 PlineVertex[float64], yield func(path.Command, []vec.Vec2) bool) bool {
	rc := ArcRadiusAndCenter(v1, v2)
	sweep := segSweepAngle(v1)
	startAngle := angleTo(rc.Center, v1.Pos())

	numSpans := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	numSpans = max(numSpans, 1)
	dt := sweep / float64(numSpans)
	// control point offset along the tangents for a circular span
	k := 4.0 / 3.0 * math.Tan(math.Abs(dt)/4) * rc.Radius

	sign := 1.0
	if sweep < 0 {
		sign = -1
	}
	for s := 0; s < numSpans; s++ {
		a1 := startAngle + float64(s)*dt
		a2 := a1 + dt
		p1 := pointOnCircle(rc.Radius, rc.Center, a1)
		p2 := pointOnCircle(rc.Radius, rc.Center, a2)
		t1 := Vector2[float64]{X: -math.Sin(a1) * sign, Y: math.Cos(a1) * sign}
		t2 := Vector2[float64]{X: -math.Sin(a2) * sign, Y: math.Cos(a2) * sign}
		c1 := p1.Add(t1.Mul(k))
		c2 := p2.Sub(t2.Mul(k))
		if !yield(path.CmdCubeTo, []vec.Vec2{
			{X: c1.X, Y: c1.Y},
			{X: c2.X, Y: c2.Y},
			{X: p2.X, Y: p2.Y},
		}) {
			return false
		}
	}
	return true
}

// FromPath converts a geom path into polylines, one per subpath. Quadratic
// and cubic Bézier spans are flattened into line segments with deviation
// at most flatness (Wang's formula bounds the segment count). Subpaths
// ended by a close command produce closed polylines.
func FromPath(pa path.Path, flatness float64) []Polyline[float64] {
	if flatness <= 0 {
		flatness = 0.25
	}
	var result []Polyline[float64]
	var current Polyline[float64]
	var currentPt Vector2[float64]

	flush := func(closed bool) {
		current.Closed = closed
		pruned := PruneSingularities(current, realThreshold[float64]())
		if pruned.Size() > 1 || (pruned.Size() == 1 && !closed) {
			result = append(result, pruned)
		}
		current = Polyline[float64]{}
	}
	lineTo := func(pt Vector2[float64]) {
		current.AddVertex(pt.X, pt.Y, 0)
		currentPt = pt
	}

	for cmd, pts := range pa {
		switch cmd {
		case path.CmdMoveTo:
			if current.Size() > 0 {
				flush(false)
			}
			currentPt = Vector2[float64]{X: pts[0].X, Y: pts[0].Y}
			current.AddVertex(currentPt.X, currentPt.Y, 0)
		case path.CmdLineTo:
			lineTo(Vector2[float64]{X: pts[0].X, Y: pts[0].Y})
		case path.CmdQuadTo:
			flattenQuad(currentPt,
				Vector2[float64]{X: pts[0].X, Y: pts[0].Y},
				Vector2[float64]{X: pts[1].X, Y: pts[1].Y},
				flatness, lineTo)
		case path.CmdCubeTo:
			flattenCubic(currentPt,
				Vector2[float64]{X: pts[0].X, Y: pts[0].Y},
				Vector2[float64]{X: pts[1].X, Y: pts[1].Y},
				Vector2[float64]{X: pts[2].X, Y: pts[2].Y},
				flatness, lineTo)
		case path.CmdClose:
			if current.Size() > 0 {
				flush(true)
			}
		}
	}
	if current.Size() > 0 {
		flush(false)
	}
	return result
}

// flattenQuad subdivides a quadratic Bézier into line segments within the
// flatness tolerance.
func flattenQuad(p0, p1, p2 Vector2[float64], flatness float64, emit func(Vector2[float64])) {
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	n := 1
	if err := e.Length(); err > flatness {
		n = int(math.Ceil(math.Sqrt(err / flatness)))
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(pt)
	}
}

// flattenCubic subdivides a cubic Bézier into line segments within the
// flatness tolerance.
func flattenCubic(p0, p1, p2, p3 Vector2[float64], flatness float64, emit func(Vector2[float64])) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)
	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		if nf := math.Sqrt(3 * m / (4 * flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).
			Add(p1.Mul(3 * omt2 * t)).
			Add(p2.Mul(3 * omt * t2)).
			Add(p3.Mul(t2 * t))
		emit(pt)
	}
}
