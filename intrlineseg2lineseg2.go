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

// LineSeg2LineSeg2IntrType classifies the intersection of two line
// segments.
type LineSeg2LineSeg2IntrType int

const (
	// LineSegIntrNone: parallel but not collinear, collinear without
	// overlap, or degenerate segments that never meet.
	LineSegIntrNone LineSeg2LineSeg2IntrType = iota
	// LineSegIntrTrue: the segments intersect within both parameter
	// ranges; Point holds the intersection.
	LineSegIntrTrue
	// LineSegIntrCoincident: the segments are collinear and overlap over
	// a range; T0 and T1 bound the overlap in the first segment's
	// parameter space.
	LineSegIntrCoincident
	// LineSegIntrFalse: the infinite lines intersect but outside at least
	// one segment's [0, 1] range; T0 and T1 hold the parameters and Point
	// the extended intersection.
	LineSegIntrFalse
)

// IntrLineSeg2LineSeg2Result is the tagged result of IntrLineSeg2LineSeg2.
type IntrLineSeg2LineSeg2Result[T Real] struct {
	IntrType LineSeg2LineSeg2IntrType
	T0       T
	T1       T
	Point    Vector2[T]
}

// IntrLineSeg2LineSeg2 intersects the segment u1->u2 with the segment
// v1->v2. T0 parameterizes u, T1 parameterizes v. Zero-length segments
// degenerate to point containment tests and never report Coincident.
func IntrLineSeg2LineSeg2[T Real](u1, u2, v1, v2 Vector2[T]) IntrLineSeg2LineSeg2Result[T] {
	var result IntrLineSeg2LineSeg2Result[T]
	eps := realThreshold[T]()

	u := u2.Sub(u1)
	v := v2.Sub(v1)
	uIsPoint := u.LengthSq() < eps*eps
	vIsPoint := v.LengthSq() < eps*eps

	switch {
	case uIsPoint && vIsPoint:
		if u1.FuzzyEqual(v1, eps) {
			result.IntrType = LineSegIntrTrue
			result.Point = u1
		}
		return result
	case uIsPoint:
		if pointOnLineSeg(v1, v2, u1) {
			result.IntrType = LineSegIntrTrue
			result.Point = u1
		}
		return result
	case vIsPoint:
		if pointOnLineSeg(u1, u2, v1) {
			result.IntrType = LineSegIntrTrue
			result.Point = v1
		}
		return result
	}

	w := v1.Sub(u1)
	denom := u.Cross(v)
	parallelEps := eps * max(u.Length(), v.Length())

	if abs(denom) > parallelEps {
		t0 := w.Cross(v) / denom
		t1 := w.Cross(u) / denom
		result.T0 = t0
		result.T1 = t1
		result.Point = pointFromParametric(u1, u2, t0)
		if fuzzyInRange(T(0), t0, T(1), eps) && fuzzyInRange(T(0), t1, T(1), eps) {
			result.IntrType = LineSegIntrTrue
		} else {
			result.IntrType = LineSegIntrFalse
		}
		return result
	}

	// parallel: collinear only if v1 lies on u's infinite line
	if abs(w.Cross(u)) > parallelEps {
		result.IntrType = LineSegIntrNone
		return result
	}

	// collinear: project v's endpoints onto u and intersect the parameter
	// ranges
	uLenSq := u.LengthSq()
	t0 := v1.Sub(u1).Dot(u) / uLenSq
	t1 := v2.Sub(u1).Dot(u) / uLenSq
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	overlapStart := max(t0, 0)
	overlapEnd := min(t1, 1)
	switch {
	case overlapStart > overlapEnd+eps:
		result.IntrType = LineSegIntrNone
	case fuzzyEqual(overlapStart, overlapEnd, eps):
		result.IntrType = LineSegIntrTrue
		result.T0 = overlapStart
		result.Point = pointFromParametric(u1, u2, overlapStart)
	default:
		result.IntrType = LineSegIntrCoincident
		result.T0 = overlapStart
		result.T1 = overlapEnd
	}
	return result
}

// pointOnLineSeg reports whether point lies on the segment p0->p1 within
// the default threshold.
func pointOnLineSeg[T Real](p0, p1, point Vector2[T]) bool {
	closest := ClosestPointOnSeg(PlineVertex[T]{X: p0.X, Y: p0.Y}, PlineVertex[T]{X: p1.X, Y: p1.Y}, point)
	return closest.FuzzyEqual(point, realThreshold[T]())
}
