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

// PlineSegIntrType classifies the intersection of two polyline segments.
type PlineSegIntrType int

const (
	// PlineSegIntrNoIntersect: the segments do not meet.
	PlineSegIntrNoIntersect PlineSegIntrType = iota
	// PlineSegIntrTangentIntersect is reserved for a dedicated tangency
	// classification. It is declared for forward compatibility but never
	// emitted: tangent contacts are reported as OneIntersect.
	PlineSegIntrTangentIntersect
	// PlineSegIntrOneIntersect: the segments meet at a single point
	// (Point1).
	PlineSegIntrOneIntersect
	// PlineSegIntrTwoIntersects: the segments meet at two points (Point1
	// and Point2; for a line/arc pair ordered along the line's direction
	// of travel, for an arc/arc pair in no particular order).
	PlineSegIntrTwoIntersects
	// PlineSegIntrSegmentOverlap: collinear line segments sharing a range
	// (Point1 and Point2 bound the overlap).
	PlineSegIntrSegmentOverlap
	// PlineSegIntrArcOverlap: arcs on the same circle sharing a sweep
	// (Point1 and Point2 bound the overlap).
	PlineSegIntrArcOverlap
)

// IntrPlineSegsResult is the tagged result of IntrPlineSegs.
type IntrPlineSegsResult[T Real] struct {
	IntrType PlineSegIntrType
	Point1   Vector2[T]
	Point2   Vector2[T]
}

// IntrPlineSegs intersects the polyline segment v1->v2 with the segment
// u1->u2, dispatching on the segment kinds.
func IntrPlineSegs[T Real](v1, v2, u1, u2 PlineVertex[T]) IntrPlineSegsResult[T] {
	vIsLine := v1.BulgeIsZero()
	uIsLine := u1.BulgeIsZero()
	switch {
	case vIsLine && uIsLine:
		return intrLineSegPair(v1, v2, u1, u2)
	case vIsLine:
		return intrLineSegArcSeg(v1.Pos(), v2.Pos(), u1, u2)
	case uIsLine:
		return intrLineSegArcSeg(u1.Pos(), u2.Pos(), v1, v2)
	default:
		return intrArcSegArcSeg(v1, v2, u1, u2)
	}
}

func intrLineSegPair[T Real](v1, v2, u1, u2 PlineVertex[T]) IntrPlineSegsResult[T] {
	var result IntrPlineSegsResult[T]
	intr := IntrLineSeg2LineSeg2(v1.Pos(), v2.Pos(), u1.Pos(), u2.Pos())
	switch intr.IntrType {
	case LineSegIntrTrue:
		result.IntrType = PlineSegIntrOneIntersect
		result.Point1 = intr.Point
	case LineSegIntrCoincident:
		result.IntrType = PlineSegIntrSegmentOverlap
		result.Point1 = pointFromParametric(v1.Pos(), v2.Pos(), intr.T0)
		result.Point2 = pointFromParametric(v1.Pos(), v2.Pos(), intr.T1)
	default:
		result.IntrType = PlineSegIntrNoIntersect
	}
	return result
}

// intrLineSegArcSeg intersects the line p0->p1 with the arc a1->a2.
// Reported points are ordered along the line's travel.
func intrLineSegArcSeg[T Real](p0, p1 Vector2[T], a1, a2 PlineVertex[T]) IntrPlineSegsResult[T] {
	var result IntrPlineSegsResult[T]
	rc := ArcRadiusAndCenter(a1, a2)
	intr := IntrLineSeg2Circle2(p0, p1, rc.Radius, rc.Center)

	eps := realThreshold[T]()
	valid := make([]Vector2[T], 0, 2)
	appendHit := func(t T) {
		if !fuzzyInRange(T(0), t, T(1), eps) {
			return
		}
		pt := pointFromParametric(p0, p1, t)
		if pointWithinArcSweep(a1.Pos(), a2.Pos(), a1.Bulge, pt) {
			valid = append(valid, pt)
		}
	}
	if intr.NumIntersects >= 1 {
		appendHit(intr.T0)
	}
	if intr.NumIntersects == 2 {
		appendHit(intr.T1)
	}

	switch len(valid) {
	case 0:
		result.IntrType = PlineSegIntrNoIntersect
	case 1:
		result.IntrType = PlineSegIntrOneIntersect
		result.Point1 = valid[0]
	default:
		result.IntrType = PlineSegIntrTwoIntersects
		result.Point1 = valid[0]
		result.Point2 = valid[1]
	}
	return result
}

func intrArcSegArcSeg[T Real](v1, v2, u1, u2 PlineVertex[T]) IntrPlineSegsResult[T] {
	var result IntrPlineSegsResult[T]
	rc1 := ArcRadiusAndCenter(v1, v2)
	rc2 := ArcRadiusAndCenter(u1, u2)
	intr := IntrCircle2Circle2(rc1.Radius, rc1.Center, rc2.Radius, rc2.Center)

	bothContain := func(pt Vector2[T]) bool {
		return pointWithinArcSweep(v1.Pos(), v2.Pos(), v1.Bulge, pt) &&
			pointWithinArcSweep(u1.Pos(), u2.Pos(), u1.Bulge, pt)
	}

	switch intr.IntrType {
	case CircleIntrNoIntersect:
		result.IntrType = PlineSegIntrNoIntersect
	case CircleIntrOneIntersect:
		if bothContain(intr.Point1) {
			result.IntrType = PlineSegIntrOneIntersect
			result.Point1 = intr.Point1
		} else {
			result.IntrType = PlineSegIntrNoIntersect
		}
	case CircleIntrTwoIntersects:
		valid := make([]Vector2[T], 0, 2)
		if bothContain(intr.Point1) {
			valid = append(valid, intr.Point1)
		}
		if bothContain(intr.Point2) {
			valid = append(valid, intr.Point2)
		}
		switch len(valid) {
		case 0:
			result.IntrType = PlineSegIntrNoIntersect
		case 1:
			result.IntrType = PlineSegIntrOneIntersect
			result.Point1 = valid[0]
		default:
			result.IntrType = PlineSegIntrTwoIntersects
			result.Point1 = valid[0]
			result.Point2 = valid[1]
		}
	case CircleIntrCoincident:
		result = intrCoincidentArcs(rc1, v1, v2, u1, u2)
	}
	return result
}

// intrCoincidentArcs handles two arcs on the same circle. Both arcs are
// first normalized to counter-clockwise traversal (swapping endpoints of
// a clockwise arc reverses it without changing its point set), then the
// angular intervals are intersected.
func intrCoincidentArcs[T Real](rc ArcRadiusAndCenterResult[T], v1, v2, u1, u2 PlineVertex[T]) IntrPlineSegsResult[T] {
	var result IntrPlineSegsResult[T]

	aStart, aEnd := v1.Pos(), v2.Pos()
	if v1.BulgeIsNeg() {
		aStart, aEnd = aEnd, aStart
	}
	bStart, bEnd := u1.Pos(), u2.Pos()
	if u1.BulgeIsNeg() {
		bStart, bEnd = bEnd, bStart
	}

	start1 := angleTo(rc.Center, aStart)
	start2 := angleTo(rc.Center, bStart)
	sweep1 := normalizeRadians(angleTo(rc.Center, aEnd) - start1)
	sweep2 := normalizeRadians(angleTo(rc.Center, bEnd) - start2)
	eps := realThreshold[T]()

	var overlapStart, overlapSweep T
	if bs := normalizeRadians(start2 - start1); bs < sweep1+eps {
		overlapStart = start2
		overlapSweep = min(sweep1-bs, sweep2)
	} else if as := normalizeRadians(start1 - start2); as < sweep2+eps {
		overlapStart = start1
		overlapSweep = min(sweep2-as, sweep1)
	} else {
		result.IntrType = PlineSegIntrNoIntersect
		return result
	}

	if overlapSweep < eps {
		result.IntrType = PlineSegIntrOneIntersect
		result.Point1 = pointOnCircle(rc.Radius, rc.Center, overlapStart)
		return result
	}
	result.IntrType = PlineSegIntrArcOverlap
	result.Point1 = pointOnCircle(rc.Radius, rc.Center, overlapStart)
	result.Point2 = pointOnCircle(rc.Radius, rc.Center, overlapStart+overlapSweep)
	return result
}
