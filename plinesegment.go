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

import "math"

// ArcRadiusAndCenterResult holds the circle underlying an arc segment.
type ArcRadiusAndCenterResult[T Real] struct {
	Radius T
	Center Vector2[T]
}

// ArcRadiusAndCenter computes the radius and center of the arc segment from
// v1 to v2. v1's bulge must be non-zero.
func ArcRadiusAndCenter[T Real](v1, v2 PlineVertex[T]) ArcRadiusAndCenterResult[T] {
	if v1.BulgeIsZero() {
		panic("cavc: ArcRadiusAndCenter called on a line segment")
	}
	b := abs(v1.Bulge)
	chord := v2.Pos().Sub(v1.Pos())
	d := chord.Length()
	radius := d * (b*b + 1) / (4 * b)

	// center sits on the chord's perpendicular bisector, (radius - sagitta)
	// away from the chord midpoint, on the concave side
	s := b * d / 2
	m := radius - s
	offsX := -m * chord.Y / d
	offsY := m * chord.X / d
	if v1.BulgeIsNeg() {
		offsX = -offsX
		offsY = -offsY
	}
	mid := midpoint(v1.Pos(), v2.Pos())
	return ArcRadiusAndCenterResult[T]{
		Radius: radius,
		Center: Vector2[T]{X: mid.X + offsX, Y: mid.Y + offsY},
	}
}

// segSweepAngle returns the signed sweep of the segment's arc,
// tan(theta/4) inverted from the bulge.
func segSweepAngle[T Real](v1 PlineVertex[T]) T {
	return 4 * atan(v1.Bulge)
}

// SplitResult holds the two vertices produced by splitting a segment:
// UpdatedStart replaces the segment's start vertex (same position, bulge
// trimmed to the first sub-segment) and SplitVertex starts the second
// sub-segment at the split point. Concatenating the two sub-segments
// reproduces the original segment.
type SplitResult[T Real] struct {
	UpdatedStart PlineVertex[T]
	SplitVertex  PlineVertex[T]
}

// SplitAtPoint splits the segment from v1 to v2 at point, which is assumed
// to lie on the segment.
func SplitAtPoint[T Real](v1, v2 PlineVertex[T], point Vector2[T]) SplitResult[T] {
	var result SplitResult[T]
	if v1.BulgeIsZero() {
		result.UpdatedStart = v1
		result.SplitVertex = PlineVertex[T]{X: point.X, Y: point.Y}
		return result
	}
	if v1.Pos().FuzzyEqual(v2.Pos(), realThreshold[T]()) ||
		v1.Pos().FuzzyEqual(point, realThreshold[T]()) {
		result.UpdatedStart = v1.WithBulge(0)
		result.SplitVertex = PlineVertex[T]{X: point.X, Y: point.Y, Bulge: v1.Bulge}
		return result
	}
	if v2.Pos().FuzzyEqual(point, realThreshold[T]()) {
		result.UpdatedStart = v1
		result.SplitVertex = PlineVertex[T]{X: point.X, Y: point.Y}
		return result
	}

	rc := ArcRadiusAndCenter(v1, v2)
	totalSweep := segSweepAngle(v1)
	startAngle := angleTo(rc.Center, v1.Pos())
	splitAngle := angleTo(rc.Center, point)

	// split the sweep at the point, measuring in the direction of travel so
	// sub-arcs larger than pi keep the correct bulge
	var sweep1 T
	if v1.Bulge > 0 {
		sweep1 = normalizeRadians(splitAngle - startAngle)
	} else {
		sweep1 = -normalizeRadians(startAngle - splitAngle)
	}
	sweep2 := totalSweep - sweep1

	result.UpdatedStart = v1.WithBulge(tan4(sweep1))
	result.SplitVertex = PlineVertex[T]{X: point.X, Y: point.Y, Bulge: tan4(sweep2)}
	return result
}

// tan4 converts a sweep angle back to a bulge.
func tan4[T Real](sweep T) T {
	return T(math.Tan(float64(sweep) / 4))
}

// SegTangentVector returns a vector tangent to the segment at pointOnSeg,
// pointing in the direction of travel. It is not normalized.
func SegTangentVector[T Real](v1, v2 PlineVertex[T], pointOnSeg Vector2[T]) Vector2[T] {
	if v1.BulgeIsZero() {
		return v2.Pos().Sub(v1.Pos())
	}
	rc := ArcRadiusAndCenter(v1, v2)
	radial := pointOnSeg.Sub(rc.Center)
	if v1.BulgeIsPos() {
		// counter-clockwise travel
		return radial.Perp()
	}
	return Vector2[T]{X: radial.Y, Y: -radial.X}
}

// SegLength returns the length of the segment: chord length for lines,
// radius times sweep for arcs.
func SegLength[T Real](v1, v2 PlineVertex[T]) T {
	if v1.Pos().FuzzyEqual(v2.Pos(), realThreshold[T]()) {
		return 0
	}
	if v1.BulgeIsZero() {
		return v2.Pos().Sub(v1.Pos()).Length()
	}
	rc := ArcRadiusAndCenter(v1, v2)
	return rc.Radius * abs(segSweepAngle(v1))
}

// SegMidpoint returns the point halfway along the segment.
func SegMidpoint[T Real](v1, v2 PlineVertex[T]) Vector2[T] {
	if v1.BulgeIsZero() {
		return midpoint(v1.Pos(), v2.Pos())
	}
	rc := ArcRadiusAndCenter(v1, v2)
	startAngle := angleTo(rc.Center, v1.Pos())
	midAngle := startAngle + segSweepAngle(v1)/2
	return pointOnCircle(rc.Radius, rc.Center, midAngle)
}

// ClosestPointOnSeg returns the point on the segment closest to point. For
// lines this is the clamped projection; for arcs the radial projection if
// it falls within the sweep, otherwise the nearer endpoint.
func ClosestPointOnSeg[T Real](v1, v2 PlineVertex[T], point Vector2[T]) Vector2[T] {
	if v1.BulgeIsZero() {
		d := v2.Pos().Sub(v1.Pos())
		lenSq := d.LengthSq()
		if lenSq < realThreshold[T]() {
			return v1.Pos()
		}
		t := point.Sub(v1.Pos()).Dot(d) / lenSq
		t = min(max(t, 0), 1)
		return pointFromParametric(v1.Pos(), v2.Pos(), t)
	}

	rc := ArcRadiusAndCenter(v1, v2)
	if point.FuzzyEqual(rc.Center, realThreshold[T]()) {
		// every arc point is equidistant, pick the start
		return v1.Pos()
	}
	radial := point.Sub(rc.Center).Unit()
	onCircle := rc.Center.Add(radial.Mul(rc.Radius))
	if pointWithinArcSweep(v1.Pos(), v2.Pos(), v1.Bulge, onCircle) {
		return onCircle
	}
	if distSq(point, v1.Pos()) < distSq(point, v2.Pos()) {
		return v1.Pos()
	}
	return v2.Pos()
}

// pointWithinArcSweep reports whether point, assumed to lie on the arc's
// circle, falls within the arc's sweep. A counter-clockwise arc always
// bulges to the right of its chord (its sagitta point lies on the right of
// travel), so membership reduces to a chord side test that is valid for
// sweeps beyond pi as well.
func pointWithinArcSweep[T Real](arcStart, arcEnd Vector2[T], bulge T, point Vector2[T]) bool {
	eps := realThreshold[T]()
	if bulge > 0 {
		return isRightOrCoincident(arcStart, arcEnd, point, eps)
	}
	return isLeftOrCoincident(arcStart, arcEnd, point, eps)
}

// CreateFastApproxBoundingBox returns a cheap over-approximating bounding
// box for the segment: the box of the endpoints plus, for arcs, the chord
// shifted out by the sagitta. It contains arcs sweeping up to a half turn;
// larger sweeps can extend past it.
func CreateFastApproxBoundingBox[T Real](v1, v2 PlineVertex[T]) AABB[T] {
	box := PointAABB(v1.Pos())
	box.ExpandToPoint(v2.Pos())
	if v1.BulgeIsZero() {
		return box
	}
	// bulge/2 * rotated chord is the sagitta vector on the arc side
	offsX := v1.Bulge / 2 * (v2.Y - v1.Y)
	offsY := -v1.Bulge / 2 * (v2.X - v1.X)
	box.ExpandToPoint(Vector2[T]{X: v1.X + offsX, Y: v1.Y + offsY})
	box.ExpandToPoint(Vector2[T]{X: v2.X + offsX, Y: v2.Y + offsY})
	return box
}

// SegBoundingBox returns the exact bounding box of the segment. For arcs
// each axis extreme of the circle is included only when it lies within the
// sweep.
func SegBoundingBox[T Real](v1, v2 PlineVertex[T]) AABB[T] {
	box := PointAABB(v1.Pos())
	box.ExpandToPoint(v2.Pos())
	if v1.BulgeIsZero() {
		return box
	}
	rc := ArcRadiusAndCenter(v1, v2)
	compass := [4]Vector2[T]{
		{X: rc.Center.X + rc.Radius, Y: rc.Center.Y},
		{X: rc.Center.X - rc.Radius, Y: rc.Center.Y},
		{X: rc.Center.X, Y: rc.Center.Y + rc.Radius},
		{X: rc.Center.X, Y: rc.Center.Y - rc.Radius},
	}
	for _, p := range compass {
		if pointWithinArcSweep(v1.Pos(), v2.Pos(), v1.Bulge, p) {
			box.ExpandToPoint(p)
		}
	}
	return box
}
