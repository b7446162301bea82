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

// IntrLineSeg2Circle2Result holds up to two intersection parameters along
// the line p0->p1 (t=0 at p0, t=1 at p1). Parameters are not clamped to
// [0, 1]; the caller decides whether out-of-range hits matter.
type IntrLineSeg2Circle2Result[T Real] struct {
	NumIntersects int
	T0            T
	T1            T
}

// IntrLineSeg2Circle2 intersects the infinite line through p0 and p1 with
// the circle of the given radius and center. Tangency reports a single
// intersection.
func IntrLineSeg2Circle2[T Real](p0, p1 Vector2[T], radius T, center Vector2[T]) IntrLineSeg2Circle2Result[T] {
	var result IntrLineSeg2Circle2Result[T]
	d := p1.Sub(p0)
	f := p0.Sub(center)

	a := d.Dot(d)
	if a < realThreshold[T]() {
		// degenerate segment: intersects only if p0 sits on the circle
		if fuzzyEqual(f.Length(), radius, realThreshold[T]()) {
			result.NumIntersects = 1
		}
		return result
	}

	b := 2 * f.Dot(d)
	c := f.Dot(f) - radius*radius
	disc := b*b - 4*a*c

	tangentEps := realThreshold[T]() * max(radius*radius, T(1))
	switch {
	case abs(disc) < tangentEps:
		result.NumIntersects = 1
		result.T0 = -b / (2 * a)
	case disc < 0:
		result.NumIntersects = 0
	default:
		result.NumIntersects = 2
		sq := sqrt(disc)
		result.T0 = (-b - sq) / (2 * a)
		result.T1 = (-b + sq) / (2 * a)
	}
	return result
}
