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

// Circle2Circle2IntrType classifies the intersection of two circles.
type Circle2Circle2IntrType int

const (
	// CircleIntrNoIntersect: the circles are separate or nested without
	// touching.
	CircleIntrNoIntersect Circle2Circle2IntrType = iota
	// CircleIntrOneIntersect: the circles touch at a single point.
	CircleIntrOneIntersect
	// CircleIntrTwoIntersects: the circles cross at two points.
	CircleIntrTwoIntersects
	// CircleIntrCoincident: same center and radius.
	CircleIntrCoincident
)

// IntrCircle2Circle2Result is the tagged result of IntrCircle2Circle2.
// Point1 is set for one or two intersections, Point2 only for two.
type IntrCircle2Circle2Result[T Real] struct {
	IntrType Circle2Circle2IntrType
	Point1   Vector2[T]
	Point2   Vector2[T]
}

// IntrCircle2Circle2 intersects two circles. Radii must be non-negative;
// a zero-radius circle intersects only if it lies on the other circle.
func IntrCircle2Circle2[T Real](radius1 T, center1 Vector2[T], radius2 T, center2 Vector2[T]) IntrCircle2Circle2Result[T] {
	if radius1 < 0 || radius2 < 0 {
		panic("cavc: IntrCircle2Circle2 called with negative radius")
	}
	var result IntrCircle2Circle2Result[T]
	eps := realThreshold[T]()

	cv := center2.Sub(center1)
	d := cv.Length()
	if d < eps {
		if fuzzyEqual(radius1, radius2, eps) {
			result.IntrType = CircleIntrCoincident
		}
		return result
	}

	if d > radius1+radius2+eps || d < abs(radius1-radius2)-eps {
		return result
	}

	// distance from center1 to the radical line along cv
	a := (radius1*radius1 - radius2*radius2 + d*d) / (2 * d)
	mid := center1.Add(cv.Mul(a / d))
	hSq := radius1*radius1 - a*a
	if hSq < 0 {
		hSq = 0
	}
	h := sqrt(hSq)
	if h < eps {
		result.IntrType = CircleIntrOneIntersect
		result.Point1 = mid
		return result
	}
	offs := cv.Perp().Mul(h / d)
	result.IntrType = CircleIntrTwoIntersects
	result.Point1 = mid.Add(offs)
	result.Point2 = mid.Sub(offs)
	return result
}
