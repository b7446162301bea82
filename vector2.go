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

// Vector2 represents a 2D point or vector.
type Vector2[T Real] struct {
	X, Y T
}

// V2 is a convenience constructor for Vector2.
func V2[T Real](x, y T) Vector2[T] {
	return Vector2[T]{X: x, Y: y}
}

// Add returns the vector sum v + w.
func (v Vector2[T]) Add(w Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the vector difference v - w.
func (v Vector2[T]) Sub(w Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by s.
func (v Vector2[T]) Mul(s T) Vector2[T] {
	return Vector2[T]{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and w.
func (v Vector2[T]) Dot(w Vector2[T]) T {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z component of the 3D cross product of v and w.
func (v Vector2[T]) Cross(w Vector2[T]) T {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the Euclidean length of v.
func (v Vector2[T]) Length() T {
	return sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSq returns the squared length of v.
func (v Vector2[T]) LengthSq() T {
	return v.X*v.X + v.Y*v.Y
}

// Unit returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vector2[T]) Unit() Vector2[T] {
	l := v.Length()
	if l < realThreshold[T]() {
		return v
	}
	return v.Mul(1 / l)
}

// Perp returns v rotated 90 degrees counter-clockwise.
func (v Vector2[T]) Perp() Vector2[T] {
	return Vector2[T]{X: -v.Y, Y: v.X}
}

// UnitPerp returns the unit vector 90 degrees counter-clockwise from v.
func (v Vector2[T]) UnitPerp() Vector2[T] {
	return v.Perp().Unit()
}

// FuzzyEqual reports whether v and w are positionally equal within eps.
func (v Vector2[T]) FuzzyEqual(w Vector2[T], eps T) bool {
	return fuzzyEqual(v.X, w.X, eps) && fuzzyEqual(v.Y, w.Y, eps)
}

// distSq returns the squared distance between two points.
func distSq[T Real](a, b Vector2[T]) T {
	return b.Sub(a).LengthSq()
}

// midpoint returns the point halfway between a and b.
func midpoint[T Real](a, b Vector2[T]) Vector2[T] {
	return Vector2[T]{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// angleTo returns the angle of the ray from p0 to p1 in (-pi, pi].
func angleTo[T Real](p0, p1 Vector2[T]) T {
	return atan2(p1.Y-p0.Y, p1.X-p0.X)
}

// pointFromParametric returns p0 + t*(p1 - p0).
func pointFromParametric[T Real](p0, p1 Vector2[T], t T) Vector2[T] {
	return p0.Add(p1.Sub(p0).Mul(t))
}

// pointOnCircle returns the point on the circle at the given angle.
func pointOnCircle[T Real](radius T, center Vector2[T], angle T) Vector2[T] {
	return Vector2[T]{X: center.X + radius*cos(angle), Y: center.Y + radius*sin(angle)}
}

// isLeft reports whether point lies strictly left of the infinite line
// through p0 directed at p1.
func isLeft[T Real](p0, p1, point Vector2[T]) bool {
	return p1.Sub(p0).Cross(point.Sub(p0)) > 0
}

// isLeftOrCoincident is isLeft with eps slack toward the line.
func isLeftOrCoincident[T Real](p0, p1, point Vector2[T], eps T) bool {
	return p1.Sub(p0).Cross(point.Sub(p0)) > -eps
}

// isRightOrCoincident is the mirror of isLeftOrCoincident.
func isRightOrCoincident[T Real](p0, p1, point Vector2[T], eps T) bool {
	return p1.Sub(p0).Cross(point.Sub(p0)) < eps
}
