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

// PlineVertex is a polyline vertex: a position plus the bulge of the
// segment leaving it. The bulge is tan(theta/4) where theta is the signed
// sweep angle of the arc to the next vertex; positive sweeps
// counter-clockwise and zero means a straight line. A Vector2 is just a
// position; the bulge belongs to the outgoing segment, which is why the
// two types stay separate.
type PlineVertex[T Real] struct {
	X, Y, Bulge T
}

// PV is a convenience constructor for PlineVertex.
func PV[T Real](x, y, bulge T) PlineVertex[T] {
	return PlineVertex[T]{X: x, Y: y, Bulge: bulge}
}

// Pos returns the vertex position.
func (v PlineVertex[T]) Pos() Vector2[T] {
	return Vector2[T]{X: v.X, Y: v.Y}
}

// WithPos returns a copy of v moved to p.
func (v PlineVertex[T]) WithPos(p Vector2[T]) PlineVertex[T] {
	return PlineVertex[T]{X: p.X, Y: p.Y, Bulge: v.Bulge}
}

// WithBulge returns a copy of v with the given bulge.
func (v PlineVertex[T]) WithBulge(bulge T) PlineVertex[T] {
	return PlineVertex[T]{X: v.X, Y: v.Y, Bulge: bulge}
}

// BulgeIsZero reports whether the outgoing segment is a straight line.
func (v PlineVertex[T]) BulgeIsZero() bool {
	return abs(v.Bulge) < realThreshold[T]()
}

// BulgeIsPos reports a counter-clockwise outgoing arc.
func (v PlineVertex[T]) BulgeIsPos() bool {
	return v.Bulge > realThreshold[T]()
}

// BulgeIsNeg reports a clockwise outgoing arc.
func (v PlineVertex[T]) BulgeIsNeg() bool {
	return v.Bulge < -realThreshold[T]()
}
