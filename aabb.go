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

// AABB is an axis-aligned bounding box. A valid box has XMin <= XMax and
// YMin <= YMax; the zero value is not a valid box, use EmptyAABB.
type AABB[T Real] struct {
	XMin, YMin, XMax, YMax T
}

// EmptyAABB returns the inverted-infinity box that absorbs any point or
// box through Expand/Combine.
func EmptyAABB[T Real]() AABB[T] {
	return AABB[T]{
		XMin: T(math.Inf(1)),
		YMin: T(math.Inf(1)),
		XMax: T(math.Inf(-1)),
		YMax: T(math.Inf(-1)),
	}
}

// PointAABB returns the degenerate box containing only p.
func PointAABB[T Real](p Vector2[T]) AABB[T] {
	return AABB[T]{XMin: p.X, YMin: p.Y, XMax: p.X, YMax: p.Y}
}

// ExpandToPoint grows the box to include p.
func (b *AABB[T]) ExpandToPoint(p Vector2[T]) {
	b.XMin = min(b.XMin, p.X)
	b.YMin = min(b.YMin, p.Y)
	b.XMax = max(b.XMax, p.X)
	b.YMax = max(b.YMax, p.Y)
}

// Combine grows the box to include all of o.
func (b *AABB[T]) Combine(o AABB[T]) {
	b.XMin = min(b.XMin, o.XMin)
	b.YMin = min(b.YMin, o.YMin)
	b.XMax = max(b.XMax, o.XMax)
	b.YMax = max(b.YMax, o.YMax)
}

// Expand returns the box grown by val on all four sides.
func (b AABB[T]) Expand(val T) AABB[T] {
	return AABB[T]{
		XMin: b.XMin - val,
		YMin: b.YMin - val,
		XMax: b.XMax + val,
		YMax: b.YMax + val,
	}
}

// Overlaps reports whether b and o share any area (touching edges count).
func (b AABB[T]) Overlaps(o AABB[T]) bool {
	return b.XMin <= o.XMax && b.XMax >= o.XMin &&
		b.YMin <= o.YMax && b.YMax >= o.YMin
}

// Contains reports whether p lies inside or on the boundary of b.
func (b AABB[T]) Contains(p Vector2[T]) bool {
	return p.X >= b.XMin && p.X <= b.XMax && p.Y >= b.YMin && p.Y <= b.YMax
}

// Width returns XMax - XMin.
func (b AABB[T]) Width() T { return b.XMax - b.XMin }

// Height returns YMax - YMin.
func (b AABB[T]) Height() T { return b.YMax - b.YMin }
