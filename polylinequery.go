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

// GetExtents returns the exact bounding box of the polyline. An empty
// polyline yields the inverted-infinity box; a single vertex yields the
// degenerate box at that point.
func GetExtents[T Real](p *Polyline[T]) AABB[T] {
	box := EmptyAABB[T]()
	if len(p.Vertexes) == 0 {
		return box
	}
	if len(p.Vertexes) == 1 {
		return PointAABB(p.Vertexes[0].Pos())
	}
	p.VisitSegIndices(func(i, j int) bool {
		segBox := SegBoundingBox(p.Vertexes[i], p.Vertexes[j])
		box.Combine(segBox)
		return true
	})
	return box
}

// GetArea returns the signed area enclosed by a closed polyline:
// counter-clockwise traversal yields positive area. Open polylines have
// zero area. Line segments contribute shoelace terms; arcs additionally
// contribute their signed circular-segment area.
func GetArea[T Real](p *Polyline[T]) T {
	if !p.Closed || len(p.Vertexes) < 2 {
		return 0
	}
	var doubleArea T
	var arcArea T
	p.VisitSegIndices(func(i, j int) bool {
		v1 := p.Vertexes[i]
		v2 := p.Vertexes[j]
		doubleArea += v1.X*v2.Y - v2.X*v1.Y
		if !v1.BulgeIsZero() {
			// signed area between the chord and the arc
			rc := ArcRadiusAndCenter(v1, v2)
			sweep := segSweepAngle(v1)
			arcArea += rc.Radius * rc.Radius * (sweep - sin(sweep)) / 2
		}
		return true
	})
	return doubleArea/2 + arcArea
}

// GetPathLength returns the total length along the polyline's segments.
func GetPathLength[T Real](p *Polyline[T]) T {
	var total T
	p.VisitSegIndices(func(i, j int) bool {
		total += SegLength(p.Vertexes[i], p.Vertexes[j])
		return true
	})
	return total
}

// GetWindingNumber returns the signed number of times a closed polyline
// winds around point. Open polylines return zero. The result is undefined
// for points lying on the polyline itself.
func GetWindingNumber[T Real](p *Polyline[T], point Vector2[T]) int {
	if !p.Closed || len(p.Vertexes) < 2 {
		return 0
	}
	winding := 0
	p.VisitSegIndices(func(i, j int) bool {
		v1 := p.Vertexes[i]
		v2 := p.Vertexes[j]
		if v1.BulgeIsZero() {
			winding += lineWinding(v1.Pos(), v2.Pos(), point)
		} else {
			winding += arcWinding(v1, v2, point)
		}
		return true
	})
	return winding
}

// lineWinding returns the ray-crossing contribution of the line segment
// p0->p1 for a horizontal ray from point toward +x. The half-open
// convention "y <= point.Y counts as below" attributes each crossing to
// exactly one of the segments sharing a vertex.
func lineWinding[T Real](p0, p1, point Vector2[T]) int {
	if p0.Y <= point.Y {
		if p1.Y > point.Y && isLeft(p0, p1, point) {
			return 1
		}
	} else if p1.Y <= point.Y && !isLeft(p0, p1, point) {
		return -1
	}
	return 0
}

// arcWinding returns the ray-crossing contribution of an arc segment,
// counting each intersection of the arc with the ray individually. The
// same half-open convention as lineWinding applies: an upward crossing at
// the arc's start vertex belongs to this arc, a downward crossing at its
// end vertex belongs to this arc, and the mirrored cases belong to the
// neighboring segment.
func arcWinding[T Real](v1, v2 PlineVertex[T], point Vector2[T]) int {
	rc := ArcRadiusAndCenter(v1, v2)
	dy := point.Y - rc.Center.Y
	if abs(dy) >= rc.Radius {
		// ray misses or only grazes the circle
		return 0
	}
	dx := sqrt(rc.Radius*rc.Radius - dy*dy)
	if dx < realThreshold[T]() {
		return 0
	}
	sweepSign := 1
	if v1.BulgeIsNeg() {
		sweepSign = -1
	}
	eps := realThreshold[T]()

	winding := 0
	for _, q := range [2]Vector2[T]{
		{X: rc.Center.X - dx, Y: point.Y},
		{X: rc.Center.X + dx, Y: point.Y},
	} {
		if q.X <= point.X {
			continue
		}
		// direction of y motion at q along the traversal
		dir := sweepSign
		if q.X < rc.Center.X {
			dir = -dir
		}
		switch {
		case q.FuzzyEqual(v2.Pos(), eps):
			// end vertex: only a downward arrival crosses here
			if dir < 0 {
				winding--
			}
		case q.FuzzyEqual(v1.Pos(), eps):
			// start vertex: only an upward departure crosses here
			if dir > 0 {
				winding++
			}
		case pointWithinArcSweep(v1.Pos(), v2.Pos(), v1.Bulge, q):
			winding += dir
		}
	}
	return winding
}

// ClosestPointResult identifies the point on a polyline closest to a query
// point: the index of the segment's start vertex, the point itself, and
// the distance to it.
type ClosestPointResult[T Real] struct {
	Index    int
	Point    Vector2[T]
	Distance T
}

// ClosestPoint scans all segments for the closest point to point. For a
// single-vertex polyline the result is that vertex. Panics on an empty
// polyline.
func ClosestPoint[T Real](p *Polyline[T], point Vector2[T]) ClosestPointResult[T] {
	if len(p.Vertexes) == 0 {
		panic("cavc: ClosestPoint on empty polyline")
	}
	if len(p.Vertexes) == 1 {
		pos := p.Vertexes[0].Pos()
		return ClosestPointResult[T]{Index: 0, Point: pos, Distance: point.Sub(pos).Length()}
	}
	var result ClosestPointResult[T]
	bestDistSq := T(-1)
	p.VisitSegIndices(func(i, j int) bool {
		cp := ClosestPointOnSeg(p.Vertexes[i], p.Vertexes[j], point)
		d := distSq(point, cp)
		if bestDistSq < 0 || d < bestDistSq {
			bestDistSq = d
			result.Index = i
			result.Point = cp
		}
		return true
	})
	result.Distance = sqrt(bestDistSq)
	return result
}
