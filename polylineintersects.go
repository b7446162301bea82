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

// PlineIntersect is an intersection site between two polyline segments,
// identified by the start-vertex indices of the segments involved.
type PlineIntersect[T Real] struct {
	SIndex1 int
	SIndex2 int
	Pos     Vector2[T]
}

// PlineCoincidentIntersect records a pair of segments overlapping along a
// shared sub-curve, bounded by Point1 and Point2.
type PlineCoincidentIntersect[T Real] struct {
	SIndex1 int
	SIndex2 int
	Point1  Vector2[T]
	Point2  Vector2[T]
}

// PlineIntersectsResult carries the point intersections and the
// coincident overlaps found between two polylines (or within one).
type PlineIntersectsResult[T Real] struct {
	Intersects           []PlineIntersect[T]
	CoincidentIntersects []PlineCoincidentIntersect[T]
}

// AllSelfIntersects finds every self-intersection of the polyline using
// the given spatial index over its segments. Contacts of adjacent
// segments at their shared vertex are not reported; any other touch or
// crossing is. Overlapping (coincident) segment pairs report both overlap
// endpoints as intersects.
func AllSelfIntersects[T Real](p *Polyline[T], index *StaticSpatialIndex[T]) []PlineIntersect[T] {
	var intersects []PlineIntersect[T]
	segCount := p.SegmentCount()
	if segCount < 2 || index == nil {
		return nil
	}
	eps := realThreshold[T]()

	adjacent := func(i, j int) bool {
		if j == i+1 || i == j+1 {
			return true
		}
		if p.Closed && ((i == 0 && j == segCount-1) || (j == 0 && i == segCount-1)) {
			return true
		}
		return false
	}
	sharedVertexPos := func(i, j int) Vector2[T] {
		// position of the vertex joining adjacent segments i < j in
		// traversal order (wrap joint is the first vertex)
		lo, hi := min(i, j), max(i, j)
		if lo == 0 && hi == segCount-1 && p.Closed {
			return p.Vertexes[0].Pos()
		}
		return p.Vertexes[hi].Pos()
	}

	var queryResults, queryStack []int
	p.VisitSegIndices(func(i, iNext int) bool {
		box := CreateFastApproxBoundingBox(p.Vertexes[i], p.Vertexes[iNext])
		index.Query(box.XMin-eps, box.YMin-eps, box.XMax+eps, box.YMax+eps, &queryResults, &queryStack)
		for _, j := range queryResults {
			if j <= i {
				continue
			}
			jNext := (j + 1) % len(p.Vertexes)
			intr := IntrPlineSegs(p.Vertexes[i], p.Vertexes[iNext], p.Vertexes[j], p.Vertexes[jNext])
			if intr.IntrType == PlineSegIntrNoIntersect {
				continue
			}
			addPoint := func(pt Vector2[T]) {
				if adjacent(i, j) && pt.FuzzyEqual(sharedVertexPos(i, j), eps) {
					return
				}
				intersects = append(intersects, PlineIntersect[T]{SIndex1: i, SIndex2: j, Pos: pt})
			}
			switch intr.IntrType {
			case PlineSegIntrOneIntersect:
				addPoint(intr.Point1)
			case PlineSegIntrTwoIntersects, PlineSegIntrSegmentOverlap, PlineSegIntrArcOverlap:
				addPoint(intr.Point1)
				addPoint(intr.Point2)
			}
		}
		return true
	})
	return intersects
}

// FindIntersects enumerates all intersections between plineA and plineB,
// using a spatial index built over plineB's segments. Point crossings land
// in Intersects; coincident overlaps land in CoincidentIntersects and
// additionally contribute their overlap endpoints as point intersects so
// downstream slicing cuts at overlap boundaries.
func FindIntersects[T Real](plineA, plineB *Polyline[T], indexB *StaticSpatialIndex[T]) PlineIntersectsResult[T] {
	var result PlineIntersectsResult[T]
	if plineA.SegmentCount() == 0 || plineB.SegmentCount() == 0 || indexB == nil {
		return result
	}
	eps := realThreshold[T]()

	var queryResults, queryStack []int
	plineA.VisitSegIndices(func(i, iNext int) bool {
		box := CreateFastApproxBoundingBox(plineA.Vertexes[i], plineA.Vertexes[iNext])
		indexB.Query(box.XMin-eps, box.YMin-eps, box.XMax+eps, box.YMax+eps, &queryResults, &queryStack)
		for _, j := range queryResults {
			jNext := (j + 1) % len(plineB.Vertexes)
			intr := IntrPlineSegs(plineA.Vertexes[i], plineA.Vertexes[iNext], plineB.Vertexes[j], plineB.Vertexes[jNext])
			if intr.IntrType == PlineSegIntrNoIntersect {
				continue
			}
			switch intr.IntrType {
			case PlineSegIntrOneIntersect:
				result.Intersects = append(result.Intersects, PlineIntersect[T]{SIndex1: i, SIndex2: j, Pos: intr.Point1})
			case PlineSegIntrTwoIntersects:
				result.Intersects = append(result.Intersects,
					PlineIntersect[T]{SIndex1: i, SIndex2: j, Pos: intr.Point1},
					PlineIntersect[T]{SIndex1: i, SIndex2: j, Pos: intr.Point2})
			case PlineSegIntrSegmentOverlap, PlineSegIntrArcOverlap:
				result.CoincidentIntersects = append(result.CoincidentIntersects, PlineCoincidentIntersect[T]{
					SIndex1: i, SIndex2: j, Point1: intr.Point1, Point2: intr.Point2,
				})
				result.Intersects = append(result.Intersects,
					PlineIntersect[T]{SIndex1: i, SIndex2: j, Pos: intr.Point1},
					PlineIntersect[T]{SIndex1: i, SIndex2: j, Pos: intr.Point2})
			}
		}
		return true
	})
	return result
}
