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

import "slices"

// Polyline is an ordered sequence of bulge-arc vertices plus an open/closed
// flag. For a closed polyline the last vertex's bulge parameterizes the
// segment wrapping back to the first vertex; for an open polyline the last
// bulge is unused. Polylines are plain value data: callers copy or move
// them, operations return freshly built ones.
type Polyline[T Real] struct {
	Vertexes []PlineVertex[T]
	Closed   bool
}

// NewPolyline builds a polyline from (x, y, bulge) triples.
func NewPolyline[T Real](closed bool, verts ...[3]T) Polyline[T] {
	p := Polyline[T]{Closed: closed}
	p.Vertexes = make([]PlineVertex[T], 0, len(verts))
	for _, v := range verts {
		p.AddVertex(v[0], v[1], v[2])
	}
	return p
}

// AddVertex appends a vertex.
func (p *Polyline[T]) AddVertex(x, y, bulge T) {
	p.Vertexes = append(p.Vertexes, PlineVertex[T]{X: x, Y: y, Bulge: bulge})
}

// Size returns the vertex count.
func (p *Polyline[T]) Size() int { return len(p.Vertexes) }

// LastVertex returns a pointer to the last vertex. Panics on an empty
// polyline.
func (p *Polyline[T]) LastVertex() *PlineVertex[T] {
	return &p.Vertexes[len(p.Vertexes)-1]
}

// SegmentCount returns the number of segments: n-1 if open, n if closed
// (and zero for fewer than two vertices).
func (p *Polyline[T]) SegmentCount() int {
	n := len(p.Vertexes)
	if n < 2 {
		return 0
	}
	if p.Closed {
		return n
	}
	return n - 1
}

// Clone returns a deep copy.
func (p *Polyline[T]) Clone() Polyline[T] {
	return Polyline[T]{Vertexes: slices.Clone(p.Vertexes), Closed: p.Closed}
}

// VisitSegIndices calls visitor with each segment's vertex index pair
// (i, j) in traversal order, wrapping to the first vertex when closed.
// Iteration stops early if the visitor returns false.
func (p *Polyline[T]) VisitSegIndices(visitor func(i, j int) bool) {
	n := len(p.Vertexes)
	if n < 2 {
		return
	}
	for i := 0; i < n-1; i++ {
		if !visitor(i, i+1) {
			return
		}
	}
	if p.Closed {
		visitor(n-1, 0)
	}
}

// ScalePolyline multiplies all vertex positions by s in place. Bulges are
// angle encodings and are unaffected by uniform scaling.
func ScalePolyline[T Real](p *Polyline[T], s T) {
	for i := range p.Vertexes {
		p.Vertexes[i].X *= s
		p.Vertexes[i].Y *= s
	}
}

// TranslatePolyline adds offset to all vertex positions in place.
func TranslatePolyline[T Real](p *Polyline[T], offset Vector2[T]) {
	for i := range p.Vertexes {
		p.Vertexes[i].X += offset.X
		p.Vertexes[i].Y += offset.Y
	}
}

// InvertDirection reverses the traversal direction in place: vertex order
// is reversed and each bulge moves to the vertex that now starts its
// segment, negated.
func InvertDirection[T Real](p *Polyline[T]) {
	n := len(p.Vertexes)
	if n < 2 {
		return
	}
	slices.Reverse(p.Vertexes)
	firstBulge := p.Vertexes[0].Bulge
	for i := 1; i < n; i++ {
		p.Vertexes[i-1].Bulge = -p.Vertexes[i].Bulge
	}
	p.Vertexes[n-1].Bulge = -firstBulge
}

// PruneSingularities returns a copy of p with consecutive vertices closer
// than eps merged, keeping the later vertex's bulge. For closed polylines a
// trailing vertex coincident with the first is also removed. The result of
// every constructive operation in this package is pruned; applying it twice
// changes nothing.
func PruneSingularities[T Real](p Polyline[T], eps T) Polyline[T] {
	result := Polyline[T]{Closed: p.Closed}
	if len(p.Vertexes) == 0 {
		return result
	}
	result.Vertexes = make([]PlineVertex[T], 0, len(p.Vertexes))
	result.Vertexes = append(result.Vertexes, p.Vertexes[0])
	for _, v := range p.Vertexes[1:] {
		last := result.LastVertex()
		if last.Pos().FuzzyEqual(v.Pos(), eps) {
			last.Bulge = v.Bulge
		} else {
			result.Vertexes = append(result.Vertexes, v)
		}
	}
	if p.Closed && len(result.Vertexes) > 1 {
		if result.LastVertex().Pos().FuzzyEqual(result.Vertexes[0].Pos(), eps) {
			result.Vertexes = result.Vertexes[:len(result.Vertexes)-1]
		}
	}
	return result
}

// ConvertArcsToLines returns a copy of p with every arc segment replaced
// by a chord sequence whose sagitta deviation from the arc is at most
// maxError. Line segments and the open/closed flag pass through unchanged.
func ConvertArcsToLines[T Real](p Polyline[T], maxError T) Polyline[T] {
	result := Polyline[T]{Closed: p.Closed}
	if len(p.Vertexes) == 0 {
		return result
	}
	result.Vertexes = make([]PlineVertex[T], 0, len(p.Vertexes))

	p.VisitSegIndices(func(i, j int) bool {
		v1 := p.Vertexes[i]
		v2 := p.Vertexes[j]
		if v1.BulgeIsZero() {
			result.Vertexes = append(result.Vertexes, v1.WithBulge(0))
			return true
		}
		rc := ArcRadiusAndCenter(v1, v2)
		sweep := 4 * atan(v1.Bulge)
		startAngle := angleTo(rc.Center, v1.Pos())

		// For a chord subtending angle theta the sagitta is
		// r*(1 - cos(theta/2)); solve for the largest step within maxError.
		var step T
		if maxError >= rc.Radius {
			step = abs(sweep)
		} else {
			step = 2 * acos(1-maxError/rc.Radius)
		}
		n := 1
		if step > 0 {
			n = max(int(abs(sweep)/step)+1, 1)
		}
		dt := sweep / T(n)
		for k := 0; k < n; k++ {
			pt := pointOnCircle(rc.Radius, rc.Center, startAngle+T(k)*dt)
			result.Vertexes = append(result.Vertexes, PlineVertex[T]{X: pt.X, Y: pt.Y})
		}
		return true
	})

	if !p.Closed {
		last := *p.LastVertex()
		result.Vertexes = append(result.Vertexes, last.WithBulge(0))
	}
	return PruneSingularities(result, realThreshold[T]())
}
