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

import (
	"math"
	"sort"
)

// defaultNodeSize is the node fan-out used when none is specified.
const defaultNodeSize = 16

// StaticSpatialIndex is a packed Hilbert R-tree over a fixed set of
// axis-aligned boxes. The build protocol is: create with the item count,
// Add exactly that many boxes, then Finish. After Finish the index is
// immutable and may be queried concurrently from multiple goroutines as
// long as each goroutine owns its results/stack scratch buffers. Calling
// Add or Finish after Finish, or querying before it, is a programming
// error and panics.
type StaticSpatialIndex[T Real] struct {
	minX, minY, maxX, maxY T

	numItems    int
	nodeSize    int
	levelBounds []int // exclusive end offset of each level, in box units

	// boxes holds 4 values per node (minX, minY, maxX, maxY); indices
	// holds, per node, the original item id at the leaf level and the box
	// offset of the first child above it.
	boxes   []T
	indices []int

	pos      int
	finished bool
}

// NewStaticSpatialIndex creates an index for numItems boxes with the
// default node size.
func NewStaticSpatialIndex[T Real](numItems int) *StaticSpatialIndex[T] {
	return NewStaticSpatialIndexNodeSize[T](numItems, defaultNodeSize)
}

// NewStaticSpatialIndexNodeSize creates an index for numItems boxes with
// the given node fan-out (minimum 2).
func NewStaticSpatialIndexNodeSize[T Real](numItems, nodeSize int) *StaticSpatialIndex[T] {
	if numItems <= 0 {
		panic("cavc: spatial index requires at least one item")
	}
	nodeSize = max(nodeSize, 2)

	s := &StaticSpatialIndex[T]{
		minX:     T(math.Inf(1)),
		minY:     T(math.Inf(1)),
		maxX:     T(math.Inf(-1)),
		maxY:     T(math.Inf(-1)),
		numItems: numItems,
		nodeSize: nodeSize,
	}

	n := numItems
	numNodes := n
	s.levelBounds = append(s.levelBounds, n*4)
	for n != 1 {
		n = (n + nodeSize - 1) / nodeSize
		numNodes += n
		s.levelBounds = append(s.levelBounds, numNodes*4)
	}
	s.boxes = make([]T, numNodes*4)
	s.indices = make([]int, numNodes)
	return s
}

// NumItems returns the number of input boxes.
func (s *StaticSpatialIndex[T]) NumItems() int { return s.numItems }

// Bounds returns the box containing all added items. Only valid after
// Finish.
func (s *StaticSpatialIndex[T]) Bounds() AABB[T] {
	return AABB[T]{XMin: s.minX, YMin: s.minY, XMax: s.maxX, YMax: s.maxY}
}

// Add records the box for the next item. Items are identified by the
// order of Add calls, starting at zero.
func (s *StaticSpatialIndex[T]) Add(minX, minY, maxX, maxY T) {
	if s.finished {
		panic("cavc: Add called on a finished spatial index")
	}
	if s.pos >= s.numItems*4 {
		panic("cavc: more boxes added than declared")
	}
	index := s.pos >> 2
	s.indices[index] = index
	s.boxes[s.pos] = minX
	s.boxes[s.pos+1] = minY
	s.boxes[s.pos+2] = maxX
	s.boxes[s.pos+3] = maxY
	s.pos += 4

	s.minX = min(s.minX, minX)
	s.minY = min(s.minY, minY)
	s.maxX = max(s.maxX, maxX)
	s.maxY = max(s.maxY, maxY)
}

// Finish sorts the items along the Hilbert curve and packs the tree
// bottom-up. It must be called exactly once, after all Add calls.
func (s *StaticSpatialIndex[T]) Finish() {
	if s.finished {
		panic("cavc: Finish called twice on spatial index")
	}
	if s.pos != s.numItems*4 {
		panic("cavc: Finish called before all boxes were added")
	}
	s.finished = true

	if s.numItems == 1 {
		// the single item is the root
		return
	}
	if s.numItems <= s.nodeSize {
		// all items fit in the root; no sort needed
		s.indices[s.pos>>2] = 0
		s.boxes[s.pos] = s.minX
		s.boxes[s.pos+1] = s.minY
		s.boxes[s.pos+2] = s.maxX
		s.boxes[s.pos+3] = s.maxY
		return
	}

	width := s.maxX - s.minX
	height := s.maxY - s.minY
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	const hilbertMax = (1 << 16) - 1
	hilbertValues := make([]uint32, s.numItems)
	for i := 0; i < s.numItems; i++ {
		pos := i * 4
		cx := (s.boxes[pos] + s.boxes[pos+2]) / 2
		cy := (s.boxes[pos+1] + s.boxes[pos+3]) / 2
		x := uint32(hilbertMax * float64((cx-s.minX)/width))
		y := uint32(hilbertMax * float64((cy-s.minY)/height))
		hilbertValues[i] = hilbertXYToIndex(x, y)
	}

	// sort items by hilbert value, keeping boxes and indices parallel
	order := make([]int, s.numItems)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return hilbertValues[order[a]] < hilbertValues[order[b]]
	})
	sortedBoxes := make([]T, s.numItems*4)
	sortedIndices := make([]int, s.numItems)
	for dst, src := range order {
		copy(sortedBoxes[dst*4:dst*4+4], s.boxes[src*4:src*4+4])
		sortedIndices[dst] = s.indices[src]
	}
	copy(s.boxes[:s.numItems*4], sortedBoxes)
	copy(s.indices[:s.numItems], sortedIndices)

	// pack parent nodes level by level
	pos := 0
	writePos := s.levelBounds[0]
	for level := 0; level < len(s.levelBounds)-1; level++ {
		end := s.levelBounds[level]
		for pos < end {
			nodeMinX := T(math.Inf(1))
			nodeMinY := T(math.Inf(1))
			nodeMaxX := T(math.Inf(-1))
			nodeMaxY := T(math.Inf(-1))
			firstChild := pos
			for j := 0; j < s.nodeSize && pos < end; j++ {
				nodeMinX = min(nodeMinX, s.boxes[pos])
				nodeMinY = min(nodeMinY, s.boxes[pos+1])
				nodeMaxX = max(nodeMaxX, s.boxes[pos+2])
				nodeMaxY = max(nodeMaxY, s.boxes[pos+3])
				pos += 4
			}
			s.indices[writePos>>2] = firstChild
			s.boxes[writePos] = nodeMinX
			s.boxes[writePos+1] = nodeMinY
			s.boxes[writePos+2] = nodeMaxX
			s.boxes[writePos+3] = nodeMaxY
			writePos += 4
		}
	}
}

// Query appends to results the ids of all items whose box overlaps the
// query box. The caller supplies both the results and stack buffers so a
// steady-state query loop performs no allocations; both are reset before
// use.
func (s *StaticSpatialIndex[T]) Query(minX, minY, maxX, maxY T, results *[]int, stack *[]int) {
	*results = (*results)[:0]
	s.VisitQuery(minX, minY, maxX, maxY, func(index int) bool {
		*results = append(*results, index)
		return true
	}, stack)
}

// VisitQuery invokes visitor with the id of every item whose box overlaps
// the query box, stopping early if the visitor returns false. The caller
// supplies the traversal stack buffer; it is reset before use.
func (s *StaticSpatialIndex[T]) VisitQuery(minX, minY, maxX, maxY T, visitor func(index int) bool, stack *[]int) {
	if !s.finished {
		panic("cavc: query on an unfinished spatial index")
	}
	*stack = (*stack)[:0]
	nodeIndex := len(s.boxes) - 4
	for {
		end := min(nodeIndex+s.nodeSize*4, s.levelUpperBound(nodeIndex))
		for pos := nodeIndex; pos < end; pos += 4 {
			if maxX < s.boxes[pos] || maxY < s.boxes[pos+1] ||
				minX > s.boxes[pos+2] || minY > s.boxes[pos+3] {
				continue
			}
			index := s.indices[pos>>2]
			if nodeIndex >= s.numItems*4 {
				*stack = append(*stack, index)
			} else if !visitor(index) {
				return
			}
		}
		if len(*stack) == 0 {
			return
		}
		nodeIndex = (*stack)[len(*stack)-1]
		*stack = (*stack)[:len(*stack)-1]
	}
}

// VisitItemBoxes invokes visitor with every item's id and box, stopping
// early if the visitor returns false.
func (s *StaticSpatialIndex[T]) VisitItemBoxes(visitor func(index int, minX, minY, maxX, maxY T) bool) {
	if !s.finished {
		panic("cavc: query on an unfinished spatial index")
	}
	for pos := 0; pos < s.numItems*4; pos += 4 {
		if !visitor(s.indices[pos>>2], s.boxes[pos], s.boxes[pos+1], s.boxes[pos+2], s.boxes[pos+3]) {
			return
		}
	}
}

// levelUpperBound returns the end offset of the level containing
// nodeIndex.
func (s *StaticSpatialIndex[T]) levelUpperBound(nodeIndex int) int {
	for _, bound := range s.levelBounds {
		if bound > nodeIndex {
			return bound
		}
	}
	return s.levelBounds[len(s.levelBounds)-1]
}

// CreateApproxSpatialIndex builds a spatial index over the polyline's
// segments using fast approximate bounding boxes. Returns nil for
// polylines with no segments.
func CreateApproxSpatialIndex[T Real](p *Polyline[T]) *StaticSpatialIndex[T] {
	segCount := p.SegmentCount()
	if segCount == 0 {
		return nil
	}
	index := NewStaticSpatialIndex[T](segCount)
	p.VisitSegIndices(func(i, j int) bool {
		box := CreateFastApproxBoundingBox(p.Vertexes[i], p.Vertexes[j])
		index.Add(box.XMin, box.YMin, box.XMax, box.YMax)
		return true
	})
	index.Finish()
	return index
}

// hilbertXYToIndex interleaves 16-bit x and y into their position along
// the Hilbert curve. Bit-parallel construction: each round doubles the
// number of resolved curve levels, then the final step interleaves the
// two derived bit planes.
func hilbertXYToIndex(x, y uint32) uint32 {
	a := x ^ y
	b := 0xFFFF ^ a
	c := 0xFFFF ^ (x | y)
	d := x & (y ^ 0xFFFF)

	A := a | (b >> 1)
	B := (a >> 1) ^ a
	C := ((c >> 1) ^ (b & (d >> 1))) ^ c
	D := ((a & (c >> 1)) ^ (d >> 1)) ^ d

	a, b, c, d = A, B, C, D
	A = (a & (a >> 2)) ^ (b & (b >> 2))
	B = (a & (b >> 2)) ^ (b & ((a ^ b) >> 2))
	C ^= (a & (c >> 2)) ^ (b & (d >> 2))
	D ^= (b & (c >> 2)) ^ ((a ^ b) & (d >> 2))

	a, b, c, d = A, B, C, D
	A = (a & (a >> 4)) ^ (b & (b >> 4))
	B = (a & (b >> 4)) ^ (b & ((a ^ b) >> 4))
	C ^= (a & (c >> 4)) ^ (b & (d >> 4))
	D ^= (b & (c >> 4)) ^ ((a ^ b) & (d >> 4))

	a, b, c, d = A, B, C, D
	C ^= (a & (c >> 8)) ^ (b & (d >> 8))
	D ^= (b & (c >> 8)) ^ ((a ^ b) & (d >> 8))

	a = C ^ (C >> 1)
	b = D ^ (D >> 1)

	i0 := x ^ y
	i1 := b | (0xFFFF ^ (i0 | a))

	i0 = (i0 | (i0 << 8)) & 0x00FF00FF
	i0 = (i0 | (i0 << 4)) & 0x0F0F0F0F
	i0 = (i0 | (i0 << 2)) & 0x33333333
	i0 = (i0 | (i0 << 1)) & 0x55555555

	i1 = (i1 | (i1 << 8)) & 0x00FF00FF
	i1 = (i1 | (i1 << 4)) & 0x0F0F0F0F
	i1 = (i1 | (i1 << 2)) & 0x33333333
	i1 = (i1 | (i1 << 1)) & 0x55555555

	return (i1 << 1) | i0
}
