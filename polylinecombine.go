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

// PlineCombineMode selects the boolean operation of CombinePlines.
type PlineCombineMode int

const (
	// CombineUnion keeps the area covered by either polyline.
	CombineUnion PlineCombineMode = iota
	// CombineExclude keeps the area of the first polyline not covered by
	// the second (A - B).
	CombineExclude
	// CombineIntersect keeps the area covered by both polylines.
	CombineIntersect
	// CombineXOR keeps the area covered by exactly one polyline.
	CombineXOR
)

// CombineResult is the output of CombinePlines. Remaining holds the
// boundary loops of the result region; Subtracted holds hole loops that
// lie entirely inside a Remaining loop (produced when one input is nested
// in the other without touching it).
type CombineResult[T Real] struct {
	Remaining  []Polyline[T]
	Subtracted []Polyline[T]
}

// sliceLocation classifies a slice of one polyline against the other.
type sliceLocation int

const (
	sliceOutsideOther sliceLocation = iota
	sliceInsideOther
	sliceOnBoundary
)

// combineBoundaryEps is the distance under which a slice midpoint counts
// as lying on the other polyline's boundary.
func combineBoundaryEps[T Real]() T { return T(1e-5) }

// CombinePlines combines two closed polylines with the given boolean
// mode. Both inputs must be closed (boolean operations on open polylines
// are a domain error and panic). An empty result is a legitimate outcome:
// disjoint intersections, a fully-covered exclude, and degenerate inputs
// all produce one.
func CombinePlines[T Real](plineA, plineB *Polyline[T], mode PlineCombineMode) CombineResult[T] {
	if !plineA.Closed || !plineB.Closed {
		panic("cavc: CombinePlines requires closed polylines")
	}
	var result CombineResult[T]
	a := PruneSingularities(*plineA, realThreshold[T]())
	b := PruneSingularities(*plineB, realThreshold[T]())
	if a.Size() < 2 || b.Size() < 2 {
		return result
	}

	if plinesAreCoincident(&a, &b) {
		switch mode {
		case CombineUnion, CombineIntersect:
			result.Remaining = []Polyline[T]{a}
		}
		return result
	}

	indexB := CreateApproxSpatialIndex(&b)
	intrs := FindIntersects(&a, &b, indexB)
	logger().Debug("cavc: combine", "mode", int(mode),
		"intersects", len(intrs.Intersects), "coincident", len(intrs.CoincidentIntersects))

	if len(intrs.Intersects) == 0 {
		return combineDisjoint(&a, &b, mode)
	}

	sitesA := make(map[int][]Vector2[T])
	sitesB := make(map[int][]Vector2[T])
	for _, intr := range intrs.Intersects {
		sitesA[intr.SIndex1] = append(sitesA[intr.SIndex1], intr.Pos)
		sitesB[intr.SIndex2] = append(sitesB[intr.SIndex2], intr.Pos)
	}
	slicesA := slicesAtSites(&a, sitesA)
	slicesB := slicesAtSites(&b, sitesB)

	locA := classifySlices(slicesA, &b)
	locB := classifySlices(slicesB, &a)

	switch mode {
	case CombineXOR:
		// XOR = (A - B) union (B - A); the two lobes are stitched
		// separately so shared sites do not cross-link them
		lobes1, ok1 := stitchExclude(slicesA, locA, slicesB, locB)
		lobes2, ok2 := stitchExclude(slicesB, locB, slicesA, locA)
		if !ok1 || !ok2 {
			logger().Warn("cavc: combine xor failed to stitch, returning empty result")
			return CombineResult[T]{}
		}
		result.Remaining = append(lobes1, lobes2...)
	case CombineExclude:
		lobes, ok := stitchExclude(slicesA, locA, slicesB, locB)
		if !ok {
			logger().Warn("cavc: combine exclude failed to stitch, returning empty result")
			return CombineResult[T]{}
		}
		result.Remaining = lobes
	default:
		keepInside := mode == CombineIntersect
		var selected []openPolylineSlice[T]
		for i, s := range slicesA {
			switch locA[i] {
			case sliceOnBoundary:
				// the A copy of a shared boundary survives only when both
				// traversals run the same way
				if boundaryPairSameDirection(&s, slicesB, locB) {
					selected = append(selected, s)
				}
			case sliceInsideOther:
				if keepInside {
					selected = append(selected, s)
				}
			case sliceOutsideOther:
				if !keepInside {
					selected = append(selected, s)
				}
			}
		}
		for i, s := range slicesB {
			if locB[i] == sliceOnBoundary {
				continue
			}
			if (locB[i] == sliceInsideOther) == keepInside {
				selected = append(selected, s)
			}
		}
		stitched, clean := stitchSlices(selected, sliceJoinThreshold[T](), false)
		if !clean {
			logger().Warn("cavc: combine failed to stitch, returning empty result")
			return CombineResult[T]{}
		}
		result.Remaining = stitched
	}
	return result
}

// stitchExclude selects and stitches the slices of first - second: first's
// slices outside second, plus second's slices inside first reversed.
// Shared-boundary slices of first are kept when the matching second slice
// runs the opposite way.
func stitchExclude[T Real](slicesFirst []openPolylineSlice[T], locFirst []sliceLocation,
	slicesSecond []openPolylineSlice[T], locSecond []sliceLocation) ([]Polyline[T], bool) {
	var selected []openPolylineSlice[T]
	for i, s := range slicesFirst {
		switch locFirst[i] {
		case sliceOutsideOther:
			selected = append(selected, s)
		case sliceOnBoundary:
			if !boundaryPairSameDirection(&s, slicesSecond, locSecond) {
				selected = append(selected, s)
			}
		}
	}
	for i, s := range slicesSecond {
		if locSecond[i] != sliceInsideOther {
			continue
		}
		reversed := s
		reversed.pline = s.pline.Clone()
		InvertDirection(&reversed.pline)
		selected = append(selected, reversed)
	}
	return stitchSlices(selected, sliceJoinThreshold[T](), false)
}

// classifySlices locates every slice's midpoint sample relative to the
// other polyline.
func classifySlices[T Real](slices []openPolylineSlice[T], other *Polyline[T]) []sliceLocation {
	locations := make([]sliceLocation, len(slices))
	for i := range slices {
		sample := sliceMidSample(&slices[i].pline)
		if ClosestPoint(other, sample).Distance < combineBoundaryEps[T]() {
			locations[i] = sliceOnBoundary
		} else if GetWindingNumber(other, sample) != 0 {
			locations[i] = sliceInsideOther
		} else {
			locations[i] = sliceOutsideOther
		}
	}
	return locations
}

// sliceMidSample returns the midpoint of the slice's middle segment, a
// point guaranteed to lie strictly between two dicing sites.
func sliceMidSample[T Real](p *Polyline[T]) Vector2[T] {
	segCount := p.SegmentCount()
	if segCount == 0 {
		return p.Vertexes[0].Pos()
	}
	i := (segCount - 1) / 2
	return SegMidpoint(p.Vertexes[i], p.Vertexes[i+1])
}

// boundaryPairSameDirection reports whether a boundary slice of one
// polyline runs the same way as the matching boundary slice of the other.
// With no matching slice the traversals are treated as opposite.
func boundaryPairSameDirection[T Real](s *openPolylineSlice[T], otherSlices []openPolylineSlice[T], otherLoc []sliceLocation) bool {
	sample := sliceMidSample(&s.pline)
	for i := range otherSlices {
		if otherLoc[i] != sliceOnBoundary {
			continue
		}
		op := &otherSlices[i].pline
		if ClosestPoint(op, sample).Distance >= combineBoundaryEps[T]() {
			continue
		}
		segCount := s.pline.SegmentCount()
		segIdx := (segCount - 1) / 2
		tangent := SegTangentVector(s.pline.Vertexes[segIdx], s.pline.Vertexes[segIdx+1], sample)

		cp := ClosestPoint(op, sample)
		otherTangent := SegTangentVector(op.Vertexes[cp.Index], op.Vertexes[cp.Index+1], cp.Point)
		return tangent.Dot(otherTangent) > 0
	}
	return false
}

// combineDisjoint handles polylines whose boundaries never touch: each is
// entirely inside or entirely outside the other.
func combineDisjoint[T Real](a, b *Polyline[T], mode PlineCombineMode) CombineResult[T] {
	var result CombineResult[T]
	aInB := GetWindingNumber(b, samplePointOn(a, b)) != 0
	bInA := GetWindingNumber(a, samplePointOn(b, a)) != 0

	switch mode {
	case CombineUnion:
		switch {
		case aInB:
			result.Remaining = []Polyline[T]{b.Clone()}
		case bInA:
			result.Remaining = []Polyline[T]{a.Clone()}
		default:
			result.Remaining = []Polyline[T]{a.Clone(), b.Clone()}
		}
	case CombineIntersect:
		switch {
		case aInB:
			result.Remaining = []Polyline[T]{a.Clone()}
		case bInA:
			result.Remaining = []Polyline[T]{b.Clone()}
		}
	case CombineExclude:
		switch {
		case aInB:
			// nothing of A survives
		case bInA:
			result.Remaining = []Polyline[T]{a.Clone()}
			result.Subtracted = []Polyline[T]{b.Clone()}
		default:
			result.Remaining = []Polyline[T]{a.Clone()}
		}
	case CombineXOR:
		switch {
		case aInB:
			result.Remaining = []Polyline[T]{b.Clone()}
			result.Subtracted = []Polyline[T]{a.Clone()}
		case bInA:
			result.Remaining = []Polyline[T]{a.Clone()}
			result.Subtracted = []Polyline[T]{b.Clone()}
		default:
			result.Remaining = []Polyline[T]{a.Clone(), b.Clone()}
		}
	}
	return result
}

// samplePointOn returns a point on p suitable for winding tests against
// other: the first segment midpoint not too close to other's boundary.
func samplePointOn[T Real](p, other *Polyline[T]) Vector2[T] {
	fallback := SegMidpoint(p.Vertexes[0], p.Vertexes[1%len(p.Vertexes)])
	var found Vector2[T]
	ok := false
	p.VisitSegIndices(func(i, j int) bool {
		m := SegMidpoint(p.Vertexes[i], p.Vertexes[j])
		if ClosestPoint(other, m).Distance > combineBoundaryEps[T]() {
			found = m
			ok = true
			return false
		}
		return true
	})
	if ok {
		return found
	}
	return fallback
}

// plinesAreCoincident reports whether the two closed polylines have the
// same vertex sequence up to rotation and reversal, within the default
// threshold.
func plinesAreCoincident[T Real](a, b *Polyline[T]) bool {
	if a.Size() != b.Size() {
		return false
	}
	n := a.Size()
	eps := realThreshold[T]()
	matchesWithRotation := func(b *Polyline[T]) bool {
		for rot := 0; rot < n; rot++ {
			match := true
			for i := 0; i < n; i++ {
				av := a.Vertexes[i]
				bv := b.Vertexes[(i+rot)%n]
				if !av.Pos().FuzzyEqual(bv.Pos(), eps) || !fuzzyEqual(av.Bulge, bv.Bulge, eps) {
					match = false
					break
				}
			}
			if match {
				return true
			}
		}
		return false
	}
	if matchesWithRotation(b) {
		return true
	}
	reversed := b.Clone()
	InvertDirection(&reversed)
	return matchesWithRotation(&reversed)
}
