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

// rawPlineOffsetSeg is one segment offset independently of its neighbors:
// the offset vertices, the original joint position (used as the center of
// bridging join arcs), and whether an arc's radius collapsed through zero.
type rawPlineOffsetSeg[T Real] struct {
	v1, v2       PlineVertex[T]
	origV2Pos    Vector2[T]
	collapsedArc bool
}

// createUntrimmedOffsetSegments offsets every segment of p by offset
// (positive = left of the direction of travel) without joining or
// trimming.
func createUntrimmedOffsetSegments[T Real](p *Polyline[T], offset T) []rawPlineOffsetSeg[T] {
	segCount := p.SegmentCount()
	if segCount == 0 {
		return nil
	}
	result := make([]rawPlineOffsetSeg[T], 0, segCount)
	p.VisitSegIndices(func(i, j int) bool {
		v1 := p.Vertexes[i]
		v2 := p.Vertexes[j]
		var seg rawPlineOffsetSeg[T]
		seg.origV2Pos = v2.Pos()
		if v1.BulgeIsZero() {
			d := v2.Pos().Sub(v1.Pos()).Unit()
			offs := d.Perp().Mul(offset)
			seg.v1 = v1.WithPos(v1.Pos().Add(offs))
			seg.v2 = v2.WithPos(v2.Pos().Add(offs))
		} else {
			rc := ArcRadiusAndCenter(v1, v2)
			// a counter-clockwise arc has its center on the left of
			// travel, so a positive (leftward) offset shrinks it
			radiusAfter := rc.Radius - offset
			if v1.BulgeIsNeg() {
				radiusAfter = rc.Radius + offset
			}
			u1 := v1.Pos().Sub(rc.Center).Unit()
			u2 := v2.Pos().Sub(rc.Center).Unit()
			seg.v1 = v1.WithPos(rc.Center.Add(u1.Mul(radiusAfter)))
			seg.v2 = v2.WithPos(rc.Center.Add(u2.Mul(radiusAfter)))
			seg.collapsedArc = radiusAfter < realThreshold[T]()
		}
		result = append(result, seg)
		return true
	})
	return result
}

// addOrReplaceIfSamePos appends vertex to result, or replaces the last
// vertex's bulge when the positions coincide.
func addOrReplaceIfSamePos[T Real](result *Polyline[T], vertex PlineVertex[T]) {
	if len(result.Vertexes) > 0 &&
		result.LastVertex().Pos().FuzzyEqual(vertex.Pos(), realThreshold[T]()) {
		result.LastVertex().Bulge = vertex.Bulge
		return
	}
	result.Vertexes = append(result.Vertexes, vertex)
}

// bulgeForConnection computes the bulge of the join arc centered at
// arcCenter sweeping from sp to ep in the given rotation direction.
func bulgeForConnection[T Real](arcCenter, sp, ep Vector2[T], isCCW bool) T {
	a1 := angleTo(arcCenter, sp)
	a2 := angleTo(arcCenter, ep)
	if isCCW {
		return tan4(normalizeRadians(a2 - a1))
	}
	return tan4(-normalizeRadians(a1 - a2))
}

// offsetJoiner joins consecutive raw offset segments into a polyline,
// trimming at true intersections and bridging separated corners with an
// arc of radius |offset| around the original joint vertex.
type offsetJoiner[T Real] struct {
	connectionArcsAreCCW bool
}

func (oj *offsetJoiner[T]) connectUsingArc(s1, s2 *rawPlineOffsetSeg[T], result *Polyline[T]) {
	sp := s1.v2.Pos()
	ep := s2.v1.Pos()
	if sp.FuzzyEqual(ep, realThreshold[T]()) {
		addOrReplaceIfSamePos(result, s2.v1)
		return
	}
	bulge := bulgeForConnection(s1.origV2Pos, sp, ep, oj.connectionArcsAreCCW)
	addOrReplaceIfSamePos(result, s1.v2.WithBulge(bulge))
	addOrReplaceIfSamePos(result, s2.v1)
}

func (oj *offsetJoiner[T]) join(s1, s2 *rawPlineOffsetSeg[T], result *Polyline[T]) {
	s1IsLine := s1.v1.BulgeIsZero()
	s2IsLine := s2.v1.BulgeIsZero()
	switch {
	case s1.collapsedArc || s2.collapsedArc:
		// a collapsed arc has no meaningful trim geometry
		oj.connectUsingArc(s1, s2, result)
	case s1IsLine && s2IsLine:
		oj.lineToLineJoin(s1, s2, result)
	case s1IsLine:
		oj.lineToArcJoin(s1, s2, result)
	case s2IsLine:
		oj.arcToLineJoin(s1, s2, result)
	default:
		oj.arcToArcJoin(s1, s2, result)
	}
}

func (oj *offsetJoiner[T]) lineToLineJoin(s1, s2 *rawPlineOffsetSeg[T], result *Polyline[T]) {
	intr := IntrLineSeg2LineSeg2(s1.v1.Pos(), s1.v2.Pos(), s2.v1.Pos(), s2.v2.Pos())
	switch intr.IntrType {
	case LineSegIntrNone:
		oj.connectUsingArc(s1, s2, result)
	case LineSegIntrTrue:
		addOrReplaceIfSamePos(result, PlineVertex[T]{X: intr.Point.X, Y: intr.Point.Y})
	case LineSegIntrCoincident:
		addOrReplaceIfSamePos(result, s2.v1)
	case LineSegIntrFalse:
		if intr.T0 > 1 && intr.T1 < 0 {
			// intersect is beyond s1 and before s2: an outside corner
			oj.connectUsingArc(s1, s2, result)
		} else {
			addOrReplaceIfSamePos(result, PlineVertex[T]{X: intr.Point.X, Y: intr.Point.Y})
		}
	}
}

func (oj *offsetJoiner[T]) lineToArcJoin(s1, s2 *rawPlineOffsetSeg[T], result *Polyline[T]) {
	if s1.v2.Pos().FuzzyEqual(s2.v1.Pos(), realThreshold[T]()) {
		addOrReplaceIfSamePos(result, s2.v1)
		return
	}
	rc := ArcRadiusAndCenter(s2.v1, s2.v2)
	intr := IntrLineSeg2Circle2(s1.v1.Pos(), s1.v2.Pos(), rc.Radius, rc.Center)

	pt, ok := oj.pickLineCircleTrim(s1, intr, func(p Vector2[T]) bool {
		return pointWithinArcSweep(s2.v1.Pos(), s2.v2.Pos(), s2.v1.Bulge, p)
	})
	if !ok {
		oj.connectUsingArc(s1, s2, result)
		return
	}
	split := SplitAtPoint(s2.v1, s2.v2, pt)
	addOrReplaceIfSamePos(result, split.SplitVertex)
}

func (oj *offsetJoiner[T]) arcToLineJoin(s1, s2 *rawPlineOffsetSeg[T], result *Polyline[T]) {
	if s1.v2.Pos().FuzzyEqual(s2.v1.Pos(), realThreshold[T]()) {
		addOrReplaceIfSamePos(result, s2.v1)
		return
	}
	rc := ArcRadiusAndCenter(s1.v1, s1.v2)
	intr := IntrLineSeg2Circle2(s2.v1.Pos(), s2.v2.Pos(), rc.Radius, rc.Center)

	pt, ok := oj.pickLineCircleTrim(s1, intr, func(p Vector2[T]) bool {
		return pointWithinArcSweep(s1.v1.Pos(), s1.v2.Pos(), s1.v1.Bulge, p)
	}, s2.v1.Pos(), s2.v2.Pos())
	if !ok {
		oj.connectUsingArc(s1, s2, result)
		return
	}
	// trim the arc's kept portion: the vertex starting s1 is the last one
	// appended to result
	if len(result.Vertexes) > 0 {
		split := SplitAtPoint(*result.LastVertex(), s1.v2, pt)
		result.LastVertex().Bulge = split.UpdatedStart.Bulge
	}
	addOrReplaceIfSamePos(result, PlineVertex[T]{X: pt.X, Y: pt.Y})
}

// pickLineCircleTrim selects a trim point from a line/circle intersection:
// candidates must lie within the line's [0, 1] range and satisfy
// withinSweep; with two candidates the one nearest the joint (s1's end) is
// used. The optional linePts override which endpoints parameterize the
// candidates (used when the line is s2).
func (oj *offsetJoiner[T]) pickLineCircleTrim(s1 *rawPlineOffsetSeg[T], intr IntrLineSeg2Circle2Result[T], withinSweep func(Vector2[T]) bool, linePts ...Vector2[T]) (Vector2[T], bool) {
	var p0, p1 Vector2[T]
	if len(linePts) == 2 {
		p0, p1 = linePts[0], linePts[1]
	} else {
		p0, p1 = s1.v1.Pos(), s1.v2.Pos()
	}
	eps := realThreshold[T]()
	var candidates []Vector2[T]
	consider := func(t T) {
		if !fuzzyInRange(T(0), t, T(1), eps) {
			return
		}
		pt := pointFromParametric(p0, p1, t)
		if withinSweep(pt) {
			candidates = append(candidates, pt)
		}
	}
	if intr.NumIntersects >= 1 {
		consider(intr.T0)
	}
	if intr.NumIntersects == 2 {
		consider(intr.T1)
	}
	switch len(candidates) {
	case 0:
		return Vector2[T]{}, false
	case 1:
		return candidates[0], true
	default:
		corner := s1.v2.Pos()
		if distSq(candidates[0], corner) <= distSq(candidates[1], corner) {
			return candidates[0], true
		}
		return candidates[1], true
	}
}

func (oj *offsetJoiner[T]) arcToArcJoin(s1, s2 *rawPlineOffsetSeg[T], result *Polyline[T]) {
	if s1.v2.Pos().FuzzyEqual(s2.v1.Pos(), realThreshold[T]()) {
		addOrReplaceIfSamePos(result, s2.v1)
		return
	}
	rc1 := ArcRadiusAndCenter(s1.v1, s1.v2)
	rc2 := ArcRadiusAndCenter(s2.v1, s2.v2)
	intr := IntrCircle2Circle2(rc1.Radius, rc1.Center, rc2.Radius, rc2.Center)

	inBoth := func(p Vector2[T]) bool {
		return pointWithinArcSweep(s1.v1.Pos(), s1.v2.Pos(), s1.v1.Bulge, p) &&
			pointWithinArcSweep(s2.v1.Pos(), s2.v2.Pos(), s2.v1.Bulge, p)
	}
	var candidates []Vector2[T]
	if intr.IntrType == CircleIntrOneIntersect || intr.IntrType == CircleIntrTwoIntersects {
		if inBoth(intr.Point1) {
			candidates = append(candidates, intr.Point1)
		}
	}
	if intr.IntrType == CircleIntrTwoIntersects && inBoth(intr.Point2) {
		candidates = append(candidates, intr.Point2)
	}
	if len(candidates) == 0 {
		oj.connectUsingArc(s1, s2, result)
		return
	}
	pt := candidates[0]
	if len(candidates) == 2 {
		corner := s1.v2.Pos()
		if distSq(candidates[1], corner) < distSq(candidates[0], corner) {
			pt = candidates[1]
		}
	}
	split1 := SplitAtPoint(s1.v1, s1.v2, pt)
	if len(result.Vertexes) > 0 {
		result.LastVertex().Bulge = split1.UpdatedStart.Bulge
	}
	split2 := SplitAtPoint(s2.v1, s2.v2, pt)
	addOrReplaceIfSamePos(result, split2.SplitVertex)
}

// createRawOffsetPline builds the joined but untrimmed-at-large offset
// curve: each segment offset by offset with corner joins applied, before
// global self-intersection handling.
func createRawOffsetPline[T Real](p *Polyline[T], offset T) Polyline[T] {
	result := Polyline[T]{Closed: p.Closed}
	rawSegs := createUntrimmedOffsetSegments(p, offset)
	if len(rawSegs) == 0 {
		return result
	}
	oj := offsetJoiner[T]{connectionArcsAreCCW: offset < 0}

	result.Vertexes = append(result.Vertexes, rawSegs[0].v1)
	for i := 1; i < len(rawSegs); i++ {
		oj.join(&rawSegs[i-1], &rawSegs[i], &result)
	}

	if !p.Closed {
		addOrReplaceIfSamePos(&result, rawSegs[len(rawSegs)-1].v2.WithBulge(0))
		return PruneSingularities(result, realThreshold[T]())
	}

	// close the loop: join the last segment back to the first, then fold
	// the re-emitted (possibly trimmed) start vertex onto index 0
	oj.join(&rawSegs[len(rawSegs)-1], &rawSegs[0], &result)
	if len(result.Vertexes) > 1 {
		last := *result.LastVertex()
		result.Vertexes = result.Vertexes[:len(result.Vertexes)-1]
		if len(result.Vertexes) > 1 && !rawSegs[0].v1.BulgeIsZero() {
			// seg 0 may have been trimmed at both ends; recompute the
			// start bulge from the trimmed endpoints on the raw circle
			rc := ArcRadiusAndCenter(rawSegs[0].v1, rawSegs[0].v2)
			a1 := angleTo(rc.Center, last.Pos())
			a2 := angleTo(rc.Center, result.Vertexes[1].Pos())
			var sweep T
			if rawSegs[0].v1.Bulge > 0 {
				sweep = normalizeRadians(a2 - a1)
			} else {
				sweep = -normalizeRadians(a1 - a2)
			}
			result.Vertexes[0] = last.WithBulge(tan4(sweep))
		} else {
			result.Vertexes[0] = last
		}
	}
	return PruneSingularities(result, realThreshold[T]())
}

// cutSite is a dicing location on a polyline perimeter.
type cutSite[T Real] struct {
	segIndex int
	param    T
	pos      Vector2[T]
}

// openPolylineSlice is an open fragment of a parent polyline between two
// dicing sites, remembering the parent segment index at each end.
type openPolylineSlice[T Real] struct {
	intrStartIndex int
	intrEndIndex   int
	pline          Polyline[T]
}

// segParam returns the traversal parameter of point on the segment in
// [0, 1]: chord fraction for lines, sweep fraction for arcs.
func segParam[T Real](v1, v2 PlineVertex[T], point Vector2[T]) T {
	if v1.BulgeIsZero() {
		d := v2.Pos().Sub(v1.Pos())
		lenSq := d.LengthSq()
		if lenSq < realThreshold[T]() {
			return 0
		}
		return point.Sub(v1.Pos()).Dot(d) / lenSq
	}
	rc := ArcRadiusAndCenter(v1, v2)
	totalSweep := segSweepAngle(v1)
	startAngle := angleTo(rc.Center, v1.Pos())
	pointAngle := angleTo(rc.Center, point)
	var sweepTo T
	if v1.Bulge > 0 {
		sweepTo = normalizeRadians(pointAngle - startAngle)
	} else {
		sweepTo = -normalizeRadians(startAngle - pointAngle)
	}
	return sweepTo / totalSweep
}

// sortSitesAlongPerimeter groups intersection positions by segment and
// orders them by traversal, deduplicating within the position threshold.
func sortSitesAlongPerimeter[T Real](p *Polyline[T], positions map[int][]Vector2[T]) []cutSite[T] {
	var sites []cutSite[T]
	segCount := p.SegmentCount()
	for segIdx := 0; segIdx < segCount; segIdx++ {
		pts := positions[segIdx]
		if len(pts) == 0 {
			continue
		}
		v1 := p.Vertexes[segIdx]
		v2 := p.Vertexes[(segIdx+1)%len(p.Vertexes)]
		segSites := make([]cutSite[T], 0, len(pts))
		for _, pt := range pts {
			segSites = append(segSites, cutSite[T]{segIndex: segIdx, param: segParam(v1, v2, pt), pos: pt})
		}
		for i := 1; i < len(segSites); i++ {
			for j := i; j > 0 && segSites[j].param < segSites[j-1].param; j-- {
				segSites[j], segSites[j-1] = segSites[j-1], segSites[j]
			}
		}
		for _, site := range segSites {
			// duplicates on the same segment collapse to one cut; equal
			// positions on different segments are distinct perimeter
			// locations and the zero-length slice between them is dropped
			// later
			if len(sites) > 0 && sites[len(sites)-1].segIndex == site.segIndex &&
				sites[len(sites)-1].pos.FuzzyEqual(site.pos, sliverThreshold[T]()) {
				continue
			}
			sites = append(sites, site)
		}
	}
	return sites
}

// buildSlice extracts the open fragment of p running from site a to site b
// along the direction of travel (wrapping for closed polylines).
func buildSlice[T Real](p *Polyline[T], a, b cutSite[T]) openPolylineSlice[T] {
	n := len(p.Vertexes)
	next := func(i int) int { return (i + 1) % n }

	slice := openPolylineSlice[T]{intrStartIndex: a.segIndex, intrEndIndex: b.segIndex}
	slice.pline.Closed = false

	startSplit := SplitAtPoint(p.Vertexes[a.segIndex], p.Vertexes[next(a.segIndex)], a.pos)
	startVertex := startSplit.SplitVertex

	sameSegForward := a.segIndex == b.segIndex && a.param <= b.param+realThreshold[T]()
	if sameSegForward {
		endSplit := SplitAtPoint(startVertex, p.Vertexes[next(a.segIndex)], b.pos)
		slice.pline.Vertexes = append(slice.pline.Vertexes, endSplit.UpdatedStart)
		slice.pline.Vertexes = append(slice.pline.Vertexes, PlineVertex[T]{X: b.pos.X, Y: b.pos.Y})
	} else {
		slice.pline.Vertexes = append(slice.pline.Vertexes, startVertex)
		idx := next(a.segIndex)
		for idx != b.segIndex {
			slice.pline.Vertexes = append(slice.pline.Vertexes, p.Vertexes[idx])
			idx = next(idx)
		}
		endSplit := SplitAtPoint(p.Vertexes[b.segIndex], p.Vertexes[next(b.segIndex)], b.pos)
		addOrReplaceIfSamePos(&slice.pline, endSplit.UpdatedStart)
		addOrReplaceIfSamePos(&slice.pline, PlineVertex[T]{X: b.pos.X, Y: b.pos.Y})
	}

	slice.pline = PruneSingularities(slice.pline, realThreshold[T]())
	return slice
}

// slicesAtSites dices p at every site, producing one open slice per
// consecutive site pair (wrapping when closed; clamped to the polyline
// ends when open).
func slicesAtSites[T Real](p *Polyline[T], positions map[int][]Vector2[T]) []openPolylineSlice[T] {
	sites := sortSitesAlongPerimeter(p, positions)
	if len(sites) == 0 {
		return nil
	}
	if !p.Closed {
		segCount := p.SegmentCount()
		startSite := cutSite[T]{segIndex: 0, param: 0, pos: p.Vertexes[0].Pos()}
		endSite := cutSite[T]{segIndex: segCount - 1, param: 1, pos: p.LastVertex().Pos()}
		sites = append([]cutSite[T]{startSite}, sites...)
		sites = append(sites, endSite)
	}

	var slices []openPolylineSlice[T]
	for i := 0; i < len(sites); i++ {
		j := i + 1
		if j == len(sites) {
			if !p.Closed {
				break
			}
			j = 0
		}
		s := buildSlice(p, sites[i], sites[j])
		if s.pline.Size() >= 2 {
			slices = append(slices, s)
		}
	}
	return slices
}

// stitchSlices joins slices whose endpoints coincide within joinEps into
// polylines. Chains that close onto themselves become closed polylines;
// the rest stay open. Returns the stitched polylines and whether every
// chain terminated cleanly (closed, or openOK).
func stitchSlices[T Real](slices []openPolylineSlice[T], joinEps T, openOK bool) ([]Polyline[T], bool) {
	used := make([]bool, len(slices))
	var results []Polyline[T]
	clean := true

	for i := range slices {
		if used[i] {
			continue
		}
		used[i] = true
		current := slices[i].pline.Clone()

		for {
			endPos := current.LastVertex().Pos()
			if current.Size() > 1 && endPos.FuzzyEqual(current.Vertexes[0].Pos(), joinEps) {
				// loop closed
				current.Vertexes = current.Vertexes[:len(current.Vertexes)-1]
				current.Closed = true
				break
			}
			foundNext := -1
			for j := range slices {
				if used[j] {
					continue
				}
				if slices[j].pline.Vertexes[0].Pos().FuzzyEqual(endPos, joinEps) {
					foundNext = j
					break
				}
			}
			if foundNext < 0 {
				if !openOK {
					clean = false
				}
				break
			}
			used[foundNext] = true
			nextPline := &slices[foundNext].pline
			current.LastVertex().Bulge = nextPline.Vertexes[0].Bulge
			current.Vertexes = append(current.Vertexes, nextPline.Vertexes[1:]...)
		}

		current = PruneSingularities(current, realThreshold[T]())
		if current.Size() < 2 {
			continue
		}
		if current.Closed && current.Size() < 3 && current.Vertexes[0].BulgeIsZero() {
			// degenerate two-point loop with no arc: a sliver
			continue
		}
		if !current.Closed && !openOK {
			continue
		}
		results = append(results, current)
	}
	return results, clean
}

// offsetSliceIsValid checks the offset distance invariant: every sample of
// the slice (vertices and segment midpoints) must lie at least
// |offset| - tolerance away from the source polyline.
func offsetSliceIsValid[T Real](slice *Polyline[T], source *Polyline[T], offset T) bool {
	offsAbs := abs(offset)
	tol := offsAbs * offsetDistThreshold[T]()
	check := func(pt Vector2[T]) bool {
		return ClosestPoint(source, pt).Distance+tol >= offsAbs
	}
	for _, v := range slice.Vertexes {
		if !check(v.Pos()) {
			return false
		}
	}
	ok := true
	slice.VisitSegIndices(func(i, j int) bool {
		if !check(SegMidpoint(slice.Vertexes[i], slice.Vertexes[j])) {
			ok = false
			return false
		}
		return true
	})
	return ok
}

// ParallelOffset computes the parallel curve of p at the signed distance
// offset: positive offsets to the left of the direction of travel, which
// shrinks a counter-clockwise closed polyline. The result may be empty
// (the polyline collapsed entirely), a single polyline, or several
// disjoint ones. The input is never modified.
func ParallelOffset[T Real](p *Polyline[T], offset T) []Polyline[T] {
	if p.Size() < 2 {
		return nil
	}
	if abs(offset) < realThreshold[T]() {
		out := PruneSingularities(*p, realThreshold[T]())
		return []Polyline[T]{out}
	}
	source := PruneSingularities(*p, realThreshold[T]())
	if source.Size() < 2 {
		return nil
	}

	rawOffset := createRawOffsetPline(&source, offset)
	if rawOffset.Size() < 2 {
		return nil
	}

	index := CreateApproxSpatialIndex(&rawOffset)
	selfIntrs := AllSelfIntersects(&rawOffset, index)
	logger().Debug("cavc: parallel offset", "segments", source.SegmentCount(),
		"rawVertexes", rawOffset.Size(), "selfIntersects", len(selfIntrs))

	if len(selfIntrs) == 0 {
		if offsetSliceIsValid(&rawOffset, &source, offset) {
			return []Polyline[T]{rawOffset}
		}
		return nil
	}

	positions := make(map[int][]Vector2[T])
	for _, intr := range selfIntrs {
		positions[intr.SIndex1] = append(positions[intr.SIndex1], intr.Pos)
		positions[intr.SIndex2] = append(positions[intr.SIndex2], intr.Pos)
	}
	slices := slicesAtSites(&rawOffset, positions)

	valid := slices[:0]
	for _, s := range slices {
		if offsetSliceIsValid(&s.pline, &source, offset) {
			valid = append(valid, s)
		} else {
			logger().Debug("cavc: rejected offset slice", "startSeg", s.intrStartIndex,
				"endSeg", s.intrEndIndex)
		}
	}

	results, _ := stitchSlices(valid, sliceJoinThreshold[T](), !p.Closed)
	return results
}
