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

// Real is the scalar type the whole kernel is generic over. All geometric
// types and operations accept either float32 or float64 (or named types
// derived from them).
type Real interface {
	~float32 | ~float64
}

// realThreshold is the default comparison threshold for scalar values.
// Two values closer than this are considered equal.
func realThreshold[T Real]() T { return T(1e-8) }

// sliverThreshold is the coarser threshold used to reject sliver geometry
// (degenerate loops and near-zero-length segments produced by offsetting
// and combining).
func sliverThreshold[T Real]() T { return T(1e-6) }

// offsetDistThreshold is the relative tolerance of the parallel offset
// distance filter: slice samples may come up to |delta|*offsetDistThreshold
// short of the offset distance before being rejected. Join arc samples sit
// at exactly the offset distance and must survive rounding error.
func offsetDistThreshold[T Real]() T { return T(1e-4) }

// sliceJoinThreshold is the endpoint matching tolerance used when
// stitching slices back into polylines.
func sliceJoinThreshold[T Real]() T { return T(1e-4) }

func pi[T Real]() T  { return T(math.Pi) }
func tau[T Real]() T { return T(2 * math.Pi) }

// thin generic wrappers over the float64 math routines
func sqrt[T Real](x T) T        { return T(math.Sqrt(float64(x))) }
func sin[T Real](x T) T         { return T(math.Sin(float64(x))) }
func cos[T Real](x T) T         { return T(math.Cos(float64(x))) }
func atan[T Real](x T) T        { return T(math.Atan(float64(x))) }
func atan2[T Real](y, x T) T    { return T(math.Atan2(float64(y), float64(x))) }
func acos[T Real](x T) T        { return T(math.Acos(float64(x))) }
func abs[T Real](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// fuzzyEqual reports whether a and b are equal within eps.
func fuzzyEqual[T Real](a, b, eps T) bool {
	return abs(a-b) < eps
}

// fuzzyInRange reports whether minV <= v <= maxV with eps slack on both ends.
func fuzzyInRange[T Real](minV, v, maxV, eps T) bool {
	return v+eps > minV && v < maxV+eps
}

// normalizeRadians maps an angle to the range [0, 2pi).
func normalizeRadians[T Real](angle T) T {
	if angle >= 0 && angle < tau[T]() {
		return angle
	}
	a := T(math.Mod(float64(angle), 2*math.Pi))
	if a < 0 {
		a += tau[T]()
	}
	return a
}

// deltaAngle returns the signed difference between two angles, normalized
// to (-pi, pi].
func deltaAngle[T Real](a1, a2 T) T {
	diff := normalizeRadians(a2 - a1)
	if diff > pi[T]() {
		diff -= tau[T]()
	}
	return diff
}

// angleIsWithinSweep reports whether testAngle lies on the arc starting at
// startAngle and sweeping sweepAngle radians (positive = counter-clockwise).
func angleIsWithinSweep[T Real](startAngle, sweepAngle, testAngle T) bool {
	if sweepAngle < 0 {
		return angleIsBetween(startAngle+sweepAngle, startAngle, testAngle)
	}
	return angleIsBetween(startAngle, startAngle+sweepAngle, testAngle)
}

// angleIsBetween reports whether testAngle lies within the counter-clockwise
// sweep from startAngle to endAngle.
func angleIsBetween[T Real](startAngle, endAngle, testAngle T) bool {
	endSweep := normalizeRadians(endAngle - startAngle)
	testSweep := normalizeRadians(testAngle - startAngle)
	eps := realThreshold[T]()
	return testSweep < endSweep+eps
}
