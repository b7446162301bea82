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

// Package cavc is a 2D contour geometry kernel built around polylines
// whose segments may be circular arcs, encoded per vertex as a bulge
// value (tan of a quarter of the arc's sweep angle).
//
// The package provides segment-level intersection primitives, polyline
// queries (extents, area, path length, winding number, closest point), a
// packed Hilbert R-tree spatial index over segment bounding boxes,
// parallel (offset) curve generation, and boolean combination of closed
// polylines (union, exclude, intersect, xor).
//
// All geometric types are generic over the scalar type (float32 or
// float64). Operations are pure: inputs are read-only unless documented
// otherwise, results are freshly constructed, and a finished spatial
// index may be shared across goroutines provided each goroutine owns its
// query scratch buffers.
package cavc
