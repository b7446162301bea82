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

// Package testcases provides canonical polyline geometry shared by the
// test suites. Vertices are raw (x, y, bulge) triples so the package has
// no dependency on the geometry kernel itself.
package testcases

import "math"

// Vertex is an (x, y, bulge) triple.
type Vertex struct {
	X, Y, Bulge float64
}

// SimpleRectangle is the unit square, counter-clockwise.
func SimpleRectangle() []Vertex {
	return []Vertex{
		{0, 0, 0},
		{1, 0, 0},
		{1, 1, 0},
		{0, 1, 0},
	}
}

// PositiveCircle is a full circle of radius 5 centered at (5, 0), built
// from two counter-clockwise half arcs.
func PositiveCircle() []Vertex {
	return []Vertex{
		{0, 0, 1},
		{10, 0, 1},
	}
}

// NegativeCircle is the same circle traversed clockwise.
func NegativeCircle() []Vertex {
	return []Vertex{
		{0, 0, -1},
		{10, 0, -1},
	}
}

// Circle builds a two-vertex full circle with the given radius and
// center; vertexRotAngle rotates where the two vertices sit on the
// circle, and isCW selects the traversal direction.
func Circle(radius, cx, cy, vertexRotAngle float64, isCW bool) []Vertex {
	bulge := 1.0
	if isCW {
		bulge = -1.0
	}
	return []Vertex{
		{cx + radius*math.Cos(vertexRotAngle), cy + radius*math.Sin(vertexRotAngle), bulge},
		{cx + radius*math.Cos(vertexRotAngle+math.Pi), cy + radius*math.Sin(vertexRotAngle+math.Pi), bulge},
	}
}

// QuarterArcCase is an open clockwise quarter arc of radius 1 from (1, 0)
// to (0, -1).
func QuarterArcCase() []Vertex {
	return []Vertex{
		{1, 0, -0.414213562373095},
		{0, -1, 0},
	}
}

// FigureEightCase is a self-intersecting closed polyline of four half
// arcs forming two lobes.
func FigureEightCase() []Vertex {
	return []Vertex{
		{0, 0, 1},
		{2, 0, 1},
		{0, 0, -1},
		{-2, 0, -1},
	}
}

// ClosedLineArcCase mixes line segments with a closing arc.
func ClosedLineArcCase() []Vertex {
	return []Vertex{
		{5, 5, 0},
		{3, 9, 0},
		{0, 10, 0},
		{-4, 8, 0},
		{-5, 5, 1},
	}
}

// OffsetCase is a torture case for parallel offsetting: mixed lines and
// arcs with concave pockets that collapse under large offsets.
func OffsetCase() []Vertex {
	return []Vertex{
		{0, 25, 1},
		{0, 0, 0},
		{2, 0, 1},
		{10, 0, -0.5},
		{8, 9, 0.374794619217547},
		{21, 0, 0},
		{23, 0, 1},
		{32, 0, -0.5},
		{28, 0, 0.5},
		{39, 21, 0},
		{28, 12, 0.5},
	}
}

// SimpleBoolCase returns the circle and rectangle pair used by the
// combine tests: a radius-5 circle centered at (5, 1) and the rectangle
// x in [3, 6], y in [-10, 10], both counter-clockwise.
func SimpleBoolCase() ([]Vertex, []Vertex) {
	circle := []Vertex{
		{0, 1, 1},
		{10, 1, 1},
	}
	rectangle := []Vertex{
		{3, -10, 0},
		{6, -10, 0},
		{6, 10, 0},
		{3, 10, 0},
	}
	return circle, rectangle
}

// ReverseDirection returns the vertex sequence traversed the other way:
// order reversed, bulges shifted one vertex back and negated.
func ReverseDirection(vertices []Vertex) []Vertex {
	result := make([]Vertex, len(vertices))
	copy(result, vertices)
	if len(result) < 2 {
		return result
	}
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	firstBulge := result[0].Bulge
	for i := 1; i < len(result); i++ {
		result[i-1].Bulge = -result[i].Bulge
	}
	result[len(result)-1].Bulge = -firstBulge
	return result
}
