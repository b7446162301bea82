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
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"github.com/NorthBoundWisdom/CavalierContours/testcases"
)

// gearPline builds a closed polyline alternating line and arc segments
// around a circle, sized by tooth count.
func gearPline(teeth int) Polyline[float64] {
	p := Polyline[float64]{Closed: true}
	outer := 100.0
	inner := 85.0
	for i := 0; i < teeth; i++ {
		a0 := 2 * math.Pi * float64(i) / float64(teeth)
		a1 := a0 + math.Pi/float64(teeth)
		p.AddVertex(outer*math.Cos(a0), outer*math.Sin(a0), 0.2)
		p.AddVertex(inner*math.Cos(a1), inner*math.Sin(a1), 0)
	}
	return p
}

func BenchmarkSpatialIndexBuild(b *testing.B) {
	for _, teeth := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("%dteeth", teeth), func(b *testing.B) {
			p := gearPline(teeth)
			b.ReportAllocs()
			for b.Loop() {
				CreateApproxSpatialIndex(&p)
			}
		})
	}
}

func BenchmarkSpatialIndexQuery(b *testing.B) {
	p := gearPline(1000)
	index := CreateApproxSpatialIndex(&p)
	var results, stack []int
	b.ReportAllocs()
	for b.Loop() {
		index.Query(-10, -10, 10, 10, &results, &stack)
	}
}

func BenchmarkGetWindingNumber(b *testing.B) {
	p := gearPline(100)
	pt := V2(3.0, 7.0)
	b.ReportAllocs()
	for b.Loop() {
		GetWindingNumber(&p, pt)
	}
}

func BenchmarkClosestPoint(b *testing.B) {
	p := gearPline(100)
	pt := V2(150.0, 40.0)
	b.ReportAllocs()
	for b.Loop() {
		ClosestPoint(&p, pt)
	}
}

func BenchmarkParallelOffset(b *testing.B) {
	for _, teeth := range []int{10, 50} {
		b.Run(fmt.Sprintf("%dteeth", teeth), func(b *testing.B) {
			p := gearPline(teeth)
			b.ReportAllocs()
			for b.Loop() {
				ParallelOffset(&p, 2.0)
			}
		})
	}
}

func BenchmarkCombine(b *testing.B) {
	cv, rv := testcases.SimpleBoolCase()
	circle := plineFromCase(cv, true)
	rect := plineFromCase(rv, true)
	b.ReportAllocs()
	for b.Loop() {
		CombinePlines(&circle, &rect, CombineUnion)
	}
}

// BenchmarkVectorFill measures x/image/vector filling the same flattened
// geometry, as an external point of comparison for the winding and
// rasterization cross-checks.
func BenchmarkVectorFill(b *testing.B) {
	p := plineFromCase(testcases.Circle(100, 128, 128, 0, false), true)
	flattened := ConvertArcsToLines(p, 0.25)
	dst := image.NewAlpha(image.Rect(0, 0, 256, 256))
	src := image.NewUniform(color.Alpha{A: 255})
	b.ReportAllocs()
	for b.Loop() {
		r := vector.NewRasterizer(256, 256)
		r.MoveTo(float32(flattened.Vertexes[0].X), float32(flattened.Vertexes[0].Y))
		for _, v := range flattened.Vertexes[1:] {
			r.LineTo(float32(v.X), float32(v.Y))
		}
		r.ClosePath()
		r.Draw(dst, dst.Bounds(), src, image.Point{})
	}
}
