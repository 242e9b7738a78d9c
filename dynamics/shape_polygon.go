// Copyright 2024 The Vortex2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamics

import (
	"math"

	"github.com/vortex2d/engine/math2d"
)

// polygonSignedArea returns the shoelace-formula signed area of a convex
// polygon given in local-frame vertex order. Positive for CCW winding.
func polygonSignedArea(verts []math2d.Vector2) float64 {
	sum := 0.0
	n := len(verts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += verts[i].X*verts[j].Y - verts[j].X*verts[i].Y
	}
	return sum / 2
}

// polygonArea returns the unsigned area of the polygon.
func polygonArea(verts []math2d.Vector2) float64 {
	return math.Abs(polygonSignedArea(verts))
}

// polygonCentroid returns the centroid of a convex polygon in its local
// frame, using the standard signed-area-weighted vertex formula.
func polygonCentroid(verts []math2d.Vector2) math2d.Vector2 {
	a := polygonSignedArea(verts)
	if a == 0 {
		var sum math2d.Vector2
		for _, v := range verts {
			sum = sum.Add(v)
		}
		return sum.Scale(1 / float64(len(verts)))
	}
	var cx, cy float64
	n := len(verts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := verts[i].X*verts[j].Y - verts[j].X*verts[i].Y
		cx += (verts[i].X + verts[j].X) * cross
		cy += (verts[i].Y + verts[j].Y) * cross
	}
	factor := 1 / (6 * a)
	return math2d.Vector2{X: cx * factor, Y: cy * factor}
}

// polygonRotationInertia returns the moment of inertia of a uniform
// convex polygon about its own centroid, via the standard
// signed-triangle decomposition over its vertices (spec.md §3).
func polygonRotationInertia(verts []math2d.Vector2, centroid math2d.Vector2, mass, area float64) float64 {
	if area <= 0 {
		return 0
	}
	density := mass / area
	var numer float64
	n := len(verts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vi := verts[i].Sub(centroid)
		vj := verts[j].Sub(centroid)
		cross := vi.Cross(vj)
		term := vi.Dot(vi) + vi.Dot(vj) + vj.Dot(vj)
		numer += cross * term
	}
	return math.Abs(density / 12.0 * numer)
}

// polygonEdgeNormals returns the outward unit normal of each edge
// (world-space vertices, CCW winding), used as SAT candidate axes.
func polygonEdgeNormals(verts []math2d.Vector2) []math2d.Vector2 {
	n := len(verts)
	normals := make([]math2d.Vector2, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		edge := verts[j].Sub(verts[i])
		normals[i] = math2d.Vector2{X: edge.Y, Y: -edge.X}.Normalize()
	}
	return normals
}

// projectPolygon projects verts onto axis, returning [min, max].
func projectPolygon(verts []math2d.Vector2, axis math2d.Vector2) (min, max float64) {
	min = axis.Dot(verts[0])
	max = min
	for _, v := range verts[1:] {
		p := axis.Dot(v)
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}
	return min, max
}
