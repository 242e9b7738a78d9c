// Copyright 2024 The Vortex2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamics

import "github.com/vortex2d/engine/math2d"

// TriangleVertices is a convenience constructor for an isosceles triangle
// of the given base and height, centered at its centroid, local-frame,
// CCW-wound: apex up, base at the bottom. Hosts that need an arbitrary
// triangle can still pass ShapeConfig.Vertices directly to NewBody.
func TriangleVertices(base, height float64) []math2d.Vector2 {
	hb := base / 2
	// the centroid of a triangle sits 1/3 of the way from base to apex;
	// shift both base vertices down by that much so Body.Pos lands on it.
	cy := height / 3
	return []math2d.Vector2{
		{X: 0, Y: cy - height},
		{X: hb, Y: cy},
		{X: -hb, Y: cy},
	}
}
