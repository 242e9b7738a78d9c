// Copyright 2024 The Vortex2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamics

import "github.com/vortex2d/engine/math2d"

// rectangleVertices returns the local-frame, CCW-wound vertex list for an
// axis-aligned rectangle of the given width and height, centered at the
// origin (so Body.Pos is the rectangle's center, matching Circle's
// center-based convention).
func rectangleVertices(width, height float64) []math2d.Vector2 {
	hw, hh := width/2, height/2
	return []math2d.Vector2{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
	}
}
