// Copyright 2024 The Vortex2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamics

import (
	"math"

	"github.com/vortex2d/engine/math2d"
)

// calcArea dispatches to the shape-specific area formula.
func (b *Body) calcArea() float64 {
	switch b.Kind {
	case Circle:
		return circleArea(b.Radius)
	case boundaryKind:
		return math.Inf(1)
	default:
		return polygonArea(b.LocalVertices)
	}
}

// Centroid returns this body's current world-space centroid (spec.md §3's
// live Body attribute). It is computed fresh from Pos/Rot on every call
// rather than cached: unlike BoundRect, which updateBoundRect refreshes
// incrementally alongside every Pos/Rot change, a cached centroid would
// need the same treatment at every one of those call sites to avoid
// going stale, for a value cheap enough (one polygonCentroid pass over a
// handful of vertices) to just recompute. Circle and the polygon-like
// shapes are both authored so that Body.Pos already sits at (or very
// near) the shape's local centroid, so the world centroid is Pos plus
// the local-frame centroid rotated into world space.
func (b *Body) Centroid() math2d.Vector2 {
	switch b.Kind {
	case Circle, boundaryKind:
		return b.Pos
	default:
		local := polygonCentroid(b.LocalVertices)
		return local.Rotate(Deg2Rad(b.Rot)).Add(b.Pos)
	}
}

// calcRotationInertia dispatches to the shape-specific moment-of-inertia
// formula.
func (b *Body) calcRotationInertia() float64 {
	switch b.Kind {
	case Circle:
		return circleRotationInertia(b.Mass, b.Radius)
	case boundaryKind:
		return 0
	default:
		return polygonRotationInertia(b.LocalVertices, polygonCentroid(b.LocalVertices), b.Mass, b.Area)
	}
}
