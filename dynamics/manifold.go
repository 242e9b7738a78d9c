// Copyright 2024 The Vortex2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamics

import "github.com/vortex2d/engine/math2d"

// Manifold is a transient contact description between two bodies,
// produced by the narrow phase and consumed within the same step by the
// ContactResolver (spec.md §3). A world Boundary participates as BodyA
// or BodyB like any other static body (see boundary.go).
type Manifold struct {
	BodyA       *Body
	BodyB       *Body
	Normal      math2d.Vector2 // unit normal, points from A to B
	Penetration float64        // > 0
	Points      []math2d.Vector2
}

// pairKey identifies an unordered pair of bodies, used to track
// previously-colliding pairs across steps for collided/separated event
// emission (spec.md §4.6.3).
type pairKey struct {
	a, b BodyID
}

func newPairKey(a, b *Body) pairKey {
	if lessID(b.ID, a.ID) {
		a, b = b, a
	}
	return pairKey{a: a.ID, b: b.ID}
}

func lessID(a, b BodyID) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
