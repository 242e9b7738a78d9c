// Copyright 2024 The Vortex2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamics

// broadphasePair is a candidate pair surfaced by the broad phase for
// narrow-phase testing.
type broadphasePair struct {
	A, B *Body
}

// broadPhase builds candidate pairs from bodies and boundaries by AABB
// overlap, mirroring the teacher's naive O(n^2) sweep
// (experimental/physics/broadphase.go's FindCollisionPairs) generalized
// to also pair every body against every boundary. Pairs where both
// participants are Total-static are skipped (spec.md §4.5(c)).
func broadPhase(bodies []*Body, boundaries []*Body) []broadphasePair {
	var pairs []broadphasePair

	for i, a := range bodies {
		for _, b := range bodies[i+1:] {
			if needNarrowphaseTest(a, b) && a.BoundRect.Overlaps(b.BoundRect) {
				pairs = append(pairs, broadphasePair{A: a, B: b})
			}
		}
	}
	for _, a := range bodies {
		for _, wall := range boundaries {
			if needNarrowphaseTest(a, wall) && a.BoundRect.Overlaps(wall.BoundRect) {
				pairs = append(pairs, broadphasePair{A: a, B: wall})
			}
		}
	}
	return pairs
}

// needNarrowphaseTest reports whether a pair is worth narrow-phase
// testing: skip when both bodies are Total-static (spec.md §4.5(c)).
// Sleeping bodies are always tested (spec.md §4.5(b) and §9's Open
// Question resolution): a contact can still wake them.
func needNarrowphaseTest(a, b *Body) bool {
	return !(a.Static == StaticTotal && b.Static == StaticTotal)
}
