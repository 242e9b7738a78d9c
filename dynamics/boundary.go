// Copyright 2024 The Vortex2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamics

import (
	"math"

	"github.com/google/uuid"
	"github.com/vortex2d/engine/math2d"
)

// Side names one of the (up to) four world walls.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

func (s Side) String() string {
	switch s {
	case Top:
		return "Top"
	case Right:
		return "Right"
	case Bottom:
		return "Bottom"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// NewBoundary builds the half-plane Body for the given side of a
// width x height viewport. The normal always points into the world
// interior and the plane passes through the corresponding viewport edge
// (spec.md §3's Boundary invariants). Boundaries are rigid: InverseMass
// and InverseRotInertia are always zero and they are never integrated.
// Their Restitution is 1, so a contact's restitution (the minimum of the
// two bodies') is the other body's own.
//
// The returned Body is the argument spec.md §6's polymorphic
// `append(body_or_list)` expects when a host wants to add or replace a
// single named wall explicitly (e.g. "add BoundaryBottom", spec.md §8
// scenario 2) instead of taking NewWorld's default four: pass it to
// World.Append, which dispatches on Kind to BoundaryManager rather than
// BodyHeap.
func NewBoundary(side Side, width, height float64) *Body {
	b := &Body{
		ID:           uuid.New(),
		Kind:         boundaryKind,
		Static:       StaticTotal,
		State:        StateSimulate,
		Restitution:  1,
		BoundarySide: side,
	}
	switch side {
	case Top:
		b.BoundaryNormal = math2d.Vector2{X: 0, Y: 1}
		b.Pos = math2d.Vector2{X: width / 2, Y: 0}
	case Bottom:
		b.BoundaryNormal = math2d.Vector2{X: 0, Y: -1}
		b.Pos = math2d.Vector2{X: width / 2, Y: height}
	case Left:
		b.BoundaryNormal = math2d.Vector2{X: 1, Y: 0}
		b.Pos = math2d.Vector2{X: 0, Y: height / 2}
	case Right:
		b.BoundaryNormal = math2d.Vector2{X: -1, Y: 0}
		b.Pos = math2d.Vector2{X: width, Y: height / 2}
	}
	b.BoundaryOffset = b.BoundaryNormal.Dot(b.Pos)
	b.BoundRect = b.boundaryBoundRect()
	return b
}

// boundarySignedDistance returns the signed distance of p from the
// boundary plane along its normal; positive means p is inside the world.
func (b *Body) boundarySignedDistance(p math2d.Vector2) float64 {
	return p.Dot(b.BoundaryNormal) - b.BoundaryOffset
}

// boundaryBoundRect returns a box covering the half-plane's full extent.
// Boundaries are tested against every body regardless of broad-phase
// overlap margin (there are at most four of them), so an infinite AABB
// keeps the broad phase simple and correct without special-casing it.
func (b *Body) boundaryBoundRect() math2d.BoundRect {
	inf := math.Inf(1)
	return math2d.BoundRect{
		Min: math2d.Vector2{X: -inf, Y: -inf},
		Max: math2d.Vector2{X: inf, Y: inf},
	}
}

// BoundaryManager owns the up-to-four named world walls.
type BoundaryManager struct {
	width, height float64
	boundaries    map[Side]*Body
	order         []Side
}

// NewBoundaryManager constructs all four boundaries for a width x height
// viewport.
func NewBoundaryManager(width, height float64) *BoundaryManager {
	bm := &BoundaryManager{
		width:      width,
		height:     height,
		boundaries: make(map[Side]*Body, 4),
	}
	for _, s := range []Side{Top, Right, Bottom, Left} {
		bm.boundaries[s] = NewBoundary(s, width, height)
		bm.order = append(bm.order, s)
	}
	return bm
}

// Get returns the boundary for the given side, if present.
func (bm *BoundaryManager) Get(side Side) (*Body, bool) {
	b, ok := bm.boundaries[side]
	return b, ok
}

// All returns the live boundaries in stable (Top, Right, Bottom, Left)
// order, for the collision broad phase.
func (bm *BoundaryManager) All() []*Body {
	out := make([]*Body, 0, len(bm.order))
	for _, s := range bm.order {
		out = append(out, bm.boundaries[s])
	}
	return out
}

// Put inserts or replaces the named wall b.BoundarySide with b, the
// BoundaryManager side of spec.md §6's polymorphic append: a host that
// builds its own Boundary via NewBoundary and passes it to World.Append
// lands here instead of in the BodyHeap.
func (bm *BoundaryManager) Put(b *Body) {
	side := b.BoundarySide
	if _, exists := bm.boundaries[side]; !exists {
		bm.order = append(bm.order, side)
	}
	bm.boundaries[side] = b
}

// Remove drops the named wall, if present.
func (bm *BoundaryManager) Remove(side Side) {
	if _, exists := bm.boundaries[side]; !exists {
		return
	}
	delete(bm.boundaries, side)
	for i, s := range bm.order {
		if s == side {
			bm.order = append(bm.order[:i], bm.order[i+1:]...)
			break
		}
	}
}

// Resize rebuilds every boundary currently present for a new viewport
// size; a side that was removed stays removed.
func (bm *BoundaryManager) Resize(width, height float64) {
	bm.width, bm.height = width, height
	for _, s := range bm.order {
		bm.boundaries[s] = NewBoundary(s, width, height)
	}
}
