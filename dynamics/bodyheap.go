// Copyright 2024 The Vortex2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamics

// BodyHeap stores the live dynamic (non-boundary) bodies of a World.
// Ordering is insertion-stable within a step, so callback ordering stays
// reproducible (spec.md §9, "Deterministic ordering").
type BodyHeap struct {
	order []BodyID
	index map[BodyID]int
	bodies map[BodyID]*Body
}

// NewBodyHeap constructs an empty BodyHeap.
func NewBodyHeap() *BodyHeap {
	return &BodyHeap{
		index:  make(map[BodyID]int),
		bodies: make(map[BodyID]*Body),
	}
}

// Append inserts body. If this is the body's first insertion (State ==
// StateInit), its geometry and mass data are computed now and it
// transitions to StateSimulate. Returns a ConfigError if the body is
// degenerate (spec.md §4.1, §7).
func (h *BodyHeap) Append(b *Body) error {
	if _, exists := h.index[b.ID]; exists {
		return nil
	}
	if b.State == StateInit {
		if err := b.initBodyData(); err != nil {
			return err
		}
		b.State = StateSimulate
	}
	h.index[b.ID] = len(h.order)
	h.order = append(h.order, b.ID)
	h.bodies[b.ID] = b
	return nil
}

// Remove deletes the body with the given id, if present. Any in-flight
// contact referencing it is not explicitly aborted: contacts are
// transient per spec.md §3, so the next step's broad phase simply omits
// the removed body. O(n) shift, acceptable per spec.md §4.1 — it keeps
// the remaining bodies' relative insertion order intact.
func (h *BodyHeap) Remove(id BodyID) {
	pos, ok := h.index[id]
	if !ok {
		return
	}
	h.order = append(h.order[:pos], h.order[pos+1:]...)
	for i := pos; i < len(h.order); i++ {
		h.index[h.order[i]] = i
	}
	delete(h.index, id)
	delete(h.bodies, id)
}

// Get returns the body with the given id, if present.
func (h *BodyHeap) Get(id BodyID) (*Body, bool) {
	b, ok := h.bodies[id]
	return b, ok
}

// Heap returns the live bodies in stable insertion order. The returned
// slice is a snapshot; mutating it does not affect the heap.
func (h *BodyHeap) Heap() []*Body {
	out := make([]*Body, 0, len(h.order))
	for _, id := range h.order {
		out = append(out, h.bodies[id])
	}
	return out
}

// Len returns the number of live bodies.
func (h *BodyHeap) Len() int {
	return len(h.order)
}

// Clear removes all bodies.
func (h *BodyHeap) Clear() {
	h.order = nil
	h.index = make(map[BodyID]int)
	h.bodies = make(map[BodyID]*Body)
}
