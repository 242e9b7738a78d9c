// Copyright 2024 The Vortex2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamics

import (
	"math"

	"github.com/vortex2d/engine/math2d"
)

// pairBodies remembers the two bodies behind a pairKey so that a
// separated transition, detected once the pair no longer appears among
// this step's manifolds, can still reach both bodies' callbacks.
type pairBodies struct {
	A, B *Body
}

// ContactResolver turns a step's contact manifolds into positional
// correction and impulses, and fires collided/separated events by
// tracking which pairKeys were touching last step (spec.md §4.6.3).
// Single-pass: contact points accumulate impulses in insertion order with
// no iterative solver (spec.md §4.6's explicit non-goal).
type ContactResolver struct {
	touching map[pairKey]pairBodies
}

// NewContactResolver constructs an empty ContactResolver.
func NewContactResolver() *ContactResolver {
	return &ContactResolver{touching: make(map[pairKey]pairBodies)}
}

// Resolve applies positional correction and impulses for every manifold,
// then emits collided/separated callbacks for this step's transitions.
// Panics from user callbacks are recovered and reported through report.
func (r *ContactResolver) Resolve(manifolds []*Manifold, report func(error)) {
	current := make(map[pairKey]pairBodies, len(manifolds))

	for _, m := range manifolds {
		wakeOnContact(m.BodyA)
		wakeOnContact(m.BodyB)

		resolvePositional(m)
		resolveImpulses(m)

		key := newPairKey(m.BodyA, m.BodyB)
		current[key] = pairBodies{A: m.BodyA, B: m.BodyB}
		if _, wasTouching := r.touching[key]; !wasTouching {
			fireCollided(m.BodyA, m.BodyB, report)
		}
	}

	for key, pair := range r.touching {
		if _, stillTouching := current[key]; !stillTouching {
			fireSeparated(pair.A, report)
			fireSeparated(pair.B, report)
		}
	}

	r.touching = current
}

func fireCollided(a, b *Body, report func(error)) {
	invokeCallback(report, "collided", func() {
		if a.Collided != nil {
			a.Collided(b)
		}
	})
	invokeCallback(report, "collided", func() {
		if b.Collided != nil {
			b.Collided(a)
		}
	})
}

func fireSeparated(b *Body, report func(error)) {
	invokeCallback(report, "separated", func() {
		if b != nil && b.Separated != nil {
			b.Separated()
		}
	})
}

func wakeOnContact(b *Body) {
	if b.State == StateSleep {
		b.State = StateSimulate
		b.resetMotionSamples()
		if b.OnWake != nil {
			b.OnWake()
		}
	}
}

// resolvePositional shifts A and B apart along the normal proportional to
// inverse mass (spec.md §4.6.1). Skipped entirely when both are
// infinitely massive (inverseMass == 0).
func resolvePositional(m *Manifold) {
	a, b := m.BodyA, m.BodyB
	totalInv := a.InverseMass + b.InverseMass
	if totalInv == 0 {
		return
	}
	correction := m.Normal.Scale(m.Penetration)
	if a.InverseMass > 0 {
		a.SetPos(a.Pos.Sub(correction.Scale(a.InverseMass / totalInv)))
	}
	if b.InverseMass > 0 {
		b.SetPos(b.Pos.Add(correction.Scale(b.InverseMass / totalInv)))
	}
}

// resolveImpulses applies the normal and friction impulse for each
// contact point in insertion order (spec.md §4.6.2).
func resolveImpulses(m *Manifold) {
	a, b := m.BodyA, m.BodyB
	n := m.Normal
	count := float64(len(m.Points))
	if count == 0 {
		return
	}

	centroidA := a.Centroid()
	centroidB := b.Centroid()
	e := math.Min(a.Restitution, b.Restitution)
	mu := math.Sqrt(a.Friction * b.Friction)

	for _, point := range m.Points {
		rA := point.Sub(centroidA)
		rB := point.Sub(centroidB)

		velA := a.V.Add(math2d.CrossScalar(a.Omega, rA))
		velB := b.V.Add(math2d.CrossScalar(b.Omega, rB))
		vRel := velB.Sub(velA)

		vN := vRel.Dot(n)
		if vN > 0 {
			continue
		}

		rACrossN := rA.Cross(n)
		rBCrossN := rB.Cross(n)
		k := a.InverseMass + b.InverseMass +
			rACrossN*rACrossN*a.InverseRotInertia +
			rBCrossN*rBCrossN*b.InverseRotInertia
		if k == 0 {
			continue
		}

		j := -(1 + e) * vN / k / count
		impulse := n.Scale(j)
		applyImpulse(a, rA, impulse.Negate())
		applyImpulse(b, rB, impulse)

		tangent := vRel.Sub(n.Scale(vN)).Normalize()
		vT := vRel.Dot(tangent)
		jT := -vT / k / count
		maxFriction := math.Abs(j) * mu
		if jT > maxFriction {
			jT = maxFriction
		} else if jT < -maxFriction {
			jT = -maxFriction
		}
		frictionImpulse := tangent.Scale(jT)
		applyImpulse(a, rA, frictionImpulse.Negate())
		applyImpulse(b, rB, frictionImpulse)
	}
}

// applyImpulse adds impulse (applied at r relative to the body's
// centroid) to a body's linear and angular velocity, scaled by its
// inverse mass / inverse rotational inertia.
func applyImpulse(b *Body, r math2d.Vector2, impulse math2d.Vector2) {
	if b.InverseMass > 0 {
		b.V = b.V.Add(impulse.Scale(b.InverseMass))
	}
	if b.InverseRotInertia > 0 {
		b.Omega += r.Cross(impulse) * b.InverseRotInertia
	}
}

func invokeCallback(report func(error), name string, fn func()) {
	defer func() {
		if rec := recover(); rec != nil {
			if report != nil {
				report(&UserCallbackError{Callback: name, Cause: rec})
			}
		}
	}()
	fn()
}
