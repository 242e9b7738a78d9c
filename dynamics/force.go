// Copyright 2024 The Vortex2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamics

import "github.com/vortex2d/engine/math2d"

// LinearForceGenerator contributes a linear acceleration to a body each
// step, grounded on the teacher's ForceField interface
// (experimental/physics/forcefield.go) but generalized to the spec's
// named generator variants (gravity, linear drag) instead of arbitrary
// position-dependent fields.
type LinearForceGenerator interface {
	ApplyLinear(b *Body) math2d.Vector2
}

// AngularForceGenerator is the rotational analogue of LinearForceGenerator.
type AngularForceGenerator interface {
	ApplyAngular(b *Body) float64
}

// Gravity applies a constant linear acceleration to every eligible body,
// the 2D analogue of the teacher's ConstantForceField.
type Gravity struct {
	G math2d.Vector2
}

// NewGravity returns a Gravity generator with the given acceleration.
func NewGravity(g math2d.Vector2) *Gravity { return &Gravity{G: g} }

// Set mutates the gravity vector in place so a World can re-publish
// runtime updates without replacing the generator (spec.md §4.3).
func (g *Gravity) Set(v math2d.Vector2) { g.G = v }

// ApplyLinear returns the configured gravity vector unconditionally; the
// ForceManager is responsible for skipping ineligible bodies.
func (g *Gravity) ApplyLinear(b *Body) math2d.Vector2 { return g.G }

// LinearDrag applies a linear acceleration opposing the body's current
// velocity, scaled component-wise by K.
type LinearDrag struct {
	K math2d.Vector2
}

// NewLinearDrag returns a LinearDrag generator with the given coefficients.
func NewLinearDrag(k math2d.Vector2) *LinearDrag { return &LinearDrag{K: k} }

// Set mutates the drag coefficients in place.
func (d *LinearDrag) Set(v math2d.Vector2) { d.K = v }

func (d *LinearDrag) ApplyLinear(b *Body) math2d.Vector2 {
	return math2d.Vector2{X: -d.K.X * b.V.X, Y: -d.K.Y * b.V.Y}
}

// AngularDrag applies an angular acceleration opposing the body's
// current angular velocity, scaled by K.
type AngularDrag struct {
	K float64
}

// NewAngularDrag returns an AngularDrag generator with the given coefficient.
func NewAngularDrag(k float64) *AngularDrag { return &AngularDrag{K: k} }

// Set mutates the drag coefficient in place.
func (d *AngularDrag) Set(k float64) { d.K = k }

func (d *AngularDrag) ApplyAngular(b *Body) float64 {
	return -d.K * b.Omega
}

// ForceManager is the registry of global force generators applied to
// every eligible body each step (spec.md §4.3).
type ForceManager struct {
	linear  []LinearForceGenerator
	angular []AngularForceGenerator
}

// NewForceManager constructs an empty ForceManager.
func NewForceManager() *ForceManager {
	return &ForceManager{}
}

// AddLinearForce registers a linear force generator.
func (fm *ForceManager) AddLinearForce(g LinearForceGenerator) {
	fm.linear = append(fm.linear, g)
}

// AddAngularForce registers an angular force generator.
func (fm *ForceManager) AddAngularForce(g AngularForceGenerator) {
	fm.angular = append(fm.angular, g)
}

// ApplyLinearForce accumulates every registered linear generator's
// contribution into b.LinearAcc. A Static body never translates
// (StaticPosition or StaticTotal), so it is skipped entirely.
func (fm *ForceManager) ApplyLinearForce(b *Body) {
	if b.Static == StaticPosition || b.Static == StaticTotal {
		return
	}
	for _, g := range fm.linear {
		b.LinearAcc = b.LinearAcc.Add(g.ApplyLinear(b))
	}
}

// ApplyAngularForce accumulates every registered angular generator's
// contribution into b.AngularAcc. A StaticTotal body never rotates, but
// a StaticPosition body may (spec.md §3's invariants), so only
// StaticTotal is skipped.
func (fm *ForceManager) ApplyAngularForce(b *Body) {
	if b.Static == StaticTotal {
		return
	}
	for _, g := range fm.angular {
		b.AngularAcc += g.ApplyAngular(b)
	}
}

// Clear resets a body's force accumulators to zero after integration.
func (fm *ForceManager) Clear(b *Body) {
	b.LinearAcc = math2d.Zero
	b.AngularAcc = 0
	b.Torque = 0
}
