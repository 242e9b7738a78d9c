// Copyright 2024 The Vortex2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamics

import (
	"fmt"

	"github.com/vortex2d/engine/math2d"
)

// WorldConfig carries the options recognized by World construction
// (spec.md §6). Gravity defaults to (0, 5) (positive y is down),
// linearDrag to (0.2, 0) and angularDrag to 0.15.
type WorldConfig struct {
	Gravity     math2d.Vector2
	LinearDrag  math2d.Vector2
	AngularDrag float64
}

// DefaultWorldConfig returns the spec-mandated default force parameters.
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		Gravity:     math2d.Vector2{X: 0, Y: 5},
		LinearDrag:  math2d.Vector2{X: 0.2, Y: 0},
		AngularDrag: 0.15,
	}
}

// World owns the five managers, the viewport size and the current step
// count (spec.md §3's World record). It is the sole mutator of every body,
// boundary and force generator it owns (spec.md §5's shared-resource
// policy) — user code reaches them only through World/Body methods.
type World struct {
	width, height float64

	bodies     *BodyHeap
	boundaries *BoundaryManager
	forces     *ForceManager
	resolver   *ContactResolver
	motion     *Motion
	renderer   Renderer

	gravity     *Gravity
	linearDrag  *LinearDrag
	angularDrag *AngularDrag
}

// NewWorld constructs a World over a width x height viewport with four
// boundaries and the given config's force generators already registered.
// renderer may be nil (see NoopRenderer).
func NewWorld(width, height float64, cfg WorldConfig, renderer Renderer) *World {
	if renderer == nil {
		renderer = NoopRenderer{}
	}
	w := &World{
		width:      width,
		height:     height,
		bodies:     NewBodyHeap(),
		boundaries: NewBoundaryManager(width, height),
		forces:     NewForceManager(),
		resolver:   NewContactResolver(),
		renderer:   renderer,
	}

	w.gravity = NewGravity(cfg.Gravity)
	w.linearDrag = NewLinearDrag(cfg.LinearDrag)
	w.angularDrag = NewAngularDrag(cfg.AngularDrag)
	w.forces.AddLinearForce(w.gravity)
	w.forces.AddLinearForce(w.linearDrag)
	w.forces.AddAngularForce(w.angularDrag)

	w.motion = NewMotion(w.bodies, w.boundaries, w.forces, w.resolver, renderer)
	return w
}

// Append inserts a Body, or a []*Body, per spec.md §6's polymorphic
// "append(body_or_list)": an ordinary Body (any ShapeKind but the
// internal boundary one) goes to the BodyHeap, and a Boundary — built
// with NewBoundary — dispatches to BoundaryManager instead, replacing
// whichever named wall it carries. NewWorld already populates all four
// default walls; Append(boundary) is how a host adds or replaces one
// explicitly, e.g. spec.md §8 scenario 2's "add BoundaryBottom".
func (w *World) Append(v interface{}) error {
	switch x := v.(type) {
	case *Body:
		return w.appendOne(x)
	case []*Body:
		for _, b := range x {
			if err := w.appendOne(b); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("dynamics: World.Append: unsupported argument type %T", v)
	}
}

func (w *World) appendOne(b *Body) error {
	if b.Kind == boundaryKind {
		w.boundaries.Put(b)
		return nil
	}
	return w.bodies.Append(b)
}

// Remove deletes a body from the BodyHeap, if present.
func (w *World) Remove(id BodyID) {
	w.bodies.Remove(id)
}

// RemoveBoundary drops the named wall, symmetric with appending one via
// Append(boundary).
func (w *World) RemoveBoundary(side Side) {
	w.boundaries.Remove(side)
}

// Clear drops all dynamic bodies; boundaries persist (spec.md §6).
func (w *World) Clear() {
	w.bodies.Clear()
}

// Bind forwards an event subscription to the renderer.
func (w *World) Bind(event string, fn func()) {
	w.renderer.Bind(event, fn)
}

// Pause stops the Motion driver.
func (w *World) Pause() { w.motion.Pause() }

// Start resumes the Motion driver.
func (w *World) Start() { w.motion.Start() }

// Step drives one tick of the simulation. Any DomainError or
// UserCallbackError raised during the step is logged through the package
// logger.
func (w *World) Step() {
	w.motion.Step(func(err error) {
		log.Error("%v", err)
	})
}

// AddWorldStepFn registers a per-step user callback.
func (w *World) AddWorldStepFn(fn func()) {
	w.motion.AddWorldStepFn(fn)
}

// SetGlobalForce mutates gravity, linear drag and/or angular drag in
// place; a nil field leaves that parameter unchanged (spec.md §6's
// "partial options" semantics).
func (w *World) SetGlobalForce(gravity, linearDrag *math2d.Vector2, angularDrag *float64) {
	if gravity != nil {
		w.gravity.Set(*gravity)
	}
	if linearDrag != nil {
		w.linearDrag.Set(*linearDrag)
	}
	if angularDrag != nil {
		w.angularDrag.Set(*angularDrag)
	}
}

// GetWidth returns the viewport width.
func (w *World) GetWidth() float64 { return w.width }

// GetHeight returns the viewport height.
func (w *World) GetHeight() float64 { return w.height }

// GetBodyCount returns the number of live dynamic bodies.
func (w *World) GetBodyCount() int { return w.bodies.Len() }

// Boundary returns the named boundary, if present.
func (w *World) Boundary(side Side) (*Body, bool) {
	return w.boundaries.Get(side)
}

// Resize rebuilds the boundaries currently present for a new viewport
// size (see BoundaryManager.Resize).
func (w *World) Resize(width, height float64) {
	w.width, w.height = width, height
	w.boundaries.Resize(width, height)
}
