// Copyright 2024 The Vortex2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamics

// MotionState is Motion's own Stopped/Running state machine (spec.md §4.7).
type MotionState int

const (
	Stopped MotionState = iota
	Running
)

// Motion owns the stepping clock: it drives force application,
// integration, collision detection, resolution, the sleep heuristic, user
// step callbacks and the final renderer signal, in that order, once per
// tick (spec.md §4.7). It does not schedule its own ticks — the host
// calls Step on whatever cadence it chooses (spec.md §5's host-supplied
// frame tick); start/pause only gate whether Step does anything.
type Motion struct {
	state MotionState

	bodies     *BodyHeap
	boundaries *BoundaryManager
	forces     *ForceManager
	resolver   *ContactResolver
	renderer   Renderer

	stepFns   []func()
	stepCount int
}

// NewMotion constructs a Motion driver over the given components. renderer
// may be nil, in which case it behaves like NoopRenderer.
func NewMotion(bodies *BodyHeap, boundaries *BoundaryManager, forces *ForceManager, resolver *ContactResolver, renderer Renderer) *Motion {
	if renderer == nil {
		renderer = NoopRenderer{}
	}
	return &Motion{
		bodies:     bodies,
		boundaries: boundaries,
		forces:     forces,
		resolver:   resolver,
		renderer:   renderer,
	}
}

// Start transitions to Running: subsequent Step calls perform work.
func (m *Motion) Start() { m.state = Running }

// Pause transitions to Stopped: subsequent Step calls are no-ops. An
// in-progress Step always completes (spec.md §5); Pause only affects
// future calls.
func (m *Motion) Pause() { m.state = Stopped }

// State returns the current Stopped/Running state.
func (m *Motion) State() MotionState { return m.state }

// AddWorldStepFn registers a user callback invoked exactly once per step,
// in registration order, before the renderer repaint.
func (m *Motion) AddWorldStepFn(fn func()) {
	m.stepFns = append(m.stepFns, fn)
}

// StepCount returns the number of steps executed so far.
func (m *Motion) StepCount() int { return m.stepCount }

// Step runs one full tick of the per-spec algorithm. A no-op while
// Stopped. report receives DomainError and UserCallbackError values as
// they occur; it may be nil.
func (m *Motion) Step(report func(error)) {
	if m.state != Running {
		return
	}

	for _, b := range m.bodies.Heap() {
		if b.State != StateSimulate {
			continue
		}
		b.update(m.forces)
		if !b.isFiniteState() {
			b.State = StateSleep
			if report != nil {
				report(&DomainError{BodyID: b.ID, Reason: "non-finite velocity or position after integration"})
			}
		}
	}

	manifolds := m.collide()
	m.resolver.Resolve(manifolds, report)

	for _, b := range m.bodies.Heap() {
		if b.State != StateSimulate {
			continue
		}
		b.sampleMotion()
		b.trySleep()
	}

	for _, fn := range m.stepFns {
		userFn := fn
		invokeCallback(report, "stepFn", userFn)
	}

	m.stepCount++
	log.Debug("step %d: %d bodies, %d manifolds", m.stepCount, len(m.bodies.Heap()), len(manifolds))
	m.renderer.Repaint()
}

// collide runs the broad phase then the narrow phase over its candidate
// pairs, returning one manifold per colliding pair this step (spec.md
// §4.5.3).
func (m *Motion) collide() []*Manifold {
	pairs := broadPhase(m.bodies.Heap(), m.boundaries.All())
	manifolds := make([]*Manifold, 0, len(pairs))
	for _, p := range pairs {
		if mf := narrowTest(p.A, p.B); mf != nil {
			manifolds = append(manifolds, mf)
		}
	}
	return manifolds
}
