// Copyright 2024 The Vortex2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dynamics implements the 2D rigid-body dynamics core: body
// storage, world boundaries, global force generators, broad/narrow phase
// collision detection, impulse-based contact resolution and the per-tick
// Motion driver that ties them together. It mirrors the flat package
// layout the teacher uses for its own physics subsystem
// (experimental/physics/*.go bundles Simulation, ForceField, Broadphase
// and friends in one package) rather than one package per spec.md module.
package dynamics

import (
	"math"

	"github.com/google/uuid"
	"github.com/vortex2d/engine/math2d"
)

// BodyID uniquely identifies a Body for the lifetime of a World. Bodies
// are identified with a random UUID (github.com/google/uuid) rather than
// a bare incrementing counter, matching the identity style used for
// entities elsewhere in the retrieved pack.
type BodyID = uuid.UUID

// ShapeKind is the tag of the Body variant sum type. spec.md §9 replaces
// the original's class-inheritance stubs with a tagged variant dispatched
// at narrow-phase and geometry-query sites.
type ShapeKind int

const (
	Circle ShapeKind = iota
	Polygon
	Triangle
	Rectangle
	boundaryKind // internal: a Boundary modeled as a static Body variant
)

func (k ShapeKind) String() string {
	switch k {
	case Circle:
		return "Circle"
	case Polygon:
		return "Polygon"
	case Triangle:
		return "Triangle"
	case Rectangle:
		return "Rectangle"
	case boundaryKind:
		return "Boundary"
	default:
		return "Unknown"
	}
}

// isPolygonLike reports whether the shape is handled by the polygon SAT
// path (Polygon, Triangle and Rectangle are all convex vertex lists; only
// their construction differs).
func (k ShapeKind) isPolygonLike() bool {
	return k == Polygon || k == Triangle || k == Rectangle
}

// StaticMode controls how a body participates in integration.
type StaticMode int

const (
	// StaticNone is a fully dynamic body.
	StaticNone StaticMode = iota
	// StaticPosition never translates (v stays 0) but may still rotate.
	StaticPosition
	// StaticTotal never translates nor rotates.
	StaticTotal
)

// ParseStaticMode maps the BodyConfig.Nature "static" string to a
// StaticMode. An unrecognized value defaults to StaticNone, per spec.md §6.
func ParseStaticMode(s string) StaticMode {
	switch s {
	case "position":
		return StaticPosition
	case "total":
		return StaticTotal
	default:
		return StaticNone
	}
}

// BodyState is the body's position in the sleep/wake state machine.
type BodyState int

const (
	StateInit BodyState = iota
	StateSimulate
	StateSleep
)

const motionSampleCapacity = 20

// sleepSigmaThreshold is the standard deviation of the last 20 motion
// samples (|v|^2 + omega^2) below which a body is put to sleep.
const sleepSigmaThreshold = 500

const defaultDensity = 0.01
const defaultRestitution = 0.9

// Body is a single rigid body participating in the simulation. Exactly
// one of the shape-specific fields is meaningful, selected by Kind; see
// shape_circle.go, shape_polygon.go, shape_rectangle.go and
// shape_triangle.go for the per-variant geometry helpers, and boundary.go
// for how a world wall reuses this type as a StaticTotal body.
type Body struct {
	ID   BodyID
	Kind ShapeKind

	// Geometry
	Pos            math2d.Vector2
	Rot            float64 // degrees, normalized to [0, 360)
	Radius         float64 // Circle only
	LocalVertices  []math2d.Vector2
	WorldVertices  []math2d.Vector2
	BoundaryNormal math2d.Vector2 // boundaryKind only: unit normal pointing into the world
	BoundaryOffset float64        // boundaryKind only: BoundaryNormal . pointOnPlane
	BoundarySide   Side           // boundaryKind only: which of the four named walls this is

	// Kinematics
	V          math2d.Vector2 // linear velocity
	Omega      float64        // angular velocity
	LinearAcc  math2d.Vector2 // linear acceleration accumulator
	AngularAcc float64        // angular acceleration accumulator
	Torque     float64        // host-applied torque accumulator, see ApplyTorque

	// Material
	Mass                float64
	InverseMass         float64
	Density             float64
	Friction            float64
	Restitution         float64
	Area                float64
	RotationInertia     float64
	InverseRotInertia   float64

	// Control
	Static    StaticMode
	State     BodyState
	IsCollide bool
	BoundRect math2d.BoundRect

	motionSamples [motionSampleCapacity]float64
	sampleCount   int
	sampleNext    int
	CurMotion     float64

	// Callbacks
	Collided  func(other *Body)
	Separated func()
	OnSleep   func()
	OnWake    func()

	// Proxy is the renderer-owned handle updated after each position or
	// rotation change, per spec.md §6's renderer-facing contract.
	Proxy VisualProxy
}

// VisualProxy is the renderer-owned stand-in for a Body's drawable shape.
// The dynamics core never constructs shape paths itself (spec.md §1); it
// only pushes attribute updates into whatever proxy the host supplied.
type VisualProxy interface {
	SetAttr(name string, value float64)
}

// ShapeConfig carries the geometric parameters for Body construction.
type ShapeConfig struct {
	Radius   float64          // Circle
	Width    float64          // Rectangle
	Height   float64          // Rectangle
	Vertices []math2d.Vector2 // Polygon, Triangle: local-frame vertices (CCW, convex)
}

// NatureConfig carries the material parameters for Body construction.
type NatureConfig struct {
	Mass            float64
	Static          string // "none" | "position" | "total"
	LinearVelocity  math2d.Vector2
	AngularVelocity float64
	Friction        float64
	Restitution     float64
}

// BodyConfig is the full set of parameters accepted by NewBody.
type BodyConfig struct {
	Shape     ShapeConfig
	Nature    NatureConfig
	Collided  func(other *Body)
	Separated func()
}

// NewBody constructs a Body of the given kind from cfg. Geometry and mass
// data are *not* computed yet — that happens once, lazily, the first time
// the body is appended to a BodyHeap (spec.md §4.1), mirroring how the
// teacher defers a Body's derived inertia tensor until the simulation
// actually needs it.
func NewBody(cfg BodyConfig, kind ShapeKind) (*Body, error) {
	b := &Body{
		ID:          uuid.New(),
		Kind:        kind,
		Friction:    cfg.Nature.Friction,
		Restitution: cfg.Nature.Restitution,
		V:           cfg.Nature.LinearVelocity,
		Omega:       cfg.Nature.AngularVelocity,
		Static:      ParseStaticMode(cfg.Nature.Static),
		State:       StateInit,
		Density:     defaultDensity,
	}
	if b.Restitution == 0 {
		b.Restitution = defaultRestitution
	}

	switch kind {
	case Circle:
		if cfg.Shape.Radius <= 0 {
			return nil, &ConfigError{Reason: "circle requires a positive radius"}
		}
		b.Radius = cfg.Shape.Radius
	case Rectangle:
		if cfg.Shape.Width <= 0 || cfg.Shape.Height <= 0 {
			return nil, &ConfigError{Reason: "rectangle requires positive width and height"}
		}
		b.LocalVertices = rectangleVertices(cfg.Shape.Width, cfg.Shape.Height)
	case Triangle:
		if len(cfg.Shape.Vertices) != 3 {
			return nil, &ConfigError{Reason: "triangle requires exactly 3 vertices"}
		}
		b.LocalVertices = append([]math2d.Vector2(nil), cfg.Shape.Vertices...)
	case Polygon:
		if len(cfg.Shape.Vertices) < 3 {
			return nil, &ConfigError{Reason: "polygon requires at least 3 vertices"}
		}
		b.LocalVertices = append([]math2d.Vector2(nil), cfg.Shape.Vertices...)
	default:
		return nil, &ConfigError{Reason: "unknown body kind"}
	}

	if cfg.Nature.Mass > 0 {
		b.Mass = cfg.Nature.Mass
	}
	b.Collided = cfg.Collided
	b.Separated = cfg.Separated
	return b, nil
}

// initBodyData computes world-space vertices, the AABB, centroid and
// rotational inertia the first time a body enters simulation. Called
// exactly once by BodyHeap.Append.
func (b *Body) initBodyData() error {
	if b.Kind.isPolygonLike() {
		b.rebuildWorldVertices()
	}
	if err := b.setMassData(); err != nil {
		return err
	}
	b.BoundRect = b.createBoundRect()
	return nil
}

// setMassData computes Area, Mass/InverseMass, Density and
// RotationInertia. Centroid is not part of this: it is cheap enough to
// recompute live from Pos/Rot (see Body.Centroid) that caching it here
// would just be one more place required to keep it fresh. If the host
// supplied a mass, density is derived from it; otherwise
// mass = area * density (spec.md §3).
func (b *Body) setMassData() error {
	b.Area = b.calcArea()
	if b.Area <= 0 || math.IsNaN(b.Area) {
		return &ConfigError{Reason: "body has non-positive or NaN area"}
	}

	if b.Static == StaticTotal {
		b.Mass = 0
		b.InverseMass = 0
	} else {
		if b.Mass > 0 {
			b.Density = b.calcDensity()
		} else {
			b.Mass = b.Area * b.Density
		}
		if b.Mass <= 0 {
			return &ConfigError{Reason: "body must have positive mass"}
		}
		b.InverseMass = 1 / b.Mass
	}
	if b.Static == StaticPosition || b.Static == StaticTotal {
		b.InverseMass = 0
	}

	b.RotationInertia = b.calcRotationInertia()
	if b.Static == StaticTotal || b.RotationInertia <= 0 {
		b.InverseRotInertia = 0
	} else {
		b.InverseRotInertia = 1 / b.RotationInertia
	}
	return nil
}

// calcDensity derives density from a host-supplied mass.
func (b *Body) calcDensity() float64 {
	return b.Mass / b.Area
}

// createBoundRect computes this body's world-space AABB from scratch.
func (b *Body) createBoundRect() math2d.BoundRect {
	switch b.Kind {
	case Circle:
		r := math2d.Vector2{X: b.Radius, Y: b.Radius}
		return math2d.BoundRect{Min: b.Pos.Sub(r), Max: b.Pos.Add(r)}
	case boundaryKind:
		return b.boundaryBoundRect()
	default:
		return math2d.BoundRectFromPoints(b.WorldVertices)
	}
}

// boundRectUpdateKind selects which incremental update updateBoundRect
// performs.
type boundRectUpdateKind int

const (
	boundRectPos boundRectUpdateKind = iota
	boundRectRot
)

// updateBoundRect incrementally refreshes BoundRect after a position or
// rotation change. A position delta is a plain translation; a rotation
// delta requires rebuilding from the rotated world vertices (or is a
// no-op for circles, whose AABB is rotation-invariant).
func (b *Body) updateBoundRect(kind boundRectUpdateKind, delta math2d.Vector2) {
	switch kind {
	case boundRectPos:
		b.BoundRect = b.BoundRect.Translate(delta)
	case boundRectRot:
		if b.Kind.isPolygonLike() {
			b.rebuildWorldVertices()
			b.BoundRect = math2d.BoundRectFromPoints(b.WorldVertices)
		}
	}
}

// rebuildWorldVertices recomputes WorldVertices from LocalVertices, Pos
// and Rot. Only meaningful for polygon-like shapes.
func (b *Body) rebuildWorldVertices() {
	rad := Deg2Rad(b.Rot)
	verts := make([]math2d.Vector2, len(b.LocalVertices))
	for i, lv := range b.LocalVertices {
		verts[i] = lv.Rotate(rad).Add(b.Pos)
	}
	b.WorldVertices = verts
}

// ShapeView is the read-only geometric snapshot handed to the renderer
// proxy; the dynamics core never builds drawable shape paths itself
// (spec.md §1).
type ShapeView struct {
	Kind     ShapeKind
	Center   math2d.Vector2
	Radius   float64
	Vertices []math2d.Vector2
	Rotation float64
}

// GetShape returns the visual proxy-facing snapshot of this body's shape.
func (b *Body) GetShape() ShapeView {
	return ShapeView{
		Kind:     b.Kind,
		Center:   b.Pos,
		Radius:   b.Radius,
		Vertices: b.WorldVertices,
		Rotation: b.Rot,
	}
}

// integratePosition performs semi-implicit Euler: v += a; pos += v.
func (b *Body) integratePosition() {
	if b.Static == StaticPosition || b.Static == StaticTotal {
		b.V = math2d.Zero
		return
	}
	b.V = b.V.Add(b.LinearAcc)
	delta := b.V
	b.Pos = b.Pos.Add(delta)
	b.updateBoundRect(boundRectPos, delta)
	b.pushProxy("x", b.Pos.X)
	b.pushProxy("y", b.Pos.Y)
}

// integrateRotation performs semi-implicit Euler on rotation and
// normalizes the result into [0, 360) *after* the update, per the clean
// rewrite called for in spec.md §9 (the source normalized before adding
// omega, which could leave rot transiently >= 360).
func (b *Body) integrateRotation() {
	if b.Static == StaticTotal {
		b.Omega = 0
		return
	}
	b.Omega += b.AngularAcc
	b.Rot = normalizeDegrees(b.Rot + b.Omega)
	b.updateBoundRect(boundRectRot, math2d.Zero)
	b.pushProxy("rotate", b.Rot)
}

// update applies registered global forces, integrates position and
// rotation, and clears the per-step accumulators. Skipped entirely for
// sleeping bodies by the Motion driver.
func (b *Body) update(fm *ForceManager) {
	fm.ApplyLinearForce(b)
	fm.ApplyAngularForce(b)
	b.integratePosition()
	b.integrateRotation()
	fm.Clear(b)
}

// SetPos sets the body's position, updates its bounding rect and pushes
// the change to the visual proxy.
func (b *Body) SetPos(p math2d.Vector2) {
	delta := p.Sub(b.Pos)
	b.Pos = p
	b.updateBoundRect(boundRectPos, delta)
	b.pushProxy("x", b.Pos.X)
	b.pushProxy("y", b.Pos.Y)
}

// SetRotation sets the body's rotation (degrees), normalizing to
// [0, 360). Idempotent modulo 360.
func (b *Body) SetRotation(deg float64) {
	b.Rot = normalizeDegrees(deg)
	b.updateBoundRect(boundRectRot, math2d.Zero)
	b.pushProxy("rotate", b.Rot)
}

// SetLinearVel sets the linear velocity directly. User code must go
// through this (or SetPos/SetRotation) rather than mutating Body fields,
// per spec.md §5's shared-resource policy.
func (b *Body) SetLinearVel(v math2d.Vector2) {
	if b.Static == StaticPosition || b.Static == StaticTotal {
		return
	}
	b.V = v
}

// SetAngularVel sets the angular velocity directly.
func (b *Body) SetAngularVel(omega float64) {
	if b.Static == StaticTotal {
		return
	}
	b.Omega = omega
}

// ApplyForce accumulates a host-requested linear force for the next
// integration, scaled by inverse mass. (Global force generators add
// their accelerations directly, unscaled.)
func (b *Body) ApplyForce(force math2d.Vector2) {
	if b.InverseMass == 0 {
		return
	}
	b.LinearAcc = b.LinearAcc.Add(force.Scale(b.InverseMass))
}

// ApplyTorque accumulates a host-requested torque for the next
// integration, scaled by inverse rotational inertia.
func (b *Body) ApplyTorque(torque float64) {
	if b.InverseRotInertia == 0 {
		return
	}
	b.Torque += torque
	b.AngularAcc += torque * b.InverseRotInertia
}

func (b *Body) pushProxy(attr string, v float64) {
	if b.Proxy != nil {
		b.Proxy.SetAttr(attr, v)
	}
}

func normalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// isFiniteState reports whether every piece of this body's kinematic state is
// a finite number (used by Motion to detect DomainError conditions).
func (b *Body) isFiniteState() bool {
	return b.V.IsFinite() && b.Pos.IsFinite() && !math.IsNaN(b.Omega) && !math.IsInf(b.Omega, 0) && !math.IsNaN(b.Rot)
}
