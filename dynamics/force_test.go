package dynamics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vortex2d/engine/math2d"
)

func TestForceManager_GravitySkipsStaticBodies(t *testing.T) {
	fm := NewForceManager()
	fm.AddLinearForce(NewGravity(math2d.Vector2{X: 0, Y: 5}))

	dynamic := newTestCircle(t, 1, "none")
	positional := newTestCircle(t, 1, "position")
	total := newTestCircle(t, 1, "total")

	fm.ApplyLinearForce(dynamic)
	fm.ApplyLinearForce(positional)
	fm.ApplyLinearForce(total)

	assert.Equal(t, math2d.Vector2{X: 0, Y: 5}, dynamic.LinearAcc)
	assert.Equal(t, math2d.Zero, positional.LinearAcc)
	assert.Equal(t, math2d.Zero, total.LinearAcc)
}

func TestForceManager_AngularDragSkipsOnlyTotalStatic(t *testing.T) {
	fm := NewForceManager()
	fm.AddAngularForce(NewAngularDrag(0.5))

	positional := newTestCircle(t, 1, "position")
	positional.Omega = 2
	total := newTestCircle(t, 1, "total")
	total.Omega = 2

	fm.ApplyAngularForce(positional)
	fm.ApplyAngularForce(total)

	assert.InDelta(t, -1.0, positional.AngularAcc, 1e-9)
	assert.Equal(t, 0.0, total.AngularAcc)
}

func TestForceManager_Clear(t *testing.T) {
	fm := NewForceManager()
	b := newTestCircle(t, 1, "none")
	b.LinearAcc = math2d.Vector2{X: 1, Y: 1}
	b.AngularAcc = 1
	b.Torque = 1

	fm.Clear(b)

	assert.Equal(t, math2d.Zero, b.LinearAcc)
	assert.Equal(t, 0.0, b.AngularAcc)
	assert.Equal(t, 0.0, b.Torque)
}

func TestLinearDrag_OpposesVelocity(t *testing.T) {
	d := NewLinearDrag(math2d.Vector2{X: 0.2, Y: 0.2})
	b := newTestCircle(t, 1, "none")
	b.V = math2d.Vector2{X: 10, Y: -10}

	acc := d.ApplyLinear(b)
	assert.Equal(t, math2d.Vector2{X: -2, Y: 2}, acc)
}
