package dynamics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vortex2d/engine/math2d"
)

func newTestCircle(t *testing.T, mass float64, static string) *Body {
	t.Helper()
	b, err := NewBody(BodyConfig{
		Shape:  ShapeConfig{Radius: 10},
		Nature: NatureConfig{Mass: mass, Static: static},
	}, Circle)
	assert.NoError(t, err)
	return b
}

func TestNewBody_CircleRejectsNonPositiveRadius(t *testing.T) {
	_, err := NewBody(BodyConfig{Shape: ShapeConfig{Radius: 0}}, Circle)
	assert.Error(t, err)
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestNewBody_RectangleRejectsBadDimensions(t *testing.T) {
	_, err := NewBody(BodyConfig{Shape: ShapeConfig{Width: 0, Height: 10}}, Rectangle)
	assert.Error(t, err)
}

func TestBodyHeap_Append_ComputesMassData(t *testing.T) {
	heap := NewBodyHeap()
	b := newTestCircle(t, 1, "none")

	assert.Equal(t, StateInit, b.State)
	assert.NoError(t, heap.Append(b))
	assert.Equal(t, StateSimulate, b.State)

	assert.Greater(t, b.Area, 0.0)
	assert.Equal(t, 1.0, b.Mass)
	assert.Equal(t, 1.0, b.InverseMass)
	assert.Greater(t, b.RotationInertia, 0.0)
	assert.True(t, b.BoundRect.Valid())
}

func TestBodyHeap_Append_StaticBodyHasZeroInverseMass(t *testing.T) {
	heap := NewBodyHeap()
	b := newTestCircle(t, 1, "total")
	assert.NoError(t, heap.Append(b))

	assert.Equal(t, 0.0, b.Mass)
	assert.Equal(t, 0.0, b.InverseMass)
	assert.Equal(t, 0.0, b.InverseRotInertia)
}

func TestBody_IntegratePosition_SemiImplicitEuler(t *testing.T) {
	heap := NewBodyHeap()
	b := newTestCircle(t, 1, "none")
	assert.NoError(t, heap.Append(b))

	fm := NewForceManager()
	fm.AddLinearForce(NewGravity(math2d.Vector2{X: 0, Y: 5}))

	for i := 0; i < 10; i++ {
		b.update(fm)
	}

	// v accumulates 5 per step (unit-dt), position sums the running v:
	// sum_{k=1..10} 5k = 275 (spec.md §8 scenario 1).
	assert.InDelta(t, 275.0, b.Pos.Y, 1e-9)
	assert.InDelta(t, 50.0, b.V.Y, 1e-9)
}

func TestBody_TotalStaticNeverMoves(t *testing.T) {
	heap := NewBodyHeap()
	b := newTestCircle(t, 1, "total")
	assert.NoError(t, heap.Append(b))
	start := b.Pos

	fm := NewForceManager()
	fm.AddLinearForce(NewGravity(math2d.Vector2{X: 0, Y: 5}))
	fm.AddAngularForce(NewAngularDrag(0.15))
	b.Omega = 3
	b.update(fm)

	assert.Equal(t, start, b.Pos)
	assert.Equal(t, math2d.Zero, b.V)
	assert.Equal(t, 0.0, b.Omega)
}

func TestBody_PositionStaticMayStillRotate(t *testing.T) {
	heap := NewBodyHeap()
	b := newTestCircle(t, 1, "position")
	assert.NoError(t, heap.Append(b))
	b.Omega = 10

	fm := NewForceManager()
	b.update(fm)

	assert.Equal(t, math2d.Zero, b.V)
	assert.NotEqual(t, 0.0, b.Rot)
}

func TestBody_SetRotation_NormalizesModulo360(t *testing.T) {
	b := newTestCircle(t, 1, "none")
	b.SetRotation(370)
	assert.InDelta(t, 10.0, b.Rot, 1e-9)

	b.SetRotation(-10)
	assert.InDelta(t, 350.0, b.Rot, 1e-9)
}

func TestBody_SetPos_RoundTrip(t *testing.T) {
	heap := NewBodyHeap()
	b := newTestCircle(t, 1, "none")
	assert.NoError(t, heap.Append(b))

	p := math2d.Vector2{X: 42, Y: 17}
	b.SetPos(p)
	assert.Equal(t, p, b.Pos)
}

func TestBody_Centroid_TracksPosAndRotLive(t *testing.T) {
	heap := NewBodyHeap()
	r, err := NewBody(BodyConfig{
		Shape:  ShapeConfig{Width: 10, Height: 4},
		Nature: NatureConfig{Mass: 1},
	}, Rectangle)
	assert.NoError(t, err)
	assert.NoError(t, heap.Append(r))
	assert.Equal(t, r.Pos, r.Centroid(), "rectangle's local centroid is its own origin")

	r.SetPos(math2d.Vector2{X: 100, Y: 50})
	assert.Equal(t, r.Pos, r.Centroid(), "Centroid reflects the move with no separate refresh step")
}

func TestBodyHeap_RemovePreservesOrder(t *testing.T) {
	heap := NewBodyHeap()
	a := newTestCircle(t, 1, "none")
	b := newTestCircle(t, 1, "none")
	c := newTestCircle(t, 1, "none")
	assert.NoError(t, heap.Append(a))
	assert.NoError(t, heap.Append(b))
	assert.NoError(t, heap.Append(c))

	heap.Remove(b.ID)

	ordered := heap.Heap()
	assert.Equal(t, []*Body{a, c}, ordered)
}
