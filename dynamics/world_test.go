package dynamics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vortex2d/engine/math2d"
)

func TestWorld_DefaultsAndQueries(t *testing.T) {
	world := NewWorld(800, 600, DefaultWorldConfig(), nil)
	assert.Equal(t, 800.0, world.GetWidth())
	assert.Equal(t, 600.0, world.GetHeight())
	assert.Equal(t, 0, world.GetBodyCount())

	_, ok := world.Boundary(Top)
	assert.True(t, ok)
}

func TestWorld_AppendRemoveClear(t *testing.T) {
	world := NewWorld(800, 600, DefaultWorldConfig(), nil)
	b, err := NewBody(BodyConfig{Shape: ShapeConfig{Radius: 5}, Nature: NatureConfig{Mass: 1}}, Circle)
	assert.NoError(t, err)
	assert.NoError(t, world.Append(b))
	assert.Equal(t, 1, world.GetBodyCount())

	world.Remove(b.ID)
	assert.Equal(t, 0, world.GetBodyCount())

	assert.NoError(t, world.Append(b))
	world.Clear()
	assert.Equal(t, 0, world.GetBodyCount())

	_, ok := world.Boundary(Top)
	assert.True(t, ok, "boundaries persist across Clear")
}

func TestWorld_Append_ReplacesNamedBoundary(t *testing.T) {
	world := NewWorld(800, 600, DefaultWorldConfig(), nil)

	moved := NewBoundary(Bottom, 800, 1200)
	assert.NoError(t, world.Append(moved))

	got, ok := world.Boundary(Bottom)
	assert.True(t, ok)
	assert.Same(t, moved, got)
	assert.Equal(t, 1200.0, got.Pos.Y)
}

func TestWorld_Append_List(t *testing.T) {
	world := NewWorld(800, 600, DefaultWorldConfig(), nil)
	a, err := NewBody(BodyConfig{Shape: ShapeConfig{Radius: 5}, Nature: NatureConfig{Mass: 1}}, Circle)
	assert.NoError(t, err)
	b, err := NewBody(BodyConfig{Shape: ShapeConfig{Radius: 5}, Nature: NatureConfig{Mass: 1}}, Circle)
	assert.NoError(t, err)

	assert.NoError(t, world.Append([]*Body{a, b}))
	assert.Equal(t, 2, world.GetBodyCount())
}

func TestWorld_Append_RejectsUnsupportedType(t *testing.T) {
	world := NewWorld(800, 600, DefaultWorldConfig(), nil)
	err := world.Append("not a body")
	assert.Error(t, err)
}

func TestWorld_RemoveBoundary(t *testing.T) {
	world := NewWorld(800, 600, DefaultWorldConfig(), nil)
	world.RemoveBoundary(Left)
	_, ok := world.Boundary(Left)
	assert.False(t, ok)
}

func TestWorld_SetGlobalForce_PartialUpdate(t *testing.T) {
	world := NewWorld(800, 600, DefaultWorldConfig(), nil)
	newGravity := math2d.Vector2{X: 1, Y: 1}
	world.SetGlobalForce(&newGravity, nil, nil)

	assert.Equal(t, newGravity, world.gravity.G)
	assert.Equal(t, DefaultWorldConfig().LinearDrag, world.linearDrag.K)
}

// TestWorld_StaticStack_StableOver120Steps exercises the sustained,
// multi-body integration path (rectangle-rectangle SAT plus
// rectangle-boundary resolution held stable step after step) that the
// single-pair unit tests in narrowphase_test.go and resolver_test.go
// never cover together: three rectangles resting on BoundaryBottom and on
// each other must settle rather than drift or tunnel through the floor.
func TestWorld_StaticStack_StableOver120Steps(t *testing.T) {
	world := NewWorld(800, 600, DefaultWorldConfig(), nil)

	rects := make([]*Body, 3)
	// Pos is a rectangle's center, so with h=20 these sit exactly on the
	// floor at y=600 and on each other.
	ys := []float64{590, 570, 550}
	for i, y := range ys {
		r, err := NewBody(BodyConfig{
			Shape:  ShapeConfig{Width: 50, Height: 20},
			Nature: NatureConfig{Mass: 1, Friction: 0.8, Restitution: 0},
		}, Rectangle)
		assert.NoError(t, err)
		r.SetPos(math2d.Vector2{X: 400, Y: y})
		assert.NoError(t, world.Append(r))
		rects[i] = r
	}

	startX := make([]float64, 3)
	startY := make([]float64, 3)
	for i, r := range rects {
		startX[i] = r.Pos.X
		startY[i] = r.Pos.Y
	}

	world.Start()
	for step := 0; step < 120; step++ {
		world.Step()
	}

	for i, r := range rects {
		assert.Less(t, math.Abs(r.Pos.X-startX[i]), 1.0, "rect %d x drift", i)
		assert.Less(t, math.Abs(r.Pos.Y-startY[i]), 2.0, "rect %d y drift", i)
	}
}

func TestWorld_Resize_RebuildsBoundaries(t *testing.T) {
	world := NewWorld(800, 600, DefaultWorldConfig(), nil)
	world.Resize(1000, 800)
	assert.Equal(t, 1000.0, world.GetWidth())
	assert.Equal(t, 800.0, world.GetHeight())

	right, _ := world.Boundary(Right)
	assert.InDelta(t, 1000.0, right.Pos.X, 1e-9)
}
