package dynamics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vortex2d/engine/math2d"
)

func newMotionWorld(t *testing.T) (*World, *Body) {
	t.Helper()
	cfg := DefaultWorldConfig()
	cfg.LinearDrag = math2d.Vector2{}
	cfg.AngularDrag = 0
	world := NewWorld(800, 600, cfg, NoopRenderer{})

	ball, err := NewBody(BodyConfig{
		Shape:  ShapeConfig{Radius: 10},
		Nature: NatureConfig{Mass: 1},
	}, Circle)
	assert.NoError(t, err)
	ball.SetPos(math2d.Vector2{X: 400, Y: 0})
	assert.NoError(t, world.Append(ball))
	return world, ball
}

func TestMotion_FreeFall_MatchesSpecScenario(t *testing.T) {
	world, ball := newMotionWorld(t)
	// The ball starts at y=0 with radius 10, overlapping the default top
	// wall; drop that wall so nothing but gravity acts on it.
	world.RemoveBoundary(Top)
	world.Start()
	for i := 0; i < 10; i++ {
		world.Step()
	}
	assert.InDelta(t, 275.0, ball.Pos.Y, 1e-6)
}

func TestMotion_PausedStepIsNoop(t *testing.T) {
	world, ball := newMotionWorld(t)
	start := ball.Pos
	world.Step()
	assert.Equal(t, start, ball.Pos)
}

func TestMotion_FloorBounce_PeakVelocityMatchesImpact(t *testing.T) {
	cfg := DefaultWorldConfig()
	cfg.LinearDrag = math2d.Vector2{}
	cfg.AngularDrag = 0
	world := NewWorld(800, 600, cfg, NoopRenderer{})

	ball, err := NewBody(BodyConfig{
		Shape:  ShapeConfig{Radius: 10},
		Nature: NatureConfig{Mass: 1, Friction: 0, Restitution: 1},
	}, Circle)
	assert.NoError(t, err)
	ball.SetPos(math2d.Vector2{X: 400, Y: 0})
	assert.NoError(t, world.Append(ball))

	world.Start()
	var impactSpeed, peakUpSpeed float64
	hitFloor := false
	for i := 0; i < 300; i++ {
		prevV := ball.V.Y
		world.Step()
		if !hitFloor && ball.V.Y < 0 && prevV >= 0 {
			hitFloor = true
			impactSpeed = prevV
		}
		if hitFloor && -ball.V.Y > peakUpSpeed {
			peakUpSpeed = -ball.V.Y
		}
	}
	assert.True(t, hitFloor)
	assert.InDelta(t, impactSpeed, peakUpSpeed, impactSpeed*0.1)
}

func TestMotion_StepCount(t *testing.T) {
	world, _ := newMotionWorld(t)
	world.Start()
	world.Step()
	world.Step()
	assert.Equal(t, 2, world.motion.StepCount())
}

func TestMotion_UserStepFnInvokedOncePerStep(t *testing.T) {
	world, _ := newMotionWorld(t)
	calls := 0
	world.AddWorldStepFn(func() { calls++ })
	world.Start()
	world.Step()
	world.Step()
	assert.Equal(t, 2, calls)
}
