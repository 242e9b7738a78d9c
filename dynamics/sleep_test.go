package dynamics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBody_SleepHeuristic_RestBodySleepsAfterFullRingBuffer(t *testing.T) {
	heap := NewBodyHeap()
	b := newTestCircle(t, 1, "none")
	assert.NoError(t, heap.Append(b))

	for i := 0; i < motionSampleCapacity-1; i++ {
		b.sampleMotion()
		b.trySleep()
		assert.Equal(t, StateSimulate, b.State)
	}
	b.sampleMotion()
	b.trySleep()

	assert.Equal(t, StateSleep, b.State)
}

func TestBody_SleepHeuristic_MovingBodyStaysAwake(t *testing.T) {
	heap := NewBodyHeap()
	b := newTestCircle(t, 1, "none")
	assert.NoError(t, heap.Append(b))

	for i := 0; i < motionSampleCapacity; i++ {
		b.V.X = float64(i) * 100
		b.sampleMotion()
		b.trySleep()
	}

	assert.Equal(t, StateSimulate, b.State)
}

func TestBody_SleepingBodyIsNotSampled(t *testing.T) {
	heap := NewBodyHeap()
	b := newTestCircle(t, 1, "none")
	assert.NoError(t, heap.Append(b))
	b.State = StateSleep

	b.V.X = 1000
	b.sampleMotion()

	assert.Equal(t, 0, b.sampleCount)
}

func TestBody_WakeResetsMotionSamples(t *testing.T) {
	heap := NewBodyHeap()
	b := newTestCircle(t, 1, "none")
	assert.NoError(t, heap.Append(b))

	for i := 0; i < motionSampleCapacity; i++ {
		b.sampleMotion()
	}
	assert.Equal(t, motionSampleCapacity, b.sampleCount)

	b.resetMotionSamples()
	assert.Equal(t, 0, b.sampleCount)
	assert.False(t, b.isTimeToSleep())
}
