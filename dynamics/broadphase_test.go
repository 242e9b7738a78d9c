package dynamics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBroadPhase_SkipsTwoTotalStaticBodies(t *testing.T) {
	a := newTestCircle(t, 1, "total")
	b := newTestCircle(t, 1, "total")

	pairs := broadPhase([]*Body{a, b}, nil)
	assert.Empty(t, pairs)
}

func TestBroadPhase_PairsOverlappingBodies(t *testing.T) {
	a := circleAt(t, 0, 0, 10)
	b := circleAt(t, 5, 0, 10)
	c := circleAt(t, 1000, 1000, 10)

	pairs := broadPhase([]*Body{a, b, c}, nil)
	assert.Len(t, pairs, 1)
	assert.Equal(t, a, pairs[0].A)
	assert.Equal(t, b, pairs[0].B)
}

func TestBroadPhase_PairsBodyWithEveryBoundary(t *testing.T) {
	bm := NewBoundaryManager(800, 600)
	ball := circleAt(t, 400, 300, 10)

	pairs := broadPhase([]*Body{ball}, bm.All())
	assert.Len(t, pairs, 4)
}
