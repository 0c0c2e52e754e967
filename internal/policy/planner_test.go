package policy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridduel/internal/grid"
)

func pos(x, y int) *grid.Position { return &grid.Position{X: x, Y: y} }

func blockedAt(ps ...grid.Position) map[grid.Position]bool {
	m := map[grid.Position]bool{}
	for _, p := range ps {
		m[p] = true
	}
	return m
}

func TestPlanStepMissingEnds(t *testing.T) {
	assert.Equal(t, Up, PlanStep(nil, pos(1, 1), nil))
	assert.Equal(t, Up, PlanStep(pos(1, 1), nil, nil))
	assert.Equal(t, Up, PlanStep(nil, nil, nil))
}

func TestPlanStepNoSafeMove(t *testing.T) {
	b := blockedAt(grid.Position{X: 0, Y: 1}, grid.Position{X: 1, Y: 0}, grid.Position{X: 1, Y: 1})
	assert.Equal(t, Block, PlanStep(pos(0, 0), pos(4, 4), b))
}

func TestPlanStepDirections(t *testing.T) {
	cases := []struct {
		name         string
		from, target *grid.Position
		blocked      map[grid.Position]bool
		want         Action
	}{
		{"diagonal down-right collapses to down", pos(0, 0), pos(4, 4), nil, Down},
		{"pure right", pos(0, 2), pos(4, 2), nil, Right},
		{"pure left", pos(4, 2), pos(0, 2), nil, Left},
		{"pure down", pos(2, 0), pos(2, 4), nil, Down},
		{"pure up", pos(2, 4), pos(2, 0), nil, Up},
		{"diagonal up-right collapses to up", pos(0, 4), pos(4, 0), nil, Up},
		{"diagonal up-left collapses to up", pos(4, 4), pos(0, 0), nil, Up},
		{"diagonal down-left collapses to down", pos(4, 0), pos(0, 4), nil, Down},
		{"standing on target takes first cardinal", pos(2, 2), pos(2, 2), nil, Left},
		{"adjacent target blocked", pos(2, 2), pos(2, 3), blockedAt(grid.Position{X: 2, Y: 3}), Left},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PlanStep(tc.from, tc.target, tc.blocked))
		})
	}
}

func TestPlanStepFallsBackToEnumerationOrder(t *testing.T) {
	// Pure right is blocked; both right diagonals tie and the first one
	// enumerated (dy=-1) is taken, reported by its horizontal component.
	s, a := chooseStep(pos(0, 2), pos(4, 2), blockedAt(grid.Position{X: 1, Y: 2}))
	assert.Equal(t, step{1, -1}, s)
	assert.Equal(t, Right, a)
}

func TestPlanStepNeverLandsOffBoardOrBlocked(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 2000; i++ {
		from := grid.Position{X: rng.Intn(grid.Size), Y: rng.Intn(grid.Size)}
		target := grid.Position{X: rng.Intn(grid.Size), Y: rng.Intn(grid.Size)}
		blocked := map[grid.Position]bool{}
		for _, n := range grid.Neighbors8(from) {
			if rng.Intn(3) == 0 {
				blocked[n] = true
			}
		}
		free := 0
		for _, n := range grid.Neighbors8(from) {
			if !blocked[n] {
				free++
			}
		}

		s, a := chooseStep(&from, &target, blocked)
		require.True(t, a.Valid())
		if free == 0 {
			assert.Equal(t, Block, a)
			continue
		}
		require.NotEqual(t, Block, a)
		land := from.Add(s.dx, s.dy)
		assert.True(t, land.In(), "from %v to %v lands on %v", from, target, land)
		assert.False(t, blocked[land], "from %v to %v lands on blocked %v", from, target, land)
		assert.NotEqual(t, step{}, s)

		// the chosen square is as close as any legal square
		d := grid.Manhattan(&land, &target)
		for _, n := range grid.Neighbors8(from) {
			if !blocked[n] {
				assert.LessOrEqual(t, d, grid.Manhattan(&n, &target))
			}
		}
	}
}
