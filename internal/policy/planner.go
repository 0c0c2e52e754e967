package policy

import "gridduel/internal/grid"

type step struct{ dx, dy int }

// PlanStep picks the king move from `from` that gets closest to target in
// Manhattan distance, never landing off the arena or on a blocked square.
// Only four directions can be answered, so diagonal steps are reported as
// their vertical component. A nil from or target yields Up; no legal move
// yields Block.
func PlanStep(from, target *grid.Position, blocked map[grid.Position]bool) Action {
	_, a := chooseStep(from, target, blocked)
	return a
}

func chooseStep(from, target *grid.Position, blocked map[grid.Position]bool) (step, Action) {
	if from == nil || target == nil {
		return step{}, Up
	}

	var best []step
	bestDist := grid.Infinite
	for _, d := range grid.Offsets {
		np := from.Add(d[0], d[1])
		if !np.In() || blocked[np] {
			continue
		}
		nd := grid.Manhattan(&np, target)
		if nd < bestDist {
			bestDist = nd
			best = best[:0]
		}
		if nd == bestDist {
			best = append(best, step{d[0], d[1]})
		}
	}
	if len(best) == 0 {
		return step{}, Block
	}

	has := func(s step) bool {
		for _, b := range best {
			if b == s {
				return true
			}
		}
		return false
	}
	right, left := target.X > from.X, target.X < from.X
	below, above := target.Y > from.Y, target.Y < from.Y
	switch {
	case right && has(step{1, 0}):
		return step{1, 0}, Right
	case left && has(step{-1, 0}):
		return step{-1, 0}, Left
	case below && has(step{0, 1}):
		return step{0, 1}, Down
	case above && has(step{0, -1}):
		return step{0, -1}, Up
	case right && below && has(step{1, 1}):
		return step{1, 1}, Down
	case left && below && has(step{-1, 1}):
		return step{-1, 1}, Down
	case right && above && has(step{1, -1}):
		return step{1, -1}, Up
	case left && above && has(step{-1, -1}):
		return step{-1, -1}, Up
	}

	s := best[0]
	switch {
	case s.dx == 1:
		return s, Right
	case s.dx == -1:
		return s, Left
	case s.dy == 1:
		return s, Down
	default:
		return s, Up
	}
}
