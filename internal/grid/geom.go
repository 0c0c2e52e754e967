package grid

import "math"

// Infinite is the distance to an absent position.
const Infinite = math.MaxInt

// Position is a square on the arena, X being the column and Y the row.
type Position struct{ X, Y int }

func (p Position) Add(dx, dy int) Position { return Position{p.X + dx, p.Y + dy} }

// In reports whether p lies on the arena.
func (p Position) In() bool { return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size }

// Center is the fallback goal when nothing else is worth walking to.
func Center() Position { return Position{Size / 2, Size / 2} }

// Manhattan returns |dx|+|dy|, or Infinite when either side is nil.
func Manhattan(a, b *Position) int {
	if a == nil || b == nil {
		return Infinite
	}
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// AdjacentOrSame is true when a and b are within one king move of each
// other, which is melee range. Nil positions are never adjacent.
func AdjacentOrSame(a, b *Position) bool {
	if a == nil || b == nil {
		return false
	}
	return max(abs(a.X-b.X), abs(a.Y-b.Y)) <= 1
}

// Offsets lists the 8 king moves, dx outer and dy inner, each from -1 to 1.
// Planner tie-breaks depend on this order.
var Offsets = func() [8][2]int {
	var out [8][2]int
	i := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			out[i] = [2]int{dx, dy}
			i++
		}
	}
	return out
}()

// Neighbors8 returns the in-bounds squares around p in Offsets order.
func Neighbors8(p Position) []Position {
	out := make([]Position, 0, 8)
	for _, d := range Offsets {
		np := p.Add(d[0], d[1])
		if np.In() {
			out = append(out, np)
		}
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
