package grid

import "math/rand"

// Random places both players on distinct squares and, each with even odds,
// a weapon and a heart.
func Random(rng *rand.Rand) Board {
	var b Board
	cells := rng.Perm(Size * Size)
	put := func(i int, c Cell) { b[cells[i]/Size][cells[i]%Size] = c }
	put(0, Player1)
	put(1, Player2)
	if rng.Intn(2) == 0 {
		put(2, Weapon)
	}
	if rng.Intn(2) == 0 {
		put(3, Heart)
	}
	return b
}
