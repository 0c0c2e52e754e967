package grid

// Locations are the entities found on one board. Any of them may be nil.
type Locations struct {
	Player *Position
	Enemy  *Position
	Weapon *Position
	Heart  *Position
}

// Opponent returns the id of the other player.
func Opponent(playerID int) int {
	if playerID == 2 {
		return 1
	}
	return 2
}

// Locate scans the board row-major. Each code is expected at most once; if it
// repeats, the first square seen is kept.
func Locate(b Board, playerID int) Locations {
	var loc Locations
	me, enemy := Cell(playerID), Cell(Opponent(playerID))
	keep := func(dst **Position, p Position) {
		if *dst == nil {
			*dst = &p
		}
	}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			p := Position{X: c, Y: r}
			switch b[r][c] {
			case me:
				keep(&loc.Player, p)
			case enemy:
				keep(&loc.Enemy, p)
			case Weapon:
				keep(&loc.Weapon, p)
			case Heart:
				keep(&loc.Heart, p)
			}
		}
	}
	return loc
}
