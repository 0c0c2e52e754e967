package policy

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidPlayer is returned for a player id other than 1 or 2.
var ErrInvalidPlayer = errors.New("invalid player id")

// Input is everything the host sends for one turn. Life and Bullets are
// indexed by player id minus one.
type Input struct {
	PlayerID int
	Board    string
	Life     [2]int
	Bullets  [2]int
}

// ParseArgs reads the positional command line:
// playerId board p1Life p2Life p1Bullets p2Bullets.
func ParseArgs(args []string) (Input, error) {
	var in Input
	if len(args) != 6 {
		return in, fmt.Errorf("want 6 arguments (player board life1 life2 bullets1 bullets2), got %d", len(args))
	}
	ints := make([]int, 0, 5)
	for i, a := range args {
		if i == 1 {
			continue
		}
		v, err := strconv.Atoi(a)
		if err != nil {
			return in, fmt.Errorf("argument %d: %w", i+1, err)
		}
		ints = append(ints, v)
	}
	in.PlayerID = ints[0]
	in.Board = args[1]
	in.Life = [2]int{ints[1], ints[2]}
	in.Bullets = [2]int{ints[3], ints[4]}
	return in, in.validate()
}

func (in Input) validate() error {
	if in.PlayerID != 1 && in.PlayerID != 2 {
		return fmt.Errorf("%w: %d", ErrInvalidPlayer, in.PlayerID)
	}
	return nil
}

func (in Input) me() int    { return in.PlayerID - 1 }
func (in Input) enemy() int { return 2 - in.PlayerID }

func (in Input) MyLife() int    { return in.Life[in.me()] }
func (in Input) EnemyLife() int { return in.Life[in.enemy()] }

// MyBullets is the only ammo count the policy reads; the opponent's is
// accepted but unused.
func (in Input) MyBullets() int { return in.Bullets[in.me()] }
