// Package policy decides one action per turn for a duel on the 5x5 arena.
package policy

// Action is the single token answered to the game host.
type Action string

const (
	Up     Action = "up"
	Down   Action = "down"
	Left   Action = "left"
	Right  Action = "right"
	Attack Action = "attack"
	Block  Action = "block"
)

func (a Action) Valid() bool {
	switch a {
	case Up, Down, Left, Right, Attack, Block:
		return true
	}
	return false
}
