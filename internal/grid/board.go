// Package grid holds the 5x5 arena: decoding the wire board, locating
// entities on it and the distance helpers the policy moves by.
package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the side length of the arena. Boards are always Size x Size.
const Size = 5

// Cell is the occupant code of one square.
type Cell int

const (
	Empty Cell = iota
	Player1
	Player2
	Weapon
	Heart
)

// ErrInvalidBoardFormat is returned when a board string is not exactly
// Size*Size ASCII digits.
var ErrInvalidBoardFormat = errors.New("invalid board format")

// Board is indexed [row][col], row 0 being the first Size characters of the
// wire string.
type Board [Size][Size]Cell

// Decode parses the row-major digit string sent by the game host.
// Digits without a meaning (0, 5-9) decode as-is and are treated as empty by
// Locate.
func Decode(s string) (Board, error) {
	var b Board
	if len(s) != Size*Size {
		return b, fmt.Errorf("%w: want %d characters, got %d", ErrInvalidBoardFormat, Size*Size, len(s))
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return b, fmt.Errorf("%w: byte %q at offset %d is not a digit", ErrInvalidBoardFormat, c, i)
		}
		b[i/Size][i%Size] = Cell(c - '0')
	}
	return b, nil
}

// At returns the occupant of p. p must be in bounds.
func (b Board) At(p Position) Cell { return b[p.Y][p.X] }

// String flattens the board back into its wire form.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(Size * Size)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			sb.WriteByte(byte('0' + b[r][c]))
		}
	}
	return sb.String()
}
