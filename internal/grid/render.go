package grid

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const cellWidth = 2

var glyphs = map[Cell]string{
	Player1: "🔵",
	Player2: "🔴",
	Weapon:  "🔫",
	Heart:   "💖",
}

// Render draws the board one row per line. Unknown codes print as a dot.
func Render(b Board) string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			g, ok := glyphs[b[r][c]]
			if !ok {
				g = "·"
			}
			sb.WriteString(runewidth.FillRight(g, cellWidth))
			if c < Size-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
