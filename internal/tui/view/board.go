package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/algoviz/internal/render"
	"github.com/Iron-Ham/algoviz/internal/tui/styles"
)

var squareGlyphs = map[render.Square]string{
	render.SquareEmpty:     "   ",
	render.SquareQueen:     " ♛ ",
	render.SquareCandidate: " · ",
	render.SquareConflict:  " ✗ ",
	render.SquareAttacker:  " ♛ ",
}

// Board renders a chessboard handle with alternating square shades.
func Board(b *render.Chessboard, st *styles.Styles) string {
	if b.N == 0 {
		return st.Muted.Render("(empty board)")
	}

	var sb strings.Builder
	for r, row := range b.Squares {
		for c, sq := range row {
			base := st.LightSquare
			if (r+c)%2 == 1 {
				base = st.DarkSquare
			}
			style := base.Foreground(st.SquareColor(sq))
			if sq == render.SquareConflict || sq == render.SquareAttacker {
				style = style.Bold(true)
			}
			sb.WriteString(style.Render(squareGlyphs[sq]))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(st.Label.Render("solutions ") + st.Success.Render(fmt.Sprint(b.Solutions)))
	return sb.String()
}
