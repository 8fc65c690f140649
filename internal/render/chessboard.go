package render

import (
	"fmt"

	"github.com/Iron-Ham/algoviz/internal/step"
)

// Square is the presentation state of one board square.
type Square string

const (
	SquareEmpty     Square = "empty"
	SquareQueen     Square = "queen"
	SquareCandidate Square = "candidate"
	SquareConflict  Square = "conflict"
	SquareAttacker  Square = "attacker"
)

// Chessboard is the handle for board payloads.
type Chessboard struct {
	Frame

	N         int
	Squares   [][]Square
	Solutions int
}

// NewChessboard returns an n x n handle.
func NewChessboard(n int) *Chessboard {
	b := &Chessboard{N: n, Squares: make([][]Square, n)}
	for r := range b.Squares {
		b.Squares[r] = make([]Square, n)
	}
	return b
}

// Caption implements Handle.
func (b *Chessboard) Caption() Frame { return b.Frame }

func (*Chessboard) isHandle() {}

func renderChessboard(s step.Step, p *step.Board, h Handle, pos Position) error {
	b, ok := h.(*Chessboard)
	if !ok {
		return mismatch("a chessboard", h)
	}
	if p.N != b.N {
		return fmt.Errorf("board is %dx%d, handle is %dx%d", p.N, p.N, b.N, b.N)
	}

	for r := range b.Squares {
		for c := range b.Squares[r] {
			b.Squares[r][c] = SquareEmpty
		}
		if q := p.Queens[r]; q != step.Unset {
			b.Squares[r][q] = SquareQueen
		}
	}
	for _, a := range p.Attackers {
		b.Squares[a.Row][a.Col] = SquareAttacker
	}
	if p.Row != step.Unset && p.Col != step.Unset {
		switch s.Kind {
		case step.KindConflict:
			b.Squares[p.Row][p.Col] = SquareConflict
		case step.KindRemoveQueen:
			b.Squares[p.Row][p.Col] = SquareCandidate
		}
	}

	b.Solutions = p.Solutions
	b.set(s, pos)
	return nil
}
