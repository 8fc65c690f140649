// Package backtracking implements the board search generators.
package backtracking

import (
	"fmt"

	"github.com/Iron-Ham/algoviz/internal/algorithm"
	"github.com/Iron-Ham/algoviz/internal/step"
)

// MaxQueens bounds the board size.
const MaxQueens = 10

// Queens places N non-attacking queens row by row, backtracking out of rows
// with no safe column. The search stops at the first solution.
type Queens struct{}

// Info implements algorithm.Generator.
func (Queens) Info() algorithm.Info {
	return algorithm.Info{
		Name:        "n-queens",
		Title:       "N-Queens",
		Family:      algorithm.FamilyBacktracking,
		Shape:       algorithm.ShapeBoard,
		Description: "Place a queen per row, backtracking whenever a row has no safe square.",
	}
}

// Generate implements algorithm.Generator.
func (Queens) Generate(in algorithm.Input) step.Sequence {
	n, ok := in.Size(4, 8)
	if !ok {
		return step.Rejected("n-queens needs a board size")
	}
	if n < 0 || n > MaxQueens {
		return step.Rejectedf("n-queens accepts board sizes 0 to %d, got %d", MaxQueens, n)
	}

	s := &search{
		board: &step.Board{N: n, Queens: make([]int, n), Row: step.Unset, Col: step.Unset},
		rec:   step.NewRecorder(8 * n * n),
	}
	for i := range s.board.Queens {
		s.board.Queens[i] = step.Unset
	}
	s.emit(step.KindStart, step.Unset, step.Unset, nil, "place %d queens on a %dx%d board", n, n, n)

	if s.place(0) {
		return s.finish("solved: queens at columns %v", s.board.Queens)
	}
	return s.finish("no arrangement of %d queens exists", n)
}

type search struct {
	board *step.Board
	rec   *step.Recorder
}

func (s *search) emit(kind step.Kind, row, col int, attackers []step.Cell, format string, args ...any) {
	s.board.Row, s.board.Col = row, col
	s.board.Attackers = attackers
	s.rec.Emit(kind, fmt.Sprintf(format, args...), s.board)
}

func (s *search) finish(format string, args ...any) step.Sequence {
	s.board.Row, s.board.Col = step.Unset, step.Unset
	s.board.Attackers = nil
	return s.rec.Finish(step.KindFinish, fmt.Sprintf(format, args...), s.board)
}

// place tries every column of row and reports whether a full solution was
// reached below it.
func (s *search) place(row int) bool {
	n := s.board.N
	if row == n {
		s.board.Solutions++
		s.emit(step.KindSolution, step.Unset, step.Unset, nil, "all %d queens placed", n)
		return true
	}

	for col := range n {
		if attackers := s.attackers(row, col); len(attackers) > 0 {
			s.emit(step.KindConflict, row, col, attackers, "(%d, %d) is attacked by %d queen(s)", row, col, len(attackers))
			continue
		}
		s.board.Queens[row] = col
		s.emit(step.KindPlaceQueen, row, col, nil, "place a queen at (%d, %d)", row, col)
		if s.place(row + 1) {
			return true
		}
		s.board.Queens[row] = step.Unset
		s.emit(step.KindRemoveQueen, row, col, nil, "no solution below (%d, %d); remove the queen", row, col)
	}
	return false
}

// attackers returns the queens in earlier rows that attack (row, col).
func (s *search) attackers(row, col int) []step.Cell {
	var out []step.Cell
	for r := range row {
		c := s.board.Queens[r]
		if c == col || c-col == r-row || c-col == row-r {
			out = append(out, step.Cell{Row: r, Col: c})
		}
	}
	return out
}
