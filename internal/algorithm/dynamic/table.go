// Package dynamic implements the tabulation generators: Fibonacci, longest
// common subsequence, 0/1 knapsack and Floyd-Warshall.
//
// Every step carries the full table and a per-cell state. Generators with a
// reconstruction phase re-walk the filled table afterwards with
// backtrack-check, backtrack-match and backtrack-move steps, accumulating the
// result one step at a time.
package dynamic

import (
	"fmt"
	"strconv"

	"github.com/Iron-Ham/algoviz/internal/algorithm"
	"github.com/Iron-Ham/algoviz/internal/step"
)

// tableRun is the live working state of a tabulation generator.
type tableRun struct {
	table  *step.Table
	filled [][]bool
	path   [][]bool
	rec    *step.Recorder
}

func newTableRun(rows, cols int) *tableRun {
	return &tableRun{
		table:  step.NewTable(rows, cols),
		filled: grid(rows, cols),
		path:   grid(rows, cols),
		rec:    step.NewRecorder(2*rows*cols + 4),
	}
}

func grid(rows, cols int) [][]bool {
	g := make([][]bool, rows)
	for r := range g {
		g[r] = make([]bool, cols)
	}
	return g
}

// markPath puts a cell on the reconstruction path.
func (r *tableRun) markPath(row, col int) {
	r.path[row][col] = true
	r.table.States[row][col] = step.CellPath
}

// set writes a cell and marks it final.
func (r *tableRun) set(row, col int, v step.Value) {
	r.table.Cells[row][col] = v
	r.table.States[row][col] = step.CellFinal
	r.filled[row][col] = true
}

// focus highlights the cell being calculated and the cells it reads.
func (r *tableRun) focus(row, col int, reads ...step.Cell) {
	r.table.Row, r.table.Col = row, col
	r.table.Reads = reads
	for _, c := range reads {
		r.table.States[c.Row][c.Col] = step.CellReading
	}
	if row != step.Unset {
		r.table.States[row][col] = step.CellCalculating
	}
}

// unfocus restores the resting state of every highlighted cell.
func (r *tableRun) unfocus() {
	for _, c := range r.table.Reads {
		r.table.States[c.Row][c.Col] = r.resting(c.Row, c.Col)
	}
	if r.table.Row != step.Unset {
		r.table.States[r.table.Row][r.table.Col] = r.resting(r.table.Row, r.table.Col)
	}
	r.table.Row, r.table.Col = step.Unset, step.Unset
	r.table.Reads = nil
}

func (r *tableRun) resting(row, col int) step.CellState {
	if r.path[row][col] {
		return step.CellPath
	}
	if r.filled[row][col] {
		return step.CellFinal
	}
	return step.CellInitial
}

func (r *tableRun) emit(kind step.Kind, format string, args ...any) {
	r.rec.Emit(kind, fmt.Sprintf(format, args...), r.table)
}

func (r *tableRun) finish(kind step.Kind, format string, args ...any) step.Sequence {
	r.unfocus()
	return r.rec.Finish(kind, fmt.Sprintf(format, args...), r.table)
}

// calculate records the read step, writes the cell and records the fill.
func (r *tableRun) calculate(row, col int, v step.Value, reads []step.Cell, readMsg, fillMsg string) {
	r.focus(row, col, reads...)
	r.emit(step.KindReadCell, "%s", readMsg)
	r.table.Cells[row][col] = v
	r.filled[row][col] = true
	r.emit(step.KindFillCell, "%s", fillMsg)
	r.unfocus()
}

func cell(row, col int) step.Cell {
	return step.Cell{Row: row, Col: col}
}

func numberLabels(from, to int) []string {
	labels := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		labels = append(labels, strconv.Itoa(i))
	}
	return labels
}

func info(name, title, description string) algorithm.Info {
	return algorithm.Info{
		Name:        name,
		Title:       title,
		Family:      algorithm.FamilyDynamic,
		Shape:       algorithm.ShapeTable,
		Description: description,
	}
}
