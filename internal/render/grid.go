package render

import (
	"fmt"
	"slices"

	"github.com/Iron-Ham/algoviz/internal/step"
)

// CellView is the presentation state of one table cell.
type CellView struct {
	Value step.Value
	State step.CellState
}

// Grid is the handle for table payloads.
type Grid struct {
	Frame

	Cells     [][]CellView
	RowLabels []string
	ColLabels []string

	Row, Col int
	Sequence string
	Selected []int
	Result   step.Value
}

// NewGrid returns a rows x cols handle.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{Cells: make([][]CellView, rows), Row: step.Unset, Col: step.Unset}
	for r := range g.Cells {
		g.Cells[r] = make([]CellView, cols)
	}
	return g
}

// Caption implements Handle.
func (g *Grid) Caption() Frame { return g.Frame }

func (*Grid) isHandle() {}

func renderGrid(s step.Step, p *step.Table, h Handle, pos Position) error {
	g, ok := h.(*Grid)
	if !ok {
		return mismatch("a grid", h)
	}
	if len(p.Cells) != len(g.Cells) {
		return fmt.Errorf("table has %d rows, handle has %d", len(p.Cells), len(g.Cells))
	}
	for r, row := range p.Cells {
		if len(row) != len(g.Cells[r]) {
			return fmt.Errorf("table row %d has %d cells, handle has %d", r, len(row), len(g.Cells[r]))
		}
		for c, v := range row {
			g.Cells[r][c] = CellView{Value: v, State: p.States[r][c]}
		}
	}

	g.RowLabels = slices.Clone(p.RowLabels)
	g.ColLabels = slices.Clone(p.ColLabels)
	g.Row, g.Col = p.Row, p.Col
	g.Sequence = p.Sequence
	g.Selected = slices.Clone(p.Selected)
	g.Result = p.Result
	g.set(s, pos)
	return nil
}
