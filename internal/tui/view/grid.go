package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Iron-Ham/algoviz/internal/render"
	"github.com/Iron-Ham/algoviz/internal/step"
	"github.com/Iron-Ham/algoviz/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Grid renders a table handle with its row and column labels. The cell
// being computed is drawn reversed.
func Grid(g *render.Grid, st *styles.Styles) string {
	if len(g.Cells) == 0 {
		return st.Muted.Render("(empty table)")
	}
	cols := len(g.Cells[0])

	headers := make([]string, 0, cols+1)
	headers = append(headers, "")
	for c := range cols {
		headers = append(headers, label(g.ColLabels, c))
	}
	rows := make([][]string, len(g.Cells))
	for r, row := range g.Cells {
		cells := make([]string, 0, cols+1)
		cells = append(cells, label(g.RowLabels, r))
		for _, cell := range row {
			if cell.State == step.CellInitial {
				cells = append(cells, "·")
				continue
			}
			cells = append(cells, cell.Value.String())
		}
		rows[r] = cells
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(st.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			cell := lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
			if row == table.HeaderRow || col == 0 {
				return cell.Inherit(st.Label)
			}
			v := g.Cells[row][col-1]
			style := cell.Foreground(st.CellColor(v.State))
			if row == g.Row && col-1 == g.Col {
				style = style.Reverse(true).Bold(true)
			}
			return style
		}).
		Headers(headers...).
		Rows(rows...)

	lines := []string{t.String()}
	if g.Sequence != "" {
		lines = append(lines, st.Label.Render("sequence ")+st.Success.Render(g.Sequence))
	}
	if len(g.Selected) > 0 {
		lines = append(lines, st.Label.Render("selected ")+st.Success.Render(fmt.Sprint(g.Selected)))
	}
	if g.Result != 0 && g.Position.IsLast() {
		lines = append(lines, st.Label.Render("result ")+st.Success.Render(g.Result.String()))
	}
	return strings.Join(lines, "\n")
}

func label(labels []string, i int) string {
	if i < len(labels) && labels[i] != "" {
		return labels[i]
	}
	return strconv.Itoa(i)
}
