package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/algoviz/internal/render"
	"github.com/Iron-Ham/algoviz/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Network renders a graph handle as a node table beside an edge table, with
// the priority queue and any negative cycle listed beneath.
func Network(n *render.Network, st *styles.Styles, width int) string {
	nodes := nodeTable(n, st)
	edges := edgeTable(n, st)

	var body string
	if width > 0 && lipgloss.Width(nodes)+lipgloss.Width(edges)+2 > width {
		body = lipgloss.JoinVertical(lipgloss.Left, nodes, edges)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, nodes, "  ", edges)
	}

	lines := []string{body}
	if len(n.Queue) > 0 {
		entries := make([]string, len(n.Queue))
		for i, q := range n.Queue {
			entries[i] = fmt.Sprintf("%s(%s)", q.ID, q.Priority)
		}
		lines = append(lines, st.Label.Render("queue ")+st.Text.Render(strings.Join(entries, " ")))
	}
	if n.Iteration > 0 {
		lines = append(lines, st.Label.Render("iteration ")+st.Text.Render(fmt.Sprint(n.Iteration)))
	}
	if len(n.Cycle) > 0 {
		lines = append(lines, st.Error.Render("cycle "+strings.Join(n.Cycle, " → ")))
	}
	if !n.Total.IsInf() && n.Total != 0 {
		lines = append(lines, st.Label.Render("total ")+st.Success.Render(n.Total.String()))
	}
	return strings.Join(lines, "\n")
}

func nodeTable(n *render.Network, st *styles.Styles) string {
	rows := make([][]string, 0, len(n.NodeOrder))
	for _, id := range n.NodeOrder {
		node := n.Nodes[id]
		via := node.Predecessor
		if via == "" {
			via = "-"
		}
		name := id
		if node.Current {
			name = "▸ " + id
		}
		rows = append(rows, []string{name, node.Distance.String(), via, string(node.State)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(st.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			cell := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return cell.Inherit(st.Title)
			}
			node := n.Nodes[n.NodeOrder[row]]
			style := cell.Foreground(st.VisualColor(node.State))
			if node.Current {
				style = style.Bold(true)
			}
			return style
		}).
		Headers("Node", "Dist", "Via", "State").
		Rows(rows...)
	return t.String()
}

func edgeTable(n *render.Network, st *styles.Styles) string {
	arrow := "—"
	if n.Directed {
		arrow = "→"
	}
	rows := make([][]string, 0, len(n.EdgeOrder))
	for _, id := range n.EdgeOrder {
		e := n.Edges[id]
		rows = append(rows, []string{e.From + " " + arrow + " " + e.To, e.Weight.String(), string(e.State)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(st.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			cell := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return cell.Inherit(st.Title)
			}
			e := n.Edges[n.EdgeOrder[row]]
			style := cell.Foreground(st.VisualColor(e.State))
			if e.Focused {
				style = style.Bold(true).Underline(true)
			}
			return style
		}).
		Headers("Edge", "Weight", "State").
		Rows(rows...)
	return t.String()
}
