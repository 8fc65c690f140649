package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/algoviz/internal/render"
	"github.com/Iron-Ham/algoviz/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// Visualization renders any handle within width x height cells.
func Visualization(h render.Handle, st *styles.Styles, width, height int) string {
	switch h := h.(type) {
	case *render.Bars:
		return Bars(h, st, width, height)
	case *render.Network:
		return Network(h, st, width)
	case *render.Grid:
		return Grid(h, st)
	case *render.Chessboard:
		return Board(h, st)
	case *render.Notice:
		return Notice(h, st, width)
	case nil:
		return st.Muted.Render("Nothing loaded.")
	default:
		return st.Error.Render(fmt.Sprintf("cannot display %T", h))
	}
}

// Notice renders the message of a run with nothing to draw.
func Notice(n *render.Notice, st *styles.Styles, width int) string {
	msg := n.Message
	if msg == "" {
		msg = "Nothing to show."
	}
	box := st.ContentBox
	if width > 4 {
		box = box.Width(min(width-2, 72))
	}
	return box.Render(st.Warning.Render(msg))
}

// fit pads or cuts s to exactly w cells, right-aligned.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if lipgloss.Width(s) > w {
		r := []rune(s)
		if w == 1 {
			return "…"
		}
		return string(r[:w-1]) + "…"
	}
	return strings.Repeat(" ", w-lipgloss.Width(s)) + s
}
