package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Iron-Ham/algoviz/internal/render"
	"github.com/Iron-Ham/algoviz/internal/step"
	"github.com/Iron-Ham/algoviz/internal/tui/styles"
)

const (
	barGlyph      = "█"
	maxColumnWide = 5
	minBarHeight  = 3
)

// Bars renders an array handle as a vertical bar chart with value, index
// and range marker rows beneath it.
func Bars(b *render.Bars, st *styles.Styles, width, height int) string {
	if len(b.Bars) == 0 {
		return st.Muted.Render("(empty array)")
	}

	col := columnWidth(len(b.Bars), width)
	height = max(height, minBarHeight)
	top := max(b.Max(), 1)

	var sb strings.Builder
	heights := make([]int, len(b.Bars))
	for i, bar := range b.Bars {
		heights[i] = scaledHeight(bar.Value, top, height)
	}
	glyph := strings.Repeat(barGlyph, max(col-1, 1))
	blank := strings.Repeat(" ", max(col-1, 1))
	for row := height; row >= 1; row-- {
		for i, bar := range b.Bars {
			if heights[i] >= row {
				sb.WriteString(st.Bar(bar).Render(glyph))
			} else {
				sb.WriteString(blank)
			}
			if col > 1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(barRow(b, col, func(i int, bar render.Bar) string {
		return st.Bar(bar).Render(fit(strconv.Itoa(bar.Value), col-1))
	}))
	sb.WriteString(barRow(b, col, func(i int, _ render.Bar) string {
		return st.Muted.Render(fit(strconv.Itoa(i), col-1))
	}))
	if markers := markerRow(b, col); strings.TrimSpace(markers) != "" {
		sb.WriteString(st.Label.Render(markers))
		sb.WriteByte('\n')
	}

	var extra []string
	if b.HasTarget {
		extra = append(extra, st.Label.Render("target ")+st.Text.Render(strconv.Itoa(b.Target)))
	}
	if b.Depth > 0 {
		extra = append(extra, st.Label.Render("depth ")+st.Text.Render(strconv.Itoa(b.Depth)))
	}
	if len(b.Aux) > 0 {
		label := b.AuxLabel
		if label == "" {
			label = "aux"
		}
		extra = append(extra, st.Label.Render(label+" ")+st.Text.Render(fmt.Sprint(b.Aux)))
	}
	if len(extra) > 0 {
		sb.WriteString(strings.Join(extra, "   "))
		sb.WriteByte('\n')
	}
	return strings.TrimRight(sb.String(), "\n")
}

// columnWidth picks the widest column, gap included, that fits n bars.
func columnWidth(n, width int) int {
	if width <= 0 {
		return maxColumnWide
	}
	return min(max(width/n, 1), maxColumnWide)
}

// scaledHeight maps v onto 0..height; positive values get at least one row.
func scaledHeight(v, top, height int) int {
	if v <= 0 {
		return 0
	}
	return max((v*height+top-1)/top, 1)
}

func barRow(b *render.Bars, col int, cell func(int, render.Bar) string) string {
	if col < 2 {
		return ""
	}
	var sb strings.Builder
	for i, bar := range b.Bars {
		sb.WriteString(cell(i, bar))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	return sb.String()
}

// markerRow labels the low, mid and high indices of the active range.
func markerRow(b *render.Bars, col int) string {
	cells := make([]string, len(b.Bars))
	mark := func(i int, label string) {
		if i == step.Unset || i < 0 || i >= len(cells) {
			return
		}
		cells[i] += label
	}
	mark(b.Low, "L")
	mark(b.Mid, "M")
	mark(b.High, "H")

	var sb strings.Builder
	for _, c := range cells {
		sb.WriteString(fit(c, max(col-1, 1)))
		if col > 1 {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
