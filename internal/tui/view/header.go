package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/algoviz/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// HeaderState holds what the header shows.
type HeaderState struct {
	Title     string
	Algorithm string
	State     string // idle, paused or playing
	Index     int
	Total     int
	Speed     int
	MaxSpeed  int
	Width     int
}

// Header renders the title line and the progress line.
func Header(s HeaderState, st *styles.Styles) string {
	title := st.Title.Render(s.Title)
	if s.Algorithm != "" && s.Algorithm != s.Title {
		title += st.Muted.Render("  " + s.Algorithm)
	}

	badge := stateBadge(s.State, st)
	progress := st.Muted.Render("no run")
	if s.Total > 0 {
		progress = fmt.Sprintf("%s %s",
			ProgressBar(s.Index+1, s.Total, progressWidth(s.Width), st),
			st.Text.Render(fmt.Sprintf("step %d/%d", s.Index+1, s.Total)))
	}
	speed := st.Label.Render("speed ") + st.Text.Render(fmt.Sprintf("%d/%d", s.Speed, s.MaxSpeed))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		strings.Join([]string{badge, progress, speed}, "  "),
	)
}

func stateBadge(state string, st *styles.Styles) string {
	switch state {
	case "playing":
		return st.BadgePlaying.Render("▶ PLAYING")
	case "paused":
		return st.BadgePaused.Render("❚❚ PAUSED")
	default:
		return st.BadgeIdle.Render("IDLE")
	}
}

func progressWidth(width int) int {
	if width <= 0 {
		return 20
	}
	return min(max(width/4, 10), 40)
}

// ProgressBar renders done/total as a bar of width cells.
func ProgressBar(done, total, width int, st *styles.Styles) string {
	if total <= 0 || width <= 0 {
		return ""
	}
	done = min(max(done, 0), total)
	filled := done * width / total
	return st.Success.Render(strings.Repeat("━", filled)) +
		st.Border.Render(strings.Repeat("━", width-filled))
}

// StatusBar renders the status message followed by the muted playback note.
// Errors are styled as such.
func StatusBar(text, note string, isError bool, st *styles.Styles) string {
	var line string
	switch {
	case text == "":
	case isError:
		line = st.Error.Render("✗ " + text)
	default:
		line = st.Text.Render(text)
	}
	if note == "" {
		return line
	}
	if line == "" {
		return st.Muted.Render(note)
	}
	return line + st.Muted.Render("  ["+note+"]")
}
