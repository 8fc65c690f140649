package styles

import (
	"github.com/Iron-Ham/algoviz/internal/render"
	"github.com/Iron-Ham/algoviz/internal/step"
	"github.com/charmbracelet/lipgloss"
)

// Styles is the set of lipgloss styles derived from one palette.
type Styles struct {
	Palette *ColorPalette

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Success  lipgloss.Style
	Label    lipgloss.Style

	// Status bar badges
	BadgePlaying lipgloss.Style
	BadgePaused  lipgloss.Style
	BadgeIdle    lipgloss.Style

	// Panel around the visualization
	ContentBox lipgloss.Style
	Border     lipgloss.Style

	// Help bar
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
	HelpSep  lipgloss.Style

	// Board squares
	LightSquare lipgloss.Style
	DarkSquare  lipgloss.Style
}

// New builds styles from a palette. A nil palette uses the default.
func New(p *ColorPalette) *Styles {
	if p == nil {
		p = DefaultPalette()
	}
	badge := lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(p.Surface)
	return &Styles{
		Palette: p,

		Title:    lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		Subtitle: lipgloss.NewStyle().Foreground(p.Muted).Italic(true),
		Text:     lipgloss.NewStyle().Foreground(p.Text),
		Muted:    lipgloss.NewStyle().Foreground(p.Muted),
		Error:    lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		Warning:  lipgloss.NewStyle().Foreground(p.Warning),
		Success:  lipgloss.NewStyle().Foreground(p.Secondary),
		Label:    lipgloss.NewStyle().Foreground(p.Muted),

		BadgePlaying: badge.Background(p.Secondary),
		BadgePaused:  badge.Background(p.Warning),
		BadgeIdle:    badge.Background(p.Muted),

		ContentBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		Border: lipgloss.NewStyle().Foreground(p.Border),

		HelpKey:  lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		HelpDesc: lipgloss.NewStyle().Foreground(p.Muted),
		HelpSep:  lipgloss.NewStyle().Foreground(p.Border),

		LightSquare: lipgloss.NewStyle().Background(p.Border).Foreground(p.Text),
		DarkSquare:  lipgloss.NewStyle().Background(p.Surface).Foreground(p.Text),
	}
}

// ForTheme builds styles for a named theme.
func ForTheme(name string) *Styles {
	return New(GetPalette(ThemeName(name)))
}

// ElementColor returns the bar color for an element state.
func (s *Styles) ElementColor(state step.ElementState) lipgloss.Color {
	p := s.Palette
	switch state {
	case step.ElementCompare, step.ElementChecked:
		return p.Compare
	case step.ElementSwap:
		return p.Swap
	case step.ElementPivot, step.ElementMin:
		return p.Pivot
	case step.ElementFound:
		return p.Found
	case step.ElementSorted, step.ElementPlaced:
		return p.Sorted
	case step.ElementCurrent:
		return p.Current
	default:
		return p.Text
	}
}

// Bar returns the style of one bar.
func (s *Styles) Bar(b render.Bar) lipgloss.Style {
	if b.Dimmed {
		return lipgloss.NewStyle().Foreground(s.Palette.Border)
	}
	return lipgloss.NewStyle().Foreground(s.ElementColor(b.State))
}

// VisualColor returns the color of a graph node or edge state.
func (s *Styles) VisualColor(state step.VisualState) lipgloss.Color {
	p := s.Palette
	switch state {
	case step.VisualProcessing:
		return p.Current
	case step.VisualVisited:
		return p.Sorted
	case step.VisualChecking:
		return p.Compare
	case step.VisualUpdated:
		return p.Found
	case step.VisualCycle:
		return p.Error
	default:
		return p.Muted
	}
}

// CellColor returns the color of a table cell state.
func (s *Styles) CellColor(state step.CellState) lipgloss.Color {
	p := s.Palette
	switch state {
	case step.CellReading:
		return p.Compare
	case step.CellCalculating:
		return p.Current
	case step.CellFinal:
		return p.Text
	case step.CellPath:
		return p.Path
	default:
		return p.Muted
	}
}

// SquareColor returns the piece color for a board square.
func (s *Styles) SquareColor(sq render.Square) lipgloss.Color {
	p := s.Palette
	switch sq {
	case render.SquareQueen:
		return p.Found
	case render.SquareCandidate:
		return p.Compare
	case render.SquareConflict:
		return p.Error
	case render.SquareAttacker:
		return p.Swap
	default:
		return p.Muted
	}
}
