package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault ThemeName = "default" // Purple/green dark theme
	ThemeMonokai ThemeName = "monokai" // Classic Monokai editor colors
	ThemeDracula ThemeName = "dracula" // Dracula theme colors
	ThemeNord    ThemeName = "nord"    // Nord theme - cool blue-gray
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeMonokai),
		string(ThemeDracula),
		string(ThemeNord),
	}
}

// IsValidTheme checks if a theme name is a built-in theme.
func IsValidTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// ColorPalette defines the color scheme for a theme.
type ColorPalette struct {
	// Primary accent color (titles, active elements)
	Primary lipgloss.Color
	// Secondary accent color (success states)
	Secondary lipgloss.Color
	// Warning color
	Warning lipgloss.Color
	// Error color (render failures, conflicts)
	Error lipgloss.Color
	// Muted color (de-emphasized text, dimmed bars)
	Muted lipgloss.Color
	// Surface color (board and panel backgrounds)
	Surface lipgloss.Color
	// Text color (primary text)
	Text lipgloss.Color
	// Border color (panel borders)
	Border lipgloss.Color

	// Highlight colors shared by bars, nodes, cells and squares
	Compare lipgloss.Color
	Swap    lipgloss.Color
	Pivot   lipgloss.Color
	Found   lipgloss.Color
	Sorted  lipgloss.Color
	Current lipgloss.Color
	Path    lipgloss.Color
}

// DefaultPalette returns the default purple/green dark theme palette.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#A78BFA"), // Purple (violet-400)
		Secondary: lipgloss.Color("#10B981"), // Green
		Warning:   lipgloss.Color("#F59E0B"), // Amber
		Error:     lipgloss.Color("#F87171"), // Red (red-400)
		Muted:     lipgloss.Color("#6B7280"), // Gray
		Surface:   lipgloss.Color("#1F2937"), // Dark surface
		Text:      lipgloss.Color("#F9FAFB"), // Light text
		Border:    lipgloss.Color("#4B5563"), // Gray

		Compare: lipgloss.Color("#FBBF24"), // Yellow
		Swap:    lipgloss.Color("#F87171"), // Red
		Pivot:   lipgloss.Color("#F472B6"), // Pink
		Found:   lipgloss.Color("#10B981"), // Green
		Sorted:  lipgloss.Color("#A78BFA"), // Purple
		Current: lipgloss.Color("#60A5FA"), // Blue
		Path:    lipgloss.Color("#FB923C"), // Orange
	}
}

// MonokaiPalette returns the classic Monokai editor theme palette.
func MonokaiPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#F92672"), // Monokai pink/magenta
		Secondary: lipgloss.Color("#A6E22E"), // Monokai green
		Warning:   lipgloss.Color("#E6DB74"), // Monokai yellow
		Error:     lipgloss.Color("#F92672"), // Monokai pink (same as primary)
		Muted:     lipgloss.Color("#75715E"), // Monokai comment gray
		Surface:   lipgloss.Color("#272822"), // Monokai background
		Text:      lipgloss.Color("#F8F8F2"), // Monokai foreground
		Border:    lipgloss.Color("#49483E"), // Monokai selection

		Compare: lipgloss.Color("#E6DB74"),
		Swap:    lipgloss.Color("#F92672"),
		Pivot:   lipgloss.Color("#FD971F"),
		Found:   lipgloss.Color("#A6E22E"),
		Sorted:  lipgloss.Color("#AE81FF"),
		Current: lipgloss.Color("#66D9EF"),
		Path:    lipgloss.Color("#FD971F"),
	}
}

// DraculaPalette returns the Dracula theme palette.
func DraculaPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#BD93F9"), // Dracula purple
		Secondary: lipgloss.Color("#50FA7B"), // Dracula green
		Warning:   lipgloss.Color("#F1FA8C"), // Dracula yellow
		Error:     lipgloss.Color("#FF5555"), // Dracula red
		Muted:     lipgloss.Color("#6272A4"), // Dracula comment
		Surface:   lipgloss.Color("#282A36"), // Dracula background
		Text:      lipgloss.Color("#F8F8F2"), // Dracula foreground
		Border:    lipgloss.Color("#44475A"), // Dracula selection

		Compare: lipgloss.Color("#F1FA8C"),
		Swap:    lipgloss.Color("#FF5555"),
		Pivot:   lipgloss.Color("#FF79C6"),
		Found:   lipgloss.Color("#50FA7B"),
		Sorted:  lipgloss.Color("#BD93F9"),
		Current: lipgloss.Color("#8BE9FD"),
		Path:    lipgloss.Color("#FFB86C"),
	}
}

// NordPalette returns the Nord theme palette.
func NordPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#88C0D0"), // Nord frost (cyan)
		Secondary: lipgloss.Color("#A3BE8C"), // Nord aurora green
		Warning:   lipgloss.Color("#EBCB8B"), // Nord aurora yellow
		Error:     lipgloss.Color("#BF616A"), // Nord aurora red
		Muted:     lipgloss.Color("#4C566A"), // Nord polar night 3
		Surface:   lipgloss.Color("#2E3440"), // Nord polar night 0
		Text:      lipgloss.Color("#ECEFF4"), // Nord snow storm 2
		Border:    lipgloss.Color("#3B4252"), // Nord polar night 1

		Compare: lipgloss.Color("#EBCB8B"),
		Swap:    lipgloss.Color("#BF616A"),
		Pivot:   lipgloss.Color("#B48EAD"),
		Found:   lipgloss.Color("#A3BE8C"),
		Sorted:  lipgloss.Color("#5E81AC"),
		Current: lipgloss.Color("#81A1C1"),
		Path:    lipgloss.Color("#D08770"),
	}
}

// GetPalette returns the color palette for the given theme name.
// Returns the default palette for unknown theme names.
func GetPalette(name ThemeName) *ColorPalette {
	switch name {
	case ThemeMonokai:
		return MonokaiPalette()
	case ThemeDracula:
		return DraculaPalette()
	case ThemeNord:
		return NordPalette()
	default:
		return DefaultPalette()
	}
}
