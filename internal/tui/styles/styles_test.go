package styles

import (
	"testing"

	"github.com/Iron-Ham/algoviz/internal/render"
	"github.com/Iron-Ham/algoviz/internal/step"
	"github.com/charmbracelet/lipgloss"
)

func TestGetPalette(t *testing.T) {
	tests := []struct {
		name ThemeName
		want lipgloss.Color
	}{
		{ThemeDefault, DefaultPalette().Primary},
		{ThemeMonokai, MonokaiPalette().Primary},
		{ThemeDracula, DraculaPalette().Primary},
		{ThemeNord, NordPalette().Primary},
		{"unknown", DefaultPalette().Primary},
	}
	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			if got := GetPalette(tt.name).Primary; got != tt.want {
				t.Errorf("GetPalette(%q).Primary = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestBuiltinThemes_AllValid(t *testing.T) {
	for _, name := range BuiltinThemes() {
		if !IsValidTheme(name) {
			t.Errorf("IsValidTheme(%q) = false", name)
		}
	}
	if IsValidTheme("solarized") {
		t.Error("IsValidTheme(solarized) = true")
	}
}

func TestPalettes_Complete(t *testing.T) {
	for _, name := range BuiltinThemes() {
		p := GetPalette(ThemeName(name))
		colors := map[string]lipgloss.Color{
			"Primary": p.Primary, "Secondary": p.Secondary, "Warning": p.Warning,
			"Error": p.Error, "Muted": p.Muted, "Surface": p.Surface,
			"Text": p.Text, "Border": p.Border, "Compare": p.Compare,
			"Swap": p.Swap, "Pivot": p.Pivot, "Found": p.Found,
			"Sorted": p.Sorted, "Current": p.Current, "Path": p.Path,
		}
		for field, c := range colors {
			if c == "" {
				t.Errorf("%s palette: %s is empty", name, field)
			}
		}
	}
}

func TestStyles_StateColors(t *testing.T) {
	s := New(nil)
	p := s.Palette

	if got := s.ElementColor(step.ElementSwap); got != p.Swap {
		t.Errorf("ElementColor(swap) = %q, want %q", got, p.Swap)
	}
	if got := s.ElementColor(step.ElementDefault); got != p.Text {
		t.Errorf("ElementColor(default) = %q, want %q", got, p.Text)
	}
	if got := s.VisualColor(step.VisualCycle); got != p.Error {
		t.Errorf("VisualColor(cycle) = %q, want %q", got, p.Error)
	}
	if got := s.CellColor(step.CellPath); got != p.Path {
		t.Errorf("CellColor(path) = %q, want %q", got, p.Path)
	}
	if got := s.SquareColor(render.SquareConflict); got != p.Error {
		t.Errorf("SquareColor(conflict) = %q, want %q", got, p.Error)
	}

	dimmed := s.Bar(render.Bar{Value: 3, State: step.ElementSwap, Dimmed: true})
	if got := dimmed.GetForeground(); got != p.Border {
		t.Errorf("dimmed bar foreground = %v, want %v", got, p.Border)
	}
}
