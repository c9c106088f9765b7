package passmetertui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go.inout.gg/passmeter/passmeterview"
)

// Semantic colors shared by both themes.
var (
	Destructive = lipgloss.Color("#e53935") // Red
	Warning     = lipgloss.Color("#FFC107") // Yellow
	Success     = lipgloss.Color("#8BC34A") // Lime Green
	Info        = lipgloss.Color("#2196F3") // Blue
)

const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Theme holds the colors of the meter.
type Theme struct {
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Empty      lipgloss.Color
	Bands      map[passmeterview.Band]lipgloss.Color
	IsDark     bool
}

func bandColors() map[passmeterview.Band]lipgloss.Color {
	return map[passmeterview.Band]lipgloss.Color{
		passmeterview.BandVeryWeak:   Destructive,
		passmeterview.BandWeak:       lipgloss.Color("#ff8a65"),
		passmeterview.BandFair:       Warning,
		passmeterview.BandGood:       lipgloss.Color("#4db6ac"),
		passmeterview.BandStrong:     Info,
		passmeterview.BandVeryStrong: Success,
	}
}

// DarkTheme returns the theme for dark terminals.
func DarkTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#f2f2f2"),
		Muted:      lipgloss.Color("#7a869a"),
		Border:     lipgloss.Color("#2a3850"),
		Empty:      lipgloss.Color("#2a3850"),
		Bands:      bandColors(),
		IsDark:     true,
	}
}

// LightTheme returns the theme for light terminals.
func LightTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#101F38"),
		Muted:      lipgloss.Color("#8a93a0"),
		Border:     lipgloss.Color("#dce0e5"),
		Empty:      lipgloss.Color("#e1e4e8"),
		Bands:      bandColors(),
		IsDark:     false,
	}
}

// ParseTheme resolves a theme name. "auto" asks the terminal for its
// background color.
func ParseTheme(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ThemeAuto, "":
		if lipgloss.HasDarkBackground() {
			return DarkTheme(), nil
		}

		return LightTheme(), nil
	case ThemeDark:
		return DarkTheme(), nil
	case ThemeLight:
		return LightTheme(), nil
	}

	return Theme{}, fmt.Errorf("passmeter/passmetertui: unknown theme %q", name)
}

// BandColor returns the color of b, or the muted color for BandNone.
func (t Theme) BandColor(b passmeterview.Band) lipgloss.Color {
	if c, ok := t.Bands[b]; ok {
		return c
	}

	return t.Muted
}

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Input   lipgloss.Style
	Shaking lipgloss.Style
	Verdict lipgloss.Style
	Met     lipgloss.Style
	NotMet  lipgloss.Style
	Hint    lipgloss.Style
	Frame   lipgloss.Style
	theme   Theme
}

// NewStyles builds the styles of theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(theme.Foreground),
		Label:   lipgloss.NewStyle().Foreground(theme.Muted),
		Input:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(theme.Border).Padding(0, 1),
		Shaking: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Destructive).Padding(0, 1).MarginLeft(2),
		Verdict: lipgloss.NewStyle().Bold(true),
		Met:     lipgloss.NewStyle().Foreground(Success),
		NotMet:  lipgloss.NewStyle().Foreground(theme.Muted),
		Hint:    lipgloss.NewStyle().Foreground(theme.Muted).Italic(true),
		Frame:   lipgloss.NewStyle().Padding(1, 2),
		theme:   theme,
	}
}
