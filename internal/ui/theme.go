// Package ui provides the terminal presentation layer of uiprompt:
// colour theme, cards, icons, spinner and the Markdown prompt pager.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme modes accepted by NewTheme.
const (
	ModeDark  = "dark"
	ModeLight = "light"
)

// ThemeConfig selects the palette and whether colour output is allowed.
type ThemeConfig struct {
	Mode    string
	NoColor bool
}

// Colors is the resolved palette for one theme mode.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Text      string
	Muted     string
	Border    string
}

var darkColors = Colors{
	Primary:   "#DA7756",
	Secondary: "#A78BFA",
	Success:   "#10B981",
	Warning:   "#F59E0B",
	Error:     "#EF4444",
	Text:      "#F3F4F6",
	Muted:     "#9CA3AF",
	Border:    "#4B5563",
}

var lightColors = Colors{
	Primary:   "#C45A3C",
	Secondary: "#5B21B6",
	Success:   "#059669",
	Warning:   "#D97706",
	Error:     "#DC2626",
	Text:      "#111827",
	Muted:     "#6B7280",
	Border:    "#D1D5DB",
}

// Theme carries the palette used by every renderer in the package.
type Theme struct {
	Mode    string
	NoColor bool
	Colors  Colors
}

// NewTheme resolves cfg into a Theme. Unknown modes fall back to dark.
func NewTheme(cfg ThemeConfig) *Theme {
	t := &Theme{Mode: ModeDark, NoColor: cfg.NoColor, Colors: darkColors}
	if cfg.Mode == ModeLight {
		t.Mode = ModeLight
		t.Colors = lightColors
	}
	return t
}

// Style returns a foreground style for color, or a plain style when
// colour is disabled.
func (t *Theme) Style(color string) lipgloss.Style {
	if t.NoColor || color == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

func (t *Theme) Primary() lipgloss.Style { return t.Style(t.Colors.Primary) }
func (t *Theme) Success() lipgloss.Style { return t.Style(t.Colors.Success) }
func (t *Theme) Warning() lipgloss.Style { return t.Style(t.Colors.Warning) }
func (t *Theme) Error() lipgloss.Style   { return t.Style(t.Colors.Error) }
func (t *Theme) Muted() lipgloss.Style   { return t.Style(t.Colors.Muted) }

func (t *Theme) cardStyle() lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)
	if !t.NoColor {
		s = s.BorderForeground(lipgloss.Color(t.Colors.Border))
	}
	return s
}

// Card renders content inside a rounded border box with a styled title.
func (t *Theme) Card(title, content string) string {
	body := t.Primary().Bold(true).Render(title)
	if content != "" {
		body += "\n\n" + content
	}
	return t.cardStyle().Render(body)
}

// SuccessCard renders a check-marked title followed by detail lines.
func (t *Theme) SuccessCard(title string, details ...string) string {
	var body strings.Builder
	body.WriteString(t.Success().Render("✓") + " " + title)
	if len(details) > 0 {
		body.WriteString("\n\n")
		body.WriteString(strings.Join(details, "\n"))
	}
	return t.cardStyle().Render(body.String())
}

// KV is one label/value row of a key-value listing.
type KV struct {
	Key   string
	Value string
}

// KeyValueLines aligns keys into a column and renders one row per pair.
func (t *Theme) KeyValueLines(pairs []KV) string {
	width := 0
	for _, p := range pairs {
		width = max(width, lipgloss.Width(p.Key))
	}
	lines := make([]string, len(pairs))
	for i, p := range pairs {
		pad := strings.Repeat(" ", width-lipgloss.Width(p.Key))
		lines[i] = t.Muted().Render(p.Key+pad) + "  " + p.Value
	}
	return strings.Join(lines, "\n")
}

// GlamourStyle names the glamour standard style matching the theme.
func (t *Theme) GlamourStyle() string {
	if t.NoColor {
		return "notty"
	}
	return t.Mode
}
