package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// namedColors maps the colour names used across the storefront to terminal
// colours. Anything else (hex, ANSI index) passes through to lipgloss as is.
var namedColors = map[string]string{
	"white":  "#ffffff",
	"black":  "#000000",
	"gray":   "#666666",
	"grey":   "#666666",
	"red":    "#ff4444",
	"green":  "#118b39",
	"blue":   "#169fc1",
	"yellow": "#f5bb1d",
	"orange": "#ff4800",
	"pink":   "#d53c81",
}

// ResolveColor returns the terminal colour for a style colour value.
func ResolveColor(value string) lipgloss.Color {
	if hex, ok := namedColors[strings.ToLower(value)]; ok {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(value)
}

// Lipgloss converts the paint attributes of a into a lipgloss style.
// Layout attributes are ignored; the engine has already applied them.
func Lipgloss(a Attributes) lipgloss.Style {
	s := lipgloss.NewStyle()
	if v, ok := a.Color.Get(); ok {
		s = s.Foreground(ResolveColor(v))
	}
	if v, ok := a.Background.Get(); ok {
		s = s.Background(ResolveColor(v))
	}
	if v, ok := a.Bold.Get(); ok {
		s = s.Bold(v)
	}
	if v, ok := a.Italic.Get(); ok {
		s = s.Italic(v)
	}
	if v, ok := a.Faint.Get(); ok {
		s = s.Faint(v)
	}
	if v, ok := a.Underline.Get(); ok {
		s = s.Underline(v)
	}
	if v, ok := a.Strikethrough.Get(); ok {
		s = s.Strikethrough(v)
	}
	return s
}

// BorderGlyphs returns the glyph set for a border variant, defaulting to
// single when the variant is empty or unknown.
func BorderGlyphs(v BorderVariant) lipgloss.Border {
	switch v {
	case BorderDouble:
		return lipgloss.DoubleBorder()
	case BorderRounded:
		return lipgloss.RoundedBorder()
	default:
		return lipgloss.NormalBorder()
	}
}
