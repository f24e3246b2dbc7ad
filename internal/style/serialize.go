package style

import (
	"strings"
)

// Serialize renders the paint attributes of a as CSS-like declarations,
// e.g. "color: white; font-weight: bold;". Output order is fixed so equal
// styles always serialize identically. Layout attributes are not emitted:
// they have already shaped the text by the time a segment is painted.
func Serialize(a Attributes) string {
	var b strings.Builder
	write := func(key, value string) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteByte(';')
	}

	if v, ok := a.Color.Get(); ok {
		write("color", v)
	}
	if v, ok := a.Background.Get(); ok {
		write("background-color", v)
	}
	if v, ok := a.BorderColor.Get(); ok {
		write("border-color", v)
	}
	if v, ok := a.Bold.Get(); ok {
		write("font-weight", pick(v, "bold", "normal"))
	}
	if v, ok := a.Italic.Get(); ok {
		write("font-style", pick(v, "italic", "normal"))
	}
	if v, ok := a.Faint.Get(); ok {
		write("opacity", pick(v, "0.5", "1"))
	}
	if decoration := textDecoration(a.Paint); decoration != "" {
		write("text-decoration", decoration)
	}
	if v, ok := a.Transform.Get(); ok {
		write("text-transform", string(v))
	}
	return b.String()
}

func textDecoration(p Paint) string {
	underline, hasUnderline := p.Underline.Get()
	strike, hasStrike := p.Strikethrough.Get()
	if !hasUnderline && !hasStrike {
		return ""
	}
	parts := make([]string, 0, 2)
	if underline {
		parts = append(parts, "underline")
	}
	if strike {
		parts = append(parts, "line-through")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}

// ParseDeclarations reads declarations produced by Serialize back into
// Attributes. Unknown properties are ignored.
func ParseDeclarations(decl string) Attributes {
	var a Attributes
	for _, part := range strings.Split(decl, ";") {
		key, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		switch key {
		case "color":
			a.Color = Of(value)
		case "background", "background-color":
			a.Background = Of(value)
		case "border-color":
			a.BorderColor = Of(value)
		case "font-weight":
			a.Bold = Of(value == "bold" || value == "bolder" || value == "700" || value == "800" || value == "900")
		case "font-style":
			a.Italic = Of(value == "italic" || value == "oblique")
		case "opacity":
			a.Faint = Of(value != "1")
		case "text-decoration":
			a.Underline = Of(strings.Contains(value, "underline"))
			a.Strikethrough = Of(strings.Contains(value, "line-through"))
		case "text-transform":
			a.Transform = Of(Transform(value))
		}
	}
	return a
}
