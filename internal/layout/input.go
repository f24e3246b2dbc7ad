package layout

import (
	"github.com/alexisbeaulieu97/cui/internal/keyboard"
	"github.com/alexisbeaulieu97/cui/internal/style"
)

// Cursor glyph shown at the end of a focused input.
const inputCursor = "█"

// InputProps describes a single-line text field.
type InputProps struct {
	Value       string
	Label       string
	Placeholder string
	Error       string
	Focused     bool
}

// Input renders a bordered text field with an optional label above it and
// either the error message or a blank row below it.
func Input(p InputProps) Component {
	display := p.Value
	if display == "" && !p.Focused {
		display = p.Placeholder
	}

	valueColor, borderColor := "gray", "gray"
	if p.Focused {
		valueColor, borderColor = "white", "white"
	}
	if p.Error != "" {
		borderColor = "red"
	}

	cursor := " "
	if p.Focused {
		cursor = inputCursor
	}

	field := Box(style.Attributes{
		Paint: style.Paint{BorderColor: style.Of(borderColor)},
		Layout: style.Layout{
			PaddingX: style.Of(1),
			Border:   style.Of(true),
		},
	}, Flex(style.Attributes{},
		Text(display, style.Attributes{Paint: style.Paint{Color: style.Of(valueColor)}}),
		Text(cursor, style.Attributes{Paint: style.Paint{Color: style.Of("#ff6600")}}),
	))

	var children []Node
	if p.Label != "" {
		children = append(children, Text(p.Label, style.Attributes{Paint: style.Paint{Color: style.Of("gray")}}))
	}
	children = append(children, field)
	if p.Error != "" {
		children = append(children, Text(p.Error, style.Attributes{Paint: style.Paint{Color: style.Of("red")}}))
	} else {
		children = append(children, Break())
	}
	return Stack(style.Attributes{}, children...)
}

// ApplyInputKey edits value with a key press: printable characters are
// appended and Backspace removes the last character. It reports whether
// value changed.
func ApplyInputKey(ev *keyboard.KeyEvent, value string) (string, bool) {
	switch {
	case ev.Printable():
		return value + ev.Key, true
	case ev.Key == keyboard.KeyBackspace && value != "":
		r := []rune(value)
		return string(r[:len(r)-1]), true
	}
	return value, false
}
