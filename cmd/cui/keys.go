package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alexisbeaulieu97/cui/internal/keyboard"
)

var namedKeys = map[string]string{
	"enter":     keyboard.KeyEnter,
	"esc":       keyboard.KeyEscape,
	"escape":    keyboard.KeyEscape,
	"tab":       keyboard.KeyTab,
	"backspace": keyboard.KeyBackspace,
	"up":        keyboard.KeyUp,
	"down":      keyboard.KeyDown,
	"left":      keyboard.KeyLeft,
	"right":     keyboard.KeyRight,
	"space":     keyboard.KeySpace,
}

// parseKey turns a key name from the command line into a key event.
func parseKey(name string) (*keyboard.KeyEvent, error) {
	ev := &keyboard.KeyEvent{}
	rest := name
	for {
		if r, ok := strings.CutPrefix(rest, "shift+"); ok {
			ev.Shift, rest = true, r
		} else if r, ok := strings.CutPrefix(rest, "ctrl+"); ok {
			ev.Ctrl, rest = true, r
		} else if r, ok := strings.CutPrefix(rest, "alt+"); ok {
			ev.Alt, rest = true, r
		} else {
			break
		}
	}

	if key, ok := namedKeys[strings.ToLower(rest)]; ok {
		ev.Key = key
		return ev, nil
	}
	if utf8.RuneCountInString(rest) == 1 {
		ev.Key = rest
		return ev, nil
	}
	return nil, fmt.Errorf("unknown key %q", name)
}
