package tui

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/cui/internal/keyboard"
)

// Update handles Bubbletea messages and drives the app's loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	l := m.s.app.Loop()

	switch msg := msg.(type) {
	case frameMsg:
		l.RunPending()
		l.Frame()
		return m, m.tick()
	case wakeMsg:
		l.RunPending()
		return m, m.waitForWake()
	case tea.WindowSizeMsg:
		m.s.app.Resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.s.quit = true
			return m, tea.Quit
		}
		if ev := keyEvent(msg); ev != nil {
			m.s.app.HandleKey(ev)
			l.RunPending()
		}
		if m.s.quit {
			return m, tea.Quit
		}
	}

	return m, nil
}

// keyEvent translates a Bubbletea key into the engine's key names. Keys
// the engine has no name for return nil.
func keyEvent(msg tea.KeyMsg) *keyboard.KeyEvent {
	ev := &keyboard.KeyEvent{Alt: msg.Alt}

	switch msg.Type {
	case tea.KeyEnter:
		ev.Key = keyboard.KeyEnter
	case tea.KeyEsc:
		ev.Key = keyboard.KeyEscape
	case tea.KeyTab:
		ev.Key = keyboard.KeyTab
	case tea.KeyShiftTab:
		ev.Key = keyboard.KeyTab
		ev.Shift = true
	case tea.KeyBackspace:
		ev.Key = keyboard.KeyBackspace
	case tea.KeyUp:
		ev.Key = keyboard.KeyUp
	case tea.KeyDown:
		ev.Key = keyboard.KeyDown
	case tea.KeyLeft:
		ev.Key = keyboard.KeyLeft
	case tea.KeyRight:
		ev.Key = keyboard.KeyRight
	case tea.KeySpace:
		ev.Key = keyboard.KeySpace
	case tea.KeyRunes:
		if msg.Paste || len(msg.Runes) != 1 {
			return nil
		}
		ev.Key = string(msg.Runes)
		ev.Shift = unicode.IsUpper(msg.Runes[0])
	default:
		name, ok := strings.CutPrefix(msg.String(), "ctrl+")
		if !ok {
			return nil
		}
		ev.Key = name
		ev.Ctrl = true
	}

	return ev
}
