package tui

import (
	"io"

	"github.com/alexisbeaulieu97/cui/internal/paint"
)

// screen is the painter the app draws into. It keeps the last frame for
// View.
type screen struct {
	ansi  *paint.ANSI
	plain bool
	frame string
}

func newScreen(w io.Writer, force, plain bool) *screen {
	return &screen{ansi: paint.NewANSI(w, force), plain: plain}
}

func (s *screen) Paint(text string, styles []string) error {
	if s.plain {
		s.frame = paint.Plain(text, styles)
		return nil
	}
	s.frame = s.ansi.Render(text, styles)
	return nil
}

// View returns the last frame the app painted.
func (m Model) View() string {
	if m.s.quit {
		return ""
	}
	return m.s.screen.frame
}
