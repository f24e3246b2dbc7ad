package storefront

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/alexisbeaulieu97/cui/internal/hooks"
	"github.com/alexisbeaulieu97/cui/internal/layout"
)

const (
	logoText    = "terminal"
	logoCursor  = "█"
	cursorBlink = 700 * time.Millisecond
)

var splashDef = layout.Define("splash")

// splashPage shows the logo with a blinking cursor and a spinner while the
// shop loads. Its ticker stops once the splash is no longer on screen.
func (s *Storefront) splashPage() layout.Component {
	spin := spinner.Dot
	framesPerBlink := max(1, int(cursorBlink/spin.FPS))

	return splashDef.Render(func(h *hooks.Cursor, ctx layout.Context) []layout.Line {
		s.splashShown = true

		tick, setTick := hooks.UseState(h, 0)
		hooks.UseEffect(h, func() func() {
			var cancel func()
			cancel = s.timers.Every(spin.FPS, func() {
				if !s.splashShown {
					cancel()
					return
				}
				setTick.Update(func(n int) int { return n + 1 })
			})
			return func() { cancel() }
		})

		cursor := logoCursor
		if (tick/framesPerBlink)%2 == 1 {
			cursor = " "
		}
		frame := spin.Frames[tick%len(spin.Frames)]

		half := s.opts.Height / 2
		return layout.Stack(none,
			layout.Spacer(half-1),
			layout.Center(layout.Flex(none,
				layout.Text(logoText, white),
				layout.Text(cursor, fg("#FF6600")),
			)),
			layout.Center(layout.Flex(none,
				layout.Text(frame, fg("#FF6600")),
				layout.Text("brewing", gray),
			)),
			layout.Spacer(half-1),
		)(ctx)
	})
}
