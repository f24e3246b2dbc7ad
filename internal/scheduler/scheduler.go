// Package scheduler batches repaint requests into at most one render per
// frame and skips painting when a frame is identical to the previous one.
package scheduler

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/cui/internal/layout"
	"github.com/alexisbeaulieu97/cui/internal/logger"
	"github.com/alexisbeaulieu97/cui/pkg/diff"
)

// Painter receives each distinct frame as combined text with one style
// declaration per %c marker.
type Painter interface {
	Paint(text string, styles []string) error
}

// PainterFunc adapts a function to Painter.
type PainterFunc func(text string, styles []string) error

// Paint calls f.
func (f PainterFunc) Paint(text string, styles []string) error {
	return f(text, styles)
}

// FrameRequester defers a callback to the next frame tick.
type FrameRequester interface {
	RequestFrame(fn func())
}

// Stats counts scheduler activity.
type Stats struct {
	Scheduled int
	Renders   int
	Paints    int
	Skipped   int
}

// Scheduler owns the render pass of one app. It is driven by the loop
// goroutine and is not safe for concurrent use.
type Scheduler struct {
	frames  FrameRequester
	painter Painter
	render  func() []layout.Line
	log     *logger.Logger

	pending  bool
	hasLast  bool
	lastKey  string
	lastText string
	stats    Stats
}

// New creates a Scheduler that renders with render and paints through
// painter.
func New(frames FrameRequester, painter Painter, render func() []layout.Line, log *logger.Logger) *Scheduler {
	return &Scheduler{frames: frames, painter: painter, render: render, log: log}
}

// Schedule requests a render on the next frame. Calls made while a render
// is already pending collapse into it.
func (s *Scheduler) Schedule() {
	s.stats.Scheduled++
	if s.pending {
		return
	}
	s.pending = true
	s.frames.RequestFrame(s.frame)
}

// Pending reports whether a render is scheduled.
func (s *Scheduler) Pending() bool {
	return s.pending
}

func (s *Scheduler) frame() {
	s.pending = false
	if _, err := s.RenderNow(); err != nil {
		s.log.Error(err, "paint failed")
	}
}

// RenderNow renders immediately and paints when the frame differs from the
// last painted one. It reports whether the painter was called.
func (s *Scheduler) RenderNow() (bool, error) {
	s.stats.Renders++
	text, styles := layout.Combine(s.render())
	key := frameKey(text, styles)
	if s.hasLast && key == s.lastKey {
		s.stats.Skipped++
		return false, nil
	}

	if err := s.painter.Paint(text, styles); err != nil {
		return false, fmt.Errorf("paint frame: %w", err)
	}
	s.stats.Paints++

	if s.hasLast {
		if changes, summary := diff.Lines(s.lastText, text); summary.Changed() {
			s.log.WithFields(map[string]any{"rows": summary.String()}).Debug("frame changed\n" + changes)
		}
	}
	s.hasLast = true
	s.lastKey = key
	s.lastText = text
	return true, nil
}

// Invalidate forgets the last frame so the next render always paints, for
// example after the host screen was cleared or resized.
func (s *Scheduler) Invalidate() {
	s.hasLast = false
	s.lastKey = ""
}

// Stats returns a snapshot of the counters.
func (s *Scheduler) Stats() Stats {
	return s.stats
}

func frameKey(text string, styles []string) string {
	var b strings.Builder
	b.WriteString(text)
	for _, st := range styles {
		b.WriteByte(0)
		b.WriteString(st)
	}
	return b.String()
}
