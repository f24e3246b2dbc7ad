// Package paint turns combined frames into output for a host: plain text,
// ANSI-styled text, or a recorded history for tests and snapshots.
//
// A frame is the (text, styles) pair produced by layout.Combine. Each %c
// marker in text starts a run whose declarations are the next entry of
// styles; %% is a literal percent sign.
package paint

import (
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/cui/internal/style"
)

// Run is a stretch of frame text sharing one style declaration.
type Run struct {
	Text  string
	Style string
}

// Decode splits a combined frame into runs. Text before the first marker,
// or after the styles run out, gets an empty style.
func Decode(text string, styles []string) []Run {
	var (
		runs []Run
		cur  strings.Builder
		decl string
		next int
	)
	flush := func() {
		if cur.Len() > 0 {
			runs = append(runs, Run{Text: cur.String(), Style: decl})
			cur.Reset()
		}
	}

	for i := 0; i < len(text); i++ {
		if text[i] != '%' || i+1 >= len(text) {
			cur.WriteByte(text[i])
			continue
		}
		switch text[i+1] {
		case '%':
			cur.WriteByte('%')
			i++
		case 'c':
			flush()
			decl = ""
			if next < len(styles) {
				decl = styles[next]
			}
			next++
			i++
		default:
			cur.WriteByte('%')
		}
	}
	flush()
	return runs
}

// Plain returns the frame text with markers and escapes removed.
func Plain(text string, styles []string) string {
	var b strings.Builder
	for _, r := range Decode(text, styles) {
		b.WriteString(r.Text)
	}
	return b.String()
}

// ANSI renders frames with terminal escape codes through a lipgloss
// renderer.
type ANSI struct {
	renderer *lipgloss.Renderer
	cache    map[string]lipgloss.Style
}

// NewANSI returns an ANSI renderer targeting w. When force is set colours
// are emitted even if w is not a terminal.
func NewANSI(w io.Writer, force bool) *ANSI {
	r := lipgloss.NewRenderer(w)
	if force {
		r.SetColorProfile(termenv.TrueColor)
	}
	return &ANSI{renderer: r, cache: make(map[string]lipgloss.Style)}
}

// Render styles every run of the frame. Newlines are never wrapped in
// escape sequences so each row resets cleanly.
func (a *ANSI) Render(text string, styles []string) string {
	var b strings.Builder
	for _, r := range Decode(text, styles) {
		st := a.styleFor(r.Style)
		for i, part := range strings.Split(r.Text, "\n") {
			if i > 0 {
				b.WriteByte('\n')
			}
			if part == "" {
				continue
			}
			if r.Style == "" {
				b.WriteString(part)
				continue
			}
			b.WriteString(st.Render(part))
		}
	}
	return b.String()
}

func (a *ANSI) styleFor(decl string) lipgloss.Style {
	if st, ok := a.cache[decl]; ok {
		return st
	}
	st := style.Lipgloss(style.ParseDeclarations(decl)).Renderer(a.renderer)
	a.cache[decl] = st
	return st
}

// Writer paints each frame to an io.Writer, plain or styled.
type Writer struct {
	out  io.Writer
	ansi *ANSI
}

// NewWriter returns a painter writing plain frames to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{out: w}
}

// NewANSIWriter returns a painter writing styled frames to w.
func NewANSIWriter(w io.Writer, force bool) *Writer {
	return &Writer{out: w, ansi: NewANSI(w, force)}
}

// Paint writes one frame followed by a newline.
func (w *Writer) Paint(text string, styles []string) error {
	var frame string
	if w.ansi != nil {
		frame = w.ansi.Render(text, styles)
	} else {
		frame = Plain(text, styles)
	}
	_, err := io.WriteString(w.out, frame+"\n")
	return err
}

// Frame is one recorded paint.
type Frame struct {
	Text   string
	Styles []string
}

// Plain returns the frame without markers.
func (f Frame) Plain() string {
	return Plain(f.Text, f.Styles)
}

// Recorder keeps every painted frame. It is safe for concurrent use so a
// host can read the latest frame while the loop paints.
type Recorder struct {
	mu     sync.Mutex
	frames []Frame
}

// Paint records the frame.
func (r *Recorder) Paint(text string, styles []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, Frame{Text: text, Styles: append([]string(nil), styles...)})
	return nil
}

// Frames returns a copy of the recorded frames.
func (r *Recorder) Frames() []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Frame(nil), r.frames...)
}

// Count returns the number of recorded frames.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

// Last returns the most recent frame.
func (r *Recorder) Last() (Frame, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return Frame{}, false
	}
	return r.frames[len(r.frames)-1], true
}
