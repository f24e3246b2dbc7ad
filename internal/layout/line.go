package layout

import (
	"strings"

	"github.com/alexisbeaulieu97/cui/internal/style"
	"github.com/alexisbeaulieu97/cui/internal/text"
)

// Segment is a run of characters sharing one style. Pad right-pads the run
// with spaces to at least Pad cells.
type Segment struct {
	Text  string
	Style style.Attributes
	Pad   int
}

// Seg builds a Segment.
func Seg(s string, st style.Attributes) Segment {
	return Segment{Text: s, Style: st}
}

// Width returns the number of cells the segment occupies.
func (s Segment) Width() int {
	return max(text.Width(s.Text), s.Pad)
}

// Rendered returns the segment text including its padding.
func (s Segment) Rendered() string {
	return text.Pad(s.Text, s.Pad)
}

// Line is one output row. The zero Line is a blank row.
type Line struct {
	Segments []Segment
}

// NewLine builds a line from segments.
func NewLine(segs ...Segment) Line {
	return Line{Segments: segs}
}

// IsBlank reports whether the line has no segments.
func (l Line) IsBlank() bool {
	return len(l.Segments) == 0
}

// Width returns the total cell width of the line.
func (l Line) Width() int {
	w := 0
	for _, s := range l.Segments {
		w += s.Width()
	}
	return w
}

// String returns the plain text of the line.
func (l Line) String() string {
	var b strings.Builder
	for _, s := range l.Segments {
		b.WriteString(s.Rendered())
	}
	return b.String()
}

// PlainText joins the plain text of lines with newlines.
func PlainText(lines []Line) string {
	rows := make([]string, len(lines))
	for i, l := range lines {
		rows[i] = l.String()
	}
	return strings.Join(rows, "\n")
}

// Span lays segs out across width cells, placing the free space according
// to align. The centre split floors the left side.
func Span(width int, align style.Align, segs []Segment) Line {
	used := 0
	for _, s := range segs {
		used += s.Width()
	}
	free := max(0, width-used)

	out := make([]Segment, 0, len(segs)+2)
	switch align {
	case style.AlignEnd:
		out = appendSpaces(out, free)
		out = append(out, segs...)
	case style.AlignCenter:
		left := free / 2
		out = appendSpaces(out, left)
		out = append(out, segs...)
		out = appendSpaces(out, free-left)
	default:
		out = append(out, segs...)
		out = appendSpaces(out, free)
	}
	return Line{Segments: out}
}

// blankRow is a row of width spaces, or a blank line when the width is
// unknown.
func blankRow(width int) Line {
	if width <= 0 {
		return Line{}
	}
	return Line{Segments: []Segment{{Text: strings.Repeat(" ", width)}}}
}

func appendSpaces(segs []Segment, n int) []Segment {
	if n <= 0 {
		return segs
	}
	return append(segs, Segment{Text: strings.Repeat(" ", n)})
}

// clipLine cuts l to at most width cells, dropping whole segments past the
// limit and shortening the one that crosses it.
func clipLine(l Line, width int) Line {
	if l.Width() <= width {
		return l
	}
	out := make([]Segment, 0, len(l.Segments))
	used := 0
	for _, s := range l.Segments {
		if used >= width {
			break
		}
		w := s.Width()
		if used+w <= width {
			out = append(out, s)
			used += w
			continue
		}
		clipped := text.Clip(s.Rendered(), width-used)
		out = append(out, Segment{Text: clipped, Style: s.Style})
		used += text.Width(clipped)
	}
	return Line{Segments: out}
}

// fillTo right-pads l with spaces up to width cells.
func fillTo(l Line, width int) Line {
	gap := width - l.Width()
	if gap <= 0 {
		return l
	}
	segs := make([]Segment, 0, len(l.Segments)+1)
	segs = append(segs, l.Segments...)
	return Line{Segments: appendSpaces(segs, gap)}
}

func maxWidth(lines []Line) int {
	w := 0
	for _, l := range lines {
		w = max(w, l.Width())
	}
	return w
}

// Combine flattens lines into the (text, styles) pair handed to painters.
// Every segment is introduced by a %c marker whose style is the matching
// entry of styles; literal percent signs are doubled.
func Combine(lines []Line) (string, []string) {
	rows := make([]string, len(lines))
	var styles []string
	for i, l := range lines {
		var b strings.Builder
		for _, s := range l.Segments {
			b.WriteString("%c")
			b.WriteString(strings.ReplaceAll(s.Rendered(), "%", "%%"))
			styles = append(styles, style.Serialize(s.Style))
		}
		rows[i] = b.String()
	}
	return strings.Join(rows, "\n"), styles
}
