// Package text measures, wraps and truncates plain strings in terminal cells.
//
// All functions are pure and deterministic: widths come from the East Asian
// width tables in go-runewidth, never from the current locale.
package text

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// WrapPolicy decides what happens to text wider than its target width.
type WrapPolicy string

const (
	WordWrap       WrapPolicy = "wrap"
	NoWrap         WrapPolicy = "nowrap"
	TruncateStart  WrapPolicy = "truncate-start"
	TruncateMiddle WrapPolicy = "truncate-middle"
	TruncateEnd    WrapPolicy = "truncate-end"
)

// cells fixes the width tables so results never depend on the locale of the
// process; ambiguous-width runes such as box drawing glyphs count as one.
var cells = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// Ellipsis is spliced into truncated text.
const Ellipsis = "..."

// IsTruncate reports whether p is one of the truncate policies.
func (p WrapPolicy) IsTruncate() bool {
	return p == TruncateStart || p == TruncateMiddle || p == TruncateEnd
}

// Size is the rendered extent of a string.
type Size struct {
	Width  int
	Height int
}

// Width returns the number of terminal cells s occupies on one line.
func Width(s string) int {
	return cells.StringWidth(s)
}

// Measure returns the widest line and the number of lines in s.
// The empty string measures {0, 0}.
func Measure(s string) Size {
	if s == "" {
		return Size{}
	}
	lines := strings.Split(s, "\n")
	size := Size{Height: len(lines)}
	for _, line := range lines {
		if w := Width(line); w > size.Width {
			size.Width = w
		}
	}
	return size
}

// Wrap fits s into width cells using policy and returns the result with
// lines joined by "\n". An empty policy means WordWrap. A non-positive width
// leaves wrapped text untouched; truncation to a width below the ellipsis
// length yields the ellipsis cut to that width.
func Wrap(s string, width int, policy WrapPolicy) string {
	return strings.Join(Lines(s, width, policy), "\n")
}

// Lines is Wrap without the final join.
func Lines(s string, width int, policy WrapPolicy) []string {
	if s == "" {
		return nil
	}
	if policy == "" {
		policy = WordWrap
	}

	paragraphs := strings.Split(s, "\n")

	switch {
	case policy == NoWrap:
		return paragraphs
	case policy.IsTruncate():
		out := make([]string, len(paragraphs))
		for i, p := range paragraphs {
			out[i] = truncate(p, width, policy)
		}
		return out
	default:
		if width <= 0 {
			return paragraphs
		}
		out := make([]string, 0, len(paragraphs))
		for _, p := range paragraphs {
			out = append(out, wrapWords(p, width)...)
		}
		return out
	}
}

func truncate(s string, width int, policy WrapPolicy) string {
	if width < 0 {
		width = 0
	}
	if Width(s) <= width {
		return s
	}
	if width <= len(Ellipsis) {
		return Ellipsis[:width]
	}

	keep := width - len(Ellipsis)
	switch policy {
	case TruncateStart:
		return Ellipsis + suffix(s, keep)
	case TruncateMiddle:
		left := keep / 2
		right := keep - left
		return prefix(s, left) + Ellipsis + suffix(s, right)
	default:
		return prefix(s, keep) + Ellipsis
	}
}

// wrapWords greedily packs space separated words into lines of at most
// width cells. Words wider than width are split into width sized chunks.
func wrapWords(paragraph string, width int) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, word := range words {
		if current != "" && Width(current)+Width(word)+1 <= width {
			current += " " + word
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		if Width(word) <= width {
			current = word
			continue
		}
		chunks := Chunk(word, width)
		lines = append(lines, chunks[:len(chunks)-1]...)
		current = chunks[len(chunks)-1]
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// Chunk splits s into pieces of at most width cells. A single rune wider
// than width gets a chunk of its own.
func Chunk(s string, width int) []string {
	if width <= 0 || s == "" {
		return []string{s}
	}
	var chunks []string
	var b strings.Builder
	used := 0
	for _, r := range s {
		rw := cells.RuneWidth(r)
		if used > 0 && used+rw > width {
			chunks = append(chunks, b.String())
			b.Reset()
			used = 0
		}
		b.WriteRune(r)
		used += rw
	}
	if b.Len() > 0 {
		chunks = append(chunks, b.String())
	}
	return chunks
}

// Clip cuts s to at most width cells without adding an ellipsis.
func Clip(s string, width int) string {
	if Width(s) <= width {
		return s
	}
	return prefix(s, width)
}

func prefix(s string, width int) string {
	var b strings.Builder
	used := 0
	for _, r := range s {
		rw := cells.RuneWidth(r)
		if used+rw > width {
			break
		}
		b.WriteRune(r)
		used += rw
	}
	return b.String()
}

func suffix(s string, width int) string {
	runes := []rune(s)
	used := 0
	start := len(runes)
	for i := len(runes) - 1; i >= 0; i-- {
		rw := cells.RuneWidth(runes[i])
		if used+rw > width {
			break
		}
		used += rw
		start = i
	}
	return string(runes[start:])
}

// Pad right-pads s with spaces to at least width cells.
func Pad(s string, width int) string {
	if gap := width - Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
