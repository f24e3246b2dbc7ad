package layout

import (
	"github.com/alexisbeaulieu97/cui/internal/style"
)

// Stack renders children top to bottom against a shared width. It reads Gap,
// Align, MinHeight and Width from st. When the width is known, rows narrower
// than it are aligned with Span and blank rows are filled with spaces.
func Stack(st style.Attributes, children ...Node) Component {
	comps := toComponents(children)

	return func(ctx Context) []Line {
		width := resolveWidth(st, ctx.Width)
		gap := max(0, st.Gap.Or(0))
		align := st.Align.Or(style.AlignStart)
		child := ctx.derive(width, st)

		var out []Line
		for i, comp := range comps {
			for _, l := range comp(child) {
				switch {
				case l.IsBlank():
					out = append(out, blankRow(width))
				case width > 0 && l.Width() < width:
					out = append(out, Span(width, align, l.Segments))
				default:
					out = append(out, l)
				}
			}
			if i < len(comps)-1 {
				for j := 0; j < gap; j++ {
					out = append(out, blankRow(width))
				}
			}
		}

		for len(out) < st.MinHeight.Or(0) {
			out = append(out, blankRow(width))
		}
		return out
	}
}

// Spacer emits size blank rows (at least one) spanning the context width.
func Spacer(size int) Component {
	size = max(1, size)
	return func(ctx Context) []Line {
		out := make([]Line, size)
		for i := range out {
			out[i] = blankRow(ctx.Width)
		}
		return out
	}
}

// Break emits one blank row spanning the context width.
func Break() Component {
	return Spacer(1)
}
