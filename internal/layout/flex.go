package layout

import (
	"github.com/alexisbeaulieu97/cui/internal/style"
)

// Flex renders children side by side. Each child is rendered against the
// full target width and sizes itself; rows are then merged left to right
// with Gap columns between children. A child with fewer rows than its
// siblings is padded with blank filler as wide as its widest row. A child
// that renders nothing visible takes no columns and no gap.
//
// Direction column lays the children out with Stack instead.
//
// With a known width every row is exactly that wide. Justify between
// spreads the free columns evenly between children using floor division;
// the remainder ends up as trailing fill. Other justifications place the
// row with Span, using Justify when set and Align otherwise.
func Flex(st style.Attributes, children ...Node) Component {
	if st.Direction.Or(style.DirectionRow) == style.DirectionColumn {
		return Stack(st, children...)
	}
	comps := toComponents(children)

	return func(ctx Context) []Line {
		justify := st.Justify.Or(style.JustifyStart)
		gap := max(0, st.Gap.Or(0))

		width := 0
		if d, ok := st.Width.Get(); ok {
			width = d.Resolve(ctx.Width)
		} else if justify == style.JustifyBetween {
			width = ctx.Width
		}

		placement := st.Align.Or(style.AlignStart)
		switch justify {
		case style.JustifyCenter:
			placement = style.AlignCenter
		case style.JustifyEnd:
			placement = style.AlignEnd
		}

		child := ctx.derive(width, st)
		rendered := make([][]Line, len(comps))
		widths := make([]int, len(comps))
		rows := 0
		for i, comp := range comps {
			rendered[i] = comp(child)
			widths[i] = maxWidth(rendered[i])
			rows = max(rows, len(rendered[i]))
		}

		out := make([]Line, 0, rows)
		for r := 0; r < rows; r++ {
			var cells [][]Segment
			used := 0
			for i, lines := range rendered {
				if widths[i] == 0 {
					continue
				}
				var segs []Segment
				if r < len(lines) {
					segs = fillTo(lines[r], widths[i]).Segments
				} else {
					segs = blankRow(widths[i]).Segments
				}
				cells = append(cells, segs)
				used += widths[i]
			}

			if len(cells) == 0 {
				out = append(out, blankRow(width))
				continue
			}

			spacing := gap
			if width > 0 && justify == style.JustifyBetween && len(cells) > 1 {
				free := max(0, width-used-gap*(len(cells)-1))
				spacing += free / (len(cells) - 1)
			}

			var segs []Segment
			for i, c := range cells {
				segs = append(segs, c...)
				if i < len(cells)-1 {
					segs = appendSpaces(segs, spacing)
				}
			}

			line := Line{Segments: segs}
			if width > 0 {
				if justify == style.JustifyBetween && len(cells) > 1 {
					line = fillTo(line, width)
				} else {
					line = Span(width, placement, segs)
				}
				line = clipLine(line, width)
			}
			out = append(out, line)
		}
		return out
	}
}

// Center places children in the middle of the available width.
func Center(children ...Node) Component {
	return func(ctx Context) []Line {
		return Flex(style.Attributes{Layout: style.Layout{
			Justify: style.Of(style.JustifyCenter),
			Align:   style.Of(style.AlignCenter),
			Width:   style.Of(style.Cells(ctx.Width)),
		}}, children...)(ctx)
	}
}
