package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/cui/internal/style"
	cuierrors "github.com/alexisbeaulieu97/cui/pkg/errors"
)

// Edges is a set of box sides.
type Edges struct {
	Top, Right, Bottom, Left bool
}

// AllEdges enables every side.
var AllEdges = Edges{Top: true, Right: true, Bottom: true, Left: true}

// BorderChar picks the glyph drawn at a position on the border. at names the
// sides the position touches (two for a corner, one for an edge); enabled
// names the sides that have a border. It returns "" where nothing is drawn.
func BorderChar(at, enabled Edges, glyphs lipgloss.Border) string {
	top := at.Top && enabled.Top
	right := at.Right && enabled.Right
	bottom := at.Bottom && enabled.Bottom
	left := at.Left && enabled.Left

	switch {
	case top && left:
		return glyphs.TopLeft
	case top && right:
		return glyphs.TopRight
	case bottom && left:
		return glyphs.BottomLeft
	case bottom && right:
		return glyphs.BottomRight
	case top:
		return glyphs.Top
	case bottom:
		return glyphs.Bottom
	case left:
		return glyphs.Left
	case right:
		return glyphs.Right
	}
	return ""
}

// Box pads and optionally borders exactly one child. It reads PaddingX,
// PaddingY, Border, BorderStyle, BorderColor and Width from st. Lines wider
// than the content area are clipped, and every row the box emits has the
// same width.
func Box(st style.Attributes, children ...Node) Component {
	if len(children) != 1 {
		panic(cuierrors.NewContractError("Box", "Box can only have one child"))
	}
	child := ToComponent(children[0])

	return func(ctx Context) []Line {
		width := resolveWidth(st, ctx.Width)
		padX := max(0, st.PaddingX.Or(0))
		padY := max(0, st.PaddingY.Or(0))
		border := st.Border.Or(false)
		borderWidth := 0
		if border {
			borderWidth = 2
		}

		available := 0
		if width > 0 {
			available = max(0, width-2*padX-borderWidth)
		}

		own := style.ChildStyle(ctx.ParentStyle, st)
		lines := child(ctx.derive(available, st))

		contentWidth := available
		if width > 0 {
			clipped := make([]Line, len(lines))
			for i, l := range lines {
				clipped[i] = clipLine(l, available)
			}
			lines = clipped
		} else {
			contentWidth = maxWidth(lines)
		}

		fill := style.Inherited(own)
		edge := fill
		if c, ok := own.BorderColor.Get(); ok {
			edge.Color = style.Of(c)
		}
		glyphs := style.BorderGlyphs(st.BorderStyle.Or(style.BorderSingle))
		inner := contentWidth + 2*padX

		row := func(content []Segment, used int) Line {
			segs := make([]Segment, 0, len(content)+5)
			if border {
				segs = append(segs, Seg(BorderChar(Edges{Left: true}, AllEdges, glyphs), edge))
			}
			segs = appendFill(segs, padX, fill)
			segs = append(segs, content...)
			segs = appendFill(segs, contentWidth-used+padX, fill)
			if border {
				segs = append(segs, Seg(BorderChar(Edges{Right: true}, AllEdges, glyphs), edge))
			}
			return Line{Segments: segs}
		}
		rule := func(side Edges) Line {
			leftCorner := side
			leftCorner.Left = true
			rightCorner := side
			rightCorner.Right = true
			s := BorderChar(leftCorner, AllEdges, glyphs) +
				strings.Repeat(BorderChar(side, AllEdges, glyphs), inner) +
				BorderChar(rightCorner, AllEdges, glyphs)
			return Line{Segments: []Segment{Seg(s, edge)}}
		}

		out := make([]Line, 0, len(lines)+2*padY+2)
		if border {
			out = append(out, rule(Edges{Top: true}))
		}
		for i := 0; i < padY; i++ {
			out = append(out, row(nil, 0))
		}
		for _, l := range lines {
			out = append(out, row(l.Segments, l.Width()))
		}
		for i := 0; i < padY; i++ {
			out = append(out, row(nil, 0))
		}
		if border {
			out = append(out, rule(Edges{Bottom: true}))
		}
		return out
	}
}

func appendFill(segs []Segment, n int, st style.Attributes) []Segment {
	if n <= 0 {
		return segs
	}
	return append(segs, Seg(strings.Repeat(" ", n), st))
}
